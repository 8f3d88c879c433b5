package controller

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monevpdb_backend/internals/features/monev/lecturers/model"
	"monevpdb_backend/internals/features/monev/lecturers/service"
	"monevpdb_backend/internals/features/monev/realtime"
	helper "monevpdb_backend/internals/helpers"
)

type LecturerController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewLecturerController(db *gorm.DB, hub *realtime.Hub) *LecturerController {
	return &LecturerController{DB: db, Hub: hub}
}

// =============================
// 📥 Export roster dosen (CSV)
// =============================
func (ctrl *LecturerController) ExportCSV(c *fiber.Ctx) error {
	var lecturers []model.LecturerModel
	if err := ctrl.DB.Order("lecturer_name ASC").Find(&lecturers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca data dosen")
	}

	csvBytes, err := service.RenderRosterCSV(lecturers)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="Data_Dosen_PDB.csv"`)
	return c.Send(csvBytes)
}

// =============================
// 📤 Import roster (merge by NIP)
// =============================
// "Smart update": NIP sama → update, NIP baru → tambah, data lama yang
// tidak ada di file tetap dipertahankan.
func (ctrl *LecturerController) ImportCSV(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "File CSV kosong")
	}

	imported, err := service.ParseRosterCSV(bytes.NewReader(body))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if len(imported) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada baris dosen yang valid di file")
	}

	var current []model.LecturerModel
	if err := ctrl.DB.Find(&current).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca data dosen")
	}

	merged, updated, added := service.MergeRoster(current, imported)
	if err := service.ReplaceRoster(ctrl.DB, merged); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan hasil import")
	}

	ctrl.Hub.BroadcastDataUpdated()
	return helper.Success(c, "Import selesai", fiber.Map{
		"updated": updated,
		"added":   added,
		"total":   len(merged),
	})
}
