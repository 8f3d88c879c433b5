package controller

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"monevpdb_backend/internals/features/monev/drafts/model"
	helper "monevpdb_backend/internals/helpers"
)

// Draft kedaluwarsa setelah seminggu tidak disentuh.
const draftTTL = 7 * 24 * time.Hour

type DraftController struct {
	DB *gorm.DB
}

func NewDraftController(db *gorm.DB) *DraftController {
	return &DraftController{DB: db}
}

// =============================
// 💾 Simpan/perbarui draft
// =============================
func (ctrl *DraftController) UpsertDraft(c *fiber.Ctx) error {
	nip := c.Params("nip")
	if nip == "" {
		return helper.Error(c, fiber.StatusBadRequest, "NIP wajib diisi")
	}

	body := c.Body()
	var anyPayload interface{}
	if len(body) == 0 || sonic.Unmarshal(body, &anyPayload) != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Isi draft harus JSON valid")
	}

	draft := model.DraftModel{
		DraftNIP:       nip,
		DraftPayload:   datatypes.JSON(append([]byte(nil), body...)),
		DraftExpiresAt: time.Now().Add(draftTTL),
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "draft_nip"}},
		DoUpdates: clause.AssignmentColumns([]string{"draft_payload", "draft_updated_at", "draft_expires_at"}),
	}).Create(&draft).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan draft")
	}

	return helper.Success(c, "Draft tersimpan", fiber.Map{"expires_at": draft.DraftExpiresAt})
}

// =============================
// 📄 Ambil draft
// =============================
func (ctrl *DraftController) GetDraft(c *fiber.Ctx) error {
	nip := c.Params("nip")

	var draft model.DraftModel
	err := ctrl.DB.Where("draft_nip = ?", nip).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Draft tidak ditemukan")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca draft")
	}

	// draft kedaluwarsa dianggap tidak ada, sekalian dibersihkan
	if time.Now().After(draft.DraftExpiresAt) {
		_ = ctrl.DB.Delete(&draft).Error
		return helper.Error(c, fiber.StatusNotFound, "Draft tidak ditemukan")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(draft.DraftPayload)
}

// =============================
// ❌ Hapus draft (setelah submit sukses)
// =============================
func (ctrl *DraftController) DeleteDraft(c *fiber.Ctx) error {
	nip := c.Params("nip")
	if err := ctrl.DB.Where("draft_nip = ?", nip).Delete(&model.DraftModel{}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus draft")
	}
	return helper.Success(c, "Draft dihapus", nil)
}
