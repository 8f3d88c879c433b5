package controller

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monevpdb_backend/internals/constants"
	appdataDTO "monevpdb_backend/internals/features/monev/appdata/dto"
	lecturerDTO "monevpdb_backend/internals/features/monev/lecturers/dto"
	lecturerModel "monevpdb_backend/internals/features/monev/lecturers/model"
	lecturerService "monevpdb_backend/internals/features/monev/lecturers/service"
	questionnaireDTO "monevpdb_backend/internals/features/monev/questionnaire/dto"
	questionnaireService "monevpdb_backend/internals/features/monev/questionnaire/service"
	"monevpdb_backend/internals/features/monev/realtime"
	subjectDTO "monevpdb_backend/internals/features/monev/subjects/dto"
	subjectModel "monevpdb_backend/internals/features/monev/subjects/model"
	submissionDTO "monevpdb_backend/internals/features/monev/submissions/dto"
	submissionService "monevpdb_backend/internals/features/monev/submissions/service"
)

// ApiController melayani API lama berbasis ?action= — kontrak yang dipakai
// seluruh klien Monev PDB. Tanpa autentikasi: kuesioner diisi dosen tanpa login.
type ApiController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewApiController(db *gorm.DB, hub *realtime.Hub) *ApiController {
	return &ApiController{DB: db, Hub: hub}
}

// =============================
// 📄 GET /api?action=...
// =============================
func (ctrl *ApiController) HandleGet(c *fiber.Ctx) error {
	switch c.Query("action") {
	case "get_app_data":
		return ctrl.getAppData(c)
	case "":
		return c.JSON(fiber.Map{
			"status":  "online",
			"message": "Monev PDB API Connected.",
			"version": constants.APIVersion,
		})
	default:
		return apiError(c, fiber.StatusNotFound, "Action not found")
	}
}

// =============================
// ✏️ POST /api?action=...
// =============================
func (ctrl *ApiController) HandlePost(c *fiber.Ctx) error {
	switch c.Query("action") {
	case "add_submission":
		return ctrl.addSubmission(c)
	case "delete_submission":
		return ctrl.deleteSubmission(c)
	case "update_lecturers":
		return ctrl.updateLecturers(c)
	case "update_categories":
		return ctrl.updateCategories(c)
	default:
		return apiError(c, fiber.StatusNotFound, "Action not found")
	}
}

func (ctrl *ApiController) getAppData(c *fiber.Ctx) error {
	var lecturers []lecturerModel.LecturerModel
	if err := ctrl.DB.Order("lecturer_name ASC").Find(&lecturers).Error; err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	var subjects []subjectModel.SubjectModel
	if err := ctrl.DB.Find(&subjects).Error; err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	categories, err := questionnaireService.LoadSchema(ctrl.DB)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	subs, err := submissionService.LoadSubmissions(ctrl.DB)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := appdataDTO.AppDataResponse{
		Lecturers:   make([]lecturerDTO.LecturerDTO, 0, len(lecturers)),
		Subjects:    make([]subjectDTO.SubjectDTO, 0, len(subjects)),
		Categories:  make([]questionnaireDTO.CategoryDTO, 0, len(categories)),
		Submissions: make([]submissionDTO.SubmissionDTO, 0, len(subs)),
	}
	for _, l := range lecturers {
		resp.Lecturers = append(resp.Lecturers, lecturerDTO.ToLecturerDTO(l))
	}
	for _, s := range subjects {
		resp.Subjects = append(resp.Subjects, subjectDTO.ToSubjectDTO(s))
	}
	for _, cat := range categories {
		resp.Categories = append(resp.Categories, questionnaireDTO.ToCategoryDTO(cat))
	}
	for _, sub := range subs {
		resp.Submissions = append(resp.Submissions, submissionDTO.ToSubmissionDTO(sub))
	}

	return c.JSON(resp)
}

func (ctrl *ApiController) addSubmission(c *fiber.Ctx) error {
	var req submissionDTO.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	categories, err := questionnaireService.LoadSchema(ctrl.DB)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	priorKeys, err := submissionService.LoadPriorKeys(ctrl.DB)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	form := submissionDTO.ToFormInput(req)
	if msgs := submissionService.ValidateSubmission(form, categories, priorKeys); len(msgs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  strings.Join(msgs, "\n"),
			"errors": msgs,
		})
	}

	id := req.ID
	if id == "" {
		id = "sub_" + uuid.NewString()
	}
	sub, err := submissionService.BuildSubmission(id, form, categories)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	sub.SubmissionTimestamp = time.Now()
	if req.Timestamp != nil {
		sub.SubmissionTimestamp = *req.Timestamp
	}

	if err := submissionService.CreateSubmission(ctrl.DB, &sub); err != nil {
		if submissionService.IsDuplicateKeyErr(err) {
			// dua submit identik beradu: yang kalah ditolak oleh index
			return apiError(c, fiber.StatusConflict, "Anda sudah mengisi kuisioner.")
		}
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[SUBMISSION] id=%s nip=%s subject=%q", sub.SubmissionID, sub.SubmissionNIP, sub.SubmissionSubjectName)
	ctrl.Hub.BroadcastDataUpdated()
	return c.JSON(fiber.Map{"success": true, "id": sub.SubmissionID})
}

func (ctrl *ApiController) deleteSubmission(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ID == "" {
		return apiError(c, fiber.StatusBadRequest, "Invalid Request")
	}

	if err := submissionService.DeleteSubmission(ctrl.DB, req.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Hub.BroadcastDataUpdated()
	return c.JSON(fiber.Map{"success": true})
}

func (ctrl *ApiController) updateLecturers(c *fiber.Ctx) error {
	var inputs []lecturerDTO.LecturerInput
	if err := c.BodyParser(&inputs); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid data format or empty input")
	}

	roster := lecturerDTO.ToLecturerModels(inputs)
	if msgs := lecturerService.ValidateRoster(roster); len(msgs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  strings.Join(msgs, "\n"),
			"errors": msgs,
		})
	}

	if err := lecturerService.ReplaceRoster(ctrl.DB, roster); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Database Update Failed: "+err.Error())
	}

	ctrl.Hub.BroadcastDataUpdated()
	return c.JSON(fiber.Map{"success": true})
}

func (ctrl *ApiController) updateCategories(c *fiber.Ctx) error {
	var inputs []questionnaireDTO.CategoryInput
	if err := c.BodyParser(&inputs); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid data format")
	}

	if msgs := questionnaireService.ValidateSchema(inputs); len(msgs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  strings.Join(msgs, "\n"),
			"errors": msgs,
		})
	}

	if err := questionnaireService.ReplaceSchema(ctrl.DB, inputs); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Hub.BroadcastDataUpdated()
	return c.JSON(fiber.Map{"success": true})
}

// apiError memakai bentuk {error} mentah yang dipahami klien lama.
func apiError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
