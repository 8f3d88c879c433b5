package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionModel "monevpdb_backend/internals/features/monev/questionnaire/model"
	questionnaireService "monevpdb_backend/internals/features/monev/questionnaire/service"
	"monevpdb_backend/internals/features/monev/submissions/service"
	helper "monevpdb_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// =============================
// 📊 Ringkasan satu pertanyaan
// =============================
func (ctrl *StatsController) GetQuestionStats(c *fiber.Ctx) error {
	questionID := c.Params("id")

	var question questionModel.QuestionModel
	if err := ctrl.DB.Where("question_id = ?", questionID).First(&question).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	var category questionModel.CategoryModel
	_ = ctrl.DB.Where("category_id = ?", question.QuestionCategoryID).First(&category).Error

	answerSets, err := ctrl.loadAnswerSets()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca submission")
	}

	stats := service.AggregateQuestion(question, answerSets)
	return helper.Success(c, "ok", fiber.Map{
		"question": fiber.Map{
			"id":       question.QuestionID,
			"text":     question.QuestionText,
			"type":     stats.QuestionType,
			"category": category.CategoryTitle,
		},
		"stats": stats,
	})
}

// =============================
// 📈 Ringkasan keseluruhan
// =============================
// Jumlah submission + rata-rata likert per kategori, bahan kartu ringkas
// di atas dashboard.
func (ctrl *StatsController) GetOverview(c *fiber.Ctx) error {
	categories, err := questionnaireService.LoadSchema(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca skema")
	}
	answerSets, err := ctrl.loadAnswerSets()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca submission")
	}

	type categorySummary struct {
		ID        string  `json:"id"`
		Title     string  `json:"title"`
		Mean      float64 `json:"mean"`
		Questions int     `json:"questions"`
	}
	summaries := make([]categorySummary, 0, len(categories))
	for _, cat := range categories {
		sum, n := 0.0, 0
		for _, q := range cat.Questions {
			if q.QuestionType != "" && q.QuestionType != questionModel.QuestionTypeLikert {
				continue
			}
			s := service.AggregateQuestion(q, answerSets)
			if s.TotalResponses > 0 {
				sum += s.Mean
				n++
			}
		}
		summary := categorySummary{ID: cat.CategoryID, Title: cat.CategoryTitle, Questions: len(cat.Questions)}
		if n > 0 {
			summary.Mean = sum / float64(n)
		}
		summaries = append(summaries, summary)
	}

	return helper.Success(c, "ok", fiber.Map{
		"total_submissions": len(answerSets),
		"categories":        summaries,
	})
}

// =============================
// 📥 Export hasil lengkap (CSV)
// =============================
func (ctrl *StatsController) ExportResultsCSV(c *fiber.Ctx) error {
	categories, err := questionnaireService.LoadSchema(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca skema")
	}
	subs, err := service.LoadSubmissions(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca submission")
	}

	csvBytes, err := service.RenderResultsCSV(categories, subs)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="Hasil_Monev_PDB_Lengkap.csv"`)
	return c.Send(csvBytes)
}

func (ctrl *StatsController) loadAnswerSets() ([]map[string]interface{}, error) {
	subs, err := service.LoadSubmissions(ctrl.DB)
	if err != nil {
		return nil, err
	}
	sets := make([]map[string]interface{}, 0, len(subs))
	for _, sub := range subs {
		sets = append(sets, service.DecodeAnswerSet(sub.Answers))
	}
	return sets, nil
}
