package dto

import (
	"monevpdb_backend/internals/features/monev/questionnaire/model"
)

// =============================
// 📤 Response DTO
// =============================
type QuestionDTO struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"` // likert|choice|text
	Options []string `json:"options,omitempty"`
}

type CategoryDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Questions   []QuestionDTO `json:"questions"`
}

// =============================
// 📥 Request DTO (full replace)
// =============================
type QuestionInput struct {
	ID      string   `json:"id" validate:"required"`
	Text    string   `json:"text" validate:"required"`
	Type    string   `json:"type" validate:"omitempty,oneof=likert choice text"`
	Options []string `json:"options,omitempty"` // wajib terisi jika type == choice
}

type CategoryInput struct {
	ID          string          `json:"id" validate:"required"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions" validate:"dive"`
}

// =============================
// 🔁 Converters
// =============================
func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	qType := m.QuestionType
	if qType == "" {
		qType = model.QuestionTypeLikert
	}
	return QuestionDTO{
		ID:      m.QuestionID,
		Text:    m.QuestionText,
		Type:    qType,
		Options: m.QuestionOptions,
	}
}

func ToCategoryDTO(m model.CategoryModel) CategoryDTO {
	questions := make([]QuestionDTO, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, ToQuestionDTO(q))
	}
	return CategoryDTO{
		ID:          m.CategoryID,
		Title:       m.CategoryTitle,
		Description: m.CategoryDescription,
		Questions:   questions,
	}
}

func ToCategoryModels(inputs []CategoryInput) []model.CategoryModel {
	out := make([]model.CategoryModel, 0, len(inputs))
	for cOrder, cat := range inputs {
		cm := model.CategoryModel{
			CategoryID:          cat.ID,
			CategoryTitle:       cat.Title,
			CategoryDescription: cat.Description,
			CategorySortOrder:   cOrder,
		}
		for qOrder, q := range cat.Questions {
			qType := q.Type
			if qType == "" {
				qType = model.QuestionTypeLikert
			}
			cm.Questions = append(cm.Questions, model.QuestionModel{
				QuestionID:         q.ID,
				QuestionCategoryID: cat.ID,
				QuestionText:       q.Text,
				QuestionType:       qType,
				QuestionOptions:    q.Options,
				QuestionSortOrder:  qOrder,
			})
		}
		out = append(out, cm)
	}
	return out
}
