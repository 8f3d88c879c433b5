package model

import (
	"time"

	"github.com/lib/pq"
)

// Tipe pertanyaan kuesioner. String kosong pada data lama dianggap likert.
const (
	QuestionTypeLikert = "likert"
	QuestionTypeChoice = "choice"
	QuestionTypeText   = "text"
)

type QuestionModel struct {
	QuestionID         string         `gorm:"column:question_id;primaryKey;type:varchar(64)"`
	QuestionCategoryID string         `gorm:"column:question_category_id;type:varchar(64);not null;index"`
	QuestionText       string         `gorm:"column:question_text;type:text;not null"`
	QuestionType       string         `gorm:"column:question_type;type:varchar(20);not null;default:'likert'"` // likert|choice|text
	QuestionOptions    pq.StringArray `gorm:"column:question_options;type:text[]"`                             // terisi hanya untuk type=choice
	QuestionSortOrder  int            `gorm:"column:question_sort_order;not null;default:0"`
	QuestionCreatedAt  time.Time      `gorm:"column:question_created_at;autoCreateTime"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
