package model

// Satu jawaban per pertanyaan per submission. Diskriminan tipe disimpan
// eksplisit: nilai "5" untuk pertanyaan pilihan tetap string, bukan rating.
// Baris lama tanpa answer_type dibaca sebagai likert (data sebelum migrasi).
type SubmissionAnswerModel struct {
	SubmissionAnswerID           uint64  `gorm:"column:submission_answer_id;primaryKey;autoIncrement"`
	SubmissionAnswerSubmissionID string  `gorm:"column:submission_answer_submission_id;type:varchar(64);not null;index"`
	SubmissionAnswerQuestionID   string  `gorm:"column:submission_answer_question_id;type:varchar(64);not null;index"`
	SubmissionAnswerType         string  `gorm:"column:submission_answer_type;type:varchar(20)"` // likert|choice|text, kosong = legacy likert
	SubmissionAnswerRating       int     `gorm:"column:submission_answer_rating;not null;default:0"`
	SubmissionAnswerText         *string `gorm:"column:submission_answer_text;type:text"`
}

func (SubmissionAnswerModel) TableName() string {
	return "submission_answers"
}
