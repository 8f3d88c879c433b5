package model

import "time"

// Satu kuesioner terisi. Immutable: tidak pernah diupdate, hanya bisa
// dihapus utuh beserta jawabannya.
type SubmissionModel struct {
	SubmissionID        string    `gorm:"column:submission_id;primaryKey;type:varchar(64)"`
	SubmissionTimestamp time.Time `gorm:"column:submission_timestamp;not null"`

	// Kunci duplikat: satu submission per dosen per kelas per semester.
	// Unique index menutup race dua submit bersamaan yang lolos validasi.
	SubmissionNIP         string `gorm:"column:submission_nip;type:varchar(50);uniqueIndex:uq_submission_identity"`
	SubmissionSubjectName string `gorm:"column:submission_subject_name;type:text;uniqueIndex:uq_submission_identity"`
	SubmissionClassCode   string `gorm:"column:submission_class_code;type:varchar(50);uniqueIndex:uq_submission_identity"`
	SubmissionSemester    string `gorm:"column:submission_semester;type:varchar(50);uniqueIndex:uq_submission_identity"`

	SubmissionLecturerName         string `gorm:"column:submission_lecturer_name;type:text;not null"`
	SubmissionPositiveFeedback     string `gorm:"column:submission_positive_feedback;type:text"`
	SubmissionConstructiveFeedback string `gorm:"column:submission_constructive_feedback;type:text"`

	Answers []SubmissionAnswerModel `gorm:"foreignKey:SubmissionAnswerSubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}
