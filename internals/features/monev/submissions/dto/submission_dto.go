package dto

import (
	"time"

	"monevpdb_backend/internals/features/monev/submissions/model"
	"monevpdb_backend/internals/features/monev/submissions/service"
)

// =============================
// 📤 Response DTO
// =============================
// Nama field mengikuti kontrak klien lama (camelCase).
type SubmissionDTO struct {
	ID                   string                 `json:"id"`
	Timestamp            time.Time              `json:"timestamp"`
	NIP                  string                 `json:"nip"`
	LecturerName         string                 `json:"lecturerName"`
	Subject              string                 `json:"subject"`
	ClassCode            string                 `json:"classCode"`
	Semester             string                 `json:"semester"`
	Answers              map[string]interface{} `json:"answers"`
	PositiveFeedback     string                 `json:"positiveFeedback"`
	ConstructiveFeedback string                 `json:"constructiveFeedback"`
}

// =============================
// 📥 Request DTO (add_submission)
// =============================
type CreateSubmissionRequest struct {
	ID                   string                 `json:"id"`        // opsional, server buatkan bila kosong
	Timestamp            *time.Time             `json:"timestamp"` // opsional, server pakai now()
	NIP                  string                 `json:"nip"`
	LecturerName         string                 `json:"lecturerName"`
	Subject              string                 `json:"subject"`
	ClassCode            string                 `json:"classCode"`
	Semester             string                 `json:"semester"`
	Answers              map[string]interface{} `json:"answers"`
	PositiveFeedback     string                 `json:"positiveFeedback"`
	ConstructiveFeedback string                 `json:"constructiveFeedback"`
}

// =============================
// 🔁 Converters
// =============================
func ToSubmissionDTO(m model.SubmissionModel) SubmissionDTO {
	return SubmissionDTO{
		ID:                   m.SubmissionID,
		Timestamp:            m.SubmissionTimestamp,
		NIP:                  m.SubmissionNIP,
		LecturerName:         m.SubmissionLecturerName,
		Subject:              m.SubmissionSubjectName,
		ClassCode:            m.SubmissionClassCode,
		Semester:             m.SubmissionSemester,
		Answers:              service.DecodeAnswerSet(m.Answers),
		PositiveFeedback:     m.SubmissionPositiveFeedback,
		ConstructiveFeedback: m.SubmissionConstructiveFeedback,
	}
}

func ToFormInput(req CreateSubmissionRequest) service.FormInput {
	return service.FormInput{
		NIP:                  req.NIP,
		LecturerName:         req.LecturerName,
		Subject:              req.Subject,
		ClassCode:            req.ClassCode,
		Semester:             req.Semester,
		Answers:              req.Answers,
		PositiveFeedback:     req.PositiveFeedback,
		ConstructiveFeedback: req.ConstructiveFeedback,
	}
}
