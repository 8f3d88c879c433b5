package dto

import (
	"strings"

	"monevpdb_backend/internals/features/monev/lecturers/model"
)

// =============================
// 📤 Response DTO
// =============================
type LecturerDTO struct {
	ID         string `json:"id"`
	NIP        string `json:"nip"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// =============================
// 📥 Request DTO (full replace)
// =============================
type LecturerInput struct {
	ID         string `json:"id" validate:"required"`
	NIP        string `json:"nip"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
}

// =============================
// 🔁 Converters
// =============================
func ToLecturerDTO(m model.LecturerModel) LecturerDTO {
	return LecturerDTO{
		ID:         m.LecturerID,
		NIP:        m.LecturerNIP,
		Name:       m.LecturerName,
		Department: m.LecturerDepartment,
	}
}

func ToLecturerModel(req LecturerInput) model.LecturerModel {
	return model.LecturerModel{
		LecturerID:         req.ID,
		LecturerNIP:        strings.TrimSpace(req.NIP),
		LecturerName:       req.Name,
		LecturerDepartment: req.Department,
	}
}

func ToLecturerModels(reqs []LecturerInput) []model.LecturerModel {
	out := make([]model.LecturerModel, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, ToLecturerModel(r))
	}
	return out
}
