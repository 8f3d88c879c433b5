package dto

import "monevpdb_backend/internals/features/monev/subjects/model"

type SubjectDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToSubjectDTO(m model.SubjectModel) SubjectDTO {
	return SubjectDTO{ID: m.SubjectID, Name: m.SubjectName}
}
