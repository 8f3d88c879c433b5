package dto

import (
	lecturerDTO "monevpdb_backend/internals/features/monev/lecturers/dto"
	questionnaireDTO "monevpdb_backend/internals/features/monev/questionnaire/dto"
	subjectDTO "monevpdb_backend/internals/features/monev/subjects/dto"
	submissionDTO "monevpdb_backend/internals/features/monev/submissions/dto"
)

// Snapshot penuh untuk klien: tanpa pagination, tanpa filter — volume data
// satu institusi masih kecil.
type AppDataResponse struct {
	Lecturers   []lecturerDTO.LecturerDTO      `json:"lecturers"`
	Subjects    []subjectDTO.SubjectDTO        `json:"subjects"`
	Categories  []questionnaireDTO.CategoryDTO `json:"categories"`
	Submissions []submissionDTO.SubmissionDTO  `json:"submissions"`
}
