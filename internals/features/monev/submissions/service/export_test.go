package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	questionModel "monevpdb_backend/internals/features/monev/questionnaire/model"
	"monevpdb_backend/internals/features/monev/submissions/model"
)

func TestRenderResultsCSV(t *testing.T) {
	categories := []questionModel.CategoryModel{
		{
			CategoryID:    "cat_1",
			CategoryTitle: "Pedagogik",
			Questions: []questionModel.QuestionModel{
				{QuestionID: "q1", QuestionText: "Penguasaan kelas", QuestionType: questionModel.QuestionTypeLikert},
				{QuestionID: "q2", QuestionText: "Metode mengajar", QuestionType: questionModel.QuestionTypeChoice},
			},
		},
	}

	choice := "Diskusi"
	ts := time.Date(2025, 9, 1, 14, 30, 5, 0, time.UTC)
	subs := []model.SubmissionModel{
		{
			SubmissionID:               "sub_1",
			SubmissionTimestamp:        ts,
			SubmissionNIP:              "1980",
			SubmissionLecturerName:     "Dr. Budi Santoso",
			SubmissionSubjectName:      "PDB",
			SubmissionClassCode:        "A1",
			SubmissionSemester:         "Ganjil 2025/2026",
			SubmissionPositiveFeedback: "Mahasiswa aktif",
			Answers: []model.SubmissionAnswerModel{
				{SubmissionAnswerQuestionID: "q1", SubmissionAnswerType: questionModel.QuestionTypeLikert, SubmissionAnswerRating: 5},
				{SubmissionAnswerQuestionID: "q2", SubmissionAnswerType: questionModel.QuestionTypeChoice, SubmissionAnswerText: &choice},
			},
		},
	}

	out, err := RenderResultsCSV(categories, subs)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"Waktu", "NIP", "Nama Dosen", "Mata Kuliah", "Kode Kelas", "Semester",
		"[Pedagogik] Penguasaan kelas", "[Pedagogik] Metode mengajar",
		"Catatan Positif", "Kendala/Hambatan",
	}, rows[0])

	assert.Equal(t, []string{
		"01/09/2025 14:30:05", "1980", "Dr. Budi Santoso", "PDB", "A1", "Ganjil 2025/2026",
		"5 - Sangat Baik", "Diskusi",
		"Mahasiswa aktif", "-",
	}, rows[1])
}

func TestRenderResultsCSVUnansweredCell(t *testing.T) {
	categories := []questionModel.CategoryModel{
		{
			CategoryID:    "cat_1",
			CategoryTitle: "Pedagogik",
			Questions: []questionModel.QuestionModel{
				{QuestionID: "q1", QuestionText: "Penguasaan kelas", QuestionType: questionModel.QuestionTypeLikert},
			},
		},
	}
	// submission lama dari skema lama: tidak punya jawaban q1
	subs := []model.SubmissionModel{{
		SubmissionID:           "sub_1",
		SubmissionTimestamp:    time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
		SubmissionLecturerName: "Prof. Siti Aminah",
	}}

	out, err := RenderResultsCSV(categories, subs)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "-", rows[1][6])
}
