package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"monevpdb_backend/internals/constants"
	questionModel "monevpdb_backend/internals/features/monev/questionnaire/model"
	"monevpdb_backend/internals/features/monev/submissions/model"
)

// RenderResultsCSV meratakan riwayat submission jadi satu baris per
// submission dengan satu kolom per pertanyaan ("[Kategori] Teks"), persis
// bentuk export hasil Monev yang dibagikan ke pimpinan. Nilai likert diberi
// labelnya supaya terbaca tanpa legenda.
func RenderResultsCSV(categories []questionModel.CategoryModel, subs []model.SubmissionModel) ([]byte, error) {
	header := []string{"Waktu", "NIP", "Nama Dosen", "Mata Kuliah", "Kode Kelas", "Semester"}
	type qcol struct {
		q        questionModel.QuestionModel
		catTitle string
	}
	var qcols []qcol
	for _, cat := range categories {
		for _, q := range cat.Questions {
			header = append(header, fmt.Sprintf("[%s] %s", cat.CategoryTitle, q.QuestionText))
			qcols = append(qcols, qcol{q: q, catTitle: cat.CategoryTitle})
		}
	}
	header = append(header, "Catatan Positif", "Kendala/Hambatan")

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, sub := range subs {
		answers := DecodeAnswerSet(sub.Answers)
		row := []string{
			sub.SubmissionTimestamp.Format("02/01/2006 15:04:05"),
			sub.SubmissionNIP,
			sub.SubmissionLecturerName,
			sub.SubmissionSubjectName,
			sub.SubmissionClassCode,
			sub.SubmissionSemester,
		}
		for _, col := range qcols {
			row = append(row, renderAnswerCell(col.q, answers[col.q.QuestionID]))
		}
		row = append(row, orDash(sub.SubmissionPositiveFeedback), orDash(sub.SubmissionConstructiveFeedback))
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func renderAnswerCell(q questionModel.QuestionModel, val interface{}) string {
	if val == nil || val == "" {
		return "-"
	}
	if q.QuestionType == "" || q.QuestionType == questionModel.QuestionTypeLikert {
		if n, ok := toInt(val); ok && n >= constants.LikertMin && n <= constants.LikertMax {
			return fmt.Sprintf("%d - %s", n, constants.LikertLabels[n])
		}
	}
	return toString(val)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
