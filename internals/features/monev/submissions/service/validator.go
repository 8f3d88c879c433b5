package service

import (
	"fmt"
	"strings"

	questionModel "monevpdb_backend/internals/features/monev/questionnaire/model"
)

// FormInput adalah isi formulir yang hendak disubmit dosen.
type FormInput struct {
	NIP                  string
	LecturerName         string
	Subject              string
	ClassCode            string
	Semester             string
	Answers              map[string]interface{}
	PositiveFeedback     string
	ConstructiveFeedback string
}

// SubmissionKey adalah kunci duplikat: satu kuesioner per dosen per mata
// kuliah per kelas per semester.
type SubmissionKey struct {
	NIP       string
	Subject   string
	ClassCode string
	Semester  string
}

func (f FormInput) Key() SubmissionKey {
	return SubmissionKey{
		NIP:       strings.TrimSpace(f.NIP),
		Subject:   f.Subject,
		ClassCode: f.ClassCode,
		Semester:  f.Semester,
	}
}

// ValidateSubmission menjalankan tiga pemeriksaan (identitas, kelengkapan,
// duplikat) dan mengumpulkan SEMUA pesannya — tidak berhenti di masalah
// pertama, supaya dosen melihat seluruh yang harus diperbaiki sekaligus.
// Submit boleh lanjut hanya jika hasilnya kosong.
func ValidateSubmission(form FormInput, categories []questionModel.CategoryModel, priorKeys []SubmissionKey) []string {
	var errs []string

	if form.LecturerName == "" {
		errs = append(errs, "Silakan pilih Nama Dosen (Diri Sendiri).")
	}
	if form.Subject == "" {
		errs = append(errs, "Silakan pilih Mata Kuliah yang diampu.")
	}

	// Kelengkapan dihitung dari KEBERADAAN key, bukan truthiness nilainya:
	// jawaban kosong/nol yang memang terkirim tetap dihitung terisi.
	total := 0
	answered := 0
	for _, cat := range categories {
		for _, q := range cat.Questions {
			total++
			if _, ok := form.Answers[q.QuestionID]; ok {
				answered++
			}
		}
	}
	if answered < total {
		errs = append(errs, fmt.Sprintf("Harap lengkapi semua pertanyaan (%d/%d terisi).", answered, total))
	}

	key := form.Key()
	for _, prior := range priorKeys {
		if prior == key {
			errs = append(errs, "Anda sudah mengisi kuisioner.")
			break
		}
	}

	return errs
}
