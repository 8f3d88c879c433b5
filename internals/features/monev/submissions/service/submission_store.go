package service

import (
	"strings"

	"gorm.io/gorm"

	questionModel "monevpdb_backend/internals/features/monev/questionnaire/model"
	"monevpdb_backend/internals/features/monev/submissions/model"
)

// BuildSubmission merangkai model submission + baris jawaban terenkode dari
// form yang sudah lolos validasi. Tipe tiap jawaban diambil dari pertanyaan
// pemiliknya di skema, bukan dari bentuk nilainya.
func BuildSubmission(id string, form FormInput, categories []questionModel.CategoryModel) (model.SubmissionModel, error) {
	typeByQuestion := map[string]string{}
	for _, cat := range categories {
		for _, q := range cat.Questions {
			typeByQuestion[q.QuestionID] = q.QuestionType
		}
	}

	sub := model.SubmissionModel{
		SubmissionID:                   id,
		SubmissionNIP:                  strings.TrimSpace(form.NIP),
		SubmissionLecturerName:         form.LecturerName,
		SubmissionSubjectName:          form.Subject,
		SubmissionClassCode:            form.ClassCode,
		SubmissionSemester:             form.Semester,
		SubmissionPositiveFeedback:     form.PositiveFeedback,
		SubmissionConstructiveFeedback: form.ConstructiveFeedback,
	}

	for qid, raw := range form.Answers {
		enc, err := EncodeAnswer(typeByQuestion[qid], raw)
		if err != nil {
			return model.SubmissionModel{}, err
		}
		sub.Answers = append(sub.Answers, model.SubmissionAnswerModel{
			SubmissionAnswerQuestionID: qid,
			SubmissionAnswerType:       enc.Type,
			SubmissionAnswerRating:     enc.Rating,
			SubmissionAnswerText:       enc.Text,
		})
	}
	return sub, nil
}

// CreateSubmission menyimpan submission + seluruh jawabannya dalam satu
// transaksi. Gagal di tengah = rollback total.
func CreateSubmission(db *gorm.DB, sub *model.SubmissionModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(sub).Error
	})
}

// DeleteSubmission menghapus submission beserta jawabannya. ON DELETE
// CASCADE sudah terpasang, tapi penghapusan eksplisit tetap dilakukan untuk
// berjaga bila constraint belum termigrasi di instalasi lama.
func DeleteSubmission(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_answer_submission_id = ?", id).
			Delete(&model.SubmissionAnswerModel{}).Error; err != nil {
			return err
		}
		return tx.Where("submission_id = ?", id).
			Delete(&model.SubmissionModel{}).Error
	})
}

// LoadSubmissions membaca seluruh riwayat, terbaru dulu, lengkap dengan
// baris jawabannya.
func LoadSubmissions(db *gorm.DB) ([]model.SubmissionModel, error) {
	var subs []model.SubmissionModel
	err := db.Preload("Answers").
		Order("submission_timestamp DESC").
		Find(&subs).Error
	return subs, err
}

// LoadPriorKeys mengambil kunci duplikat semua submission yang sudah ada.
func LoadPriorKeys(db *gorm.DB) ([]SubmissionKey, error) {
	var rows []model.SubmissionModel
	if err := db.Select("submission_nip", "submission_subject_name", "submission_class_code", "submission_semester").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	keys := make([]SubmissionKey, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, SubmissionKey{
			NIP:       r.SubmissionNIP,
			Subject:   r.SubmissionSubjectName,
			ClassCode: r.SubmissionClassCode,
			Semester:  r.SubmissionSemester,
		})
	}
	return keys, nil
}

// IsDuplicateKeyErr mengenali pelanggaran unique index kunci duplikat —
// backstop saat dua submit identik lolos validasi bersamaan.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "uq_submission_identity") || strings.Contains(msg, "23505")
}
