package service

import (
	"fmt"

	"gorm.io/gorm"

	"monevpdb_backend/internals/features/monev/questionnaire/dto"
	"monevpdb_backend/internals/features/monev/questionnaire/model"
)

// ValidateSchema memeriksa payload replace sebelum menyentuh database.
// Seluruh masalah dikumpulkan sekaligus supaya admin melihat semuanya
// dalam satu kali simpan.
func ValidateSchema(categories []dto.CategoryInput) []string {
	var errs []string
	seenQuestion := map[string]string{} // question id -> category id
	seenCategory := map[string]bool{}

	for _, cat := range categories {
		if cat.ID == "" {
			errs = append(errs, "Ada kategori tanpa ID.")
		}
		if cat.Title == "" {
			errs = append(errs, fmt.Sprintf("Kategori %q: judul tidak boleh kosong.", cat.ID))
		}
		if seenCategory[cat.ID] {
			errs = append(errs, fmt.Sprintf("ID kategori %q dipakai lebih dari sekali.", cat.ID))
		}
		seenCategory[cat.ID] = true

		for _, q := range cat.Questions {
			if q.ID == "" {
				errs = append(errs, fmt.Sprintf("Kategori %q: ada pertanyaan tanpa ID.", cat.ID))
				continue
			}
			if q.Text == "" {
				errs = append(errs, fmt.Sprintf("Pertanyaan %q: teks tidak boleh kosong.", q.ID))
			}
			// tipe di luar enum ditolak di sini, bukan nanti saat dosen
			// mengisi dan jawabannya gagal di-encode
			switch q.Type {
			case "", model.QuestionTypeLikert, model.QuestionTypeChoice, model.QuestionTypeText:
			default:
				errs = append(errs, fmt.Sprintf("Pertanyaan %q: tipe %q tidak dikenal.", q.ID, q.Type))
			}
			if q.Type == model.QuestionTypeChoice && len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("Pertanyaan %q: tipe pilihan harus punya minimal satu opsi.", q.ID))
			}
			if prev, ok := seenQuestion[q.ID]; ok && prev == cat.ID {
				errs = append(errs, fmt.Sprintf("ID pertanyaan %q ganda di kategori %q.", q.ID, cat.ID))
			} else if ok {
				// id pertanyaan adalah primary key global, tabrakan lintas
				// kategori juga tidak bisa disimpan
				errs = append(errs, fmt.Sprintf("ID pertanyaan %q sudah dipakai di kategori lain.", q.ID))
			}
			seenQuestion[q.ID] = cat.ID
		}
	}
	return errs
}

// ReplaceSchema mengganti seluruh skema secara atomik: hapus semua
// pertanyaan + kategori lama lalu sisipkan yang baru dalam satu transaksi.
// Gagal di tengah jalan = rollback, skema lama tetap utuh.
func ReplaceSchema(db *gorm.DB, categories []dto.CategoryInput) error {
	models := dto.ToCategoryModels(categories)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.QuestionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.CategoryModel{}).Error; err != nil {
			return err
		}
		for i := range models {
			if err := tx.Create(&models[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadSchema membaca skema lengkap dengan urutan tampil yang stabil.
func LoadSchema(db *gorm.DB) ([]model.CategoryModel, error) {
	var categories []model.CategoryModel
	err := db.
		Preload("Questions", func(q *gorm.DB) *gorm.DB {
			return q.Order("question_sort_order ASC")
		}).
		Order("category_sort_order ASC, category_title ASC").
		Find(&categories).Error
	return categories, err
}
