package seeds

import (
	"log"

	"gorm.io/gorm"

	"monevpdb_backend/internals/constants"
	lecturerModel "monevpdb_backend/internals/features/monev/lecturers/model"
	questionnaireModel "monevpdb_backend/internals/features/monev/questionnaire/model"
	subjectModel "monevpdb_backend/internals/features/monev/subjects/model"
)

// SeedDefaults mengisi data awal bila tabel masih kosong, supaya instalasi
// baru langsung punya kuesioner yang bisa diisi.
func SeedDefaults(db *gorm.DB) {
	seedSubjects(db)
	seedCategories(db)
	seedLecturers(db)
}

func seedSubjects(db *gorm.DB) {
	var count int64
	db.Model(&subjectModel.SubjectModel{}).Count(&count)
	if count > 0 {
		return
	}
	if err := db.Create(&subjectModel.SubjectModel{
		SubjectID:   constants.DefaultSubjectID,
		SubjectName: constants.DefaultSubjectName,
	}).Error; err != nil {
		log.Printf("[SEED] subjects gagal: %v", err)
		return
	}
	log.Println("🌱 Seed mata kuliah default.")
}

func seedCategories(db *gorm.DB) {
	var count int64
	db.Model(&questionnaireModel.CategoryModel{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []questionnaireModel.CategoryModel{
		{
			CategoryID:          "cat_1",
			CategoryTitle:       "Pedagogik",
			CategoryDescription: "Kemampuan mengelola pembelajaran",
			CategorySortOrder:   0,
			Questions: []questionnaireModel.QuestionModel{
				{QuestionID: "q1", QuestionCategoryID: "cat_1", QuestionText: "Dosen menyampaikan materi dengan jelas", QuestionType: questionnaireModel.QuestionTypeLikert, QuestionSortOrder: 0},
				{QuestionID: "q2", QuestionCategoryID: "cat_1", QuestionText: "Dosen menggunakan metode pembelajaran yang variatif", QuestionType: questionnaireModel.QuestionTypeLikert, QuestionSortOrder: 1},
			},
		},
		{
			CategoryID:          "cat_2",
			CategoryTitle:       "Profesional",
			CategoryDescription: "Penguasaan materi pembelajaran",
			CategorySortOrder:   1,
			Questions: []questionnaireModel.QuestionModel{
				{QuestionID: "q3", QuestionCategoryID: "cat_2", QuestionText: "Dosen menguasai materi perkuliahan", QuestionType: questionnaireModel.QuestionTypeLikert, QuestionSortOrder: 0},
				{QuestionID: "q4", QuestionCategoryID: "cat_2", QuestionText: "Dosen menjawab pertanyaan mahasiswa dengan baik", QuestionType: questionnaireModel.QuestionTypeLikert, QuestionSortOrder: 1},
			},
		},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Printf("[SEED] categories gagal: %v", err)
			return
		}
	}
	log.Println("🌱 Seed kategori kuesioner default.")
}

func seedLecturers(db *gorm.DB) {
	var count int64
	db.Model(&lecturerModel.LecturerModel{}).Count(&count)
	if count > 0 {
		return
	}
	lecturers := []lecturerModel.LecturerModel{
		{LecturerID: "l1", LecturerNIP: "198001012005011001", LecturerName: "Dr. Budi Santoso", LecturerDepartment: "Fakultas Kedokteran"},
		{LecturerID: "l2", LecturerNIP: "198502022010012002", LecturerName: "Prof. Siti Aminah", LecturerDepartment: "Fakultas Ekonomi dan Bisnis"},
	}
	if err := db.Create(&lecturers).Error; err != nil {
		log.Printf("[SEED] lecturers gagal: %v", err)
		return
	}
	log.Println("🌱 Seed dosen contoh.")
}
