package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"monevpdb_backend/internals/configs"
	DraftModel "monevpdb_backend/internals/features/monev/drafts/model"
	LecturerModel "monevpdb_backend/internals/features/monev/lecturers/model"
	QuestionnaireModel "monevpdb_backend/internals/features/monev/questionnaire/model"
	SubjectModel "monevpdb_backend/internals/features/monev/subjects/model"
	SubmissionModel "monevpdb_backend/internals/features/monev/submissions/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=monevpdb&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menyiapkan seluruh tabel Monev PDB. Unique index pada kunci
// duplikat submission ikut terpasang di sini (lihat model submission).
func Migrate() {
	if err := DB.AutoMigrate(
		&LecturerModel.LecturerModel{},
		&SubjectModel.SubjectModel{},
		&QuestionnaireModel.CategoryModel{},
		&QuestionnaireModel.QuestionModel{},
		&SubmissionModel.SubmissionModel{},
		&SubmissionModel.SubmissionAnswerModel{},
		&DraftModel.DraftModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}
	log.Println("✅ Migrasi skema selesai.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
