package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"monevpdb_backend/internals/features/monev/questionnaire/dto"
	"monevpdb_backend/internals/features/monev/questionnaire/model"
)

// Tes berbasis database nyata: aktif hanya bila TEST_DATABASE_URL diset.
// Semua perubahan dibungkus transaksi yang di-rollback setelah tes.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tidak diset, tes database dilewati")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CategoryModel{}, &model.QuestionModel{}))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func TestReplaceSchemaRoundTrip(t *testing.T) {
	db := openTestDB(t)

	inputs := []dto.CategoryInput{
		{ID: "cat_b", Title: "Profesional", Questions: []dto.QuestionInput{
			{ID: "q3", Text: "Metode", Type: model.QuestionTypeChoice, Options: []string{"Daring", "Luring"}},
		}},
		{ID: "cat_a", Title: "Pedagogik", Questions: []dto.QuestionInput{
			{ID: "q2", Text: "Penguasaan kelas"},
			{ID: "q1", Text: "Kendala", Type: model.QuestionTypeText},
		}},
	}
	require.NoError(t, ReplaceSchema(db, inputs))

	cats, err := LoadSchema(db)
	require.NoError(t, err)
	require.Len(t, cats, 2)

	// urutan tampil mengikuti urutan kiriman, bukan abjad
	assert.Equal(t, "cat_b", cats[0].CategoryID)
	assert.Equal(t, []string{"Daring", "Luring"}, []string(cats[0].Questions[0].QuestionOptions))

	require.Len(t, cats[1].Questions, 2)
	assert.Equal(t, "q2", cats[1].Questions[0].QuestionID)
	assert.Equal(t, "q1", cats[1].Questions[1].QuestionID)
	// tipe kosong tersimpan sebagai likert
	assert.Equal(t, model.QuestionTypeLikert, cats[1].Questions[0].QuestionType)
}

func TestReplaceSchemaDiscardsOldSchema(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, ReplaceSchema(db, []dto.CategoryInput{
		{ID: "cat_old", Title: "Lama", Questions: []dto.QuestionInput{
			{ID: "q_old", Text: "Pertanyaan lama"},
		}},
	}))
	require.NoError(t, ReplaceSchema(db, []dto.CategoryInput{
		{ID: "cat_new", Title: "Baru", Questions: []dto.QuestionInput{
			{ID: "q_new", Text: "Pertanyaan baru"},
		}},
	}))

	cats, err := LoadSchema(db)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "cat_new", cats[0].CategoryID)

	var orphans int64
	require.NoError(t, db.Model(&model.QuestionModel{}).Where("question_id = ?", "q_old").Count(&orphans).Error)
	assert.Zero(t, orphans)
}
