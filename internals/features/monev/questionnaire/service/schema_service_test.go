package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"monevpdb_backend/internals/features/monev/questionnaire/dto"
	"monevpdb_backend/internals/features/monev/questionnaire/model"
)

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name       string
		categories []dto.CategoryInput
		want       []string
	}{
		{
			name: "skema valid",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: "Pedagogik", Questions: []dto.QuestionInput{
					{ID: "q1", Text: "Penguasaan kelas", Type: model.QuestionTypeLikert},
					{ID: "q2", Text: "Metode", Type: model.QuestionTypeChoice, Options: []string{"Daring", "Luring"}},
				}},
			},
			want: nil,
		},
		{
			name: "judul kategori kosong",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: ""},
			},
			want: []string{`Kategori "cat_1": judul tidak boleh kosong.`},
		},
		{
			name: "pilihan tanpa opsi",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: "Pedagogik", Questions: []dto.QuestionInput{
					{ID: "q1", Text: "Metode", Type: model.QuestionTypeChoice},
				}},
			},
			want: []string{`Pertanyaan "q1": tipe pilihan harus punya minimal satu opsi.`},
		},
		{
			name: "id pertanyaan ganda dalam satu kategori",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: "Pedagogik", Questions: []dto.QuestionInput{
					{ID: "q1", Text: "A", Type: model.QuestionTypeLikert},
					{ID: "q1", Text: "B", Type: model.QuestionTypeLikert},
				}},
			},
			want: []string{`ID pertanyaan "q1" ganda di kategori "cat_1".`},
		},
		{
			name: "id pertanyaan tabrakan lintas kategori",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: "Pedagogik", Questions: []dto.QuestionInput{
					{ID: "q1", Text: "A", Type: model.QuestionTypeLikert},
				}},
				{ID: "cat_2", Title: "Profesional", Questions: []dto.QuestionInput{
					{ID: "q1", Text: "B", Type: model.QuestionTypeLikert},
				}},
			},
			want: []string{`ID pertanyaan "q1" sudah dipakai di kategori lain.`},
		},
		{
			// tipe di luar enum harus mental di sini — kalau lolos tersimpan,
			// setiap submission untuk pertanyaan itu gagal di-encode
			name: "tipe pertanyaan tidak dikenal",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: "Pedagogik", Questions: []dto.QuestionInput{
					{ID: "q1", Text: "Metode", Type: "dropdown"},
				}},
			},
			want: []string{`Pertanyaan "q1": tipe "dropdown" tidak dikenal.`},
		},
		{
			name: "kategori tanpa ID",
			categories: []dto.CategoryInput{
				{ID: "", Title: "Pedagogik"},
			},
			want: []string{"Ada kategori tanpa ID."},
		},
		{
			name: "pertanyaan tanpa ID",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: "Pedagogik", Questions: []dto.QuestionInput{
					{ID: "", Text: "Metode"},
				}},
			},
			want: []string{`Kategori "cat_1": ada pertanyaan tanpa ID.`},
		},
		{
			name: "teks pertanyaan kosong",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: "Pedagogik", Questions: []dto.QuestionInput{
					{ID: "q1", Text: ""},
				}},
			},
			want: []string{`Pertanyaan "q1": teks tidak boleh kosong.`},
		},
		{
			name: "id kategori ganda",
			categories: []dto.CategoryInput{
				{ID: "cat_1", Title: "Pedagogik"},
				{ID: "cat_1", Title: "Profesional"},
			},
			want: []string{`ID kategori "cat_1" dipakai lebih dari sekali.`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSchema(tt.categories))
		})
	}
}

func TestValidateSchemaCollectsAllErrors(t *testing.T) {
	categories := []dto.CategoryInput{
		{ID: "cat_1", Title: "", Questions: []dto.QuestionInput{
			{ID: "q1", Text: "Metode", Type: model.QuestionTypeChoice},
		}},
	}
	assert.Len(t, ValidateSchema(categories), 2)
}

func TestToCategoryModelsAssignsSortOrder(t *testing.T) {
	inputs := []dto.CategoryInput{
		{ID: "cat_1", Title: "Pedagogik", Questions: []dto.QuestionInput{
			{ID: "q1", Text: "A"},
			{ID: "q2", Text: "B", Type: model.QuestionTypeText},
		}},
		{ID: "cat_2", Title: "Profesional"},
	}

	models := dto.ToCategoryModels(inputs)

	assert.Equal(t, 0, models[0].CategorySortOrder)
	assert.Equal(t, 1, models[1].CategorySortOrder)
	assert.Equal(t, 0, models[0].Questions[0].QuestionSortOrder)
	assert.Equal(t, 1, models[0].Questions[1].QuestionSortOrder)
	// tipe kosong dinormalkan ke likert saat disimpan
	assert.Equal(t, model.QuestionTypeLikert, models[0].Questions[0].QuestionType)
	assert.Equal(t, "cat_1", models[0].Questions[0].QuestionCategoryID)
}
