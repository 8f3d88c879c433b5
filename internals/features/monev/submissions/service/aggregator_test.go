package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	questionModel "monevpdb_backend/internals/features/monev/questionnaire/model"
)

func sets(vals ...interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(vals))
	for _, v := range vals {
		out = append(out, map[string]interface{}{"q1": v})
	}
	return out
}

func TestAggregateLikert(t *testing.T) {
	q := questionModel.QuestionModel{QuestionID: "q1", QuestionType: questionModel.QuestionTypeLikert}
	stats := AggregateQuestion(q, sets(5, 5, 4, 3))

	assert.Equal(t, 4, stats.TotalResponses)
	assert.Equal(t, 4.25, stats.Mean)
	require.Len(t, stats.Chart, 5)
	assert.Equal(t, BucketCount{Label: "Sangat Kurang", Score: 1, Count: 0}, stats.Chart[0])
	assert.Equal(t, BucketCount{Label: "Cukup", Score: 3, Count: 1}, stats.Chart[2])
	assert.Equal(t, BucketCount{Label: "Baik", Score: 4, Count: 1}, stats.Chart[3])
	assert.Equal(t, BucketCount{Label: "Sangat Baik", Score: 5, Count: 2}, stats.Chart[4])
}

func TestAggregateLikertRoundsMean(t *testing.T) {
	q := questionModel.QuestionModel{QuestionID: "q1", QuestionType: questionModel.QuestionTypeLikert}
	// (5+4+4)/3 = 4.333... → 4.33
	stats := AggregateQuestion(q, sets(5, 4, 4))
	assert.Equal(t, 4.33, stats.Mean)
}

func TestAggregateLikertIgnoresOutOfRange(t *testing.T) {
	q := questionModel.QuestionModel{QuestionID: "q1", QuestionType: questionModel.QuestionTypeLikert}
	stats := AggregateQuestion(q, sets(5, 99, 3))

	// data rusak tetap terhitung sebagai respons, tapi tidak masuk bucket/mean
	assert.Equal(t, 3, stats.TotalResponses)
	assert.Equal(t, 4.0, stats.Mean)
	total := 0
	for _, b := range stats.Chart {
		total += b.Count
	}
	assert.Equal(t, 2, total)
}

func TestAggregateChoiceFirstSeenOrder(t *testing.T) {
	q := questionModel.QuestionModel{QuestionID: "q1", QuestionType: questionModel.QuestionTypeChoice}
	stats := AggregateQuestion(q, sets("Daring", "Daring", "Luring", "Opsi Lama"))

	assert.Equal(t, 4, stats.TotalResponses)
	assert.Equal(t, []BucketCount{
		{Label: "Daring", Count: 2},
		{Label: "Luring", Count: 1},
		{Label: "Opsi Lama", Count: 1}, // opsi yang sudah dihapus dari skema tetap muncul
	}, stats.Chart)
	assert.Zero(t, stats.Mean)
}

func TestAggregateText(t *testing.T) {
	q := questionModel.QuestionModel{QuestionID: "q1", QuestionType: questionModel.QuestionTypeText}
	stats := AggregateQuestion(q, sets("Materi jelas", "Perlu contoh kasus"))

	assert.Equal(t, 2, stats.TotalResponses)
	assert.Equal(t, []string{"Materi jelas", "Perlu contoh kasus"}, stats.Texts)
	assert.Empty(t, stats.Chart)
}

func TestAggregateSkipsEmptyAndMissing(t *testing.T) {
	q := questionModel.QuestionModel{QuestionID: "q1", QuestionType: questionModel.QuestionTypeText}
	answerSets := []map[string]interface{}{
		{"q1": "diisi"},
		{"q1": ""},          // dikirim kosong
		{"q1": nil},         // null
		{"qx": "lain soal"}, // tidak menjawab q1
	}
	stats := AggregateQuestion(q, answerSets)
	assert.Equal(t, 1, stats.TotalResponses)
}

func TestAggregateUntypedQuestionTreatedAsLikert(t *testing.T) {
	q := questionModel.QuestionModel{QuestionID: "q1"}
	stats := AggregateQuestion(q, sets(4, 4))

	assert.Equal(t, questionModel.QuestionTypeLikert, stats.QuestionType)
	assert.Equal(t, 4.0, stats.Mean)
}
