package service

import (
	"math"

	"monevpdb_backend/internals/constants"
	questionModel "monevpdb_backend/internals/features/monev/questionnaire/model"
)

// BucketCount adalah satu batang chart: label + jumlah. Score terisi
// hanya untuk bucket likert.
type BucketCount struct {
	Label string `json:"name"`
	Score int    `json:"score,omitempty"`
	Count int    `json:"value"`
}

// QuestionStats adalah ringkasan satu pertanyaan untuk dashboard.
type QuestionStats struct {
	QuestionID     string        `json:"question_id"`
	QuestionType   string        `json:"question_type"`
	TotalResponses int           `json:"total_responses"`
	Mean           float64       `json:"mean"`            // hanya likert
	Chart          []BucketCount `json:"chart,omitempty"` // likert & choice
	Texts          []string      `json:"texts,omitempty"` // hanya text
}

// AggregateQuestion menghitung ringkasan per-tipe dari seluruh riwayat
// submission. Proyeksi read-only murni: dihitung ulang tiap diminta,
// tidak pernah mengubah data.
func AggregateQuestion(q questionModel.QuestionModel, answerSets []map[string]interface{}) QuestionStats {
	// kumpulkan jawaban tidak-kosong untuk pertanyaan ini
	var answers []interface{}
	for _, set := range answerSets {
		val, ok := set[q.QuestionID]
		if !ok || val == nil || val == "" {
			continue
		}
		answers = append(answers, val)
	}

	stats := QuestionStats{
		QuestionID:     q.QuestionID,
		QuestionType:   q.QuestionType,
		TotalResponses: len(answers),
	}
	if stats.QuestionType == "" {
		stats.QuestionType = questionModel.QuestionTypeLikert
	}

	switch q.QuestionType {
	case questionModel.QuestionTypeChoice:
		// frekuensi per nilai persis yang pernah terkirim — termasuk opsi
		// yang sudah dihapus admin dari skema
		counts := map[string]int{}
		var order []string
		for _, val := range answers {
			s := toString(val)
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}
		for _, label := range order {
			stats.Chart = append(stats.Chart, BucketCount{Label: label, Count: counts[label]})
		}

	case questionModel.QuestionTypeText:
		for _, val := range answers {
			stats.Texts = append(stats.Texts, toString(val))
		}

	default: // likert, termasuk tipe kosong/tidak dikenal
		counts := map[int]int{}
		sum, n := 0, 0
		for _, val := range answers {
			num, ok := toInt(val)
			if !ok || num < constants.LikertMin || num > constants.LikertMax {
				continue
			}
			counts[num]++
			sum += num
			n++
		}
		if n > 0 {
			stats.Mean = math.Round(float64(sum)/float64(n)*100) / 100
		}
		for score := constants.LikertMin; score <= constants.LikertMax; score++ {
			stats.Chart = append(stats.Chart, BucketCount{
				Label: constants.LikertLabels[score],
				Score: score,
				Count: counts[score],
			})
		}
	}

	return stats
}
