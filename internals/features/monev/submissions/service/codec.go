package service

import (
	"fmt"
	"math"
	"strconv"

	questionModel "monevpdb_backend/internals/features/monev/questionnaire/model"
	"monevpdb_backend/internals/features/monev/submissions/model"
)

// EncodedAnswer adalah bentuk simpan satu jawaban: diskriminan tipe +
// kolom angka + kolom teks. Transform murni, tanpa efek samping.
type EncodedAnswer struct {
	Type   string
	Rating int
	Text   *string
}

// EncodeAnswer mengubah nilai mentah dari form menjadi bentuk simpan sesuai
// tipe pertanyaannya. Tipe kosong (pertanyaan yang sudah dihapus dari skema
// tapi masih dikirim klien lama) diturunkan dari bentuk nilainya: angka →
// likert, selain itu teks.
func EncodeAnswer(questionType string, raw interface{}) (EncodedAnswer, error) {
	if questionType == "" {
		if _, ok := toInt(raw); ok {
			questionType = questionModel.QuestionTypeLikert
		} else {
			questionType = questionModel.QuestionTypeText
		}
	}

	switch questionType {
	case questionModel.QuestionTypeLikert:
		n, ok := toInt(raw)
		if !ok {
			return EncodedAnswer{}, fmt.Errorf("jawaban likert harus angka, dapat %T", raw)
		}
		// mirror teks dipertahankan untuk pembaca data lama
		mirror := strconv.Itoa(n)
		return EncodedAnswer{Type: questionModel.QuestionTypeLikert, Rating: n, Text: &mirror}, nil

	case questionModel.QuestionTypeChoice, questionModel.QuestionTypeText:
		s := toString(raw)
		return EncodedAnswer{Type: questionType, Text: &s}, nil

	default:
		return EncodedAnswer{}, fmt.Errorf("tipe pertanyaan tidak dikenal: %q", questionType)
	}
}

// DecodeAnswer mengembalikan nilai jawaban dari baris simpanan. Diskriminan
// yang dipercaya, bukan bentuk nilainya: jawaban pilihan "5" tetap string.
// Baris legacy tanpa tipe dibaca sebagai likert numerik.
func DecodeAnswer(a model.SubmissionAnswerModel) interface{} {
	switch a.SubmissionAnswerType {
	case questionModel.QuestionTypeChoice, questionModel.QuestionTypeText:
		if a.SubmissionAnswerText != nil {
			return *a.SubmissionAnswerText
		}
		return ""
	default:
		return a.SubmissionAnswerRating
	}
}

// DecodeAnswerSet menyusun kembali mapping questionId → nilai untuk satu
// submission.
func DecodeAnswerSet(answers []model.SubmissionAnswerModel) map[string]interface{} {
	out := make(map[string]interface{}, len(answers))
	for _, a := range answers {
		out[a.SubmissionAnswerQuestionID] = DecodeAnswer(a)
	}
	return out
}

func toInt(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func toString(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) {
			return strconv.Itoa(int(v))
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
