package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"monevpdb_backend/internals/features/monev/lecturers/model"
)

// Header kolom roster, sama dengan file Excel yang dibagikan ke admin.
var rosterHeader = []string{"NIP", "Nama Lengkap", "Unit / Departemen", "ID Sistem (Jangan Ubah)"}

// ValidateRoster memeriksa payload replace sebelum menyentuh database.
// Seluruh masalah dikumpulkan sekaligus.
func ValidateRoster(lecturers []model.LecturerModel) []string {
	var errs []string
	for i, l := range lecturers {
		if l.LecturerID == "" {
			errs = append(errs, fmt.Sprintf("Dosen urutan %d: ID wajib diisi.", i+1))
		}
		if l.LecturerName == "" {
			errs = append(errs, fmt.Sprintf("Dosen urutan %d: nama wajib diisi.", i+1))
		}
	}
	return errs
}

// ReplaceRoster mengganti seluruh data dosen dalam satu transaksi
// (full-replace, seperti aksi update_lecturers).
func ReplaceRoster(db *gorm.DB, lecturers []model.LecturerModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.LecturerModel{}).Error; err != nil {
			return err
		}
		for i := range lecturers {
			if err := tx.Create(&lecturers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// MergeRoster menggabungkan hasil import dengan data yang sudah ada:
// NIP sama → update nama/unit, NIP baru → tambah, data lama yang tidak ada
// di file import dipertahankan.
func MergeRoster(current, imported []model.LecturerModel) (merged []model.LecturerModel, updated, added int) {
	merged = append(merged, current...)

	index := map[string]int{} // nip -> posisi di merged
	for i, l := range merged {
		if nip := strings.TrimSpace(l.LecturerNIP); nip != "" {
			index[nip] = i
		}
	}

	for _, imp := range imported {
		nip := strings.TrimSpace(imp.LecturerNIP)
		if pos, ok := index[nip]; nip != "" && ok {
			merged[pos].LecturerName = imp.LecturerName
			merged[pos].LecturerDepartment = imp.LecturerDepartment
			updated++
			continue
		}
		if imp.LecturerID == "" {
			imp.LecturerID = "L" + uuid.NewString()
		}
		merged = append(merged, imp)
		if nip != "" {
			index[nip] = len(merged) - 1
		}
		added++
	}
	return merged, updated, added
}

// ParseRosterCSV membaca file roster. Nama kolom longgar: menerima header
// versi export maupun versi mentah (nip/name/department).
func ParseRosterCSV(r io.Reader) ([]model.LecturerModel, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("file CSV tidak valid: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file CSV kosong")
	}

	col := map[string]int{}
	for i, h := range records[0] {
		col[normalizeHeader(h)] = i
	}
	nipIdx, okNip := pickColumn(col, "nip")
	nameIdx, okName := pickColumn(col, "nama lengkap", "name", "nama")
	deptIdx, _ := pickColumn(col, "unit / departemen", "department", "unit")
	idIdx, _ := pickColumn(col, "id sistem (jangan ubah)", "id sistem", "id")
	if !okNip || !okName {
		return nil, fmt.Errorf("kolom NIP / Nama Lengkap tidak ditemukan")
	}

	var out []model.LecturerModel
	for _, row := range records[1:] {
		l := model.LecturerModel{
			LecturerNIP:  strings.TrimSpace(cell(row, nipIdx)),
			LecturerName: strings.TrimSpace(cell(row, nameIdx)),
		}
		if deptIdx >= 0 {
			l.LecturerDepartment = strings.TrimSpace(cell(row, deptIdx))
		}
		if idIdx >= 0 {
			l.LecturerID = strings.TrimSpace(cell(row, idIdx))
		}
		// baris tanpa nama diabaikan
		if l.LecturerName == "" {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// RenderRosterCSV menghasilkan file roster untuk diunduh admin.
func RenderRosterCSV(lecturers []model.LecturerModel) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(rosterHeader); err != nil {
		return nil, err
	}
	for _, l := range lecturers {
		if err := w.Write([]string{l.LecturerNIP, l.LecturerName, l.LecturerDepartment, l.LecturerID}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func pickColumn(col map[string]int, names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := col[n]; ok {
			return i, true
		}
	}
	return -1, false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
