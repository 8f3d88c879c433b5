package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monevpdb_backend/internals/features/monev/lecturers/model"
)

func TestValidateRoster(t *testing.T) {
	lecturers := []model.LecturerModel{
		{LecturerID: "l1", LecturerNIP: "1001", LecturerName: "Dr. Budi Santoso"},
		{LecturerID: "", LecturerNIP: "1002", LecturerName: "Prof. Siti Aminah"},
		{LecturerID: "l3", LecturerNIP: "1003", LecturerName: ""},
	}
	assert.Equal(t, []string{
		"Dosen urutan 2: ID wajib diisi.",
		"Dosen urutan 3: nama wajib diisi.",
	}, ValidateRoster(lecturers))

	assert.Empty(t, ValidateRoster(lecturers[:1]))
}

func TestMergeRoster(t *testing.T) {
	current := []model.LecturerModel{
		{LecturerID: "l1", LecturerNIP: "1001", LecturerName: "Dr. Budi Santoso", LecturerDepartment: "FKIP"},
		{LecturerID: "l2", LecturerNIP: "1002", LecturerName: "Prof. Siti Aminah", LecturerDepartment: "FEB"},
	}
	imported := []model.LecturerModel{
		{LecturerNIP: "1001", LecturerName: "Dr. Budi Santoso, M.Pd.", LecturerDepartment: "FKIP"},
		{LecturerNIP: "1003", LecturerName: "Dr. Andi Wijaya", LecturerDepartment: "FT"},
	}

	merged, updated, added := MergeRoster(current, imported)

	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, added)
	require.Len(t, merged, 3)

	// NIP sama → data diperbarui, ID sistem dipertahankan
	assert.Equal(t, "l1", merged[0].LecturerID)
	assert.Equal(t, "Dr. Budi Santoso, M.Pd.", merged[0].LecturerName)

	// dosen lama yang tidak ada di file import tidak hilang
	assert.Equal(t, "Prof. Siti Aminah", merged[1].LecturerName)

	// dosen baru mendapat ID hasil generate
	assert.Equal(t, "Dr. Andi Wijaya", merged[2].LecturerName)
	assert.True(t, strings.HasPrefix(merged[2].LecturerID, "L"))
}

func TestMergeRosterTrimsNIP(t *testing.T) {
	current := []model.LecturerModel{
		{LecturerID: "l1", LecturerNIP: "1001", LecturerName: "Dr. Budi Santoso"},
	}
	imported := []model.LecturerModel{
		{LecturerNIP: " 1001 ", LecturerName: "Dr. Budi Santoso, M.Pd."},
	}

	merged, updated, added := MergeRoster(current, imported)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 0, added)
	assert.Len(t, merged, 1)
}

func TestParseRosterCSVExportHeader(t *testing.T) {
	input := "NIP,Nama Lengkap,Unit / Departemen,ID Sistem (Jangan Ubah)\n" +
		"1001,Dr. Budi Santoso,FKIP,l1\n" +
		",Dosen Tanpa NIP,FT,\n" +
		"1002,,,l9\n" // tanpa nama → diabaikan

	out, err := ParseRosterCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, model.LecturerModel{
		LecturerID: "l1", LecturerNIP: "1001",
		LecturerName: "Dr. Budi Santoso", LecturerDepartment: "FKIP",
	}, out[0])
	assert.Equal(t, "Dosen Tanpa NIP", out[1].LecturerName)
}

func TestParseRosterCSVRawHeader(t *testing.T) {
	input := "nip,name,department\n1001,Dr. Budi Santoso,FKIP\n"

	out, err := ParseRosterCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Dr. Budi Santoso", out[0].LecturerName)
	assert.Empty(t, out[0].LecturerID)
}

func TestParseRosterCSVMissingColumns(t *testing.T) {
	_, err := ParseRosterCSV(strings.NewReader("kolom_a,kolom_b\nx,y\n"))
	assert.Error(t, err)
}

func TestParseRosterCSVEmptyFile(t *testing.T) {
	_, err := ParseRosterCSV(strings.NewReader("NIP,Nama Lengkap\n"))
	assert.Error(t, err)
}

func TestRenderRosterCSVRoundTrip(t *testing.T) {
	lecturers := []model.LecturerModel{
		{LecturerID: "l1", LecturerNIP: "1001", LecturerName: "Dr. Budi Santoso", LecturerDepartment: "FKIP"},
	}

	out, err := RenderRosterCSV(lecturers)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"NIP", "Nama Lengkap", "Unit / Departemen", "ID Sistem (Jangan Ubah)"}, rows[0])

	parsed, err := ParseRosterCSV(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, lecturers, parsed)
}
