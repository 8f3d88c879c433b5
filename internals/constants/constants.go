package constants

// Pilihan semester pada formulir kuesioner.
var Semesters = []string{"Ganjil 2024/2025", "Genap 2024/2025"}

// Daftar fakultas/unit pengampu PDB.
var Faculties = []string{
	"Fakultas Kedokteran",
	"Fakultas Kedokteran Gigi",
	"Fakultas Hukum",
	"Fakultas Ekonomi dan Bisnis",
	"Fakultas Farmasi",
	"Fakultas Kedokteran Hewan",
	"Fakultas Ilmu Sosial dan Ilmu Politik",
	"Fakultas Sains dan Teknologi",
	"Fakultas Psikologi",
	"Sekolah Pascasarjana",
	"Fakultas Kesehatan Masyarakat",
	"Fakultas Ilmu Budaya",
	"Fakultas Keperawatan",
	"Fakultas Perikanan dan Kelautan",
	"Fakultas Vokasi",
	"Fakultas Teknologi Maju dan Multidisiplin",
	"Fakultas Ilmu Kesehatan, Kedokteran, dan Ilmu Alam",
}

// Mata Kuliah PDB Default (Fixed)
const (
	DefaultSubjectID   = "mk_pdb_01"
	DefaultSubjectName = "Pembelajaran Dasar Bersama (PDB)"
)

// Label skala Likert 1..5 (indeks 0 sengaja kosong).
var LikertLabels = []string{"", "Sangat Kurang", "Kurang", "Cukup", "Baik", "Sangat Baik"}

const (
	LikertMin = 1
	LikertMax = 5
)

const APIVersion = "1.3"
