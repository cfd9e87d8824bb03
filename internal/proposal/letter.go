package proposal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DecisionLetter adalah representasi SK Kenaikan Gaji Berkala yang
// siap dirender. Membangunnya adalah komputasi murni: tidak membaca
// storage dan tidak memvalidasi ulang status usulan (tanggung jawab
// service sebelum memanggil).
type DecisionLetter struct {
	LetterNumber string
	IssueDate    time.Time

	EmployeeName  string
	EmployeeNIP   string
	Golongan      string
	Jabatan       string
	UnitKerja     string
	MasaKerja     string
	OldBaseSalary int64
	NewBaseSalary int64
}

func BuildDecisionLetter(p Proposal, letterNumber string, issueDate time.Time) DecisionLetter {
	return DecisionLetter{
		LetterNumber:  letterNumber,
		IssueDate:     issueDate,
		EmployeeName:  p.EmployeeName,
		EmployeeNIP:   p.EmployeeNIP,
		Golongan:      p.Golongan,
		Jabatan:       p.Jabatan,
		UnitKerja:     p.UnitKerja,
		MasaKerja:     p.MasaKerja,
		OldBaseSalary: p.OldBaseSalary,
		NewBaseSalary: p.NewBaseSalary,
	}
}

// Lines menyusun isi surat baris per baris, layout mengikuti template
// SK pemberitahuan KGB ANRI.
func (l DecisionLetter) Lines() []string {
	lines := []string{
		"ARSIP NASIONAL REPUBLIK INDONESIA",
		"",
		"SURAT PEMBERITAHUAN KENAIKAN GAJI BERKALA",
		"No: " + l.LetterNumber,
		"",
		"Diberitahukan kepada Pegawai Negeri Sipil:",
		"",
		"Nama            : " + l.EmployeeName,
		"NIP             : " + l.EmployeeNIP,
		"Golongan        : " + l.Golongan,
	}

	if l.Jabatan != "" {
		lines = append(lines, "Jabatan         : "+l.Jabatan)
	}
	if l.UnitKerja != "" {
		lines = append(lines, "Unit Kerja      : "+l.UnitKerja)
	}
	if l.MasaKerja != "" {
		lines = append(lines, "Masa Kerja      : "+l.MasaKerja)
	}

	if l.OldBaseSalary > 0 {
		lines = append(lines, "Gaji Pokok Lama : "+FormatRupiah(l.OldBaseSalary))
	}

	lines = append(lines,
		"Gaji Pokok Baru : "+FormatRupiah(l.NewBaseSalary),
		"",
		"Jakarta, "+FormatTanggalIndonesia(l.IssueDate),
		"",
		"Kepala Biro Kepegawaian",
	)

	return lines
}

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggalIndonesia memformat tanggal gaya surat dinas: "10 Januari 2026"
func FormatTanggalIndonesia(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}

// FormatRupiah memformat nominal dengan pemisah ribuan titik: Rp4.500.000
func FormatRupiah(v int64) string {
	digits := strconv.FormatInt(v, 10)
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}
