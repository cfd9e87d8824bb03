package proposal

import (
	"time"

	"github.com/google/uuid"
)

// Proposal adalah usulan Kenaikan Gaji Berkala satu pegawai.
// Field identitas pegawai adalah snapshot saat usulan dibuat,
// bukan referensi ke master pegawai.
type Proposal struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EmployeeNIP  string `gorm:"type:varchar(30);not null;index:idx_proposals_nip"`
	EmployeeName string `gorm:"type:varchar(120);not null"`
	Golongan     string `gorm:"type:varchar(10);not null"`
	Jabatan      string `gorm:"type:varchar(120)"`
	UnitKerja    string `gorm:"type:varchar(120)"`
	MasaKerja    string `gorm:"type:varchar(60)"`

	OldBaseSalary  int64     `gorm:"not null;default:0"`
	NewBaseSalary  int64     `gorm:"not null"`
	SubmissionDate time.Time `gorm:"type:date;not null"`

	Status     string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_proposals_status"`
	ReviewNote *string    `gorm:"type:text"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time

	LetterNumber    *string    `gorm:"type:varchar(60)"`
	LetterIssueDate *time.Time `gorm:"type:date"`

	DecisionFileName *string `gorm:"type:varchar(255)"`
	DecisionFileData []byte  `gorm:"type:bytea"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
