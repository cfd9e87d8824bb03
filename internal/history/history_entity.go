package history

import (
	"time"

	"github.com/google/uuid"
)

// KGBRecord adalah satu baris riwayat kenaikan gaji berkala yang sudah
// selesai (SK terbit). ProposalID unik: satu usulan hanya menghasilkan
// satu baris riwayat.
type KGBRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProposalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_kgb_records_proposal"`

	EmployeeNIP  string `gorm:"type:varchar(30);not null;index:idx_kgb_records_nip"`
	EmployeeName string `gorm:"type:varchar(120);not null"`

	OldBaseSalary int64 `gorm:"not null;default:0"`
	NewBaseSalary int64 `gorm:"not null"`

	LetterNumber    string    `gorm:"type:varchar(60);not null"`
	LetterIssueDate time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
