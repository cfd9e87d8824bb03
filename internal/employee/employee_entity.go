package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	NIP        string    `gorm:"uniqueIndex"`
	FullName   string
	Golongan   string
	Jabatan    string
	UnitKerja  string
	HireDate   time.Time `gorm:"type:date"`
	BaseSalary int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
