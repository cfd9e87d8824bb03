package history

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *KGBRecord) error
	FindAll(ctx context.Context, search string) ([]KGBRecord, error)
	FindByNIP(ctx context.Context, nip string) ([]KGBRecord, error)
	FindByProposalID(ctx context.Context, proposalID string) (*KGBRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengikat query gorm ke koneksi transaksi pemanggil supaya
// cek duplikat dan insert riwayat commit atomik.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	if tx == nil {
		return r
	}

	txDB, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: txDB}
}

func (r *repository) Create(ctx context.Context, record *KGBRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindAll(ctx context.Context, search string) ([]KGBRecord, error) {
	var records []KGBRecord

	query := r.db.WithContext(ctx).Model(&KGBRecord{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("employee_name ILIKE ? OR employee_nip LIKE ?", pattern, pattern)
	}

	err := query.Order("letter_issue_date DESC, created_at DESC").Find(&records).Error
	return records, err
}

func (r *repository) FindByNIP(ctx context.Context, nip string) ([]KGBRecord, error) {
	var records []KGBRecord
	err := r.db.WithContext(ctx).
		Where("employee_nip = ?", nip).
		Order("letter_issue_date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByProposalID(ctx context.Context, proposalID string) (*KGBRecord, error) {
	var record KGBRecord
	err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
