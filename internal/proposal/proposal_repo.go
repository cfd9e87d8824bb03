package proposal

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Proposal) error
	FindAll(ctx context.Context, search, status string) ([]Proposal, error)
	FindByID(ctx context.Context, id string) (*Proposal, error)
	Update(ctx context.Context, p *Proposal) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengikat semua query gorm ke koneksi transaksi pemanggil,
// sehingga update status dan baris outbox commit bersama.
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

func (r *repository) Create(ctx context.Context, p *Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, search, status string) ([]Proposal, error) {
	var proposals []Proposal

	query := r.db.WithContext(ctx).Model(&Proposal{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("employee_name ILIKE ? OR employee_nip LIKE ?", pattern, pattern)
	}
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	// usulan terbaru selalu di atas
	err := query.Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Proposal, error) {
	var p Proposal
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	err := r.db.WithContext(ctx).
		Model(&Proposal{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
