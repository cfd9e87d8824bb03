package counter

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetNextValue(ctx context.Context, year int, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, year int, counterType string) (int64, error) {
	var nextValue int64

	// Use raw SQL for atomic UPSERT and increment so concurrent SK issuance
	// per year/type never produces duplicate letter numbers
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO letter_counters (year, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (year, counter_type) DO UPDATE
		SET last_value = letter_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, year, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
