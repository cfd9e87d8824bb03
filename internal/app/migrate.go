package app

import (
	"kgb-anri/internal/auth"
	"kgb-anri/internal/employee"
	"kgb-anri/internal/history"
	"kgb-anri/internal/proposal"

	"gorm.io/gorm"
)

// migrateSchema menjalankan AutoMigrate untuk entity gorm dan DDL
// idempoten untuk tabel pendukung yang diakses lewat SQL mentah
// (outbox dan counter nomor surat).
func migrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&proposal.Proposal{},
		&history.KGBRecord{},
	); err != nil {
		return err
	}

	return createSupportTables(db)
}

func createSupportTables(db *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id uuid PRIMARY KEY,
			request_id text,
			aggregate_type text NOT NULL,
			aggregate_id uuid NOT NULL,
			event_type text NOT NULL,
			topic text NOT NULL,
			payload jsonb NOT NULL,
			status text NOT NULL DEFAULT 'pending',
			retry_count int NOT NULL DEFAULT 0,
			error_message text,
			next_retry_at timestamptz,
			processed_at timestamptz,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created_at
			ON outbox_events (status, created_at)`,
		`CREATE TABLE IF NOT EXISTS letter_counters (
			year int NOT NULL,
			counter_type text NOT NULL,
			last_value bigint NOT NULL DEFAULT 0,
			updated_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (year, counter_type)
		)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
