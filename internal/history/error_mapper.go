package history

import (
	"errors"
	"net/http"

	historyerrors "kgb-anri/internal/history/errors"
	"kgb-anri/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError menerjemahkan error infrastruktur menjadi error domain.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return historyerrors.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505: unique_violation pada proposal_id
		if pgErr.Code == "23505" {
			return historyerrors.ErrRecordAlreadyExists
		}
		return apperror.Wrap(err,
			apperror.CodeServiceUnavailable,
			apperror.ErrStorageUnavailable.Message,
			http.StatusServiceUnavailable,
		)
	}

	return err
}
