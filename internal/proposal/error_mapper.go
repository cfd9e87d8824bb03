package proposal

import (
	"errors"
	"net/http"

	proposalerrors "kgb-anri/internal/proposal/errors"
	"kgb-anri/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError menerjemahkan error gorm/driver menjadi AppError
// agar handler tidak perlu tahu detail storage.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return proposalerrors.ErrProposalNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return apperror.Wrap(err,
				apperror.CodeConflict,
				"proposal already exists",
				http.StatusConflict,
			)
		}
		return apperror.Wrap(err,
			apperror.CodeServiceUnavailable,
			apperror.ErrStorageUnavailable.Message,
			http.StatusServiceUnavailable,
		)
	}

	return err
}
