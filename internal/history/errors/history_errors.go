package historyerrors

import (
	"net/http"

	"kgb-anri/internal/shared/apperror"
)

var (
	ErrInvalidProposalID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid proposal id",
		http.StatusBadRequest,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"kgb record not found",
		http.StatusNotFound,
	)
	ErrRecordAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"kgb record already exists for this proposal",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
