package proposalerrors

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
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrProposalNotFound = apperror.New(
		apperror.CodeNotFound,
		"proposal not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid proposal status transition",
		http.StatusBadRequest,
	)
	ErrReviewNoteRequired = apperror.New(
		apperror.CodeInvalidInput,
		"review note is required when rejecting a proposal",
		http.StatusBadRequest,
	)
	ErrLetterNumberRequired = apperror.New(
		apperror.CodeInvalidInput,
		"letter number is required unless auto numbering is requested",
		http.StatusBadRequest,
	)
	ErrProposalNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"proposal must be APPROVED for this action",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDecisionFileInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"decision file is not valid base64 data",
		http.StatusBadRequest,
	)
	ErrDecisionFileEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"decision file is empty",
		http.StatusBadRequest,
	)
	ErrDecisionFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"no decision file attached to this proposal",
		http.StatusNotFound,
	)
	ErrLetterNotIssued = apperror.New(
		apperror.CodeNotFound,
		"decision letter has not been issued for this proposal",
		http.StatusNotFound,
	)
)
