package history

import (
	"context"
	"database/sql"
	"errors"
	"time"

	historyerrors "kgb-anri/internal/history/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateKGBRecordRequest) (KGBRecordResponse, error)
	GetAll(ctx context.Context, filter KGBRecordFilterRequest) ([]KGBRecordResponse, error)
	GetByNIP(ctx context.Context, nip string) ([]KGBRecordResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateKGBRecordRequest) (KGBRecordResponse, error) {
	s.logger.Debug("create kgb record requested",
		zap.String("proposal_id", req.ProposalID),
		zap.String("employee_nip", req.EmployeeNIP),
	)

	proposalUUID, err := uuid.Parse(req.ProposalID)
	if err != nil {
		return KGBRecordResponse{}, historyerrors.ErrInvalidProposalID
	}

	issueDate, err := time.Parse("2006-01-02", req.LetterIssueDate)
	if err != nil {
		return KGBRecordResponse{}, historyerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create kgb record begin tx failed", zap.Error(err))
		return KGBRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Idempoten terhadap event kembar: satu proposal satu baris riwayat
	existing, err := qtx.FindByProposalID(ctx, req.ProposalID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return KGBRecordResponse{}, err
	}
	if existing != nil {
		s.logger.Warn("kgb record already exists",
			zap.String("proposal_id", req.ProposalID),
		)
		return KGBRecordResponse{}, historyerrors.ErrRecordAlreadyExists
	}

	record := &KGBRecord{
		ID:              uuid.New(),
		ProposalID:      proposalUUID,
		EmployeeNIP:     req.EmployeeNIP,
		EmployeeName:    req.EmployeeName,
		OldBaseSalary:   req.OldBaseSalary,
		NewBaseSalary:   req.NewBaseSalary,
		LetterNumber:    req.LetterNumber,
		LetterIssueDate: issueDate,
	}

	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("create kgb record persist failed", zap.Error(err))
		return KGBRecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create kgb record commit failed", zap.Error(err))
		return KGBRecordResponse{}, err
	}

	s.logger.Info("create kgb record success",
		zap.String("record_id", record.ID.String()),
		zap.String("proposal_id", req.ProposalID),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, filter KGBRecordFilterRequest) ([]KGBRecordResponse, error) {
	records, err := s.repo.FindAll(ctx, filter.Search)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByNIP(ctx context.Context, nip string) ([]KGBRecordResponse, error) {
	records, err := s.repo.FindByNIP(ctx, nip)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(records), nil
}

func mapToResponse(record KGBRecord) KGBRecordResponse {
	return KGBRecordResponse{
		ID:              record.ID.String(),
		ProposalID:      record.ProposalID.String(),
		EmployeeNIP:     record.EmployeeNIP,
		EmployeeName:    record.EmployeeName,
		OldBaseSalary:   record.OldBaseSalary,
		NewBaseSalary:   record.NewBaseSalary,
		LetterNumber:    record.LetterNumber,
		LetterIssueDate: record.LetterIssueDate.Format("2006-01-02"),
	}
}

func mapToListResponse(records []KGBRecord) []KGBRecordResponse {
	resp := make([]KGBRecordResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}
