package proposal

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kgb-anri/internal/events"
	"kgb-anri/internal/messaging/kafka"
	proposalerrors "kgb-anri/internal/proposal/errors"
	"kgb-anri/internal/shared/contextutil"
	"kgb-anri/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const letterCounterType = "sk_kgb"

type Service interface {
	Create(ctx context.Context, actorID string, req CreateProposalRequest) (ProposalResponse, error)
	GetAll(ctx context.Context, filter ProposalFilterRequest) ([]ProposalResponse, error)
	GetByID(ctx context.Context, id string) (ProposalResponse, error)
	Stats(ctx context.Context) (ProposalStatsResponse, error)
	Approve(ctx context.Context, actorID, id, note string) (ProposalResponse, error)
	Reject(ctx context.Context, actorID, id, note string) (ProposalResponse, error)
	AttachDecisionFile(ctx context.Context, id string, req AttachDecisionFileRequest) (ProposalResponse, error)
	GetDecisionFile(ctx context.Context, id string) (string, []byte, error)
	IssueDecisionLetter(ctx context.Context, actorID, id string, req IssueDecisionLetterRequest) (DecisionLetterResponse, error)
	RenderDecisionLetterPDF(ctx context.Context, id string) (string, []byte, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("proposal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("proposal.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateProposalRequest) (ProposalResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create proposal requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("employee_nip", req.EmployeeNIP),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ProposalResponse{}, proposalerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create proposal begin tx failed", zap.Error(err))
		return ProposalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now := time.Now().UTC()
	p := &Proposal{
		ID:             uuid.New(),
		EmployeeNIP:    req.EmployeeNIP,
		EmployeeName:   req.EmployeeName,
		Golongan:       req.Golongan,
		Jabatan:        req.Jabatan,
		UnitKerja:      req.UnitKerja,
		MasaKerja:      req.MasaKerja,
		OldBaseSalary:  req.OldBaseSalary,
		NewBaseSalary:  req.NewBaseSalary,
		SubmissionDate: now,
		Status:         StatusPending,
		CreatedBy:      actorUUID,
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create proposal persist failed", zap.Error(err))
		return ProposalResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create proposal commit failed", zap.Error(err))
		return ProposalResponse{}, err
	}

	s.logger.Info("create proposal success",
		zap.String("request_id", rid),
		zap.String("proposal_id", p.ID.String()),
		zap.String("employee_nip", p.EmployeeNIP),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, filter ProposalFilterRequest) ([]ProposalResponse, error) {
	proposals, err := s.repo.FindAll(ctx, filter.Search, filter.Status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(proposals), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProposalResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProposalResponse{}, proposalerrors.ErrInvalidProposalID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProposalResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Stats(ctx context.Context) (ProposalStatsResponse, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return ProposalStatsResponse{}, mapRepositoryError(err)
	}
	return NewStatsResponse(counts), nil
}

// NewStatsResponse adalah proyeksi murni dari hasil hitung per status.
func NewStatsResponse(counts map[string]int64) ProposalStatsResponse {
	stats := ProposalStatsResponse{
		Pending:  counts[StatusPending],
		Approved: counts[StatusApproved],
		Rejected: counts[StatusRejected],
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return stats
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	switch currentStatus {
	case StatusPending:
		return targetStatus == StatusApproved || targetStatus == StatusRejected
	default:
		// APPROVED dan REJECTED adalah status terminal
		return false
	}
}

func (s *service) Approve(ctx context.Context, actorID, id, note string) (ProposalResponse, error) {
	return s.transitionStatus(ctx, actorID, id, StatusApproved, note)
}

func (s *service) Reject(ctx context.Context, actorID, id, note string) (ProposalResponse, error) {
	return s.transitionStatus(ctx, actorID, id, StatusRejected, note)
}

func (s *service) transitionStatus(ctx context.Context, actorID, id, targetStatus, note string) (ProposalResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("transition proposal status requested",
		zap.String("request_id", rid),
		zap.String("proposal_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", targetStatus),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ProposalResponse{}, proposalerrors.ErrInvalidProposalID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ProposalResponse{}, proposalerrors.ErrInvalidActorID
	}

	// Validasi note sebelum menyentuh storage: penolakan tanpa alasan
	// tidak boleh mengubah apapun
	note = strings.TrimSpace(note)
	if targetStatus == StatusRejected && note == "" {
		return ProposalResponse{}, proposalerrors.ErrReviewNoteRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition proposal status begin tx failed", zap.Error(err))
		return ProposalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ProposalResponse{}, mapRepositoryError(err)
	}

	if !isAllowedStatusTransition(p.Status, targetStatus) {
		s.logger.Warn("transition proposal status invalid",
			zap.String("proposal_id", id),
			zap.String("from_status", p.Status),
			zap.String("to_status", targetStatus),
		)
		return ProposalResponse{}, proposalerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	p.Status = targetStatus
	p.ReviewedBy = &actorUUID
	p.ReviewedAt = &now
	if note != "" {
		p.ReviewNote = &note
	} else {
		p.ReviewNote = nil
	}

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("transition proposal status persist failed",
			zap.String("proposal_id", id),
			zap.Error(err),
		)
		return ProposalResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.ProposalStatusChangedEvent{
			EventType:   "proposal_status_changed",
			RequestID:   rid,
			ProposalID:  p.ID.String(),
			EmployeeNIP: p.EmployeeNIP,
			Status:      p.Status,
			OccurredAt:  now,
		}
		if err := s.enqueueOutbox(ctx, tx, rid, p.ID.String(), event.EventType, events.ProposalStatusChangedTopic, event); err != nil {
			s.logger.Error("transition proposal outbox persist failed",
				zap.String("proposal_id", id),
				zap.Error(err),
			)
			return ProposalResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition proposal status commit failed",
			zap.String("proposal_id", id),
			zap.Error(err),
		)
		return ProposalResponse{}, err
	}

	s.logger.Info("transition proposal status success",
		zap.String("request_id", rid),
		zap.String("proposal_id", id),
		zap.String("status", targetStatus),
	)

	return mapToResponse(*p), nil
}

func (s *service) AttachDecisionFile(ctx context.Context, id string, req AttachDecisionFileRequest) (ProposalResponse, error) {
	s.logger.Debug("attach decision file requested",
		zap.String("proposal_id", id),
		zap.String("file_name", req.FileName),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ProposalResponse{}, proposalerrors.ErrInvalidProposalID
	}

	// Decode dulu; decode gagal tidak boleh menyentuh record
	data, err := decodeFileData(req.FileData)
	if err != nil {
		return ProposalResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("attach decision file begin tx failed", zap.Error(err))
		return ProposalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ProposalResponse{}, mapRepositoryError(err)
	}

	if p.Status != StatusApproved {
		s.logger.Warn("attach decision file on non-approved proposal",
			zap.String("proposal_id", id),
			zap.String("status", p.Status),
		)
		return ProposalResponse{}, proposalerrors.ErrProposalNotApproved
	}

	fileName := req.FileName
	p.DecisionFileName = &fileName
	p.DecisionFileData = data

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("attach decision file persist failed",
			zap.String("proposal_id", id),
			zap.Error(err),
		)
		return ProposalResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("attach decision file commit failed", zap.Error(err))
		return ProposalResponse{}, err
	}

	s.logger.Info("attach decision file success",
		zap.String("proposal_id", id),
		zap.String("file_name", fileName),
		zap.Int("size_bytes", len(data)),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetDecisionFile(ctx context.Context, id string) (string, []byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", nil, proposalerrors.ErrInvalidProposalID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", nil, mapRepositoryError(err)
	}

	if p.DecisionFileName == nil || len(p.DecisionFileData) == 0 {
		return "", nil, proposalerrors.ErrDecisionFileNotFound
	}

	return *p.DecisionFileName, p.DecisionFileData, nil
}

func (s *service) IssueDecisionLetter(ctx context.Context, actorID, id string, req IssueDecisionLetterRequest) (DecisionLetterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("issue decision letter requested",
		zap.String("request_id", rid),
		zap.String("proposal_id", id),
		zap.String("letter_number", req.LetterNumber),
	)

	if _, err := uuid.Parse(id); err != nil {
		return DecisionLetterResponse{}, proposalerrors.ErrInvalidProposalID
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return DecisionLetterResponse{}, proposalerrors.ErrInvalidActorID
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		return DecisionLetterResponse{}, err
	}

	letterNumber := strings.TrimSpace(req.LetterNumber)
	if letterNumber == "" && !req.AutoNumber {
		s.logger.Warn("issue decision letter without letter number",
			zap.String("proposal_id", id),
		)
		return DecisionLetterResponse{}, proposalerrors.ErrLetterNumberRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("issue decision letter begin tx failed", zap.Error(err))
		return DecisionLetterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DecisionLetterResponse{}, mapRepositoryError(err)
	}

	if p.Status != StatusApproved {
		s.logger.Warn("issue decision letter on non-approved proposal",
			zap.String("proposal_id", id),
			zap.String("status", p.Status),
		)
		return DecisionLetterResponse{}, proposalerrors.ErrProposalNotApproved
	}

	if letterNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, issueDate.Year(), letterCounterType)
		if err != nil {
			s.logger.Error("issue decision letter generate number failed", zap.Error(err))
			return DecisionLetterResponse{}, err
		}
		letterNumber = fmt.Sprintf("B/KGB/%04d/ANRI/%d", nextVal, issueDate.Year())
	}

	p.LetterNumber = &letterNumber
	p.LetterIssueDate = &issueDate

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("issue decision letter persist failed",
			zap.String("proposal_id", id),
			zap.Error(err),
		)
		return DecisionLetterResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.ProposalLetterIssuedEvent{
			EventType:       "proposal_letter_issued",
			RequestID:       rid,
			ProposalID:      p.ID.String(),
			EmployeeNIP:     p.EmployeeNIP,
			EmployeeName:    p.EmployeeName,
			OldBaseSalary:   p.OldBaseSalary,
			NewBaseSalary:   p.NewBaseSalary,
			LetterNumber:    letterNumber,
			LetterIssueDate: issueDate.Format("2006-01-02"),
			OccurredAt:      time.Now().UTC(),
		}
		if err := s.enqueueOutbox(ctx, tx, rid, p.ID.String(), event.EventType, events.ProposalLetterIssuedTopic, event); err != nil {
			s.logger.Error("issue decision letter outbox persist failed",
				zap.String("proposal_id", id),
				zap.Error(err),
			)
			return DecisionLetterResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("issue decision letter commit failed", zap.Error(err))
		return DecisionLetterResponse{}, err
	}

	letter := BuildDecisionLetter(*p, letterNumber, issueDate)

	s.logger.Info("issue decision letter success",
		zap.String("request_id", rid),
		zap.String("proposal_id", id),
		zap.String("letter_number", letterNumber),
	)

	return DecisionLetterResponse{
		ProposalID:   p.ID.String(),
		LetterNumber: letterNumber,
		IssueDate:    issueDate.Format("2006-01-02"),
		Lines:        letter.Lines(),
	}, nil
}

func (s *service) RenderDecisionLetterPDF(ctx context.Context, id string) (string, []byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", nil, proposalerrors.ErrInvalidProposalID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", nil, mapRepositoryError(err)
	}

	if p.LetterNumber == nil || p.LetterIssueDate == nil {
		return "", nil, proposalerrors.ErrLetterNotIssued
	}

	letter := BuildDecisionLetter(*p, *p.LetterNumber, *p.LetterIssueDate)
	pdf, err := buildDecisionLetterPDF(letter.Lines())
	if err != nil {
		return "", nil, err
	}

	fileName := fmt.Sprintf("SK_KGB_%s.pdf", p.EmployeeNIP)
	return fileName, pdf, nil
}

func (s *service) enqueueOutbox(
	ctx context.Context,
	tx *sql.Tx,
	requestID, proposalID, eventType, topic string,
	event any,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	return outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "proposal",
		AggregateID:   proposalID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// decodeFileData menerima base64 mentah maupun data URL
// ("data:application/pdf;base64,....") seperti yang dikirim FileReader.
func decodeFileData(raw string) ([]byte, error) {
	if idx := strings.Index(raw, ";base64,"); idx >= 0 {
		raw = raw[idx+len(";base64,"):]
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, proposalerrors.ErrDecisionFileEmpty
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, proposalerrors.ErrDecisionFileInvalid
	}
	if len(data) == 0 {
		return nil, proposalerrors.ErrDecisionFileEmpty
	}
	return data, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, proposalerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(p Proposal) ProposalResponse {
	resp := ProposalResponse{
		ID:              p.ID.String(),
		EmployeeNIP:     p.EmployeeNIP,
		EmployeeName:    p.EmployeeName,
		Golongan:        p.Golongan,
		Jabatan:         p.Jabatan,
		UnitKerja:       p.UnitKerja,
		MasaKerja:       p.MasaKerja,
		OldBaseSalary:   p.OldBaseSalary,
		NewBaseSalary:   p.NewBaseSalary,
		SubmissionDate:  p.SubmissionDate.Format("2006-01-02"),
		Status:          p.Status,
		ReviewNote:      p.ReviewNote,
		HasDecisionFile: len(p.DecisionFileData) > 0,
		CreatedBy:       p.CreatedBy.String(),
	}
	if p.ReviewedBy != nil {
		v := p.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if p.ReviewedAt != nil {
		v := p.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	resp.LetterNumber = p.LetterNumber
	if p.LetterIssueDate != nil {
		v := p.LetterIssueDate.Format("2006-01-02")
		resp.LetterIssueDate = &v
	}
	resp.DecisionFileName = p.DecisionFileName
	return resp
}

func mapToListResponse(proposals []Proposal) []ProposalResponse {
	resp := make([]ProposalResponse, len(proposals))
	for i, p := range proposals {
		resp[i] = mapToResponse(p)
	}
	return resp
}
