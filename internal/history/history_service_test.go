package history_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"kgb-anri/internal/history"
	historyerrors "kgb-anri/internal/history/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeHistoryRepository struct {
	withTxFn           func(tx *sql.Tx) history.Repository
	createFn           func(ctx context.Context, record *history.KGBRecord) error
	findAllFn          func(ctx context.Context, search string) ([]history.KGBRecord, error)
	findByNIPFn        func(ctx context.Context, nip string) ([]history.KGBRecord, error)
	findByProposalIDFn func(ctx context.Context, proposalID string) (*history.KGBRecord, error)
}

func (f *fakeHistoryRepository) WithTx(tx *sql.Tx) history.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeHistoryRepository) Create(ctx context.Context, record *history.KGBRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	return nil
}

func (f *fakeHistoryRepository) FindAll(ctx context.Context, search string) ([]history.KGBRecord, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, search)
	}
	return nil, nil
}

func (f *fakeHistoryRepository) FindByNIP(ctx context.Context, nip string) ([]history.KGBRecord, error) {
	if f.findByNIPFn != nil {
		return f.findByNIPFn(ctx, nip)
	}
	return nil, nil
}

func (f *fakeHistoryRepository) FindByProposalID(ctx context.Context, proposalID string) (*history.KGBRecord, error) {
	if f.findByProposalIDFn != nil {
		return f.findByProposalIDFn(ctx, proposalID)
	}
	return nil, gorm.ErrRecordNotFound
}

type historyServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service history.Service
	repo    *fakeHistoryRepository
}

func setupHistoryServiceTest(t *testing.T) *historyServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeHistoryRepository{}
	svc := history.NewService(db, repo)

	return &historyServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestHistoryService_Create(t *testing.T) {
	ctx := context.Background()
	proposalID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupHistoryServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := history.CreateKGBRecordRequest{
			ProposalID:      proposalID,
			EmployeeNIP:     "198503152010121001",
			EmployeeName:    "Budi Santoso",
			OldBaseSalary:   4200000,
			NewBaseSalary:   4500000,
			LetterNumber:    "B/KGB/0001/ANRI/2026",
			LetterIssueDate: "2026-01-10",
		}

		deps.repo.createFn = func(ctx context.Context, record *history.KGBRecord) error {
			assert.Equal(t, uuid.MustParse(proposalID), record.ProposalID)
			assert.Equal(t, "198503152010121001", record.EmployeeNIP)
			assert.Equal(t, int64(4500000), record.NewBaseSalary)
			assert.Equal(t, "2026-01-10", record.LetterIssueDate.Format("2006-01-02"))
			return nil
		}

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, proposalID, resp.ProposalID)
		assert.Equal(t, "B/KGB/0001/ANRI/2026", resp.LetterNumber)
		assert.Equal(t, "2026-01-10", resp.LetterIssueDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate proposal", func(t *testing.T) {
		deps := setupHistoryServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		req := history.CreateKGBRecordRequest{
			ProposalID:      proposalID,
			EmployeeNIP:     "198503152010121001",
			EmployeeName:    "Budi Santoso",
			NewBaseSalary:   4500000,
			LetterNumber:    "B/KGB/0001/ANRI/2026",
			LetterIssueDate: "2026-01-10",
		}

		deps.repo.findByProposalIDFn = func(ctx context.Context, pid string) (*history.KGBRecord, error) {
			assert.Equal(t, proposalID, pid)
			return &history.KGBRecord{ID: uuid.New(), ProposalID: uuid.MustParse(proposalID)}, nil
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, historyerrors.ErrRecordAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid proposal id", func(t *testing.T) {
		deps := setupHistoryServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, history.CreateKGBRecordRequest{
			ProposalID:      "not-a-uuid",
			LetterIssueDate: "2026-01-10",
		})

		assert.ErrorIs(t, err, historyerrors.ErrInvalidProposalID)
	})

	t.Run("negative invalid issue date", func(t *testing.T) {
		deps := setupHistoryServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, history.CreateKGBRecordRequest{
			ProposalID:      proposalID,
			LetterIssueDate: "10-01-2026",
		})

		assert.ErrorIs(t, err, historyerrors.ErrInvalidDateFormat)
	})
}

func TestHistoryService_GetByNIP(t *testing.T) {
	ctx := context.Background()

	t.Run("success ordered by issue date", func(t *testing.T) {
		deps := setupHistoryServiceTest(t)
		defer deps.db.Close()

		newer := history.KGBRecord{
			ID:              uuid.New(),
			ProposalID:      uuid.New(),
			EmployeeNIP:     "198503152010121001",
			EmployeeName:    "Budi Santoso",
			NewBaseSalary:   4800000,
			LetterNumber:    "B/KGB/0007/ANRI/2026",
			LetterIssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		older := history.KGBRecord{
			ID:              uuid.New(),
			ProposalID:      uuid.New(),
			EmployeeNIP:     "198503152010121001",
			EmployeeName:    "Budi Santoso",
			NewBaseSalary:   4500000,
			LetterNumber:    "B/KGB/0001/ANRI/2024",
			LetterIssueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		deps.repo.findByNIPFn = func(ctx context.Context, nip string) ([]history.KGBRecord, error) {
			assert.Equal(t, "198503152010121001", nip)
			return []history.KGBRecord{newer, older}, nil
		}

		resp, err := deps.service.GetByNIP(ctx, "198503152010121001")

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "B/KGB/0007/ANRI/2026", resp[0].LetterNumber)
		assert.Equal(t, "2026-03-01", resp[0].LetterIssueDate)
		assert.Equal(t, "B/KGB/0001/ANRI/2024", resp[1].LetterNumber)
	})
}

func TestHistoryService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("passes search filter to repository", func(t *testing.T) {
		deps := setupHistoryServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context, search string) ([]history.KGBRecord, error) {
			assert.Equal(t, "Budi", search)
			return []history.KGBRecord{}, nil
		}

		resp, err := deps.service.GetAll(ctx, history.KGBRecordFilterRequest{Search: "Budi"})

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}
