package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"kgb-anri/internal/events"
	"kgb-anri/internal/history"
	historyerrors "kgb-anri/internal/history/errors"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeProposalLetterIssued menulis riwayat KGB dari event penerbitan
// SK. Event kembar (redelivery) dianggap sukses dan langsung di-commit.
func ConsumeProposalLetterIssued(
	ctx context.Context,
	reader *kafkago.Reader,
	historyService history.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.proposal_letter")
	log.Info("proposal letter consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("proposal letter consumer stopped")
				return
			}
			log.Error("fetch proposal letter message failed", zap.Error(err))
			continue
		}

		var event events.ProposalLetterIssuedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode proposal_letter_issued event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = historyService.Create(ctx, history.CreateKGBRecordRequest{
			ProposalID:      event.ProposalID,
			EmployeeNIP:     event.EmployeeNIP,
			EmployeeName:    event.EmployeeName,
			OldBaseSalary:   event.OldBaseSalary,
			NewBaseSalary:   event.NewBaseSalary,
			LetterNumber:    event.LetterNumber,
			LetterIssueDate: event.LetterIssueDate,
		})
		if err != nil {
			if isDuplicateRecord(err) {
				log.Warn("kgb record already exists for event, skipping",
					zap.String("proposal_id", event.ProposalID),
					zap.String("employee_nip", event.EmployeeNIP),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("create kgb record from event failed",
				zap.String("proposal_id", event.ProposalID),
				zap.String("employee_nip", event.EmployeeNIP),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit proposal letter message failed", zap.Error(err))
			continue
		}

		log.Info("kgb record created from proposal_letter_issued event",
			zap.String("proposal_id", event.ProposalID),
			zap.String("employee_nip", event.EmployeeNIP),
		)
	}
}

func isDuplicateRecord(err error) bool {
	if errors.Is(err, historyerrors.ErrRecordAlreadyExists) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}
