package sender

import (
	"context"
	"database/sql"

	"rental-notification-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

type EmailLogRepository interface {
	SaveLog(ctx context.Context, log domain.EmailLog) error
}

// LoggingSender records the outcome of every delivery. A failure to record
// is logged but never replaces the delivery result.
type LoggingSender struct {
	next EmailSender
	repo EmailLogRepository
}

func NewLoggingSender(next EmailSender, repo EmailLogRepository) *LoggingSender {
	return &LoggingSender{next: next, repo: repo}
}

func (s *LoggingSender) SendEmail(ctx context.Context, msg Message) error {
	err := s.next.SendEmail(ctx, msg)

	entry := domain.EmailLog{
		DispatchID:     msg.ID,
		Action:         msg.Action,
		RecipientEmail: msg.To,
		Subject:        msg.Subject,
	}
	logCtx := log.WithFields(log.Fields{
		"dispatch_id": msg.ID,
		"email":       msg.To,
	})

	if err != nil {
		logCtx.WithError(err).Error("Failed to send email")
		entry.Status = domain.StatusFailed
		entry.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
	} else {
		logCtx.Info("Email sent successfully")
		entry.Status = domain.StatusSent
	}

	if serr := s.repo.SaveLog(ctx, entry); serr != nil {
		logCtx.WithError(serr).Error("Failed to save email log to database")
	}
	return err
}
