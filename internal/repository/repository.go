package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rental-notification-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

type PostgresEmailRepository struct {
	db *sql.DB
}

func NewPostgresEmailRepository(db *sql.DB) *PostgresEmailRepository {
	return &PostgresEmailRepository{db: db}
}

func (r *PostgresEmailRepository) SaveLog(ctx context.Context, l domain.EmailLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	log.WithFields(log.Fields{
		"dispatch_id":     l.DispatchID,
		"action":          l.Action,
		"recipient_email": l.RecipientEmail,
		"status":          l.Status,
	}).Debug("Saving email log to database")

	const query = `
        INSERT INTO email_logs (dispatch_id, action, recipient_email, subject, status, error_message)
        VALUES ($1, $2, $3, $4, $5, $6);
    `

	if _, err := r.db.ExecContext(ctx, query,
		l.DispatchID,
		string(l.Action),
		l.RecipientEmail,
		l.Subject,
		string(l.Status),
		nullStringOrNil(l.ErrorMessage),
	); err != nil {
		return fmt.Errorf("failed to insert email log: %w", err)
	}
	return nil
}

func nullStringOrNil(ns sql.NullString) interface{} {
	if ns.Valid {
		return ns.String
	}
	return nil
}
