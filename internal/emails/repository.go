package emails

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grace-celebration/backend/internal/models"
)

// Repository handles email_logs persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an email logs repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// RecordSent inserts a log row for a delivered email.
func (r *Repository) RecordSent(ctx context.Context, rsvpID *uuid.UUID, emailType, recipient, subject string) error {
	const q = `INSERT INTO email_logs (id, rsvp_id, email_type, recipient_email, subject, status, sent_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, q, rsvpID, emailType, recipient, subject, models.EmailLogStatusSent, time.Now())
	return err
}

// RecordFailed inserts a log row for a failed delivery attempt.
func (r *Repository) RecordFailed(ctx context.Context, rsvpID *uuid.UUID, emailType, recipient, subject, errMsg string) error {
	const q = `INSERT INTO email_logs (id, rsvp_id, email_type, recipient_email, subject, status, error_message)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, q, rsvpID, emailType, recipient, subject, models.EmailLogStatusFailed, errMsg)
	return err
}

// List returns email logs, newest first.
func (r *Repository) List(ctx context.Context) ([]*models.EmailLog, error) {
	const q = `SELECT id, rsvp_id, email_type, recipient_email, subject, status, sent_at, error_message, created_at
		FROM email_logs
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.EmailLog
	for rows.Next() {
		var el models.EmailLog
		var subject, errMsg *string
		if err := rows.Scan(&el.ID, &el.RSVPID, &el.EmailType, &el.RecipientEmail, &subject, &el.Status, &el.SentAt, &errMsg, &el.CreatedAt); err != nil {
			return nil, err
		}
		if subject != nil {
			el.Subject = *subject
		}
		if errMsg != nil {
			el.ErrorMessage = *errMsg
		}
		list = append(list, &el)
	}
	return list, rows.Err()
}
