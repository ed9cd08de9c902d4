package rsvps

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grace-celebration/backend/internal/models"
)

// Repository handles RSVP persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an RSVP repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts an RSVP and assigns its ID. The caller sets created_at and
// approval_status before calling.
func (r *Repository) Create(ctx context.Context, rsvp *models.RSVP) error {
	const q = `INSERT INTO rsvps (id, full_name, email, phone, attending, guests_count, dietary_restrictions, special_requests, approval_status, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	return r.pool.QueryRow(ctx, q,
		rsvp.FullName, rsvp.Email, rsvp.Phone, rsvp.Attending, rsvp.GuestsCount,
		rsvp.DietaryRestrictions, rsvp.SpecialRequests, rsvp.ApprovalStatus, rsvp.CreatedAt,
	).Scan(&rsvp.ID)
}

// List returns all RSVPs, newest first. created_at is the sole ordering key.
func (r *Repository) List(ctx context.Context) ([]models.RSVP, error) {
	const q = `SELECT id, full_name, email, phone, attending, guests_count, dietary_restrictions, special_requests, approval_status, created_at
		FROM rsvps
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.RSVP
	for rows.Next() {
		var rsvp models.RSVP
		if err := rows.Scan(&rsvp.ID, &rsvp.FullName, &rsvp.Email, &rsvp.Phone, &rsvp.Attending,
			&rsvp.GuestsCount, &rsvp.DietaryRestrictions, &rsvp.SpecialRequests,
			&rsvp.ApprovalStatus, &rsvp.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rsvp)
	}
	return list, rows.Err()
}

// UpdateStatus overwrites the approval status of one record. created_at is
// never touched.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) error {
	const q = `UPDATE rsvps SET approval_status = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
