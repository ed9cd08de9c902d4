package notes

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grace-celebration/backend/internal/models"
)

// Repository handles birthday note persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a notes repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a note and assigns its ID.
func (r *Repository) Create(ctx context.Context, note *models.BirthdayNote) error {
	const q = `INSERT INTO birthday_notes (id, author_name, message, is_private, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id`
	return r.pool.QueryRow(ctx, q, note.AuthorName, note.Message, note.IsPrivate, note.CreatedAt).
		Scan(&note.ID)
}

// List returns notes newest first. When includePrivate is false, private
// notes are excluded (public wall); admins list everything.
func (r *Repository) List(ctx context.Context, includePrivate bool) ([]models.BirthdayNote, error) {
	q := `SELECT id, author_name, message, is_private, created_at FROM birthday_notes`
	if !includePrivate {
		q += ` WHERE is_private = FALSE`
	}
	q += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.BirthdayNote
	for rows.Next() {
		var n models.BirthdayNote
		if err := rows.Scan(&n.ID, &n.AuthorName, &n.Message, &n.IsPrivate, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}
