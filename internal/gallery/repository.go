package gallery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grace-celebration/backend/internal/models"
)

// Repository handles gallery media persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a gallery repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a media item and assigns its ID.
func (r *Repository) Create(ctx context.Context, m *models.MediaItem) error {
	const q = `INSERT INTO media_gallery (id, url, media_type, mime_type, caption, uploaded_by, path, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	return r.pool.QueryRow(ctx, q, m.URL, m.Type, m.MimeType, m.Caption, m.UploadedBy, m.Path, m.CreatedAt).
		Scan(&m.ID)
}

// List returns media items newest first.
func (r *Repository) List(ctx context.Context) ([]models.MediaItem, error) {
	const q = `SELECT id, url, media_type, mime_type, caption, uploaded_by, path, created_at
		FROM media_gallery
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.MediaItem
	for rows.Next() {
		var m models.MediaItem
		if err := rows.Scan(&m.ID, &m.URL, &m.Type, &m.MimeType, &m.Caption, &m.UploadedBy, &m.Path, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetByID returns one media item, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.MediaItem, error) {
	const q = `SELECT id, url, media_type, mime_type, caption, uploaded_by, path, created_at
		FROM media_gallery WHERE id = $1`
	var m models.MediaItem
	err := r.pool.QueryRow(ctx, q, id).Scan(&m.ID, &m.URL, &m.Type, &m.MimeType, &m.Caption, &m.UploadedBy, &m.Path, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete hard-deletes one media item row. Returns the number of rows removed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM media_gallery WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
