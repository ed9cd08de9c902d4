package gifts

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grace-celebration/backend/internal/models"
)

// Repository handles gift transaction persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a gifts repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a gift intent and assigns its ID.
func (r *Repository) Create(ctx context.Context, g *models.GiftTransaction) error {
	const q = `INSERT INTO transactions (id, donor_name, email, amount, currency, message, reference, status, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	return r.pool.QueryRow(ctx, q, g.DonorName, g.Email, g.Amount, g.Currency, g.Message, g.Reference, g.Status, g.CreatedAt).
		Scan(&g.ID)
}

// List returns gift intents newest first.
func (r *Repository) List(ctx context.Context) ([]models.GiftTransaction, error) {
	const q = `SELECT id, donor_name, email, amount, currency, message, reference, status, created_at
		FROM transactions
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.GiftTransaction
	for rows.Next() {
		var g models.GiftTransaction
		if err := rows.Scan(&g.ID, &g.DonorName, &g.Email, &g.Amount, &g.Currency, &g.Message, &g.Reference, &g.Status, &g.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
