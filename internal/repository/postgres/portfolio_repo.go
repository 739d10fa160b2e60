package postgres

import (
	"context"
	"errors"

	"go-gladiator-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type portfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) domain.PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) Create(ctx context.Context, item *domain.PortfolioItem) error {
	query := `INSERT INTO portfolio_items (user_id, title, description, image_url, project_url, tags, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW())
              RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		item.UserID, item.Title, item.Description, item.ImageURL, item.ProjectURL, pq.Array(item.Tags),
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *portfolioRepo) GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	query := `SELECT id, user_id, title, description, image_url, project_url, tags, created_at
              FROM portfolio_items WHERE id = $1`
	var item domain.PortfolioItem
	var tags []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.UserID, &item.Title, &item.Description, &item.ImageURL,
		&item.ProjectURL, pq.Array(&tags), &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	item.Tags = tags
	return &item, nil
}

func (r *portfolioRepo) FetchByUser(ctx context.Context, userID string) ([]domain.PortfolioItem, error) {
	query := `SELECT id, user_id, title, description, image_url, project_url, tags, created_at
              FROM portfolio_items WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PortfolioItem
	for rows.Next() {
		var item domain.PortfolioItem
		var tags []string
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description, &item.ImageURL,
			&item.ProjectURL, pq.Array(&tags), &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Tags = tags
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *portfolioRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByUsers batches the per-professional portfolio counts into a single
// GROUP BY query instead of one count query per professional.
func (r *portfolioRepo) CountByUsers(ctx context.Context, userIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	query := `SELECT user_id, COUNT(*) FROM portfolio_items WHERE user_id = ANY($1) GROUP BY user_id`
	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var count int
		if err := rows.Scan(&userID, &count); err != nil {
			return nil, err
		}
		counts[userID] = count
	}
	return counts, rows.Err()
}
