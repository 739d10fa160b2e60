package postgres

import (
	"context"
	"errors"

	"go-gladiator-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ratingRepo struct {
	db *pgxpool.Pool
}

func NewRatingRepository(db *pgxpool.Pool) domain.RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) GetRating(ctx context.Context, professionalID string) (*domain.RatingAggregate, error) {
	query := `SELECT average_rating, review_count FROM professional_ratings WHERE professional_id = $1`

	var agg domain.RatingAggregate
	err := r.db.QueryRow(ctx, query, professionalID).Scan(&agg.AverageRating, &agg.ReviewCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Zero-review state, not a lookup failure
			return &domain.RatingAggregate{AverageRating: nil, ReviewCount: 0}, nil
		}
		return nil, err
	}
	return &agg, nil
}
