package postgres

import (
	"context"

	"go-gladiator-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type feedbackRepo struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) domain.FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `INSERT INTO feedback (user_id, type, title, description, email, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW())
              RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		fb.UserID, fb.Type, fb.Title, fb.Description, fb.Email, fb.Status,
	).Scan(&fb.ID, &fb.CreatedAt)
}
