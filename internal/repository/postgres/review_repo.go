package postgres

import (
	"context"
	"errors"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepo{db: db}
}

// recomputeRating refreshes the derived professional_ratings row from the
// reviews table. With zero reviews AVG is NULL and COUNT is 0, which stores
// the zero-review state rather than deleting the row.
func recomputeRating(ctx context.Context, tx pgx.Tx, professionalID string) error {
	query := `
		INSERT INTO professional_ratings (professional_id, average_rating, review_count)
		SELECT $1, AVG(rating)::numeric(3,2), COUNT(*) FROM reviews WHERE professional_id = $1
		ON CONFLICT (professional_id)
		DO UPDATE SET average_rating = EXCLUDED.average_rating, review_count = EXCLUDED.review_count`
	_, err := tx.Exec(ctx, query, professionalID)
	return err
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO reviews (professional_id, client_id, rating, comment, created_at, updated_at)
              VALUES ($1, $2, $3, $4, NOW(), NOW())
              RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		review.ProfessionalID, review.ClientID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already reviewed this professional")
		}
		return err
	}

	if err := recomputeRating(ctx, tx, review.ProfessionalID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *reviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT id, professional_id, client_id, rating, comment, created_at, updated_at
              FROM reviews WHERE id = $1`
	var rev domain.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rev.ID, &rev.ProfessionalID, &rev.ClientID, &rev.Rating, &rev.Comment,
		&rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *reviewRepo) Update(ctx context.Context, review *domain.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE reviews SET rating = $1, comment = $2, updated_at = NOW() WHERE id = $3
              RETURNING updated_at`
	if err := tx.QueryRow(ctx, query, review.Rating, review.Comment, review.ID).Scan(&review.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if err := recomputeRating(ctx, tx, review.ProfessionalID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *reviewRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var professionalID string
	err = tx.QueryRow(ctx, `DELETE FROM reviews WHERE id = $1 RETURNING professional_id`, id).Scan(&professionalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if err := recomputeRating(ctx, tx, professionalID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *reviewRepo) FetchByProfessional(ctx context.Context, professionalID string) ([]domain.ReviewWithClient, error) {
	query := `
		SELECT
			rv.id, rv.professional_id, rv.client_id, rv.rating, rv.comment,
			rv.created_at, rv.updated_at,
			c.full_name, c.avatar_url, c.company_name
		FROM reviews rv
		LEFT JOIN profiles c ON c.id = rv.client_id
		WHERE rv.professional_id = $1
		ORDER BY rv.created_at DESC`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.ReviewWithClient
	for rows.Next() {
		var rv domain.ReviewWithClient
		if err := rows.Scan(
			&rv.ID, &rv.ProfessionalID, &rv.ClientID, &rv.Rating, &rv.Comment,
			&rv.CreatedAt, &rv.UpdatedAt,
			&rv.ClientName, &rv.ClientAvatarURL, &rv.ClientCompanyName,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
