package postgres

import (
	"context"
	"errors"

	"go-gladiator-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type professionalRepo struct {
	db *pgxpool.Pool
}

func NewProfessionalRepository(db *pgxpool.Pool) domain.ProfessionalRepository {
	return &professionalRepo{db: db}
}

const professionalSelect = `
	SELECT
		p.id, p.full_name, p.avatar_url, p.category, p.skills, p.bio,
		p.experience_years, p.hourly_rate, p.location,
		p.crypto_wallet_trc20, p.accepts_crypto,
		r.average_rating, COALESCE(r.review_count, 0),
		p.created_at
	FROM profiles p
	LEFT JOIN professional_ratings r ON r.professional_id = p.id
	WHERE p.user_type = 'professional'`

// FetchAll returns every professional newest-first. The rating aggregate is
// attached via LEFT JOIN; professionals without reviews get NULL/0.
func (r *professionalRepo) FetchAll(ctx context.Context) ([]domain.Professional, error) {
	rows, err := r.db.Query(ctx, professionalSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pros []domain.Professional
	for rows.Next() {
		var p domain.Professional
		var skills []string
		if err := rows.Scan(
			&p.ID, &p.FullName, &p.AvatarURL, &p.Category, pq.Array(&skills), &p.Bio,
			&p.ExperienceYears, &p.HourlyRate, &p.Location,
			&p.CryptoWalletTRC20, &p.AcceptsCrypto,
			&p.AverageRating, &p.ReviewCount,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Skills = skills
		pros = append(pros, p)
	}
	return pros, rows.Err()
}

func (r *professionalRepo) GetByID(ctx context.Context, id string) (*domain.Professional, error) {
	var p domain.Professional
	var skills []string
	err := r.db.QueryRow(ctx, professionalSelect+` AND p.id = $1`, id).Scan(
		&p.ID, &p.FullName, &p.AvatarURL, &p.Category, pq.Array(&skills), &p.Bio,
		&p.ExperienceYears, &p.HourlyRate, &p.Location,
		&p.CryptoWalletTRC20, &p.AcceptsCrypto,
		&p.AverageRating, &p.ReviewCount,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}
