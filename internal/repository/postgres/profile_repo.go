package postgres

import (
	"context"
	"errors"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, email, user_type, full_name, avatar_url, age, bio, skills, category,
	experience_years, hourly_rate, location, company_name, company_description, website, phone,
	crypto_wallet_trc20, accepts_crypto, created_at, updated_at`

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, email, user_type, full_name, created_at, updated_at)
              VALUES ($1, $2, $3, $4, NOW(), NOW())`
	_, err := r.db.Exec(ctx, query, p.ID, p.Email, p.UserType, p.FullName)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Profile already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var p domain.Profile
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Email, &p.UserType, &p.FullName, &p.AvatarURL, &p.Age, &p.Bio,
		pq.Array(&skills), &p.Category, &p.ExperienceYears, &p.HourlyRate, &p.Location,
		&p.CompanyName, &p.CompanyDescription, &p.Website, &p.Phone,
		&p.CryptoWalletTRC20, &p.AcceptsCrypto, &p.CreatedAt, &p.UpdatedAt,
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

func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET
			full_name = $1, avatar_url = $2, age = $3, bio = $4, skills = $5, category = $6,
			experience_years = $7, hourly_rate = $8, location = $9,
			company_name = $10, company_description = $11, website = $12, phone = $13,
			crypto_wallet_trc20 = $14, accepts_crypto = $15, updated_at = NOW()
		WHERE id = $16`

	tag, err := r.db.Exec(ctx, query,
		p.FullName, p.AvatarURL, p.Age, p.Bio, pq.Array(p.Skills), p.Category,
		p.ExperienceYears, p.HourlyRate, p.Location,
		p.CompanyName, p.CompanyDescription, p.Website, p.Phone,
		p.CryptoWalletTRC20, p.AcceptsCrypto, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
