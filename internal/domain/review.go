package domain

import (
	"context"
	"time"
)

type Review struct {
	ID             string    `json:"id"`
	ProfessionalID string    `json:"professional_id"`
	ClientID       string    `json:"client_id"`
	Rating         int       `json:"rating"`
	Comment        *string   `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ReviewWithClient joins the review with the author's display fields.
type ReviewWithClient struct {
	Review
	ClientName        *string `json:"client_name"`
	ClientAvatarURL   *string `json:"client_avatar_url"`
	ClientCompanyName *string `json:"client_company_name"`
}

// RatingAggregate is the derived per-professional summary. AverageRating is
// nil in the zero-review state; callers must not format it as a number then.
type RatingAggregate struct {
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
}

type ReviewRepository interface {
	// Create inserts the review and recomputes the professional's rating
	// aggregate in the same transaction. A duplicate (professional, client)
	// pair surfaces as a conflict error.
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id string) error
	FetchByProfessional(ctx context.Context, professionalID string) ([]ReviewWithClient, error)
}

type RatingRepository interface {
	// GetRating returns {nil, 0} when the professional has no aggregate row.
	// That is the zero-review state, not an error.
	GetRating(ctx context.Context, professionalID string) (*RatingAggregate, error)
}

type ReviewUsecase interface {
	SubmitReview(ctx context.Context, professionalID string, rating int, comment string) (*Review, error)
	UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (*Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
	ListByProfessional(ctx context.Context, professionalID string) ([]ReviewWithClient, error)
	GetRating(ctx context.Context, professionalID string) (*RatingAggregate, error)
}
