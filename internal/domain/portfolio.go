package domain

import (
	"context"
	"time"
)

type PortfolioItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	ProjectURL  *string   `json:"project_url"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

type PortfolioRepository interface {
	Create(ctx context.Context, item *PortfolioItem) error
	GetByID(ctx context.Context, id string) (*PortfolioItem, error)
	FetchByUser(ctx context.Context, userID string) ([]PortfolioItem, error)
	Delete(ctx context.Context, id string) error
	// CountByUsers returns portfolio item counts for the given professionals in
	// one query. Users with no items are absent from the map.
	CountByUsers(ctx context.Context, userIDs []string) (map[string]int, error)
}

type PortfolioUsecase interface {
	AddItem(ctx context.Context, input *PortfolioInput) (*PortfolioItem, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]PortfolioItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// PortfolioInput is the create payload. Image bytes are optional; when present
// they are uploaded to blob storage before the row is written.
type PortfolioInput struct {
	Title            string   `validate:"required,max=200"`
	Description      string   `validate:"max=2000"`
	ProjectURL       string   `validate:"omitempty,url"`
	Tags             []string `validate:"omitempty,max=20,dive,max=50"`
	ImageFilename    string
	ImageData        []byte
	ImageContentType string
}
