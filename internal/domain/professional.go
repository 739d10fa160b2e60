package domain

import (
	"context"
	"time"
)

// Directory categories. "all" is a filter sentinel, not a stored value.
const CategoryAll = "all"

var Categories = []string{"it", "marketing", "design", "writing", "video", "support", "finance", "consulting"}

// Professional is the directory view of a profile with user_type='professional',
// enriched with its rating aggregate.
type Professional struct {
	ID                string    `json:"id"`
	FullName          *string   `json:"full_name"`
	AvatarURL         *string   `json:"avatar_url"`
	Category          *string   `json:"category"`
	Skills            []string  `json:"skills"`
	Bio               *string   `json:"bio"`
	ExperienceYears   *int      `json:"experience_years"`
	HourlyRate        *float64  `json:"hourly_rate"`
	Location          *string   `json:"location"`
	CryptoWalletTRC20 *string   `json:"crypto_wallet_trc20,omitempty"`
	AcceptsCrypto     bool      `json:"accepts_crypto"`
	AverageRating     *float64  `json:"average_rating"`
	ReviewCount       int       `json:"review_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortPriceLow   SortOrder = "price-low"
	SortPriceHigh  SortOrder = "price-high"
	SortExperience SortOrder = "experience"
)

// SearchCriteria drives the directory filter pipeline. Nil numeric bounds mean
// "no filter"; a zero value is a real bound and must be kept distinct.
type SearchCriteria struct {
	Category      string
	Query         string
	MinPrice      *float64
	MaxPrice      *float64
	MinExperience *int
	HasPortfolio  bool
	SortBy        SortOrder
}

type ProfessionalRepository interface {
	// FetchAll returns all professionals newest-first with rating aggregates attached.
	FetchAll(ctx context.Context) ([]Professional, error)
	GetByID(ctx context.Context, id string) (*Professional, error)
}

type DirectoryUsecase interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]Professional, error)
	GetProfessional(ctx context.Context, id string) (*Professional, error)
}
