package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Profile is a marketplace participant. The row doubles for both roles:
// professional-specific columns stay NULL for clients and vice versa.
type Profile struct {
	ID                 string    `json:"id"` // Supabase UUID
	Email              string    `json:"email"`
	UserType           string    `json:"user_type"`
	FullName           *string   `json:"full_name"`
	AvatarURL          *string   `json:"avatar_url"`
	Age                *int      `json:"age,omitempty"`
	Bio                *string   `json:"bio,omitempty"`
	Skills             []string  `json:"skills,omitempty"`
	Category           *string   `json:"category,omitempty"`
	ExperienceYears    *int      `json:"experience_years,omitempty"`
	HourlyRate         *float64  `json:"hourly_rate,omitempty"`
	Location           *string   `json:"location,omitempty"`
	CompanyName        *string   `json:"company_name,omitempty"`
	CompanyDescription *string   `json:"company_description,omitempty"`
	Website            *string   `json:"website,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	CryptoWalletTRC20  *string   `json:"crypto_wallet_trc20,omitempty"`
	AcceptsCrypto      bool      `json:"accepts_crypto"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	EnsureProfile(ctx context.Context, userType string, fullName string) (*Profile, error)
	GetMyProfile(ctx context.Context) (*Profile, error)
	UpdateMyProfile(ctx context.Context, update *ProfileUpdate) (*Profile, error)
	UpdateAvatar(ctx context.Context, filename string, data []byte, contentType string) (string, error)
}

// ProfileUpdate carries the mutable profile fields. Which ones are applied
// depends on the caller's role; the rest are ignored.
type ProfileUpdate struct {
	FullName           *string  `json:"full_name" validate:"omitempty,valid_name,no_emoji,max=100"`
	Age                *int     `json:"age" validate:"omitempty,gte=16,lte=100"`
	Bio                *string  `json:"bio" validate:"omitempty,max=2000"`
	Skills             []string `json:"skills" validate:"omitempty,max=30,dive,max=50"`
	Category           *string  `json:"category" validate:"omitempty,oneof=it marketing design writing video support finance consulting"`
	ExperienceYears    *int     `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	HourlyRate         *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	Location           *string  `json:"location" validate:"omitempty,max=200"`
	CompanyName        *string  `json:"company_name" validate:"omitempty,max=200"`
	CompanyDescription *string  `json:"company_description" validate:"omitempty,max=2000"`
	Website            *string  `json:"website" validate:"omitempty,url"`
	Phone              *string  `json:"phone" validate:"omitempty,valid_phone"`
	CryptoWalletTRC20  *string  `json:"crypto_wallet_trc20" validate:"omitempty,max=100"`
	AcceptsCrypto      *bool    `json:"accepts_crypto"`
}
