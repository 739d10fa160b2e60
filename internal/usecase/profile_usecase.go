package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"
	"go-gladiator-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

const avatarBucket = "avatars"

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	uploader    storage.Uploader
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, uploader storage.Uploader, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		uploader:    uploader,
		validate:    validate,
	}
}

// EnsureProfile creates the profiles row for a freshly registered auth user.
// Identity comes from the verified token, never the request body.
func (u *profileUsecase) EnsureProfile(ctx context.Context, userType string, fullName string) (*domain.Profile, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	email, _ := ctx.Value(domain.KeyUserEmail).(string)

	if userType != domain.RoleProfessional && userType != domain.RoleClient {
		return nil, apperror.BadRequest("user_type must be professional or client")
	}

	existing, err := u.profileRepo.GetByID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	profile := &domain.Profile{
		ID:       userID,
		Email:    email,
		UserType: userType,
	}
	if name := strings.TrimSpace(fullName); name != "" {
		profile.FullName = &name
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) GetMyProfile(ctx context.Context) (*domain.Profile, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

// UpdateMyProfile applies the role-appropriate subset of the update: the
// professional fields for professionals, the company fields for clients.
// Fields of the other role are ignored rather than rejected.
func (u *profileUsecase) UpdateMyProfile(ctx context.Context, update *domain.ProfileUpdate) (*domain.Profile, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Struct(update); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}

	if update.FullName != nil {
		profile.FullName = update.FullName
	}

	switch profile.UserType {
	case domain.RoleProfessional:
		if update.Age != nil {
			profile.Age = update.Age
		}
		if update.Bio != nil {
			profile.Bio = update.Bio
		}
		if update.Skills != nil {
			profile.Skills = update.Skills
		}
		if update.Category != nil {
			profile.Category = update.Category
		}
		if update.ExperienceYears != nil {
			profile.ExperienceYears = update.ExperienceYears
		}
		if update.HourlyRate != nil {
			profile.HourlyRate = update.HourlyRate
		}
		if update.Location != nil {
			profile.Location = update.Location
		}
		if update.CryptoWalletTRC20 != nil {
			profile.CryptoWalletTRC20 = update.CryptoWalletTRC20
		}
		if update.AcceptsCrypto != nil {
			profile.AcceptsCrypto = *update.AcceptsCrypto
		}
	case domain.RoleClient:
		if update.CompanyName != nil {
			profile.CompanyName = update.CompanyName
		}
		if update.CompanyDescription != nil {
			profile.CompanyDescription = update.CompanyDescription
		}
		if update.Website != nil {
			profile.Website = update.Website
		}
		if update.Phone != nil {
			profile.Phone = update.Phone
		}
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateAvatar(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", apperror.BadRequest("Avatar file is required")
	}
	if len(data) > maxImageSize {
		return "", apperror.BadRequest("Image size must be less than 5MB")
	}

	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Profile not found")
		}
		return "", err
	}

	// Fixed key per user so a re-upload replaces the previous avatar
	key := fmt.Sprintf("%s/avatar%s", userID, path.Ext(filename))
	url, err := u.uploader.Upload(ctx, avatarBucket, key, data, contentType)
	if err != nil {
		return "", apperror.Internal(err)
	}

	profile.AvatarURL = &url
	if err := u.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Profile not found")
		}
		return "", err
	}
	return url, nil
}
