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
	"github.com/google/uuid"
)

// Matches the original upload limit for portfolio images
const maxImageSize = 5 * 1024 * 1024

const portfolioBucket = "portfolio"

type portfolioUsecase struct {
	portfolioRepo domain.PortfolioRepository
	uploader      storage.Uploader
	validate      *validator.Validate
}

func NewPortfolioUsecase(portfolioRepo domain.PortfolioRepository, uploader storage.Uploader, validate *validator.Validate) domain.PortfolioUsecase {
	return &portfolioUsecase{
		portfolioRepo: portfolioRepo,
		uploader:      uploader,
		validate:      validate,
	}
}

func (u *portfolioUsecase) AddItem(ctx context.Context, input *domain.PortfolioInput) (*domain.PortfolioItem, error) {
	userID, role, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleProfessional {
		return nil, apperror.Forbidden("Only professionals can add portfolio items")
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	var imageURL *string
	if len(input.ImageData) > 0 {
		if len(input.ImageData) > maxImageSize {
			return nil, apperror.BadRequest("Image size must be less than 5MB")
		}
		ext := path.Ext(input.ImageFilename)
		key := fmt.Sprintf("%s/%s%s", userID, uuid.NewString(), ext)
		url, err := u.uploader.Upload(ctx, portfolioBucket, key, input.ImageData, input.ImageContentType)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		imageURL = &url
	}

	item := &domain.PortfolioItem{
		UserID:   userID,
		Title:    input.Title,
		ImageURL: imageURL,
		Tags:     cleanTags(input.Tags),
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		item.Description = &desc
	}
	if url := strings.TrimSpace(input.ProjectURL); url != "" {
		item.ProjectURL = &url
	}

	if err := u.portfolioRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func cleanTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (u *portfolioUsecase) ListByProfessional(ctx context.Context, professionalID string) ([]domain.PortfolioItem, error) {
	return u.portfolioRepo.FetchByUser(ctx, professionalID)
}

func (u *portfolioUsecase) DeleteItem(ctx context.Context, itemID string) error {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return err
	}

	item, err := u.portfolioRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Portfolio item not found")
		}
		return err
	}
	if item.UserID != userID {
		return apperror.Forbidden("You can only delete your own portfolio items")
	}

	if err := u.portfolioRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Portfolio item not found")
		}
		return err
	}
	return nil
}
