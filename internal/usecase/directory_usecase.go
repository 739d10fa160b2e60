package usecase

import (
	"context"
	"errors"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"
)

type directoryUsecase struct {
	professionalRepo domain.ProfessionalRepository
	portfolioRepo    domain.PortfolioRepository
}

func NewDirectoryUsecase(professionalRepo domain.ProfessionalRepository, portfolioRepo domain.PortfolioRepository) domain.DirectoryUsecase {
	return &directoryUsecase{
		professionalRepo: professionalRepo,
		portfolioRepo:    portfolioRepo,
	}
}

// Search loads the full professional snapshot and runs the filter pipeline
// over it. Stateless, so concurrent searches cannot interfere; the caller
// decides which result to keep.
func (u *directoryUsecase) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Professional, error) {
	pros, err := u.professionalRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	// The portfolio join is only paid when the filter asks for it
	var counts map[string]int
	if criteria.HasPortfolio {
		ids := make([]string, len(pros))
		for i, p := range pros {
			ids[i] = p.ID
		}
		counts, err = u.portfolioRepo.CountByUsers(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	return ApplyFilters(pros, criteria, counts), nil
}

func (u *directoryUsecase) GetProfessional(ctx context.Context, id string) (*domain.Professional, error) {
	pro, err := u.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Professional not found")
		}
		return nil, err
	}
	return pro, nil
}
