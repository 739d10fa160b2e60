package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// directoryFixture returns professionals in newest-first order, the way the
// repository delivers them.
func directoryFixture() []domain.Professional {
	now := time.Now()
	return []domain.Professional{
		{
			ID:              "pro-dev",
			FullName:        strPtr("Anna Kovacs"),
			Category:        strPtr("it"),
			Skills:          []string{"Go", "PostgreSQL"},
			Bio:             strPtr("Backend developer"),
			ExperienceYears: intPtr(8),
			HourlyRate:      floatPtr(60),
			CreatedAt:       now,
		},
		{
			ID:              "pro-designer",
			FullName:        strPtr("Boris Petrov"),
			Category:        strPtr("design"),
			Skills:          []string{"Figma"},
			Bio:             strPtr("Product designer"),
			ExperienceYears: intPtr(3),
			HourlyRate:      floatPtr(40),
			CreatedAt:       now.Add(-time.Hour),
		},
		{
			ID:        "pro-norate",
			FullName:  strPtr("Clara Diaz"),
			Category:  strPtr("it"),
			Skills:    []string{"Go", "Kubernetes"},
			Bio:       strPtr("SRE and Go consultant"),
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:              "pro-free",
			FullName:        strPtr("Daniel Novak"),
			Category:        strPtr("writing"),
			Bio:             strPtr("Technical writer"),
			ExperienceYears: intPtr(5),
			HourlyRate:      floatPtr(0),
			CreatedAt:       now.Add(-3 * time.Hour),
		},
	}
}

func TestApplyFiltersCategory(t *testing.T) {
	pros := directoryFixture()

	t.Run("Should return everyone for the all sentinel", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{Category: domain.CategoryAll}, nil)
		assert.Len(t, out, len(pros))
	})

	t.Run("Should return everyone when category is empty", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{}, nil)
		assert.Len(t, out, len(pros))
	})

	t.Run("Should keep only the matching category", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{Category: "it"}, nil)
		assert.Len(t, out, 2)
		for _, p := range out {
			assert.Equal(t, "it", *p.Category)
		}
	})
}

func TestApplyFiltersQuery(t *testing.T) {
	pros := directoryFixture()

	t.Run("Should match case-insensitively over name, bio and skills", func(t *testing.T) {
		byName := usecase.ApplyFilters(pros, domain.SearchCriteria{Query: "anna"}, nil)
		assert.Len(t, byName, 1)
		assert.Equal(t, "pro-dev", byName[0].ID)

		byBio := usecase.ApplyFilters(pros, domain.SearchCriteria{Query: "WRITER"}, nil)
		assert.Len(t, byBio, 1)
		assert.Equal(t, "pro-free", byBio[0].ID)

		bySkill := usecase.ApplyFilters(pros, domain.SearchCriteria{Query: "kubernetes"}, nil)
		assert.Len(t, bySkill, 1)
		assert.Equal(t, "pro-norate", bySkill[0].ID)
	})

	t.Run("Should treat whitespace-only query as no filter", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{Query: "   "}, nil)
		assert.Len(t, out, len(pros))
	})

	t.Run("Should return empty slice when nothing matches", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{Query: "blockchain"}, nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestApplyFiltersPrice(t *testing.T) {
	pros := directoryFixture()

	t.Run("Should exclude professionals without a rate when any bound is set", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{MinPrice: floatPtr(10)}, nil)
		for _, p := range out {
			assert.NotEqual(t, "pro-norate", p.ID)
		}
	})

	t.Run("Should treat a zero bound as a real bound", func(t *testing.T) {
		// max_price=0 keeps only the free professional; the nil-rate one is
		// still excluded because a bound is set.
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{MaxPrice: floatPtr(0)}, nil)
		assert.Len(t, out, 1)
		assert.Equal(t, "pro-free", out[0].ID)
	})

	t.Run("Should apply both bounds inclusively", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{
			MinPrice: floatPtr(40),
			MaxPrice: floatPtr(60),
		}, nil)
		assert.Len(t, out, 2)
	})
}

func TestApplyFiltersExperienceAndPortfolio(t *testing.T) {
	pros := directoryFixture()

	t.Run("Should exclude unknown experience when a minimum is set", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{MinExperience: intPtr(5)}, nil)
		assert.Len(t, out, 2)
		for _, p := range out {
			assert.GreaterOrEqual(t, *p.ExperienceYears, 5)
		}
	})

	t.Run("Should keep only professionals with portfolio items", func(t *testing.T) {
		counts := map[string]int{"pro-designer": 3}
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{HasPortfolio: true}, counts)
		assert.Len(t, out, 1)
		assert.Equal(t, "pro-designer", out[0].ID)
	})

	t.Run("Should drop everyone when portfolio filter is on and counts are nil", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{HasPortfolio: true}, nil)
		assert.Empty(t, out)
	})
}

func TestApplyFiltersSort(t *testing.T) {
	pros := directoryFixture()

	ids := func(out []domain.Professional) []string {
		res := make([]string, len(out))
		for i, p := range out {
			res[i] = p.ID
		}
		return res
	}

	t.Run("Should keep newest-first input order by default", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{SortBy: domain.SortNewest}, nil)
		assert.Equal(t, []string{"pro-dev", "pro-designer", "pro-norate", "pro-free"}, ids(out))
	})

	t.Run("Should sort price-low ascending with unknown rate last", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{SortBy: domain.SortPriceLow}, nil)
		assert.Equal(t, []string{"pro-free", "pro-designer", "pro-dev", "pro-norate"}, ids(out))
	})

	t.Run("Should sort price-high descending with unknown rate last", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{SortBy: domain.SortPriceHigh}, nil)
		// pro-free (rate 0) and pro-norate (no rate) both key to 0; stable
		// sort keeps their input order.
		assert.Equal(t, []string{"pro-dev", "pro-designer", "pro-norate", "pro-free"}, ids(out))
	})

	t.Run("Should sort experience descending with unknown experience last", func(t *testing.T) {
		out := usecase.ApplyFilters(pros, domain.SearchCriteria{SortBy: domain.SortExperience}, nil)
		assert.Equal(t, []string{"pro-dev", "pro-free", "pro-designer", "pro-norate"}, ids(out))
	})

	t.Run("Should not mutate the input slice", func(t *testing.T) {
		before := ids(pros)
		_ = usecase.ApplyFilters(pros, domain.SearchCriteria{SortBy: domain.SortPriceLow}, nil)
		assert.Equal(t, before, ids(pros))
	})
}

func TestApplyFiltersCombined(t *testing.T) {
	pros := directoryFixture()

	// All filters at once: it-category Go people with a rate between 10 and
	// 100, at least 5 years, sorted price-low.
	out := usecase.ApplyFilters(pros, domain.SearchCriteria{
		Category:      "it",
		Query:         "go",
		MinPrice:      floatPtr(10),
		MaxPrice:      floatPtr(100),
		MinExperience: intPtr(5),
		SortBy:        domain.SortPriceLow,
	}, nil)

	assert.Len(t, out, 1)
	assert.Equal(t, "pro-dev", out[0].ID)
}

func TestCountActiveFilters(t *testing.T) {
	t.Run("Should be zero for defaults", func(t *testing.T) {
		assert.Equal(t, 0, usecase.CountActiveFilters(domain.SearchCriteria{
			Category: domain.CategoryAll,
			SortBy:   domain.SortNewest,
		}))
	})

	t.Run("Should count both price bounds as one filter", func(t *testing.T) {
		assert.Equal(t, 1, usecase.CountActiveFilters(domain.SearchCriteria{
			MinPrice: floatPtr(10),
			MaxPrice: floatPtr(50),
		}))
	})

	t.Run("Should count experience, portfolio and sort separately", func(t *testing.T) {
		assert.Equal(t, 3, usecase.CountActiveFilters(domain.SearchCriteria{
			MinExperience: intPtr(2),
			HasPortfolio:  true,
			SortBy:        domain.SortPriceHigh,
		}))
	})
}

func TestDirectorySearch(t *testing.T) {
	t.Run("Should skip the portfolio count query when the filter is off", func(t *testing.T) {
		proRepo := new(MockProfessionalRepo)
		pfRepo := new(MockPortfolioRepo)
		uc := usecase.NewDirectoryUsecase(proRepo, pfRepo)

		proRepo.On("FetchAll", mock.Anything).Return(directoryFixture(), nil)

		out, err := uc.Search(context.Background(), domain.SearchCriteria{Category: "it"})
		assert.NoError(t, err)
		assert.Len(t, out, 2)
		pfRepo.AssertNotCalled(t, "CountByUsers", mock.Anything, mock.Anything)
	})

	t.Run("Should batch portfolio counts when the filter is on", func(t *testing.T) {
		proRepo := new(MockProfessionalRepo)
		pfRepo := new(MockPortfolioRepo)
		uc := usecase.NewDirectoryUsecase(proRepo, pfRepo)

		proRepo.On("FetchAll", mock.Anything).Return(directoryFixture(), nil)
		pfRepo.On("CountByUsers", mock.Anything, mock.Anything).
			Return(map[string]int{"pro-dev": 2}, nil)

		out, err := uc.Search(context.Background(), domain.SearchCriteria{HasPortfolio: true})
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "pro-dev", out[0].ID)
		pfRepo.AssertNumberOfCalls(t, "CountByUsers", 1)
	})
}
