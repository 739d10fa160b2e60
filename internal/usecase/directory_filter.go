package usecase

import (
	"math"
	"sort"
	"strings"

	"go-gladiator-backend/internal/domain"
)

// ApplyFilters reduces and orders the professional list according to the
// criteria. Pure function: the input slice is not mutated and the result is
// always a subset of it. Ties keep input order (the data layer supplies
// newest-first), so SortNewest is a no-op.
//
// portfolioCounts is only consulted when criteria.HasPortfolio is set; a nil
// map then means "no professional has portfolio items".
func ApplyFilters(pros []domain.Professional, criteria domain.SearchCriteria, portfolioCounts map[string]int) []domain.Professional {
	filtered := make([]domain.Professional, 0, len(pros))

	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	for _, p := range pros {
		if criteria.Category != "" && criteria.Category != domain.CategoryAll {
			if p.Category == nil || *p.Category != criteria.Category {
				continue
			}
		}

		if query != "" && !matchesQuery(p, query) {
			continue
		}

		// A professional with no published rate cannot satisfy a numeric
		// bound. Note: a bound of 0 is set; only nil means "no filter".
		if criteria.MinPrice != nil || criteria.MaxPrice != nil {
			if p.HourlyRate == nil {
				continue
			}
			if criteria.MinPrice != nil && *p.HourlyRate < *criteria.MinPrice {
				continue
			}
			if criteria.MaxPrice != nil && *p.HourlyRate > *criteria.MaxPrice {
				continue
			}
		}

		if criteria.MinExperience != nil {
			if p.ExperienceYears == nil || *p.ExperienceYears < *criteria.MinExperience {
				continue
			}
		}

		if criteria.HasPortfolio && portfolioCounts[p.ID] == 0 {
			continue
		}

		filtered = append(filtered, p)
	}

	sortProfessionals(filtered, criteria.SortBy)
	return filtered
}

func matchesQuery(p domain.Professional, query string) bool {
	if p.FullName != nil && strings.Contains(strings.ToLower(*p.FullName), query) {
		return true
	}
	if p.Bio != nil && strings.Contains(strings.ToLower(*p.Bio), query) {
		return true
	}
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

func sortProfessionals(pros []domain.Professional, order domain.SortOrder) {
	switch order {
	case domain.SortPriceLow:
		// Unknown rate sorts last
		sort.SliceStable(pros, func(i, j int) bool {
			return rateOr(pros[i], math.Inf(1)) < rateOr(pros[j], math.Inf(1))
		})
	case domain.SortPriceHigh:
		// Unknown rate still sorts last under descending order
		sort.SliceStable(pros, func(i, j int) bool {
			return rateOr(pros[i], 0) > rateOr(pros[j], 0)
		})
	case domain.SortExperience:
		sort.SliceStable(pros, func(i, j int) bool {
			return experienceOr(pros[i], 0) > experienceOr(pros[j], 0)
		})
	default:
		// SortNewest: input order already is newest-first
	}
}

func rateOr(p domain.Professional, fallback float64) float64 {
	if p.HourlyRate == nil {
		return fallback
	}
	return *p.HourlyRate
}

func experienceOr(p domain.Professional, fallback int) int {
	if p.ExperienceYears == nil {
		return fallback
	}
	return *p.ExperienceYears
}

// CountActiveFilters reports how many non-default criteria are active, for
// the UI filter badge. Category and free-text search have their own controls
// and are not counted. Both price bounds together count once.
func CountActiveFilters(criteria domain.SearchCriteria) int {
	count := 0
	if criteria.MinPrice != nil || criteria.MaxPrice != nil {
		count++
	}
	if criteria.MinExperience != nil {
		count++
	}
	if criteria.HasPortfolio {
		count++
	}
	if criteria.SortBy != "" && criteria.SortBy != domain.SortNewest {
		count++
	}
	return count
}
