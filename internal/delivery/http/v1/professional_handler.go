package v1

import (
	"net/http"
	"strconv"

	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/internal/usecase"
	"go-gladiator-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfessionalHandler struct {
	directoryUC domain.DirectoryUsecase
	reviewUC    domain.ReviewUsecase
	portfolioUC domain.PortfolioUsecase
}

// NewProfessionalHandler registers the public directory routes.
func NewProfessionalHandler(public *gin.RouterGroup, directoryUC domain.DirectoryUsecase, reviewUC domain.ReviewUsecase, portfolioUC domain.PortfolioUsecase) {
	handler := &ProfessionalHandler{
		directoryUC: directoryUC,
		reviewUC:    reviewUC,
		portfolioUC: portfolioUC,
	}

	professionals := public.Group("/professionals")
	{
		professionals.GET("", handler.Search)
		professionals.GET("/:id", handler.GetByID)
		professionals.GET("/:id/rating", handler.GetRating)
		professionals.GET("/:id/reviews", handler.ListReviews)
		professionals.GET("/:id/portfolio", handler.ListPortfolio)
	}
}

// parseCriteria reads the filter query parameters. Absent numeric params stay
// nil; "0" is a real bound.
func parseCriteria(c *gin.Context) (domain.SearchCriteria, error) {
	criteria := domain.SearchCriteria{
		Category: c.DefaultQuery("category", domain.CategoryAll),
		Query:    c.Query("q"),
		SortBy:   domain.SortOrder(c.DefaultQuery("sort_by", string(domain.SortNewest))),
	}

	if v := c.Query("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return criteria, apperror.BadRequest("min_price must be a non-negative number")
		}
		criteria.MinPrice = &f
	}
	if v := c.Query("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return criteria, apperror.BadRequest("max_price must be a non-negative number")
		}
		criteria.MaxPrice = &f
	}
	if v := c.Query("min_experience"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return criteria, apperror.BadRequest("min_experience must be a non-negative integer")
		}
		criteria.MinExperience = &n
	}
	if v := c.Query("has_portfolio"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return criteria, apperror.BadRequest("has_portfolio must be a boolean")
		}
		criteria.HasPortfolio = b
	}

	switch criteria.SortBy {
	case domain.SortNewest, domain.SortPriceLow, domain.SortPriceHigh, domain.SortExperience:
	default:
		return criteria, apperror.BadRequest("sort_by must be one of newest, price-low, price-high, experience")
	}

	return criteria, nil
}

// Search godoc
// @Summary      Search professionals
// @Description  Directory search with category, free-text, price, experience and portfolio filters
// @Tags         professionals
// @Produce      json
// @Param        category        query  string  false  "Category or 'all'"
// @Param        q               query  string  false  "Free-text search over name, bio and skills"
// @Param        min_price       query  number  false  "Minimum hourly rate"
// @Param        max_price       query  number  false  "Maximum hourly rate"
// @Param        min_experience  query  int     false  "Minimum years of experience"
// @Param        has_portfolio   query  bool    false  "Only professionals with portfolio items"
// @Param        sort_by         query  string  false  "newest | price-low | price-high | experience"
// @Success      200  {object}  response.Response{data=[]domain.Professional}
// @Failure      400  {object}  response.Response
// @Router       /professionals [get]
func (h *ProfessionalHandler) Search(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		c.Error(err)
		return
	}

	pros, err := h.directoryUC.Search(c, criteria)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Professionals", gin.H{
		"professionals":  pros,
		"active_filters": usecase.CountActiveFilters(criteria),
	})
}

// GetByID godoc
// @Summary      Get a professional
// @Tags         professionals
// @Produce      json
// @Param        id   path      string  true  "Professional ID"
// @Success      200  {object}  response.Response{data=domain.Professional}
// @Failure      404  {object}  response.Response
// @Router       /professionals/{id} [get]
func (h *ProfessionalHandler) GetByID(c *gin.Context) {
	pro, err := h.directoryUC.GetProfessional(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Professional", pro)
}

// GetRating godoc
// @Summary      Get a professional's rating aggregate
// @Description  average_rating is null while the professional has no reviews
// @Tags         professionals
// @Produce      json
// @Param        id   path      string  true  "Professional ID"
// @Success      200  {object}  response.Response{data=domain.RatingAggregate}
// @Router       /professionals/{id}/rating [get]
func (h *ProfessionalHandler) GetRating(c *gin.Context) {
	rating, err := h.reviewUC.GetRating(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Rating", rating)
}

// ListReviews godoc
// @Summary      List a professional's reviews
// @Tags         professionals
// @Produce      json
// @Param        id   path      string  true  "Professional ID"
// @Success      200  {object}  response.Response{data=[]domain.ReviewWithClient}
// @Router       /professionals/{id}/reviews [get]
func (h *ProfessionalHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewUC.ListByProfessional(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Reviews", reviews)
}

// ListPortfolio godoc
// @Summary      List a professional's portfolio items
// @Tags         professionals
// @Produce      json
// @Param        id   path      string  true  "Professional ID"
// @Success      200  {object}  response.Response{data=[]domain.PortfolioItem}
// @Router       /professionals/{id}/portfolio [get]
func (h *ProfessionalHandler) ListPortfolio(c *gin.Context) {
	items, err := h.portfolioUC.ListByProfessional(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio", items)
}
