package v1

import (
	"net/http"

	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUC domain.ReviewUsecase
}

// NewReviewHandler registers the authenticated review routes.
func NewReviewHandler(protected *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	reviews := protected.Group("/reviews")
	{
		reviews.POST("", handler.Submit)
		reviews.PUT("/:id", handler.Update)
		reviews.DELETE("/:id", handler.Delete)
	}
}

type submitReviewRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
	Rating         int    `json:"rating" binding:"required"`
	Comment        string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Submit godoc
// @Summary      Leave a review for a professional
// @Description  Clients only; one review per (professional, client) pair
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request  body      submitReviewRequest  true  "Review payload"
// @Success      201      {object}  response.Response{data=domain.Review}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	review, err := h.reviewUC.SubmitReview(c, req.ProfessionalID, req.Rating, req.Comment)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Review submitted", review)
}

// Update godoc
// @Summary      Update my review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Review ID"
// @Param        request  body      updateReviewRequest  true  "Updated rating and comment"
// @Success      200      {object}  response.Response{data=domain.Review}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	review, err := h.reviewUC.UpdateReview(c, c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Review updated", review)
}

// Delete godoc
// @Summary      Delete my review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewUC.DeleteReview(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Review deleted", nil)
}
