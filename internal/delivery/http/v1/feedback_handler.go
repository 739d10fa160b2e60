package v1

import (
	"net/http"

	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUC domain.FeedbackUsecase
}

// NewFeedbackHandler registers the feedback route. Auth is optional: anonymous
// submissions are accepted, authenticated ones get the user attached.
func NewFeedbackHandler(group *gin.RouterGroup, feedbackUC domain.FeedbackUsecase) {
	handler := &FeedbackHandler{feedbackUC: feedbackUC}
	group.POST("/feedback", handler.Submit)
}

type submitFeedbackRequest struct {
	Type        string `json:"type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Email       string `json:"email"`
}

// Submit godoc
// @Summary      Submit product feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        request  body      submitFeedbackRequest  true  "Feedback payload"
// @Success      201      {object}  response.Response{data=domain.Feedback}
// @Failure      400      {object}  response.Response
// @Router       /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	fb := &domain.Feedback{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Email != "" {
		fb.Email = &req.Email
	}

	if err := h.feedbackUC.SubmitFeedback(c, fb); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Feedback received", fb)
}
