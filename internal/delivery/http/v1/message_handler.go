package v1

import (
	"net/http"

	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

// NewMessageHandler registers the authenticated messaging routes.
func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	messages := protected.Group("/messages")
	{
		messages.POST("", handler.Send)
		messages.GET("", handler.ListMine)
		messages.PATCH("/:id/read", handler.MarkRead)
	}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Subject     string `json:"subject"`
	Message     string `json:"message" binding:"required"`
}

// Send godoc
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request  body      sendMessageRequest  true  "Message payload"
// @Success      201      {object}  response.Response{data=domain.Message}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	msg, err := h.messageUC.SendMessage(c, req.RecipientID, req.Subject, req.Message)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// ListMine godoc
// @Summary      List my messages
// @Description  Everything I sent or received, newest first, with counterpart display fields
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.MessageWithParties}
// @Security     BearerAuth
// @Router       /messages [get]
func (h *MessageHandler) ListMine(c *gin.Context) {
	msgs, err := h.messageUC.ListMyMessages(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Messages", msgs)
}

// MarkRead godoc
// @Summary      Mark a message as read
// @Description  Only the recipient may mark a message read
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.messageUC.MarkRead(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Message marked as read", nil)
}
