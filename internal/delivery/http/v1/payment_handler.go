package v1

import (
	"net/http"

	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/internal/domain"
	"go-gladiator-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUC domain.PaymentUsecase
}

// NewPaymentHandler registers the authenticated payment routes.
func NewPaymentHandler(protected *gin.RouterGroup, paymentUC domain.PaymentUsecase) {
	handler := &PaymentHandler{paymentUC: paymentUC}

	payments := protected.Group("/payments")
	{
		payments.POST("", handler.CreateIntent)
		payments.GET("", handler.ListMine)
	}
}

type createPaymentRequest struct {
	ProfessionalID string  `json:"professional_id" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	TxHash         string  `json:"tx_hash"`
	Description    string  `json:"description"`
}

// CreateIntent godoc
// @Summary      Record a crypto payment intent
// @Description  USDT on TRC20 only. The tx hash is recorded as-is and never verified on-chain.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      createPaymentRequest  true  "Payment payload"
// @Success      201      {object}  response.Response{data=domain.Transaction}
// @Failure      400      {object}  response.Response
// @Security     BearerAuth
// @Router       /payments [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	tx, err := h.paymentUC.CreatePaymentIntent(c, req.ProfessionalID, req.Amount, req.TxHash, req.Description)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Payment recorded", tx)
}

// ListMine godoc
// @Summary      List my transactions
// @Description  Transactions where I am either the client or the professional, newest first
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Transaction}
// @Security     BearerAuth
// @Router       /payments [get]
func (h *PaymentHandler) ListMine(c *gin.Context) {
	txs, err := h.paymentUC.ListMyTransactions(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Transactions", txs)
}
