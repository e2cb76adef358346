package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukapos/payment-engine/internal/middleware"
	"github.com/dukapos/payment-engine/internal/model"
	"github.com/dukapos/payment-engine/internal/service"
)

type PaymentHandler struct {
	svc *service.CheckoutService
}

func NewPaymentHandler(svc *service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Installments returns the persisted repayment schedule for a BNPL
// payment. An empty list means the payment has no schedule.
func (h *PaymentHandler) Installments(c *gin.Context) {
	legs, err := h.svc.Installments(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	if legs == nil {
		legs = []model.Installment{}
	}
	c.JSON(http.StatusOK, gin.H{"installments": legs})
}
