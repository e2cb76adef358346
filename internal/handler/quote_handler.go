package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukapos/payment-engine/internal/dto"
	"github.com/dukapos/payment-engine/internal/service"
)

type QuoteHandler struct {
	svc      *service.CheckoutService
	currency string
}

func NewQuoteHandler(svc *service.CheckoutService, currency string) *QuoteHandler {
	return &QuoteHandler{svc: svc, currency: currency}
}

// Quote prices a cart without opening a checkout. The register uses it
// to refresh the displayed total while items are still being scanned.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	total := h.svc.Quote(req.Subtotal, req.Tax)
	c.JSON(http.StatusOK, dto.QuoteResponse{
		Subtotal: total.Subtotal,
		Tax:      total.Tax,
		Total:    total.Total,
		Currency: h.currency,
	})
}
