package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukapos/payment-engine/internal/dto"
	"github.com/dukapos/payment-engine/internal/service"
)

type ProviderHandler struct {
	svc *service.CheckoutService
}

func NewProviderHandler(svc *service.CheckoutService) *ProviderHandler {
	return &ProviderHandler{svc: svc}
}

func (h *ProviderHandler) List(c *gin.Context) {
	providers, loaded := h.svc.Providers()
	if !loaded {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "BNPL providers are still loading. Try again shortly",
		})
		return
	}

	out := make([]dto.ProviderResponse, len(providers))
	for i, p := range providers {
		out[i] = dto.ProviderResponse{
			ID:                     p.ID,
			Name:                   p.Name,
			DownPaymentPercentage:  p.DownPaymentPercentage,
			InterestRatePercentage: p.InterestRatePercentage,
		}
	}

	c.JSON(http.StatusOK, dto.ProviderListResponse{Providers: out})
}
