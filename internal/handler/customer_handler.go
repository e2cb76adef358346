package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukapos/payment-engine/internal/dto"
	"github.com/dukapos/payment-engine/internal/service"
)

type CustomerHandler struct {
	svc *service.CheckoutService
}

func NewCustomerHandler(svc *service.CheckoutService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Search resolves a loyalty card number or phone number to a customer.
// Only exact matches count; a near miss is a 404, never a guess.
func (h *CustomerHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "query parameter q is required"})
		return
	}

	cust := h.svc.SearchCustomer(term)
	if cust == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "No customer found. Please check the search term",
		})
		return
	}

	c.JSON(http.StatusOK, dto.CustomerResponse{
		ID:                cust.ID,
		Name:              cust.Name,
		Phone:             cust.Phone,
		LoyaltyCardNumber: cust.LoyaltyCardNumber,
		PointsBalance:     cust.PointsBalance,
		StoreCredit:       cust.StoreCredit,
	})
}
