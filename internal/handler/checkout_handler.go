package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dukapos/payment-engine/internal/dto"
	"github.com/dukapos/payment-engine/internal/middleware"
	"github.com/dukapos/payment-engine/internal/service"
)

// CheckoutHandler exposes the checkout session lifecycle: open, inspect,
// pick a payment method, submit, cancel.
type CheckoutHandler struct {
	svc *service.CheckoutService
}

func NewCheckoutHandler(svc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) Open(c *gin.Context) {
	var req dto.OpenCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, h.svc.OpenCheckout(req.Subtotal, req.Tax))
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	view, err := h.svc.GetCheckout(c.Param("id"))
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SelectMethod replaces the session's method and fields wholesale. A
// repeat call with a different method discards everything entered for
// the previous one.
func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var req dto.SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	view, err := h.svc.SelectMethod(c.Param("id"), &req)
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	result, err := h.svc.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	h.svc.Cancel(c.Param("id"))
	c.Status(http.StatusNoContent)
}
