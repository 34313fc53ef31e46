package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/services/payments"
	httpHandler "github.com/piresc/hubber/services/payments/handler/http"
)

// Handler combines all handlers for the payments service
type Handler struct {
	paymentsHTTP *httpHandler.PaymentsHandler
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payments.PaymentUC) *Handler {
	return &Handler{
		paymentsHTTP: httpHandler.NewPaymentsHandler(paymentUC),
	}
}

// RegisterRoutes registers the authenticated payment routes
func (h *Handler) RegisterRoutes(api *echo.Group) {
	paymentsGroup := api.Group("/payments")
	paymentsGroup.POST("/intent", h.paymentsHTTP.CreateIntent)
	paymentsGroup.POST("/confirm", h.paymentsHTTP.Confirm)
	paymentsGroup.POST("/refund", h.paymentsHTTP.Refund)
	paymentsGroup.GET("/:id", h.paymentsHTTP.GetPayment)
}
