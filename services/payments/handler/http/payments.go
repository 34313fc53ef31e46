package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/hubber/internal/pkg/middleware"
	"github.com/piresc/hubber/internal/pkg/models"
	nrpkg "github.com/piresc/hubber/internal/pkg/newrelic"
	"github.com/piresc/hubber/internal/utils"
	"github.com/piresc/hubber/services/payments"
)

// PaymentsHandler handles HTTP requests for payment operations
type PaymentsHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentsHandler creates a new payments HTTP handler
func NewPaymentsHandler(paymentUC payments.PaymentUC) *PaymentsHandler {
	return &PaymentsHandler{
		paymentUC: paymentUC,
	}
}

// CreateIntent handles POST /payments/intent
func (h *PaymentsHandler) CreateIntent(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.CreateIntent")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.paymentUC.CreatePaymentIntent(c.Request().Context(), principal, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment intent created successfully", resp)
}

// Confirm handles POST /payments/confirm
func (h *PaymentsHandler) Confirm(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.Confirm")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	payment, err := h.paymentUC.ConfirmPayment(c.Request().Context(), principal, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed successfully", payment)
}

// Refund handles POST /payments/refund
func (h *PaymentsHandler) Refund(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.Refund")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RefundPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	payment, err := h.paymentUC.RefundPayment(c.Request().Context(), principal, req.PaymentID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment refunded successfully", payment)
}

// GetPayment handles GET /payments/:id
func (h *PaymentsHandler) GetPayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.GetPayment")

	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	paymentID, ok := utils.ParseUUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid payment ID")
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), principal, paymentID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", payment)
}
