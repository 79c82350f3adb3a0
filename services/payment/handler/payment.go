package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/apperr"
	"github.com/gorent/gorent/internal/pkg/logger"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/internal/utils"
	"github.com/gorent/gorent/services/payment"
	"github.com/labstack/echo/v4"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// createPaymentBody deliberately has no kind field. Customers can only
// request ordinary checkout payments; fines are created by the overdue
// sweep and must not be injectable through the public API.
type createPaymentBody struct {
	RentalID string `json:"rental_id"`
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var body createPaymentBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rentalID, err := uuid.Parse(body.RentalID)
	if err != nil {
		return utils.BadRequestResponse(c, "rental_id must be a valid UUID")
	}

	url, err := h.paymentUC.CreatePayment(c.Request().Context(), models.CreatePaymentRequest{
		RentalID: rentalID,
	})
	if err != nil {
		return paymentErrorResponse(c, err)
	}

	logger.Info("payment session created",
		logger.String("rental_id", rentalID.String()))

	return utils.SuccessResponse(c, http.StatusCreated, "Payment session created", map[string]string{
		"session_url": url,
	})
}

// PaymentSuccess handles GET /payments/success, the provider's redirect
// target after a completed checkout
func (h *PaymentHandler) PaymentSuccess(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "session_id is required")
	}

	if err := h.paymentUC.MarkPaymentSuccessful(c.Request().Context(), sessionID); err != nil {
		return paymentErrorResponse(c, err)
	}

	logger.Info("payment marked successful", logger.String("session_id", sessionID))

	return utils.SuccessResponse(c, http.StatusOK, "Payment completed", nil)
}

// PaymentCancel handles GET /payments/cancel. The session stays pending
// until the expiry sweep collects it, so this only acknowledges.
func (h *PaymentHandler) PaymentCancel(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Payment cancelled", nil)
}

// ListPayments handles GET /payments?rental_id=
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	rentalID, err := uuid.Parse(c.QueryParam("rental_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "rental_id must be a valid UUID")
	}

	payments, err := h.paymentUC.ListPayments(c.Request().Context(), rentalID)
	if err != nil {
		return paymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", payments)
}

// ListActivePayments handles GET /payments/active
func (h *PaymentHandler) ListActivePayments(c echo.Context) error {
	payments, err := h.paymentUC.ListActivePayments(c.Request().Context())
	if err != nil {
		return paymentErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", payments)
}

func paymentErrorResponse(c echo.Context, err error) error {
	switch {
	case apperr.IsNotFound(err):
		return utils.NotFoundResponse(c, err.Error())
	case apperr.IsConflict(err):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, apperr.ErrGateway):
		logger.Error("payment gateway call failed", logger.Err(err))
		return utils.BadGatewayResponse(c, "")
	default:
		logger.Error("payment operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
