package handler

import (
	"github.com/gorent/gorent/internal/pkg/middleware"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/services/payment"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *PaymentHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payment.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		paymentHTTP: NewPaymentHandler(paymentUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes. The success and cancel
// callbacks stay public since the provider redirects the customer's
// browser there without our token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	e.GET("/payments/success", h.paymentHTTP.PaymentSuccess)
	e.GET("/payments/cancel", h.paymentHTTP.PaymentCancel)

	payments := e.Group("/payments", auth)
	payments.POST("", h.paymentHTTP.CreatePayment)
	payments.GET("", h.paymentHTTP.ListPayments)
	payments.GET("/active", h.paymentHTTP.ListActivePayments)
}
