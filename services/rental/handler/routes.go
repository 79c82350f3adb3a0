package handler

import (
	"github.com/gorent/gorent/internal/pkg/middleware"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/services/rental"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the rental service
type Handler struct {
	rentalHTTP *RentalHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rentalUC rental.RentalUC, cfg *models.Config) *Handler {
	return &Handler{
		rentalHTTP: NewRentalHandler(rentalUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	rentals := e.Group("/rentals", auth)
	rentals.POST("", h.rentalHTTP.CreateRental)
	rentals.POST("/return", h.rentalHTTP.ReturnRental)
	rentals.GET("", h.rentalHTTP.ListRentals)
	rentals.GET("/:rentalID", h.rentalHTTP.GetRental)

	e.GET("/vehicles", h.rentalHTTP.ListVehicles)
}
