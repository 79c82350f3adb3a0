package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/apperr"
	"github.com/gorent/gorent/internal/pkg/logger"
	"github.com/gorent/gorent/internal/pkg/middleware"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/internal/utils"
	"github.com/gorent/gorent/services/rental"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// RentalHandler handles HTTP requests for rental operations
type RentalHandler struct {
	rentalUC rental.RentalUC
}

// NewRentalHandler creates a new rental HTTP handler
func NewRentalHandler(rentalUC rental.RentalUC) *RentalHandler {
	return &RentalHandler{rentalUC: rentalUC}
}

type createRentalBody struct {
	VehicleID  string `json:"vehicle_id"`
	RentalDate string `json:"rental_date"`
	ReturnDate string `json:"return_date"`
}

// CreateRental handles POST /rentals
func (h *RentalHandler) CreateRental(c echo.Context) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body createRentalBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	vehicleID, err := uuid.Parse(body.VehicleID)
	if err != nil {
		return utils.BadRequestResponse(c, "vehicle_id must be a valid UUID")
	}
	rentalDate, err := time.Parse(dateLayout, body.RentalDate)
	if err != nil {
		return utils.BadRequestResponse(c, "rental_date must be YYYY-MM-DD")
	}
	returnDate, err := time.Parse(dateLayout, body.ReturnDate)
	if err != nil {
		return utils.BadRequestResponse(c, "return_date must be YYYY-MM-DD")
	}

	created, err := h.rentalUC.CreateRental(c.Request().Context(), models.CreateRentalRequest{
		CustomerID: customerID,
		VehicleID:  vehicleID,
		RentalDate: rentalDate,
		ReturnDate: returnDate,
	})
	if err != nil {
		return rentalErrorResponse(c, err)
	}

	logger.Info("rental created",
		logger.String("rental_id", created.ID.String()),
		logger.String("customer_id", customerID.String()),
		logger.String("vehicle_id", vehicleID.String()))

	return utils.SuccessResponse(c, http.StatusCreated, "Rental created", created)
}

type returnRentalBody struct {
	ActualReturnDate string `json:"actual_return_date"`
}

// ReturnRental handles POST /rentals/return
func (h *RentalHandler) ReturnRental(c echo.Context) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body returnRentalBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	actualReturnDate, err := time.Parse(dateLayout, body.ActualReturnDate)
	if err != nil {
		return utils.BadRequestResponse(c, "actual_return_date must be YYYY-MM-DD")
	}

	closed, err := h.rentalUC.ReturnRental(c.Request().Context(), models.ReturnRentalRequest{
		CustomerID:       customerID,
		ActualReturnDate: actualReturnDate,
	})
	if err != nil {
		return rentalErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rental returned", closed)
}

// ListRentals handles GET /rentals
func (h *RentalHandler) ListRentals(c echo.Context) error {
	filter := models.RentalFilter{}

	if raw := c.QueryParam("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "customer_id must be a valid UUID")
		}
		filter.CustomerID = &id
	}
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "active must be a boolean")
		}
		filter.Active = &active
	}

	rentals, err := h.rentalUC.ListRentals(c.Request().Context(), filter)
	if err != nil {
		return rentalErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", rentals)
}

// GetRental handles GET /rentals/:rentalID
func (h *RentalHandler) GetRental(c echo.Context) error {
	id, err := uuid.Parse(c.Param("rentalID"))
	if err != nil {
		return utils.BadRequestResponse(c, "rental id must be a valid UUID")
	}

	found, err := h.rentalUC.GetRental(c.Request().Context(), id)
	if err != nil {
		return rentalErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", found)
}

// ListVehicles handles GET /vehicles
func (h *RentalHandler) ListVehicles(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	vehicles, err := h.rentalUC.ListVehicles(c.Request().Context(), page, limit)
	if err != nil {
		return rentalErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", vehicles)
}

func rentalErrorResponse(c echo.Context, err error) error {
	switch {
	case apperr.IsNotFound(err):
		return utils.NotFoundResponse(c, err.Error())
	case apperr.IsConflict(err):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("rental operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
