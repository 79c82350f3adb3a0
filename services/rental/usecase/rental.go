package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/apperr"
	"github.com/gorent/gorent/internal/pkg/logger"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/services/rental"
)

// rentalUC implements the rental.RentalUC interface
type rentalUC struct {
	cfg          *models.Config
	rentalRepo   rental.RentalRepo
	vehicleRepo  rental.VehicleRepo
	customerRepo rental.CustomerRepo
	notifier     rental.NotifierGW
}

// NewRentalUC creates a new rental use case
func NewRentalUC(
	cfg *models.Config,
	rentalRepo rental.RentalRepo,
	vehicleRepo rental.VehicleRepo,
	customerRepo rental.CustomerRepo,
	notifier rental.NotifierGW,
) rental.RentalUC {
	return &rentalUC{
		cfg:          cfg,
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

// CreateRental reserves a vehicle unit and opens a rental. Precondition
// checks fail fast with distinct errors; the repository transaction
// re-enforces stock and single-active-rental under concurrency, so the
// checks here can never let a race through.
func (uc *rentalUC) CreateRental(ctx context.Context, req models.CreateRentalRequest) (*models.Rental, error) {
	exists, err := uc.customerRepo.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return nil, apperr.ErrCustomerNotFound
	}

	hasActive, err := uc.rentalRepo.HasActiveRental(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active rental: %w", err)
	}
	if hasActive {
		return nil, apperr.ErrActiveRentalExists
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Available <= 0 {
		return nil, apperr.ErrOutOfStock
	}

	if req.ReturnDate.Before(req.RentalDate) {
		return nil, apperr.ErrInvalidDateRange
	}

	created, err := uc.rentalRepo.CreateWithReservation(ctx, &models.Rental{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		RentalDate: req.RentalDate,
		ReturnDate: req.ReturnDate,
	})
	if err != nil {
		return nil, err
	}

	uc.vehicleRepo.Invalidate(ctx, req.VehicleID)

	if err := uc.notifier.NotifyRentalCreated(ctx, created); err != nil {
		logger.Warn("failed to publish rental created event",
			logger.String("rental_id", created.ID.String()),
			logger.Err(err))
	}

	return created, nil
}

// ReturnRental closes the customer's active rental and releases the unit
func (uc *rentalUC) ReturnRental(ctx context.Context, req models.ReturnRentalRequest) (*models.Rental, error) {
	closed, err := uc.rentalRepo.CloseWithRelease(ctx, req.CustomerID, req.ActualReturnDate)
	if err != nil {
		return nil, err
	}

	uc.vehicleRepo.Invalidate(ctx, closed.VehicleID)

	if err := uc.notifier.NotifyRentalReturned(ctx, closed); err != nil {
		logger.Warn("failed to publish rental returned event",
			logger.String("rental_id", closed.ID.String()),
			logger.Err(err))
	}

	return closed, nil
}

// ListRentals returns rentals matching the filter
func (uc *rentalUC) ListRentals(ctx context.Context, filter models.RentalFilter) ([]models.Rental, error) {
	return uc.rentalRepo.List(ctx, filter)
}

// ListVehicles returns a page of the vehicle catalog
func (uc *rentalUC) ListVehicles(ctx context.Context, page, limit int) ([]models.Vehicle, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.vehicleRepo.List(ctx, page, limit)
}

// GetRental returns one rental by id
func (uc *rentalUC) GetRental(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	return uc.rentalRepo.GetByID(ctx, id)
}
