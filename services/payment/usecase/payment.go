package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/apperr"
	"github.com/gorent/gorent/internal/pkg/logger"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/internal/pkg/scheduler"
	"github.com/gorent/gorent/services/payment"
	"github.com/gorent/gorent/services/rental"
	"github.com/shopspring/decimal"
)

// paymentUC implements the payment.PaymentUC interface
type paymentUC struct {
	cfg         *models.Config
	paymentRepo payment.PaymentRepo
	rentalRepo  rental.RentalRepo
	vehicleRepo rental.VehicleRepo
	gateway     payment.PaymentGW
	notifier    payment.NotifierGW
	clock       scheduler.Clock
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payment.PaymentRepo,
	rentalRepo rental.RentalRepo,
	vehicleRepo rental.VehicleRepo,
	gateway payment.PaymentGW,
	notifier payment.NotifierGW,
	clock scheduler.Clock,
) payment.PaymentUC {
	return &paymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		gateway:     gateway,
		notifier:    notifier,
		clock:       clock,
	}
}

// CreatePayment opens a checkout session for the amount owed on a
// rental and persists the pending payment. The gateway call comes
// first: a gateway failure leaves no payment record behind.
func (uc *paymentUC) CreatePayment(ctx context.Context, req models.CreatePaymentRequest) (string, error) {
	rentalRec, err := uc.rentalRepo.GetByID(ctx, req.RentalID)
	if err != nil {
		return "", err
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, rentalRec.VehicleID)
	if err != nil {
		return "", err
	}

	amount := rentalAmount(vehicle.DailyFee, rentalRec)

	session, err := uc.gateway.CreateCheckoutSession(ctx, amount)
	if err != nil {
		return "", err
	}

	kind := req.Kind
	if kind == "" {
		kind = models.PaymentKindRental
	}

	p := &models.Payment{
		ID:         uuid.New(),
		RentalID:   rentalRec.ID,
		Kind:       kind,
		Status:     models.PaymentStatusPending,
		Amount:     amount,
		SessionID:  session.ID,
		SessionURL: truncateURL(session.URL),
		CreatedAt:  uc.clock.Now().UTC(),
	}
	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		return "", fmt.Errorf("failed to persist payment: %w", err)
	}

	if err := uc.notifier.NotifyPaymentCreated(ctx, p); err != nil {
		logger.Warn("failed to publish payment created event",
			logger.String("payment_id", p.ID.String()),
			logger.Err(err))
	}

	return session.URL, nil
}

// rentalAmount computes dailyFee * max(1, daysBetween(rental, return)).
// The floor of one day keeps a same-day rental from billing zero.
func rentalAmount(dailyFee decimal.Decimal, r *models.Rental) decimal.Decimal {
	days := models.DaysBetween(r.RentalDate, r.ReturnDate)
	if days < 1 {
		days = 1
	}
	return dailyFee.Mul(decimal.NewFromInt(days))
}

// truncateURL enforces the session URL storage limit
func truncateURL(url string) string {
	if len(url) > models.MaxSessionURLLength {
		return url[:models.MaxSessionURLLength]
	}
	return url
}

// MarkPaymentSuccessful transitions a pending payment to paid. Gateways
// retry success callbacks, so a repeat on an already paid session is a
// no-op; a success signal on an expired session is rejected instead of
// resurrecting a terminal record.
func (uc *paymentUC) MarkPaymentSuccessful(ctx context.Context, sessionID string) error {
	p, err := uc.paymentRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}

	switch p.Status {
	case models.PaymentStatusPaid:
		return nil
	case models.PaymentStatusExpired:
		return apperr.ErrPaymentExpired
	}

	ok, err := uc.paymentRepo.MarkPaid(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to mark payment paid: %w", err)
	}
	if !ok {
		// Lost a race against another transition; re-read to decide.
		p, err = uc.paymentRepo.GetBySessionID(ctx, sessionID)
		if err != nil {
			return err
		}
		if p.Status == models.PaymentStatusPaid {
			return nil
		}
		return apperr.ErrPaymentExpired
	}

	p.Status = models.PaymentStatusPaid
	if err := uc.notifier.NotifyPaymentPaid(ctx, p); err != nil {
		logger.Warn("failed to publish payment paid event",
			logger.String("payment_id", p.ID.String()),
			logger.Err(err))
	}

	return nil
}

// ListPayments returns every payment for a rental
func (uc *paymentUC) ListPayments(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error) {
	return uc.paymentRepo.ListByRental(ctx, rentalID)
}

// ListActivePayments returns every payment not yet paid
func (uc *paymentUC) ListActivePayments(ctx context.Context) ([]models.Payment, error) {
	return uc.paymentRepo.ListUnpaid(ctx)
}
