package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/logger"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// fineSessionURL marks fine records that have no gateway checkout URL
const fineSessionURL = "fine_payment_no_url"

// ExpirePendingPayments sweeps checkout sessions that stayed pending
// past the configured TTL and moves them to expired. One bad record
// never stops the batch.
func (uc *paymentUC) ExpirePendingPayments(ctx context.Context) error {
	cutoff := uc.clock.Now().UTC().Add(-time.Duration(uc.cfg.Payment.PendingTTLMin) * time.Minute)

	stale, err := uc.paymentRepo.ListStalePending(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale pending payments: %w", err)
	}

	for i := range stale {
		p := &stale[i]
		ok, err := uc.paymentRepo.MarkExpired(ctx, p.ID)
		if err != nil {
			logger.Error("failed to expire payment",
				logger.String("payment_id", p.ID.String()),
				logger.Err(err))
			continue
		}
		if !ok {
			// Paid or expired since the listing; nothing to do.
			continue
		}

		p.Status = models.PaymentStatusExpired
		if err := uc.notifier.NotifyPaymentExpired(ctx, p); err != nil {
			logger.Warn("failed to publish payment expired event",
				logger.String("payment_id", p.ID.String()),
				logger.Err(err))
		}
	}

	return nil
}

// FineOverdueRentals sweeps active rentals past their planned return
// date and records a fine payment for each, at most one fine per rental
// per calendar day. The fine is the vehicle's daily fee times the full
// days overdue.
func (uc *paymentUC) FineOverdueRentals(ctx context.Context) error {
	now := uc.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	overdue, err := uc.rentalRepo.FindOverdueActive(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list overdue rentals: %w", err)
	}

	for i := range overdue {
		r := &overdue[i]
		if err := uc.fineRental(ctx, r, today); err != nil {
			logger.Error("failed to fine overdue rental",
				logger.String("rental_id", r.ID.String()),
				logger.Err(err))
		}
	}

	return nil
}

func (uc *paymentUC) fineRental(ctx context.Context, r *models.Rental, today time.Time) error {
	overdueDays := models.DaysBetween(r.ReturnDate, today)
	if overdueDays <= 0 {
		return nil
	}

	fined, err := uc.paymentRepo.HasFineForDay(ctx, r.ID, today)
	if err != nil {
		return err
	}
	if fined {
		return nil
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, r.VehicleID)
	if err != nil {
		return err
	}

	fineDate := today
	p := &models.Payment{
		ID:       uuid.New(),
		RentalID: r.ID,
		Kind:     models.PaymentKindFine,
		Status:   models.PaymentStatusPending,
		Amount:   vehicle.DailyFee.Mul(decimal.NewFromInt(overdueDays)),
		// Fines have no gateway session; the id is synthetic and unique.
		SessionID:  fmt.Sprintf("FINE_%s_%d", r.ID, uc.clock.Now().UnixNano()),
		SessionURL: fineSessionURL,
		FineDate:   &fineDate,
		CreatedAt:  uc.clock.Now().UTC(),
	}
	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		return err
	}

	if err := uc.notifier.NotifyFineApplied(ctx, p, overdueDays); err != nil {
		logger.Warn("failed to publish fine applied event",
			logger.String("payment_id", p.ID.String()),
			logger.Err(err))
	}

	return nil
}
