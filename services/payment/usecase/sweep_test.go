package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpirePendingPaymentsOnlyStale(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	stale := &models.Payment{
		ID:        uuid.New(),
		Status:    models.PaymentStatusPending,
		SessionID: "cs_stale",
		CreatedAt: now.Add(-time.Hour),
	}
	fresh := &models.Payment{
		ID:        uuid.New(),
		Status:    models.PaymentStatusPending,
		SessionID: "cs_fresh",
		CreatedAt: now.Add(-10 * time.Minute),
	}
	fx.paymentRepo.payments = []*models.Payment{stale, fresh}
	uc := fx.usecase()

	err := uc.ExpirePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusExpired, stale.Status)
	assert.Equal(t, models.PaymentStatusPending, fresh.Status)
	require.Len(t, fx.notifier.expired, 1)
	assert.Equal(t, stale.ID, fx.notifier.expired[0].ID)
}

func TestExpirePendingPaymentsCutoffUsesTTL(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	fx.cfg.Payment.PendingTTLMin = 45
	var gotCutoff time.Time
	fx.paymentRepo.stalePending = func(_ context.Context, cutoff time.Time) ([]models.Payment, error) {
		gotCutoff = cutoff
		return nil, nil
	}
	uc := fx.usecase()

	err := uc.ExpirePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, now.Add(-45*time.Minute), gotCutoff)
}

func TestExpirePendingPaymentsIdempotent(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	stale := &models.Payment{
		ID:        uuid.New(),
		Status:    models.PaymentStatusPending,
		SessionID: "cs_stale",
		CreatedAt: now.Add(-time.Hour),
	}
	fx.paymentRepo.payments = []*models.Payment{stale}
	uc := fx.usecase()

	require.NoError(t, uc.ExpirePendingPayments(context.Background()))
	require.NoError(t, uc.ExpirePendingPayments(context.Background()))

	assert.Equal(t, models.PaymentStatusExpired, stale.Status)
	assert.Len(t, fx.notifier.expired, 1)
}

func TestExpirePendingPaymentsSkipsRecordsLostToRace(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	stale := models.Payment{
		ID:        uuid.New(),
		Status:    models.PaymentStatusPending,
		CreatedAt: now.Add(-time.Hour),
	}
	fx.paymentRepo.stalePending = func(context.Context, time.Time) ([]models.Payment, error) {
		return []models.Payment{stale}, nil
	}
	fx.paymentRepo.markExpired = func(context.Context, uuid.UUID) (bool, error) {
		// Paid between listing and update.
		return false, nil
	}
	uc := fx.usecase()

	err := uc.ExpirePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Empty(t, fx.notifier.expired)
}

func TestExpirePendingPaymentsContinuesPastFailures(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	bad := models.Payment{ID: uuid.New(), Status: models.PaymentStatusPending, CreatedAt: now.Add(-time.Hour)}
	good := models.Payment{ID: uuid.New(), Status: models.PaymentStatusPending, CreatedAt: now.Add(-time.Hour)}
	fx.paymentRepo.stalePending = func(context.Context, time.Time) ([]models.Payment, error) {
		return []models.Payment{bad, good}, nil
	}
	fx.paymentRepo.markExpired = func(_ context.Context, id uuid.UUID) (bool, error) {
		if id == bad.ID {
			return false, errors.New("deadlock detected")
		}
		return true, nil
	}
	uc := fx.usecase()

	err := uc.ExpirePendingPayments(context.Background())

	require.NoError(t, err)
	require.Len(t, fx.notifier.expired, 1)
	assert.Equal(t, good.ID, fx.notifier.expired[0].ID)
}

func TestFineOverdueRentalsCreatesFine(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	rental := fx.addRental(date(2026, time.March, 1), date(2026, time.March, 7), 50)
	fx.rentalRepo.overdue = []models.Rental{*rental}
	uc := fx.usecase()

	err := uc.FineOverdueRentals(context.Background())

	require.NoError(t, err)
	require.Len(t, fx.paymentRepo.payments, 1)

	fine := fx.paymentRepo.payments[0]
	assert.Equal(t, models.PaymentKindFine, fine.Kind)
	assert.Equal(t, models.PaymentStatusPending, fine.Status)
	assert.True(t, fine.Amount.Equal(decimal.NewFromInt(150)), "3 days overdue at 50/day, got %s", fine.Amount)
	assert.True(t, strings.HasPrefix(fine.SessionID, "FINE_"+rental.ID.String()))
	assert.Equal(t, "fine_payment_no_url", fine.SessionURL)
	require.NotNil(t, fine.FineDate)
	assert.Equal(t, date(2026, time.March, 10), *fine.FineDate)

	require.Len(t, fx.notifier.fined, 1)
	assert.Equal(t, []int64{3}, fx.notifier.days)
}

func TestFineOverdueRentalsOncePerDay(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	rental := fx.addRental(date(2026, time.March, 1), date(2026, time.March, 7), 50)
	fx.rentalRepo.overdue = []models.Rental{*rental}
	uc := fx.usecase()

	require.NoError(t, uc.FineOverdueRentals(context.Background()))
	require.NoError(t, uc.FineOverdueRentals(context.Background()))

	assert.Len(t, fx.paymentRepo.payments, 1)
	assert.Len(t, fx.notifier.fined, 1)
}

func TestFineOverdueRentalsNewFineNextDay(t *testing.T) {
	fx := newPaymentFixture(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC))
	rental := fx.addRental(date(2026, time.March, 1), date(2026, time.March, 7), 50)
	fx.rentalRepo.overdue = []models.Rental{*rental}
	uc := fx.usecase()

	require.NoError(t, uc.FineOverdueRentals(context.Background()))

	fx.clock.now = time.Date(2026, time.March, 11, 8, 0, 0, 0, time.UTC)
	uc = fx.usecase()
	require.NoError(t, uc.FineOverdueRentals(context.Background()))

	require.Len(t, fx.paymentRepo.payments, 2)
	assert.True(t, fx.paymentRepo.payments[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, fx.paymentRepo.payments[1].Amount.Equal(decimal.NewFromInt(200)), "4 days overdue at 50/day")
}

func TestFineOverdueRentalsSkipsNotYetOverdue(t *testing.T) {
	now := time.Date(2026, time.March, 7, 8, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	rental := fx.addRental(date(2026, time.March, 1), date(2026, time.March, 7), 50)
	fx.rentalRepo.overdue = []models.Rental{*rental}
	uc := fx.usecase()

	err := uc.FineOverdueRentals(context.Background())

	require.NoError(t, err)
	assert.Empty(t, fx.paymentRepo.payments)
}

func TestFineOverdueRentalsContinuesPastFailures(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	fx := newPaymentFixture(now)
	broken := fx.addRental(date(2026, time.March, 1), date(2026, time.March, 7), 50)
	delete(fx.vehicleRepo.vehicles, broken.VehicleID)
	healthy := fx.addRental(date(2026, time.March, 1), date(2026, time.March, 8), 60)
	fx.rentalRepo.overdue = []models.Rental{*broken, *healthy}
	uc := fx.usecase()

	err := uc.FineOverdueRentals(context.Background())

	require.NoError(t, err)
	require.Len(t, fx.paymentRepo.payments, 1)
	assert.Equal(t, healthy.ID, fx.paymentRepo.payments[0].RentalID)
	assert.True(t, fx.paymentRepo.payments[0].Amount.Equal(decimal.NewFromInt(120)), "2 days overdue at 60/day")
}
