package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorent/gorent/internal/pkg/apperr"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentUC struct {
	createFn func(ctx context.Context, req models.CreatePaymentRequest) (string, error)
	markFn   func(ctx context.Context, sessionID string) error
	listFn   func(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error)
	activeFn func(ctx context.Context) ([]models.Payment, error)
}

func (f *fakePaymentUC) CreatePayment(ctx context.Context, req models.CreatePaymentRequest) (string, error) {
	return f.createFn(ctx, req)
}

func (f *fakePaymentUC) MarkPaymentSuccessful(ctx context.Context, sessionID string) error {
	return f.markFn(ctx, sessionID)
}

func (f *fakePaymentUC) ListPayments(ctx context.Context, rentalID uuid.UUID) ([]models.Payment, error) {
	return f.listFn(ctx, rentalID)
}

func (f *fakePaymentUC) ListActivePayments(ctx context.Context) ([]models.Payment, error) {
	return f.activeFn(ctx)
}

func (f *fakePaymentUC) ExpirePendingPayments(context.Context) error { return nil }

func (f *fakePaymentUC) FineOverdueRentals(context.Context) error { return nil }

func TestCreatePaymentHandler(t *testing.T) {
	rentalID := uuid.New()
	uc := &fakePaymentUC{
		createFn: func(_ context.Context, req models.CreatePaymentRequest) (string, error) {
			assert.Equal(t, rentalID, req.RentalID)
			assert.Empty(t, req.Kind, "kind is not settable over HTTP")
			return "https://pay.example.com/cs_abc", nil
		},
	}
	h := NewPaymentHandler(uc)

	e := echo.New()
	body := `{"rental_id":"` + rentalID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreatePayment(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "https://pay.example.com/cs_abc", resp.Data["session_url"])
}

func TestCreatePaymentHandlerIgnoresKindField(t *testing.T) {
	uc := &fakePaymentUC{
		createFn: func(_ context.Context, req models.CreatePaymentRequest) (string, error) {
			assert.Empty(t, req.Kind, "a client-supplied kind must not reach the usecase")
			return "https://pay.example.com/cs_abc", nil
		},
	}
	h := NewPaymentHandler(uc)

	e := echo.New()
	body := `{"rental_id":"` + uuid.NewString() + `","kind":"FINE"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreatePayment(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePaymentHandlerInvalidRentalID(t *testing.T) {
	h := NewPaymentHandler(&fakePaymentUC{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{"rental_id":"not-a-uuid"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreatePayment(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePaymentHandlerRentalNotFound(t *testing.T) {
	uc := &fakePaymentUC{
		createFn: func(context.Context, models.CreatePaymentRequest) (string, error) {
			return "", apperr.ErrRentalNotFound
		},
	}
	h := NewPaymentHandler(uc)

	e := echo.New()
	body := `{"rental_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreatePayment(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePaymentHandlerGatewayFailure(t *testing.T) {
	uc := &fakePaymentUC{
		createFn: func(context.Context, models.CreatePaymentRequest) (string, error) {
			return "", apperr.Gateway(assert.AnError)
		},
	}
	h := NewPaymentHandler(uc)

	e := echo.New()
	body := `{"rental_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreatePayment(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPaymentSuccessHandler(t *testing.T) {
	var gotSession string
	uc := &fakePaymentUC{
		markFn: func(_ context.Context, sessionID string) error {
			gotSession = sessionID
			return nil
		},
	}
	h := NewPaymentHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/payments/success?session_id=cs_abc", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.PaymentSuccess(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cs_abc", gotSession)
}

func TestPaymentSuccessHandlerMissingSessionID(t *testing.T) {
	h := NewPaymentHandler(&fakePaymentUC{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/payments/success", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.PaymentSuccess(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentSuccessHandlerExpiredSession(t *testing.T) {
	uc := &fakePaymentUC{
		markFn: func(context.Context, string) error { return apperr.ErrPaymentExpired },
	}
	h := NewPaymentHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/payments/success?session_id=cs_old", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.PaymentSuccess(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListPaymentsHandler(t *testing.T) {
	rentalID := uuid.New()
	uc := &fakePaymentUC{
		listFn: func(_ context.Context, id uuid.UUID) ([]models.Payment, error) {
			assert.Equal(t, rentalID, id)
			return []models.Payment{{ID: uuid.New(), RentalID: id}}, nil
		},
	}
	h := NewPaymentHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/payments?rental_id="+rentalID.String(), nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListPayments(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
