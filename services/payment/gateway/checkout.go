package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorent/gorent/internal/pkg/apperr"
	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// CheckoutGW talks to the external payment provider over HTTP
type CheckoutGW struct {
	cfg      models.GatewayConfig
	currency string
	client   *http.Client
}

// NewCheckoutGW creates a new checkout gateway client
func NewCheckoutGW(cfg models.GatewayConfig, currency string) *CheckoutGW {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CheckoutGW{
		cfg:      cfg,
		currency: currency,
		client:   &http.Client{Timeout: timeout},
	}
}

type createSessionRequest struct {
	Amount     string `json:"amount"`
	Currency   string `json:"currency,omitempty"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type createSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession opens a checkout session with the provider.
// Any transport or provider failure comes back wrapped as
// apperr.ErrGateway so callers can treat the class uniformly.
func (g *CheckoutGW) CreateCheckoutSession(ctx context.Context, amount decimal.Decimal) (*models.CheckoutSession, error) {
	body, err := json.Marshal(createSessionRequest{
		Amount:     amount.String(),
		Currency:   g.currency,
		SuccessURL: g.cfg.SuccessURL,
		CancelURL:  g.cfg.CancelURL,
	})
	if err != nil {
		return nil, apperr.Gateway(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Gateway(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apperr.Gateway(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a bounded slice of the body for the error message.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperr.Gateway(fmt.Errorf("checkout session request returned %d: %s", resp.StatusCode, msg))
	}

	var session createSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, apperr.Gateway(fmt.Errorf("failed to decode session response: %w", err))
	}
	if session.ID == "" {
		return nil, apperr.Gateway(fmt.Errorf("provider returned empty session id"))
	}

	return &models.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
