package gateway

import (
	"context"
	"time"

	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/internal/pkg/nsq"
)

// PaymentNotifierGW publishes payment lifecycle events to the operator
// topic
type PaymentNotifierGW struct {
	producer *nsq.Producer
	topic    string
}

// NewPaymentNotifierGW creates a new payment notification gateway
func NewPaymentNotifierGW(producer *nsq.Producer, topic string) *PaymentNotifierGW {
	return &PaymentNotifierGW{producer: producer, topic: topic}
}

// NotifyPaymentCreated publishes a payment created event
func (g *PaymentNotifierGW) NotifyPaymentCreated(_ context.Context, payment *models.Payment) error {
	return g.publish(models.EventPaymentCreated, payment, 0)
}

// NotifyPaymentPaid publishes a payment paid event
func (g *PaymentNotifierGW) NotifyPaymentPaid(_ context.Context, payment *models.Payment) error {
	return g.publish(models.EventPaymentPaid, payment, 0)
}

// NotifyPaymentExpired publishes a payment expired event
func (g *PaymentNotifierGW) NotifyPaymentExpired(_ context.Context, payment *models.Payment) error {
	return g.publish(models.EventPaymentExpired, payment, 0)
}

// NotifyFineApplied publishes a fine applied event carrying the days
// overdue alongside the persisted amount
func (g *PaymentNotifierGW) NotifyFineApplied(_ context.Context, payment *models.Payment, overdueDays int64) error {
	return g.publish(models.EventFineApplied, payment, overdueDays)
}

func (g *PaymentNotifierGW) publish(kind string, payment *models.Payment, overdueDays int64) error {
	event := struct {
		Kind string `json:"kind"`
		models.PaymentEvent
	}{
		Kind: kind,
		PaymentEvent: models.PaymentEvent{
			PaymentID:   payment.ID,
			RentalID:    payment.RentalID,
			Kind:        payment.Kind,
			Status:      payment.Status,
			Amount:      payment.Amount,
			OverdueDays: overdueDays,
			Timestamp:   time.Now().UTC(),
		},
	}
	return g.producer.Publish(g.topic, event)
}
