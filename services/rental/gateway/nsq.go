package gateway

import (
	"context"
	"time"

	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/gorent/gorent/internal/pkg/nsq"
)

// RentalGW publishes rental lifecycle events to the operator topic
type RentalGW struct {
	producer *nsq.Producer
	topic    string
}

// NewRentalGW creates a new rental notification gateway
func NewRentalGW(producer *nsq.Producer, topic string) *RentalGW {
	return &RentalGW{producer: producer, topic: topic}
}

// NotifyRentalCreated publishes a rental created event
func (g *RentalGW) NotifyRentalCreated(_ context.Context, rental *models.Rental) error {
	return g.publish(models.EventRentalCreated, rental)
}

// NotifyRentalReturned publishes a rental returned event
func (g *RentalGW) NotifyRentalReturned(_ context.Context, rental *models.Rental) error {
	return g.publish(models.EventRentalReturned, rental)
}

func (g *RentalGW) publish(kind string, rental *models.Rental) error {
	event := struct {
		Kind string `json:"kind"`
		models.RentalEvent
	}{
		Kind: kind,
		RentalEvent: models.RentalEvent{
			RentalID:   rental.ID,
			CustomerID: rental.CustomerID,
			VehicleID:  rental.VehicleID,
			RentalDate: rental.RentalDate,
			ReturnDate: rental.ReturnDate,
			Timestamp:  time.Now().UTC(),
		},
	}
	return g.producer.Publish(g.topic, event)
}
