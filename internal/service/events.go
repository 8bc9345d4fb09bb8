package service

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

// publish sends ev and only logs a failure; the state change it describes
// has already been committed.
func publish(ctx context.Context, p EventPublisher, ev queue.ReservationEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, ev); err != nil {
		log.Printf("events: publish %s failed: %v", ev.Type, err)
	}
}

func reservationEvent(t queue.EventType, res *model.Reservation, at time.Time) queue.ReservationEvent {
	return queue.ReservationEvent{
		Type:          t,
		ReservationID: res.ID,
		UserID:        res.UserID,
		Status:        string(res.State.Status()),
		CheckinStatus: string(res.State.CheckinStatus()),
		OccurredAt:    at.UTC(),
	}
}

func paymentEvent(t queue.EventType, p *model.Payment) queue.ReservationEvent {
	amount := p.Amount
	return queue.ReservationEvent{
		Type:          t,
		ReservationID: p.ReservationID,
		Status:        string(p.Status),
		Amount:        &amount,
		OccurredAt:    p.PaymentDate.UTC(),
	}
}

func amountPtr(d decimal.Decimal) *decimal.Decimal { return &d }
