// Package queue defines message payloads exchanged over the message broker
// together with the publisher and the background consumer.
package queue

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationsQueue is the durable queue every reservation event is routed to.
const ReservationsQueue = "hotel.reservations"

// EventType names a domain event.
type EventType string

const (
	EventReservationCreated    EventType = "reservation.created"
	EventReservationConfirmed  EventType = "reservation.confirmed"
	EventReservationCancelled  EventType = "reservation.cancelled"
	EventReservationCheckedIn  EventType = "reservation.checked_in"
	EventReservationCheckedOut EventType = "reservation.checked_out"
	EventReservationNoShow     EventType = "reservation.no_show"
	EventPaymentCompleted      EventType = "payment.completed"
	EventPaymentRefunded       EventType = "payment.refunded"
	EventNightlyCompleted      EventType = "nightly.completed"
)

// ReservationEvent is published after a state change has been committed.
// It carries enough information for downstream consumers to log, notify or
// feed analytics without querying the primary database.
type ReservationEvent struct {
	Type          EventType        `json:"type"`
	ReservationID uuid.UUID        `json:"reservation_id,omitempty"`
	UserID        uuid.UUID        `json:"user_id,omitempty"`
	Status        string           `json:"status,omitempty"`
	CheckinStatus string           `json:"checkin_status,omitempty"`
	RoomNumber    string           `json:"room_number,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Message       string           `json:"message,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}
