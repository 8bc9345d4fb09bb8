package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationStatus is the approval axis of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no-show"
)

// ParseReservationStatus converts a stored or requested value into a
// ReservationStatus, rejecting anything outside the enumeration.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch st := ReservationStatus(s); st {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusNoShow:
		return st, nil
	}
	return "", fmt.Errorf("%w: reservation status %q", ErrUnknownValue, s)
}

// CheckinStatus is the physical presence axis of a reservation.
type CheckinStatus string

const (
	CheckinNotCheckedIn CheckinStatus = "not_checked_in"
	CheckinCheckedIn    CheckinStatus = "checked_in"
	CheckinCheckedOut   CheckinStatus = "checked_out"
)

// ParseCheckinStatus converts a stored or requested value into a CheckinStatus.
func ParseCheckinStatus(s string) (CheckinStatus, error) {
	switch st := CheckinStatus(s); st {
	case CheckinNotCheckedIn, CheckinCheckedIn, CheckinCheckedOut:
		return st, nil
	}
	return "", fmt.Errorf("%w: checkin status %q", ErrUnknownValue, s)
}

// ResidentialDuration selects the flat-rate pricing mode for extended stays.
type ResidentialDuration string

const (
	DurationWeekly  ResidentialDuration = "weekly"
	DurationMonthly ResidentialDuration = "monthly"
)

// ParseResidentialDuration converts a string into a ResidentialDuration.
func ParseResidentialDuration(s string) (ResidentialDuration, error) {
	switch d := ResidentialDuration(s); d {
	case DurationWeekly, DurationMonthly:
		return d, nil
	}
	return "", fmt.Errorf("%w: residential duration %q", ErrUnknownValue, s)
}

// Lifecycle holds the two independent state axes of a reservation.  The
// fields are unexported so the only way to move either axis is through
// TransitionStatus and TransitionCheckin.  The zero value is not a valid
// state; construct one with NewLifecycle or RestoreLifecycle.
type Lifecycle struct {
	status  ReservationStatus
	checkin CheckinStatus
}

// NewLifecycle returns the initial state of a freshly created reservation:
// confirmed when a credit card was supplied, pending otherwise, and never
// checked in.
func NewLifecycle(hasCreditCard bool) Lifecycle {
	l := Lifecycle{status: StatusPending, checkin: CheckinNotCheckedIn}
	if hasCreditCard {
		l.status = StatusConfirmed
	}
	return l
}

// RestoreLifecycle rebuilds a Lifecycle from persisted column values.
func RestoreLifecycle(status, checkin string) (Lifecycle, error) {
	st, err := ParseReservationStatus(status)
	if err != nil {
		return Lifecycle{}, err
	}
	ci, err := ParseCheckinStatus(checkin)
	if err != nil {
		return Lifecycle{}, err
	}
	return Lifecycle{status: st, checkin: ci}, nil
}

func (l Lifecycle) Status() ReservationStatus { return l.status }
func (l Lifecycle) CheckinStatus() CheckinStatus { return l.checkin }

// Updatable reports whether general reservation updates and payments are
// still accepted.
func (l Lifecycle) Updatable() bool {
	return l.status == StatusPending || l.status == StatusConfirmed
}

// TransitionStatus moves the approval axis.  Re-applying the current
// pending or confirmed status is a no-op, so confirmed is monotonic: once
// reached it only leaves through cancellation or no-show.  Status is frozen
// once the guest has checked in.
func (l *Lifecycle) TransitionStatus(next ReservationStatus) error {
	if _, err := ParseReservationStatus(string(next)); err != nil {
		return err
	}
	switch l.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusNoShow:
		return ErrStatusFinal
	}
	if next == l.status {
		return nil
	}
	if l.checkin != CheckinNotCheckedIn {
		return ErrAlreadyCheckedIn
	}
	if next == StatusPending {
		return ErrStatusRegression
	}
	l.status = next
	return nil
}

// TransitionCheckin moves the presence axis along
// not_checked_in -> checked_in -> checked_out.  Checking in requires a
// confirmed reservation.
func (l *Lifecycle) TransitionCheckin(next CheckinStatus) error {
	if _, err := ParseCheckinStatus(string(next)); err != nil {
		return err
	}
	switch {
	case next == CheckinCheckedIn && l.checkin == CheckinNotCheckedIn:
		if l.status != StatusConfirmed {
			return ErrNotConfirmed
		}
	case next == CheckinCheckedIn:
		return ErrAlreadyCheckedIn
	case next == CheckinCheckedOut && l.checkin == CheckinCheckedIn:
	case next == CheckinCheckedOut:
		return ErrNotCheckedIn
	default:
		return ErrCheckinRegression
	}
	l.checkin = next
	return nil
}

// Reservation mirrors the `reservations` table.  Dates are stored as DATE
// columns and carried as UTC midnights.
type Reservation struct {
	ID                  uuid.UUID            // reservations.id
	UserID              uuid.UUID            // reservations.user_id
	RoomTypeID          uuid.UUID            // reservations.room_type_id
	CheckInDate         time.Time            // reservations.check_in_date
	CheckOutDate        time.Time            // reservations.check_out_date
	NumGuests           int                  // reservations.num_guests
	State               Lifecycle            // reservations.status + reservations.checkin_status
	TotalPrice          decimal.Decimal      // reservations.total_price
	DiscountAmount      decimal.Decimal      // reservations.discount_amount
	FinalPrice          decimal.Decimal      // reservations.final_price
	HasCreditCard       bool                 // reservations.has_credit_card
	CreditCardLast4     *string              // reservations.credit_card_last4 (nullable)
	IsWalkIn            bool                 // reservations.is_walk_in
	IsTravelCompany     bool                 // reservations.is_travel_company
	TravelCompanyID     uuid.NullUUID        // reservations.travel_company_id (nullable)
	IsResidential       bool                 // reservations.is_residential
	ResidentialDuration *ResidentialDuration // reservations.residential_duration (nullable)
	SpecialRequests     *string              // reservations.special_requests (nullable)
	CreatedAt           time.Time            // reservations.created_at
	UpdatedAt           time.Time            // reservations.updated_at
}

// Nights returns the length of the stay rounded up to whole nights.
func (r *Reservation) Nights() int {
	return StayNights(r.CheckInDate, r.CheckOutDate)
}

// StayNights counts the nights between two dates, rounding partial days up.
func StayNights(checkIn, checkOut time.Time) int {
	h := checkOut.Sub(checkIn).Hours()
	if h <= 0 {
		return 0
	}
	return int(math.Ceil(h / 24))
}

// ReservationDetail is a reservation joined with the guest, its room type,
// any assigned room and its ledger totals.
type ReservationDetail struct {
	Reservation
	GuestName      string
	GuestEmail     string
	RoomTypeName   string
	RoomID         uuid.NullUUID
	RoomNumber     *string
	TotalPaid      decimal.Decimal
	ServiceCharges decimal.Decimal
}

// OutstandingBalance is final_price minus completed payments plus service
// charges.  It is never clamped, so a negative value is a guest credit.
func (d *ReservationDetail) OutstandingBalance() decimal.Decimal {
	return OutstandingBalance(d.FinalPrice, d.TotalPaid, d.ServiceCharges)
}

// ReservationFilter selects reservations for list queries.  Nil fields do
// not constrain the result.
type ReservationFilter struct {
	UserID        *uuid.UUID
	RoomTypeID    *uuid.UUID
	Status        *ReservationStatus
	CheckinStatus *CheckinStatus
	From          *time.Time // check_in_date >= From
	To            *time.Time // check_out_date <= To
	SortBy        string     // allow-listed column name; empty means created_at
	Descending    bool
	Limit         int
}
