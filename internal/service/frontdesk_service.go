package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// FrontDeskService runs the compound desk operations.  Each one is a
// single transaction spanning the lifecycle, room and ledger services.
type FrontDeskService struct {
	db        *sql.DB
	lifecycle *LifecycleService
	rooms     *RoomService
	ledger    *LedgerService
	guests    GuestStore
	clock     Clock
	events    EventPublisher
}

func NewFrontDeskService(db *sql.DB, lifecycle *LifecycleService, rooms *RoomService, ledger *LedgerService, guests GuestStore, clock Clock, events EventPublisher) *FrontDeskService {
	return &FrontDeskService{db: db, lifecycle: lifecycle, rooms: rooms, ledger: ledger, guests: guests, clock: clock, events: events}
}

// CheckInResult is the state after a successful check-in.
type CheckInResult struct {
	Reservation *model.Reservation
	Room        *model.Room
	Assignment  *model.RoomAssignment
}

// CheckOutInput is the settlement presented at departure.
type CheckOutInput struct {
	ReservationID  uuid.UUID
	PaymentMethod  model.PaymentMethod
	Amount         decimal.Decimal
	ServiceCharges []ChargeInput
}

// CheckOutResult carries the rows written at check-out and the balance
// that remains.
type CheckOutResult struct {
	Reservation *model.Reservation
	Payment     *model.Payment
	Charges     []*model.ServiceCharge
	Room        *model.Room
	Balance     model.Balance
}

// GuestInput is the minimal identity captured for a walk-in guest.
type GuestInput struct {
	Name    string
	Email   string
	Phone   *string
	Address *string
}

// WalkInResult is the guest and reservation created at the desk.  Room and
// Assignment are nil when the reservation could not be checked in yet.
type WalkInResult struct {
	Guest       *model.User
	Reservation *model.Reservation
	Room        *model.Room
	Assignment  *model.RoomAssignment
}

// CheckoutSummary is what the desk shows before a guest settles.
type CheckoutSummary struct {
	Reservation *model.ReservationDetail
	Charges     []model.ServiceCharge
	Payments    []model.Payment
	Balance     model.Balance
}

// CheckIn assigns roomID to a confirmed reservation and marks the guest in
// house.
func (s *FrontDeskService) CheckIn(ctx context.Context, reservationID, roomID, actorID uuid.UUID) (*CheckInResult, error) {
	var out *CheckInResult
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		res, err := lockReservationTx(ctx, tx, s.lifecycle.reservations, reservationID)
		if err != nil {
			return err
		}
		out, err = s.checkInTx(ctx, tx, res, roomID, actorID)
		return err
	})
	if err != nil {
		return nil, internal("check in", err)
	}
	s.publishCheckIn(ctx, out)
	return out, nil
}

func (s *FrontDeskService) checkInTx(ctx context.Context, tx *sql.Tx, res *model.Reservation, roomID, actorID uuid.UUID) (*CheckInResult, error) {
	next := res.State
	if err := next.TransitionCheckin(model.CheckinCheckedIn); err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyCheckedIn):
			return nil, fail(CodeAlreadyCheckedIn, "reservation is already %s", res.State.CheckinStatus())
		case errors.Is(err, model.ErrNotConfirmed):
			return nil, fail(CodeReservationNotConfirmed, "reservation is %s", res.State.Status())
		}
		return nil, err
	}
	a, rm, err := s.rooms.assignTx(ctx, tx, res, roomID, actorID)
	if err != nil {
		return nil, err
	}
	res.State = next
	res.UpdatedAt = s.clock.Now().UTC()
	if err := s.lifecycle.reservations.UpdateTx(ctx, tx, res); err != nil {
		return nil, err
	}
	return &CheckInResult{Reservation: res, Room: rm, Assignment: a}, nil
}

func (s *FrontDeskService) publishCheckIn(ctx context.Context, r *CheckInResult) {
	ev := reservationEvent(queue.EventReservationCheckedIn, r.Reservation, r.Reservation.UpdatedAt)
	ev.RoomNumber = r.Room.RoomNumber
	publish(ctx, s.events, ev)
}

// CheckOut raises the departure charges, records the settlement payment,
// frees the room and marks the guest departed.  The payment may be zero or
// partial; whatever is left shows in the returned balance.
func (s *FrontDeskService) CheckOut(ctx context.Context, in CheckOutInput, actorID uuid.UUID) (*CheckOutResult, error) {
	out := &CheckOutResult{}
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		res, err := lockReservationTx(ctx, tx, s.lifecycle.reservations, in.ReservationID)
		if err != nil {
			return err
		}
		next := res.State
		if err := next.TransitionCheckin(model.CheckinCheckedOut); err != nil {
			return fail(CodeInvalidStatusCheckout, "reservation is %s", res.State.CheckinStatus())
		}

		out.Charges = out.Charges[:0]
		for _, ci := range in.ServiceCharges {
			c, err := s.ledger.addServiceChargeTx(ctx, tx, res, ci, actorID)
			if err != nil {
				return err
			}
			out.Charges = append(out.Charges, c)
		}

		now := s.clock.Now().UTC()
		txID := fmt.Sprintf("CHECKOUT_%d", now.UnixMilli())
		notes := "Checkout payment"
		if out.Payment, _, err = s.ledger.processPaymentTx(ctx, tx, res, PaymentInput{
			ReservationID: res.ID,
			Amount:        in.Amount,
			Method:        in.PaymentMethod,
			TransactionID: &txID,
			Notes:         &notes,
		}, actorID); err != nil {
			return err
		}

		if out.Room, err = s.rooms.releaseTx(ctx, tx, res.ID); err != nil {
			return err
		}
		if err := res.State.TransitionCheckin(model.CheckinCheckedOut); err != nil {
			return err
		}
		res.UpdatedAt = now
		if err := s.lifecycle.reservations.UpdateTx(ctx, tx, res); err != nil {
			return err
		}
		out.Reservation = res
		out.Balance, err = s.ledger.balanceTx(ctx, tx, res)
		return err
	})
	if err != nil {
		return nil, internal("check out", err)
	}
	publish(ctx, s.events, paymentEvent(queue.EventPaymentCompleted, out.Payment))
	ev := reservationEvent(queue.EventReservationCheckedOut, out.Reservation, out.Reservation.UpdatedAt)
	if out.Room != nil {
		ev.RoomNumber = out.Room.RoomNumber
	}
	ev.Amount = amountPtr(out.Balance.Outstanding)
	publish(ctx, s.events, ev)
	return out, nil
}

// CreateWalkIn registers a password-less guest, books the stay and, when a
// free room of the booked type exists and the booking is confirmed, checks
// the guest straight in.  Otherwise the reservation is returned without a
// room for manual assignment.
func (s *FrontDeskService) CreateWalkIn(ctx context.Context, guest GuestInput, in CreateReservationInput, actorID uuid.UUID) (*WalkInResult, error) {
	if strings.TrimSpace(guest.Name) == "" || strings.TrimSpace(guest.Email) == "" {
		return nil, fail(CodeInvalidInput, "guest name and email are required")
	}
	out := &WalkInResult{}
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		now := s.clock.Now().UTC()
		u := &model.User{
			ID:        uuid.New(),
			Name:      strings.TrimSpace(guest.Name),
			Email:     guest.Email,
			Role:      model.RoleCustomer,
			Phone:     guest.Phone,
			Address:   guest.Address,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.guests.CreateGuestTx(ctx, tx, u); err != nil {
			if errors.Is(err, repository.ErrEmailExists) {
				return fail(CodeEmailExists, "a guest with email %s already exists", guest.Email)
			}
			return err
		}
		out.Guest = u

		in.IsWalkIn = true
		res, err := s.lifecycle.createTx(ctx, tx, u.ID, in)
		if err != nil {
			return err
		}
		out.Reservation = res
		if res.State.Status() != model.StatusConfirmed {
			return nil
		}

		rm, err := s.rooms.rooms.FirstAvailableTx(ctx, tx, res.RoomTypeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}
		ci, err := s.checkInTx(ctx, tx, res, rm.ID, actorID)
		if err != nil {
			var se *Error
			if errors.As(err, &se) {
				return nil
			}
			return err
		}
		out.Room, out.Assignment = ci.Room, ci.Assignment
		return nil
	})
	if err != nil {
		return nil, internal("create walk-in", err)
	}
	publish(ctx, s.events, reservationEvent(queue.EventReservationCreated, out.Reservation, out.Reservation.CreatedAt))
	if out.Room != nil {
		s.publishCheckIn(ctx, &CheckInResult{Reservation: out.Reservation, Room: out.Room, Assignment: out.Assignment})
	}
	return out, nil
}

// CheckoutSummary gathers the stay, its charges and payments and the
// outstanding balance for a checked-in guest.
func (s *FrontDeskService) CheckoutSummary(ctx context.Context, reservationID uuid.UUID) (*CheckoutSummary, error) {
	d, err := s.lifecycle.Get(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if d.State.CheckinStatus() != model.CheckinCheckedIn {
		return nil, fail(CodeInvalidStatusCheckout, "reservation is %s", d.State.CheckinStatus())
	}
	charges, err := s.ledger.ServiceCharges(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	payments, err := s.ledger.Payments(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	return &CheckoutSummary{
		Reservation: d,
		Charges:     charges,
		Payments:    payments,
		Balance:     model.NewBalance(d.FinalPrice, d.TotalPaid, d.ServiceCharges),
	}, nil
}

// InHouse lists the guests currently checked in.
func (s *FrontDeskService) InHouse(ctx context.Context) ([]model.ReservationDetail, error) {
	return s.lifecycle.ListInHouse(ctx)
}
