package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// LifecycleService creates, updates, cancels and queries reservations.
// Every mutation runs in one transaction holding a row lock on the
// reservation, and every state change goes through model.Lifecycle.
type LifecycleService struct {
	db           *sql.DB
	reservations ReservationStore
	rooms        RoomStore
	guests       GuestStore
	clock        Clock
	events       EventPublisher
}

func NewLifecycleService(db *sql.DB, reservations ReservationStore, rooms RoomStore, guests GuestStore, clock Clock, events EventPublisher) *LifecycleService {
	return &LifecycleService{db: db, reservations: reservations, rooms: rooms, guests: guests, clock: clock, events: events}
}

// CreateReservationInput is a booking request.
type CreateReservationInput struct {
	RoomTypeID          uuid.UUID
	CheckInDate         time.Time
	CheckOutDate        time.Time
	NumGuests           int
	HasCreditCard       bool
	CreditCardLast4     *string
	IsResidential       bool
	ResidentialDuration *model.ResidentialDuration
	SpecialRequests     *string
	IsWalkIn            bool
}

// UpdateReservationInput is a patch; nil fields are left unchanged.
type UpdateReservationInput struct {
	CheckOutDate    *time.Time
	NumGuests       *int
	SpecialRequests *string
	HasCreditCard   *bool
	CreditCardLast4 *string
	Status          *model.ReservationStatus
	CheckinStatus   *model.CheckinStatus
}

// BulkBookingInput books several rooms of one type for a travel company.
type BulkBookingInput struct {
	RoomTypeID    uuid.UUID
	CheckInDate   time.Time
	CheckOutDate  time.Time
	Rooms         int
	GuestsPerRoom int
	HasCreditCard bool
}

var last4Pattern = regexp.MustCompile(`^[0-9]{4}$`)

// Create validates and prices a booking for guestID and stores it.  The
// reservation starts confirmed when a card is on file, pending otherwise.
func (s *LifecycleService) Create(ctx context.Context, guestID uuid.UUID, in CreateReservationInput) (*model.Reservation, error) {
	var res *model.Reservation
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		res, err = s.createTx(ctx, tx, guestID, in)
		return err
	})
	if err != nil {
		return nil, internal("create reservation", err)
	}
	publish(ctx, s.events, reservationEvent(queue.EventReservationCreated, res, res.CreatedAt))
	return res, nil
}

func (s *LifecycleService) createTx(ctx context.Context, tx *sql.Tx, guestID uuid.UUID, in CreateReservationInput) (*model.Reservation, error) {
	res, err := s.prepareTx(ctx, tx, guestID, in)
	if err != nil {
		return nil, err
	}
	if err := s.requireAvailabilityTx(ctx, tx, res.RoomTypeID, res.CheckInDate, res.CheckOutDate, 1); err != nil {
		return nil, err
	}
	if err := s.reservations.CreateTx(ctx, tx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// prepareTx runs every check of a booking except availability and returns
// the priced, unsaved reservation.
func (s *LifecycleService) prepareTx(ctx context.Context, tx *sql.Tx, guestID uuid.UUID, in CreateReservationInput) (*model.Reservation, error) {
	checkIn, checkOut := dateOf(in.CheckInDate), dateOf(in.CheckOutDate)
	if err := s.validateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	if in.NumGuests < 1 {
		return nil, fail(CodeInvalidGuestCount, "at least one guest is required")
	}
	if in.CreditCardLast4 != nil && !last4Pattern.MatchString(*in.CreditCardLast4) {
		return nil, fail(CodeInvalidInput, "credit card last4 must be four digits")
	}
	if in.ResidentialDuration != nil {
		if _, err := model.ParseResidentialDuration(string(*in.ResidentialDuration)); err != nil {
			return nil, fail(CodeInvalidInput, "%v", err)
		}
	}

	rt, err := s.rooms.GetRoomTypeTx(ctx, tx, in.RoomTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(CodeRoomTypeNotFound, "room type %s not found", in.RoomTypeID)
		}
		return nil, err
	}
	if in.NumGuests > rt.Capacity {
		return nil, fail(CodeInvalidGuestCount, "room type %s holds at most %d guests", rt.TypeName, rt.Capacity)
	}

	guest, err := s.guests.GetTx(ctx, tx, guestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(CodeGuestNotFound, "guest %s not found", guestID)
		}
		return nil, err
	}
	pct, err := s.guests.LoyaltyDiscountTx(ctx, tx, guest.ID)
	if err != nil {
		return nil, err
	}
	quote := QuoteStay(*rt, checkIn, checkOut, in.IsResidential, in.ResidentialDuration, pct)

	now := s.clock.Now().UTC()
	res := &model.Reservation{
		ID:                  uuid.New(),
		UserID:              guest.ID,
		RoomTypeID:          rt.ID,
		CheckInDate:         checkIn,
		CheckOutDate:        checkOut,
		NumGuests:           in.NumGuests,
		State:               model.NewLifecycle(in.HasCreditCard),
		TotalPrice:          quote.Total,
		DiscountAmount:      quote.Discount,
		FinalPrice:          quote.Final,
		HasCreditCard:       in.HasCreditCard,
		CreditCardLast4:     in.CreditCardLast4,
		IsWalkIn:            in.IsWalkIn,
		IsResidential:       in.IsResidential && rt.IsResidential,
		ResidentialDuration: in.ResidentialDuration,
		SpecialRequests:     in.SpecialRequests,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if !res.IsResidential {
		res.ResidentialDuration = nil
	}
	if guest.Role == model.RoleTravel && guest.TravelCompanyID.Valid {
		res.IsTravelCompany = true
		res.TravelCompanyID = guest.TravelCompanyID
	}
	return res, nil
}

func (s *LifecycleService) validateStay(checkIn, checkOut time.Time) error {
	if checkIn.Before(today(s.clock)) {
		return fail(CodeInvalidCheckinDate, "check-in date %s is in the past", checkIn.Format(time.DateOnly))
	}
	if !checkOut.After(checkIn) {
		return fail(CodeInvalidCheckoutDate, "check-out date must be after check-in date")
	}
	return nil
}

func (s *LifecycleService) requireAvailabilityTx(ctx context.Context, tx *sql.Tx, roomTypeID uuid.UUID, checkIn, checkOut time.Time, want int) error {
	n, err := s.reservations.CountAvailableRoomsTx(ctx, tx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return err
	}
	if n < want {
		return fail(CodeNoRoomsAvailable, "%d room(s) available, %d requested", n, want)
	}
	return nil
}

// CreateBulk books in.Rooms identical reservations for a travel agent in
// one transaction.  Bookings of two or more rooms are confirmed
// immediately; a single room follows the credit-card rule.
func (s *LifecycleService) CreateBulk(ctx context.Context, agentID uuid.UUID, in BulkBookingInput) ([]*model.Reservation, error) {
	if in.Rooms < 1 {
		return nil, fail(CodeInvalidInput, "at least one room is required")
	}
	var out []*model.Reservation
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		out = out[:0]
		req := CreateReservationInput{
			RoomTypeID:    in.RoomTypeID,
			CheckInDate:   in.CheckInDate,
			CheckOutDate:  in.CheckOutDate,
			NumGuests:     in.GuestsPerRoom,
			HasCreditCard: in.HasCreditCard,
		}
		for i := 0; i < in.Rooms; i++ {
			res, err := s.prepareTx(ctx, tx, agentID, req)
			if err != nil {
				return err
			}
			if i == 0 {
				if err := s.requireAvailabilityTx(ctx, tx, res.RoomTypeID, res.CheckInDate, res.CheckOutDate, in.Rooms); err != nil {
					return err
				}
			}
			res.State = model.NewLifecycle(in.HasCreditCard || in.Rooms >= 2)
			if err := s.reservations.CreateTx(ctx, tx, res); err != nil {
				return err
			}
			out = append(out, res)
		}
		return nil
	})
	if err != nil {
		return nil, internal("create bulk reservation", err)
	}
	for _, res := range out {
		publish(ctx, s.events, reservationEvent(queue.EventReservationCreated, res, res.CreatedAt))
	}
	return out, nil
}

// Update applies a patch to a pending or confirmed reservation.  Supplying
// a card to a pending reservation that had none confirms it; moving the
// check-out date reprices the stay.  The presence axis is never patched:
// it only moves through check-in and check-out.
func (s *LifecycleService) Update(ctx context.Context, id uuid.UUID, in UpdateReservationInput) (*model.Reservation, error) {
	var (
		res       *model.Reservation
		confirmed bool
	)
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		res, err = s.lockTx(ctx, tx, id)
		if err != nil {
			return err
		}
		confirmed, err = s.applyUpdateTx(ctx, tx, res, in)
		return err
	})
	if err != nil {
		return nil, internal("update reservation", err)
	}
	if confirmed {
		publish(ctx, s.events, reservationEvent(queue.EventReservationConfirmed, res, res.UpdatedAt))
	}
	return res, nil
}

func (s *LifecycleService) applyUpdateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation, in UpdateReservationInput) (bool, error) {
	if !res.State.Updatable() {
		return false, fail(CodeInvalidStatusUpdate, "reservation is %s", res.State.Status())
	}
	if in.Status != nil && in.CheckinStatus != nil {
		return false, fail(CodeStatusCheckinCombo, "status and checkin_status cannot be changed together")
	}
	if in.CheckinStatus != nil && *in.CheckinStatus != res.State.CheckinStatus() {
		return false, fail(CodeCheckinNotUpdatable, "checkin status changes only through check-in and check-out")
	}

	changed, reprice, regroup := in.CheckinStatus != nil, false, false
	if in.CheckOutDate != nil {
		out := dateOf(*in.CheckOutDate)
		if !out.After(res.CheckInDate) {
			return false, fail(CodeInvalidCheckoutDate, "check-out date must be after check-in date")
		}
		reprice = !out.Equal(res.CheckOutDate)
		res.CheckOutDate = out
		changed = true
	}
	if in.NumGuests != nil {
		if *in.NumGuests < 1 {
			return false, fail(CodeInvalidGuestCount, "at least one guest is required")
		}
		regroup = *in.NumGuests != res.NumGuests
		res.NumGuests = *in.NumGuests
		changed = true
	}
	if in.SpecialRequests != nil {
		res.SpecialRequests = in.SpecialRequests
		changed = true
	}
	if in.CreditCardLast4 != nil {
		if !last4Pattern.MatchString(*in.CreditCardLast4) {
			return false, fail(CodeInvalidInput, "credit card last4 must be four digits")
		}
		res.CreditCardLast4 = in.CreditCardLast4
		changed = true
	}
	confirm := false
	if in.HasCreditCard != nil {
		confirm = *in.HasCreditCard && !res.HasCreditCard && res.State.Status() == model.StatusPending
		res.HasCreditCard = *in.HasCreditCard
		changed = true
	}
	if in.Status != nil {
		want := res.State.Status()
		if confirm {
			want = model.StatusConfirmed
		}
		if *in.Status != want {
			return false, fail(CodeInvalidTransition, "status cannot move from %s to %s", res.State.Status(), *in.Status)
		}
		changed = true
	}
	if !changed {
		return false, fail(CodeNoUpdates, "no updatable fields supplied")
	}

	if reprice || regroup {
		rt, err := s.rooms.GetRoomTypeTx(ctx, tx, res.RoomTypeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return false, fail(CodeRoomTypeNotFound, "room type %s not found", res.RoomTypeID)
			}
			return false, err
		}
		if res.NumGuests > rt.Capacity {
			return false, fail(CodeInvalidGuestCount, "room type %s holds at most %d guests", rt.TypeName, rt.Capacity)
		}
		if reprice {
			pct, err := s.guests.LoyaltyDiscountTx(ctx, tx, res.UserID)
			if err != nil {
				return false, err
			}
			q := QuoteStay(*rt, res.CheckInDate, res.CheckOutDate, res.IsResidential, res.ResidentialDuration, pct)
			res.TotalPrice, res.DiscountAmount, res.FinalPrice = q.Total, q.Discount, q.Final
		}
	}
	if confirm {
		if err := res.State.TransitionStatus(model.StatusConfirmed); err != nil {
			return false, transitionError(err)
		}
	}
	res.UpdatedAt = s.clock.Now().UTC()
	if err := s.reservations.UpdateTx(ctx, tx, res); err != nil {
		return false, err
	}
	return confirm, nil
}

// Cancel moves a reservation to cancelled.  Checked-in stays cannot be
// cancelled; cancelling twice reports ALREADY_CANCELLED.
func (s *LifecycleService) Cancel(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var res *model.Reservation
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		if res, err = s.lockTx(ctx, tx, id); err != nil {
			return err
		}
		if err := res.State.TransitionStatus(model.StatusCancelled); err != nil {
			return transitionError(err)
		}
		res.UpdatedAt = s.clock.Now().UTC()
		return s.reservations.UpdateTx(ctx, tx, res)
	})
	if err != nil {
		return nil, internal("cancel reservation", err)
	}
	publish(ctx, s.events, reservationEvent(queue.EventReservationCancelled, res, res.UpdatedAt))
	return res, nil
}

func (s *LifecycleService) lockTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Reservation, error) {
	return lockReservationTx(ctx, tx, s.reservations, id)
}

func lockReservationTx(ctx context.Context, tx *sql.Tx, store ReservationStore, id uuid.UUID) (*model.Reservation, error) {
	res, err := store.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(CodeReservationNotFound, "reservation %s not found", id)
		}
		return nil, err
	}
	return res, nil
}

// transitionError maps a rejected status move to its code.
func transitionError(err error) error {
	switch {
	case errors.Is(err, model.ErrAlreadyCancelled):
		return fail(CodeAlreadyCancelled, "reservation is already cancelled")
	case errors.Is(err, model.ErrAlreadyCheckedIn):
		return fail(CodeCannotCancelCheckedIn, "reservation is checked in")
	case errors.Is(err, model.ErrStatusFinal), errors.Is(err, model.ErrStatusRegression):
		return fail(CodeInvalidTransition, "%v", err)
	}
	return err
}

// Get returns a reservation with its guest, room and ledger totals.
func (s *LifecycleService) Get(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error) {
	d, err := s.reservations.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(CodeReservationNotFound, "reservation %s not found", id)
		}
		return nil, internal("get reservation", err)
	}
	return d, nil
}

// List returns reservations matching f.  An unknown sort column is an
// INVALID_INPUT failure.
func (s *LifecycleService) List(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetail, error) {
	out, err := s.reservations.ListDetails(ctx, f)
	if err != nil {
		if errors.Is(err, database.ErrIdentifierNotAllowed) {
			return nil, fail(CodeInvalidInput, "cannot sort by %q", f.SortBy)
		}
		return nil, internal("list reservations", err)
	}
	return out, nil
}

func (s *LifecycleService) ListForGuest(ctx context.Context, guestID uuid.UUID) ([]model.ReservationDetail, error) {
	return s.List(ctx, model.ReservationFilter{UserID: &guestID, SortBy: "created_at", Descending: true})
}

func (s *LifecycleService) ListPending(ctx context.Context) ([]model.ReservationDetail, error) {
	st := model.StatusPending
	return s.List(ctx, model.ReservationFilter{Status: &st, SortBy: "check_in_date"})
}

// ListInHouse returns the reservations of guests currently checked in.
func (s *LifecycleService) ListInHouse(ctx context.Context) ([]model.ReservationDetail, error) {
	ci := model.CheckinCheckedIn
	return s.List(ctx, model.ReservationFilter{CheckinStatus: &ci, SortBy: "check_out_date"})
}

// ListRoomTypes returns the bookable room types.
func (s *LifecycleService) ListRoomTypes(ctx context.Context) ([]model.RoomType, error) {
	out, err := s.rooms.ListRoomTypes(ctx)
	if err != nil {
		return nil, internal("list room types", err)
	}
	return out, nil
}

// Availability counts the rooms of a type that can still be booked for a
// stay.
func (s *LifecycleService) Availability(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) (int, error) {
	checkIn, checkOut = dateOf(checkIn), dateOf(checkOut)
	if !checkOut.After(checkIn) {
		return 0, fail(CodeInvalidCheckoutDate, "check-out date must be after check-in date")
	}
	var n int
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := s.rooms.GetRoomTypeTx(ctx, tx, roomTypeID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fail(CodeRoomTypeNotFound, "room type %s not found", roomTypeID)
			}
			return err
		}
		var err error
		n, err = s.reservations.CountAvailableRoomsTx(ctx, tx, roomTypeID, checkIn, checkOut)
		return err
	})
	if err != nil {
		return 0, internal("availability", err)
	}
	return n, nil
}
