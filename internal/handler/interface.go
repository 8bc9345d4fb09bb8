package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// The handlers depend on these narrow views of the services and
// repositories so they can be exercised without a database.

type Reservations interface {
	Create(ctx context.Context, guestID uuid.UUID, in service.CreateReservationInput) (*model.Reservation, error)
	CreateBulk(ctx context.Context, agentID uuid.UUID, in service.BulkBookingInput) ([]*model.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, in service.UpdateReservationInput) (*model.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error)
	List(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetail, error)
	ListForGuest(ctx context.Context, guestID uuid.UUID) ([]model.ReservationDetail, error)
	ListPending(ctx context.Context) ([]model.ReservationDetail, error)
	ListRoomTypes(ctx context.Context) ([]model.RoomType, error)
	Availability(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) (int, error)
}

type FrontDesk interface {
	CheckIn(ctx context.Context, reservationID, roomID, actorID uuid.UUID) (*service.CheckInResult, error)
	CheckOut(ctx context.Context, in service.CheckOutInput, actorID uuid.UUID) (*service.CheckOutResult, error)
	CreateWalkIn(ctx context.Context, guest service.GuestInput, in service.CreateReservationInput, actorID uuid.UUID) (*service.WalkInResult, error)
	CheckoutSummary(ctx context.Context, reservationID uuid.UUID) (*service.CheckoutSummary, error)
	InHouse(ctx context.Context) ([]model.ReservationDetail, error)
}

type Ledger interface {
	ProcessPayment(ctx context.Context, in service.PaymentInput, actorID uuid.UUID) (*model.Payment, error)
	Refund(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal, reason string, actorID uuid.UUID) (*model.Payment, error)
	AddServiceCharge(ctx context.Context, reservationID uuid.UUID, in service.ChargeInput, actorID uuid.UUID) (*model.ServiceCharge, error)
	Balance(ctx context.Context, reservationID uuid.UUID) (model.Balance, error)
	Payments(ctx context.Context, reservationID uuid.UUID) ([]model.Payment, error)
	ServiceCharges(ctx context.Context, reservationID uuid.UUID) ([]model.ServiceCharge, error)
}

type Rooms interface {
	MarkCleaned(ctx context.Context, id uuid.UUID) (*model.Room, error)
	SetMaintenance(ctx context.Context, id uuid.UUID, on bool) (*model.Room, error)
	ListRooms(ctx context.Context, f model.RoomFilter) ([]model.RoomWithType, error)
	ListAvailable(ctx context.Context, roomTypeID *uuid.UUID) ([]model.RoomWithType, error)
	CreateRoom(ctx context.Context, in service.RoomInput) (*model.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, in service.RoomInput) (*model.Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type Nightly interface {
	RunNightly(ctx context.Context) service.NightlyResult
	Reports(ctx context.Context, limit int) ([]model.DailyReport, error)
	NoShowCharges(ctx context.Context) ([]model.BillingRecordDetail, error)
}

type Users interface {
	Create(ctx context.Context, name, email, password string, role model.Role, cost int) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type Tokens interface {
	StoreRefresh(ctx context.Context, userID uuid.UUID, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}
