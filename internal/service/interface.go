package service

//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

// ReservationStore is the persistence surface the lifecycle, ledger and
// reconciliation services need for reservations.
type ReservationStore interface {
	CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error
	GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Reservation, error)
	UpdateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error
	CountAvailableRoomsTx(ctx context.Context, tx *sql.Tx, roomTypeID uuid.UUID, checkIn, checkOut time.Time) (int, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error)
	ListDetails(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetail, error)
	ListAutoCancelCandidates(ctx context.Context, day, createdBefore time.Time) ([]uuid.UUID, error)
	ListNoShowCandidates(ctx context.Context, lastCheckInDate time.Time) ([]uuid.UUID, error)
}

type RoomStore interface {
	GetRoomTypeTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]model.RoomType, error)
	GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Room, error)
	FirstAvailableTx(ctx context.Context, tx *sql.Tx, roomTypeID uuid.UUID) (*model.Room, error)
	UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, status model.RoomStatus) error
	List(ctx context.Context, f model.RoomFilter) ([]model.RoomWithType, error)
	CreateTx(ctx context.Context, tx *sql.Tx, rm *model.Room) error
	UpdateTx(ctx context.Context, tx *sql.Tx, rm *model.Room) error
	DeleteTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) error
}

type AssignmentStore interface {
	GetByRoomTx(ctx context.Context, tx *sql.Tx, roomID uuid.UUID) (*model.RoomAssignment, error)
	GetByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (*model.RoomAssignment, error)
	CreateTx(ctx context.Context, tx *sql.Tx, a *model.RoomAssignment) error
	DeleteByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (int64, error)
}

type PaymentStore interface {
	CreateTx(ctx context.Context, tx *sql.Tx, p *model.Payment) error
	GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Payment, error)
	UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, status model.PaymentStatus) error
	SumCompletedTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (decimal.Decimal, error)
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]model.Payment, error)
}

type ChargeStore interface {
	CreateTx(ctx context.Context, tx *sql.Tx, c *model.ServiceCharge) error
	SumTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (decimal.Decimal, error)
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]model.ServiceCharge, error)
}

type BillingStore interface {
	CreateTx(ctx context.Context, tx *sql.Tx, b *model.BillingRecord) error
	ListByType(ctx context.Context, t model.BillingType) ([]model.BillingRecordDetail, error)
}

type ReportStore interface {
	CountRooms(ctx context.Context) (int, error)
	CountOccupied(ctx context.Context, day time.Time) (int, error)
	SumRevenue(ctx context.Context, day time.Time) (decimal.Decimal, error)
	Stats(ctx context.Context, day time.Time) (model.ReservationStats, error)
	Create(ctx context.Context, d *model.DailyReport) error
	ListRecent(ctx context.Context, limit int) ([]model.DailyReport, error)
}

// GuestStore resolves guests and creates walk-in guest records.
type GuestStore interface {
	GetTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.User, error)
	CreateGuestTx(ctx context.Context, tx *sql.Tx, u *model.User) error
	LoyaltyDiscountTx(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (decimal.Decimal, error)
}

type TravelCompanyStore interface {
	GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.TravelCompany, error)
	AddBalanceTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, amount decimal.Decimal) error
}

// EventPublisher delivers domain events after commit.  Failures never roll
// back the operation that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ReservationEvent) error
}
