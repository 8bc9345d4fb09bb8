package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// call builds an echo context for one request.  principal may be uuid.Nil
// for anonymous requests; id fills the :id path parameter when non-empty.
type call struct {
	method, body, id, query string
	user                    uuid.UUID
	role                    model.Role
}

func (k call) do(t *testing.T, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	target := "/"
	if k.query != "" {
		target += "?" + k.query
	}
	method := k.method
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, target, strings.NewReader(k.body))
	if k.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if k.id != "" {
		c.SetParamNames("id")
		c.SetParamValues(k.id)
	}
	if k.user != uuid.Nil {
		c.Set("user_id", k.user)
		c.Set("role", k.role)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleReservation(owner uuid.UUID) *model.Reservation {
	in := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &model.Reservation{
		ID:           uuid.New(),
		UserID:       owner,
		RoomTypeID:   uuid.New(),
		CheckInDate:  in,
		CheckOutDate: in.AddDate(0, 0, 3),
		NumGuests:    2,
		State:        model.NewLifecycle(true),
		TotalPrice:   dec("450"),
		FinalPrice:   dec("450"),
	}
}

type fakeReservations struct{ mock.Mock }

func (f *fakeReservations) Create(ctx context.Context, guestID uuid.UUID, in service.CreateReservationInput) (*model.Reservation, error) {
	args := f.Called(guestID, in)
	r, _ := args.Get(0).(*model.Reservation)
	return r, args.Error(1)
}

func (f *fakeReservations) CreateBulk(ctx context.Context, agentID uuid.UUID, in service.BulkBookingInput) ([]*model.Reservation, error) {
	args := f.Called(agentID, in)
	r, _ := args.Get(0).([]*model.Reservation)
	return r, args.Error(1)
}

func (f *fakeReservations) Update(ctx context.Context, id uuid.UUID, in service.UpdateReservationInput) (*model.Reservation, error) {
	args := f.Called(id, in)
	r, _ := args.Get(0).(*model.Reservation)
	return r, args.Error(1)
}

func (f *fakeReservations) Cancel(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	args := f.Called(id)
	r, _ := args.Get(0).(*model.Reservation)
	return r, args.Error(1)
}

func (f *fakeReservations) Get(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error) {
	args := f.Called(id)
	r, _ := args.Get(0).(*model.ReservationDetail)
	return r, args.Error(1)
}

func (f *fakeReservations) List(ctx context.Context, flt model.ReservationFilter) ([]model.ReservationDetail, error) {
	args := f.Called(flt)
	r, _ := args.Get(0).([]model.ReservationDetail)
	return r, args.Error(1)
}

func (f *fakeReservations) ListForGuest(ctx context.Context, guestID uuid.UUID) ([]model.ReservationDetail, error) {
	args := f.Called(guestID)
	r, _ := args.Get(0).([]model.ReservationDetail)
	return r, args.Error(1)
}

func (f *fakeReservations) ListPending(ctx context.Context) ([]model.ReservationDetail, error) {
	args := f.Called()
	r, _ := args.Get(0).([]model.ReservationDetail)
	return r, args.Error(1)
}

func (f *fakeReservations) ListRoomTypes(ctx context.Context) ([]model.RoomType, error) {
	args := f.Called()
	r, _ := args.Get(0).([]model.RoomType)
	return r, args.Error(1)
}

func (f *fakeReservations) Availability(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) (int, error) {
	args := f.Called(roomTypeID, checkIn, checkOut)
	return args.Int(0), args.Error(1)
}

type fakeDesk struct{ mock.Mock }

func (f *fakeDesk) CheckIn(ctx context.Context, reservationID, roomID, actorID uuid.UUID) (*service.CheckInResult, error) {
	args := f.Called(reservationID, roomID, actorID)
	r, _ := args.Get(0).(*service.CheckInResult)
	return r, args.Error(1)
}

func (f *fakeDesk) CheckOut(ctx context.Context, in service.CheckOutInput, actorID uuid.UUID) (*service.CheckOutResult, error) {
	args := f.Called(in, actorID)
	r, _ := args.Get(0).(*service.CheckOutResult)
	return r, args.Error(1)
}

func (f *fakeDesk) CreateWalkIn(ctx context.Context, guest service.GuestInput, in service.CreateReservationInput, actorID uuid.UUID) (*service.WalkInResult, error) {
	args := f.Called(guest, in, actorID)
	r, _ := args.Get(0).(*service.WalkInResult)
	return r, args.Error(1)
}

func (f *fakeDesk) CheckoutSummary(ctx context.Context, reservationID uuid.UUID) (*service.CheckoutSummary, error) {
	args := f.Called(reservationID)
	r, _ := args.Get(0).(*service.CheckoutSummary)
	return r, args.Error(1)
}

func (f *fakeDesk) InHouse(ctx context.Context) ([]model.ReservationDetail, error) {
	args := f.Called()
	r, _ := args.Get(0).([]model.ReservationDetail)
	return r, args.Error(1)
}

type fakeLedger struct{ mock.Mock }

func (f *fakeLedger) ProcessPayment(ctx context.Context, in service.PaymentInput, actorID uuid.UUID) (*model.Payment, error) {
	args := f.Called(in, actorID)
	r, _ := args.Get(0).(*model.Payment)
	return r, args.Error(1)
}

func (f *fakeLedger) Refund(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal, reason string, actorID uuid.UUID) (*model.Payment, error) {
	args := f.Called(paymentID, amount.String(), reason, actorID)
	r, _ := args.Get(0).(*model.Payment)
	return r, args.Error(1)
}

func (f *fakeLedger) AddServiceCharge(ctx context.Context, reservationID uuid.UUID, in service.ChargeInput, actorID uuid.UUID) (*model.ServiceCharge, error) {
	args := f.Called(reservationID, in, actorID)
	r, _ := args.Get(0).(*model.ServiceCharge)
	return r, args.Error(1)
}

func (f *fakeLedger) Balance(ctx context.Context, reservationID uuid.UUID) (model.Balance, error) {
	args := f.Called(reservationID)
	return args.Get(0).(model.Balance), args.Error(1)
}

func (f *fakeLedger) Payments(ctx context.Context, reservationID uuid.UUID) ([]model.Payment, error) {
	args := f.Called(reservationID)
	r, _ := args.Get(0).([]model.Payment)
	return r, args.Error(1)
}

func (f *fakeLedger) ServiceCharges(ctx context.Context, reservationID uuid.UUID) ([]model.ServiceCharge, error) {
	args := f.Called(reservationID)
	r, _ := args.Get(0).([]model.ServiceCharge)
	return r, args.Error(1)
}

type fakeRooms struct{ mock.Mock }

func (f *fakeRooms) MarkCleaned(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	args := f.Called(id)
	r, _ := args.Get(0).(*model.Room)
	return r, args.Error(1)
}

func (f *fakeRooms) SetMaintenance(ctx context.Context, id uuid.UUID, on bool) (*model.Room, error) {
	args := f.Called(id, on)
	r, _ := args.Get(0).(*model.Room)
	return r, args.Error(1)
}

func (f *fakeRooms) ListRooms(ctx context.Context, flt model.RoomFilter) ([]model.RoomWithType, error) {
	args := f.Called(flt)
	r, _ := args.Get(0).([]model.RoomWithType)
	return r, args.Error(1)
}

func (f *fakeRooms) ListAvailable(ctx context.Context, roomTypeID *uuid.UUID) ([]model.RoomWithType, error) {
	args := f.Called(roomTypeID)
	r, _ := args.Get(0).([]model.RoomWithType)
	return r, args.Error(1)
}

func (f *fakeRooms) CreateRoom(ctx context.Context, in service.RoomInput) (*model.Room, error) {
	args := f.Called(in)
	r, _ := args.Get(0).(*model.Room)
	return r, args.Error(1)
}

func (f *fakeRooms) UpdateRoom(ctx context.Context, id uuid.UUID, in service.RoomInput) (*model.Room, error) {
	args := f.Called(id, in)
	r, _ := args.Get(0).(*model.Room)
	return r, args.Error(1)
}

func (f *fakeRooms) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return f.Called(id).Error(0)
}

type fakeNightly struct{ mock.Mock }

func (f *fakeNightly) RunNightly(ctx context.Context) service.NightlyResult {
	return f.Called().Get(0).(service.NightlyResult)
}

func (f *fakeNightly) Reports(ctx context.Context, limit int) ([]model.DailyReport, error) {
	args := f.Called(limit)
	r, _ := args.Get(0).([]model.DailyReport)
	return r, args.Error(1)
}

func (f *fakeNightly) NoShowCharges(ctx context.Context) ([]model.BillingRecordDetail, error) {
	args := f.Called()
	r, _ := args.Get(0).([]model.BillingRecordDetail)
	return r, args.Error(1)
}

type fakeUsers struct{ mock.Mock }

func (f *fakeUsers) Create(ctx context.Context, name, email, password string, role model.Role, cost int) (uuid.UUID, error) {
	args := f.Called(name, email, password, role)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := f.Called(email)
	r, _ := args.Get(0).(*model.User)
	return r, args.Error(1)
}

func (f *fakeUsers) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := f.Called(id)
	r, _ := args.Get(0).(*model.User)
	return r, args.Error(1)
}

type fakeTokens struct{ mock.Mock }

func (f *fakeTokens) StoreRefresh(ctx context.Context, userID uuid.UUID, tokenHash string, exp time.Time) error {
	return f.Called(userID, tokenHash).Error(0)
}

func (f *fakeTokens) ValidateRefresh(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	args := f.Called(tokenHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (f *fakeTokens) RevokeByHash(ctx context.Context, tokenHash string) error {
	return f.Called(tokenHash).Error(0)
}

func (f *fakeTokens) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return f.Called(userID).Error(0)
}
