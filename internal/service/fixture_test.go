package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	mock_service "github.com/iliyamo/hotel-reservation/internal/service/mocks"
)

// fixture wires every service to gomock stores and a sqlmock database.
// Stores receive whatever *sql.Tx the service opened, so tests match it
// with gomock.Any() and assert the transaction outcome through sqlmock.
type fixture struct {
	db  *sql.DB
	sql sqlmock.Sqlmock
	now time.Time

	reservations *mock_service.MockReservationStore
	rooms        *mock_service.MockRoomStore
	assignments  *mock_service.MockAssignmentStore
	payments     *mock_service.MockPaymentStore
	charges      *mock_service.MockChargeStore
	billing      *mock_service.MockBillingStore
	reports      *mock_service.MockReportStore
	guests       *mock_service.MockGuestStore
	companies    *mock_service.MockTravelCompanyStore
	events       *mock_service.MockEventPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return &fixture{
		db:           db,
		sql:          mock,
		now:          time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC),
		reservations: mock_service.NewMockReservationStore(ctrl),
		rooms:        mock_service.NewMockRoomStore(ctrl),
		assignments:  mock_service.NewMockAssignmentStore(ctrl),
		payments:     mock_service.NewMockPaymentStore(ctrl),
		charges:      mock_service.NewMockChargeStore(ctrl),
		billing:      mock_service.NewMockBillingStore(ctrl),
		reports:      mock_service.NewMockReportStore(ctrl),
		guests:       mock_service.NewMockGuestStore(ctrl),
		companies:    mock_service.NewMockTravelCompanyStore(ctrl),
		events:       mock_service.NewMockEventPublisher(ctrl),
	}
}

func (f *fixture) clock() Clock { return ClockFunc(func() time.Time { return f.now }) }

func (f *fixture) today() time.Time { return dateOf(f.now) }

func (f *fixture) allowEvents() {
	f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// commits expects one transaction that commits.
func (f *fixture) commits() {
	f.sql.ExpectBegin()
	f.sql.ExpectCommit()
}

// rollsBack expects one transaction that rolls back.
func (f *fixture) rollsBack() {
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()
}

func (f *fixture) lifecycle() *LifecycleService {
	return NewLifecycleService(f.db, f.reservations, f.rooms, f.guests, f.clock(), f.events)
}

func (f *fixture) roomService() *RoomService {
	return NewRoomService(f.db, f.rooms, f.assignments, f.clock())
}

func (f *fixture) ledger() *LedgerService {
	return NewLedgerService(f.db, f.reservations, f.payments, f.charges, f.companies, f.clock(), f.events)
}

func (f *fixture) frontDesk() *FrontDeskService {
	return NewFrontDeskService(f.db, f.lifecycle(), f.roomService(), f.ledger(), f.guests, f.clock(), f.events)
}

func (f *fixture) reconciler() *Reconciler {
	return NewReconciler(f.db, f.reservations, f.billing, f.reports, f.clock(), f.events, DefaultReconcileConfig())
}

func standardRoomType() *model.RoomType {
	return &model.RoomType{
		ID:        uuid.MustParse("11111111-1111-4111-8111-111111111111"),
		TypeName:  "Deluxe",
		BasePrice: dec("15000"),
		Capacity:  2,
	}
}

func lifecycleOf(t *testing.T, status model.ReservationStatus, checkin model.CheckinStatus) model.Lifecycle {
	t.Helper()
	l, err := model.RestoreLifecycle(string(status), string(checkin))
	require.NoError(t, err)
	return l
}

// reservationIn returns a four night stay starting tomorrow in the given
// state, priced at 60000.
func (f *fixture) reservationIn(t *testing.T, status model.ReservationStatus, checkin model.CheckinStatus) *model.Reservation {
	in := f.today().AddDate(0, 0, 1)
	return &model.Reservation{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		RoomTypeID:   standardRoomType().ID,
		CheckInDate:  in,
		CheckOutDate: in.AddDate(0, 0, 4),
		NumGuests:    2,
		State:        lifecycleOf(t, status, checkin),
		TotalPrice:   dec("60000"),
		FinalPrice:   dec("60000"),
		CreatedAt:    f.now.Add(-48 * time.Hour),
		UpdatedAt:    f.now.Add(-48 * time.Hour),
	}
}

func requireCode(t *testing.T, err error, code Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, CodeOf(err), "error: %v", err)
}
