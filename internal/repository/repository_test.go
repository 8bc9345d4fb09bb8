package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var detailColumns = []string{
	"id", "user_id", "room_type_id", "check_in_date", "check_out_date", "num_guests",
	"status", "checkin_status", "total_price", "discount_amount", "final_price",
	"has_credit_card", "credit_card_last4", "is_walk_in", "is_travel_company", "travel_company_id",
	"is_residential", "residential_duration", "special_requests", "created_at", "updated_at",
	"name", "email", "type_name", "room_id", "room_number", "total_paid", "service_charges",
}

func TestGetForUpdateTxNotFound(t *testing.T) {
	db, mock := newMock(t)
	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations r WHERE r.id = ? FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(detailColumns[:21]))
	mock.ExpectRollback()

	err := database.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := NewReservationRepo(db).GetForUpdateTx(context.Background(), tx, id)
		return err
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAvailableRoomsTxBindsRangeTwice(t *testing.T) {
	db, mock := newMock(t)
	rt := uuid.New()
	in := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 0, 3)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(rt, rt, in, in, out, out, in, out).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(4))
	mock.ExpectCommit()

	var n int
	err := database.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		var err error
		n, err = NewReservationRepo(db).CountAvailableRoomsTx(context.Background(), tx, rt, in, out)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDetailsFiltersAndScans(t *testing.T) {
	db, mock := newMock(t)
	id, guest, rt, room := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	in := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC)
	status := model.StatusConfirmed

	mock.ExpectQuery(`WHERE r\.status = \? ORDER BY r\.` + "`check_in_date`" + ` DESC LIMIT \?`).
		WithArgs("confirmed", 10).
		WillReturnRows(sqlmock.NewRows(detailColumns).AddRow(
			id.String(), guest.String(), rt.String(), in, in.AddDate(0, 0, 2), 2,
			"confirmed", "checked_in", "300.00", "0.00", "300.00",
			true, "4242", false, false, nil,
			false, nil, nil, created, created,
			"Ada", "ada@example.com", "Deluxe", room.String(), "305", "100.00", "25.50",
		))

	out, err := NewReservationRepo(db).ListDetails(context.Background(), model.ReservationFilter{
		Status: &status, SortBy: "check_in_date", Descending: true, Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	d := out[0]
	assert.Equal(t, id, d.ID)
	assert.Equal(t, model.StatusConfirmed, d.State.Status())
	assert.Equal(t, model.CheckinCheckedIn, d.State.CheckinStatus())
	assert.Equal(t, "4242", *d.CreditCardLast4)
	assert.Nil(t, d.ResidentialDuration)
	assert.False(t, d.TravelCompanyID.Valid)
	assert.Equal(t, room, d.RoomID.UUID)
	assert.Equal(t, "305", *d.RoomNumber)
	assert.True(t, d.OutstandingBalance().Equal(decimal.RequireFromString("225.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDetailsRejectsUnknownSortColumn(t *testing.T) {
	db, mock := newMock(t)
	_, err := NewReservationRepo(db).ListDetails(context.Background(), model.ReservationFilter{SortBy: "guest_name; DROP TABLE users"})
	assert.ErrorIs(t, err, database.ErrIdentifierNotAllowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDetailsRejectsCorruptStatus(t *testing.T) {
	db, mock := newMock(t)
	in := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM reservations r").
		WillReturnRows(sqlmock.NewRows(detailColumns).AddRow(
			uuid.NewString(), uuid.NewString(), uuid.NewString(), in, in.AddDate(0, 0, 1), 1,
			"archived", "not_checked_in", "100", "0", "100",
			false, nil, false, false, nil,
			false, nil, nil, in, in,
			"Ada", "ada@example.com", "Single", nil, nil, "0", "0",
		))

	_, err := NewReservationRepo(db).ListDetails(context.Background(), model.ReservationFilter{})
	assert.ErrorIs(t, err, model.ErrUnknownValue)
}

func TestListAutoCancelCandidates(t *testing.T) {
	db, mock := newMock(t)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	cutoff := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("has_credit_card = FALSE")).
		WithArgs(day, cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(a.String()).AddRow(b.String()))

	ids, err := NewReservationRepo(db).ListAutoCancelCandidates(context.Background(), day, cutoff)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}

func TestUserCreateNormalizesAndMapsDuplicates(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "Ada", "ada@example.com", sqlmock.AnyArg(), "customer", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := NewUserRepo(db)
	id, err := repo.Create(context.Background(), " Ada ", " ADA@example.com", "correct horse", model.RoleCustomer, bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	_, err = repo.Create(context.Background(), "Ada", "ada@example.com", "correct horse", model.RoleCustomer, bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportCreateDuplicateDate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO daily_reports")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '2026-03-01' for key 'report_date'"})

	err := NewReportRepo(db, nil).Create(context.Background(), &model.DailyReport{ID: uuid.New(), ReportDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestReportStatsOnlyCountsCreatedThatDay(t *testing.T) {
	db, mock := newMock(t)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE created_at >= ? AND created_at < ?")).
		WithArgs(day, day.AddDate(0, 0, 1)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "in", "out", "cancelled", "no_show"}).AddRow(7, 2, 1, 3, 1))

	s, err := NewReportRepo(db, nil).Stats(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStats{Total: 7, CheckIns: 2, CheckOuts: 1, Cancellations: 3, NoShows: 1}, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportDayFollowsHotelZone(t *testing.T) {
	db, mock := newMock(t)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 2, 28, 21, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("payment_date >= ? AND payment_date < ?")).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("1250.50"))
	mock.ExpectQuery(regexp.QuoteMeta("created_at >= ? AND created_at < ?")).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"total", "in", "out", "cancelled", "no_show"}).AddRow(1, 0, 0, 0, 0))

	repo := NewReportRepo(db, time.FixedZone("UTC+3", 3*3600))
	sum, err := repo.SumRevenue(context.Background(), day)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("1250.5")), "revenue %s", sum)
	s, err := repo.Stats(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
