package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

func (f *fixture) unpaidBookingForToday(t *testing.T, age time.Duration) *model.Reservation {
	res := f.reservationIn(t, model.StatusPending, model.CheckinNotCheckedIn)
	res.CheckInDate = f.today()
	res.CheckOutDate = f.today().AddDate(0, 0, 2)
	res.CreatedAt = f.now.Add(-age)
	return res
}

func TestAutoCancelUnpaidBooking(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	res := f.unpaidBookingForToday(t, 13*time.Hour)

	f.reservations.EXPECT().ListAutoCancelCandidates(gomock.Any(), f.today(), f.now.Add(-12*time.Hour)).
		Return([]uuid.UUID{res.ID}, nil)
	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), res).Return(nil)

	out := f.reconciler().AutoCancel(context.Background())
	assert.True(t, out.Success)
	assert.Equal(t, []uuid.UUID{res.ID}, out.Processed)
	assert.Empty(t, out.Errors)
	assert.Equal(t, model.StatusCancelled, res.State.Status())
}

func TestAutoCancelRechecksGuardUnderLock(t *testing.T) {
	f := newFixture(t)
	res := f.unpaidBookingForToday(t, 13*time.Hour)
	res.HasCreditCard = true

	f.reservations.EXPECT().ListAutoCancelCandidates(gomock.Any(), gomock.Any(), gomock.Any()).Return([]uuid.UUID{res.ID}, nil)
	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)

	out := f.reconciler().AutoCancel(context.Background())
	assert.True(t, out.Success)
	assert.Empty(t, out.Processed)
	assert.Equal(t, model.StatusPending, res.State.Status())
}

func TestAutoCancelContinuesPastFailures(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	broken := uuid.New()
	res := f.unpaidBookingForToday(t, 20*time.Hour)

	f.reservations.EXPECT().ListAutoCancelCandidates(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]uuid.UUID{broken, res.ID}, nil)
	f.rollsBack()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), broken).Return(nil, errors.New("deadlock"))
	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), res).Return(nil)

	out := f.reconciler().AutoCancel(context.Background())
	assert.True(t, out.Success)
	assert.Equal(t, []uuid.UUID{res.ID}, out.Processed)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, broken, out.Errors[0].ReservationID)
	assert.Equal(t, CodeInternal, out.Errors[0].Code)
}

func TestBillNoShowChargesHalfTheStay(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	res := f.reservationIn(t, model.StatusPending, model.CheckinNotCheckedIn)
	res.CheckInDate = f.today().AddDate(0, 0, -1)
	res.FinalPrice = dec("60000.01")
	lastCheckIn := f.today().AddDate(0, 0, -1)

	f.reservations.EXPECT().ListNoShowCandidates(gomock.Any(), lastCheckIn).Return([]uuid.UUID{res.ID}, nil)
	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.billing.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sql.Tx, b *model.BillingRecord) error {
			assert.Equal(t, model.BillingNoShow, b.BillingType)
			assert.Equal(t, model.BillingPending, b.Status)
			assert.True(t, dec("30000.01").Equal(b.Amount), "fee %s", b.Amount)
			return nil
		})
	f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), res).Return(nil)

	out := f.reconciler().BillNoShows(context.Background())
	assert.True(t, out.Success)
	assert.Equal(t, []uuid.UUID{res.ID}, out.Processed)
	assert.Equal(t, model.StatusNoShow, res.State.Status())
}

func TestBillNoShowSkipsGuestWhoArrived(t *testing.T) {
	f := newFixture(t)
	res := f.reservationIn(t, model.StatusPending, model.CheckinNotCheckedIn)
	res.CheckInDate = f.today() // window still open

	f.reservations.EXPECT().ListNoShowCandidates(gomock.Any(), gomock.Any()).Return([]uuid.UUID{res.ID}, nil)
	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)

	out := f.reconciler().BillNoShows(context.Background())
	assert.True(t, out.Success)
	assert.Empty(t, out.Processed)
}

func TestDailyReportSurvivesReadFailures(t *testing.T) {
	f := newFixture(t)
	yesterday := f.today().AddDate(0, 0, -1)

	f.reports.EXPECT().CountRooms(gomock.Any()).Return(10, nil)
	f.reports.EXPECT().CountOccupied(gomock.Any(), yesterday).Return(4, nil)
	f.reports.EXPECT().SumRevenue(gomock.Any(), yesterday).Return(dec("0"), errors.New("timeout"))
	f.reports.EXPECT().Stats(gomock.Any(), yesterday).Return(model.ReservationStats{Total: 5, CheckIns: 2, Cancellations: 1}, nil)
	f.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out := f.reconciler().GenerateDailyReport(context.Background())
	assert.True(t, out.Success)
	require.Len(t, out.Errors, 1)
	require.NotNil(t, out.Report)
	assert.Equal(t, yesterday, out.Report.ReportDate)
	assert.True(t, dec("40").Equal(out.Report.OccupancyRate), "rate %s", out.Report.OccupancyRate)
	assert.True(t, out.Report.TotalRevenue.IsZero())
	assert.Equal(t, 5, out.Report.TotalReservations)
	assert.Equal(t, 1, out.Report.TotalCancellations)
}

func TestDailyReportWithoutRoomsHasZeroOccupancy(t *testing.T) {
	f := newFixture(t)
	f.reports.EXPECT().CountRooms(gomock.Any()).Return(0, nil)
	f.reports.EXPECT().CountOccupied(gomock.Any(), gomock.Any()).Return(0, nil)
	f.reports.EXPECT().SumRevenue(gomock.Any(), gomock.Any()).Return(dec("0"), nil)
	f.reports.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(model.ReservationStats{}, nil)
	f.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out := f.reconciler().GenerateDailyReport(context.Background())
	assert.True(t, out.Success)
	assert.True(t, out.Report.OccupancyRate.IsZero())
}

func TestDailyReportAlreadyExists(t *testing.T) {
	f := newFixture(t)
	f.reports.EXPECT().CountRooms(gomock.Any()).Return(10, nil)
	f.reports.EXPECT().CountOccupied(gomock.Any(), gomock.Any()).Return(4, nil)
	f.reports.EXPECT().SumRevenue(gomock.Any(), gomock.Any()).Return(dec("100"), nil)
	f.reports.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(model.ReservationStats{}, nil)
	f.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

	out := f.reconciler().GenerateDailyReport(context.Background())
	assert.False(t, out.Success)
	assert.Nil(t, out.Report)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, CodeReportExists, out.Errors[0].Code)
}

func TestRunNightlyRunsEveryTask(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()

	f.reservations.EXPECT().ListAutoCancelCandidates(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	f.reservations.EXPECT().ListNoShowCandidates(gomock.Any(), gomock.Any()).Return([]uuid.UUID{}, nil)
	f.reports.EXPECT().CountRooms(gomock.Any()).Return(0, errors.New("db down"))
	f.reports.EXPECT().CountOccupied(gomock.Any(), gomock.Any()).Return(0, nil)
	f.reports.EXPECT().SumRevenue(gomock.Any(), gomock.Any()).Return(dec("0"), nil)
	f.reports.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(model.ReservationStats{}, nil)
	f.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out := f.reconciler().RunNightly(context.Background())
	assert.False(t, out.AutoCancel.Success)
	assert.True(t, out.NoShow.Success)
	assert.True(t, out.DailyReport.Success)
	assert.Len(t, out.DailyReport.Errors, 1)
}
