package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

func TestPaymentReachingFinalPriceConfirms(t *testing.T) {
	f := newFixture(t)
	res := f.reservationIn(t, model.StatusPending, model.CheckinNotCheckedIn)
	clerk := uuid.New()

	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.payments.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().SumCompletedTx(gomock.Any(), gomock.Any(), res.ID).Return(dec("60000"), nil)
	f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), res).Return(nil)
	var published []queue.EventType
	f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev queue.ReservationEvent) error {
			published = append(published, ev.Type)
			return nil
		}).Times(2)

	p, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
		ReservationID: res.ID, Amount: dec("60000"), Method: model.PaymentCreditCard,
	}, clerk)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCompleted, p.Status)
	assert.Equal(t, clerk, p.ProcessedBy.UUID)
	assert.Equal(t, model.StatusConfirmed, res.State.Status())
	assert.Equal(t, []queue.EventType{queue.EventPaymentCompleted, queue.EventReservationConfirmed}, published)
}

func TestPartialPaymentLeavesStatus(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	res := f.reservationIn(t, model.StatusPending, model.CheckinNotCheckedIn)

	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.payments.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().SumCompletedTx(gomock.Any(), gomock.Any(), res.ID).Return(dec("10000"), nil)

	_, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
		ReservationID: res.ID, Amount: dec("10000"), Method: model.PaymentCash,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, res.State.Status())
}

func TestPaymentOnConfirmedReservationIsNoOpForStatus(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	res := f.reservationIn(t, model.StatusConfirmed, model.CheckinNotCheckedIn)

	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.payments.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().SumCompletedTx(gomock.Any(), gomock.Any(), res.ID).Return(dec("70000"), nil)

	_, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
		ReservationID: res.ID, Amount: dec("70000"), Method: model.PaymentCash,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, res.State.Status())
}

func travelReservation(f *fixture, t *testing.T, company uuid.UUID) *model.Reservation {
	res := f.reservationIn(t, model.StatusPending, model.CheckinNotCheckedIn)
	res.IsTravelCompany = true
	res.TravelCompanyID = uuid.NullUUID{UUID: company, Valid: true}
	return res
}

func TestTravelCompanyCreditLimitExceeded(t *testing.T) {
	f := newFixture(t)
	company := &model.TravelCompany{ID: uuid.New(), CreditLimit: dec("100000"), CurrentBalance: dec("80000")}
	res := travelReservation(f, t, company.ID)

	f.rollsBack()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.companies.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), company.ID).Return(company, nil)
	// No payments.CreateTx expectation: an inserted row fails the test.

	_, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
		ReservationID: res.ID, Amount: dec("30000"), Method: model.PaymentTravelCompany,
	}, uuid.New())
	requireCode(t, err, CodeCreditLimitExceeded)
}

func TestTravelCompanyChargeWithinLimit(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	company := &model.TravelCompany{ID: uuid.New(), CreditLimit: dec("100000"), CurrentBalance: dec("40000")}
	res := travelReservation(f, t, company.ID)

	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.companies.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), company.ID).Return(company, nil)
	f.companies.EXPECT().AddBalanceTx(gomock.Any(), gomock.Any(), company.ID, gomock.Any()).Return(nil)
	f.payments.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().SumCompletedTx(gomock.Any(), gomock.Any(), res.ID).Return(dec("60000"), nil)
	f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), res).Return(nil)

	p, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
		ReservationID: res.ID, Amount: dec("60000"), Method: model.PaymentTravelCompany,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.PaymentTravelCompany, p.Method)
}

func TestPaymentRejections(t *testing.T) {
	tests := []struct {
		name   string
		status model.ReservationStatus
		method model.PaymentMethod
		code   Code
	}{
		{"cancelled reservation", model.StatusCancelled, model.PaymentCash, CodeInvalidStatusPayment},
		{"no-show reservation", model.StatusNoShow, model.PaymentCash, CodeInvalidStatusPayment},
		{"travel billing on a guest booking", model.StatusPending, model.PaymentTravelCompany, CodeInvalidPaymentMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res := f.reservationIn(t, tt.status, model.CheckinNotCheckedIn)
			f.rollsBack()
			f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)

			_, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
				ReservationID: res.ID, Amount: dec("100"), Method: tt.method,
			}, uuid.New())
			requireCode(t, err, tt.code)
		})
	}
}

func TestNegativePaymentRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
		ReservationID: uuid.New(), Amount: dec("-0.01"), Method: model.PaymentCash,
	}, uuid.New())
	requireCode(t, err, CodeInvalidAmount)
}

func TestZeroPaymentIsRecorded(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	res := f.reservationIn(t, model.StatusPending, model.CheckinNotCheckedIn)

	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.payments.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().SumCompletedTx(gomock.Any(), gomock.Any(), res.ID).Return(dec("0"), nil)

	p, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
		ReservationID: res.ID, Amount: dec("0"), Method: model.PaymentCash,
	}, uuid.New())
	require.NoError(t, err)
	assert.True(t, p.Amount.IsZero())
	assert.Equal(t, model.StatusPending, res.State.Status())
}

func TestPaymentUnknownMethodRejected(t *testing.T) {
	f := newFixture(t)
	res := f.reservationIn(t, model.StatusPending, model.CheckinNotCheckedIn)
	f.rollsBack()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)

	_, err := f.ledger().ProcessPayment(context.Background(), PaymentInput{
		ReservationID: res.ID, Amount: dec("100"), Method: model.PaymentMethod("cheque"),
	}, uuid.New())
	requireCode(t, err, CodeInvalidPaymentMethod)
}

func TestPartialRefundAppendsNegativeRow(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	txID := "TX-42"
	orig := &model.Payment{
		ID: uuid.New(), ReservationID: uuid.New(), Amount: dec("500"),
		Method: model.PaymentCreditCard, Status: model.PaymentCompleted, TransactionID: &txID,
	}

	f.commits()
	f.payments.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), orig.ID).Return(orig, nil)
	f.payments.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), orig.ID, model.PaymentRefunded).Return(nil)
	f.payments.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sql.Tx, p *model.Payment) error {
			assert.True(t, dec("-200").Equal(p.Amount))
			assert.Equal(t, model.PaymentRefunded, p.Status)
			assert.Equal(t, orig.ReservationID, p.ReservationID)
			return nil
		})

	refund, err := f.ledger().Refund(context.Background(), orig.ID, dec("200"), "room change", uuid.New())
	require.NoError(t, err)
	require.NotNil(t, refund.TransactionID)
	assert.Equal(t, "TX-42_REFUND", *refund.TransactionID)
	require.NotNil(t, refund.Notes)
	assert.Equal(t, "room change", *refund.Notes)
}

func TestRefundRejections(t *testing.T) {
	tests := []struct {
		name   string
		status model.PaymentStatus
		amount string
		code   Code
	}{
		{"more than the original", model.PaymentCompleted, "600", CodeInvalidRefundAmount},
		{"already refunded", model.PaymentRefunded, "100", CodeInvalidPaymentStatus},
		{"pending payment", model.PaymentPending, "100", CodeInvalidPaymentStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			orig := &model.Payment{ID: uuid.New(), Amount: dec("500"), Status: tt.status}
			f.rollsBack()
			f.payments.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), orig.ID).Return(orig, nil)

			_, err := f.ledger().Refund(context.Background(), orig.ID, dec(tt.amount), "", uuid.New())
			requireCode(t, err, tt.code)
		})
	}
}

func TestRefundMissingPayment(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.rollsBack()
	f.payments.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), id).Return(nil, repository.ErrNotFound)

	_, err := f.ledger().Refund(context.Background(), id, dec("1"), "", uuid.New())
	requireCode(t, err, CodePaymentNotFound)
}

func TestBalanceIsNeverClamped(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	d := &model.ReservationDetail{
		Reservation:    model.Reservation{ID: id, FinalPrice: dec("60000")},
		TotalPaid:      dec("65000"),
		ServiceCharges: dec("1500"),
	}
	f.reservations.EXPECT().GetDetail(gomock.Any(), id).Return(d, nil)

	b, err := f.ledger().Balance(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, dec("-3500").Equal(b.Outstanding), "outstanding %s", b.Outstanding)
	assert.True(t, d.OutstandingBalance().Equal(b.Outstanding))
}

func TestServiceChargeNeedsCheckedInGuest(t *testing.T) {
	f := newFixture(t)
	res := f.reservationIn(t, model.StatusConfirmed, model.CheckinNotCheckedIn)
	f.rollsBack()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)

	_, err := f.ledger().AddServiceCharge(context.Background(), res.ID,
		ChargeInput{ServiceType: model.ServiceLaundry, Amount: dec("20")}, uuid.New())
	requireCode(t, err, CodeInvalidStatusCharges)
}

func TestServiceChargeOnCheckedInGuest(t *testing.T) {
	f := newFixture(t)
	res := f.reservationIn(t, model.StatusConfirmed, model.CheckinCheckedIn)
	f.commits()
	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), res.ID).Return(res, nil)
	f.charges.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	c, err := f.ledger().AddServiceCharge(context.Background(), res.ID,
		ChargeInput{ServiceType: model.ServiceLaundry, Amount: dec("20")}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "laundry charge", c.Description)
	assert.False(t, c.IsPaid)
}
