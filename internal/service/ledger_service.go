package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// LedgerService records payments, refunds and service charges and answers
// balance queries.  The outstanding balance is always derived from the
// ledger rows, never stored.
type LedgerService struct {
	db           *sql.DB
	reservations ReservationStore
	payments     PaymentStore
	charges      ChargeStore
	companies    TravelCompanyStore
	clock        Clock
	events       EventPublisher
}

func NewLedgerService(db *sql.DB, reservations ReservationStore, payments PaymentStore, charges ChargeStore, companies TravelCompanyStore, clock Clock, events EventPublisher) *LedgerService {
	return &LedgerService{db: db, reservations: reservations, payments: payments, charges: charges, companies: companies, clock: clock, events: events}
}

// PaymentInput describes money received against a reservation.
type PaymentInput struct {
	ReservationID uuid.UUID
	Amount        decimal.Decimal
	Method        model.PaymentMethod
	TransactionID *string
	Notes         *string
}

// ChargeInput describes an extra raised during a stay.
type ChargeInput struct {
	ServiceType model.ServiceType
	Description string
	Amount      decimal.Decimal
}

// ProcessPayment records a completed payment.  When the completed total
// reaches the final price the reservation is confirmed.
func (s *LedgerService) ProcessPayment(ctx context.Context, in PaymentInput, actorID uuid.UUID) (*model.Payment, error) {
	if in.Amount.IsNegative() {
		return nil, fail(CodeInvalidAmount, "payment amount cannot be negative")
	}
	var (
		p         *model.Payment
		res       *model.Reservation
		confirmed bool
	)
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		if res, err = lockReservationTx(ctx, tx, s.reservations, in.ReservationID); err != nil {
			return err
		}
		p, confirmed, err = s.processPaymentTx(ctx, tx, res, in, actorID)
		return err
	})
	if err != nil {
		return nil, internal("process payment", err)
	}
	publish(ctx, s.events, paymentEvent(queue.EventPaymentCompleted, p))
	if confirmed {
		publish(ctx, s.events, reservationEvent(queue.EventReservationConfirmed, res, res.UpdatedAt))
	}
	return p, nil
}

// processPaymentTx inserts a completed payment against the locked res.  A
// zero amount is accepted so check-out can record a settlement of nothing.
// It reports whether the payment confirmed the reservation.
func (s *LedgerService) processPaymentTx(ctx context.Context, tx *sql.Tx, res *model.Reservation, in PaymentInput, actorID uuid.UUID) (*model.Payment, bool, error) {
	if in.Amount.IsNegative() {
		return nil, false, fail(CodeInvalidAmount, "payment amount cannot be negative")
	}
	if _, err := model.ParsePaymentMethod(string(in.Method)); err != nil {
		return nil, false, fail(CodeInvalidPaymentMethod, "%v", err)
	}
	if !res.State.Updatable() {
		return nil, false, fail(CodeInvalidStatusPayment, "reservation is %s", res.State.Status())
	}

	if in.Method == model.PaymentTravelCompany {
		if !res.IsTravelCompany || !res.TravelCompanyID.Valid {
			return nil, false, fail(CodeInvalidPaymentMethod, "reservation is not billed to a travel company")
		}
		co, err := s.companies.GetForUpdateTx(ctx, tx, res.TravelCompanyID.UUID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, false, fail(CodeTravelCompanyNotFound, "travel company %s not found", res.TravelCompanyID.UUID)
			}
			return nil, false, err
		}
		if !co.CanCharge(in.Amount) {
			return nil, false, fail(CodeCreditLimitExceeded, "charge of %s exceeds the remaining credit of %s",
				in.Amount.StringFixed(2), co.CreditLimit.Sub(co.CurrentBalance).StringFixed(2))
		}
		if err := s.companies.AddBalanceTx(ctx, tx, co.ID, in.Amount); err != nil {
			return nil, false, err
		}
	}

	now := s.clock.Now().UTC()
	p := &model.Payment{
		ID:            uuid.New(),
		ReservationID: res.ID,
		Amount:        in.Amount,
		PaymentDate:   now,
		Method:        in.Method,
		TransactionID: in.TransactionID,
		Status:        model.PaymentCompleted,
		ProcessedBy:   uuid.NullUUID{UUID: actorID, Valid: actorID != uuid.Nil},
		Notes:         in.Notes,
	}
	if err := s.payments.CreateTx(ctx, tx, p); err != nil {
		return nil, false, err
	}

	paid, err := s.payments.SumCompletedTx(ctx, tx, res.ID)
	if err != nil {
		return nil, false, err
	}
	if paid.LessThan(res.FinalPrice) || res.State.Status() == model.StatusConfirmed {
		return p, false, nil
	}
	if err := res.State.TransitionStatus(model.StatusConfirmed); err != nil {
		return nil, false, transitionError(err)
	}
	res.UpdatedAt = now
	if err := s.reservations.UpdateTx(ctx, tx, res); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// Refund reverses all or part of a completed payment.  The original row is
// marked refunded and a negative row is appended for the refunded amount.
func (s *LedgerService) Refund(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal, reason string, actorID uuid.UUID) (*model.Payment, error) {
	if !amount.IsPositive() {
		return nil, fail(CodeInvalidRefundAmount, "refund amount must be positive")
	}
	var refund *model.Payment
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		orig, err := s.payments.GetForUpdateTx(ctx, tx, paymentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fail(CodePaymentNotFound, "payment %s not found", paymentID)
			}
			return err
		}
		if orig.Status != model.PaymentCompleted {
			return fail(CodeInvalidPaymentStatus, "payment is %s", orig.Status)
		}
		if amount.GreaterThan(orig.Amount) {
			return fail(CodeInvalidRefundAmount, "refund of %s exceeds the original %s", amount.StringFixed(2), orig.Amount.StringFixed(2))
		}
		if err := s.payments.UpdateStatusTx(ctx, tx, orig.ID, model.PaymentRefunded); err != nil {
			return err
		}

		ref := orig.ID.String()
		if orig.TransactionID != nil {
			ref = *orig.TransactionID
		}
		txID := ref + "_REFUND"
		refund = &model.Payment{
			ID:            uuid.New(),
			ReservationID: orig.ReservationID,
			Amount:        amount.Neg(),
			PaymentDate:   s.clock.Now().UTC(),
			Method:        orig.Method,
			TransactionID: &txID,
			Status:        model.PaymentRefunded,
			ProcessedBy:   uuid.NullUUID{UUID: actorID, Valid: actorID != uuid.Nil},
		}
		if reason != "" {
			refund.Notes = &reason
		}
		return s.payments.CreateTx(ctx, tx, refund)
	})
	if err != nil {
		return nil, internal("refund payment", err)
	}
	publish(ctx, s.events, paymentEvent(queue.EventPaymentRefunded, refund))
	return refund, nil
}

// AddServiceCharge raises a charge against a checked-in reservation.
func (s *LedgerService) AddServiceCharge(ctx context.Context, reservationID uuid.UUID, in ChargeInput, actorID uuid.UUID) (*model.ServiceCharge, error) {
	var c *model.ServiceCharge
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		res, err := lockReservationTx(ctx, tx, s.reservations, reservationID)
		if err != nil {
			return err
		}
		c, err = s.addServiceChargeTx(ctx, tx, res, in, actorID)
		return err
	})
	if err != nil {
		return nil, internal("add service charge", err)
	}
	return c, nil
}

func (s *LedgerService) addServiceChargeTx(ctx context.Context, tx *sql.Tx, res *model.Reservation, in ChargeInput, actorID uuid.UUID) (*model.ServiceCharge, error) {
	if res.State.CheckinStatus() != model.CheckinCheckedIn {
		return nil, fail(CodeInvalidStatusCharges, "charges need a checked-in guest")
	}
	if !in.Amount.IsPositive() {
		return nil, fail(CodeInvalidAmount, "charge amount must be positive")
	}
	if _, err := model.ParseServiceType(string(in.ServiceType)); err != nil {
		return nil, fail(CodeInvalidInput, "%v", err)
	}
	desc := in.Description
	if desc == "" {
		desc = fmt.Sprintf("%s charge", in.ServiceType)
	}
	c := &model.ServiceCharge{
		ID:            uuid.New(),
		ReservationID: res.ID,
		ServiceType:   in.ServiceType,
		Description:   desc,
		Amount:        in.Amount,
		ChargedAt:     s.clock.Now().UTC(),
		ChargedBy:     actorID,
	}
	if err := s.charges.CreateTx(ctx, tx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *LedgerService) balanceTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) (model.Balance, error) {
	paid, err := s.payments.SumCompletedTx(ctx, tx, res.ID)
	if err != nil {
		return model.Balance{}, err
	}
	charges, err := s.charges.SumTx(ctx, tx, res.ID)
	if err != nil {
		return model.Balance{}, err
	}
	return model.NewBalance(res.FinalPrice, paid, charges), nil
}

// Balance returns the ledger summary of a reservation.  A negative
// outstanding figure is a credit owed to the guest.
func (s *LedgerService) Balance(ctx context.Context, reservationID uuid.UUID) (model.Balance, error) {
	d, err := s.reservations.GetDetail(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Balance{}, fail(CodeReservationNotFound, "reservation %s not found", reservationID)
		}
		return model.Balance{}, internal("balance", err)
	}
	return model.NewBalance(d.FinalPrice, d.TotalPaid, d.ServiceCharges), nil
}

func (s *LedgerService) Payments(ctx context.Context, reservationID uuid.UUID) ([]model.Payment, error) {
	out, err := s.payments.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, internal("list payments", err)
	}
	return out, nil
}

func (s *LedgerService) ServiceCharges(ctx context.Context, reservationID uuid.UUID) ([]model.ServiceCharge, error) {
	out, err := s.charges.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, internal("list service charges", err)
	}
	return out, nil
}
