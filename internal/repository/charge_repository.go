package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ChargeRepo persists service charges raised during a stay.
type ChargeRepo struct{ db *sql.DB }

func NewChargeRepo(db *sql.DB) *ChargeRepo { return &ChargeRepo{db: db} }

const chargeColumns = `id, reservation_id, service_type, description, amount, charged_at, charged_by, is_paid`

// CreateTx inserts a service charge.
func (r *ChargeRepo) CreateTx(ctx context.Context, tx *sql.Tx, c *model.ServiceCharge) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO service_charges (`+chargeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ReservationID, string(c.ServiceType), c.Description, c.Amount, c.ChargedAt, c.ChargedBy, c.IsPaid)
	return err
}

// SumTx totals every service charge of a reservation.
func (r *ChargeRepo) SumTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM service_charges WHERE reservation_id = ?`, reservationID).Scan(&sum)
	return sum, err
}

// ListByReservation returns the charges of a reservation in the order they
// were raised.
func (r *ChargeRepo) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]model.ServiceCharge, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+chargeColumns+` FROM service_charges WHERE reservation_id = ? ORDER BY charged_at`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.ServiceCharge{}
	for rows.Next() {
		var (
			c  model.ServiceCharge
			st string
		)
		if err := rows.Scan(&c.ID, &c.ReservationID, &st, &c.Description, &c.Amount, &c.ChargedAt, &c.ChargedBy, &c.IsPaid); err != nil {
			return nil, err
		}
		if c.ServiceType, err = model.ParseServiceType(st); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
