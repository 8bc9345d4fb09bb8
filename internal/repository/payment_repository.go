package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// PaymentRepo persists the payment ledger.  Rows are append-only; the only
// mutation is moving a completed row to refunded.
type PaymentRepo struct{ db *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

const paymentColumns = `id, reservation_id, amount, payment_date, payment_method, transaction_id, status, processed_by, notes`

func scanPayment(row rowScanner) (*model.Payment, error) {
	var (
		p              model.Payment
		method, status string
		txID, notes    sql.NullString
	)
	if err := row.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.PaymentDate, &method, &txID, &status, &p.ProcessedBy, &notes); err != nil {
		return nil, err
	}
	var err error
	if p.Method, err = model.ParsePaymentMethod(method); err != nil {
		return nil, err
	}
	if p.Status, err = model.ParsePaymentStatus(status); err != nil {
		return nil, err
	}
	p.TransactionID = nullString(txID)
	p.Notes = nullString(notes)
	return &p, nil
}

// CreateTx inserts a payment row.
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Payment) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO payments (`+paymentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ReservationID, p.Amount, p.PaymentDate, string(p.Method), p.TransactionID, string(p.Status), p.ProcessedBy, p.Notes)
	return err
}

// GetForUpdateTx loads and locks a payment.  It returns ErrNotFound when
// no row matches.
func (r *PaymentRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Payment, error) {
	p, err := scanPayment(tx.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = ? FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateStatusTx moves a payment to a new status.
func (r *PaymentRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, status model.PaymentStatus) error {
	_, err := tx.ExecContext(ctx, `UPDATE payments SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// SumCompletedTx totals the completed payments of a reservation.
func (r *PaymentRepo) SumCompletedTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE reservation_id = ? AND status = 'completed'`,
		reservationID).Scan(&sum)
	return sum, err
}

// ListByReservation returns the full payment history, newest first.
func (r *PaymentRepo) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE reservation_id = ? ORDER BY payment_date DESC`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
