package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// BillingRepo persists hotel-initiated charges such as no-show fees.
type BillingRepo struct{ db *sql.DB }

func NewBillingRepo(db *sql.DB) *BillingRepo { return &BillingRepo{db: db} }

// CreateTx inserts a billing record.
func (r *BillingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.BillingRecord) error {
	const q = `INSERT INTO billing_records (id, reservation_id, billing_type, amount, description, billed_at, billed_by, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q,
		b.ID, b.ReservationID, string(b.BillingType), b.Amount, b.Description, b.BilledAt, b.BilledBy, string(b.Status))
	return err
}

// ListByType returns billing records of one type joined with the guest and
// stay dates, newest first.
func (r *BillingRepo) ListByType(ctx context.Context, t model.BillingType) ([]model.BillingRecordDetail, error) {
	const q = `SELECT br.id, br.reservation_id, br.billing_type, br.amount, br.description, br.billed_at, br.billed_by, br.status,
			u.name, u.email, r.check_in_date, r.check_out_date
		FROM billing_records br
		JOIN reservations r ON r.id = br.reservation_id
		JOIN users u ON u.id = r.user_id
		WHERE br.billing_type = ?
		ORDER BY br.billed_at DESC`
	rows, err := r.db.QueryContext(ctx, q, string(t))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.BillingRecordDetail{}
	for rows.Next() {
		var (
			d                  model.BillingRecordDetail
			billingType, state string
			desc               sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.ReservationID, &billingType, &d.Amount, &desc, &d.BilledAt, &d.BilledBy, &state,
			&d.GuestName, &d.GuestEmail, &d.CheckInDate, &d.CheckOutDate); err != nil {
			return nil, err
		}
		d.BillingType = model.BillingType(billingType)
		d.Status = model.BillingStatus(state)
		d.Description = nullString(desc)
		out = append(out, d)
	}
	return out, rows.Err()
}
