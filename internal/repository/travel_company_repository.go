package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// TravelCompanyRepo reads and debits corporate credit accounts.
type TravelCompanyRepo struct{ db *sql.DB }

func NewTravelCompanyRepo(db *sql.DB) *TravelCompanyRepo { return &TravelCompanyRepo{db: db} }

// GetForUpdateTx loads and locks a company row so the credit check and the
// balance increment see the same balance.
func (r *TravelCompanyRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.TravelCompany, error) {
	var c model.TravelCompany
	err := tx.QueryRowContext(ctx,
		`SELECT id, company_name, email, discount_rate, credit_limit, current_balance
		 FROM travel_companies WHERE id = ? FOR UPDATE`, id).
		Scan(&c.ID, &c.CompanyName, &c.Email, &c.DiscountRate, &c.CreditLimit, &c.CurrentBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// AddBalanceTx increments current_balance by amount.
func (r *TravelCompanyRepo) AddBalanceTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, amount decimal.Decimal) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE travel_companies SET current_balance = current_balance + ? WHERE id = ?`, amount, id)
	return err
}
