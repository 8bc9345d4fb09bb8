package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

const userColumns = `id, name, email, password_hash, role, phone, address, loyalty_points,
	loyalty_program_id, travel_company_id, is_active, created_at, updated_at`

func scanUser(row rowScanner) (*model.User, error) {
	var (
		u              model.User
		hash           sql.NullString
		role           string
		phone, address sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &hash, &role, &phone, &address, &u.LoyaltyPoints,
		&u.LoyaltyProgramID, &u.TravelCompanyID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	r, err := model.ParseRole(role)
	if err != nil {
		return nil, err
	}
	u.Role = r
	u.PasswordHash = nullString(hash)
	u.Phone = nullString(phone)
	u.Address = nullString(address)
	return &u, nil
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// Create hashes the password, inserts the user and returns its ID.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, role model.Role, cost int) (uuid.UUID, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	now := time.Now().UTC()
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at) VALUES (?,?,?,?,?,?,?)",
		id, strings.TrimSpace(name), normalizeEmail(email), hash, string(role), now, now)
	if err != nil {
		if isDuplicate(err) {
			return uuid.Nil, ErrEmailExists
		}
		return uuid.Nil, err
	}
	return id, nil
}

// CreateGuestTx inserts a password-less guest record, as used for walk-ins.
func (r *UserRepo) CreateGuestTx(ctx context.Context, tx *sql.Tx, u *model.User) error {
	u.Email = normalizeEmail(u.Email)
	_, err := tx.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, phone, address, created_at, updated_at) VALUES (?,?,?,NULL,?,?,?,?,?)",
		u.ID, u.Name, u.Email, string(u.Role), u.Phone, u.Address, u.CreatedAt, u.UpdatedAt)
	if isDuplicate(err) {
		return ErrEmailExists
	}
	return err
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.get(r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", normalizeEmail(email)))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.get(r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// GetTx fetches a user inside a transaction.
func (r *UserRepo) GetTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.User, error) {
	return r.get(tx.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

func (r *UserRepo) get(row *sql.Row) (*model.User, error) {
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// LoyaltyDiscountTx returns the discount percentage of the user's loyalty
// tier, or zero when the user has none.
func (r *UserRepo) LoyaltyDiscountTx(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (decimal.Decimal, error) {
	var pct decimal.Decimal
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(lp.discount_percentage, 0)
		 FROM users u
		 LEFT JOIN loyalty_programs lp ON lp.id = u.loyalty_program_id
		 WHERE u.id = ?`, userID).Scan(&pct)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrNotFound
	}
	return pct, err
}
