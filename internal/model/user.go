package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role is the principal's role as carried in the access token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleClerk    Role = "clerk"
	RoleManager  Role = "manager"
	RoleTravel   Role = "travel"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleClerk, RoleManager, RoleTravel:
		return r, nil
	}
	return "", fmt.Errorf("%w: role %q", ErrUnknownValue, s)
}

// User represents a row of the `users` table.  Guests, staff and
// travel-company agents share the table and are told apart by Role.
// Walk-in guests are created without a password, so PasswordHash is
// nullable.
//
// Fields:
//  ID               – primary key identifier (UUID).
//  Name             – display name.
//  Email            – unique email address.
//  PasswordHash     – bcrypt hash; nil for walk-in guests.
//  Role             – customer, clerk, manager or travel.
//  LoyaltyProgramID – tier granting a percentage discount.
//  TravelCompanyID  – company an agent books for.
type User struct {
	ID               uuid.UUID     // users.id
	Name             string        // users.name
	Email            string        // users.email
	PasswordHash     *string       // users.password_hash (nullable)
	Role             Role          // users.role
	Phone            *string       // users.phone (nullable)
	Address          *string       // users.address (nullable)
	LoyaltyPoints    int           // users.loyalty_points
	LoyaltyProgramID uuid.NullUUID // users.loyalty_program_id (nullable)
	TravelCompanyID  uuid.NullUUID // users.travel_company_id (nullable)
	IsActive         bool          // users.is_active
	CreatedAt        time.Time     // users.created_at
	UpdatedAt        time.Time     // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA‑256 hash of the token value is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uuid.UUID  // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}

// LoyaltyProgram is a tier that grants a discount percentage.
type LoyaltyProgram struct {
	ID                 uuid.UUID
	TierName           string
	MinPoints          int
	DiscountPercentage decimal.Decimal
}

// TravelCompany is a corporate account billed on credit.
type TravelCompany struct {
	ID             uuid.UUID       // travel_companies.id
	CompanyName    string          // travel_companies.company_name
	Email          string          // travel_companies.email
	DiscountRate   decimal.Decimal // travel_companies.discount_rate
	CreditLimit    decimal.Decimal // travel_companies.credit_limit
	CurrentBalance decimal.Decimal // travel_companies.current_balance
}

// CanCharge reports whether amount fits under the remaining credit.
func (t *TravelCompany) CanCharge(amount decimal.Decimal) bool {
	return t.CurrentBalance.Add(amount).LessThanOrEqual(t.CreditLimit)
}
