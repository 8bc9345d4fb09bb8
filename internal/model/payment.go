package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod names how a payment was settled.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentCreditCard    PaymentMethod = "credit_card"
	PaymentBankTransfer  PaymentMethod = "bank_transfer"
	PaymentTravelCompany PaymentMethod = "travel_company"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentCash, PaymentCreditCard, PaymentBankTransfer, PaymentTravelCompany:
		return m, nil
	}
	return "", fmt.Errorf("%w: payment method %q", ErrUnknownValue, s)
}

// PaymentStatus is the state of a ledger row.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return st, nil
	}
	return "", fmt.Errorf("%w: payment status %q", ErrUnknownValue, s)
}

// ServiceType classifies ad-hoc charges raised during a stay.
type ServiceType string

const (
	ServiceRestaurant  ServiceType = "restaurant"
	ServiceRoomService ServiceType = "room_service"
	ServiceLaundry     ServiceType = "laundry"
	ServiceTelephone   ServiceType = "telephone"
	ServiceClubAccess  ServiceType = "club_access"
	ServiceKeyIssuing  ServiceType = "key_issuing"
	ServiceOther       ServiceType = "other"
)

func ParseServiceType(s string) (ServiceType, error) {
	switch t := ServiceType(s); t {
	case ServiceRestaurant, ServiceRoomService, ServiceLaundry, ServiceTelephone,
		ServiceClubAccess, ServiceKeyIssuing, ServiceOther:
		return t, nil
	}
	return "", fmt.Errorf("%w: service type %q", ErrUnknownValue, s)
}

// BillingType classifies hotel-initiated charges.
type BillingType string

const (
	BillingNoShow           BillingType = "no_show"
	BillingLateCancellation BillingType = "late_cancellation"
	BillingDamage           BillingType = "damage"
	BillingOther            BillingType = "other"
)

// BillingStatus is the collection state of a billing record.
type BillingStatus string

const (
	BillingPending  BillingStatus = "pending"
	BillingPaid     BillingStatus = "paid"
	BillingDisputed BillingStatus = "disputed"
)

// Payment is one row of the payment ledger.  Refunds are stored as separate
// rows with a negative amount.
type Payment struct {
	ID            uuid.UUID       // payments.id
	ReservationID uuid.UUID       // payments.reservation_id
	Amount        decimal.Decimal // payments.amount (negative for refunds)
	PaymentDate   time.Time       // payments.payment_date
	Method        PaymentMethod   // payments.payment_method
	TransactionID *string         // payments.transaction_id (nullable)
	Status        PaymentStatus   // payments.status
	ProcessedBy   uuid.NullUUID   // payments.processed_by (nullable)
	Notes         *string         // payments.notes (nullable)
}

// ServiceCharge is an extra charged against a checked-in reservation.
type ServiceCharge struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ServiceType   ServiceType
	Description   string
	Amount        decimal.Decimal
	ChargedAt     time.Time
	ChargedBy     uuid.UUID
	IsPaid        bool
}

// BillingRecord is a hotel-initiated charge such as a no-show fee.  It is
// kept apart from Payment because it is owed, not received.
type BillingRecord struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	BillingType   BillingType
	Amount        decimal.Decimal
	Description   *string
	BilledAt      time.Time
	BilledBy      uuid.NullUUID
	Status        BillingStatus
}

// BillingRecordDetail adds guest and stay information for manager listings.
type BillingRecordDetail struct {
	BillingRecord
	GuestName    string
	GuestEmail   string
	CheckInDate  time.Time
	CheckOutDate time.Time
}

// Balance summarises the ledger of a single reservation.
type Balance struct {
	FinalPrice     decimal.Decimal
	TotalPaid      decimal.Decimal
	ServiceCharges decimal.Decimal
	Outstanding    decimal.Decimal
}

// OutstandingBalance computes final - paid + charges.
func OutstandingBalance(finalPrice, paid, charges decimal.Decimal) decimal.Decimal {
	return finalPrice.Sub(paid).Add(charges)
}

// NewBalance fills Outstanding from the other three figures.
func NewBalance(finalPrice, paid, charges decimal.Decimal) Balance {
	return Balance{
		FinalPrice:     finalPrice,
		TotalPaid:      paid,
		ServiceCharges: charges,
		Outstanding:    OutstandingBalance(finalPrice, paid, charges),
	}
}
