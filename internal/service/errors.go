package service

import (
	"errors"
	"fmt"
	"log"
)

// Code is a stable identifier for a failed operation.  Callers map codes to
// user-facing text and transport statuses; the services never format
// user-facing messages.
type Code string

const (
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"

	CodeInvalidCheckinDate    Code = "INVALID_CHECKIN_DATE"
	CodeInvalidCheckoutDate   Code = "INVALID_CHECKOUT_DATE"
	CodeInvalidGuestCount     Code = "INVALID_GUEST_COUNT"
	CodeGuestNotFound         Code = "GUEST_NOT_FOUND"
	CodeRoomTypeNotFound      Code = "ROOM_TYPE_NOT_FOUND"
	CodeNoRoomsAvailable      Code = "NO_ROOMS_AVAILABLE"
	CodeReservationNotFound   Code = "RESERVATION_NOT_FOUND"
	CodeInvalidStatusUpdate   Code = "INVALID_STATUS_FOR_UPDATE"
	CodeStatusCheckinCombo    Code = "INVALID_STATUS_CHECKIN_COMBINATION"
	CodeCheckinNotUpdatable   Code = "CHECKIN_STATUS_NOT_UPDATABLE"
	CodeInvalidTransition     Code = "INVALID_STATUS_TRANSITION"
	CodeNoUpdates             Code = "NO_UPDATES"
	CodeAlreadyCancelled      Code = "ALREADY_CANCELLED"
	CodeCannotCancelCheckedIn Code = "CANNOT_CANCEL_CHECKED_IN"

	CodeAlreadyCheckedIn        Code = "ALREADY_CHECKED_IN"
	CodeReservationNotConfirmed Code = "RESERVATION_NOT_CONFIRMED"
	CodeRoomNotFound            Code = "ROOM_NOT_FOUND"
	CodeRoomNotAvailable        Code = "ROOM_NOT_AVAILABLE"
	CodeRoomTypeMismatch        Code = "ROOM_TYPE_MISMATCH"
	CodeRoomAlreadyAssigned     Code = "ROOM_ALREADY_ASSIGNED"
	CodeInvalidStatusCheckout   Code = "INVALID_STATUS_FOR_CHECKOUT"
	CodeInvalidStatusCharges    Code = "INVALID_STATUS_FOR_CHARGES"
	CodeInvalidRoomStatus       Code = "INVALID_ROOM_STATUS"
	CodeRoomOccupied            Code = "ROOM_OCCUPIED"
	CodeRoomNumberExists        Code = "ROOM_NUMBER_EXISTS"
	CodeEmailExists             Code = "EMAIL_ALREADY_EXISTS"

	CodeInvalidStatusPayment  Code = "INVALID_STATUS_FOR_PAYMENT"
	CodeInvalidPaymentMethod  Code = "INVALID_PAYMENT_METHOD"
	CodeInvalidAmount         Code = "INVALID_AMOUNT"
	CodeCreditLimitExceeded   Code = "CREDIT_LIMIT_EXCEEDED"
	CodeTravelCompanyNotFound Code = "TRAVEL_COMPANY_NOT_FOUND"
	CodePaymentNotFound       Code = "PAYMENT_NOT_FOUND"
	CodeInvalidPaymentStatus  Code = "INVALID_PAYMENT_STATUS"
	CodeInvalidRefundAmount   Code = "INVALID_REFUND_AMOUNT"

	CodeReportExists Code = "REPORT_ALREADY_EXISTS"
)

// Error is the failure half of every service result.  Expected business
// rule violations are returned as *Error; anything else is an internal
// fault.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return string(e.Code) + ": " + e.Message }

func fail(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code carried by err, or INTERNAL_ERROR for errors that
// are not service errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// AsError converts any error into a service error, mapping unknown faults to
// INTERNAL_ERROR with a generic message.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeInternal, Message: "internal error"}
}

// internal passes service errors through untouched and logs and wraps
// everything else.  Business failures are expected and never logged.
func internal(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	log.Printf("%s: %v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}
