package model

import "errors"

// ErrUnknownValue is returned by the Parse functions when a string does not
// name a member of the enumeration.
var ErrUnknownValue = errors.New("unknown enum value")

// Transition errors returned by Lifecycle.  Services translate them into
// stable error codes depending on the operation that attempted the move.
var (
	ErrAlreadyCancelled  = errors.New("reservation already cancelled")
	ErrStatusFinal       = errors.New("reservation status is final")
	ErrStatusRegression  = errors.New("reservation status cannot move back to pending")
	ErrAlreadyCheckedIn  = errors.New("reservation already checked in")
	ErrNotConfirmed      = errors.New("reservation not confirmed")
	ErrNotCheckedIn      = errors.New("reservation not checked in")
	ErrCheckinRegression = errors.New("checkin status cannot move backwards")
)
