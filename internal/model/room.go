package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomStatus is the housekeeping/occupancy state of a physical room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
	RoomReserved    RoomStatus = "reserved"
)

// ParseRoomStatus converts a string into a RoomStatus.
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch st := RoomStatus(s); st {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomCleaning, RoomReserved:
		return st, nil
	}
	return "", fmt.Errorf("%w: room status %q", ErrUnknownValue, s)
}

// RoomType is read-mostly reference data describing a class of rooms and
// how it is priced.
//
// Fields:
//  BasePrice     – nightly rate.
//  Capacity      – maximum guests per room.
//  IsResidential – whether weekly/monthly flat-rate stays are offered.
//  WeeklyRate    – flat weekly rate; nil falls back to BasePrice×7.
//  MonthlyRate   – flat monthly rate; nil falls back to BasePrice×30.
type RoomType struct {
	ID            uuid.UUID        // room_types.id
	TypeName      string           // room_types.type_name
	Description   *string          // room_types.description (nullable)
	BasePrice     decimal.Decimal  // room_types.base_price
	Capacity      int              // room_types.capacity
	Amenities     *string          // room_types.amenities (nullable)
	IsResidential bool             // room_types.is_residential
	WeeklyRate    *decimal.Decimal // room_types.weekly_rate (nullable)
	MonthlyRate   *decimal.Decimal // room_types.monthly_rate (nullable)
	CreatedAt     time.Time        // room_types.created_at
}

// Room is a physical unit of a given room type.
type Room struct {
	ID            uuid.UUID  // rooms.id
	RoomNumber    string     // rooms.room_number
	RoomTypeID    uuid.UUID  // rooms.room_type_id
	Status        RoomStatus // rooms.status
	Floor         *int       // rooms.floor (nullable)
	IsResidential bool       // rooms.is_residential
	CreatedAt     time.Time  // rooms.created_at
	UpdatedAt     time.Time  // rooms.updated_at
}

// RoomWithType is a room joined with its type name and base price for
// listing screens.
type RoomWithType struct {
	Room
	TypeName  string
	BasePrice decimal.Decimal
}

// RoomFilter narrows room listings.
type RoomFilter struct {
	RoomTypeID *uuid.UUID
	Status     *RoomStatus
}

// RoomAssignment binds one reservation to one room while the guest is in
// house.  The row is deleted at check-out.
type RoomAssignment struct {
	ID            uuid.UUID // room_assignments.id
	ReservationID uuid.UUID // room_assignments.reservation_id
	RoomID        uuid.UUID // room_assignments.room_id
	AssignedBy    uuid.UUID // room_assignments.assigned_by
	AssignedAt    time.Time // room_assignments.assigned_at
}
