package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// RoomService binds reservations to physical rooms and manages the room
// inventory.  A room has at most one assignment and an assignment exists
// only while its guest is in house.
type RoomService struct {
	db          *sql.DB
	rooms       RoomStore
	assignments AssignmentStore
	clock       Clock
}

func NewRoomService(db *sql.DB, rooms RoomStore, assignments AssignmentStore, clock Clock) *RoomService {
	return &RoomService{db: db, rooms: rooms, assignments: assignments, clock: clock}
}

// RoomInput describes a room to create or the new state of an existing one.
type RoomInput struct {
	RoomNumber    string
	RoomTypeID    uuid.UUID
	Floor         *int
	IsResidential bool
}

func (s *RoomService) lockRoomTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Room, error) {
	rm, err := s.rooms.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(CodeRoomNotFound, "room %s not found", id)
		}
		return nil, err
	}
	return rm, nil
}

// assignTx checks that roomID can host res, records the assignment and
// marks the room occupied.  The caller owns the transaction and has
// already locked res.
func (s *RoomService) assignTx(ctx context.Context, tx *sql.Tx, res *model.Reservation, roomID, actorID uuid.UUID) (*model.RoomAssignment, *model.Room, error) {
	rm, err := s.lockRoomTx(ctx, tx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if rm.Status != model.RoomAvailable {
		return nil, nil, fail(CodeRoomNotAvailable, "room %s is %s", rm.RoomNumber, rm.Status)
	}
	if rm.RoomTypeID != res.RoomTypeID {
		return nil, nil, fail(CodeRoomTypeMismatch, "room %s is not of the reserved type", rm.RoomNumber)
	}
	if _, err := s.assignments.GetByRoomTx(ctx, tx, rm.ID); err == nil {
		return nil, nil, fail(CodeRoomAlreadyAssigned, "room %s is already assigned", rm.RoomNumber)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}

	a := &model.RoomAssignment{
		ID:            uuid.New(),
		ReservationID: res.ID,
		RoomID:        rm.ID,
		AssignedBy:    actorID,
		AssignedAt:    s.clock.Now().UTC(),
	}
	if err := s.assignments.CreateTx(ctx, tx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, nil, fail(CodeRoomAlreadyAssigned, "room %s is already assigned", rm.RoomNumber)
		}
		return nil, nil, err
	}
	if err := s.rooms.UpdateStatusTx(ctx, tx, rm.ID, model.RoomOccupied); err != nil {
		return nil, nil, err
	}
	rm.Status = model.RoomOccupied
	return a, rm, nil
}

// releaseTx frees the room held by a reservation.  A reservation without an
// assignment is left alone.
func (s *RoomService) releaseTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (*model.Room, error) {
	a, err := s.assignments.GetByReservationTx(ctx, tx, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	rm, err := s.lockRoomTx(ctx, tx, a.RoomID)
	if err != nil {
		return nil, err
	}
	if err := s.rooms.UpdateStatusTx(ctx, tx, rm.ID, model.RoomAvailable); err != nil {
		return nil, err
	}
	if _, err := s.assignments.DeleteByReservationTx(ctx, tx, reservationID); err != nil {
		return nil, err
	}
	rm.Status = model.RoomAvailable
	return rm, nil
}

// MarkCleaned returns a room in cleaning to service.
func (s *RoomService) MarkCleaned(ctx context.Context, id uuid.UUID) (*model.Room, error) {
	return s.moveStatus(ctx, "mark room cleaned", id, func(rm *model.Room) (model.RoomStatus, error) {
		if rm.Status != model.RoomCleaning {
			return "", fail(CodeInvalidRoomStatus, "room %s is %s, not cleaning", rm.RoomNumber, rm.Status)
		}
		return model.RoomAvailable, nil
	})
}

// SetMaintenance takes a room out of service or puts it back.  Occupied
// rooms cannot be taken out of service.
func (s *RoomService) SetMaintenance(ctx context.Context, id uuid.UUID, on bool) (*model.Room, error) {
	return s.moveStatus(ctx, "set room maintenance", id, func(rm *model.Room) (model.RoomStatus, error) {
		switch {
		case on && rm.Status == model.RoomOccupied:
			return "", fail(CodeRoomOccupied, "room %s is occupied", rm.RoomNumber)
		case on:
			return model.RoomMaintenance, nil
		case rm.Status != model.RoomMaintenance:
			return "", fail(CodeInvalidRoomStatus, "room %s is not under maintenance", rm.RoomNumber)
		}
		return model.RoomAvailable, nil
	})
}

func (s *RoomService) moveStatus(ctx context.Context, op string, id uuid.UUID, next func(*model.Room) (model.RoomStatus, error)) (*model.Room, error) {
	var rm *model.Room
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		if rm, err = s.lockRoomTx(ctx, tx, id); err != nil {
			return err
		}
		st, err := next(rm)
		if err != nil {
			return err
		}
		if err := s.rooms.UpdateStatusTx(ctx, tx, rm.ID, st); err != nil {
			return err
		}
		rm.Status = st
		return nil
	})
	if err != nil {
		return nil, internal(op, err)
	}
	return rm, nil
}

// ListRooms returns rooms with their type, optionally filtered.
func (s *RoomService) ListRooms(ctx context.Context, f model.RoomFilter) ([]model.RoomWithType, error) {
	out, err := s.rooms.List(ctx, f)
	if err != nil {
		return nil, internal("list rooms", err)
	}
	return out, nil
}

// ListAvailable returns rooms ready for a guest, optionally of one type.
func (s *RoomService) ListAvailable(ctx context.Context, roomTypeID *uuid.UUID) ([]model.RoomWithType, error) {
	st := model.RoomAvailable
	return s.ListRooms(ctx, model.RoomFilter{RoomTypeID: roomTypeID, Status: &st})
}

// CreateRoom adds a room to the inventory in the available state.
func (s *RoomService) CreateRoom(ctx context.Context, in RoomInput) (*model.Room, error) {
	now := s.clock.Now().UTC()
	rm := &model.Room{
		ID:            uuid.New(),
		RoomNumber:    in.RoomNumber,
		RoomTypeID:    in.RoomTypeID,
		Status:        model.RoomAvailable,
		Floor:         in.Floor,
		IsResidential: in.IsResidential,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.requireRoomTypeTx(ctx, tx, in.RoomTypeID); err != nil {
			return err
		}
		if err := s.rooms.CreateTx(ctx, tx, rm); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return fail(CodeRoomNumberExists, "room number %s already exists", in.RoomNumber)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, internal("create room", err)
	}
	return rm, nil
}

// UpdateRoom rewrites a room's number, type, floor and residential flag.
// An occupied room keeps its type.
func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, in RoomInput) (*model.Room, error) {
	var rm *model.Room
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		if rm, err = s.lockRoomTx(ctx, tx, id); err != nil {
			return err
		}
		if in.RoomTypeID != rm.RoomTypeID {
			if rm.Status == model.RoomOccupied {
				return fail(CodeRoomOccupied, "room %s is occupied", rm.RoomNumber)
			}
			if err := s.requireRoomTypeTx(ctx, tx, in.RoomTypeID); err != nil {
				return err
			}
		}
		rm.RoomNumber = in.RoomNumber
		rm.RoomTypeID = in.RoomTypeID
		rm.Floor = in.Floor
		rm.IsResidential = in.IsResidential
		rm.UpdatedAt = s.clock.Now().UTC()
		if err := s.rooms.UpdateTx(ctx, tx, rm); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return fail(CodeRoomNumberExists, "room number %s already exists", in.RoomNumber)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, internal("update room", err)
	}
	return rm, nil
}

// DeleteRoom removes a room that is neither occupied nor assigned.
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		rm, err := s.lockRoomTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if rm.Status == model.RoomOccupied {
			return fail(CodeRoomOccupied, "room %s is occupied", rm.RoomNumber)
		}
		if _, err := s.assignments.GetByRoomTx(ctx, tx, rm.ID); err == nil {
			return fail(CodeRoomOccupied, "room %s has an active assignment", rm.RoomNumber)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := s.rooms.DeleteTx(ctx, tx, rm.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fail(CodeRoomNotFound, "room %s not found", id)
			}
			return err
		}
		return nil
	})
	return internalOrNil("delete room", err)
}

func (s *RoomService) requireRoomTypeTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	if _, err := s.rooms.GetRoomTypeTx(ctx, tx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(CodeRoomTypeNotFound, "room type %s not found", id)
		}
		return err
	}
	return nil
}

func internalOrNil(op string, err error) error {
	if err == nil {
		return nil
	}
	return internal(op, err)
}
