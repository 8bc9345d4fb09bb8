package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// AssignmentRepo persists room_assignments.  Both reservation_id and
// room_id carry unique keys, so the store itself rejects a second
// assignment for either side.
type AssignmentRepo struct{ db *sql.DB }

func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{db: db} }

const assignmentColumns = `id, reservation_id, room_id, assigned_by, assigned_at`

func (r *AssignmentRepo) getTx(ctx context.Context, tx *sql.Tx, col string, id uuid.UUID) (*model.RoomAssignment, error) {
	var a model.RoomAssignment
	q := `SELECT ` + assignmentColumns + ` FROM room_assignments WHERE ` + col + ` = ? FOR UPDATE`
	err := tx.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.ReservationID, &a.RoomID, &a.AssignedBy, &a.AssignedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetByRoomTx returns the active assignment of a room or ErrNotFound.
func (r *AssignmentRepo) GetByRoomTx(ctx context.Context, tx *sql.Tx, roomID uuid.UUID) (*model.RoomAssignment, error) {
	return r.getTx(ctx, tx, "room_id", roomID)
}

// GetByReservationTx returns the assignment of a reservation or ErrNotFound.
func (r *AssignmentRepo) GetByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (*model.RoomAssignment, error) {
	return r.getTx(ctx, tx, "reservation_id", reservationID)
}

// CreateTx inserts an assignment.  A unique key violation yields ErrDuplicate.
func (r *AssignmentRepo) CreateTx(ctx context.Context, tx *sql.Tx, a *model.RoomAssignment) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO room_assignments (`+assignmentColumns+`) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.ReservationID, a.RoomID, a.AssignedBy, a.AssignedAt)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// DeleteByReservationTx removes the assignment of a reservation and
// reports how many rows were deleted.
func (r *AssignmentRepo) DeleteByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) (int64, error) {
	res, err := tx.ExecContext(ctx, `DELETE FROM room_assignments WHERE reservation_id = ?`, reservationID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
