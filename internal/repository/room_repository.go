package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors is used to match sql.ErrNoRows
	"strings"      // strings joins dynamic WHERE clauses

	"github.com/google/uuid"        // uuid identifies rooms and room types
	"github.com/shopspring/decimal" // decimal carries prices

	"github.com/iliyamo/hotel-reservation/internal/model" // model defines room entities
)

// RoomRepo provides access to room types and physical rooms.  Room types
// are reference data; rooms carry a status that the front desk moves
// between available, occupied and cleaning.
type RoomRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomTypeColumns = `id, type_name, description, base_price, capacity, amenities, is_residential, weekly_rate, monthly_rate, created_at`

func scanRoomType(row rowScanner) (*model.RoomType, error) {
	var (
		rt            model.RoomType
		desc, amen    sql.NullString
		weekly, month decimal.NullDecimal
	)
	if err := row.Scan(&rt.ID, &rt.TypeName, &desc, &rt.BasePrice, &rt.Capacity, &amen,
		&rt.IsResidential, &weekly, &month, &rt.CreatedAt); err != nil {
		return nil, err
	}
	rt.Description = nullString(desc)
	rt.Amenities = nullString(amen)
	if weekly.Valid {
		w := weekly.Decimal
		rt.WeeklyRate = &w
	}
	if month.Valid {
		m := month.Decimal
		rt.MonthlyRate = &m
	}
	return &rt, nil
}

// GetRoomTypeTx reads a room type inside a transaction.  It returns
// ErrNotFound when no row matches.
func (r *RoomRepo) GetRoomTypeTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.RoomType, error) {
	rt, err := scanRoomType(tx.QueryRowContext(ctx, `SELECT `+roomTypeColumns+` FROM room_types WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}

// ListRoomTypes returns all room types ordered by base price.
func (r *RoomRepo) ListRoomTypes(ctx context.Context) ([]model.RoomType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roomTypeColumns+` FROM room_types ORDER BY base_price, type_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.RoomType{}
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rt)
	}
	return out, rows.Err()
}

const roomColumns = `rm.id, rm.room_number, rm.room_type_id, rm.status, rm.floor, rm.is_residential, rm.created_at, rm.updated_at`

func scanRoom(row rowScanner, extra ...any) (*model.Room, error) {
	var (
		rm     model.Room
		status string
		floor  sql.NullInt64
	)
	dest := []any{&rm.ID, &rm.RoomNumber, &rm.RoomTypeID, &status, &floor, &rm.IsResidential, &rm.CreatedAt, &rm.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	st, err := model.ParseRoomStatus(status)
	if err != nil {
		return nil, err
	}
	rm.Status = st
	if floor.Valid {
		f := int(floor.Int64)
		rm.Floor = &f
	}
	return &rm, nil
}

// GetForUpdateTx loads and locks a room.  It returns ErrNotFound when no
// row matches.
func (r *RoomRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Room, error) {
	rm, err := scanRoom(tx.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms rm WHERE rm.id = ? FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rm, nil
}

// FirstAvailableTx locks the lowest-numbered available room of a type
// that has no assignment.  It returns ErrNotFound when none is free.
func (r *RoomRepo) FirstAvailableTx(ctx context.Context, tx *sql.Tx, roomTypeID uuid.UUID) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms rm
		WHERE rm.room_type_id = ? AND rm.status = 'available'
		  AND rm.id NOT IN (SELECT room_id FROM room_assignments)
		ORDER BY rm.room_number
		LIMIT 1 FOR UPDATE`
	rm, err := scanRoom(tx.QueryRowContext(ctx, q, roomTypeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rm, nil
}

// UpdateStatusTx sets a room's status.
func (r *RoomRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, status model.RoomStatus) error {
	_, err := tx.ExecContext(ctx, `UPDATE rooms SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// List returns rooms joined with their type, optionally filtered.
func (r *RoomRepo) List(ctx context.Context, f model.RoomFilter) ([]model.RoomWithType, error) {
	where := []string{}
	args := []any{}
	if f.RoomTypeID != nil {
		where = append(where, "rm.room_type_id = ?")
		args = append(args, *f.RoomTypeID)
	}
	if f.Status != nil {
		where = append(where, "rm.status = ?")
		args = append(args, string(*f.Status))
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	q := `SELECT ` + roomColumns + `, rt.type_name, rt.base_price
		FROM rooms rm
		JOIN room_types rt ON rt.id = rm.room_type_id
		WHERE ` + cond + `
		ORDER BY rm.room_number`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.RoomWithType{}
	for rows.Next() {
		var rw model.RoomWithType
		rm, err := scanRoom(rows, &rw.TypeName, &rw.BasePrice)
		if err != nil {
			return nil, err
		}
		rw.Room = *rm
		out = append(out, rw)
	}
	return out, rows.Err()
}

// CreateTx inserts a room.  A duplicate room number yields ErrDuplicate.
func (r *RoomRepo) CreateTx(ctx context.Context, tx *sql.Tx, rm *model.Room) error {
	const q = `INSERT INTO rooms (id, room_number, room_type_id, status, floor, is_residential, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, rm.ID, rm.RoomNumber, rm.RoomTypeID, string(rm.Status), rm.Floor, rm.IsResidential, rm.CreatedAt, rm.UpdatedAt)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// UpdateTx rewrites the descriptive columns of a room.  Status changes go
// through UpdateStatusTx.
func (r *RoomRepo) UpdateTx(ctx context.Context, tx *sql.Tx, rm *model.Room) error {
	const q = `UPDATE rooms SET room_number = ?, room_type_id = ?, floor = ?, is_residential = ?, updated_at = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, rm.RoomNumber, rm.RoomTypeID, rm.Floor, rm.IsResidential, rm.UpdatedAt, rm.ID)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// DeleteTx removes a room.
func (r *RoomRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
