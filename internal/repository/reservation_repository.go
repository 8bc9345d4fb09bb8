package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationRepo provides persistence for reservations.  Reads that feed
// a state transition go through the ...Tx variants, which lock the row
// with FOR UPDATE so the guard check and the write observe the same state.
// Stay dates are DATE columns; all timestamps are UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `r.id, r.user_id, r.room_type_id, r.check_in_date, r.check_out_date, r.num_guests,
	r.status, r.checkin_status, r.total_price, r.discount_amount, r.final_price,
	r.has_credit_card, r.credit_card_last4, r.is_walk_in, r.is_travel_company, r.travel_company_id,
	r.is_residential, r.residential_duration, r.special_requests, r.created_at, r.updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanReservation scans reservationColumns followed by any extra
// destinations and rebuilds the lifecycle from the two status columns.
func scanReservation(row rowScanner, res *model.Reservation, extra ...any) error {
	var (
		status, checkin string
		last4, duration sql.NullString
		requests        sql.NullString
	)
	dest := []any{
		&res.ID, &res.UserID, &res.RoomTypeID, &res.CheckInDate, &res.CheckOutDate, &res.NumGuests,
		&status, &checkin, &res.TotalPrice, &res.DiscountAmount, &res.FinalPrice,
		&res.HasCreditCard, &last4, &res.IsWalkIn, &res.IsTravelCompany, &res.TravelCompanyID,
		&res.IsResidential, &duration, &requests, &res.CreatedAt, &res.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	state, err := model.RestoreLifecycle(status, checkin)
	if err != nil {
		return fmt.Errorf("reservation %s: %w", res.ID, err)
	}
	res.State = state
	res.CreditCardLast4 = nullString(last4)
	res.SpecialRequests = nullString(requests)
	res.ResidentialDuration = nil
	if duration.Valid {
		d, err := model.ParseResidentialDuration(duration.String)
		if err != nil {
			return fmt.Errorf("reservation %s: %w", res.ID, err)
		}
		res.ResidentialDuration = &d
	}
	return nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func durationValue(d *model.ResidentialDuration) any {
	if d == nil {
		return nil
	}
	return string(*d)
}

// CreateTx inserts a new reservation within the scope of an existing
// transaction.  The caller assigns the ID and timestamps.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (
		id, user_id, room_type_id, check_in_date, check_out_date, num_guests,
		status, checkin_status, total_price, discount_amount, final_price,
		has_credit_card, credit_card_last4, is_walk_in, is_travel_company, travel_company_id,
		is_residential, residential_duration, special_requests, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q,
		res.ID, res.UserID, res.RoomTypeID, res.CheckInDate, res.CheckOutDate, res.NumGuests,
		string(res.State.Status()), string(res.State.CheckinStatus()), res.TotalPrice, res.DiscountAmount, res.FinalPrice,
		res.HasCreditCard, res.CreditCardLast4, res.IsWalkIn, res.IsTravelCompany, res.TravelCompanyID,
		res.IsResidential, durationValue(res.ResidentialDuration), res.SpecialRequests, res.CreatedAt, res.UpdatedAt,
	)
	return err
}

// GetForUpdateTx loads and locks a reservation row.  It returns
// ErrNotFound when no row matches.
func (r *ReservationRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = ? FOR UPDATE`
	var res model.Reservation
	if err := scanReservation(tx.QueryRowContext(ctx, q, id), &res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// UpdateTx persists every mutable column of the reservation, including
// both lifecycle axes.  The row is expected to be locked by GetForUpdateTx.
func (r *ReservationRepo) UpdateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `UPDATE reservations SET
		check_out_date = ?, num_guests = ?, status = ?, checkin_status = ?,
		total_price = ?, discount_amount = ?, final_price = ?,
		has_credit_card = ?, credit_card_last4 = ?, special_requests = ?, updated_at = ?
		WHERE id = ?`
	_, err := tx.ExecContext(ctx, q,
		res.CheckOutDate, res.NumGuests, string(res.State.Status()), string(res.State.CheckinStatus()),
		res.TotalPrice, res.DiscountAmount, res.FinalPrice,
		res.HasCreditCard, res.CreditCardLast4, res.SpecialRequests, res.UpdatedAt,
		res.ID,
	)
	return err
}

// CountAvailableRoomsTx counts rooms of the given type that are available
// and not assigned to another confirmed or checked-in reservation whose
// stay intersects [checkIn, checkOut).  The three OR branches cover a
// stay that contains checkIn, one that contains checkOut and one that is
// contained in the requested range.
func (r *ReservationRepo) CountAvailableRoomsTx(ctx context.Context, tx *sql.Tx, roomTypeID uuid.UUID, checkIn, checkOut time.Time) (int, error) {
	const q = `SELECT COUNT(*)
		FROM rooms rm
		WHERE rm.room_type_id = ?
		  AND rm.status = 'available'
		  AND rm.id NOT IN (
			SELECT ra.room_id
			FROM room_assignments ra
			JOIN reservations res ON res.id = ra.reservation_id
			WHERE res.room_type_id = ?
			  AND (res.status = 'confirmed' OR res.checkin_status = 'checked_in')
			  AND (
				(res.check_in_date <= ? AND res.check_out_date > ?)
				OR (res.check_in_date < ? AND res.check_out_date >= ?)
				OR (res.check_in_date >= ? AND res.check_out_date <= ?)
			  )
		  )`
	var n int
	err := tx.QueryRowContext(ctx, q,
		roomTypeID, roomTypeID,
		checkIn, checkIn,
		checkOut, checkOut,
		checkIn, checkOut,
	).Scan(&n)
	return n, err
}

const reservationDetailSelect = `SELECT ` + reservationColumns + `,
		u.name, u.email, rt.type_name, ra.room_id, rm.room_number,
		COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.reservation_id = r.id AND p.status = 'completed'), 0),
		COALESCE((SELECT SUM(sc.amount) FROM service_charges sc WHERE sc.reservation_id = r.id), 0)
	FROM reservations r
	JOIN users u ON u.id = r.user_id
	JOIN room_types rt ON rt.id = r.room_type_id
	LEFT JOIN room_assignments ra ON ra.reservation_id = r.id
	LEFT JOIN rooms rm ON rm.id = ra.room_id`

func scanReservationDetail(row rowScanner) (model.ReservationDetail, error) {
	var (
		d          model.ReservationDetail
		roomNumber sql.NullString
	)
	err := scanReservation(row, &d.Reservation,
		&d.GuestName, &d.GuestEmail, &d.RoomTypeName, &d.RoomID, &roomNumber,
		&d.TotalPaid, &d.ServiceCharges,
	)
	if err != nil {
		return d, err
	}
	d.RoomNumber = nullString(roomNumber)
	return d, nil
}

// GetDetail returns the reservation joined with guest, room type, assigned
// room and ledger totals.  It returns ErrNotFound when no row matches.
func (r *ReservationRepo) GetDetail(ctx context.Context, id uuid.UUID) (*model.ReservationDetail, error) {
	d, err := scanReservationDetail(r.db.QueryRowContext(ctx, reservationDetailSelect+` WHERE r.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// reservationSortColumns is the allow-list for ReservationFilter.SortBy.
var reservationSortColumns = []string{"created_at", "check_in_date", "check_out_date", "final_price", "status"}

// ListDetails returns reservation details matching the filter.
func (r *ReservationRepo) ListDetails(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetail, error) {
	where := []string{}
	args := []any{}

	if f.UserID != nil {
		where = append(where, "r.user_id = ?")
		args = append(args, *f.UserID)
	}
	if f.RoomTypeID != nil {
		where = append(where, "r.room_type_id = ?")
		args = append(args, *f.RoomTypeID)
	}
	if f.Status != nil {
		where = append(where, "r.status = ?")
		args = append(args, string(*f.Status))
	}
	if f.CheckinStatus != nil {
		where = append(where, "r.checkin_status = ?")
		args = append(args, string(*f.CheckinStatus))
	}
	if f.From != nil {
		where = append(where, "r.check_in_date >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		where = append(where, "r.check_out_date <= ?")
		args = append(args, *f.To)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	col, err := database.QuoteIdent(sortBy, reservationSortColumns...)
	if err != nil {
		return nil, fmt.Errorf("sort by %q: %w", sortBy, err)
	}
	dir := "ASC"
	if f.Descending {
		dir = "DESC"
	}

	q := reservationDetailSelect + ` WHERE ` + cond + ` ORDER BY r.` + col + ` ` + dir
	if f.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ReservationDetail{}
	for rows.Next() {
		d, err := scanReservationDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListAutoCancelCandidates returns pending reservations without a card
// that check in on day and were created before createdBefore.
func (r *ReservationRepo) ListAutoCancelCandidates(ctx context.Context, day, createdBefore time.Time) ([]uuid.UUID, error) {
	const q = `SELECT id FROM reservations
		WHERE status = 'pending'
		  AND has_credit_card = FALSE
		  AND check_in_date = ?
		  AND created_at < ?
		ORDER BY created_at`
	return r.queryIDs(ctx, q, day, createdBefore)
}

// ListNoShowCandidates returns pending, never checked-in reservations whose
// check-in date is on or before lastCheckInDate.
func (r *ReservationRepo) ListNoShowCandidates(ctx context.Context, lastCheckInDate time.Time) ([]uuid.UUID, error) {
	const q = `SELECT id FROM reservations
		WHERE status = 'pending'
		  AND checkin_status = 'not_checked_in'
		  AND check_in_date <= ?
		ORDER BY check_in_date, created_at`
	return r.queryIDs(ctx, q, lastCheckInDate)
}

func (r *ReservationRepo) queryIDs(ctx context.Context, q string, args ...any) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
