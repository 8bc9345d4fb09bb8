package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReportRepo reads the figures behind the daily report and stores the
// resulting snapshots.  Timestamps are stored in UTC while a report day is
// a calendar day in the hotel's zone.
type ReportRepo struct {
	db  *sql.DB
	loc *time.Location
}

// NewReportRepo returns a ReportRepo.  A nil loc means UTC.
func NewReportRepo(db *sql.DB, loc *time.Location) *ReportRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportRepo{db: db, loc: loc}
}

// dayBounds returns the UTC instants at which day starts and ends in the
// hotel's zone.  Only the calendar date of day is used.
func (r *ReportRepo) dayBounds(day time.Time) (start, end time.Time) {
	y, m, d := day.Date()
	local := time.Date(y, m, d, 0, 0, 0, 0, r.loc)
	return local.UTC(), local.AddDate(0, 0, 1).UTC()
}

// CountRooms counts rooms that are not under maintenance.
func (r *ReportRepo) CountRooms(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms WHERE status != 'maintenance'`).Scan(&n)
	return n, err
}

// CountOccupied counts distinct rooms assigned to a stay that covers day.
func (r *ReportRepo) CountOccupied(ctx context.Context, day time.Time) (int, error) {
	const q = `SELECT COUNT(DISTINCT ra.room_id)
		FROM room_assignments ra
		JOIN reservations r ON r.id = ra.reservation_id
		WHERE r.check_in_date <= ? AND r.check_out_date > ?
		  AND r.checkin_status IN ('checked_in', 'checked_out')`
	var n int
	err := r.db.QueryRowContext(ctx, q, day, day).Scan(&n)
	return n, err
}

// SumRevenue totals completed payments dated day.
func (r *ReportRepo) SumRevenue(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	start, end := r.dayBounds(day)
	var sum decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE status = 'completed' AND payment_date >= ? AND payment_date < ?`,
		start, end).Scan(&sum)
	return sum, err
}

// Stats counts reservations created on day, broken down by state.
func (r *ReportRepo) Stats(ctx context.Context, day time.Time) (model.ReservationStats, error) {
	const q = `SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN checkin_status = 'checked_in' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN checkin_status = 'checked_out' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'no-show' THEN 1 ELSE 0 END), 0)
		FROM reservations
		WHERE created_at >= ? AND created_at < ?`
	start, end := r.dayBounds(day)
	var s model.ReservationStats
	err := r.db.QueryRowContext(ctx, q, start, end).Scan(&s.Total, &s.CheckIns, &s.CheckOuts, &s.Cancellations, &s.NoShows)
	return s, err
}

const reportColumns = `id, report_date, total_occupancy, total_rooms, occupancy_rate, total_revenue,
	total_reservations, total_check_ins, total_check_outs, total_cancellations, total_no_shows,
	generated_at, generated_by`

// Create inserts a report.  A second report for the same date yields
// ErrDuplicate.
func (r *ReportRepo) Create(ctx context.Context, d *model.DailyReport) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_reports (`+reportColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.ReportDate, d.TotalOccupancy, d.TotalRooms, d.OccupancyRate, d.TotalRevenue,
		d.TotalReservations, d.TotalCheckIns, d.TotalCheckOuts, d.TotalCancellations, d.TotalNoShows,
		d.GeneratedAt, d.GeneratedBy)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// ListRecent returns the newest reports first.
func (r *ReportRepo) ListRecent(ctx context.Context, limit int) ([]model.DailyReport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM daily_reports ORDER BY report_date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.DailyReport{}
	for rows.Next() {
		var d model.DailyReport
		if err := rows.Scan(&d.ID, &d.ReportDate, &d.TotalOccupancy, &d.TotalRooms, &d.OccupancyRate, &d.TotalRevenue,
			&d.TotalReservations, &d.TotalCheckIns, &d.TotalCheckOuts, &d.TotalCancellations, &d.TotalNoShows,
			&d.GeneratedAt, &d.GeneratedBy); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
