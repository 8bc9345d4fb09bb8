package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyReport is the immutable occupancy and revenue snapshot for one
// calendar date.  report_date is unique.
type DailyReport struct {
	ID                 uuid.UUID       // daily_reports.id
	ReportDate         time.Time       // daily_reports.report_date
	TotalOccupancy     int             // daily_reports.total_occupancy
	TotalRooms         int             // daily_reports.total_rooms
	OccupancyRate      decimal.Decimal // daily_reports.occupancy_rate (percent)
	TotalRevenue       decimal.Decimal // daily_reports.total_revenue
	TotalReservations  int             // daily_reports.total_reservations
	TotalCheckIns      int             // daily_reports.total_check_ins
	TotalCheckOuts     int             // daily_reports.total_check_outs
	TotalCancellations int             // daily_reports.total_cancellations
	TotalNoShows       int             // daily_reports.total_no_shows
	GeneratedAt        time.Time       // daily_reports.generated_at
	GeneratedBy        uuid.NullUUID   // daily_reports.generated_by (nullable)
}

// ReservationStats counts reservations created on a given date by state.
type ReservationStats struct {
	Total         int
	CheckIns      int
	CheckOuts     int
	Cancellations int
	NoShows       int
}
