package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// ReconcileConfig tunes the nightly tasks.
type ReconcileConfig struct {
	AutoCancelAfter time.Duration   // unpaid bookings older than this are cancelled on their check-in day
	NoShowWindow    time.Duration   // how long after the check-in date a pending guest becomes a no-show
	NoShowFeeRate   decimal.Decimal // fraction of final_price billed for a no-show
}

// DefaultReconcileConfig cancels after 12 hours, allows a one day check-in
// window and bills half the stay for a no-show.
func DefaultReconcileConfig() ReconcileConfig {
	return ReconcileConfig{
		AutoCancelAfter: 12 * time.Hour,
		NoShowWindow:    24 * time.Hour,
		NoShowFeeRate:   decimal.RequireFromString("0.5"),
	}
}

// TaskError is a failure recorded by a nightly task without aborting it.
// ReservationID is uuid.Nil for failures not tied to one reservation.
type TaskError struct {
	ReservationID uuid.UUID
	Code          Code
	Message       string
}

// TaskResult is the independent outcome of one nightly task.
type TaskResult struct {
	Task      string
	Success   bool
	Message   string
	Processed []uuid.UUID
	Errors    []TaskError
}

// ReportResult is the outcome of the daily report task.
type ReportResult struct {
	TaskResult
	Report *model.DailyReport
}

// NightlyResult holds the three task outcomes of one run.
type NightlyResult struct {
	StartedAt   time.Time
	AutoCancel  TaskResult
	NoShow      TaskResult
	DailyReport ReportResult
}

// Reconciler runs the nightly batch.  Each task works record by record in
// its own transaction, re-checking the selection guard under the row lock,
// and collects per-record failures instead of stopping.
type Reconciler struct {
	db           *sql.DB
	reservations ReservationStore
	billing      BillingStore
	reports      ReportStore
	clock        Clock
	events       EventPublisher
	cfg          ReconcileConfig
}

func NewReconciler(db *sql.DB, reservations ReservationStore, billing BillingStore, reports ReportStore, clock Clock, events EventPublisher, cfg ReconcileConfig) *Reconciler {
	return &Reconciler{db: db, reservations: reservations, billing: billing, reports: reports, clock: clock, events: events, cfg: cfg}
}

// RunNightly runs auto-cancel, no-show billing and the daily report in that
// order.  Every task runs regardless of how the previous one went.
func (r *Reconciler) RunNightly(ctx context.Context) NightlyResult {
	out := NightlyResult{StartedAt: r.clock.Now()}
	out.AutoCancel = r.AutoCancel(ctx)
	out.NoShow = r.BillNoShows(ctx)
	out.DailyReport = r.GenerateDailyReport(ctx)

	msg := fmt.Sprintf("auto-cancel: %s; no-show: %s; daily report: %s",
		out.AutoCancel.Message, out.NoShow.Message, out.DailyReport.Message)
	log.Printf("nightly: %s", msg)
	publish(ctx, r.events, queue.ReservationEvent{Type: queue.EventNightlyCompleted, Message: msg, OccurredAt: r.clock.Now().UTC()})
	return out
}

// AutoCancel cancels today's pending bookings without a card that were
// made more than AutoCancelAfter ago.
func (r *Reconciler) AutoCancel(ctx context.Context) TaskResult {
	out := TaskResult{Task: "auto_cancel"}
	now := r.clock.Now()
	day := dateOf(now)
	cutoff := now.Add(-r.cfg.AutoCancelAfter).UTC()

	ids, err := r.reservations.ListAutoCancelCandidates(ctx, day, cutoff)
	if err != nil {
		log.Printf("nightly auto-cancel: list candidates: %v", err)
		out.Message = "failed to list candidates"
		out.Errors = append(out.Errors, TaskError{Code: CodeInternal, Message: err.Error()})
		return out
	}

	for _, id := range ids {
		var res *model.Reservation
		err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
			var err error
			if res, err = lockReservationTx(ctx, tx, r.reservations, id); err != nil {
				return err
			}
			if res.State.Status() != model.StatusPending || res.HasCreditCard ||
				!res.CheckInDate.Equal(day) || !res.CreatedAt.Before(cutoff) {
				res = nil
				return nil
			}
			if err := res.State.TransitionStatus(model.StatusCancelled); err != nil {
				return transitionError(err)
			}
			res.UpdatedAt = now.UTC()
			return r.reservations.UpdateTx(ctx, tx, res)
		})
		if err != nil {
			out.Errors = append(out.Errors, recordError(id, err))
			continue
		}
		if res != nil {
			out.Processed = append(out.Processed, id)
			ev := reservationEvent(queue.EventReservationCancelled, res, res.UpdatedAt)
			ev.Message = "unpaid booking auto-cancelled"
			publish(ctx, r.events, ev)
		}
	}
	out.Success = true
	out.Message = fmt.Sprintf("cancelled %d of %d candidate(s)", len(out.Processed), len(ids))
	return out
}

// BillNoShows marks pending guests whose check-in window has elapsed as
// no-shows and bills each a fee of NoShowFeeRate × final_price.
func (r *Reconciler) BillNoShows(ctx context.Context) TaskResult {
	out := TaskResult{Task: "no_show"}
	now := r.clock.Now()
	lastCheckIn := dateOf(now.Add(-r.cfg.NoShowWindow))

	ids, err := r.reservations.ListNoShowCandidates(ctx, lastCheckIn)
	if err != nil {
		log.Printf("nightly no-show: list candidates: %v", err)
		out.Message = "failed to list candidates"
		out.Errors = append(out.Errors, TaskError{Code: CodeInternal, Message: err.Error()})
		return out
	}

	for _, id := range ids {
		var (
			res *model.Reservation
			fee decimal.Decimal
		)
		err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
			var err error
			if res, err = lockReservationTx(ctx, tx, r.reservations, id); err != nil {
				return err
			}
			if res.State.Status() != model.StatusPending ||
				res.State.CheckinStatus() != model.CheckinNotCheckedIn ||
				res.CheckInDate.After(lastCheckIn) {
				res = nil
				return nil
			}
			fee = res.FinalPrice.Mul(r.cfg.NoShowFeeRate).Round(2)
			desc := fmt.Sprintf("No-show fee for reservation %s", res.ID)
			if err := r.billing.CreateTx(ctx, tx, &model.BillingRecord{
				ID:            uuid.New(),
				ReservationID: res.ID,
				BillingType:   model.BillingNoShow,
				Amount:        fee,
				Description:   &desc,
				BilledAt:      now.UTC(),
				Status:        model.BillingPending,
			}); err != nil {
				return err
			}
			if err := res.State.TransitionStatus(model.StatusNoShow); err != nil {
				return transitionError(err)
			}
			res.UpdatedAt = now.UTC()
			return r.reservations.UpdateTx(ctx, tx, res)
		})
		if err != nil {
			out.Errors = append(out.Errors, recordError(id, err))
			continue
		}
		if res != nil {
			out.Processed = append(out.Processed, id)
			ev := reservationEvent(queue.EventReservationNoShow, res, res.UpdatedAt)
			ev.Amount = amountPtr(fee)
			publish(ctx, r.events, ev)
		}
	}
	out.Success = true
	out.Message = fmt.Sprintf("billed %d of %d candidate(s)", len(out.Processed), len(ids))
	return out
}

// GenerateDailyReport snapshots occupancy, revenue and reservation counts
// for the previous calendar day.  Read failures are recorded and the
// affected figures left at zero; only a failed insert fails the task.
func (r *Reconciler) GenerateDailyReport(ctx context.Context) ReportResult {
	out := ReportResult{TaskResult: TaskResult{Task: "daily_report"}}
	now := r.clock.Now()
	day := dateOf(now).AddDate(0, 0, -1)
	step := func(name string, err error) {
		if err != nil {
			log.Printf("nightly report: %s: %v", name, err)
			out.Errors = append(out.Errors, TaskError{Code: CodeInternal, Message: name + ": " + err.Error()})
		}
	}

	rep := &model.DailyReport{
		ID:            uuid.New(),
		ReportDate:    day,
		OccupancyRate: decimal.Zero,
		TotalRevenue:  decimal.Zero,
		GeneratedAt:   now.UTC(),
	}
	var err error
	rep.TotalRooms, err = r.reports.CountRooms(ctx)
	step("count rooms", err)
	rep.TotalOccupancy, err = r.reports.CountOccupied(ctx, day)
	step("count occupied rooms", err)
	if rep.TotalRooms > 0 {
		rep.OccupancyRate = decimal.NewFromInt(int64(rep.TotalOccupancy)).
			Div(decimal.NewFromInt(int64(rep.TotalRooms))).Mul(hundred).Round(2)
	}
	if rev, err := r.reports.SumRevenue(ctx, day); err != nil {
		step("sum revenue", err)
	} else {
		rep.TotalRevenue = rev
	}
	stats, err := r.reports.Stats(ctx, day)
	step("reservation stats", err)
	rep.TotalReservations = stats.Total
	rep.TotalCheckIns = stats.CheckIns
	rep.TotalCheckOuts = stats.CheckOuts
	rep.TotalCancellations = stats.Cancellations
	rep.TotalNoShows = stats.NoShows

	if err := r.reports.Create(ctx, rep); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			out.Message = fmt.Sprintf("report for %s already exists", day.Format(time.DateOnly))
			out.Errors = append(out.Errors, TaskError{Code: CodeReportExists, Message: out.Message})
			return out
		}
		log.Printf("nightly report: insert: %v", err)
		out.Message = "failed to store report"
		out.Errors = append(out.Errors, TaskError{Code: CodeInternal, Message: err.Error()})
		return out
	}
	out.Success = true
	out.Report = rep
	out.Message = fmt.Sprintf("report for %s generated", day.Format(time.DateOnly))
	return out
}

// Reports returns the most recent daily reports.
func (r *Reconciler) Reports(ctx context.Context, limit int) ([]model.DailyReport, error) {
	if limit <= 0 || limit > 366 {
		limit = 30
	}
	out, err := r.reports.ListRecent(ctx, limit)
	if err != nil {
		return nil, internal("list reports", err)
	}
	return out, nil
}

// NoShowCharges returns the no-show billing records for managers.
func (r *Reconciler) NoShowCharges(ctx context.Context) ([]model.BillingRecordDetail, error) {
	out, err := r.billing.ListByType(ctx, model.BillingNoShow)
	if err != nil {
		return nil, internal("list no-show charges", err)
	}
	return out, nil
}

func recordError(id uuid.UUID, err error) TaskError {
	var se *Error
	if errors.As(err, &se) {
		return TaskError{ReservationID: id, Code: se.Code, Message: se.Message}
	}
	log.Printf("nightly: reservation %s: %v", id, err)
	return TaskError{ReservationID: id, Code: CodeInternal, Message: err.Error()}
}
