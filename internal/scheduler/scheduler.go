// Package scheduler runs the nightly reconciliation at a fixed wall-clock
// time in the hotel's timezone.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// NightlyRunner is satisfied by *service.Reconciler.
type NightlyRunner interface {
	RunNightly(ctx context.Context) service.NightlyResult
}

// RunTimeout bounds a single nightly run.
const RunTimeout = 15 * time.Minute

type Scheduler struct {
	sched gocron.Scheduler
	job   gocron.Job
}

// New registers the nightly job.  Extra options are passed to
// gocron.NewScheduler after the location option.
func New(cfg config.NightlyConfig, runner NightlyRunner, opts ...gocron.SchedulerOption) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	sched, err := gocron.NewScheduler(append([]gocron.SchedulerOption{gocron.WithLocation(loc)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("new scheduler: %w", err)
	}
	job, err := sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(cfg.Hour, cfg.Minute, 0))),
		gocron.NewTask(run, runner),
		gocron.WithName("nightly-reconciliation"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("schedule nightly job: %w", err)
	}
	log.Printf("scheduler: nightly reconciliation daily at %02d:%02d %s", cfg.Hour, cfg.Minute, loc)
	return &Scheduler{sched: sched, job: job}, nil
}

func run(runner NightlyRunner) {
	ctx, cancel := context.WithTimeout(context.Background(), RunTimeout)
	defer cancel()
	res := runner.RunNightly(ctx)
	log.Printf("scheduler: nightly run started %s finished (auto-cancel ok=%t, no-show ok=%t, report ok=%t)",
		res.StartedAt.Format(time.RFC3339), res.AutoCancel.Success, res.NoShow.Success, res.DailyReport.Success)
}

func (s *Scheduler) Start() { s.sched.Start() }

// NextRun reports when the nightly job fires next.
func (s *Scheduler) NextRun() (time.Time, error) { return s.job.NextRun() }

// Shutdown stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Shutdown() error { return s.sched.Shutdown() }
