package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/router"
	"github.com/iliyamo/hotel-reservation/internal/scheduler"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

func initLogger(file string) {
	if file == "" {
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	})
}

func main() {
	config.LoadDotEnv()
	cfg := config.Load() // Load environment config
	initLogger(cfg.LogFile)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if cfg.DBAutoMigrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	if rdb != nil {
		defer rdb.Close()
	}

	var events service.EventPublisher = queue.NopPublisher{}
	if cfg.EventsEnabled {
		events = queue.NewPublisher(cfg.AMQPURL)
	}

	// Repositories
	reservations := repository.NewReservationRepo(db)
	rooms := repository.NewRoomRepo(db)
	assignments := repository.NewAssignmentRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	payments := repository.NewPaymentRepo(db)
	charges := repository.NewChargeRepo(db)
	billing := repository.NewBillingRepo(db)
	reports := repository.NewReportRepo(db, cfg.Nightly.Location)
	companies := repository.NewTravelCompanyRepo(db)

	// Services
	clock := service.SystemClock{Location: cfg.Nightly.Location}
	lifecycle := service.NewLifecycleService(db, reservations, rooms, users, clock, events)
	roomSvc := service.NewRoomService(db, rooms, assignments, clock)
	ledger := service.NewLedgerService(db, reservations, payments, charges, companies, clock, events)
	desk := service.NewFrontDeskService(db, lifecycle, roomSvc, ledger, users, clock, events)
	reconciler := service.NewReconciler(db, reservations, billing, reports, clock, events, service.ReconcileConfig{
		AutoCancelAfter: cfg.Nightly.AutoCancelAfter,
		NoShowWindow:    cfg.Nightly.NoShowWindow,
		NoShowFeeRate:   cfg.Nightly.NoShowFeeRate,
	})

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, tokens)
	resH := handler.NewReservationHandler(lifecycle)
	deskH := handler.NewDeskHandler(desk, ledger)
	roomH := handler.NewRoomHandler(roomSvc)
	nightlyH := handler.NewNightlyHandler(reconciler)

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(echomw.Recover())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, db)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, resH, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterReservations(e, resH, cfg.JWTSecret)
	router.RegisterDesk(e, router.Desk{Desk: deskH, Reservations: resH, Rooms: roomH}, cfg.JWTSecret)
	router.RegisterManager(e, roomH, nightlyH, authH, cfg.JWTSecret)
	router.RegisterCron(e, nightlyH, cfg.CronSecret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Nightly.Enabled {
		sched, err := scheduler.New(cfg.Nightly, reconciler)
		if err != nil {
			log.Fatalf("scheduler: %v", err)
		}
		sched.Start()
		if next, err := sched.NextRun(); err == nil {
			log.Printf("nightly reconciliation scheduled for %s", next.Format(time.RFC3339))
		}
		defer func() {
			if err := sched.Shutdown(); err != nil {
				log.Printf("scheduler shutdown: %v", err)
			}
		}()
	}

	if cfg.EventsEnabled {
		go func() {
			if err := queue.NewConsumer(cfg.AMQPURL).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("reservation-consumer: stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err) // Log and exit if server fails
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
