package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticket-service/api"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/metinatakli/cinema-ticket-service/internal/payment"
	"github.com/metinatakli/cinema-ticket-service/internal/repository"
	"github.com/metinatakli/cinema-ticket-service/internal/ticket"
	appvalidator "github.com/metinatakli/cinema-ticket-service/internal/validator"
	"github.com/metinatakli/cinema-ticket-service/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const (
	serviceName = "cinema-ticket-service"

	SeatStoreRedis    = "redis"
	SeatStorePostgres = "postgres"
)

var (
	version = vcs.Version()
)

var _ api.ServerInterface = (*Application)(nil)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	metrics   *purchaseMetrics

	paymentService   domain.TicketPaymentService
	seatReservations domain.SeatReservationRepository
	ticketService    *ticket.Service
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	SeatStore        string
	SeatCapacity     int
	DB               DBConfig
	Redis            RedisConfig
	Stripe           StripeConfig
	Pricing          PricingConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type PricingConfig struct {
	ChildPrice int
	AdultPrice int
	MaxTickets int
}

func (p PricingConfig) Pricing() domain.Pricing {
	return domain.Pricing{
		ChildPrice:            p.ChildPrice,
		AdultPrice:            p.AdultPrice,
		MaxTicketsPerPurchase: p.MaxTickets,
	}
}

func (cfg Config) validate() error {
	var errs []error

	if cfg.SeatStore != SeatStoreRedis && cfg.SeatStore != SeatStorePostgres {
		errs = append(errs, fmt.Errorf("seat store must be %q or %q, got %q", SeatStoreRedis, SeatStorePostgres, cfg.SeatStore))
	}

	if cfg.SeatCapacity < 0 {
		errs = append(errs, errors.New("seat capacity must not be negative"))
	}

	if cfg.Pricing.ChildPrice < 0 || cfg.Pricing.AdultPrice < 0 {
		errs = append(errs, errors.New("ticket prices must not be negative"))
	}

	if cfg.Pricing.MaxTickets < 1 {
		errs = append(errs, errors.New("max tickets per purchase must be at least 1"))
	}

	return errors.Join(errs...)
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	paymentService domain.TicketPaymentService,
	seatReservations domain.SeatReservationRepository) *Application {

	return &Application{
		config:           cfg,
		logger:           logger,
		db:               db,
		redis:            redisClient,
		validator:        validator,
		metrics:          newPurchaseMetrics(logger),
		paymentService:   paymentService,
		seatReservations: seatReservations,
		ticketService:    ticket.NewService(paymentService, seatReservations, cfg.Pricing.Pricing()),
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	flag.StringVar(&cfg.SeatStore, "seat-store", SeatStoreRedis, "Seat reservation store (redis|postgres)")
	flag.IntVar(&cfg.SeatCapacity, "seat-capacity", 0, "Total number of seats that can be reserved (0 means unlimited)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "localhost:6379", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Stripe.SecretKey, "stripe-key", "", "Stripe secret key (payments are only recorded in memory when empty)")
	flag.StringVar(&cfg.Stripe.Currency, "stripe-currency", string(payment.DefaultCurrency), "Stripe payment currency")

	flag.IntVar(&cfg.Pricing.ChildPrice, "child-price", domain.DefaultChildPrice, "Child ticket price")
	flag.IntVar(&cfg.Pricing.AdultPrice, "adult-price", domain.DefaultAdultPrice, "Adult ticket price")
	flag.IntVar(&cfg.Pricing.MaxTickets, "max-tickets", domain.DefaultMaxTicketsPerPurchase, "Maximum number of tickets per purchase")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	err := cfg.validate()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	var (
		db               *pgxpool.Pool
		cache            redis.UniversalClient
		seatReservations domain.SeatReservationRepository
	)

	switch cfg.SeatStore {
	case SeatStorePostgres:
		db, err = NewDatabasePool(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := repository.NewPostgresSeatReservationRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		err = repo.SetCapacity(ctx, cfg.SeatCapacity)
		if err != nil {
			return fmt.Errorf("cannot set seat capacity: %w", err)
		}

		seatReservations = repo
	case SeatStoreRedis:
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		cache = redisClient
		seatReservations = repository.NewRedisSeatReservationRepository(redisClient, cfg.SeatCapacity)
	}

	var paymentService domain.TicketPaymentService

	if cfg.Stripe.SecretKey != "" {
		stripe.Key = cfg.Stripe.SecretKey
		paymentService = payment.NewStripePaymentService(cfg.Stripe.Currency)
	} else {
		logger.Warn("stripe key not set, payments are only recorded in memory")
		paymentService = payment.NewMockPaymentService()
	}

	app := NewApp(
		cfg,
		logger,
		db,
		cache,
		appvalidator.NewValidator(),
		paymentService,
		seatReservations,
	)

	return app.run()
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info(
		"starting server",
		"addr", srv.Addr,
		"env", app.config.Env,
		"seat_store", app.config.SeatStore,
	)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(app.logRequest)
	r.Use(app.recoverPanic)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}
