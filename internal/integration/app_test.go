package integration_test

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticket-service/internal/app"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/metinatakli/cinema-ticket-service/internal/payment"
	"github.com/metinatakli/cinema-ticket-service/internal/repository"
	appvalidator "github.com/metinatakli/cinema-ticket-service/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App              *app.Application
	DB               *pgxpool.Pool
	RedisClient      *redis.Client
	Payments         *payment.MockPaymentService
	SeatReservations domain.SeatReservationRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	payments := payment.NewMockPaymentService()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	var seatReservations domain.SeatReservationRepository

	switch cfg.SeatStore {
	case app.SeatStorePostgres:
		repo := repository.NewPostgresSeatReservationRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		err = repo.SetCapacity(ctx, cfg.SeatCapacity)
		if err != nil {
			db.Close()
			redisClient.Close()
			return nil, err
		}

		seatReservations = repo
	default:
		seatReservations = repository.NewRedisSeatReservationRepository(redisClient, cfg.SeatCapacity)
	}

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		payments,
		seatReservations,
	)

	return &TestApp{
		App:              application,
		DB:               db,
		RedisClient:      redisClient,
		Payments:         payments,
		SeatReservations: seatReservations,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.RedisClient.Close()
}
