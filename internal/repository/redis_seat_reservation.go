package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const totalReservedSeatsKey = "seats_reserved"

var reserveSeatsScript = redis.NewScript(`
    -- KEYS = [total reserved seats key, account reserved seats key]
    -- ARGV = [seat count, capacity (0 means unlimited)]

    local seats = tonumber(ARGV[1])
    local capacity = tonumber(ARGV[2])
    local reserved = tonumber(redis.call("GET", KEYS[1]) or "0")

    if capacity > 0 and reserved + seats > capacity then
        return {err = "not enough seats"}
    end

    redis.call("INCRBY", KEYS[1], seats)
    redis.call("INCRBY", KEYS[2], seats)

    return reserved + seats
`)

type RedisSeatReservationRepository struct {
	redis    redis.UniversalClient
	capacity int
}

func NewRedisSeatReservationRepository(client redis.UniversalClient, capacity int) *RedisSeatReservationRepository {
	return &RedisSeatReservationRepository{
		redis:    client,
		capacity: capacity,
	}
}

func (r *RedisSeatReservationRepository) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	if seats < 0 {
		return domain.ErrInvalidSeatCount
	}

	keys := []string{totalReservedSeatsKey, accountReservedSeatsKey(accountID)}

	err := reserveSeatsScript.Run(ctx, r.redis, keys, seats, r.capacity).Err()
	if err != nil {
		if redis.HasErrorPrefix(err, "not enough seats") {
			return domain.ErrSeatsUnavailable
		}

		return err
	}

	return nil
}

func (r *RedisSeatReservationRepository) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	seats, err := r.redis.Get(ctx, accountReservedSeatsKey(accountID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return seats, nil
}

func accountReservedSeatsKey(accountID int64) string {
	return fmt.Sprintf("seats_reserved:%d", accountID)
}
