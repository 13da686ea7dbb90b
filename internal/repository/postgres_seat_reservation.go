package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
)

const seatInventoryReservedCheck = "seat_inventory_reserved_check"

type PostgresSeatReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatReservationRepository(db *pgxpool.Pool) *PostgresSeatReservationRepository {
	return &PostgresSeatReservationRepository{
		db: db,
	}
}

// SetCapacity limits the total number of seats that can be reserved. Zero
// removes the limit.
func (p *PostgresSeatReservationRepository) SetCapacity(ctx context.Context, capacity int) error {
	query := `
		UPDATE seat_inventory
		SET capacity = NULLIF($1, 0)
		WHERE id = 1
	`

	_, err := p.db.Exec(ctx, query, capacity)

	return mapSeatInventoryError(err)
}

func (p *PostgresSeatReservationRepository) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	if seats < 0 {
		return domain.ErrInvalidSeatCount
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE seat_inventory
			SET reserved = reserved + $1
			WHERE id = 1
		`

		_, err := tx.Exec(ctx, query, seats)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO seat_reservations (account_id, seat_count)
			VALUES ($1, $2)
		`

		_, err = tx.Exec(ctx, query, accountID, seats)

		return err
	})

	return mapSeatInventoryError(err)
}

func (p *PostgresSeatReservationRepository) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(seat_count), 0)
		FROM seat_reservations
		WHERE account_id = $1
	`

	var seats int

	err := p.db.QueryRow(ctx, query, accountID).Scan(&seats)
	if err != nil {
		return 0, err
	}

	return seats, nil
}

func mapSeatInventoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.CheckViolation &&
		pgErr.ConstraintName == seatInventoryReservedCheck {
		return domain.ErrSeatsUnavailable
	}

	return err
}
