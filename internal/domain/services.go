package domain

import "context"

type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

type SeatReservationService interface {
	ReserveSeats(ctx context.Context, accountID int64, seats int) error
}

// SeatReservationRepository is a SeatReservationService that can also report
// what it has reserved so far.
type SeatReservationRepository interface {
	SeatReservationService
	ReservedSeats(ctx context.Context, accountID int64) (int, error)
}
