package mocks

import (
	"context"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatReservationRepo struct {
	mock.Mock
	domain.SeatReservationRepository
}

func (m *MockSeatReservationRepo) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	args := m.Called(ctx, accountID, seats)
	return args.Error(0)
}

func (m *MockSeatReservationRepo) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}
