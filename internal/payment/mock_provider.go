package payment

import (
	"context"
	"sync"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
)

type Payment struct {
	AccountID int64
	Amount    int
}

// MockPaymentService accepts every payment and keeps it in memory. It is used
// when no Stripe key is configured.
type MockPaymentService struct {
	mu       sync.Mutex
	payments []Payment
}

func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{}
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	if amount < 0 {
		return domain.ErrInvalidPayment
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.payments = append(m.payments, Payment{AccountID: accountID, Amount: amount})

	return nil
}

func (m *MockPaymentService) Payments() []Payment {
	m.mu.Lock()
	defer m.mu.Unlock()

	payments := make([]Payment, len(m.payments))
	copy(payments, m.payments)

	return payments
}

func (m *MockPaymentService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payments = nil
}
