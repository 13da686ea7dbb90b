package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

const DefaultCurrency = stripe.CurrencyGBP

var minorUnitsPerUnit = decimal.NewFromInt(100)

type StripePaymentService struct {
	currency stripe.Currency
}

func NewStripePaymentService(currency string) *StripePaymentService {
	if currency == "" {
		currency = string(DefaultCurrency)
	}

	return &StripePaymentService{
		currency: stripe.Currency(currency),
	}
}

// MakePayment charges the account through a Stripe PaymentIntent. Stripe does
// not accept zero amounts, so a free purchase never reaches the API.
func (s *StripePaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	if amount < 0 {
		return domain.ErrInvalidPayment
	}

	if amount == 0 {
		return nil
	}

	params := newPaymentIntentParams(accountID, amount, s.currency)
	params.Context = ctx

	_, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, stripeErr.Msg)
		}

		return fmt.Errorf("stripe payment intent for account %d: %w", accountID, err)
	}

	return nil
}

func newPaymentIntentParams(accountID int64, amount int, currency stripe.Currency) *stripe.PaymentIntentParams {
	accountIDStr := strconv.FormatInt(accountID, 10)

	return &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(toMinorUnits(amount)),
		Currency:    stripe.String(string(currency)),
		Description: stripe.String(fmt.Sprintf("Cinema tickets for account %s", accountIDStr)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"account_id": accountIDStr,
		},
	}
}

func toMinorUnits(amount int) int64 {
	return decimal.NewFromInt(int64(amount)).Mul(minorUnitsPerUnit).IntPart()
}
