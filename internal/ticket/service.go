// Package ticket validates cinema ticket purchases, prices them and hands the
// payment and the seat reservation over to the external collaborators.
package ticket

import (
	"context"
	"fmt"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/metinatakli/cinema-ticket-service/internal/ticket"

type Service struct {
	paymentService     domain.TicketPaymentService
	reservationService domain.SeatReservationService
	pricing            domain.Pricing
	tracer             trace.Tracer
}

func NewService(
	paymentService domain.TicketPaymentService,
	reservationService domain.SeatReservationService,
	pricing domain.Pricing) *Service {

	return &Service{
		paymentService:     paymentService,
		reservationService: reservationService,
		pricing:            pricing,
		tracer:             otel.Tracer(tracerName),
	}
}

func (s *Service) Pricing() domain.Pricing {
	return s.pricing
}

// Quote counts, validates and prices the requested tickets without charging
// the account or reserving any seat.
func (s *Service) Quote(requests ...domain.TicketTypeRequest) (domain.Quote, error) {
	for _, req := range requests {
		if req.Type.Valid() && req.Quantity > s.pricing.MaxTicketsPerPurchase {
			return domain.Quote{}, s.ticketLimitError()
		}
	}

	counts := domain.CountTickets(requests)

	err := s.validate(counts)
	if err != nil {
		return domain.Quote{}, err
	}

	quote := domain.Quote{
		Counts:      counts,
		TotalAmount: s.pricing.TotalAmount(counts),
		Seats:       counts.Seats(),
	}

	return quote, nil
}

// PurchaseTickets charges the account for the requested tickets and then
// reserves their seats. Errors from the payment or reservation services are
// returned as they are; a failed payment means no seats are reserved.
func (s *Service) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	requests ...domain.TicketTypeRequest) (domain.Purchase, error) {

	ctx, span := s.tracer.Start(ctx, "ticket.PurchaseTickets", trace.WithAttributes(
		attribute.Int64("account.id", accountID),
		attribute.Int("ticket.line_items", len(requests)),
	))
	defer span.End()

	quote, err := s.Quote(requests...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Purchase{}, err
	}

	err = s.paymentService.MakePayment(ctx, accountID, quote.TotalAmount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "payment failed")
		return domain.Purchase{}, err
	}

	err = s.reservationService.ReserveSeats(ctx, accountID, quote.Seats)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "seat reservation failed")
		return domain.Purchase{}, err
	}

	purchase := domain.NewPurchase(accountID, quote)

	span.SetAttributes(
		attribute.String("purchase.id", purchase.ID.String()),
		attribute.Int("purchase.amount", purchase.TotalAmount),
		attribute.Int("purchase.seats", purchase.Seats),
	)

	return purchase, nil
}

// validate applies the purchase rules in order; the first one broken decides
// the error. A request without any ticket passes.
func (s *Service) validate(counts domain.TicketCounts) error {
	if counts.Total() > s.pricing.MaxTicketsPerPurchase {
		return s.ticketLimitError()
	}

	if (counts.Child > 0 || counts.Infant > 0) && counts.Adult < 1 {
		return fmt.Errorf(
			"%w: child and infant tickets cannot be purchased without an adult ticket",
			domain.ErrInvalidPurchase,
		)
	}

	return nil
}

func (s *Service) ticketLimitError() error {
	return fmt.Errorf(
		"%w: no more than %d tickets can be purchased at a time",
		domain.ErrInvalidPurchase,
		s.pricing.MaxTicketsPerPurchase,
	)
}
