package domain

import "github.com/google/uuid"

type TicketType string

const (
	TicketTypeInfant TicketType = "INFANT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeAdult  TicketType = "ADULT"
)

func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeInfant, TicketTypeChild, TicketTypeAdult:
		return true
	}

	return false
}

// TicketTypeRequest is a single line item of a purchase: a ticket type and how
// many tickets of that type are wanted.
type TicketTypeRequest struct {
	Type     TicketType
	Quantity int
}

func NewTicketTypeRequest(ticketType TicketType, quantity int) TicketTypeRequest {
	return TicketTypeRequest{
		Type:     ticketType,
		Quantity: quantity,
	}
}

type TicketCounts struct {
	Infant int
	Child  int
	Adult  int
}

// CountTickets sums the line item quantities per ticket type. Line items with
// an unknown type are skipped. Sums clamp at the int range rather than wrap.
func CountTickets(requests []TicketTypeRequest) TicketCounts {
	var counts TicketCounts

	for _, req := range requests {
		switch req.Type {
		case TicketTypeInfant:
			counts.Infant = addClamped(counts.Infant, req.Quantity)
		case TicketTypeChild:
			counts.Child = addClamped(counts.Child, req.Quantity)
		case TicketTypeAdult:
			counts.Adult = addClamped(counts.Adult, req.Quantity)
		}
	}

	return counts
}

func (c TicketCounts) Total() int {
	return addClamped(addClamped(c.Infant, c.Child), c.Adult)
}

// Seats is the number of seats to reserve. Infants sit on an adult's lap.
func (c TicketCounts) Seats() int {
	return addClamped(c.Child, c.Adult)
}

type Quote struct {
	Counts      TicketCounts
	TotalAmount int
	Seats       int
}

type Purchase struct {
	ID          uuid.UUID
	AccountID   int64
	Counts      TicketCounts
	TotalAmount int
	Seats       int
}

func NewPurchase(accountID int64, quote Quote) Purchase {
	return Purchase{
		ID:          uuid.New(),
		AccountID:   accountID,
		Counts:      quote.Counts,
		TotalAmount: quote.TotalAmount,
		Seats:       quote.Seats,
	}
}
