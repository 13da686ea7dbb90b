package domain

const (
	DefaultChildPrice            = 10
	DefaultAdultPrice            = 20
	DefaultMaxTicketsPerPurchase = 20
)

// Pricing holds the ticket prices, in whole currency units, and the purchase
// size limit. Infant tickets are always free.
type Pricing struct {
	ChildPrice            int
	AdultPrice            int
	MaxTicketsPerPurchase int
}

func DefaultPricing() Pricing {
	return Pricing{
		ChildPrice:            DefaultChildPrice,
		AdultPrice:            DefaultAdultPrice,
		MaxTicketsPerPurchase: DefaultMaxTicketsPerPurchase,
	}
}

func (p Pricing) TotalAmount(counts TicketCounts) int {
	return addClamped(mulClamped(counts.Child, p.ChildPrice), mulClamped(counts.Adult, p.AdultPrice))
}
