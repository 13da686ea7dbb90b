package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-ticket-service/api"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
)

func (app *Application) PurchaseTickets(w http.ResponseWriter, r *http.Request, accountID int64) {
	logger := app.contextGetLogger(r)

	err := validateAccountID(accountID)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	requests, ok := app.readTicketRequests(w, r)
	if !ok {
		return
	}

	purchase, err := app.ticketService.PurchaseTickets(r.Context(), accountID, requests...)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPurchase):
			logger.Warn("ticket purchase rejected", "account_id", accountID, "error", err)
			app.metrics.recordOutcome(r.Context(), outcomeRejected)
			app.invalidPurchaseResponse(w, r, err)
		case errors.Is(err, domain.ErrPaymentDeclined):
			logger.Warn("ticket payment declined", "account_id", accountID, "error", err)
			app.metrics.recordOutcome(r.Context(), outcomeFailed)
			app.paymentRequiredResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatsUnavailable):
			logger.Error("seat reservation failed after payment", "account_id", accountID, "error", err)
			app.metrics.recordOutcome(r.Context(), outcomeFailed)
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.metrics.recordOutcome(r.Context(), outcomeFailed)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.recordPurchase(r.Context(), purchase)

	logger.Info(
		"tickets purchased",
		"purchase_id", purchase.ID.String(),
		"account_id", accountID,
		"amount", purchase.TotalAmount,
		"seats", purchase.Seats,
	)

	resp := api.PurchaseResponse{
		PurchaseId:    purchase.ID,
		AccountId:     purchase.AccountID,
		TotalAmount:   purchase.TotalAmount,
		SeatsReserved: purchase.Seats,
		Tickets:       toApiTicketCounts(purchase.Counts),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) QuoteTickets(w http.ResponseWriter, r *http.Request, accountID int64) {
	err := validateAccountID(accountID)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	requests, ok := app.readTicketRequests(w, r)
	if !ok {
		return
	}

	quote, err := app.ticketService.Quote(requests...)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPurchase) {
			app.invalidPurchaseResponse(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.QuoteResponse{
		TotalAmount: quote.TotalAmount,
		Seats:       quote.Seats,
		Tickets:     toApiTicketCounts(quote.Counts),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPrices(w http.ResponseWriter, r *http.Request) {
	pricing := app.ticketService.Pricing()

	resp := api.PricesResponse{
		InfantPrice:           0,
		ChildPrice:            pricing.ChildPrice,
		AdultPrice:            pricing.AdultPrice,
		MaxTicketsPerPurchase: pricing.MaxTicketsPerPurchase,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readTicketRequests decodes and validates the request body. It writes the
// error response itself and reports whether the handler may continue.
func (app *Application) readTicketRequests(w http.ResponseWriter, r *http.Request) ([]domain.TicketTypeRequest, bool) {
	var input api.PurchaseTicketsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return nil, false
	}

	return toTicketTypeRequests(input.Tickets), true
}

func toTicketTypeRequests(tickets []api.TicketRequest) []domain.TicketTypeRequest {
	requests := make([]domain.TicketTypeRequest, len(tickets))

	for i, t := range tickets {
		requests[i] = domain.NewTicketTypeRequest(domain.TicketType(t.Type), t.Quantity)
	}

	return requests
}

func toApiTicketCounts(counts domain.TicketCounts) api.TicketCounts {
	return api.TicketCounts{
		Infant: counts.Infant,
		Child:  counts.Child,
		Adult:  counts.Adult,
	}
}
