package domain

import "errors"

var (
	ErrInvalidPurchase  = errors.New("invalid ticket purchase request")
	ErrSeatsUnavailable = errors.New("not enough seats available")
	ErrInvalidSeatCount = errors.New("seat count must not be negative")
	ErrInvalidPayment   = errors.New("payment amount must not be negative")
	ErrPaymentDeclined  = errors.New("payment was declined")
)
