package domain

import (
	"errors"
	"fmt"
)

// Validation and lookup errors
var (
	ErrValidation = errors.New("missing or invalid fields")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)

// Identity errors
var (
	ErrUnauthorized       = errors.New("admin access required")
	ErrNotAClient         = errors.New("user is not a registered client")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Lifecycle-timing rejections
var (
	ErrAuctionNotStarted = errors.New("auction has not started yet")
	ErrAuctionExpired    = errors.New("auction has already ended")
	ErrAuctionNotOpen    = errors.New("auction is not open for bids")
)

// BidTooLowError rejects a bid below the current highest plus the auction's
// minimum increment. RequiredMin is the exact smallest acceptable amount.
type BidTooLowError struct {
	Amount      float64
	CurrentBid  float64
	Increment   float64
	RequiredMin float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid of %.2f too low: must be at least %.2f (current %.2f + increment %.2f)",
		e.Amount, e.RequiredMin, e.CurrentBid, e.Increment)
}

// ErrorCode maps an error to its stable wire code.
func ErrorCode(err error) string {
	var tooLow *BidTooLowError
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrNotAClient):
		return "not_a_client"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrAuctionNotStarted):
		return "auction_not_started"
	case errors.Is(err, ErrAuctionExpired):
		return "auction_expired"
	case errors.Is(err, ErrAuctionNotOpen):
		return "auction_not_open"
	case errors.As(err, &tooLow):
		return "bid_too_low"
	default:
		return "internal"
	}
}
