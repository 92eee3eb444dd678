package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrValidation, "validation_error"},
		{fmt.Errorf("%w: title is required", ErrValidation), "validation_error"},
		{ErrNotFound, "not_found"},
		{ErrConflict, "conflict"},
		{ErrUnauthorized, "unauthorized"},
		{ErrNotAClient, "not_a_client"},
		{ErrInvalidCredentials, "invalid_credentials"},
		{ErrAuctionNotStarted, "auction_not_started"},
		{ErrAuctionExpired, "auction_expired"},
		{ErrAuctionNotOpen, "auction_not_open"},
		{&BidTooLowError{Amount: 1050, RequiredMin: 1100}, "bid_too_low"},
		{errors.New("connection reset"), "internal"},
		{nil, "internal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCode(tt.err))
	}
}

func TestBidTooLowErrorMessage(t *testing.T) {
	err := &BidTooLowError{
		Amount:      1050,
		CurrentBid:  1000,
		Increment:   100,
		RequiredMin: 1100,
	}
	assert.Equal(t, "bid of 1050.00 too low: must be at least 1100.00 (current 1000.00 + increment 100.00)", err.Error())
}

func TestAuctionStatusRoundTrip(t *testing.T) {
	for _, status := range []AuctionStatus{AuctionScheduled, AuctionOpen, AuctionClosed} {
		parsed, ok := ParseAuctionStatus(status.String())
		assert.True(t, ok)
		assert.Equal(t, status, parsed)
	}

	_, ok := ParseAuctionStatus("paused")
	assert.False(t, ok)
}
