package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

// BidService is the append-only bid ledger. The highest-bid read, increment
// check, bid insert and status transition all run under the auction's row
// lock, so two bids on the same auction serialize while bids on different
// auctions proceed in parallel.
type BidService struct {
	store       domain.LedgerStore
	users       domain.UserRepository
	lifecycle   *LifecycleManager
	events      domain.EventPublisher
	statusCache domain.AuctionStatusCache
	log         logger.Logger
	now         func() time.Time
}

func NewBidService(
	store domain.LedgerStore,
	users domain.UserRepository,
	lifecycle *LifecycleManager,
	events domain.EventPublisher,
	statusCache domain.AuctionStatusCache,
	log logger.Logger,
) *BidService {
	return &BidService{
		store:       store,
		users:       users,
		lifecycle:   lifecycle,
		events:      events,
		statusCache: statusCache,
		log:         log,
		now:         time.Now,
	}
}

// PlaceBid validates and records a bid for the user's client identity. On
// success the persisted bid is returned; every rejection leaves the auction
// and the ledger exactly as they were.
func (s *BidService) PlaceBid(ctx context.Context, auctionID, userID string, amount float64) (*domain.Bid, error) {
	if auctionID == "" || userID == "" {
		return nil, fmt.Errorf("%w: auction id and user id are required", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: bid amount must be positive", domain.ErrValidation)
	}

	client, err := s.users.GetClientByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAClient
		}
		return nil, fmt.Errorf("resolve client for user %s: %w", userID, err)
	}

	var (
		bid    *domain.Bid
		opened bool
	)

	err = s.store.WithinTx(ctx, func(tx domain.LedgerTx) error {
		auction, err := tx.AuctionForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		next, err := s.lifecycle.ValidateAndAdvance(auction, now)
		if err != nil {
			return err
		}

		// Re-read under the lock: a concurrent bid that committed first is
		// visible here, never a stale pre-lock value.
		highest, hasBids, err := tx.HighestBid(ctx, auctionID)
		if err != nil {
			return err
		}

		current := auction.MinPrice
		if hasBids {
			current = highest
		}

		required := current + auction.MinIncrement
		if amount < required {
			return &domain.BidTooLowError{
				Amount:      amount,
				CurrentBid:  current,
				Increment:   auction.MinIncrement,
				RequiredMin: required,
			}
		}

		bid = &domain.Bid{
			ID:        uuid.NewString(),
			AuctionID: auctionID,
			ClientID:  client.ID,
			Amount:    amount,
			Status:    domain.BidValid,
			PlacedAt:  now,
		}

		if err := tx.InsertBid(ctx, bid); err != nil {
			return err
		}

		// First accepted bid opens a scheduled auction, in the same commit.
		if auction.Status != next {
			if err := tx.UpdateAuctionStatus(ctx, auctionID, next); err != nil {
				return err
			}
			opened = true
		}

		return nil
	})
	if err != nil {
		s.publishRejection(ctx, auctionID, client.ID, amount, err)
		return nil, err
	}

	s.afterCommit(ctx, auctionID, bid, opened)
	return bid, nil
}

// publishRejection records business-rule rejections as audit events. Rejected
// bids never reach the bids table; the event stream is their only trace.
func (s *BidService) publishRejection(ctx context.Context, auctionID, clientID string, amount float64, cause error) {
	var tooLow *domain.BidTooLowError
	if !errors.As(cause, &tooLow) &&
		!errors.Is(cause, domain.ErrAuctionNotStarted) &&
		!errors.Is(cause, domain.ErrAuctionExpired) &&
		!errors.Is(cause, domain.ErrAuctionNotOpen) {
		return
	}

	event := &domain.BidEvent{
		Type:      domain.BidRejected,
		AuctionID: auctionID,
		ClientID:  clientID,
		Amount:    amount,
		Timestamp: s.now().UTC(),
	}
	if tooLow != nil {
		event.RequiredMin = tooLow.RequiredMin
	}

	if err := s.events.PublishBidEvent(ctx, event); err != nil {
		s.log.Error("Failed to publish rejection event", "auction_id", auctionID, "error", err)
	}
}

func (s *BidService) afterCommit(ctx context.Context, auctionID string, bid *domain.Bid, opened bool) {
	if opened {
		if err := s.statusCache.SetAuctionStatus(ctx, auctionID, domain.AuctionOpen); err != nil {
			s.log.Error("Failed to cache auction status", "auction_id", auctionID, "error", err)
		}
	}

	event := &domain.BidEvent{
		Type:      domain.BidAccepted,
		AuctionID: auctionID,
		ClientID:  bid.ClientID,
		BidID:     bid.ID,
		Amount:    bid.Amount,
		Timestamp: bid.PlacedAt,
	}
	if err := s.events.PublishBidEvent(ctx, event); err != nil {
		s.log.Error("Failed to publish bid event", "auction_id", auctionID, "bid_id", bid.ID, "error", err)
	}

	s.log.Info("Bid accepted", "auction_id", auctionID, "bid_id", bid.ID, "amount", bid.Amount)
}
