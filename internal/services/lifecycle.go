package services

import (
	"context"
	"time"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

// LifecycleManager owns the scheduled -> open -> closed progression of an
// auction. Opening happens reactively on the first accepted bid; closing
// happens either reactively (a bid after the end time is rejected) or through
// the periodic sweep in CloseExpired.
type LifecycleManager struct {
	store domain.LedgerStore
	log   logger.Logger
}

func NewLifecycleManager(store domain.LedgerStore, log logger.Logger) *LifecycleManager {
	return &LifecycleManager{
		store: store,
		log:   log,
	}
}

// ValidateAndAdvance checks the bidding window against now and returns the
// status the auction must hold once a bid is accepted. It never mutates the
// auction; the caller records the transition inside the same transaction that
// inserts the bid. Returning open for an already-open auction is a no-op for
// the caller, which makes the scheduled -> open transition idempotent.
func (m *LifecycleManager) ValidateAndAdvance(auction *domain.Auction, now time.Time) (domain.AuctionStatus, error) {
	if now.Before(auction.StartTime) {
		return auction.Status, domain.ErrAuctionNotStarted
	}
	if now.After(auction.EndTime) {
		return auction.Status, domain.ErrAuctionExpired
	}
	if auction.Status != domain.AuctionScheduled && auction.Status != domain.AuctionOpen {
		return auction.Status, domain.ErrAuctionNotOpen
	}

	return domain.AuctionOpen, nil
}

// CloseExpired transitions every scheduled or open auction whose end time has
// passed to closed, in one transaction, and returns the affected IDs. Closed
// is terminal; an auction never reopens.
func (m *LifecycleManager) CloseExpired(ctx context.Context) ([]string, error) {
	var closed []string

	err := m.store.WithinTx(ctx, func(tx domain.LedgerTx) error {
		ids, err := tx.ExpiredAuctionIDs(ctx)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if err := tx.UpdateAuctionStatus(ctx, id, domain.AuctionClosed); err != nil {
				return err
			}
		}

		closed = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(closed) > 0 {
		m.log.Info("Closed expired auctions", "count", len(closed))
	}

	return closed, nil
}
