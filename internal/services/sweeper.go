package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

// Sweeper periodically closes auctions whose end time has passed. Without it
// an auction that never sees another bid attempt would stay open forever,
// since the bid path only checks the window reactively.
type Sweeper struct {
	cron        *cron.Cron
	lifecycle   *LifecycleManager
	events      domain.EventPublisher
	statusCache domain.AuctionStatusCache
	connManager domain.ConnectionManager
	interval    time.Duration
	log         logger.Logger
}

func NewSweeper(
	lifecycle *LifecycleManager,
	events domain.EventPublisher,
	statusCache domain.AuctionStatusCache,
	connManager domain.ConnectionManager,
	interval time.Duration,
	log logger.Logger,
) *Sweeper {
	return &Sweeper{
		cron:        cron.New(cron.WithSeconds()),
		lifecycle:   lifecycle,
		events:      events,
		statusCache: statusCache,
		connManager: connManager,
		interval:    interval,
		log:         log,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	s.log.Info("Starting auction sweeper", "interval", s.interval)

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() error {
	s.log.Info("Stopping auction sweeper")
	s.cron.Stop()
	return nil
}

// Sweep runs one pass: close expired auctions, then fan the closure out to
// the status cache, the event channel and any live watchers.
func (s *Sweeper) Sweep(ctx context.Context) {
	closed, err := s.lifecycle.CloseExpired(ctx)
	if err != nil {
		s.log.Error("Failed to close expired auctions", "error", err)
		return
	}

	for _, auctionID := range closed {
		if err := s.statusCache.SetAuctionStatus(ctx, auctionID, domain.AuctionClosed); err != nil {
			s.log.Error("Failed to cache auction status", "auction_id", auctionID, "error", err)
		}

		event := &domain.BidEvent{
			Type:      domain.AuctionClosedEvent,
			AuctionID: auctionID,
			Timestamp: time.Now().UTC(),
		}
		if err := s.events.PublishBidEvent(ctx, event); err != nil {
			s.log.Error("Failed to publish close event", "auction_id", auctionID, "error", err)
		}

		if err := s.connManager.CloseAndUnregisterConnections(auctionID); err != nil {
			s.log.Error("Failed to close connections", "auction_id", auctionID, "error", err)
		}
	}
}
