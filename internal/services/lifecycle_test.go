package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

func TestValidateAndAdvance(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     domain.AuctionStatus
		start, end time.Time
		now        time.Time
		wantNext   domain.AuctionStatus
		wantErr    error
	}{
		{
			name:     "scheduled_within_window_opens",
			status:   domain.AuctionScheduled,
			start:    base,
			end:      base.Add(time.Hour),
			now:      base.Add(time.Minute),
			wantNext: domain.AuctionOpen,
		},
		{
			name:     "open_within_window_stays_open",
			status:   domain.AuctionOpen,
			start:    base,
			end:      base.Add(time.Hour),
			now:      base.Add(time.Minute),
			wantNext: domain.AuctionOpen,
		},
		{
			name:    "before_start",
			status:  domain.AuctionScheduled,
			start:   base,
			end:     base.Add(time.Hour),
			now:     base.Add(-time.Second),
			wantErr: domain.ErrAuctionNotStarted,
		},
		{
			name:    "after_end",
			status:  domain.AuctionOpen,
			start:   base,
			end:     base.Add(time.Hour),
			now:     base.Add(time.Hour + time.Second),
			wantErr: domain.ErrAuctionExpired,
		},
		{
			// The window check wins over the status check: a closed auction
			// past its end time reports expired, not not-open.
			name:    "closed_after_end_reports_expired",
			status:  domain.AuctionClosed,
			start:   base,
			end:     base.Add(time.Hour),
			now:     base.Add(2 * time.Hour),
			wantErr: domain.ErrAuctionExpired,
		},
		{
			name:    "closed_within_window",
			status:  domain.AuctionClosed,
			start:   base,
			end:     base.Add(time.Hour),
			now:     base.Add(time.Minute),
			wantErr: domain.ErrAuctionNotOpen,
		},
		{
			name:     "exactly_at_start",
			status:   domain.AuctionScheduled,
			start:    base,
			end:      base.Add(time.Hour),
			now:      base,
			wantNext: domain.AuctionOpen,
		},
		{
			name:     "exactly_at_end",
			status:   domain.AuctionOpen,
			start:    base,
			end:      base.Add(time.Hour),
			now:      base.Add(time.Hour),
			wantNext: domain.AuctionOpen,
		},
	}

	manager := NewLifecycleManager(newMemoryLedger(), logger.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auction := &domain.Auction{
				ID:        "auc-1",
				StartTime: tt.start,
				EndTime:   tt.end,
				Status:    tt.status,
			}

			next, err := manager.ValidateAndAdvance(auction, tt.now)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.status, auction.Status, "validation must not mutate the auction")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestCloseExpired(t *testing.T) {
	now := time.Now().UTC()

	expired := testAuction("auc-expired", domain.AuctionOpen)
	expired.StartTime = now.Add(-2 * time.Hour)
	expired.EndTime = now.Add(-time.Hour)

	neverBid := testAuction("auc-never-bid", domain.AuctionScheduled)
	neverBid.StartTime = now.Add(-2 * time.Hour)
	neverBid.EndTime = now.Add(-time.Hour)

	live := testAuction("auc-live", domain.AuctionOpen)
	alreadyClosed := testAuction("auc-closed", domain.AuctionClosed)
	alreadyClosed.EndTime = now.Add(-time.Hour)

	ledger := newMemoryLedger(expired, neverBid, live, alreadyClosed)
	manager := NewLifecycleManager(ledger, logger.NewNop())

	closed, err := manager.CloseExpired(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"auc-expired", "auc-never-bid"}, closed)
	assert.Equal(t, domain.AuctionClosed, ledger.auctionStatus("auc-expired"))
	assert.Equal(t, domain.AuctionClosed, ledger.auctionStatus("auc-never-bid"))
	assert.Equal(t, domain.AuctionOpen, ledger.auctionStatus("auc-live"))
}

func TestCloseExpired_NothingToClose(t *testing.T) {
	ledger := newMemoryLedger(testAuction("auc-live", domain.AuctionOpen))
	manager := NewLifecycleManager(ledger, logger.NewNop())

	closed, err := manager.CloseExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, closed)
	assert.Equal(t, domain.AuctionOpen, ledger.auctionStatus("auc-live"))
}
