package domain

import (
	"context"
)

// Repository interfaces
type AuctionRepository interface {
	// CreateAuction persists the car, its images and the auction as one unit.
	CreateAuction(ctx context.Context, auction *Auction, car *Car, images []CarImage) error
	GetAuction(ctx context.Context, auctionID string) (*Auction, error)
	ListAuctions(ctx context.Context, filter AuctionFilter) ([]*AuctionSummary, error)
	GetAuctionDetail(ctx context.Context, auctionID string) (*AuctionDetail, error)
}

type UserRepository interface {
	// CreateUser persists the user plus its admin or client role row as one unit.
	CreateUser(ctx context.Context, user *User, role string) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetClientByUserID(ctx context.Context, userID string) (*Client, error)
	GetAdminByUserID(ctx context.Context, userID string) (*Admin, error)
}

// LedgerTx is the per-auction transactional view used by bid placement. All
// methods run inside one storage transaction; AuctionForUpdate must lock the
// auction row so that concurrent bids on the same auction serialize.
type LedgerTx interface {
	AuctionForUpdate(ctx context.Context, auctionID string) (*Auction, error)
	HighestBid(ctx context.Context, auctionID string) (float64, bool, error)
	InsertBid(ctx context.Context, bid *Bid) error
	UpdateAuctionStatus(ctx context.Context, auctionID string, status AuctionStatus) error
	ExpiredAuctionIDs(ctx context.Context) ([]string, error)
}

// LedgerStore scopes a transaction to a function: commit on nil, full rollback
// on any error. Partial application of a bid is never observable.
type LedgerStore interface {
	WithinTx(ctx context.Context, fn func(tx LedgerTx) error) error
}

// Event interfaces
type EventPublisher interface {
	PublishBidEvent(ctx context.Context, event *BidEvent) error
}

type EventHandler func(event *BidEvent) error

type EventSubscriber interface {
	SubscribeToBidEvents(ctx context.Context, handler EventHandler) error
}

// AuctionStatusCache keeps the latest known status per auction for cheap reads.
type AuctionStatusCache interface {
	SetAuctionStatus(ctx context.Context, auctionID string, status AuctionStatus) error
	GetAuctionStatus(ctx context.Context, auctionID string) (AuctionStatus, bool, error)
}

// WebSocket interfaces
type WebSocketConnection interface {
	Send(message interface{}) error
	Close() error
	UserID() string
	AuctionID() string
}

type ConnectionManager interface {
	RegisterConnection(userID, auctionID string, conn WebSocketConnection) error
	UnregisterConnection(userID, auctionID string) error
	BroadcastToAuction(auctionID string, message interface{}) error
	CloseAndUnregisterConnections(auctionID string) error
}
