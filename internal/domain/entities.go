package domain

import (
	"time"
)

type AuctionStatus int

const (
	AuctionScheduled AuctionStatus = iota
	AuctionOpen
	AuctionClosed
)

func (s AuctionStatus) String() string {
	switch s {
	case AuctionScheduled:
		return "scheduled"
	case AuctionOpen:
		return "open"
	case AuctionClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ParseAuctionStatus maps the wire/query form back to a status.
func ParseAuctionStatus(s string) (AuctionStatus, bool) {
	switch s {
	case "scheduled":
		return AuctionScheduled, true
	case "open":
		return AuctionOpen, true
	case "closed":
		return AuctionClosed, true
	default:
		return AuctionScheduled, false
	}
}

type Auction struct {
	ID           string
	Title        string
	Description  string
	CarID        string
	StartTime    time.Time
	EndTime      time.Time
	MinPrice     float64
	MinIncrement float64
	Status       AuctionStatus
	AdminID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type BidStatus string

const (
	BidValid BidStatus = "valid"
)

type Bid struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auction_id"`
	ClientID  string    `json:"client_id"`
	Amount    float64   `json:"amount"`
	Status    BidStatus `json:"status"`
	PlacedAt  time.Time `json:"placed_at"`
}

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Client is the bidder role attached to a user. Only clients may place bids.
type Client struct {
	ID     string
	UserID string
	Status string
}

// Admin is the administrator role attached to a user. Only admins create auctions.
type Admin struct {
	ID          string
	UserID      string
	AccessLevel string
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Car struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	InitialPrice float64 `json:"initial_price"`
	CategoryID   string  `json:"category_id"`
	AdminID      string  `json:"-"`
}

type CarImage struct {
	CarID   string
	URL     string
	Primary bool
}

// AuctionSummary is the listing view of an auction with its derived price state.
type AuctionSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	CarName      string    `json:"car_name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	CategoryName string    `json:"category_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	MinPrice     float64   `json:"min_price"`
	CurrentPrice float64   `json:"current_price"`
	TotalBids    int       `json:"total_bids"`
	PrimaryImage string    `json:"primary_image,omitempty"`
}

type AuctionDetail struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	MinPrice     float64   `json:"min_price"`
	MinIncrement float64   `json:"min_increment"`
	Car          Car       `json:"car"`
	CategoryName string    `json:"category_name"`
	Images       []string  `json:"images"`
	// TopBids holds the highest bids first.
	TopBids      []Bid   `json:"top_bids"`
	CurrentPrice float64 `json:"current_price"`
	TotalBids    int     `json:"total_bids"`
}

// AuctionFilter narrows ListAuctions. Zero values mean "no filter".
type AuctionFilter struct {
	Status     *AuctionStatus
	CategoryID string
	Search     string
}

type BidEventType string

const (
	BidAccepted        BidEventType = "bid_accepted"
	BidRejected        BidEventType = "bid_rejected"
	AuctionClosedEvent BidEventType = "auction_closed"
)

// BidEvent is the post-commit notification record for a bid attempt or an
// auction lifecycle change. Rejected attempts exist only as events, never as
// rows in the bids table.
type BidEvent struct {
	Type        BidEventType `json:"type"`
	AuctionID   string       `json:"auction_id"`
	ClientID    string       `json:"client_id,omitempty"`
	BidID       string       `json:"bid_id,omitempty"`
	Amount      float64      `json:"amount,omitempty"`
	RequiredMin float64      `json:"required_min,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}
