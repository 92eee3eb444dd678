package services

import (
	"context"
	"sync"
	"time"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
)

// memoryLedger is an in-memory LedgerStore with the same all-or-nothing and
// per-store serialization guarantees the MySQL implementation provides.
type memoryLedger struct {
	mu       sync.Mutex
	auctions map[string]*domain.Auction
	bids     map[string][]*domain.Bid
}

func newMemoryLedger(auctions ...*domain.Auction) *memoryLedger {
	m := &memoryLedger{
		auctions: make(map[string]*domain.Auction),
		bids:     make(map[string][]*domain.Bid),
	}
	for _, a := range auctions {
		copied := *a
		m.auctions[a.ID] = &copied
	}
	return m
}

func (m *memoryLedger) WithinTx(ctx context.Context, fn func(tx domain.LedgerTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryLedgerTx{
		store:         m,
		statusChanges: make(map[string]domain.AuctionStatus),
	}

	if err := fn(tx); err != nil {
		return err
	}

	// Commit staged changes
	for _, bid := range tx.insertedBids {
		m.bids[bid.AuctionID] = append(m.bids[bid.AuctionID], bid)
	}
	for id, status := range tx.statusChanges {
		m.auctions[id].Status = status
	}

	return nil
}

func (m *memoryLedger) auctionStatus(auctionID string) domain.AuctionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.auctions[auctionID].Status
}

func (m *memoryLedger) bidAmounts(auctionID string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var amounts []float64
	for _, bid := range m.bids[auctionID] {
		amounts = append(amounts, bid.Amount)
	}
	return amounts
}

type memoryLedgerTx struct {
	store         *memoryLedger
	insertedBids  []*domain.Bid
	statusChanges map[string]domain.AuctionStatus
}

func (t *memoryLedgerTx) AuctionForUpdate(ctx context.Context, auctionID string) (*domain.Auction, error) {
	auction, ok := t.store.auctions[auctionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *auction
	return &copied, nil
}

func (t *memoryLedgerTx) HighestBid(ctx context.Context, auctionID string) (float64, bool, error) {
	var highest float64
	var found bool

	for _, bid := range t.store.bids[auctionID] {
		if !found || bid.Amount > highest {
			highest = bid.Amount
			found = true
		}
	}
	for _, bid := range t.insertedBids {
		if bid.AuctionID == auctionID && (!found || bid.Amount > highest) {
			highest = bid.Amount
			found = true
		}
	}

	return highest, found, nil
}

func (t *memoryLedgerTx) InsertBid(ctx context.Context, bid *domain.Bid) error {
	copied := *bid
	t.insertedBids = append(t.insertedBids, &copied)
	return nil
}

func (t *memoryLedgerTx) UpdateAuctionStatus(ctx context.Context, auctionID string, status domain.AuctionStatus) error {
	if _, ok := t.store.auctions[auctionID]; !ok {
		return domain.ErrNotFound
	}
	t.statusChanges[auctionID] = status
	return nil
}

func (t *memoryLedgerTx) ExpiredAuctionIDs(ctx context.Context) ([]string, error) {
	now := time.Now().UTC()

	var ids []string
	for id, auction := range t.store.auctions {
		if auction.Status != domain.AuctionClosed && auction.EndTime.Before(now) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// fakeUserRepo backs identity lookups in service tests.
type fakeUserRepo struct {
	mu           sync.Mutex
	usersByEmail map[string]*domain.User
	clients      map[string]*domain.Client // keyed by user ID
	admins       map[string]*domain.Admin  // keyed by user ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByEmail: make(map[string]*domain.User),
		clients:      make(map[string]*domain.Client),
		admins:       make(map[string]*domain.Admin),
	}
}

func (f *fakeUserRepo) withClient(userID, clientID string) *fakeUserRepo {
	f.clients[userID] = &domain.Client{ID: clientID, UserID: userID, Status: "active"}
	return f
}

func (f *fakeUserRepo) withAdmin(userID, adminID string) *fakeUserRepo {
	f.admins[userID] = &domain.Admin{ID: adminID, UserID: userID, AccessLevel: "basic"}
	return f
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *domain.User, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.usersByEmail[user.Email]; exists {
		return domain.ErrConflict
	}
	f.usersByEmail[user.Email] = user

	if role == "admin" {
		f.admins[user.ID] = &domain.Admin{ID: "adm-" + user.ID, UserID: user.ID, AccessLevel: "basic"}
	} else {
		f.clients[user.ID] = &domain.Client{ID: "cli-" + user.ID, UserID: user.ID, Status: "active"}
	}
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetClientByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	client, ok := f.clients[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func (f *fakeUserRepo) GetAdminByUserID(ctx context.Context, userID string) (*domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	admin, ok := f.admins[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return admin, nil
}
