package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/viniciusflorencio2008/leilao/internal/config"
	"github.com/viniciusflorencio2008/leilao/internal/domain"
)

// Open connects to MySQL using the configured pool limits and verifies the
// connection with a ping.
func Open(ctx context.Context, cfg config.MySQLConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	return db, nil
}

var _ domain.LedgerStore = (*LedgerStore)(nil)

// LedgerStore runs ledger operations inside a single MySQL transaction. The
// FOR UPDATE read in AuctionForUpdate serializes bids per auction row while
// leaving other auctions untouched.
type LedgerStore struct {
	db *sql.DB
}

func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) WithinTx(ctx context.Context, fn func(tx domain.LedgerTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&ledgerTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback after %v: %w", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) AuctionForUpdate(ctx context.Context, auctionID string) (*domain.Auction, error) {
	query := `
        SELECT id, title, description, car_id, start_time, end_time,
               min_price, min_increment, status, admin_id, created_at, updated_at
        FROM auctions WHERE id = ? FOR UPDATE
    `

	var auction domain.Auction
	var status string

	err := t.tx.QueryRowContext(ctx, query, auctionID).Scan(
		&auction.ID, &auction.Title, &auction.Description, &auction.CarID,
		&auction.StartTime, &auction.EndTime, &auction.MinPrice,
		&auction.MinIncrement, &status, &auction.AdminID,
		&auction.CreatedAt, &auction.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	auction.Status, _ = domain.ParseAuctionStatus(status)
	return &auction, nil
}

func (t *ledgerTx) HighestBid(ctx context.Context, auctionID string) (float64, bool, error) {
	query := `SELECT MAX(amount) FROM bids WHERE auction_id = ?`

	var highest sql.NullFloat64
	if err := t.tx.QueryRowContext(ctx, query, auctionID).Scan(&highest); err != nil {
		return 0, false, err
	}

	return highest.Float64, highest.Valid, nil
}

func (t *ledgerTx) InsertBid(ctx context.Context, bid *domain.Bid) error {
	query := `
        INSERT INTO bids (id, auction_id, client_id, amount, status, placed_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := t.tx.ExecContext(ctx, query,
		bid.ID, bid.AuctionID, bid.ClientID, bid.Amount,
		string(bid.Status), bid.PlacedAt)
	return err
}

func (t *ledgerTx) UpdateAuctionStatus(ctx context.Context, auctionID string, status domain.AuctionStatus) error {
	query := `UPDATE auctions SET status = ?, updated_at = NOW() WHERE id = ?`
	_, err := t.tx.ExecContext(ctx, query, status.String(), auctionID)
	return err
}

func (t *ledgerTx) ExpiredAuctionIDs(ctx context.Context) ([]string, error) {
	// Locks the candidate rows so the sweep cannot race a bid in flight.
	query := `
        SELECT id FROM auctions
        WHERE status IN ('scheduled', 'open') AND end_time < NOW()
        FOR UPDATE
    `

	rows, err := t.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
