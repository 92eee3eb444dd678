package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
)

var _ domain.AuctionRepository = (*MySQLAuctionRepository)(nil)

type MySQLAuctionRepository struct {
	db *sql.DB
}

func NewMySQLAuctionRepository(db *sql.DB) *MySQLAuctionRepository {
	return &MySQLAuctionRepository{db: db}
}

func (r *MySQLAuctionRepository) CreateAuction(ctx context.Context, auction *domain.Auction, car *domain.Car, images []domain.CarImage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	carQuery := `
        INSERT INTO cars (id, name, brand, model, year, initial_price, category_id, admin_id)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	categoryID := sql.NullString{String: car.CategoryID, Valid: car.CategoryID != ""}
	if _, err := tx.ExecContext(ctx, carQuery,
		car.ID, car.Name, car.Brand, car.Model, car.Year,
		car.InitialPrice, categoryID, car.AdminID); err != nil {
		return err
	}

	imageQuery := `INSERT INTO car_images (car_id, url, is_primary) VALUES (?, ?, ?)`
	for _, img := range images {
		if _, err := tx.ExecContext(ctx, imageQuery, img.CarID, img.URL, img.Primary); err != nil {
			return err
		}
	}

	auctionQuery := `
        INSERT INTO auctions (id, title, description, car_id, start_time, end_time,
                              min_price, min_increment, status, admin_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	if _, err := tx.ExecContext(ctx, auctionQuery,
		auction.ID, auction.Title, auction.Description, auction.CarID,
		auction.StartTime, auction.EndTime, auction.MinPrice, auction.MinIncrement,
		auction.Status.String(), auction.AdminID, auction.CreatedAt, auction.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *MySQLAuctionRepository) GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error) {
	query := `
        SELECT id, title, description, car_id, start_time, end_time,
               min_price, min_increment, status, admin_id, created_at, updated_at
        FROM auctions WHERE id = ?
    `

	var auction domain.Auction
	var status string

	err := r.db.QueryRowContext(ctx, query, auctionID).Scan(
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

func (r *MySQLAuctionRepository) ListAuctions(ctx context.Context, filter domain.AuctionFilter) ([]*domain.AuctionSummary, error) {
	query := `
        SELECT a.id, a.title, a.status, a.start_time, a.end_time, a.min_price,
               c.name, c.brand, c.model, c.year,
               COALESCE(cat.name, ''),
               (SELECT COUNT(*) FROM bids WHERE auction_id = a.id),
               COALESCE((SELECT MAX(amount) FROM bids WHERE auction_id = a.id), a.min_price),
               COALESCE((SELECT url FROM car_images WHERE car_id = c.id AND is_primary = 1 LIMIT 1), '')
        FROM auctions a
        JOIN cars c ON a.car_id = c.id
        LEFT JOIN categories cat ON c.category_id = cat.id
        WHERE 1=1
    `
	var args []interface{}

	if filter.Status != nil {
		query += " AND a.status = ?"
		args = append(args, filter.Status.String())
	}
	if filter.CategoryID != "" {
		query += " AND c.category_id = ?"
		args = append(args, filter.CategoryID)
	}
	if filter.Search != "" {
		query += " AND (c.name LIKE ? OR c.brand LIKE ? OR c.model LIKE ?)"
		term := "%" + filter.Search + "%"
		args = append(args, term, term, term)
	}

	query += " ORDER BY a.start_time DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*domain.AuctionSummary
	for rows.Next() {
		var s domain.AuctionSummary
		err := rows.Scan(&s.ID, &s.Title, &s.Status, &s.StartTime, &s.EndTime,
			&s.MinPrice, &s.CarName, &s.Brand, &s.Model, &s.Year,
			&s.CategoryName, &s.TotalBids, &s.CurrentPrice, &s.PrimaryImage)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}

	return summaries, rows.Err()
}

func (r *MySQLAuctionRepository) GetAuctionDetail(ctx context.Context, auctionID string) (*domain.AuctionDetail, error) {
	query := `
        SELECT a.id, a.title, a.description, a.status, a.start_time, a.end_time,
               a.min_price, a.min_increment,
               c.id, c.name, c.brand, c.model, c.year, c.initial_price, COALESCE(c.category_id, ''),
               COALESCE(cat.name, ''),
               (SELECT COUNT(*) FROM bids WHERE auction_id = a.id),
               COALESCE((SELECT MAX(amount) FROM bids WHERE auction_id = a.id), a.min_price)
        FROM auctions a
        JOIN cars c ON a.car_id = c.id
        LEFT JOIN categories cat ON c.category_id = cat.id
        WHERE a.id = ?
    `

	var d domain.AuctionDetail
	err := r.db.QueryRowContext(ctx, query, auctionID).Scan(
		&d.ID, &d.Title, &d.Description, &d.Status, &d.StartTime, &d.EndTime,
		&d.MinPrice, &d.MinIncrement,
		&d.Car.ID, &d.Car.Name, &d.Car.Brand, &d.Car.Model, &d.Car.Year,
		&d.Car.InitialPrice, &d.Car.CategoryID,
		&d.CategoryName, &d.TotalBids, &d.CurrentPrice)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	images, err := r.carImages(ctx, d.Car.ID)
	if err != nil {
		return nil, err
	}
	d.Images = images

	topBids, err := r.topBids(ctx, auctionID, 5)
	if err != nil {
		return nil, err
	}
	d.TopBids = topBids

	return &d, nil
}

func (r *MySQLAuctionRepository) carImages(ctx context.Context, carID string) ([]string, error) {
	query := `SELECT url FROM car_images WHERE car_id = ? ORDER BY is_primary DESC`

	rows, err := r.db.QueryContext(ctx, query, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}

func (r *MySQLAuctionRepository) topBids(ctx context.Context, auctionID string, limit int) ([]domain.Bid, error) {
	query := `
        SELECT id, auction_id, client_id, amount, status, placed_at
        FROM bids WHERE auction_id = ?
        ORDER BY amount DESC LIMIT ?
    `

	rows, err := r.db.QueryContext(ctx, query, auctionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		var status string
		err := rows.Scan(&bid.ID, &bid.AuctionID, &bid.ClientID,
			&bid.Amount, &status, &bid.PlacedAt)
		if err != nil {
			return nil, err
		}
		bid.Status = domain.BidStatus(status)
		bids = append(bids, bid)
	}

	return bids, rows.Err()
}
