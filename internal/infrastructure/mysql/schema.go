package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// Bootstrap creates the tables if they do not exist yet. Statements are
// idempotent so the service can run it on every start.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id            VARCHAR(64)  PRIMARY KEY,
            first_name    VARCHAR(120) NOT NULL,
            last_name     VARCHAR(120) NOT NULL,
            email         VARCHAR(255) NOT NULL UNIQUE,
            password_hash VARCHAR(255) NOT NULL,
            created_at    DATETIME     NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS admins (
            id           VARCHAR(64) PRIMARY KEY,
            user_id      VARCHAR(64) NOT NULL UNIQUE,
            access_level VARCHAR(32) NOT NULL,
            FOREIGN KEY (user_id) REFERENCES users(id)
        )`,
		`CREATE TABLE IF NOT EXISTS clients (
            id      VARCHAR(64) PRIMARY KEY,
            user_id VARCHAR(64) NOT NULL UNIQUE,
            status  VARCHAR(32) NOT NULL,
            FOREIGN KEY (user_id) REFERENCES users(id)
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id   VARCHAR(64)  PRIMARY KEY,
            name VARCHAR(120) NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS cars (
            id            VARCHAR(64)  PRIMARY KEY,
            name          VARCHAR(120) NOT NULL,
            brand         VARCHAR(120) NOT NULL,
            model         VARCHAR(120) NOT NULL,
            year          INT          NOT NULL,
            initial_price DOUBLE       NOT NULL,
            category_id   VARCHAR(64),
            admin_id      VARCHAR(64)  NOT NULL,
            FOREIGN KEY (category_id) REFERENCES categories(id),
            FOREIGN KEY (admin_id) REFERENCES admins(id)
        )`,
		`CREATE TABLE IF NOT EXISTS car_images (
            car_id     VARCHAR(64)  NOT NULL,
            url        VARCHAR(512) NOT NULL,
            is_primary TINYINT(1)   NOT NULL DEFAULT 0,
            FOREIGN KEY (car_id) REFERENCES cars(id)
        )`,
		`CREATE TABLE IF NOT EXISTS auctions (
            id            VARCHAR(64)  PRIMARY KEY,
            title         VARCHAR(255) NOT NULL,
            description   TEXT         NOT NULL,
            car_id        VARCHAR(64)  NOT NULL,
            start_time    DATETIME     NOT NULL,
            end_time      DATETIME     NOT NULL,
            min_price     DOUBLE       NOT NULL,
            min_increment DOUBLE       NOT NULL,
            status        VARCHAR(16)  NOT NULL,
            admin_id      VARCHAR(64)  NOT NULL,
            created_at    DATETIME     NOT NULL,
            updated_at    DATETIME     NOT NULL,
            FOREIGN KEY (car_id) REFERENCES cars(id),
            FOREIGN KEY (admin_id) REFERENCES admins(id),
            INDEX idx_auctions_status_end (status, end_time)
        )`,
		`CREATE TABLE IF NOT EXISTS bids (
            id         VARCHAR(64) PRIMARY KEY,
            auction_id VARCHAR(64) NOT NULL,
            client_id  VARCHAR(64) NOT NULL,
            amount     DOUBLE      NOT NULL,
            status     VARCHAR(16) NOT NULL,
            placed_at  DATETIME    NOT NULL,
            FOREIGN KEY (auction_id) REFERENCES auctions(id),
            FOREIGN KEY (client_id) REFERENCES clients(id),
            INDEX idx_bids_auction_amount (auction_id, amount)
        )`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return nil
}
