package mysql

import (
	"context"
	"database/sql"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"

	defaultAccessLevel  = "basic"
	defaultClientStatus = "active"
)

// MySQL duplicate key error number.
const erDupEntry = 1062

var _ domain.UserRepository = (*MySQLUserRepository)(nil)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) CreateUser(ctx context.Context, user *domain.User, role string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
        INSERT INTO users (id, first_name, last_name, email, password_hash, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err = tx.ExecContext(ctx, userQuery,
		user.ID, user.FirstName, user.LastName, user.Email,
		user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("email %s: %w", user.Email, domain.ErrConflict)
		}
		return err
	}

	switch role {
	case RoleAdmin:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO admins (id, user_id, access_level) VALUES (?, ?, ?)`,
			uuid.NewString(), user.ID, defaultAccessLevel)
	default:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO clients (id, user_id, status) VALUES (?, ?, ?)`,
			uuid.NewString(), user.ID, defaultClientStatus)
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *MySQLUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, first_name, last_name, email, password_hash, created_at
        FROM users WHERE email = ?
    `

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.FirstName, &user.LastName,
		&user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *MySQLUserRepository) GetClientByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	query := `SELECT id, user_id, status FROM clients WHERE user_id = ?`

	var client domain.Client
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&client.ID, &client.UserID, &client.Status)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *MySQLUserRepository) GetAdminByUserID(ctx context.Context, userID string) (*domain.Admin, error) {
	query := `SELECT id, user_id, access_level FROM admins WHERE user_id = ?`

	var admin domain.Admin
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&admin.ID, &admin.UserID, &admin.AccessLevel)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

func isDuplicate(err error) bool {
	if mysqlErr, ok := err.(*gomysql.MySQLError); ok {
		return mysqlErr.Number == erDupEntry
	}
	return false
}
