package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string // "admin" or "client"
}

// Claims carries the resolved caller identity inside the access token.
type Claims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users     domain.UserRepository
	secretKey []byte
	tokenTTL  time.Duration
	log       logger.Logger
}

func NewAuthService(users domain.UserRepository, secretKey string, tokenTTL time.Duration, log logger.Logger) *AuthService {
	return &AuthService{
		users:     users,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, fmt.Errorf("%w: first name, last name, email, password and role are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	role := input.Role
	if role != "admin" {
		role = "client"
	}

	if err := s.users.CreateUser(ctx, user, role); err != nil {
		return nil, err
	}

	s.log.Info("User registered", "user_id", user.ID, "role", role)
	return user, nil
}

// Login verifies credentials and issues a signed access token carrying the
// user id and admin flag.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	isAdmin := false
	if _, err := s.users.GetAdminByUserID(ctx, user.ID); err == nil {
		isAdmin = true
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("lookup admin role: %w", err)
	}

	now := time.Now()
	claims := &Claims{
		UserID:  user.ID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses a bearer token and returns the caller identity.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	return claims, nil
}
