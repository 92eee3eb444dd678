package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

// Cars without an explicit increment fall back to the marketplace default.
const defaultMinIncrement = 100.0

type CreateAuctionInput struct {
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	MinPrice     float64
	MinIncrement float64

	CarName      string
	CarBrand     string
	CarModel     string
	CarYear      int
	InitialPrice float64
	CategoryID   string
	ImageURLs    []string
}

type AuctionService struct {
	auctions    domain.AuctionRepository
	users       domain.UserRepository
	statusCache domain.AuctionStatusCache
	log         logger.Logger
	now         func() time.Time
}

func NewAuctionService(
	auctions domain.AuctionRepository,
	users domain.UserRepository,
	statusCache domain.AuctionStatusCache,
	log logger.Logger,
) *AuctionService {
	return &AuctionService{
		auctions:    auctions,
		users:       users,
		statusCache: statusCache,
		log:         log,
		now:         time.Now,
	}
}

// CreateAuction registers a new car and its auction. Only admins may create
// auctions; the car, its images and the auction commit as one unit.
func (s *AuctionService) CreateAuction(ctx context.Context, input CreateAuctionInput, userID string) (*domain.Auction, error) {
	admin, err := s.users.GetAdminByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve admin for user %s: %w", userID, err)
	}

	if err := validateAuctionInput(input); err != nil {
		return nil, err
	}

	if input.MinIncrement == 0 {
		input.MinIncrement = defaultMinIncrement
	}

	now := s.now().UTC()
	car := &domain.Car{
		ID:           uuid.NewString(),
		Name:         input.CarName,
		Brand:        input.CarBrand,
		Model:        input.CarModel,
		Year:         input.CarYear,
		InitialPrice: input.InitialPrice,
		CategoryID:   input.CategoryID,
		AdminID:      admin.ID,
	}

	images := make([]domain.CarImage, 0, len(input.ImageURLs))
	for i, url := range input.ImageURLs {
		images = append(images, domain.CarImage{
			CarID:   car.ID,
			URL:     url,
			Primary: i == 0,
		})
	}

	auction := &domain.Auction{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		CarID:        car.ID,
		StartTime:    input.StartTime.UTC(),
		EndTime:      input.EndTime.UTC(),
		MinPrice:     input.MinPrice,
		MinIncrement: input.MinIncrement,
		Status:       domain.AuctionScheduled,
		AdminID:      admin.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.auctions.CreateAuction(ctx, auction, car, images); err != nil {
		return nil, fmt.Errorf("create auction: %w", err)
	}

	if err := s.statusCache.SetAuctionStatus(ctx, auction.ID, domain.AuctionScheduled); err != nil {
		s.log.Error("Failed to cache auction status", "auction_id", auction.ID, "error", err)
	}

	s.log.Info("Auction created", "auction_id", auction.ID, "car_id", car.ID, "admin_id", admin.ID)
	return auction, nil
}

func validateAuctionInput(input CreateAuctionInput) error {
	switch {
	case input.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case input.Description == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case input.CarName == "" || input.CarBrand == "" || input.CarModel == "":
		return fmt.Errorf("%w: car name, brand and model are required", domain.ErrValidation)
	case input.StartTime.IsZero() || input.EndTime.IsZero():
		return fmt.Errorf("%w: start and end times are required", domain.ErrValidation)
	case !input.EndTime.After(input.StartTime):
		return fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	case input.MinPrice <= 0:
		return fmt.Errorf("%w: minimum price must be positive", domain.ErrValidation)
	case input.MinIncrement < 0:
		return fmt.Errorf("%w: minimum increment must be positive", domain.ErrValidation)
	}
	return nil
}

// ListAuctions is read-only; derived prices come straight from the store.
func (s *AuctionService) ListAuctions(ctx context.Context, filter domain.AuctionFilter) ([]*domain.AuctionSummary, error) {
	summaries, err := s.auctions.ListAuctions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return summaries, nil
}

func (s *AuctionService) GetAuctionDetail(ctx context.Context, auctionID string) (*domain.AuctionDetail, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("%w: auction id is required", domain.ErrValidation)
	}

	detail, err := s.auctions.GetAuctionDetail(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	return detail, nil
}
