package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/internal/domain/mocks"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

// fakeAuctionRepo captures CreateAuction arguments and serves canned reads.
type fakeAuctionRepo struct {
	createdAuction *domain.Auction
	createdCar     *domain.Car
	createdImages  []domain.CarImage

	summaries []*domain.AuctionSummary
	detail    *domain.AuctionDetail
}

func (f *fakeAuctionRepo) CreateAuction(ctx context.Context, auction *domain.Auction, car *domain.Car, images []domain.CarImage) error {
	f.createdAuction = auction
	f.createdCar = car
	f.createdImages = images
	return nil
}

func (f *fakeAuctionRepo) GetAuction(ctx context.Context, auctionID string) (*domain.Auction, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeAuctionRepo) ListAuctions(ctx context.Context, filter domain.AuctionFilter) ([]*domain.AuctionSummary, error) {
	return f.summaries, nil
}

func (f *fakeAuctionRepo) GetAuctionDetail(ctx context.Context, auctionID string) (*domain.AuctionDetail, error) {
	if f.detail == nil {
		return nil, domain.ErrNotFound
	}
	return f.detail, nil
}

func validCreateAuctionInput() CreateAuctionInput {
	start := time.Now().UTC().Add(time.Hour)
	return CreateAuctionInput{
		Title:        "1967 Impala",
		Description:  "restored, matching numbers",
		StartTime:    start,
		EndTime:      start.Add(24 * time.Hour),
		MinPrice:     1000,
		MinIncrement: 100,
		CarName:      "Impala",
		CarBrand:     "Chevrolet",
		CarModel:     "SS",
		CarYear:      1967,
		InitialPrice: 1000,
		CategoryID:   "cat-1",
		ImageURLs:    []string{"https://img/1.jpg", "https://img/2.jpg"},
	}
}

func newTestAuctionService(t *testing.T, repo *fakeAuctionRepo, users *fakeUserRepo) *AuctionService {
	t.Helper()
	ctrl := gomock.NewController(t)

	statusCache := mocks.NewMockAuctionStatusCache(ctrl)
	statusCache.EXPECT().SetAuctionStatus(gomock.Any(), gomock.Any(), domain.AuctionScheduled).Return(nil).AnyTimes()

	return NewAuctionService(repo, users, statusCache, logger.NewNop())
}

func TestCreateAuction(t *testing.T) {
	repo := &fakeAuctionRepo{}
	users := newFakeUserRepo().withAdmin("user-1", "adm-1")
	service := newTestAuctionService(t, repo, users)

	auction, err := service.CreateAuction(context.Background(), validCreateAuctionInput(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, auction)
	assert.NotEmpty(t, auction.ID)
	assert.Equal(t, domain.AuctionScheduled, auction.Status)
	assert.Equal(t, "adm-1", auction.AdminID)
	assert.Equal(t, 100.0, auction.MinIncrement)

	require.NotNil(t, repo.createdCar)
	assert.Equal(t, repo.createdCar.ID, auction.CarID)
	assert.Equal(t, "adm-1", repo.createdCar.AdminID)

	require.Len(t, repo.createdImages, 2)
	assert.True(t, repo.createdImages[0].Primary)
	assert.False(t, repo.createdImages[1].Primary)
}

func TestCreateAuction_DefaultIncrement(t *testing.T) {
	repo := &fakeAuctionRepo{}
	users := newFakeUserRepo().withAdmin("user-1", "adm-1")
	service := newTestAuctionService(t, repo, users)

	input := validCreateAuctionInput()
	input.MinIncrement = 0

	auction, err := service.CreateAuction(context.Background(), input, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 100.0, auction.MinIncrement)
}

func TestCreateAuction_NonAdminRejected(t *testing.T) {
	repo := &fakeAuctionRepo{}
	users := newFakeUserRepo().withClient("user-1", "cli-1")
	service := newTestAuctionService(t, repo, users)

	_, err := service.CreateAuction(context.Background(), validCreateAuctionInput(), "user-1")

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, repo.createdAuction)
}

func TestCreateAuction_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *CreateAuctionInput)
	}{
		{"missing_title", func(in *CreateAuctionInput) { in.Title = "" }},
		{"missing_description", func(in *CreateAuctionInput) { in.Description = "" }},
		{"missing_car_brand", func(in *CreateAuctionInput) { in.CarBrand = "" }},
		{"zero_start_time", func(in *CreateAuctionInput) { in.StartTime = time.Time{} }},
		{"end_before_start", func(in *CreateAuctionInput) { in.EndTime = in.StartTime.Add(-time.Hour) }},
		{"end_equals_start", func(in *CreateAuctionInput) { in.EndTime = in.StartTime }},
		{"zero_min_price", func(in *CreateAuctionInput) { in.MinPrice = 0 }},
		{"negative_increment", func(in *CreateAuctionInput) { in.MinIncrement = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAuctionRepo{}
			users := newFakeUserRepo().withAdmin("user-1", "adm-1")
			service := newTestAuctionService(t, repo, users)

			input := validCreateAuctionInput()
			tt.mutate(&input)

			_, err := service.CreateAuction(context.Background(), input, "user-1")

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Nil(t, repo.createdAuction)
		})
	}
}

func TestListAuctions(t *testing.T) {
	repo := &fakeAuctionRepo{
		summaries: []*domain.AuctionSummary{
			{ID: "auc-1", Title: "1967 Impala", CurrentPrice: 1200, TotalBids: 3},
		},
	}
	service := newTestAuctionService(t, repo, newFakeUserRepo())

	summaries, err := service.ListAuctions(context.Background(), domain.AuctionFilter{})

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "auc-1", summaries[0].ID)
}

func TestGetAuctionDetail(t *testing.T) {
	repo := &fakeAuctionRepo{
		detail: &domain.AuctionDetail{ID: "auc-1"},
	}
	service := newTestAuctionService(t, repo, newFakeUserRepo())

	detail, err := service.GetAuctionDetail(context.Background(), "auc-1")
	require.NoError(t, err)
	assert.Equal(t, "auc-1", detail.ID)

	_, err = service.GetAuctionDetail(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrValidation)
}
