package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/viniciusflorencio2008/leilao/internal/api/middleware"
	"github.com/viniciusflorencio2008/leilao/internal/services"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

type BidHandler struct {
	bids *services.BidService
	log  logger.Logger
}

func NewBidHandler(bids *services.BidService, log logger.Logger) *BidHandler {
	return &BidHandler{
		bids: bids,
		log:  log,
	}
}

type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id"`
	Amount    float64 `json:"amount"`
}

type PlaceBidResponse struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	Amount    float64   `json:"amount"`
	PlacedAt  time.Time `json:"placed_at"`
}

func (h *BidHandler) PlaceBid(c echo.Context) error {
	var req PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	bid, err := h.bids.PlaceBid(c.Request().Context(), req.AuctionID, middleware.UserID(c), req.Amount)
	if err != nil {
		h.log.Info("Bid rejected", "auction_id", req.AuctionID, "amount", req.Amount, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, PlaceBidResponse{
		BidID:     bid.ID,
		AuctionID: bid.AuctionID,
		Amount:    bid.Amount,
		PlacedAt:  bid.PlacedAt,
	})
}
