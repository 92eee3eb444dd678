package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/viniciusflorencio2008/leilao/internal/api/middleware"
	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/internal/services"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

type AuctionHandler struct {
	auctions *services.AuctionService
	log      logger.Logger
}

func NewAuctionHandler(auctions *services.AuctionService, log logger.Logger) *AuctionHandler {
	return &AuctionHandler{
		auctions: auctions,
		log:      log,
	}
}

type CreateAuctionRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	MinPrice     float64   `json:"min_price"`
	MinIncrement float64   `json:"min_increment"`
	CarName      string    `json:"car_name"`
	CarBrand     string    `json:"car_brand"`
	CarModel     string    `json:"car_model"`
	CarYear      int       `json:"car_year"`
	InitialPrice float64   `json:"initial_price"`
	CategoryID   string    `json:"category_id"`
	ImageURLs    []string  `json:"image_urls"`
}

type CreateAuctionResponse struct {
	AuctionID string    `json:"auction_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

func (h *AuctionHandler) CreateAuction(c echo.Context) error {
	var req CreateAuctionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	auction, err := h.auctions.CreateAuction(c.Request().Context(), services.CreateAuctionInput{
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MinPrice:     req.MinPrice,
		MinIncrement: req.MinIncrement,
		CarName:      req.CarName,
		CarBrand:     req.CarBrand,
		CarModel:     req.CarModel,
		CarYear:      req.CarYear,
		InitialPrice: req.InitialPrice,
		CategoryID:   req.CategoryID,
		ImageURLs:    req.ImageURLs,
	}, middleware.UserID(c))
	if err != nil {
		h.log.Error("Failed to create auction", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateAuctionResponse{
		AuctionID: auction.ID,
		StartTime: auction.StartTime,
		EndTime:   auction.EndTime,
		Status:    auction.Status.String(),
	})
}

func (h *AuctionHandler) ListAuctions(c echo.Context) error {
	var filter domain.AuctionFilter

	if statusParam := c.QueryParam("status"); statusParam != "" {
		status, ok := domain.ParseAuctionStatus(statusParam)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
		}
		filter.Status = &status
	}
	filter.CategoryID = c.QueryParam("category")
	filter.Search = c.QueryParam("search")

	summaries, err := h.auctions.ListAuctions(c.Request().Context(), filter)
	if err != nil {
		h.log.Error("Failed to list auctions", "error", err)
		return respondError(c, err)
	}

	if summaries == nil {
		summaries = []*domain.AuctionSummary{}
	}
	return c.JSON(http.StatusOK, summaries)
}

func (h *AuctionHandler) GetAuction(c echo.Context) error {
	detail, err := h.auctions.GetAuctionDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, detail)
}
