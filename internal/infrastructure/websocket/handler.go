package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveFeedHandler upgrades watchers onto the per-auction broadcast feed.
// Accepted bids and lifecycle changes arrive as BidEvent JSON messages.
type LiveFeedHandler struct {
	auctionRepo domain.AuctionRepository
	connManager domain.ConnectionManager
	log         logger.Logger
}

func NewLiveFeedHandler(auctionRepo domain.AuctionRepository,
	connManager domain.ConnectionManager, log logger.Logger) *LiveFeedHandler {
	return &LiveFeedHandler{
		auctionRepo: auctionRepo,
		connManager: connManager,
		log:         log,
	}
}

func (h *LiveFeedHandler) HandleConnection(c echo.Context) error {
	auctionID := c.Param("id")

	auction, err := h.auctionRepo.GetAuction(c.Request().Context(), auctionID)
	if err != nil {
		h.log.Error("Failed to find auction", "error", err, "auction_id", auctionID)
		return echo.NewHTTPError(http.StatusNotFound, "auction not found")
	}

	if auction.Status == domain.AuctionClosed || time.Now().After(auction.EndTime) {
		return echo.NewHTTPError(http.StatusForbidden, "auction has already ended")
	}

	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id required")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Error("Failed to upgrade connection", "error", err)
		return nil
	}

	wsConn := NewConnection(conn, userID, auctionID)

	if err := h.connManager.RegisterConnection(userID, auctionID, wsConn); err != nil {
		h.log.Error("Failed to register connection", "error", err)
		conn.Close()
		return nil
	}

	go h.readLoop(wsConn, userID, auctionID)
	return nil
}

// readLoop keeps the connection alive and answers pings. The feed is
// broadcast-only; bids go through the HTTP API.
func (h *LiveFeedHandler) readLoop(conn *Connection, userID, auctionID string) {
	defer func() {
		h.connManager.UnregisterConnection(userID, auctionID)
		conn.Close()
	}()

	for {
		var msg map[string]interface{}
		if err := conn.conn.ReadJSON(&msg); err != nil {
			return
		}

		if msgType, ok := msg["type"].(string); ok && msgType == "ping" {
			if err := conn.Send(map[string]string{"type": "pong"}); err != nil {
				return
			}
		}
	}
}

var _ domain.WebSocketConnection = (*Connection)(nil)

type Connection struct {
	conn      *websocket.Conn
	writeMu   sync.Mutex
	userID    string
	auctionID string
}

func NewConnection(conn *websocket.Conn, userID, auctionID string) *Connection {
	return &Connection{
		conn:      conn,
		userID:    userID,
		auctionID: auctionID,
	}
}

func (c *Connection) Send(message interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(message)
}

func (c *Connection) Close() error {
	return c.conn.Close()
}

func (c *Connection) UserID() string {
	return c.userID
}

func (c *Connection) AuctionID() string {
	return c.auctionID
}
