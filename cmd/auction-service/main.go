package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisClient "github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/viniciusflorencio2008/leilao/internal/api/handlers"
	"github.com/viniciusflorencio2008/leilao/internal/api/middleware"
	"github.com/viniciusflorencio2008/leilao/internal/config"
	"github.com/viniciusflorencio2008/leilao/internal/domain"
	"github.com/viniciusflorencio2008/leilao/internal/infrastructure/mysql"
	"github.com/viniciusflorencio2008/leilao/internal/infrastructure/redis"
	"github.com/viniciusflorencio2008/leilao/internal/infrastructure/websocket"
	"github.com/viniciusflorencio2008/leilao/internal/services"
	"github.com/viniciusflorencio2008/leilao/pkg/logger"
)

func main() {
	log := logger.New()
	log.Info("Starting auction service")

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize Redis
	rdb := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("Connected to Redis", "address", cfg.Redis.Address)

	// Initialize MySQL
	db, err := mysql.Open(ctx, cfg.MySQL)
	if err != nil {
		log.Error("Failed to connect to MySQL", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close MySQL connection", "error", err)
		}
	}()

	if err := mysql.Bootstrap(ctx, db); err != nil {
		log.Error("Failed to bootstrap schema", "error", err)
		os.Exit(1)
	}
	log.Info("Connected to MySQL")

	// Initialize repositories and caches
	auctionRepo := mysql.NewMySQLAuctionRepository(db)
	userRepo := mysql.NewMySQLUserRepository(db)
	ledgerStore := mysql.NewLedgerStore(db)

	statusCache := redis.NewRedisStatusCache(rdb)
	eventPublisher := redis.NewRedisEventPublisher(rdb)
	eventSubscriber := redis.NewRedisEventSubscriber(rdb, log)

	// Initialize websocket fan-out
	connManager := websocket.NewConnectionManager(log)

	// Initialize services
	lifecycle := services.NewLifecycleManager(ledgerStore, log)
	bidService := services.NewBidService(ledgerStore, userRepo, lifecycle, eventPublisher, statusCache, log)
	auctionService := services.NewAuctionService(auctionRepo, userRepo, statusCache, log)
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	sweeper := services.NewSweeper(lifecycle, eventPublisher, statusCache, connManager, cfg.Sweep.Interval, log)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestID())
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: `{"time":"${time_rfc3339}","id":"${id}","remote_ip":"${remote_ip}","host":"${host}","method":"${method}","uri":"${uri}","user_agent":"${user_agent}","status":${status},"error":"${error}","latency":${latency},"latency_human":"${latency_human}","bytes_in":${bytes_in},"bytes_out":${bytes_out}}` + "\n",
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	auctionHandler := handlers.NewAuctionHandler(auctionService, log)
	bidHandler := handlers.NewBidHandler(bidService, log)
	feedHandler := websocket.NewLiveFeedHandler(auctionRepo, connManager, log)

	// API routes
	api := e.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auctions", auctionHandler.ListAuctions)
	api.GET("/auctions/:id", auctionHandler.GetAuction)
	api.POST("/auctions", auctionHandler.CreateAuction, middleware.JWT(authService))
	api.POST("/bids", bidHandler.PlaceBid, middleware.JWT(authService))

	e.GET("/ws/auctions/:id", feedHandler.HandleConnection)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   "auction-service",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Fan bid events out to live watchers
	subCtx, subCancel := context.WithCancel(context.Background())
	defer subCancel()
	go func() {
		err := eventSubscriber.SubscribeToBidEvents(subCtx, func(event *domain.BidEvent) error {
			return connManager.BroadcastToAuction(event.AuctionID, event)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Event subscription stopped", "error", err)
		}
	}()

	// Start background sweep
	if err := sweeper.Start(context.Background()); err != nil {
		log.Error("Failed to start sweeper", "error", err)
		os.Exit(1)
	}

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting HTTP server", "address", serverAddr)

	go func() {
		if err := e.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down auction service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := sweeper.Stop(); err != nil {
		log.Error("Failed to stop sweeper", "error", err)
	}
	subCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Auction service stopped")
}
