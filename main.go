package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/cache"
	"auction-engine/internal/clock"
	"auction-engine/internal/config"
	"auction-engine/internal/models"
	"auction-engine/internal/monitoring"
	"auction-engine/internal/repository"
	"auction-engine/internal/reputation"
	"auction-engine/internal/server"
	"auction-engine/utils"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := utils.ConfigureLogger(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	repo, scorer, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.StoreDriver, "error": err.Error()})
	}
	defer closeStore()

	opts := []bidding.Option{
		bidding.WithExtendPolicy(clock.Policy{
			TriggerMinutes: cfg.AutoExtendTriggerMinutes,
			ExtendMinutes:  cfg.AutoExtendDurationMinutes,
		}),
		bidding.WithReputation(scorer, reputation.Policy{MinScore: cfg.MinBidderRating}),
	}
	if cfg.EnableMetrics {
		opts = append(opts, bidding.WithMetrics(monitoring.Prometheus{}))
	}
	if cfg.RedisURL != "" {
		lotCache, err := openLotCache(ctx, cfg)
		if err != nil {
			utils.Fatal("failed to connect to redis", map[string]any{"error": err.Error()})
		}
		opts = append(opts, bidding.WithCache(lotCache))
	}

	biddingSvc := bidding.NewBiddingService(repo, opts...)

	router := server.SetupRouter(biddingSvc, cfg.EnableMetrics)

	utils.Info("starting auction server", map[string]any{
		"port":    cfg.Port,
		"store":   cfg.StoreDriver,
		"cache":   cfg.RedisURL != "",
		"metrics": cfg.EnableMetrics,
	})
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore builds the lot store and bidder rating source for the configured driver
func openStore(ctx context.Context, cfg *config.Config) (repository.AuctionDB, reputation.Scorer, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		repo := repository.NewMemoryRepo(repository.WithLockWait(cfg.LockWaitTimeout))
		scores := reputation.NewMemoryScores(map[string]float64{
			"bidder-alice": 0.95,
			"bidder-bob":   0.9,
			"bidder-carol": 0.85,
		})
		prepopulateLots(repo, time.Now().UTC())
		return repo, scores, func() {}, nil
	}

	db, err := repository.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	repo := repository.NewPostgresRepo(db, cfg.LockWaitTimeout)
	if err := repo.RunMigrations(ctx); err != nil {
		closeDB(db)
		return nil, nil, nil, err
	}
	return repo, reputation.NewPostgresScores(db), func() { closeDB(db) }, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		utils.Warn("failed to close database", map[string]any{"error": err.Error()})
	}
}

func openLotCache(ctx context.Context, cfg *config.Config) (*cache.RedisLotCache, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return cache.NewRedisLotCache(client, cfg.LotCacheTTL), nil
}

// prepopulateLots adds sample lots to the in-memory repo
func prepopulateLots(repo *repository.MemoryRepo, now time.Time) {
	lots := []models.Lot{
		{ID: "lot1", SellerID: "seller-dave", StartingPrice: decimal.NewFromInt(100), StepPrice: decimal.NewFromInt(50), EndAt: now.Add(24 * time.Hour), AutoExtend: true},
		{ID: "lot2", SellerID: "seller-dave", StartingPrice: decimal.NewFromInt(200), StepPrice: decimal.NewFromInt(10), BuyNowPrice: decimal.NewNullDecimal(decimal.NewFromInt(1000)), EndAt: now.Add(2 * time.Hour)},
		{ID: "lot3", SellerID: "seller-erin", StartingPrice: decimal.NewFromInt(150), StepPrice: decimal.NewFromInt(25), EndAt: now.Add(time.Hour), AllowUnratedBidder: true},
	}

	for _, lot := range lots {
		lot.CurrentPrice = lot.StartingPrice
		lot.SoldState = models.SoldUnresolved
		lot.CreatedAt = now
		repo.AddLot(lot)
	}
}
