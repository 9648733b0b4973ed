package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hoopsight/courtload/external/visionapi"
	"github.com/hoopsight/courtload/internal/config"
	"github.com/hoopsight/courtload/internal/domain/player"
	"github.com/hoopsight/courtload/internal/domain/risk"
	"github.com/hoopsight/courtload/internal/domain/schedule"
	"github.com/hoopsight/courtload/internal/domain/vision"
	"github.com/hoopsight/courtload/internal/infrastructure/repository/memory"
	"github.com/hoopsight/courtload/internal/infrastructure/repository/postgres"
	"github.com/hoopsight/courtload/internal/infrastructure/weights"
	"github.com/hoopsight/courtload/internal/interfaces/httpapi"
	"github.com/hoopsight/courtload/internal/platform/cache"
	idgen "github.com/hoopsight/courtload/internal/platform/id"
	"github.com/hoopsight/courtload/internal/platform/logging"
	"github.com/hoopsight/courtload/internal/platform/resilience"
	"github.com/hoopsight/courtload/internal/usecase"
)

// NewHTTPServer wires repositories, services and the router into a ready
// http.Server. The returned cleanup closes the database pool when Postgres
// is configured and is safe to call on the no-op memory path too.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	modelWeights, err := loadModelWeights(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("load model weights: %w", err)
	}
	thresholds := risk.DefaultThresholds()

	playerRepo, gameRepo, visionRepo, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	riskSvc := usecase.NewRiskService(playerRepo, modelWeights, thresholds, store, cfg.ProfileWorkers)
	playerSvc := usecase.NewPlayerService(playerRepo)
	scheduleSvc := usecase.NewScheduleService(gameRepo, riskSvc, thresholds)

	var analyzer usecase.ClipAnalyzer
	if cfg.VisionEnabled {
		analyzer = visionapi.NewClient(visionapi.ClientConfig{
			HTTPClient: &http.Client{Timeout: cfg.VisionTimeout},
			BaseURL:    cfg.VisionBaseURL,
			Timeout:    cfg.VisionTimeout,
			MaxRetries: cfg.VisionMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.VisionCircuitEnabled,
				FailureThreshold: cfg.VisionCircuitFailureCount,
				OpenTimeout:      cfg.VisionCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.VisionCircuitHalfOpenMaxReq,
			},
		})
	} else {
		logger.Info("vision analyzer disabled", "reason", "VISION_ENABLED=false")
	}

	visionSvc := usecase.NewVisionService(
		analyzer,
		visionRepo,
		riskSvc,
		idgen.NewRandomGenerator(),
		thresholds,
		cfg.VisionBlendWeight,
	)
	overviewSvc := usecase.NewOverviewService(riskSvc, scheduleSvc)

	handler := httpapi.NewHandler(playerSvc, riskSvc, scheduleSvc, visionSvc, overviewSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanupQuietly(cleanup, logger)
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func loadModelWeights(cfg config.Config) (risk.ModelWeights, error) {
	if cfg.WeightsPath != "" {
		return weights.Load(cfg.WeightsPath)
	}
	return weights.Default()
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (
	player.Repository,
	schedule.Repository,
	vision.Repository,
	func() error,
	error,
) {
	if !cfg.UsePostgres() {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return memory.NewPlayerHistoryRepository(memory.SeedPlayerHistories()),
			memory.NewGameRepository(memory.SeedGames()),
			memory.NewVisionRepository(),
			func() error { return nil },
			nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("using postgres repositories", "database", dbNameFromURL(cfg.DBURL))

	return postgres.NewPlayerHistoryRepository(db),
		postgres.NewGameRepository(db),
		postgres.NewVisionRepository(db),
		db.Close,
		nil
}

func cleanupQuietly(cleanup func() error, logger *logging.Logger) {
	if cleanup == nil {
		return
	}
	if err := cleanup(); err != nil {
		logger.Warn("cleanup failed", "error", err)
	}
}
