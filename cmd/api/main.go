package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"smart-advisor/internal/config"
	"smart-advisor/internal/db"
	"smart-advisor/internal/domain"
	apihttp "smart-advisor/internal/http"
	"smart-advisor/internal/repository"
	"smart-advisor/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Fatal("catalog load", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("items", catalog.Len()),
		zap.Strings("traits", catalog.Space().Dimensions()),
	)

	questionnaire, templates, err := repository.LoadQuestionnaireYAML(cfg.QuestionnairePath, catalog.Space())
	if err != nil {
		logger.Fatal("questionnaire load", zap.Error(err))
	}

	narrative, err := service.NewNarrativeGenerator(catalog.Space(), templates)
	if err != nil {
		logger.Fatal("narrative templates", zap.Error(err))
	}
	aggregator := service.NewAggregator(catalog.Space(), questionnaire)
	ranker := service.NewRanker(cfg.TopK)
	advisorSvc := service.NewAdvisorService(catalog, questionnaire, aggregator, ranker, narrative, logger)

	var limiter service.ScoreRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisScoreRateLimiter(
				redisClient,
				time.Duration(cfg.ScoreRateWindow)*time.Second,
				cfg.ScoreRateMax,
			)
		}
		cancel()
	}

	advisorHandler := apihttp.NewAdvisorHandler(logger, advisorSvc, limiter)
	router := apihttp.NewRouter(logger, advisorHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*domain.Catalog, error) {
	if cfg.CatalogSource == "postgres" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		// The catalog is read once; the pool is not needed afterwards.
		defer pool.Close()
		return repository.NewPgCatalogSource(pool).Load(ctx)
	}
	return repository.LoadCatalogCSV(cfg.CatalogPath)
}
