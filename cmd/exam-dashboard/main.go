package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/exam-logistics-api/api/swagger"
	"github.com/noah-isme/exam-logistics-api/internal/handler"
	internalmiddleware "github.com/noah-isme/exam-logistics-api/internal/middleware"
	"github.com/noah-isme/exam-logistics-api/internal/repository"
	"github.com/noah-isme/exam-logistics-api/internal/service"
	"github.com/noah-isme/exam-logistics-api/pkg/cache"
	"github.com/noah-isme/exam-logistics-api/pkg/config"
	"github.com/noah-isme/exam-logistics-api/pkg/database"
	"github.com/noah-isme/exam-logistics-api/pkg/jobs"
	"github.com/noah-isme/exam-logistics-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/exam-logistics-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/exam-logistics-api/pkg/middleware/requestid"
	"github.com/noah-isme/exam-logistics-api/pkg/storage"
)

// @title Exam Logistics API
// @version 1.0.0
// @description Surveillance, room and convocation schedules for mock exams.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsSvc := service.NewMetricsService()
	checks := map[string]handler.ReadinessCheck{}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
			redisClient = nil
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, "exam-dashboard", logr)
	defer cacheRepo.Close() //nolint:errcheck
	if redisClient != nil {
		checks["redis"] = cacheRepo.Ping
	}

	var datasetRepo service.DatasetRepository = repository.NewStaticDatasetRepository()
	if cfg.Datasets.Source == config.DatasetSourcePostgres {
		var db *sqlx.DB
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		checks["postgres"] = db.PingContext
		datasetRepo = repository.NewPostgresDatasetRepository(db, metricsSvc)
	}

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, redisClient != nil)

	datasetSvc := service.NewDatasetService(datasetRepo, validator.New(), metricsSvc, logr)
	dashboardSvc := service.NewDashboardService(datasetSvc, cacheSvc, service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL}, logr)

	files, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare export storage", zap.String("dir", cfg.Exports.StorageDir), zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	exportSvc := service.NewExportService(
		datasetSvc,
		service.NewConvocationService(cfg.SchoolName),
		files,
		signer,
		service.ExportRenderers{},
		metricsSvc,
		service.ExportConfig{APIPrefix: cfg.APIPrefix, ResultTTL: cfg.Exports.SignedURLTTL},
		logr,
	)
	jobSvc := service.NewExportJobService(datasetSvc, exportSvc, metricsSvc, service.ExportJobConfig{
		BatchSize: cfg.Exports.BatchSize,
		Retention: cfg.Exports.SignedURLTTL,
	}, logr)

	queue := jobs.NewQueue("exports", jobSvc.Handle, jobs.QueueConfig{
		Workers:    cfg.Exports.WorkerConcurrency,
		MaxRetries: cfg.Exports.WorkerRetries,
		RetryDelay: 2 * time.Second,
		JobTimeout: 5 * time.Minute,
		OnFailure:  jobSvc.Fail,
		Logger:     logr,
	})
	queue.Start(ctx)
	defer queue.Stop()
	jobSvc.AttachQueue(queue)
	jobSvc.StartCleanup(ctx, cfg.Exports.CleanupInterval)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc, "/health", "/ready", "/metrics"))

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Datasets:  handler.NewDatasetHandler(datasetSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Exports:   handler.NewExportHandler(exportSvc, jobSvc),
		Metrics:   handler.NewMetricsHandler(metricsSvc, checks),
	}, internalmiddleware.WithResponseMeta())

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "datasets", cfg.Datasets.Source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
