package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"relic-gallery-service/internal/adapters/primary/http/handlers"
	"relic-gallery-service/internal/adapters/primary/http/middleware"
	"relic-gallery-service/internal/adapters/secondary/harvard"
	"relic-gallery-service/internal/adapters/secondary/localfs"
	"relic-gallery-service/internal/adapters/secondary/postgres"
	"relic-gallery-service/internal/config"
	"relic-gallery-service/internal/core/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	if err := postgres.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	// Secondary adapters
	artifactRepo := postgres.NewArtifactRepository(pool)
	interpolationRepo := postgres.NewInterpolationRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	store, err := localfs.NewStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("init file store: %v", err)
	}

	museumClient := harvard.NewClient(&cfg.Museum)
	if museumClient.IsAvailable() {
		log.Info("museum catalog client initialized")
	} else {
		log.Info("museum catalog integration disabled")
	}

	// Core services
	artifactSvc := services.NewArtifactService(artifactRepo, store, museumClient)
	interpolationSvc := services.NewInterpolationService(interpolationRepo, artifactRepo, store)
	progressionSvc := services.NewProgressionService(interpolationRepo, artifactRepo)
	authSvc := services.NewAuthService(adminRepo, cfg.Auth.SessionSecret, cfg.Auth.SessionTTL)
	museumSvc := services.NewMuseumService(museumClient)

	if err := authSvc.EnsureDefaultAdmin(context.Background(), cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	// Primary adapter
	h := handlers.New(artifactSvc, interpolationSvc, progressionSvc, authSvc, museumSvc, cfg.Uploads.MaxSizeBytes())

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	router.MaxMultipartMemory = cfg.Uploads.MaxSizeBytes()

	api := router.Group("/api/v1/gallery")
	h.RegisterRoutes(api)

	// Stored images
	router.Static("/uploads", store.Root())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
