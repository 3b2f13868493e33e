package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thaalam/admin-system/internal/api"
	"github.com/thaalam/admin-system/internal/core/service"
	"github.com/thaalam/admin-system/internal/infrastructure/config"
	mongodb "github.com/thaalam/admin-system/internal/infrastructure/db/mongo"
	redisdb "github.com/thaalam/admin-system/internal/infrastructure/db/redis"
	"github.com/thaalam/admin-system/internal/infrastructure/queue"
	"github.com/thaalam/admin-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		bootLog := logger.Get()
		bootLog.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := mongodb.EnsureAllIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("index creation failed, continuing")
	}

	// Media pipeline: podcast uploads are processed off the request path.
	processor := service.NewMediaProcessorService(mongodb.NewPodcastRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.MediaWorkers, processor, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterConfig{
		DB:         db,
		Redis:      rdb,
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: cfg.SessionTTL,
		PageSize:   cfg.PageSize,
		UploadDir:  cfg.Upload.Dir,
		UploadMax:  cfg.Upload.MaxBytes,
		MediaQueue: dispatcher,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
