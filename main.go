package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"libros/activity"
	"libros/config"
	"libros/db"
	"libros/logging"
	"libros/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	library, closeLibrary, err := db.NewLibrary(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLibrary()

	var journal activity.Journal
	if cfg.ActivityEnabled() {
		redisClient, err := config.SetupRedis(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		journal = activity.NewRedisJournal(redisClient, cfg.Activity.MaxNumber)
		logger.Info("request activity journal enabled", zap.Int("max_number", cfg.Activity.MaxNumber))
	}

	gin.SetMode(cfg.HTTP.GinMode)
	routes := service.SetupRoutes(logger, library, journal)

	server := &http.Server{
		Addr:    net.JoinHostPort("", cfg.HTTP.Port),
		Handler: routes,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("address", "http://localhost:"+cfg.HTTP.Port+"/"))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()

	return server.Shutdown(shutdownCtx)
}
