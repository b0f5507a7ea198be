package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reufer-studio/marketplace-api/internal/config"
	"github.com/reufer-studio/marketplace-api/internal/database"
	"github.com/reufer-studio/marketplace-api/internal/handler"
	"github.com/reufer-studio/marketplace-api/internal/logger"
	"github.com/reufer-studio/marketplace-api/internal/middleware"
	"github.com/reufer-studio/marketplace-api/internal/repository"
	"github.com/reufer-studio/marketplace-api/internal/router"
	"github.com/reufer-studio/marketplace-api/internal/server"
	"github.com/reufer-studio/marketplace-api/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		os.Exit(1)
	}

	if err := database.Migrate(context.Background(), log, cfg); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	s.SetupHTTPServer(router.New(handlers, middlewares))

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server stopped unexpectedly")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("marketplace api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	loggerService.Shutdown(10 * time.Second)

	log.Info().Msg("shutdown complete")
}
