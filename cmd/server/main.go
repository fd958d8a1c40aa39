package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sebasmzg/characters-api/internal/config"
	"github.com/sebasmzg/characters-api/internal/events"
	"github.com/sebasmzg/characters-api/internal/httpserver"
	"github.com/sebasmzg/characters-api/internal/logging"
	authmw "github.com/sebasmzg/characters-api/internal/middleware/auth"
	loggingmw "github.com/sebasmzg/characters-api/internal/middleware/logging"
	"github.com/sebasmzg/characters-api/internal/repo"
	"github.com/sebasmzg/characters-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	var producer *events.Producer
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer(cfg.KafkaAddress, events.Topic)
	}

	users := repo.NewUserRepo()
	characters := repo.NewCharacterRepo()
	revoked := repo.NewRevokedTokens()

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{Svc: &service.AuthService{
			Users:    users,
			Revoked:  revoked,
			Secret:   cfg.JWTSecret,
			Producer: producer,
		}},
		CharacterHandler: &httpserver.CharacterHTTP{Svc: &service.CharacterService{
			Repo:     characters,
			Producer: producer,
		}},
		Auth: authmw.New(cfg.JWTSecret, revoked),
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
