// Package main wires the HTTP server for the project and task tracking service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/config"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/repository"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/transport/http/middleware"
	handlers_fiber "github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/transport/http/server/handlers-fiber"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/usecase"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/pkg/hasher"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	h, err := hasher.New(cfg.Auth.PasswordAlgo, cfg.Auth.BcryptCost)
	if err != nil {
		log.Errorw("hasher initialization error", "error", err)
		return
	}

	uc := usecase.New(log, ctx, repo, h, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New())
	serv.Use(middleware.RequestLogger(log))

	handlers_fiber.NewHandler(log, uc).RegisterRoutes(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
