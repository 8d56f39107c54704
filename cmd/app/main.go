package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"paperfolio/configs"
	"paperfolio/internal/database"
	delivery "paperfolio/internal/delivery/http"
	"paperfolio/internal/infra"
	"paperfolio/internal/repository"
	"paperfolio/internal/service"
)

func main() {
	cfg := configs.MustLoad()

	setupLogger(cfg)

	ctx := context.Background()

	// Run schema migrations before opening the pool
	if err := database.RunMigrations(cfg.Database.URL); err != nil {
		slog.Error("failed to run migrations", slog.String("err", err.Error()))
		os.Exit(1)
	}

	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	// Storage
	pg := repository.NewPostgres(db)
	userRepo := repository.NewUserRepository(pg)
	ledgerRepo := repository.NewLedgerRepository(pg)

	// Services
	quoteService := service.NewQuoteService(cfg)
	accountant := service.NewPortfolioService(userRepo, ledgerRepo, quoteService, pg)

	// HTTP delivery
	authHandler := delivery.NewAuthHandler(userRepo, cfg.Trading.StartingCashAmount())
	portfolioHandler := delivery.NewPortfolioHandler(accountant, quoteService, userRepo)

	e := echo.New()
	e.HideBanner = true
	delivery.SetupRoutes(e, &delivery.RouterConfig{
		AuthHandler:      authHandler,
		PortfolioHandler: portfolioHandler,
	})

	go func() {
		slog.Info("server starting",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("starting_cash", cfg.Trading.StartingCash),
		)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", slog.String("err", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("err", err.Error()))
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

func setupLogger(cfg *configs.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
