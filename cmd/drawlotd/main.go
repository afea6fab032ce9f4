package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/fransfilastap/draw-lot-app/internal/adapters/http"
	"github.com/fransfilastap/draw-lot-app/internal/adapters/rosters"
	"github.com/fransfilastap/draw-lot-app/internal/adapters/ws"
	"github.com/fransfilastap/draw-lot-app/internal/app"
	"github.com/fransfilastap/draw-lot-app/internal/config"
	"github.com/fransfilastap/draw-lot-app/internal/ports"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	hub := ws.NewHub(logger)

	hooks := ports.Hooks{
		OnSpinStart: func(info ports.SpinInfo) {
			logger.Info("spin started", "spin_id", info.ID, "prize", info.Prize)
		},
		OnNameListChanged: func() {
			logger.Info("name list replaced")
		},
	}

	engine, err := app.NewEngine(app.Config{
		MaxReelItems: cfg.MaxReelItems,
		RemoveWinner: cfg.RemoveWinner,
		ItemDuration: cfg.ItemDuration,
	}, hub, hooks, stdRNG{}, logger)
	if err != nil {
		logger.Error("failed to build engine", "error", err)
		os.Exit(1)
	}

	if cfg.Roster != "" {
		roster, err := rosters.NewEmbeddedStore().GetRoster(cfg.Roster)
		if err != nil {
			logger.Error("failed to load roster", "roster", cfg.Roster, "error", err)
			os.Exit(1)
		}
		engine.SetNames(roster.Names)
		engine.SetPrizes(roster.Prizes)
		logger.Info("seeded roster", "roster", roster.ID, "names", len(roster.Names), "prizes", len(roster.Prizes))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	httpadapter.NewHandler(engine).Register(e)
	hub.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// An in-flight spin would hold its HTTP response open; settle it
	// so shutdown does not wait out the animation.
	engine.ForceStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
