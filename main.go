package main

import (
	"context"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/app"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/auth"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/config"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/logger"
	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/persist"
)

func main() {
	_ = godotenv.Load(".env", ".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	var kv persist.KV
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		sqliteKV, err := persist.NewSQLiteKV(path)
		if err != nil {
			log.Fatalf("sqlite store: %v", err)
		}
		kv = sqliteKV
		slog.Info("using sqlite storage", "path", path)
	} else {
		kv = persist.NewMemoryKV()
		slog.Info("using in-memory storage")
	}
	defer kv.Close()

	adapter := persist.NewAdapter(kv)
	authCfg := auth.DefaultConfig(cfg.JWTSecret)
	if cfg.AuthFastMode {
		authCfg = auth.Config{Secret: cfg.JWTSecret}
	}
	authSvc, err := auth.NewService(adapter, authCfg)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}

	application := app.New(adapter, authSvc)
	if err := application.Bootstrap(context.Background()); err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	// The engine carries no UI of its own; an embedding shell drives the
	// app through internal/app. Booting here verifies the profile loads.
	state := application.Store().State()
	slog.Info("cricmanager ready",
		"authenticated", authSvc.IsAuthenticated(),
		"tournaments", len(state.Tournaments),
		"selected", state.SelectedTournamentID,
		"auctionPool", len(state.UnassignedPlayers),
		"view", application.Views().Active(),
	)
}
