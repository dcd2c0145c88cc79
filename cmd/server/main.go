package main

import (
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/housemate-app/housemate/internal/api"
	"github.com/housemate-app/housemate/internal/auth"
	"github.com/housemate-app/housemate/internal/chores"
	"github.com/housemate-app/housemate/internal/config"
	"github.com/housemate-app/housemate/internal/household"
	"github.com/housemate-app/housemate/internal/ledger"
	"github.com/housemate-app/housemate/internal/storage/sqlite"
	"github.com/housemate-app/housemate/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	households := household.NewService(store)
	expenses := ledger.NewService(store, households)
	choreSvc := chores.NewService(store, households)

	server := api.New(store, authenticator, jwtManager, households, expenses, choreSvc)

	// h2c allows HTTP/2 without TLS behind a terminating proxy.
	handler := h2c.NewHandler(server.Handler(), &http2.Server{})

	slog.Info("server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
