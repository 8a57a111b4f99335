package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/county-health-api/cliparse"
	"github.com/danielhkuo/county-health-api/db"
	"github.com/danielhkuo/county-health-api/router"
)

func main() {
	// Load .env if present; real environment variables still win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the health-data store (built offline by cmd/csvload)
	store, err := db.Open(cfg)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Database ready", "type", cfg.DatabaseType, "database", cfg.DatabaseURL)

	// Create router
	handler := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
