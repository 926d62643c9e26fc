package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/pkg/errors"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := LoadConfig()
	if err != nil {
		log.Error("❌ config", "err", err)
		os.Exit(1)
	}

	metrics := NewMetrics()
	app := NewApp(cfg, log, NewUpstream(cfg.APIBaseURL, cfg.UpstreamTimeout, log), metrics)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handlers.LoggingHandler(os.Stdout, app.Routes()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("🏁 Rainline is running", "addr", cfg.ListenAddr, "api", cfg.APIBaseURL, "seasons", cfg.Seasons)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("❌ webserver", "err", err)
			os.Exit(1)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", "err", err)
	}
	log.Info("webserver shutting down")
}
