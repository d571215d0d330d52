package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	slogmulti "github.com/samber/slog-multi"

	"github.com/vegvisr/sources-worker/app/aggregator"
	"github.com/vegvisr/sources-worker/app/api"
	"github.com/vegvisr/sources-worker/app/cfg"
	"github.com/vegvisr/sources-worker/app/feed"
	"github.com/vegvisr/sources-worker/app/metrics"
	"github.com/vegvisr/sources-worker/app/registry"
)

func main() {
	config, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if config == nil {
		return
	}

	logger := setupLogger(config.Debug)
	slog.SetDefault(logger)

	if err := cfg.ApplyTimezone(config.Timezone); err != nil {
		slog.Warn("Invalid timezone, using system default", "timezone", config.Timezone, "error", err)
	}

	slog.Info("Starting sources worker", "version", config.Version)

	reg, err := registry.Load(config.SourcesFile)
	if err != nil {
		slog.Error("Failed to load source registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Source registry loaded", "sources", reg.Len(), "feeds", reg.FeedCount())

	m := metrics.New(metrics.NewRegistry())

	fetcher := feed.NewFetcher(newParser(config.Parser), config.UserAgent, config.FetchTimeout).
		WithObserver(m)
	agg := aggregator.New(reg, fetcher)

	handler := api.NewHandler(agg, config.PublicURL, config.Version)
	engine := api.NewServer(handler, m.Handler())

	httpServer := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      api.Wrap(engine, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: config.FetchTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", config.Port, "parser", config.Parser)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Sources worker stopped")
}

// setupLogger writes human-readable logs to stdout and errors as JSON to
// stderr.
func setupLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})

	return slog.New(slogmulti.Fanout(textHandler, jsonHandler))
}

func newParser(name string) feed.Parser {
	if name == cfg.ParserGofeed {
		return feed.NewGofeedParser()
	}
	return feed.NewRegexParser()
}
