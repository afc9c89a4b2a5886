// Package main runs the stablecoin view service: scheduled provider
// collection feeding the view model transformer, exposed over HTTP.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stablecoin-view/internal/api"
	"stablecoin-view/internal/config"
	"stablecoin-view/internal/observability"
	"stablecoin-view/internal/source"
	"stablecoin-view/internal/viewmodel"
)

func main() {
	cfgPath := flag.String("config", "config/config.yaml", "Path to YAML configuration")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		// Logger is not configured yet; fall back to a production default.
		zap.Must(zap.NewProduction()).Fatal("failed to load configuration",
			zap.String("path", *cfgPath), zap.Error(err))
	}

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()
	logger.Info("configuration loaded", zap.String("path", *cfgPath))

	// Unknown transformer/formatter types abort here, before anything runs.
	transformer, err := viewmodel.FromConfig(viewmodel.Config{
		Type:          cfg.Transformer.Type,
		FormatterType: cfg.Transformer.FormatterType,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to construct transformer",
			zap.String("type", cfg.Transformer.Type),
			zap.String("formatterType", cfg.Transformer.FormatterType),
			zap.Error(err))
	}

	client := source.NewClient(cfg.Provider.BaseURL, logger,
		source.WithTimeout(time.Duration(cfg.Provider.RequestTimeoutMillis)*time.Millisecond),
		source.WithRateLimit(cfg.Provider.RateLimitPerSecond, cfg.Provider.RateLimitBurst),
		source.WithMaxRetries(cfg.Provider.MaxRetries),
	)
	collector := source.NewCollector(client, time.Duration(cfg.Provider.CacheTTLMinutes)*time.Minute, logger)

	handler := api.NewHandler(transformer, logger)
	router := api.SetupRouter(handler, cfg.Server.AllowedOrigins)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	go runRefreshLoop(ctx, collector, handler, time.Duration(cfg.Server.RefreshIntervalSeconds)*time.Second, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("serving", zap.String("addr", cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

// runRefreshLoop collects a fresh batch on every tick and feeds it through
// the transformer. A failed collection keeps the previous view model; the
// pipeline never sees partial provider data.
func runRefreshLoop(ctx context.Context, collector *source.Collector, handler *api.Handler, interval time.Duration, logger *zap.Logger) {
	refresh := func() {
		collectCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		batch, err := collector.CollectBatch(collectCtx)
		if err != nil {
			logger.Error("collection failed, keeping previous view model", zap.Error(err))
			return
		}
		handler.Refresh(batch)
		observability.DefaultMetrics.LastSuccessfulRefresh.SetToCurrentTime()
		logger.Info("view model refreshed", zap.Int("assets", len(batch)))
	}

	refresh()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}

// newLogger builds the service logger at the configured level.
func newLogger(level string) *zap.Logger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	return zap.Must(cfg.Build())
}
