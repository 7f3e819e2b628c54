package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"loandesk/internal/api"
	apimetrics "loandesk/internal/api/metrics"
	"loandesk/internal/flash"
	"loandesk/internal/format"
	"loandesk/internal/platform/config"
	"loandesk/internal/platform/httpserver"
	"loandesk/internal/platform/logger"
	"loandesk/internal/platform/metrics"
	"loandesk/internal/platform/redis"
	httptransport "loandesk/internal/transport/http"
	"loandesk/internal/web"
)

const shutdownTimeout = 10 * time.Second

// main wires the dashboard: config, logging, metrics, the toast store, the
// core API client and the page handlers, then serves until interrupted.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	pageMetrics := metrics.New(reg)

	toasts, redisClient, err := newToastStore(ctx, cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	routerCfg := httptransport.RouterConfig{Logger: log, Metrics: pageMetrics}
	if redisClient != nil {
		defer redisClient.Close()
		routerCfg.Redis = redisClient
		log.Info("flash messages stored in redis")
	} else {
		log.Info("flash messages stored in memory")
	}

	client := api.New(cfg.API.BaseURL, log, api.WithMetrics(apimetrics.New(reg)))
	formatter := format.New(cfg.Locale)
	pages := web.New(client, client, toasts, formatter, log, pageMetrics)

	srv := httpserver.New(cfg.Server.Addr, httptransport.NewRouter(routerCfg, pages))

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting loandesk", "addr", cfg.Server.Addr, "api_base_url", cfg.API.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// newToastStore picks redis when configured and falls back to process memory.
func newToastStore(ctx context.Context, cfg config.RedisConfig) (flash.Store, *redis.Client, error) {
	client, err := redis.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return flash.NewInMemory(config.FlashTTL), nil, nil
	}
	return flash.NewRedis(client.Client, config.FlashTTL), client, nil
}
