package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/solodev/soloquest/internal/auth"
	"github.com/solodev/soloquest/internal/cache"
	"github.com/solodev/soloquest/internal/config"
	httpx "github.com/solodev/soloquest/internal/http"
	"github.com/solodev/soloquest/internal/notifications"
	"github.com/solodev/soloquest/internal/observability"
	"github.com/solodev/soloquest/internal/store"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	// tracing is optional; enabled only when an endpoint is configured
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(context.Background(), "soloquest", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
		} else {
			defer func() {
				ctx, cancel := config.WithTimeout(5 * time.Second)
				defer cancel()
				_ = shutdown(ctx)
			}()
		}
	}

	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	// project-list cache: Redis when configured, in-process otherwise
	var projectCache cache.Cache = cache.NewMemory(cfg.CacheTTL)

	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			TTL:      cfg.CacheTTL,
		})

		pingCtx, cancel := config.WithTimeout(2 * time.Second)
		err := rc.Ping(pingCtx)
		cancel()

		if err != nil {
			log.Warn("redis unreachable, using in-process cache", "err", err)
		} else {
			projectCache = rc
			defer rc.Close()
		}
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	st := store.New(store.Deps{
		Config:   cfg,
		Log:      log,
		Metrics:  prom,
		Notifier: notifications.NewThrottledNotifier(notifications.NewLogNotifier(log), 30*time.Second),
		Cache:    projectCache,
		Tokens:   tokens,
	})

	// connect eagerly so startup logs show which backend we got;
	// operations would lazily connect anyway
	warmCtx, cancel := config.WithTimeout(10 * time.Second)
	backed := st.StoreBacked(warmCtx)
	cancel()
	log.Info("store ready", "database_backed", backed)

	router := httpx.NewRouter(cfg, log, st, tokens, prom, reg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
