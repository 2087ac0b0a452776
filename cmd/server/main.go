package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"memberreg/internal/household/handler"
	"memberreg/internal/household/service"
	"memberreg/internal/household/store"
	"memberreg/internal/household/submitter"
	httpapi "memberreg/internal/http"
	"memberreg/internal/platform/config"
	"memberreg/internal/platform/httpserver"
	"memberreg/internal/platform/logger"
	"memberreg/internal/platform/metrics"
	"memberreg/internal/ratelimit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	client := submitter.New(cfg.Registration.BaseURL, cfg.Registration.Path, cfg.Registration.SubmitTimeout,
		submitter.WithLogger(log),
		submitter.WithMetrics(m),
	)
	svc := service.New(store.NewInMemoryDraftStore(), client,
		service.WithLogger(log),
		service.WithMetrics(m),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var handlerOpts []handler.Option
	if cfg.Server.DraftsPerMinute > 0 {
		window := ratelimit.NewSlidingWindow(cfg.Server.DraftsPerMinute, time.Minute)
		go window.RunSweeper(ctx, 5*time.Minute)
		handlerOpts = append(handlerOpts, handler.WithCreateThrottle(ratelimit.New(window, log).PerClientIP))
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Drafts:         handler.New(svc, log, handlerOpts...),
		Logger:         log,
		Metrics:        m,
		Gatherer:       reg,
		RequestTimeout: cfg.Registration.SubmitTimeout + 5*time.Second,
	})
	srv := httpserver.New(cfg.Server.Addr, router, cfg.Registration.SubmitTimeout)

	log.Info("starting memberreg",
		"addr", cfg.Server.Addr,
		"registration_api", cfg.Registration.BaseURL+cfg.Registration.Path,
	)

	if err := httpserver.Run(ctx, srv, log, 10*time.Second); err != nil {
		log.Error("server error", "error", err)
		stop()
		os.Exit(1)
	}
}
