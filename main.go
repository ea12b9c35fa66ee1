// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"bvberber/app"
	"bvberber/assets"
	"bvberber/config"
	"bvberber/fetch"
	"bvberber/router"
	"bvberber/routes"
	applog "bvberber/utils/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const appName = "bvberber"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	mode := "prod"
	if cfg.IsDev() {
		mode = "dev"
	}
	applog.Init(appName, applog.Options{Mode: mode, Level: cfg.LogLevel})
	defer applog.Sync()

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}
	table, err := routes.Default().WithHome(cfg.HomeRoute)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr, reg)
	}

	r := router.New(table, fetcher,
		router.WithTransition(router.Delay(cfg.TransitionDelay)),
		router.WithMetrics(router.NewMetrics(reg)),
		router.WithContext(ctx),
	)

	applog.L().Infow("starting", "views", cfg.ViewsSource, "home", table.Home())
	_, err = tea.NewProgram(app.New(r), tea.WithAltScreen()).Run()
	return err
}

func newFetcher(cfg config.Config) (fetch.Fetcher, error) {
	if cfg.Embedded() {
		return fetch.NewFS(assets.Views), nil
	}
	f, err := fetch.NewHTTP(cfg.ViewsSource, &http.Client{Timeout: cfg.FetchTimeout})
	if err != nil {
		return nil, fmt.Errorf("VIEWS_SOURCE: %w", err)
	}
	return f, nil
}

// serveMetrics exposes reg on addr until ctx is cancelled.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) {
	mux := chi.NewRouter()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	applog.L().Infow("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.L().Errorw("metrics server stopped", "error", err)
	}
}
