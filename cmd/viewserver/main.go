// Command viewserver serves the screen fragments over HTTP, for running the
// client with VIEWS_SOURCE pointing at it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bvberber/assets"
	"bvberber/config"
	applog "bvberber/utils/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "viewserver:", err)
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
	applog.Init("bvberber-viewserver", applog.Options{Mode: mode, Level: cfg.LogLevel})
	defer applog.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	handler, _ := newHandler(viewsFS(cfg.ViewsDir), reg)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		applog.L().Infow("viewserver listening", "addr", cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// viewsFS prefers fragments on disk so they can be edited without a rebuild.
func viewsFS(dir string) fs.FS {
	if dir != "" {
		if st, err := os.Stat(dir + "/views"); err == nil && st.IsDir() {
			applog.L().Infow("serving views from disk", "dir", dir)
			return os.DirFS(dir)
		}
	}
	return assets.Views
}
