// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"io/fs"
	"net/http"
	"strconv"
	"time"

	applog "bvberber/utils/log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type serverMetrics struct {
	served *prometheus.CounterVec
}

func newServerMetrics(reg prometheus.Registerer) *serverMetrics {
	m := &serverMetrics{
		served: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bvberber",
			Subsystem: "viewserver",
			Name:      "fragments_served_total",
			Help:      "Fragment requests by path and status code.",
		}, []string{"path", "code"}),
	}
	reg.MustRegister(m.served)
	return m
}

// newHandler serves the views/ directory of fsys and the metrics of reg.
func newHandler(fsys fs.FS, reg *prometheus.Registry) (http.Handler, *serverMetrics) {
	m := newServerMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	files := http.FileServer(http.FS(fsys))
	r.With(m.count).Get("/views/*", files.ServeHTTP)
	return r, m
}

// otherPath labels every request that did not resolve to a served file.
const otherPath = "other"

// count records served fragments. Only paths that exist in the served
// tree keep their own label, so arbitrary request paths cannot grow the
// series count.
func (m *serverMetrics) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		path := otherPath
		if status := ww.Status(); status >= 200 && status < 400 {
			path = r.URL.Path
		}
		m.served.WithLabelValues(path, strconv.Itoa(ww.Status())).Inc()
	})
}

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := middleware.GetReqID(r.Context())
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		applog.L().Infow("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", reqID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
