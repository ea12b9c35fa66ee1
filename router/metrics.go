// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package router

import "github.com/prometheus/client_golang/prometheus"

// Navigation outcomes
const (
	OutcomeOK          = "ok"
	OutcomeUnknown     = "unknown_route"
	OutcomeFetchFailed = "fetch_failed"
	OutcomeBindFailed  = "bind_failed"
)

// Metrics counts navigations and fetch latency.
type Metrics struct {
	navigations   *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	staleResults  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bvberber",
			Subsystem: "router",
			Name:      "navigations_total",
			Help:      "Completed navigations by route and outcome",
		}, []string{"route", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bvberber",
			Subsystem: "router",
			Name:      "fetch_duration_seconds",
			Help:      "Latency of markup resource fetches",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		staleResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bvberber",
			Subsystem: "router",
			Name:      "stale_results_total",
			Help:      "Transition or fetch results dropped because a newer navigation started",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.navigations, m.fetchDuration, m.staleResults)
	return m
}

func (m *Metrics) ObserveNavigation(route, outcome string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(route, outcome).Inc()
}

func (m *Metrics) ObserveFetch(route string, seconds float64) {
	if m == nil {
		return
	}
	m.fetchDuration.WithLabelValues(route).Observe(seconds)
}

func (m *Metrics) ObserveStale() {
	if m == nil {
		return
	}
	m.staleResults.Inc()
}
