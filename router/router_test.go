package router

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"bvberber/assets"
	"bvberber/booking"
	"bvberber/fetch"
	"bvberber/lifecycle"
	"bvberber/markup"
	"bvberber/navigation"
	"bvberber/routes"
	applog "bvberber/utils/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observeLogs routes the global logger into an in-memory core for the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	applog.Use(zap.New(core))
	t.Cleanup(func() { applog.Use(zap.NewNop()) })
	return logs
}

func errorEntries(logs *observer.ObservedLogs) []observer.LoggedEntry {
	return logs.FilterLevelExact(zapcore.ErrorLevel).All()
}

type countingFetcher struct {
	mu    sync.Mutex
	calls map[string]int
	inner fetch.Fetcher
}

func newCountingFetcher(inner fetch.Fetcher) *countingFetcher {
	return &countingFetcher{calls: map[string]int{}, inner: inner}
}

func (c *countingFetcher) Fetch(ctx context.Context, path string) (string, error) {
	c.mu.Lock()
	c.calls[path]++
	c.mu.Unlock()
	return c.inner.Fetch(ctx, path)
}

func (c *countingFetcher) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}

func embedded() fetch.Fetcher { return fetch.NewFS(assets.Views) }

// drain runs cmd and feeds every resulting message back into the router until
// nothing is left, returning the messages the router did not consume.
func drain(r *Router, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case navigation.FragmentChangedMsg, TransitionDoneMsg, FetchedMsg:
			queue = append(queue, r.Update(msg))
		case nil:
		default:
			out = append(out, msg)
		}
	}
	return out
}

func newRouter(t *testing.T, f fetch.Fetcher, opts ...Option) *Router {
	t.Helper()
	opts = append([]Option{WithTransition(Immediate())}, opts...)
	return New(routes.Default(), f, opts...)
}

func TestStartGoesHome(t *testing.T) {
	r := newRouter(t, embedded())

	msgs := drain(r, r.Start())

	assert.Equal(t, "#welcome", r.Location().Fragment())
	assert.Equal(t, routes.Welcome, r.Route())
	assert.Equal(t, PhaseFadingIn, r.Phase())
	assert.Contains(t, msgs, ContentChangedMsg{Seq: 1, Route: routes.Welcome, OK: true})
	assert.Contains(t, msgs, ScrollTopMsg{})
	assert.Contains(t, markup.Text(r.Tree().Root()), "BV Berber")

	r.Settle()
	assert.Equal(t, PhaseIdle, r.Phase())
}

func TestEachKnownRouteFetchedOncePerNavigation(t *testing.T) {
	f := newCountingFetcher(embedded())
	r := newRouter(t, f)
	drain(r, r.Start())

	for _, route := range routes.Default().Names() {
		drain(r, r.Navigate(route))
		path, _ := routes.Default().Resolve(route)
		assert.Equal(t, route, r.Route())
		assert.Equal(t, 1, f.calls[path], route)
	}
	drain(r, r.Navigate(routes.Welcome))
	assert.Equal(t, 2, f.calls["views/welcome.html"])
}

func TestUnknownRouteShowsErrorWithoutFetching(t *testing.T) {
	logs := observeLogs(t)
	f := newCountingFetcher(embedded())
	r := newRouter(t, f)

	msgs := drain(r, r.Navigate("nowhere"))

	assert.Equal(t, 0, f.total())
	errs := errorEntries(logs)
	require.Len(t, errs, 1)
	assert.Equal(t, "nowhere", errs[0].ContextMap()["route"])
	assert.Contains(t, msgs, ContentChangedMsg{Seq: 1, Route: "nowhere", OK: false})
	assert.Contains(t, markup.Text(r.Tree().Root()), "Screen Not Found")
	require.NotNil(t, r.View())
	assert.Equal(t, NotFoundRoute, r.View().Route)
	assert.NotNil(t, r.Tree().Hook(lifecycle.HookBack))
}

func TestFetchFailureShowsErrorFragment(t *testing.T) {
	failing := fetch.Func(func(context.Context, string) (string, error) {
		return "", &fetch.StatusError{Path: "views/services.html", Code: 503}
	})
	logs := observeLogs(t)
	r := newRouter(t, failing)

	msgs := drain(r, r.Navigate(routes.Services))

	assert.Contains(t, msgs, ContentChangedMsg{Seq: 1, Route: routes.Services, OK: false})
	assert.Contains(t, markup.Text(r.Tree().Root()), "Could not load the requested screen.")
	errs := errorEntries(logs)
	require.Len(t, errs, 1)
	assert.Equal(t, routes.Services, errs[0].ContextMap()["route"])
	assert.Equal(t, false, errs[0].ContextMap()["missing"])
}

func TestOversizedFragmentShowsErrorFragment(t *testing.T) {
	logs := observeLogs(t)
	tooLarge := fetch.Func(func(context.Context, string) (string, error) {
		return "", fmt.Errorf("read views/profile.html: %w", fetch.ErrTooLarge)
	})
	r := newRouter(t, tooLarge)

	msgs := drain(r, r.Navigate(routes.Profile))

	assert.Contains(t, msgs, ContentChangedMsg{Seq: 1, Route: routes.Profile, OK: false})
	assert.Equal(t, NotFoundRoute, r.View().Route)
	assert.Len(t, errorEntries(logs), 1)
}

func TestScreenWithoutOptionalHooksLogsNothing(t *testing.T) {
	logs := observeLogs(t)
	plain := fetch.Func(func(context.Context, string) (string, error) {
		return `<h2>Profil</h2><p>geri düğmesi yok</p>`, nil
	})
	r := newRouter(t, plain)

	drain(r, r.Navigate(routes.Profile))

	assert.Equal(t, routes.Profile, r.View().Route)
	assert.Zero(t, logs.Filter(func(e observer.LoggedEntry) bool { return e.Level >= zapcore.WarnLevel }).Len())
}

func TestErrorFragmentBackGoesBack(t *testing.T) {
	r := newRouter(t, embedded())
	drain(r, r.Start())
	drain(r, r.Navigate("nowhere"))

	back := r.Tree().Hook(lifecycle.HookBack)
	drain(r, r.View().Scope.Activate(back))

	assert.Equal(t, routes.Welcome, r.Route())
	assert.False(t, r.CanGoBack())
}

func TestNavbarVisibility(t *testing.T) {
	r := newRouter(t, embedded())

	for _, route := range routes.Default().Names() {
		drain(r, r.Navigate(route))
		bar := r.Navbar()
		if routes.IsImmersive(route) {
			assert.True(t, bar.Hidden(), route)
			continue
		}
		assert.False(t, bar.Hidden(), route)
		var active []string
		for _, it := range bar.Items() {
			if it.Active {
				active = append(active, it.Route)
			}
		}
		assert.Equal(t, []string{route}, active)
	}
}

func TestBookingFlowThroughRouter(t *testing.T) {
	r := newRouter(t, embedded())
	drain(r, r.Start())
	drain(r, r.Navigate(routes.AppointmentSelection))

	view := r.View()
	require.NotNil(t, view)
	require.NotNil(t, view.Booking)

	tree := r.Tree()
	assert.Equal(t, "23 Ekim Pzt, 10:00", markup.Text(tree.Hook(booking.HookSummaryDateTime)))

	for _, o := range view.Booking.Time().Options() {
		if markup.Text(o) == "11:00" {
			drain(r, view.Scope.Activate(o))
		}
	}
	assert.Equal(t, "23 Ekim Pzt, 11:00", markup.Text(tree.Hook(booking.HookSummaryDateTime)))
	assert.Equal(t, "Personel: Baran V.", markup.Text(tree.Hook(booking.HookSummaryStaff)))

	submit := tree.Hook(booking.HookSubmit)
	drain(r, view.Scope.Activate(submit))

	assert.Equal(t, routes.AppointmentConfirmation, r.Route())
	assert.True(t, view.Scope.Disposed())
	assert.Nil(t, r.View().Booking)

	drain(r, r.Back())
	assert.Equal(t, routes.AppointmentSelection, r.Route())
	assert.NotEqual(t, view.Booking.ID(), r.View().Booking.ID())
	assert.Equal(t, "23 Ekim Pzt, 10:00", markup.Text(r.Tree().Hook(booking.HookSummaryDateTime)))
}

func TestStaleNavigationDropped(t *testing.T) {
	f := newCountingFetcher(embedded())
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := newRouter(t, f, WithMetrics(m))

	// Two fragment changes before either transition finishes.
	require.NotNil(t, r.Navigate(routes.Services))
	first := r.OnNavigationChange()
	require.NotNil(t, r.Navigate(routes.Profile))
	second := r.OnNavigationChange()

	assert.Nil(t, r.Update(first()))
	assert.Equal(t, 0, f.total())

	fetchProfile := r.Update(second())
	require.NotNil(t, fetchProfile)
	result := fetchProfile().(FetchedMsg)

	// A late fetch result for an older navigation is dropped too.
	assert.Nil(t, r.Update(FetchedMsg{Seq: 1, Route: routes.Services, Body: "<p>late</p>"}))

	drain(r, r.Update(result))
	assert.Equal(t, routes.Profile, r.Route())
	assert.Equal(t, 1, f.total())
	assert.Equal(t, float64(2), testutil.ToFloat64(m.staleResults))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.navigations.WithLabelValues(routes.Profile, OutcomeOK)))
}

func TestSelectionMissingHooksFallsBackToErrorFragment(t *testing.T) {
	broken := fetch.Func(func(context.Context, string) (string, error) {
		return `<button data-hook="back">Geri</button><p>eksik</p>`, nil
	})
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := newRouter(t, broken, WithMetrics(m))

	msgs := drain(r, r.Navigate(routes.AppointmentSelection))

	assert.Contains(t, msgs, ContentChangedMsg{Seq: 1, Route: routes.AppointmentSelection, OK: false})
	assert.Contains(t, markup.Text(r.Tree().Root()), "Screen Not Found")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.navigations.WithLabelValues(routes.AppointmentSelection, OutcomeBindFailed)))
}

func TestNavigateSameRouteIsNoop(t *testing.T) {
	r := newRouter(t, embedded())
	drain(r, r.Start())
	assert.Nil(t, r.Navigate(routes.Welcome))
	assert.Nil(t, r.Back())
}

func TestIsNotFound(t *testing.T) {
	_, err := routes.Default().Resolve("x")
	assert.True(t, IsNotFound(err))
	_, err = fetch.NewFS(assets.Views).Fetch(context.Background(), "views/x.html")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("dial tcp: refused")))
	assert.False(t, IsNotFound(fs.ErrPermission))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveNavigation("welcome", OutcomeOK)
	m.ObserveFetch("welcome", 0.1)
	m.ObserveStale()
}
