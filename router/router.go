// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package router turns navigation fragment changes into installed, bound
// screens.
package router

import (
	"context"
	"errors"
	"time"

	"bvberber/fetch"
	"bvberber/lifecycle"
	"bvberber/markup"
	"bvberber/navigation"
	"bvberber/routes"
	applog "bvberber/utils/log"
	"bvberber/views/navbar"

	tea "github.com/charmbracelet/bubbletea"
)

// NotFoundRoute is the route name the error fragment is bound under.
const NotFoundRoute = "not_found"

// NotFoundFragment replaces the content when a screen cannot be shown.
const NotFoundFragment = `<section class="error-screen">
  <p class="error-icon">⚠</p>
  <h2>Screen Not Found</h2>
  <p class="muted-text">Could not load the requested screen.</p>
  <button data-hook="back">← Geri</button>
</section>`

// Phase is the content container's transition state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseFadingIn
)

func (p Phase) String() string {
	switch p {
	case PhaseFadingOut:
		return "fading-out"
	case PhaseFadingIn:
		return "fading-in"
	default:
		return "idle"
	}
}

type Option func(*Router)

// WithTransition replaces the default 200ms exit transition.
func WithTransition(t Transition) Option {
	return func(r *Router) { r.transition = t }
}

func WithMetrics(m *Metrics) Option {
	return func(r *Router) { r.metrics = m }
}

// WithNavbar sets the bar the router shows, hides and indicates on.
func WithNavbar(b *navbar.Bar) Option {
	return func(r *Router) { r.bar = b }
}

// WithContext sets the parent context of every fetch.
func WithContext(ctx context.Context) Option {
	return func(r *Router) { r.ctx = ctx }
}

// Router owns the navigation fragment and the content container. All methods
// run on the Bubble Tea update loop; only fetches run elsewhere.
type Router struct {
	table      *routes.Table
	fetcher    fetch.Fetcher
	location   navigation.Location
	tree       *markup.Tree
	bar        *navbar.Bar
	lifecycle  *lifecycle.Manager
	view       *lifecycle.View
	transition Transition
	metrics    *Metrics
	ctx        context.Context

	seq     uint64
	pending string
	route   string
	phase   Phase
}

func New(table *routes.Table, fetcher fetch.Fetcher, opts ...Option) *Router {
	r := &Router{
		table:      table,
		fetcher:    fetcher,
		tree:       markup.New(),
		bar:        navbar.New(navbar.DefaultItems()),
		transition: Delay(DefaultTransitionDelay),
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lifecycle = lifecycle.NewManager(r)
	return r
}

// Start selects the initial screen: the home route when the fragment is
// empty, otherwise whatever the fragment names.
func (r *Router) Start() tea.Cmd {
	if r.location.Fragment() == "" {
		return r.Navigate(r.table.Home())
	}
	return r.location.Changed()
}

// Navigate sets the fragment to route. The change notification follows as a
// message; nothing happens when the fragment already names route.
func (r *Router) Navigate(route string) tea.Cmd {
	if !r.location.Set(route) {
		return nil
	}
	return r.location.Changed()
}

// Back returns to the previous history entry, if any.
func (r *Router) Back() tea.Cmd {
	if !r.location.Back() {
		return nil
	}
	return r.location.Changed()
}

func (r *Router) CanGoBack() bool { return r.location.Depth() > 0 }

// Update handles the router's own messages and ignores everything else.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case navigation.FragmentChangedMsg:
		return r.OnNavigationChange()
	case TransitionDoneMsg:
		return r.handleTransitionDone(msg)
	case FetchedMsg:
		return r.handleFetched(msg)
	}
	return nil
}

// OnNavigationChange starts a navigation to the route the fragment names.
// Each call gets a new sequence number; results of older navigations that
// arrive later are dropped.
func (r *Router) OnNavigationChange() tea.Cmd {
	route := r.location.Route(r.table.Home())

	if routes.IsImmersive(route) {
		r.bar.Hide()
	} else {
		r.bar.Show(route)
	}

	r.seq++
	r.pending = route
	r.phase = PhaseFadingOut
	applog.L().Debugw("navigation started", "route", route, "seq", r.seq)

	return r.transition(r.seq)
}

func (r *Router) handleTransitionDone(msg TransitionDoneMsg) tea.Cmd {
	if r.stale(msg.Seq) {
		return nil
	}
	route := r.pending
	path, err := r.table.Resolve(route)
	if err != nil {
		applog.L().Errorw("cannot show screen", "route", route, "error", err)
		r.metrics.ObserveNavigation("unknown", OutcomeUnknown)
		return r.install(msg.Seq, route, "", err)
	}
	return r.fetchCmd(msg.Seq, route, path)
}

func (r *Router) fetchCmd(seq uint64, route, path string) tea.Cmd {
	ctx, fetcher := r.ctx, r.fetcher
	return func() tea.Msg {
		start := time.Now()
		body, err := fetcher.Fetch(ctx, path)
		return FetchedMsg{
			Seq:     seq,
			Route:   route,
			Path:    path,
			Body:    body,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}

func (r *Router) handleFetched(msg FetchedMsg) tea.Cmd {
	if r.stale(msg.Seq) {
		return nil
	}
	r.metrics.ObserveFetch(msg.Route, msg.Elapsed.Seconds())
	if msg.Err != nil {
		applog.L().Errorw("cannot show screen", "route", msg.Route, "path", msg.Path, "missing", IsNotFound(msg.Err), "error", msg.Err)
		r.metrics.ObserveNavigation(msg.Route, OutcomeFetchFailed)
		return r.install(msg.Seq, msg.Route, "", msg.Err)
	}
	return r.install(msg.Seq, msg.Route, msg.Body, nil)
}

// install disposes the previous screen's bindings, replaces the content and
// binds the new screen. Any failure ends on the error fragment.
func (r *Router) install(seq uint64, route, body string, loadErr error) tea.Cmd {
	r.view.Dispose()
	r.view = nil
	r.route = route

	ok := loadErr == nil
	if ok {
		if err := r.tree.Replace(body); err != nil {
			applog.L().Errorw("cannot show screen", "route", route, "error", err)
			r.metrics.ObserveNavigation(route, OutcomeFetchFailed)
			ok = false
		}
	}

	if ok {
		view, err := r.lifecycle.BindView(route, r.tree)
		if err != nil {
			applog.L().Errorw("cannot bind screen", "route", route, "error", err)
			r.metrics.ObserveNavigation(route, OutcomeBindFailed)
			ok = false
		} else {
			r.view = view
			r.metrics.ObserveNavigation(route, OutcomeOK)
		}
	}

	if !ok {
		_ = r.tree.Replace(NotFoundFragment)
		r.view, _ = r.lifecycle.BindView(NotFoundRoute, r.tree)
	}

	r.phase = PhaseFadingIn
	return tea.Batch(
		func() tea.Msg { return ContentChangedMsg{Seq: seq, Route: route, OK: ok} },
		func() tea.Msg { return ScrollTopMsg{} },
	)
}

func (r *Router) stale(seq uint64) bool {
	if seq == r.seq {
		return false
	}
	applog.L().Debugw("dropping stale navigation result", "seq", seq, "latest", r.seq)
	r.metrics.ObserveStale()
	return true
}

// Settle ends the fade-in once the new content has been drawn.
func (r *Router) Settle() {
	if r.phase == PhaseFadingIn {
		r.phase = PhaseIdle
	}
}

func (r *Router) Tree() *markup.Tree { return r.tree }

// View is the bound activation of the current screen, nil before the first
// navigation completes.
func (r *Router) View() *lifecycle.View { return r.view }

func (r *Router) Navbar() *navbar.Bar { return r.bar }

// Routes is the table the router resolves against.
func (r *Router) Routes() *routes.Table { return r.table }

// Route is the route whose content is installed.
func (r *Router) Route() string { return r.route }

// Pending is the route of the latest navigation, installed or not.
func (r *Router) Pending() string { return r.pending }

func (r *Router) Phase() Phase { return r.phase }

func (r *Router) Seq() uint64 { return r.seq }

func (r *Router) Location() *navigation.Location { return &r.location }

// IsNotFound reports whether err came from an unknown route or a missing
// resource, as opposed to a transport failure.
func IsNotFound(err error) bool {
	return errors.Is(err, routes.ErrUnknownRoute) || errors.Is(err, fetch.ErrNotFound)
}
