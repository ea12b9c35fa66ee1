package app

import (
	"testing"

	"bvberber/assets"
	"bvberber/booking"
	"bvberber/commands"
	"bvberber/fetch"
	"bvberber/markup"
	"bvberber/navigation"
	"bvberber/router"
	"bvberber/routes"
	"bvberber/views/commandinput"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	r := router.New(routes.Default(), fetch.NewFS(assets.Views), router.WithTransition(router.Immediate()))
	m := New(r)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// run executes cmd and feeds the app's own messages back into the model. It
// reports whether a quit was requested.
func run(m *Model, cmd tea.Cmd) bool {
	quit := false
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
		case tea.QuitMsg:
			quit = true
		case navigation.FragmentChangedMsg, router.TransitionDoneMsg, router.FetchedMsg,
			router.ContentChangedMsg, router.ScrollTopMsg, commandinput.SubmitMsg, commands.ErrorMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
	return quit
}

func press(m *Model, key tea.KeyMsg) bool {
	_, cmd := m.Update(key)
	return run(m, cmd)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func focusOn(t *testing.T, m *Model, text string) {
	t.Helper()
	for range m.targets() {
		if markup.Text(m.focused()) == text {
			return
		}
		m.moveFocus(1)
	}
	t.Fatalf("no bound element %q", text)
}

func TestInitShowsHome(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())

	assert.Equal(t, routes.Welcome, m.router.Route())
	assert.Equal(t, router.PhaseIdle, m.router.Phase())
	assert.Contains(t, m.View(), "BV Berber")
	assert.Contains(t, m.View(), "Ana Sayfa")
}

func TestNavbarKeys(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())

	press(m, runes("2"))
	assert.Equal(t, routes.Services, m.router.Route())
	press(m, runes("4"))
	assert.Equal(t, routes.Profile, m.router.Route())
	assert.Contains(t, m.renderHistoryBar(), "services")
}

func TestBookingFlowWithKeys(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())
	run(m, m.router.Navigate(routes.AppointmentSelection))
	require.Equal(t, routes.AppointmentSelection, m.router.Route())
	assert.True(t, m.router.Navbar().Hidden())

	focusOn(t, m, "11:00")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	tree := m.router.Tree()
	assert.Equal(t, "23 Ekim Pzt, 11:00", markup.Text(tree.Hook(booking.HookSummaryDateTime)))
	assert.Contains(t, m.viewport.View(), "11:00")

	focusOn(t, m, markup.Text(tree.Hook(booking.HookSubmit)))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, routes.AppointmentConfirmation, m.router.Route())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, routes.AppointmentSelection, m.router.Route())
	assert.Equal(t, "23 Ekim Pzt, 10:00", markup.Text(m.router.Tree().Hook(booking.HookSummaryDateTime)))
}

func TestFocusWraps(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())
	n := len(m.targets())
	require.Greater(t, n, 0)

	first := m.focused()
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, n-1, m.focus)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Same(t, first, m.focused())
}

func TestBackAtRootQuits(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())
	assert.True(t, press(m, tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestCommandBarNavigates(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())

	press(m, runes(":"))
	require.True(t, m.commandInput.Visible())
	for _, r := range "#appointments" {
		// Cursor blink commands are dropped.
		m.Update(runes(string(r)))
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.commandInput.Visible())
	assert.Equal(t, routes.Appointments, m.router.Route())
}

func TestCommandBarUnknownRouteShowsErrorScreen(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())

	run(m, m.runCommand("nowhere"))

	assert.Equal(t, router.NotFoundRoute, m.router.View().Route)
	assert.Contains(t, m.viewport.View(), "Screen Not Found")
	assert.Contains(t, m.title(), "⚠")

	run(m, m.runCommand("back"))
	assert.Equal(t, routes.Welcome, m.router.Route())
	run(m, m.runCommand("back"))
	assert.Equal(t, "no previous screen", m.commandInput.Error())
}

func TestCommandBarCommands(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())

	run(m, m.runCommand("go services"))
	assert.Equal(t, routes.Services, m.router.Route())
	run(m, m.runCommand("home"))
	assert.Equal(t, routes.Welcome, m.router.Route())

	assert.Nil(t, m.runCommand("two words"))
	assert.Equal(t, "unknown command: two words", m.commandInput.Error())

	assert.True(t, run(m, m.runCommand("quit")))
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	m := newModel(t)
	run(m, m.Init())

	assert.Nil(t, m.handleSpinnerTick())
	assert.False(t, m.spinning)
}
