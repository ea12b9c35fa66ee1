package booking

import (
	"errors"
	"io/fs"
	"testing"

	"bvberber/assets"
	"bvberber/markup"
	"bvberber/routes"
	"bvberber/scope"
	applog "bvberber/utils/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/net/html"
)

type fakeNav struct {
	navigated []string
	backs     int
}

func (f *fakeNav) Navigate(route string) tea.Cmd {
	f.navigated = append(f.navigated, route)
	return nil
}

func (f *fakeNav) Back() tea.Cmd {
	f.backs++
	return nil
}

func selectionTree(t *testing.T) *markup.Tree {
	t.Helper()
	b, err := fs.ReadFile(assets.Views, "views/appointment_selection.html")
	require.NoError(t, err)
	tree, err := markup.Parse(string(b))
	require.NoError(t, err)
	return tree
}

func newMachine(t *testing.T) (*Machine, *markup.Tree, *scope.Scope, *fakeNav) {
	t.Helper()
	tree := selectionTree(t)
	nav := &fakeNav{}
	sc := scope.New(routes.AppointmentSelection)
	m, err := New(tree, nav, sc)
	require.NoError(t, err)
	return m, tree, sc, nav
}

func summary(tree *markup.Tree) (string, string) {
	return markup.Text(tree.Hook(HookSummaryDateTime)), markup.Text(tree.Hook(HookSummaryStaff))
}

func optionByText(g *Group, text string) *html.Node {
	for _, o := range g.Options() {
		if g.Label(o) == text {
			return o
		}
	}
	return nil
}

func activeOptions(g *Group) []*html.Node {
	var out []*html.Node
	for _, o := range g.Options() {
		if markup.HasClass(o, ClassActive) {
			out = append(out, o)
		}
	}
	return out
}

func TestDefaultState(t *testing.T) {
	m, tree, _, _ := newMachine(t)

	assert.Equal(t, DefaultSelection(), m.Selection())
	dt, staff := summary(tree)
	assert.Equal(t, "23 Ekim Pzt, 10:00", dt)
	assert.Equal(t, "Personel: Baran V.", staff)

	for _, g := range []*Group{m.Date(), m.Staff(), m.Time()} {
		assert.Len(t, activeOptions(g), 1, "group %s", g.Kind())
	}
	assert.Equal(t, "Baran V.", m.Staff().Label(m.Staff().Active()))
	assert.Len(t, markup.All(tree.Root(), markup.HasAttr(attrBadge)), 1)
}

func TestTimeActivationUpdatesSummary(t *testing.T) {
	m, tree, _, _ := newMachine(t)

	require.True(t, m.Time().Activate(optionByText(m.Time(), "11:00")))

	dt, staff := summary(tree)
	assert.Equal(t, "23 Ekim Pzt, 11:00", dt)
	assert.Equal(t, "Personel: Baran V.", staff)
}

func TestUnavailableOptionNeverActive(t *testing.T) {
	m, _, sc, _ := newMachine(t)
	blocked := optionByText(m.Time(), "10:30")
	require.NotNil(t, blocked)
	before := markup.Classes(blocked)

	assert.False(t, m.Time().Activate(blocked))
	assert.False(t, sc.Bound(blocked))

	require.True(t, m.Time().Activate(optionByText(m.Time(), "14:00")))
	assert.Equal(t, before, markup.Classes(blocked))
	assert.Equal(t, "14:00", m.Selection().Time)
	assert.False(t, markup.HasClass(blocked, ClassActive))
}

func TestMostRecentActivationWins(t *testing.T) {
	m, _, _, _ := newMachine(t)
	seq := []string{"11:00", "10:30", "17:00", "13:00", "11:30"}
	var last string
	for _, s := range seq {
		if m.Time().Activate(optionByText(m.Time(), s)) {
			last = s
		}
		active := activeOptions(m.Time())
		require.Len(t, active, 1)
		assert.Equal(t, last, markup.Text(active[0]))
	}
	assert.Equal(t, "11:30", m.Selection().Time)
}

func TestDateActivationWritesDayFields(t *testing.T) {
	m, tree, _, _ := newMachine(t)

	require.True(t, m.Date().Activate(optionByText(m.Date(), "Çar 25")))

	sel := m.Selection()
	assert.Equal(t, "Çar", sel.DayName)
	assert.Equal(t, "25", sel.DayNum)
	assert.Equal(t, "Ekim", sel.Month)
	dt, _ := summary(tree)
	assert.Equal(t, "25 Ekim Çar, 10:00", dt)
}

func TestStaffBadgeAndMuting(t *testing.T) {
	m, tree, _, _ := newMachine(t)
	staff := m.Staff()

	for _, name := range []string{"Emre K.", "Farketmez", "Baran V.", "Emre K."} {
		opt := optionByText(staff, name)
		require.True(t, staff.Activate(opt))

		badges := markup.All(tree.Root(), markup.HasAttr(attrBadge))
		require.Len(t, badges, 1, "after %s", name)
		assert.Same(t, opt, badges[0].Parent.Parent)

		for _, o := range staff.Options() {
			avatar := part(o, partAvatar)
			muted := markup.HasClass(avatar, ClassMuted)
			if o == opt || avatar.Data != "img" {
				assert.False(t, muted)
			} else {
				assert.True(t, muted)
			}
		}
	}
	_, s := summary(tree)
	assert.Equal(t, "Personel: Emre K.", s)
}

func TestActivateThroughScope(t *testing.T) {
	m, tree, sc, _ := newMachine(t)

	sc.Activate(optionByText(m.Time(), "15:30"))
	sc.Activate(optionByText(m.Staff(), "Emre K."))

	dt, staff := summary(tree)
	assert.Equal(t, "23 Ekim Pzt, 15:30", dt)
	assert.Equal(t, "Personel: Emre K.", staff)
}

func TestSubmitAlwaysNavigatesToConfirmation(t *testing.T) {
	m, tree, sc, nav := newMachine(t)

	sc.Activate(tree.Hook(HookSubmit))
	m.Time().Activate(optionByText(m.Time(), "17:00"))
	m.Submit()

	assert.Equal(t, []string{routes.AppointmentConfirmation, routes.AppointmentConfirmation}, nav.navigated)
}

func TestFingerprintTracksSelection(t *testing.T) {
	m, _, _, _ := newMachine(t)
	before := m.Fingerprint()
	require.NotEmpty(t, before)

	m.Time().Activate(optionByText(m.Time(), "11:00"))
	assert.NotEqual(t, before, m.Fingerprint())

	m.Time().Activate(optionByText(m.Time(), "10:00"))
	assert.Equal(t, before, m.Fingerprint())
}

func TestMissingHooks(t *testing.T) {
	cases := map[string]string{
		"group:date":  `<section data-group="staff"></section>`,
		"option:date": `<section data-group="date"></section>`,
		"submit": `<section data-group="date"><button data-option><span data-part="day-name">Pzt</span><span data-part="day-num">23</span></button></section>
			<section data-group="staff"><div data-option><span data-part="name">Baran V.</span></div></section>
			<section data-group="time"><button data-option>10:00</button></section>`,
	}
	for hook, fragment := range cases {
		t.Run(hook, func(t *testing.T) {
			_, err := New(markup.MustParse(fragment), &fakeNav{}, scope.New(routes.AppointmentSelection))
			var mh *MissingHookError
			require.True(t, errors.As(err, &mh))
			assert.Equal(t, hook, mh.Hook)
		})
	}
}

func TestMissingSummarySlotsTolerated(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	applog.Use(zap.New(core))
	t.Cleanup(func() { applog.Use(zap.NewNop()) })

	tree := markup.MustParse(`<section data-group="date"><button data-option><span data-part="day-name">Sal</span><span data-part="day-num">24</span></button></section>
		<section data-group="staff"><div data-option><span data-part="name">Emre K.</span></div></section>
		<section data-group="time"><button data-option data-unavailable>10:00</button><button data-option>12:00</button></section>
		<button data-hook="submit">Onayla</button>`)

	m, err := New(tree, &fakeNav{}, scope.New(routes.AppointmentSelection))
	require.NoError(t, err)

	sel := m.Selection()
	assert.Equal(t, "Sal", sel.DayName)
	assert.Equal(t, "24", sel.DayNum)
	assert.Equal(t, "Emre K.", sel.StaffName)
	assert.Equal(t, "12:00", sel.Time)

	m.Time().Activate(optionByText(m.Time(), "12:00"))
	m.Submit()
	assert.Zero(t, logs.Len(), "missing summary slots must not be logged above info")
}
