package commandinput

import (
	"sort"
	"strings"

	"bvberber/utils"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the ":" command bar. It completes against a fixed word list,
// normally the route and command names.
type Model struct {
	input       textinput.Model
	visible     bool
	words       []string
	suggestions []string
	selected    int
	history     []string
	histPos     int
	errorMsg    string
}

// New creates a command bar completing against words.
func New(words []string) *Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.CharLimit = 128

	w := append([]string(nil), words...)
	sort.Strings(w)
	return &Model{input: ti, words: w}
}

// Visible returns true if the command bar is visible.
func (m *Model) Visible() bool { return m.visible }

// Show makes the command bar visible and focuses the input.
func (m *Model) Show() tea.Cmd {
	m.visible = true
	m.errorMsg = ""
	m.input.Focus()
	m.refreshSuggestions()
	return textinput.Blink
}

// Hide hides the command bar and clears its state.
func (m *Model) Hide() {
	m.visible = false
	m.errorMsg = ""
	m.input.Blur()
	m.input.Reset()
	m.suggestions = nil
	m.selected = 0
}

// ShowError displays an error message without losing focus.
func (m *Model) ShowError(msg string) {
	m.errorMsg = msg
	m.visible = true
	m.input.Focus()
}

func (m *Model) Error() string { return m.errorMsg }

func (m *Model) Value() string { return m.input.Value() }

func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.refreshSuggestions()
}

// Suggestions are the words containing the current input, ignoring case.
func (m *Model) Suggestions() []string { return m.suggestions }

func (m *Model) query() string {
	return strings.TrimPrefix(strings.TrimSpace(m.input.Value()), "#")
}

func (m *Model) refreshSuggestions() {
	q := m.query()
	m.suggestions = m.suggestions[:0]
	for _, w := range m.words {
		if q == "" || len(utils.FindAllMatches(w, q)) > 0 {
			m.suggestions = append(m.suggestions, w)
		}
	}
	if m.selected >= len(m.suggestions) {
		m.selected = 0
	}
}
