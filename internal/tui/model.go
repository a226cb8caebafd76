package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomasrobino/mastermind/internal/game"
	"github.com/tomasrobino/mastermind/internal/store"
)

// Model is the bubbletea model for the board.
//
// Only the active row can be edited: typing a palette label (or the color's
// 1-9 position) fills the next slot, backspace clears the last one, and enter
// checks the row once every slot is filled. After the game ends, n or enter
// starts a new one.
type Model struct {
	opts    Options
	session *game.Session
	slots   game.Code

	message  string
	stats    *store.Stats
	quitting bool
}

// New starts the first game.
func New(opts Options) (Model, error) {
	if err := opts.validate(); err != nil {
		return Model{}, err
	}
	s, err := opts.newSession()
	if err != nil {
		return Model{}, err
	}
	return Model{opts: opts, session: s}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if n := len(m.slots); n > 0 && !m.session.Status().Terminal() {
			m.slots = m.slots[:n-1]
		}
		return m, nil
	case tea.KeyEnter:
		if m.session.Status().Terminal() {
			return m.restart()
		}
		return m.check(), nil
	case tea.KeyRunes:
		return m.handleRunes(key.Runes)
	}
	return m, nil
}

func (m Model) handleRunes(runes []rune) (tea.Model, tea.Cmd) {
	for _, r := range runes {
		if m.session.Status().Terminal() {
			switch r {
			case 'n', 'N':
				return m.restart()
			case 'q', 'Q':
				m.quitting = true
				return m, tea.Quit
			}
			continue
		}
		if sym, ok := m.pick(r); ok {
			if len(m.slots) < m.session.CodeLength() {
				m.slots = append(m.slots, sym)
				m.message = ""
			}
			continue
		}
		if r == 'q' || r == 'Q' {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// pick maps a key to a palette symbol: its label, or its 1-based position.
func (m Model) pick(r rune) (game.Symbol, bool) {
	p := m.session.Palette()
	if sym, ok := p.Lookup(string(r)); ok {
		return sym, true
	}
	if r >= '1' && r <= '9' {
		sym := game.Symbol(r - '1')
		if p.Contains(sym) {
			return sym, true
		}
	}
	return 0, false
}

// check submits the active row.
func (m Model) check() Model {
	if len(m.slots) < m.session.CodeLength() {
		m.message = msgIncomplete
		return m
	}
	out, err := m.session.SubmitGuess(m.slots)
	if err != nil {
		m.message = err.Error()
		return m
	}
	m.slots = nil
	m.message = outcomeMessage(m.session.Palette(), out)
	if out.Status.Terminal() {
		m.stats = m.opts.finish(context.Background(), m.session)
	}
	return m
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	s, err := m.opts.newSession()
	if err != nil {
		m.message = err.Error()
		return m, nil
	}
	m.session = s
	m.slots = nil
	m.message = ""
	return m, nil
}

// Session exposes the game being played.
func (m Model) Session() *game.Session { return m.session }

// Message is the last announcement shown under the board.
func (m Model) Message() string { return m.message }

// Quitting reports whether the player asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// pending renders the active row's labels, for the footer.
func (m Model) pending() string {
	p := m.session.Palette()
	parts := make([]string, 0, len(m.slots))
	for _, s := range m.slots {
		parts = append(parts, p.Label(s))
	}
	return strings.Join(parts, " ")
}
