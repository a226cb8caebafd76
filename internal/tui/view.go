package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomasrobino/mastermind/internal/game"
)

const (
	slotFilled = "●"
	slotEmpty  = "○"
	pegExact   = "●"
	pegPartial = "○"
	pegNone    = "·"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8D45DC"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#BBB7AC"))
	exactStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#BBB7AC"))
	partialStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	activeStyle  = lipgloss.NewStyle().Bold(true)
	messageStyle = lipgloss.NewStyle().Italic(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.session
	history := s.History()
	active := -1
	if !s.Status().Terminal() {
		active = len(history)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("MasterMind"))
	fmt.Fprintf(&b, "  round %d/%d\n\n", min(len(history)+1, s.MaxRounds()), s.MaxRounds())

	for row := 0; row < s.MaxRounds(); row++ {
		marker := "  "
		var guess game.Code
		var pegs string
		switch {
		case row < len(history):
			guess = history[row].Guess
			pegs = m.renderPegs(history[row].Result)
		case row == active:
			marker = activeStyle.Render("› ")
			guess = m.slots
			pegs = m.renderPegs(game.Result{})
		default:
			pegs = m.renderPegs(game.Result{})
		}
		fmt.Fprintf(&b, "%s%2d  %s   %s\n", marker, row+1, m.renderRow(guess), pegs)
	}

	b.WriteString("\n")
	b.WriteString(m.renderLegend())
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}
	if m.stats != nil {
		fmt.Fprintf(&b, "played %d · won %d · streak %d (best %d)\n",
			m.stats.GamesPlayed, m.stats.Wins, m.stats.Streak, m.stats.BestStreak)
	}

	if s.Status().Terminal() {
		b.WriteString(helpStyle.Render("n/enter new game · q quit"))
	} else {
		if p := m.pending(); p != "" {
			fmt.Fprintf(&b, "guess: %s\n", p)
		}
		b.WriteString(helpStyle.Render("label or 1-9 pick color · backspace undo · enter check · esc quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// renderRow draws CodeLength swatches, empty ones past len(guess).
func (m Model) renderRow(guess game.Code) string {
	parts := make([]string, m.session.CodeLength())
	for i := range parts {
		if i < len(guess) {
			parts[i] = m.swatch(guess[i]).Render(slotFilled)
		} else {
			parts[i] = emptyStyle.Render(slotEmpty)
		}
	}
	return strings.Join(parts, " ")
}

// renderPegs draws exact pegs first, then partial, then blanks.
func (m Model) renderPegs(r game.Result) string {
	var b strings.Builder
	for i := 0; i < m.session.CodeLength(); i++ {
		switch {
		case i < r.Exact:
			b.WriteString(exactStyle.Render(pegExact))
		case i < r.Exact+r.Partial:
			b.WriteString(partialStyle.Render(pegPartial))
		default:
			b.WriteString(emptyStyle.Render(pegNone))
		}
	}
	return b.String()
}

func (m Model) renderLegend() string {
	p := m.session.Palette()
	parts := make([]string, 0, p.Len())
	for i, sym := range p.Symbols() {
		key := fmt.Sprintf("%d", i+1)
		if i >= 9 {
			key = " "
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", key, m.swatch(sym).Render(slotFilled), p.Label(sym)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) swatch(sym game.Symbol) lipgloss.Style {
	hex := m.opts.Colors.Color(sym)
	if hex == "" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
