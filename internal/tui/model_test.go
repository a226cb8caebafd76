package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasrobino/mastermind/internal/game"
	"github.com/tomasrobino/mastermind/internal/palette"
	"github.com/tomasrobino/mastermind/internal/store"
)

const testSeed = 7

func testOptions(t *testing.T, rounds int) (Options, game.Code) {
	t.Helper()
	colors, err := palette.Default()
	require.NoError(t, err)
	secret, err := game.NewSeededGenerator(testSeed).Generate(colors.Palette(), 4)
	require.NoError(t, err)
	return Options{
		Colors:     colors,
		CodeLength: 4,
		MaxRounds:  rounds,
		Generator:  game.NewSeededGenerator(testSeed),
		Store:      store.NewMemoryStore(),
	}, secret
}

// wrongCode differs from secret in every position.
func wrongCode(p game.Palette, secret game.Code) game.Code {
	out := make(game.Code, len(secret))
	for i, s := range secret {
		out[i] = game.Symbol((int(s) + 1) % p.Len())
	}
	return out
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeCode(t *testing.T, m Model, c game.Code) Model {
	t.Helper()
	p := m.Session().Palette()
	for _, sym := range c {
		m = press(t, m, runeKey([]rune(p.Label(sym))[0]))
	}
	return m
}

func TestModel_Win(t *testing.T) {
	opts, secret := testOptions(t, 10)
	m, err := New(opts)
	require.NoError(t, err)

	m = typeCode(t, m, secret)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, game.StatusWon, m.Session().Status())
	assert.Equal(t, msgWin, m.Message())
	assert.Contains(t, m.View(), msgWin)
	assert.Contains(t, m.View(), "played 1 · won 1")
}

func TestModel_IncompleteRow(t *testing.T) {
	opts, secret := testOptions(t, 10)
	m, err := New(opts)
	require.NoError(t, err)

	m = typeCode(t, m, secret[:2])
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, msgIncomplete, m.Message())
	assert.Equal(t, 0, m.Session().Round())
	assert.Empty(t, m.Session().History())
}

func TestModel_BackspaceAndDigits(t *testing.T) {
	opts, _ := testOptions(t, 10)
	m, err := New(opts)
	require.NoError(t, err)

	m = press(t, m, runeKey('1'), runeKey('2'), tea.KeyMsg{Type: tea.KeyBackspace}, runeKey('6'))
	assert.Equal(t, game.Code{0, 5}, m.slots)

	// Extra keys beyond the row length are ignored.
	m = press(t, m, runeKey('r'), runeKey('v'), runeKey('a'))
	assert.Equal(t, game.Code{0, 5, 0, 1}, m.slots)

	// Keys that are neither labels nor positions do nothing.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runeKey('z'), runeKey('0'), runeKey('9'))
	assert.Equal(t, game.Code{0, 5, 0}, m.slots)
}

func TestModel_FeedbackAndLoss(t *testing.T) {
	opts, secret := testOptions(t, 2)
	m, err := New(opts)
	require.NoError(t, err)
	p := m.Session().Palette()
	miss := wrongCode(p, secret)

	m = typeCode(t, m, miss)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	want, err := game.Evaluate(secret, miss)
	require.NoError(t, err)
	assert.Equal(t, want.String(), m.Message())
	assert.Equal(t, 1, m.Session().Round())
	assert.Empty(t, m.slots, "row is cleared after a check")

	m = typeCode(t, m, miss)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.StatusLost, m.Session().Status())
	assert.Equal(t, msgLostPrefix+p.Format(secret), m.Message())

	// Input is ignored once the game is over.
	m = press(t, m, runeKey('r'))
	assert.Empty(t, m.slots)

	rec, err := opts.Store.Get(context.Background(), m.Session().ID())
	require.NoError(t, err)
	assert.Equal(t, game.StatusLost, rec.Status)
	assert.Equal(t, 2, rec.Guesses)
	assert.Equal(t, p.Format(secret), rec.Secret)
}

func TestModel_NewGameAfterFinish(t *testing.T) {
	opts, secret := testOptions(t, 10)
	m, err := New(opts)
	require.NoError(t, err)
	first := m.Session().ID()

	// While playing, n is the label of a color, not a command.
	m = press(t, m, runeKey('n'))
	assert.Len(t, m.slots, 1)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	m = typeCode(t, m, secret)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('n'))

	assert.NotEqual(t, first, m.Session().ID())
	assert.Equal(t, game.StatusPlaying, m.Session().Status())
	assert.Empty(t, m.Message())
}

func TestModel_Quit(t *testing.T) {
	opts, _ := testOptions(t, 10)
	m, err := New(opts)
	require.NoError(t, err)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).Quitting())
	assert.Empty(t, next.(Model).View())

	next, cmd = m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).Quitting())
}

func TestModel_View(t *testing.T) {
	opts, _ := testOptions(t, 3)
	m, err := New(opts)
	require.NoError(t, err)

	v := m.View()
	assert.Contains(t, v, "MasterMind")
	assert.Contains(t, v, "round 1/3")
	assert.Contains(t, v, " 3  ")
	assert.NotContains(t, v, " 4  ")

	m = press(t, m, runeKey('r'), runeKey('l'))
	assert.Contains(t, m.View(), "guess: R L")
}

func TestNew_RequiresPalette(t *testing.T) {
	_, err := New(Options{CodeLength: 4, MaxRounds: 10})
	assert.Error(t, err)

	colors, err := palette.Default()
	require.NoError(t, err)
	_, err = New(Options{Colors: colors, CodeLength: 0, MaxRounds: 10})
	assert.ErrorIs(t, err, game.ErrConfiguration)
}
