package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasrobino/mastermind/internal/config"
	"github.com/tomasrobino/mastermind/internal/game"
	"github.com/tomasrobino/mastermind/internal/palette"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:   "info",
		CodeLength: 4,
		MaxRounds:  10,
		DailySalt:  "test_salt",
	}
}

func run(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCmd(t *testing.T) {
	tests := []struct {
		secret, guess, want string
	}{
		{"RRVA", "VRRA", "Black: 2. White: 2"},
		{"RRVA", "VRRV", "Black: 1. White: 2"},
		{"RVAM", "RRRR", "Black: 1. White: 0"},
		{"RVAM", "NNNN", "Black: 0. White: 0"},
		{"rvam", "RVAM", "Black: 4. White: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.secret+"/"+tt.guess, func(t *testing.T) {
			out, err := run(t, testConfig(), "", "score", tt.secret, tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestScoreCmd_Errors(t *testing.T) {
	_, err := run(t, testConfig(), "", "score", "RVAM", "RVA")
	assert.ErrorIs(t, err, game.ErrInvalidInput)

	_, err = run(t, testConfig(), "", "score", "RVAX", "RVAM")
	assert.ErrorIs(t, err, game.ErrInvalidInput)

	_, err = run(t, testConfig(), "", "score", "RVAM")
	assert.Error(t, err)
}

func TestPaletteCmd(t *testing.T) {
	out, err := run(t, testConfig(), "", "palette")
	require.NoError(t, err)
	assert.Contains(t, out, "palette default (6 colors)")
	assert.Contains(t, out, "lila")

	out, err = run(t, testConfig(), "", "palette", "--palette", "classic", "--colors", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "palette classic (3 colors)")
	assert.NotContains(t, out, "yellow")
}

func TestPlayCmd_Plain(t *testing.T) {
	cfg := testConfig()
	colors, err := palette.Default()
	require.NoError(t, err)
	secret, err := game.NewSeededGenerator(1234).Generate(colors.Palette(), 4)
	require.NoError(t, err)

	out, err := run(t, cfg, colors.Palette().Format(secret)+"\nn\n", "play", "--plain", "--seed", "1234")
	require.NoError(t, err)
	assert.Contains(t, out, "You guessed it!")
	assert.Contains(t, out, "played 1 · won 1")
}

func TestPlayCmd_FlagOverrides(t *testing.T) {
	out, err := run(t, testConfig(), "quit\n", "play", "--plain", "--length", "5", "--rounds", "3", "--colors", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "MasterMind: 5 symbols from R V A M, 3 rounds.")

	_, err = run(t, testConfig(), "", "play", "--plain", "--rounds", "0")
	assert.Error(t, err)
}

func TestPlayCmd_Daily(t *testing.T) {
	out, err := run(t, testConfig(), "quit\n", "play", "--plain", "--daily")
	require.NoError(t, err)
	assert.Contains(t, out, "round 1/10>")
}
