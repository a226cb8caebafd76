// cmd/mastermind/commands.go
//
// Command tree:
//   mastermind play     board in the terminal (or --plain line mode)
//   mastermind score    evaluate a guess against a secret
//   mastermind palette  list the configured colors
//
// Flags override the environment configuration; the result is validated
// again before use.

package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tomasrobino/mastermind/internal/config"
	"github.com/tomasrobino/mastermind/internal/daily"
	"github.com/tomasrobino/mastermind/internal/game"
	"github.com/tomasrobino/mastermind/internal/palette"
	"github.com/tomasrobino/mastermind/internal/store"
	"github.com/tomasrobino/mastermind/internal/tui"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "mastermind",
		Short:         "Break the hidden color code",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Palette, "palette", cfg.Palette, "embedded palette name or YAML file")
	root.PersistentFlags().IntVar(&cfg.Colors, "colors", cfg.Colors, "use only the first N palette colors (0 = all)")

	root.AddCommand(newPlayCmd(cfg), newScoreCmd(cfg), newPaletteCmd(cfg))
	return root
}

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var plain, useDaily bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			colors, err := loadColors(cfg)
			if err != nil {
				return err
			}
			opts := tui.Options{
				Colors:     colors,
				CodeLength: cfg.CodeLength,
				MaxRounds:  cfg.MaxRounds,
				Store:      store.NewMemoryStore(),
				Logger:     log.Logger,
			}
			switch {
			case useDaily:
				now := time.Now()
				opts.Generator = game.NewSeededGenerator(daily.Seed(now, cfg.DailySalt))
				log.Info().Str("date", daily.DateKey(now)).Msg("daily challenge")
			case cfg.Seed != 0:
				opts.Generator = game.NewSeededGenerator(cfg.Seed)
			}

			if plain || !isTerminal(cmd) {
				return tui.RunPlain(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			}
			if cfg.LogFile == "" {
				// stderr would draw over the board
				opts.Logger = zerolog.Nop()
			}
			m, err := tui.New(opts)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "line-oriented mode (no full-screen board)")
	cmd.Flags().BoolVar(&useDaily, "daily", false, "play today's shared secret")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "fixed secret seed (0 = random)")
	cmd.Flags().IntVar(&cfg.CodeLength, "length", cfg.CodeLength, "symbols per code")
	cmd.Flags().IntVar(&cfg.MaxRounds, "rounds", cfg.MaxRounds, "guesses before the game is lost")
	return cmd
}

func newScoreCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "score SECRET GUESS",
		Short:   "Count black and white pegs for a guess",
		Example: "  mastermind score RRVA VRRA",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			colors, err := loadColors(cfg)
			if err != nil {
				return err
			}
			p := colors.Palette()
			secret, err := p.Parse(args[0])
			if err != nil {
				return fmt.Errorf("secret: %w", err)
			}
			guess, err := p.Parse(args[1])
			if err != nil {
				return fmt.Errorf("guess: %w", err)
			}
			res, err := game.Evaluate(secret, guess)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newPaletteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the palette colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			colors, err := loadColors(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "palette %s (%d colors)\n", colors.Name, colors.Len())
			for i, sym := range colors.Palette().Symbols() {
				fmt.Fprintf(out, "%d  %-3s %-10s %s\n", i+1, colors.Palette().Label(sym), colors.DisplayName(sym), colors.Color(sym))
			}
			return nil
		},
	}
}

func loadColors(cfg *config.Config) (*palette.Set, error) {
	colors, err := palette.Load(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return colors.Truncate(cfg.Colors)
}

// isTerminal reports whether the command talks to a real terminal.
func isTerminal(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(in.Fd()) && isatty.IsTerminal(out.Fd())
}
