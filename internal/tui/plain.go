package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tomasrobino/mastermind/internal/game"
)

// RunPlain plays games over line-oriented I/O: one guess per line, written
// with palette labels ("RVLR" or "red blue red blue"). "quit" or EOF ends
// the run; after each game the player is asked whether to continue.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	sc := bufio.NewScanner(in)

	for {
		s, err := opts.newSession()
		if err != nil {
			return err
		}
		p := s.Palette()
		fmt.Fprintf(out, "MasterMind: %d symbols from %s, %d rounds.\n",
			s.CodeLength(), strings.Join(p.Labels(), " "), s.MaxRounds())

		for !s.Status().Terminal() {
			if err := ctx.Err(); err != nil {
				return err
			}
			fmt.Fprintf(out, "round %d/%d> ", s.Round()+1, s.MaxRounds())
			if !sc.Scan() {
				fmt.Fprintln(out)
				return sc.Err()
			}
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			if strings.EqualFold(line, "quit") {
				return nil
			}

			guess, err := p.Parse(line)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if len(guess) < s.CodeLength() {
				fmt.Fprintln(out, msgIncomplete)
				continue
			}
			res, err := s.SubmitGuess(guess)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if res.Status != game.StatusWon {
				fmt.Fprintln(out, res.Result)
			}
			if res.Status.Terminal() {
				fmt.Fprintln(out, outcomeMessage(p, res))
			}
		}

		if st := opts.finish(ctx, s); st != nil {
			fmt.Fprintf(out, "played %d · won %d · streak %d (best %d)\n",
				st.GamesPlayed, st.Wins, st.Streak, st.BestStreak)
		}

		fmt.Fprint(out, "play again? [y/N] ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		if a := strings.ToLower(strings.TrimSpace(sc.Text())); a != "y" && a != "yes" {
			return nil
		}
	}
}
