// Package tui is the presentation layer: a bubbletea board and a
// line-oriented runner, both driving game.Session.
//
// The session owns every rule; this package only collects input, renders
// rows and pegs, and records finished games.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomasrobino/mastermind/internal/game"
	"github.com/tomasrobino/mastermind/internal/palette"
	"github.com/tomasrobino/mastermind/internal/store"
)

// Messages shown to the player.
const (
	msgWin        = "You guessed it!"
	msgLostPrefix = "You lost, the answer was: "
	msgIncomplete = "Please fill all slots before checking!"
)

// Options configures both front ends.
type Options struct {
	Colors     *palette.Set
	CodeLength int
	MaxRounds  int

	// Generator draws every secret of the run, so a seeded generator makes
	// the whole sequence of games reproducible. Nil draws from crypto/rand.
	Generator *game.Generator

	// Store receives finished games. Nil disables stats.
	Store store.Store

	Logger zerolog.Logger
}

func (o Options) validate() error {
	if o.Colors == nil {
		return errors.New("tui: no palette")
	}
	return nil
}

func (o Options) newSession() (*game.Session, error) {
	s, err := game.NewSession(game.SessionConfig{
		Palette:    o.Colors.Palette(),
		CodeLength: o.CodeLength,
		MaxRounds:  o.MaxRounds,
		Generator:  o.Generator,
	})
	if err != nil {
		return nil, err
	}
	o.Logger.Debug().
		Str("session", s.ID()).
		Int("codeLength", s.CodeLength()).
		Int("maxRounds", s.MaxRounds()).
		Msg("new game")
	return s, nil
}

// finish logs a finished game and saves it. It returns the updated stats, or
// nil when there is no store.
func (o Options) finish(ctx context.Context, s *game.Session) *store.Stats {
	secret, _ := s.Secret()
	guesses := len(s.History())
	o.Logger.Info().
		Str("session", s.ID()).
		Str("status", s.Status().String()).
		Int("guesses", guesses).
		Msg("game over")

	if o.Store == nil {
		return nil
	}
	rec := store.Record{
		SessionID:  s.ID(),
		Status:     s.Status(),
		Guesses:    guesses,
		Secret:     s.Palette().Format(secret),
		FinishedAt: time.Now().UTC(),
	}
	if err := o.Store.Save(ctx, rec); err != nil {
		o.Logger.Warn().Err(err).Str("session", s.ID()).Msg("save game")
	}
	st, err := o.Store.Stats(ctx)
	if err != nil {
		o.Logger.Warn().Err(err).Msg("load stats")
		return nil
	}
	return &st
}

// outcomeMessage is the line announced after an accepted guess.
func outcomeMessage(p game.Palette, out game.Outcome) string {
	switch out.Status {
	case game.StatusWon:
		return msgWin
	case game.StatusLost:
		return msgLostPrefix + p.Format(out.Secret)
	default:
		return out.Result.String()
	}
}
