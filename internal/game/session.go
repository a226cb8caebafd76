// internal/game/session.go
//
// Session state machine for a single game.
// Responsibilities:
//   - Own the secret and the round counter.
//   - Validate and score guesses (length, palette membership).
//   - Track transitions: playing → won/lost. Terminal states are sticky.
//
// Notes:
//   - SubmitGuess holds the session lock for the whole read-score-update
//     sequence, so concurrent callers cannot apply two guesses to one round.
//   - The secret leaves the session only once the game is over.

package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

const (
	DefaultCodeLength = 4
	DefaultMaxRounds  = 10
)

// SessionConfig holds construction parameters for NewSession.
type SessionConfig struct {
	Palette    Palette
	CodeLength int
	MaxRounds  int

	// Generator draws the secret. Nil means a generator seeded from crypto/rand.
	Generator *Generator

	// Secret fixes the answer instead of drawing one. It must match
	// CodeLength and the palette.
	Secret Code
}

// Session is one game from first guess to win or loss.
type Session struct {
	mu sync.Mutex

	id         string
	palette    Palette
	secret     Code
	codeLength int
	maxRounds  int

	round   int
	status  Status
	history []Attempt
}

// NewSession validates cfg and draws the secret.
// Returns ErrConfiguration when the session cannot be built.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Palette.Len() < 2 {
		return nil, fmt.Errorf("%w: palette needs at least 2 symbols", ErrConfiguration)
	}
	if cfg.CodeLength < 1 {
		return nil, fmt.Errorf("%w: code length must be positive, got %d", ErrConfiguration, cfg.CodeLength)
	}
	if cfg.MaxRounds < 1 {
		return nil, fmt.Errorf("%w: max rounds must be positive, got %d", ErrConfiguration, cfg.MaxRounds)
	}

	var secret Code
	if cfg.Secret != nil {
		if err := validateCode(cfg.Palette, cfg.CodeLength, cfg.Secret); err != nil {
			return nil, fmt.Errorf("%w: secret: %v", ErrConfiguration, err)
		}
		secret = cfg.Secret.Clone()
	} else {
		gen := cfg.Generator
		if gen == nil {
			seed, err := RandomSeed()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
			}
			gen = NewSeededGenerator(seed)
		}
		var err error
		secret, err = gen.Generate(cfg.Palette, cfg.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
	}

	return &Session{
		id:         uuid.NewString(),
		palette:    cfg.Palette,
		secret:     secret,
		codeLength: cfg.CodeLength,
		maxRounds:  cfg.MaxRounds,
		status:     StatusPlaying,
	}, nil
}

// SubmitGuess validates and scores a guess, advancing the state machine.
//
// Validation rules:
//   - Session must still be playing (ErrInvalidState).
//   - Guess must have CodeLength symbols, all from the palette (ErrInvalidInput).
//
// A rejected guess leaves the session unchanged.
//
// State transitions:
//   - All pegs exact → won; the round counter is not advanced.
//   - Otherwise the round advances; reaching MaxRounds → lost, and the
//     outcome carries the secret.
func (s *Session) SubmitGuess(guess Code) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Terminal() {
		return Outcome{Status: s.status, Round: s.round}, fmt.Errorf("%w: session is %s", ErrInvalidState, s.status)
	}
	if err := validateCode(s.palette, s.codeLength, guess); err != nil {
		return Outcome{Status: s.status, Round: s.round}, err
	}

	res, err := Evaluate(s.secret, guess)
	if err != nil {
		return Outcome{Status: s.status, Round: s.round}, err
	}
	s.history = append(s.history, Attempt{Guess: guess.Clone(), Result: res})

	if res.Exact == s.codeLength {
		s.status = StatusWon
		return Outcome{Result: res, Status: s.status, Round: s.round}, nil
	}

	s.round++
	if s.round == s.maxRounds {
		s.status = StatusLost
		return Outcome{Result: res, Status: s.status, Round: s.round, Secret: s.secret.Clone()}, nil
	}
	return Outcome{Result: res, Status: s.status, Round: s.round}, nil
}

// validateCode checks length and palette membership.
func validateCode(p Palette, length int, c Code) error {
	if len(c) != length {
		return fmt.Errorf("%w: expected %d symbols, got %d", ErrInvalidInput, length, len(c))
	}
	for i, sym := range c {
		if !p.Contains(sym) {
			return fmt.Errorf("%w: symbol %d at position %d is not in the palette", ErrInvalidInput, sym, i)
		}
	}
	return nil
}

// ID is a unique identifier for correlating logs and records.
func (s *Session) ID() string { return s.id }

// Palette returns the palette the session plays with.
func (s *Session) Palette() Palette { return s.palette }

// CodeLength is the number of symbols in every guess.
func (s *Session) CodeLength() int { return s.codeLength }

// MaxRounds is the number of non-winning guesses before the game is lost.
func (s *Session) MaxRounds() int { return s.maxRounds }

// Round is the 0-based index of the round currently being played.
func (s *Session) Round() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// Status reports playing, won or lost.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// RoundsLeft is how many guesses remain before the game is lost.
func (s *Session) RoundsLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Terminal() {
		return 0
	}
	return s.maxRounds - s.round
}

// History returns the accepted guesses in order, winning guess included.
func (s *Session) History() []Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Attempt, len(s.history))
	for i, a := range s.history {
		out[i] = Attempt{Guess: a.Guess.Clone(), Result: a.Result}
	}
	return out
}

// Secret returns the answer once the game is over; ok is false while playing.
func (s *Session) Secret() (Code, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.status.Terminal() {
		return nil, false
	}
	return s.secret.Clone(), true
}
