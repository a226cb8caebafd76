// internal/game/types.go
//
// Core type definitions for the Mastermind engine.
// Defines:
//   - Symbol/Code: palette indices and fixed-length sequences of them.
//   - Palette: the ordered, labelled set of symbols a session plays with.
//   - Result: black/white peg counts for one guess.
//   - Status: playing → won/lost.
//   - Attempt/Outcome: what a session records and returns per guess.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Errors reported by the engine. Call sites wrap them with detail, so compare
// with errors.Is.
var (
	// ErrInvalidInput is returned for a guess of the wrong length, a symbol
	// outside the palette, or mismatched codes passed to Evaluate.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when a guess is submitted to a finished session.
	ErrInvalidState = errors.New("game finished")

	// ErrConfiguration is returned when a palette or session cannot be built.
	ErrConfiguration = errors.New("invalid configuration")
)

// Symbol is the index of a palette entry.
type Symbol int

// Code is an ordered sequence of symbols, used for both secrets and guesses.
type Code []Symbol

// Equal reports whether c and other hold the same symbols in the same order.
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share storage with c.
func (c Code) Clone() Code {
	if c == nil {
		return nil
	}
	out := make(Code, len(c))
	copy(out, c)
	return out
}

// Palette is an immutable, ordered list of unique labels. Symbol i is Labels[i].
type Palette struct {
	labels  []string
	compact bool // every label is a single rune
}

// NewPalette builds a palette from at least two distinct, non-empty labels.
// Labels are compared case-insensitively.
func NewPalette(labels ...string) (Palette, error) {
	if len(labels) < 2 {
		return Palette{}, fmt.Errorf("%w: palette needs at least 2 symbols, got %d", ErrConfiguration, len(labels))
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, len(labels))
	compact := true
	for i, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			return Palette{}, fmt.Errorf("%w: palette label %d is empty", ErrConfiguration, i)
		}
		if strings.ContainsFunc(l, func(r rune) bool { return unicode.IsSpace(r) || r == ',' }) {
			return Palette{}, fmt.Errorf("%w: palette label %q contains a separator", ErrConfiguration, l)
		}
		key := strings.ToUpper(l)
		if _, dup := seen[key]; dup {
			return Palette{}, fmt.Errorf("%w: duplicate palette label %q", ErrConfiguration, l)
		}
		seen[key] = struct{}{}
		out[i] = l
		if utf8.RuneCountInString(l) != 1 {
			compact = false
		}
	}
	return Palette{labels: out, compact: compact}, nil
}

// Len is the number of symbols in the palette.
func (p Palette) Len() int { return len(p.labels) }

// Symbols lists every symbol in palette order.
func (p Palette) Symbols() []Symbol {
	out := make([]Symbol, len(p.labels))
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

// Labels returns a copy of the palette labels.
func (p Palette) Labels() []string {
	return append([]string(nil), p.labels...)
}

// Contains reports whether s belongs to the palette.
func (p Palette) Contains(s Symbol) bool {
	return s >= 0 && int(s) < len(p.labels)
}

// Label returns the display label of s, or "?" when s is outside the palette.
func (p Palette) Label(s Symbol) string {
	if !p.Contains(s) {
		return "?"
	}
	return p.labels[s]
}

// Lookup finds the symbol carrying label (case-insensitive).
func (p Palette) Lookup(label string) (Symbol, bool) {
	for i, l := range p.labels {
		if strings.EqualFold(l, label) {
			return Symbol(i), true
		}
	}
	return 0, false
}

// Format renders c with palette labels, e.g. "RVLR".
// Multi-character labels are separated by a single space.
func (p Palette) Format(c Code) string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = p.Label(s)
	}
	if p.compact {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, " ")
}

// Parse is the inverse of Format. It accepts labels separated by spaces or
// commas and, for single-rune palettes, a run of labels such as "rvlr".
func (p Palette) Parse(s string) (Code, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == ',' })
	if len(fields) == 1 && p.compact {
		fields = fields[:0]
		for _, r := range strings.TrimSpace(s) {
			fields = append(fields, string(r))
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidInput)
	}
	out := make(Code, 0, len(fields))
	for _, f := range fields {
		sym, ok := p.Lookup(f)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in the palette", ErrInvalidInput, f)
		}
		out = append(out, sym)
	}
	return out, nil
}

// Result holds the peg counts for one guess.
type Result struct {
	Exact   int `json:"exact"`   // black pegs: right symbol, right position
	Partial int `json:"partial"` // white pegs: right symbol, wrong position
}

// String renders the pegs the way the board announces them.
func (r Result) String() string {
	return fmt.Sprintf("Black: %d. White: %d", r.Exact, r.Partial)
}

// Status is the coarse state of a session.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns "playing", "won" or "lost".
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// Attempt is one accepted guess and its pegs.
type Attempt struct {
	Guess  Code
	Result Result
}

// Outcome is returned by Session.SubmitGuess.
type Outcome struct {
	Result Result
	Status Status
	Round  int  // rounds used after this guess
	Secret Code // only set when Status is StatusLost
}
