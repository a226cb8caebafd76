// internal/game/engine.go
//
// Peg scoring for a single guess.
// Responsibilities:
//   - Count exact matches (black pegs) position by position.
//   - Count partial matches (white pegs) from the leftover symbols, so a
//     secret symbol is never credited twice.
//
// Notes:
//   - Works on symbol counts, not positions, so ties between identical
//     symbols cannot change the result.
//   - Evaluate is pure; sessions call it under their own lock.

package game

import "fmt"

// Evaluate scores guess against secret using the two-pass counting algorithm.
//
// Pass 1:
//   - Count exact matches.
//   - Count remaining (non-exact) secret symbols.
//
// Pass 2:
//   - For each non-exact guess symbol, in order: if a remaining count exists,
//     it is a partial match and the count is decremented.
//
// Returns ErrInvalidInput if the codes differ in length.
func Evaluate(secret, guess Code) (Result, error) {
	n := len(secret)
	if len(guess) != n {
		return Result{}, fmt.Errorf("%w: guess has %d symbols, secret has %d", ErrInvalidInput, len(guess), n)
	}

	var res Result
	remaining := make(map[Symbol]int, n)

	// First pass: exact matches, and counts for the rest of the secret.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res.Exact++
		} else {
			remaining[secret[i]]++
		}
	}

	// Second pass: partial matches among the non-exact guess positions.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			continue
		}
		if remaining[guess[i]] > 0 {
			res.Partial++
			remaining[guess[i]]--
		}
	}
	return res, nil
}
