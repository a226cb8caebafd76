// internal/daily/daily.go
//
// Daily challenge seeding.
// Everybody playing with the same salt on the same UTC day gets the same
// generator seed, and therefore the same secret for a given palette and
// code length.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns HMAC-SHA256(salt, DateKey(t)) folded into an int64.
func Seed(t time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for a math/rand seed
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
