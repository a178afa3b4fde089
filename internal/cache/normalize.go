package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Normalize canonicalizes a question for cache keying: lower-case, strip
// question and exclamation marks, collapse whitespace, truncate. Idempotent:
// Normalize(Normalize(q)) == Normalize(q).
func Normalize(question string) string {
	q := strings.ToLower(question)
	q = strings.Map(func(r rune) rune {
		switch r {
		case '?', '!', '¿', '¡':
			return -1
		}
		return r
	}, q)
	q = strings.Join(strings.Fields(q), " ")
	// Rune-safe truncation: Spanish text is multi-byte.
	if runes := []rune(q); len(runes) > maxNormalizedLen {
		q = strings.TrimSpace(string(runes[:maxNormalizedLen]))
	}
	return q
}

// exactKey derives the content-addressed exact-tier key from a normalized
// question and an optional firm.
func exactKey(normalized, firm string) string {
	sum := sha256.Sum256([]byte(normalized + "_" + firmSlot(firm)))
	return hex.EncodeToString(sum[:])
}

// firmSlot maps an optional firm identifier to its cache slot.
func firmSlot(firm string) string {
	firm = strings.ToLower(strings.TrimSpace(firm))
	if firm == "" {
		return firmGeneral
	}
	return firm
}
