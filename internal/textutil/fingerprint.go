package textutil

import (
	"math"
	"strings"
	"unicode"
)

// Fingerprint represents a character-bigram frequency vector.
type Fingerprint struct {
	grams map[string]float64
	norm  float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil if the text has fewer than two letters or digits.
func NewFingerprint(text string) *Fingerprint {
	runes := normalize(text)
	if len(runes) < 2 {
		return nil
	}
	counts := make(map[string]float64, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		counts[string(runes[i:i+2])]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{
		grams: counts,
		norm:  math.Sqrt(norm),
	}
}

func normalize(text string) []rune {
	var out []rune
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return out
}
