package similarity

import (
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/surgebase/porter2"
)

// Ratio returns the character-sequence similarity of two strings in [0, 1],
// computed as normalized Levenshtein similarity. Equal strings score 1.0 and
// an empty string never matches a non-empty one.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	score, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0.0
	}
	return float64(score)
}

// inflectionSuffixes are endings the stemmer occasionally leaves in place on
// very short words; checked directly as a fallback.
var inflectionSuffixes = []string{"ing", "ed", "er", "es", "s"}

// RelatedTokens reports whether two tokens look like inflected forms of the
// same word: equal after Porter2 stemming, a bare suffix variation, very high
// character similarity, or a shared prefix covering all but one character.
func RelatedTokens(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}

	if porter2.Stem(a) == porter2.Stem(b) {
		return true
	}

	for _, suffix := range inflectionSuffixes {
		if strings.HasSuffix(a, suffix) && strings.TrimSuffix(a, suffix) == b {
			return true
		}
		if strings.HasSuffix(b, suffix) && strings.TrimSuffix(b, suffix) == a {
			return true
		}
	}

	if len(a) > 3 && len(b) > 3 && Ratio(a, b) > highTokenSimilarity {
		return true
	}

	// Shared prefix one character short of the smaller token.
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	if shorter > 3 && a[:shorter-1] == b[:shorter-1] {
		return true
	}

	return false
}
