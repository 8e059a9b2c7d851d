package similarity

import (
	"math"
	"strings"

	"github.com/standardbeagle/termbridge/internal/terms"
)

// Tunables for term similarity. These are golden values carried over from
// the terminology corpus this engine was tuned on; regression tests pin them
// rather than deriving them from first principles.
const (
	// firstTokenRejectBelow rejects equal-length multi-word terms outright
	// when their leading tokens diverge ("Sales Quote" vs "Purchase Order").
	firstTokenRejectBelow = 0.6

	// Position bonuses applied when tokens align at the same index.
	firstTokenBonus = 1.5
	positionBonus   = 1.2

	// Greedy assignment thresholds: stricter when token counts are equal,
	// more lenient when one term may be a subset of the other.
	matchThresholdEqual  = 0.5
	matchThresholdSubset = 0.4

	// Short-subset special case: a fully matched 1-2 token term inside a
	// longer term with the same leading token scores a fixed 0.85.
	shortSubsetScore      = 0.85
	shortSubsetMinQuality = 0.85

	// General subset matching: at least 80% of the shorter term's tokens
	// matched at better than 0.8 average quality.
	subsetMatchedFraction = 0.8
	subsetMinQuality      = 0.8
	subsetBaseScore       = 0.7
	subsetScaleRange      = 0.3

	// 2-vs-2 token singular/plural style variants score a fixed 0.9.
	pluralVariantScore    = 0.9
	pluralTokenSimilarity = 0.7

	// Length-gap penalty factor and the floor below which scores are zeroed.
	lengthGapPenalty = 0.3
	minTermScore     = 0.3

	// highTokenSimilarity marks two tokens as near-identical.
	highTokenSimilarity = 0.8
)

// TermSimilarity scores how alike two terms are in [0, 1] using token-level
// alignment. Both terms are normalized and space-split; single-token terms
// compare by plain character similarity, multi-token terms by a greedy
// best-match assignment with position bonuses, subset special cases, and a
// length-gap penalty.
func TermSimilarity(a, b string) float64 {
	tokensA := terms.Tokens(a)
	tokensB := terms.Tokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	if len(tokensA) == 1 && len(tokensB) == 1 {
		return Ratio(tokensA[0], tokensB[0])
	}

	// Fast rejection: equal-length terms whose first tokens are unrelated
	// are semantically different regardless of the remaining tokens.
	if len(tokensA) == len(tokensB) && Ratio(tokensA[0], tokensB[0]) < firstTokenRejectBelow {
		return 0.0
	}

	matrix := buildTokenMatrix(tokensA, tokensB)

	matchThreshold := matchThresholdEqual
	if len(tokensA) != len(tokensB) {
		matchThreshold = matchThresholdSubset
	}

	var total float64
	matched := make(map[int]bool, len(tokensB))
	for _, row := range matrix {
		bestJ := -1
		bestSim := 0.0
		for j, sim := range row {
			if !matched[j] && sim > bestSim {
				bestSim = sim
				bestJ = j
			}
		}
		if bestJ >= 0 && bestSim > matchThreshold {
			total += bestSim
			matched[bestJ] = true
		}
	}

	// A short term fully matched inside a longer one with the same leading
	// token ("customer payments" in "customer payment journal").
	if len(tokensA) <= 2 && len(tokensB) > 2 && len(matched) >= len(tokensA) &&
		tokensA[0] == tokensB[0] && total/float64(len(tokensA)) > shortSubsetMinQuality {
		return shortSubsetScore
	}

	if len(tokensA) != len(tokensB) {
		if score, ok := subsetScore(tokensA, tokensB, total, len(matched)); ok {
			return score
		}
	}

	maxLen := len(tokensA)
	if len(tokensB) > maxLen {
		maxLen = len(tokensB)
	}
	score := total / float64(maxLen)

	if gap := absInt(len(tokensA) - len(tokensB)); gap > 1 {
		score *= 1.0 / (1.0 + lengthGapPenalty*float64(gap))
	}

	if score < minTermScore {
		return 0.0
	}
	return score
}

// buildTokenMatrix computes pairwise token similarities with position
// bonuses: aligning at position 0 earns a 50% bonus, other equal positions
// 20%, both capped at 1.0.
func buildTokenMatrix(tokensA, tokensB []string) [][]float64 {
	matrix := make([][]float64, len(tokensA))
	for i, ta := range tokensA {
		row := make([]float64, len(tokensB))
		for j, tb := range tokensB {
			sim := Ratio(ta, tb)
			if i == j {
				if i == 0 {
					sim = math.Min(sim*firstTokenBonus, 1.0)
				} else {
					sim = math.Min(sim*positionBonus, 1.0)
				}
			}
			row[j] = sim
		}
		matrix[i] = row
	}
	return matrix
}

// subsetScore handles a shorter term matching into a longer one. A 2-vs-2
// singular/plural style variant scores a fixed 0.9; otherwise the score is
// scaled between 0.7 and 1.0 by the length ratio and match quality.
func subsetScore(tokensA, tokensB []string, total float64, matchedCount int) (float64, bool) {
	shorter, longer := tokensA, tokensB
	if len(tokensB) < len(tokensA) {
		shorter, longer = tokensB, tokensA
	}

	avgQuality := total / float64(len(shorter))
	if float64(matchedCount) < float64(len(shorter))*subsetMatchedFraction || avgQuality <= subsetMinQuality {
		return 0.0, false
	}

	if len(shorter) == 2 && len(longer) == 2 &&
		shorter[0] == longer[0] && Ratio(shorter[1], longer[1]) > pluralTokenSimilarity {
		return pluralVariantScore, true
	}

	lengthRatio := float64(len(shorter)) / float64(len(longer))
	return subsetBaseScore + subsetScaleRange*lengthRatio*avgQuality, true
}

// HasPluralVariant reports whether two token lists differ by a trailing-"s"
// plural/singular variation. The leading tokens must match exactly.
func HasPluralVariant(tokensA, tokensB []string) bool {
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return false
	}
	if tokensA[0] != tokensB[0] {
		return false
	}
	for _, ta := range tokensA {
		for _, tb := range tokensB {
			if strings.HasSuffix(ta, "s") && strings.TrimSuffix(ta, "s") == tb {
				return true
			}
			if strings.HasSuffix(tb, "s") && strings.TrimSuffix(tb, "s") == ta {
				return true
			}
		}
	}
	return false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
