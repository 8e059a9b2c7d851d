package lookup

import "fmt"

// MatchType records how a translation was resolved. Consumers use it to
// attribute translations to exact, context, default, or fuzzy resolution in
// downstream statistics.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchContext MatchType = "context"
	MatchDefault MatchType = "default"
	MatchFuzzy   MatchType = "fuzzy"
	MatchNone    MatchType = "no_match"
)

// Resolution is the outcome of a context-aware lookup: the winning
// translation, how it was found, and the score that selected it.
type Resolution struct {
	Translation string
	Match       MatchType
	Score       float64
}

// String returns a human-readable representation of a Resolution
func (r Resolution) String() string {
	return fmt.Sprintf("Resolution{Translation: %q, Match: %s, Score: %.3f}",
		r.Translation, r.Match, r.Score)
}
