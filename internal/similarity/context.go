package similarity

import "strings"

// DefaultSeparator delimits hierarchical context paths ("Sales.Quote.UI").
const DefaultSeparator = "."

// Context scoring tunables. Evaluated as a cascade: the first matching
// signal decides the score.
const (
	// Category scores: a context naming a category whose keywords appear in
	// the other context, and two contexts sharing keywords of one category.
	categoryNameScore   = 0.9
	categorySharedScore = 0.8

	// Hierarchy scores: direct parent/child, shared leading segments
	// (scaled), and a segment matching anywhere between the two paths.
	directParentScore = 0.9
	sharedRootBase    = 0.5
	sharedRootRange   = 0.4
	anySegmentScore   = 0.4

	// Business-domain scores: a shared specific domain, "general" mixed
	// with a specific domain, and "general" alone.
	domainSharedScore       = 0.8
	domainGeneralMixedScore = 0.7
	domainGeneralOnlyScore  = 0.4

	// Token-overlap fallback scales between 0.3 and 0.7.
	tokenOverlapBase  = 0.3
	tokenOverlapRange = 0.4

	// Contexts related only by generic term similarity are discounted.
	fallbackDiscount = 0.7
)

// ContextScorer scores how closely two context strings refer to the same
// place of use. Each scorer owns its category map and separator, so engine
// instances can hold independent configurations.
type ContextScorer struct {
	categories map[string][]string
	separator  string
}

// NewContextScorer creates a scorer with the default hierarchy separator and
// no category map.
func NewContextScorer() *ContextScorer {
	return &ContextScorer{separator: DefaultSeparator}
}

// SetCategories installs the category map wholesale, replacing any prior
// map. Keys are category names; values are lowercase keywords that identify
// the category inside a context string.
func (cs *ContextScorer) SetCategories(categories map[string][]string) {
	cs.categories = categories
}

// SetSeparator overrides the hierarchy separator.
func (cs *ContextScorer) SetSeparator(separator string) {
	if separator != "" {
		cs.separator = separator
	}
}

// Separator returns the hierarchy separator in use.
func (cs *ContextScorer) Separator() string {
	return cs.separator
}

// Similarity scores two contexts in [0, 1]. Exact case-insensitive equality
// wins outright; otherwise category, hierarchy, and business-domain signals
// are tried in order, and generic term similarity (discounted) is the last
// resort.
func (cs *ContextScorer) Similarity(c1, c2 string) float64 {
	if strings.EqualFold(c1, c2) {
		return 1.0
	}
	if score := cs.categoryMatch(c1, c2); score > 0 {
		return score
	}
	if score := cs.hierarchyMatch(c1, c2); score > 0 {
		return score
	}
	if score := domainMatch(c1, c2); score > 0 {
		return score
	}
	return TermSimilarity(c1, c2) * fallbackDiscount
}

func (cs *ContextScorer) categoryMatch(c1, c2 string) float64 {
	if len(cs.categories) == 0 {
		return 0.0
	}

	l1 := strings.ToLower(c1)
	l2 := strings.ToLower(c2)

	// One context is a category name and the other mentions that category.
	for name, keywords := range cs.categories {
		if c1 == name && containsAny(l2, keywords) {
			return categoryNameScore
		}
		if c2 == name && containsAny(l1, keywords) {
			return categoryNameScore
		}
	}

	// Both contexts mention keywords of the same category.
	for _, keywords := range cs.categories {
		if containsAny(l1, keywords) && containsAny(l2, keywords) {
			return categorySharedScore
		}
	}

	return 0.0
}

func (cs *ContextScorer) hierarchyMatch(c1, c2 string) float64 {
	if strings.HasPrefix(c1, c2+cs.separator) || strings.HasPrefix(c2, c1+cs.separator) {
		return directParentScore
	}

	parts1 := strings.Split(c1, cs.separator)
	parts2 := strings.Split(c2, cs.separator)

	shared := 0
	for i := 0; i < len(parts1) && i < len(parts2); i++ {
		if !strings.EqualFold(parts1[i], parts2[i]) {
			break
		}
		shared++
	}
	if shared > 0 {
		maxParts := len(parts1)
		if len(parts2) > maxParts {
			maxParts = len(parts2)
		}
		return sharedRootBase + sharedRootRange*float64(shared)/float64(maxParts)
	}

	// Any segment matching anywhere between the two paths.
	for _, p1 := range parts1 {
		for _, p2 := range parts2 {
			if strings.EqualFold(p1, p2) {
				return anySegmentScore
			}
		}
	}

	return 0.0
}

func containsAny(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
