package similarity

import "strings"

// businessDomain groups the keywords that signal one business area inside a
// context string. Keyword lists mix English and Danish because the
// terminology corpus this engine was tuned on originates in Business Central
// localization files.
type businessDomain struct {
	name     string
	keywords []string
}

// generalDomain matches broadly and scores lower than a specific domain hit.
const generalDomain = "general"

var businessDomains = []businessDomain{
	{"invoice", []string{"faktura", "invoice", "bill", "billing"}},
	{"document", []string{"document", "documentation", "paper", "form"}},
	{"customer", []string{"debitor", "customer", "client", "buyer"}},
	{"vendor", []string{"kreditor", "vendor", "supplier", "seller"}},
	{"sales", []string{"salg", "sales", "selling", "offer"}},
	{"purchase", []string{"køb", "purchase", "procurement", "buying"}},
	{"report", []string{"rapport", "report", "reporting", "analysis"}},
	{"item", []string{"vare", "item", "product", "goods"}},
	{"payment", []string{"betaling", "payment", "transaction", "transfer"}},
	{"ledger", []string{"finans", "ledger", "accounting", "bookkeeping"}},
	{"tax", []string{"moms", "tax", "vat", "duty"}},
	{"banking", []string{"bank", "banking", "account", "deposit"}},
	{"technical", []string{"technical", "system", "setup", "configuration"}},
	{"ui", []string{"screen", "form", "dialog", "interface", "user interface"}},
	{"marketing", []string{"marketing", "campaign", "promotion"}},
	{"resource", []string{"resource", "capacity", "planning"}},
	{"warehouse", []string{"warehouse", "inventory", "stock"}},
	{"production", []string{"production", "manufacturing", "assembly"}},
	{"project", []string{"project", "task", "planning"}},
	{"service", []string{"service", "maintenance", "repair"}},
	{"human resources", []string{"hr", "employee", "staff", "personnel"}},
	{generalDomain, []string{"general", "common", "shared"}},
}

// domainMatch scores two contexts by shared business domains, falling back
// to plain token overlap when no domain is shared.
func domainMatch(c1, c2 string) float64 {
	l1 := strings.ToLower(c1)
	l2 := strings.ToLower(c2)

	general := false
	specific := false
	for _, domain := range businessDomains {
		if containsAny(l1, domain.keywords) && containsAny(l2, domain.keywords) {
			if domain.name == generalDomain {
				general = true
			} else {
				specific = true
			}
		}
	}

	switch {
	case general && specific:
		return domainGeneralMixedScore
	case specific:
		return domainSharedScore
	case general:
		return domainGeneralOnlyScore
	}

	return tokenOverlap(l1, l2)
}

// tokenOverlap scores the proportion of shared whitespace-separated tokens,
// scaled between 0.3 and 0.7. Contexts with no common token score zero.
func tokenOverlap(l1, l2 string) float64 {
	set1 := tokenSet(l1)
	set2 := tokenSet(l2)

	common := 0
	for token := range set1 {
		if set2[token] {
			common++
		}
	}
	if common == 0 {
		return 0.0
	}

	maxLen := len(set1)
	if len(set2) > maxLen {
		maxLen = len(set2)
	}
	return tokenOverlapBase + tokenOverlapRange*float64(common)/float64(maxLen)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(s) {
		set[token] = true
	}
	return set
}
