package lookup

import (
	"strings"

	"github.com/standardbeagle/termbridge/internal/debug"
	"github.com/standardbeagle/termbridge/internal/errors"
	"github.com/standardbeagle/termbridge/internal/similarity"
	"github.com/standardbeagle/termbridge/internal/terms"
)

// DefaultThreshold is the fuzzy-match similarity threshold used when the
// caller does not supply one.
const DefaultThreshold = 0.85

// Lookup cascade tunables. Golden values from the terminology corpus this
// engine was tuned on; regression tests pin them.
const (
	// contextAcceptFloor is the minimum context similarity for a contexted
	// record to win over the default translation.
	contextAcceptFloor = 0.5

	// Effective-threshold relaxations for fuzzy term matching.
	longTermRelax         = 0.9  // either term longer than 2 tokens
	closeLengthRelax      = 0.85 // token-count difference of at most 1
	equalLengthRelax      = 0.9  // equal token counts
	minEffectiveThreshold = 0.4

	// Plural/singular variants match more eagerly.
	pluralThresholdRelax  = 0.7
	pluralSimilarityBoost = 1.2

	// Length-gap tolerances: candidates whose token count differs by more
	// are skipped. Short queries get the wider tolerance.
	shortQueryGapTolerance = 3
	longQueryGapTolerance  = 2

	// Short queries also scan longer stored terms (up to preScanMaxTokens)
	// for inflected-variant matches above preScanMinSimilarity.
	preScanMaxTokens     = 4
	preScanMinSimilarity = 0.5

	// Context-aware fuzzy scoring: blend of term and context similarity,
	// a bonus for strongly matching contexts, and the acceptance floor.
	contextTermWeight      = 0.6
	contextCtxWeight       = 0.4
	contextBonus           = 0.1
	contextBonusAbove      = 0.7
	minFuzzyTermSimilarity = 0.3
	fuzzyContextFloor      = 0.4
)

// Engine resolves source-language terms against a terminology store,
// disambiguating by business context and falling back to approximate
// matching when no exact entry exists. Every lookup is a synchronous read;
// the engine holds no mutable state beyond its store and category map and
// spawns no background work.
type Engine struct {
	store    *terms.Store
	contexts *similarity.ContextScorer
}

// NewEngine creates an engine over the given store with an empty category
// map and the default context separator.
func NewEngine(store *terms.Store) *Engine {
	return &Engine{
		store:    store,
		contexts: similarity.NewContextScorer(),
	}
}

// Store returns the engine's terminology store.
func (e *Engine) Store() *terms.Store {
	return e.store
}

// SetCategories installs the caller-supplied category map used by context
// similarity scoring, replacing any prior map.
func (e *Engine) SetCategories(categories map[string][]string) {
	e.contexts.SetCategories(categories)
}

// SetSeparator overrides the hierarchical context separator.
func (e *Engine) SetSeparator(separator string) {
	e.contexts.SetSeparator(separator)
}

// GetTranslation returns the default translation for a term: the
// highest-weight context-less record, or the highest-weight record of any
// context when no default exists. The second return is false when the key is
// absent.
func (e *Engine) GetTranslation(term, language string) (string, bool) {
	return pickDefault(e.store.GetAll(term, language))
}

// GetTranslationWithContext resolves a term using context information. See
// Resolve for the cascade; this variant drops the attribution.
func (e *Engine) GetTranslationWithContext(term, language, context string) (string, bool) {
	res, ok := e.Resolve(term, language, context)
	if !ok {
		return "", false
	}
	return res.Translation, true
}

// Resolve runs the context-aware lookup cascade, first success wins:
//
//  1. a record whose context equals the query context case-insensitively
//  2. the best contexted record by context similarity (ties broken by
//     hierarchy depth, then weight), accepted above the similarity floor
//  3. the context-less default translation
//  4. context-aware fuzzy matching across the whole language
//
// A key absent from the store goes straight to the fuzzy stage. The returned
// Resolution carries the match attribution for downstream statistics.
func (e *Engine) Resolve(term, language, context string) (Resolution, bool) {
	records := e.store.GetAll(term, language)
	if len(records) > 0 {
		if text, ok := exactContextMatch(records, context); ok {
			return Resolution{Translation: text, Match: MatchExact, Score: 1.0}, true
		}
		if text, score, ok := e.bestContextMatch(records, context); ok {
			return Resolution{Translation: text, Match: MatchContext, Score: score}, true
		}
		for _, rec := range records {
			if rec.IsDefault() {
				return Resolution{Translation: rec.Text, Match: MatchDefault, Score: 1.0}, true
			}
		}
	}

	if text, score, ok := e.fuzzyWithContext(term, language, context); ok {
		return Resolution{Translation: text, Match: MatchFuzzy, Score: score}, true
	}
	return Resolution{Match: MatchNone}, false
}

// GetTranslationFuzzy returns the translation of the stored term most
// similar to the query. The threshold must lie in [0.0, 1.0]; anything else
// fails with errors.ErrInvalidThreshold before any work is done. An exact
// normalized-key hit short-circuits to the default-selection rule. Absence
// of a good-enough candidate is ("", false, nil), never an error.
func (e *Engine) GetTranslationFuzzy(term, language string, threshold float64) (string, bool, error) {
	if threshold < 0.0 || threshold > 1.0 {
		return "", false, errors.NewThresholdError("fuzzy-match", threshold).WithTerm(term, language)
	}

	query := terms.Normalize(term)
	queryTokens := strings.Fields(query)

	if records := e.store.GetAll(query, language); len(records) > 0 {
		text, ok := pickDefault(records)
		return text, ok, nil
	}

	// Best candidate so far. Strict comparisons keep the first-encountered
	// term on similarity ties, so results are deterministic.
	bestSim := 0.0
	bestTerm := ""
	found := false
	consider := func(sim float64, stored string) {
		if !found || sim > bestSim {
			bestSim = sim
			bestTerm = stored
			found = true
		}
	}

	// Short queries also match longer stored terms whose leading token is
	// identical and whose following token is an inflected variant
	// ("customer payments" against "customer payment journal").
	if len(queryTokens) >= 1 && len(queryTokens) <= 2 {
		for _, stored := range e.store.Terms(language) {
			storedTokens := strings.Fields(stored)
			if len(storedTokens) <= len(queryTokens) || len(storedTokens) > preScanMaxTokens {
				continue
			}
			if storedTokens[0] != queryTokens[0] {
				continue
			}
			if len(queryTokens) == 2 && !anyRelated(queryTokens[1], storedTokens[1:]) {
				continue
			}
			if sim := similarity.TermSimilarity(query, stored); sim > preScanMinSimilarity {
				consider(sim, stored)
			}
		}
	}

	for _, stored := range e.store.Terms(language) {
		storedTokens := strings.Fields(stored)

		tolerance := longQueryGapTolerance
		if len(queryTokens) <= 2 {
			tolerance = shortQueryGapTolerance
		}
		if absInt(len(queryTokens)-len(storedTokens)) > tolerance {
			continue
		}

		sim := similarity.TermSimilarity(query, stored)
		effective := effectiveThreshold(threshold, queryTokens, storedTokens)
		if similarity.HasPluralVariant(queryTokens, storedTokens) {
			effective *= pluralThresholdRelax
			sim *= pluralSimilarityBoost
		}

		if sim > effective {
			consider(sim, stored)
		}
	}

	if !found {
		return "", false, nil
	}

	if debug.Enabled() {
		debug.Logf("lookup: fuzzy matched %q to %q (%.3f) in %s", query, bestTerm, bestSim, language)
	}
	text, ok := pickDefault(e.store.GetAll(bestTerm, language))
	return text, ok, nil
}

// effectiveThreshold relaxes the supplied threshold for longer terms and for
// candidates of similar token count, floored at minEffectiveThreshold.
func effectiveThreshold(threshold float64, queryTokens, storedTokens []string) float64 {
	effective := threshold

	maxTokens := len(queryTokens)
	if len(storedTokens) > maxTokens {
		maxTokens = len(storedTokens)
	}
	if maxTokens > 2 {
		effective *= longTermRelax
	}
	if absInt(len(queryTokens)-len(storedTokens)) <= 1 {
		effective *= closeLengthRelax
	}
	if len(queryTokens) == len(storedTokens) {
		effective *= equalLengthRelax
	}

	if effective < minEffectiveThreshold {
		effective = minEffectiveThreshold
	}
	return effective
}

// exactContextMatch finds a record whose context equals the query context
// case-insensitively.
func exactContextMatch(records []terms.TranslationRecord, context string) (string, bool) {
	for _, rec := range records {
		if !rec.IsDefault() && strings.EqualFold(rec.Context, context) {
			return rec.Text, true
		}
	}
	return "", false
}

// bestContextMatch selects the contexted record maximizing context
// similarity, breaking ties by hierarchy depth (deeper is more specific)
// and then weight. The winner is accepted only above contextAcceptFloor.
func (e *Engine) bestContextMatch(records []terms.TranslationRecord, context string) (string, float64, bool) {
	bestScore := -1.0
	bestDepth := -1
	bestWeight := 0.0
	bestText := ""
	found := false

	for _, rec := range records {
		if rec.IsDefault() {
			continue
		}
		score := e.contexts.Similarity(context, rec.Context)
		depth := strings.Count(rec.Context, e.contexts.Separator())

		better := score > bestScore ||
			(score == bestScore && depth > bestDepth) ||
			(score == bestScore && depth == bestDepth && rec.Weight > bestWeight)
		if better {
			bestScore = score
			bestDepth = depth
			bestWeight = rec.Weight
			bestText = rec.Text
			found = true
		}
	}

	if found && bestScore > contextAcceptFloor {
		return bestText, bestScore, true
	}
	return "", 0, false
}

// fuzzyWithContext scans every stored term of the language, blending term and
// context similarity. Context-less records score termSim*weight; contexted
// records score (0.6*termSim + 0.4*ctxSim)*weight with a bonus for strongly
// matching contexts. The best candidate must clear fuzzyContextFloor.
func (e *Engine) fuzzyWithContext(term, language, context string) (string, float64, bool) {
	query := terms.Normalize(term)

	bestScore := fuzzyContextFloor
	bestText := ""
	found := false

	for _, stored := range e.store.Terms(language) {
		termSim := similarity.TermSimilarity(query, stored)
		if termSim < minFuzzyTermSimilarity {
			continue
		}

		for _, rec := range e.store.GetAll(stored, language) {
			var score float64
			if rec.IsDefault() {
				score = termSim * rec.Weight
			} else {
				ctxSim := 0.0
				if context != "" {
					ctxSim = e.contexts.Similarity(context, rec.Context)
				}
				score = (contextTermWeight*termSim + contextCtxWeight*ctxSim) * rec.Weight
				if ctxSim > contextBonusAbove {
					score += contextBonus
				}
			}

			if score > bestScore {
				bestScore = score
				bestText = rec.Text
				found = true
			}
		}
	}

	return bestText, bestScore, found
}

// pickDefault selects from a record list per the default-selection rule: the
// highest-weight context-less record, else the highest-weight record of any
// context. Strict comparisons keep the first-encountered record on ties.
func pickDefault(records []terms.TranslationRecord) (string, bool) {
	if len(records) == 0 {
		return "", false
	}

	best := ""
	bestWeight := 0.0
	found := false
	for _, rec := range records {
		if rec.IsDefault() && (!found || rec.Weight > bestWeight) {
			best = rec.Text
			bestWeight = rec.Weight
			found = true
		}
	}
	if found {
		return best, true
	}

	for _, rec := range records {
		if !found || rec.Weight > bestWeight {
			best = rec.Text
			bestWeight = rec.Weight
			found = true
		}
	}
	return best, found
}

func anyRelated(token string, candidates []string) bool {
	for _, candidate := range candidates {
		if similarity.RelatedTokens(token, candidate) {
			return true
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
