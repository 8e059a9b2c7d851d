package terms

// languageEntry holds one language's records keyed by normalized term. The
// order slice preserves term insertion order; fuzzy lookups scan it instead
// of the map so tie-breaks by encounter order stay deterministic across runs.
type languageEntry struct {
	order   []string
	records map[string][]TranslationRecord
}

// Store maps (language, normalized source term) to an ordered list of
// translation records. A Store starts empty, is mutated only through Add and
// AddWeighted, and has no deletion operation. It performs no I/O and does no
// internal locking: a caller sharing one Store across goroutines must
// serialize adds against concurrent reads.
type Store struct {
	languages map[string]*languageEntry
	langOrder []string
}

// NewStore creates an empty terminology store.
func NewStore() *Store {
	return &Store{languages: make(map[string]*languageEntry)}
}

// Add records a context-less translation with the default weight. Any
// existing context-less record for the same key is replaced, so at most one
// default translation exists per term.
func (s *Store) Add(sourceTerm, translation, language string) {
	s.AddWeighted(sourceTerm, translation, language, "", DefaultWeight)
}

// AddWeighted records a translation with an explicit context and weight.
// At most one record exists per (term, context) pair: adding with a context
// already present replaces that record and preserves the others. An empty
// context addresses the default translation.
func (s *Store) AddWeighted(sourceTerm, translation, language, context string, weight float64) {
	entry := s.languages[language]
	if entry == nil {
		entry = &languageEntry{records: make(map[string][]TranslationRecord)}
		s.languages[language] = entry
		s.langOrder = append(s.langOrder, language)
	}

	key := Normalize(sourceTerm)
	existing, known := entry.records[key]
	if !known {
		entry.order = append(entry.order, key)
	}

	kept := make([]TranslationRecord, 0, len(existing)+1)
	for _, rec := range existing {
		if rec.Context != context {
			kept = append(kept, rec)
		}
	}
	kept = append(kept, TranslationRecord{Text: translation, Context: context, Weight: weight})
	entry.records[key] = kept
}

// GetAll returns a copy of the record list for the normalized key in the
// given language, or nil when the language or term is unknown.
func (s *Store) GetAll(sourceTerm, language string) []TranslationRecord {
	entry := s.languages[language]
	if entry == nil {
		return nil
	}
	records := entry.records[Normalize(sourceTerm)]
	if len(records) == 0 {
		return nil
	}
	out := make([]TranslationRecord, len(records))
	copy(out, records)
	return out
}

// Languages returns every language code with at least one entry, in
// first-use order.
func (s *Store) Languages() []string {
	out := make([]string, len(s.langOrder))
	copy(out, s.langOrder)
	return out
}

// Terms returns the normalized terms stored for a language in insertion
// order, or nil for an unknown language.
func (s *Store) Terms(language string) []string {
	entry := s.languages[language]
	if entry == nil {
		return nil
	}
	out := make([]string, len(entry.order))
	copy(out, entry.order)
	return out
}

// Len returns the number of distinct terms stored for a language.
func (s *Store) Len(language string) int {
	entry := s.languages[language]
	if entry == nil {
		return 0
	}
	return len(entry.order)
}
