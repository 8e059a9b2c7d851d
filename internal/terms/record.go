package terms

// DefaultWeight is the weight assigned to records added without an explicit
// weight. Weights are caller-assigned priorities, conventionally 0.0-2.0 but
// never range checked.
const DefaultWeight = 1.0

// TranslationRecord is one candidate translation for a stored term. Context
// is a free-form disambiguation string, optionally hierarchical
// ("Sales.Quote.UI"); the empty string marks the default, context-less
// translation. Weight breaks ties between equally-contextual candidates.
type TranslationRecord struct {
	Text    string
	Context string
	Weight  float64
}

// IsDefault reports whether the record is the context-less default.
func (r TranslationRecord) IsDefault() bool {
	return r.Context == ""
}
