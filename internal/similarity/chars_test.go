package similarity

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		a       string
		b       string
		minSim  float64 // minimum expected similarity
		maxSim  float64 // maximum expected similarity
		message string
	}{
		{"quote", "quote", 1.0, 1.0, "exact match"},
		{"", "", 1.0, 1.0, "both empty"},
		{"helo", "hello", 0.75, 0.85, "single edit"},
		{"quote", "quotes", 0.8, 0.9, "plural form"},
		{"invoice", "faktura", 0.0, 0.35, "unrelated words"},
		{"", "quote", 0.0, 0.0, "empty left"},
		{"quote", "", 0.0, 0.0, "empty right"},
	}

	for _, test := range tests {
		sim := Ratio(test.a, test.b)
		if sim < test.minSim || sim > test.maxSim {
			t.Errorf("%s: got %.3f, expected %.3f-%.3f for %q vs %q",
				test.message, sim, test.minSim, test.maxSim, test.a, test.b)
		}
	}
}

func TestRelatedTokens(t *testing.T) {
	tests := []struct {
		a       string
		b       string
		related bool
	}{
		{"payment", "payment", true},
		{"payment", "payments", true},
		{"payments", "payment", true},
		{"post", "posting", true},
		{"posted", "post", true},
		{"invoice", "invoices", true},
		{"Journal", "journals", true},
		{"invoice", "vendor", false},
		{"", "payment", false},
		{"a", "b", false},
	}

	for _, test := range tests {
		if got := RelatedTokens(test.a, test.b); got != test.related {
			t.Errorf("RelatedTokens(%q, %q) = %v, want %v", test.a, test.b, got, test.related)
		}
	}
}
