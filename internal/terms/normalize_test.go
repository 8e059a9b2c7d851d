package terms

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Quote", "quote"},
		{"trim", "  Posted  ", "posted"},
		{"collapse spaces", "Payment   Journal", "payment journal"},
		{"tabs and newlines", "Payment\t\nJournal", "payment journal"},
		{"mixed", "  Sales   QUOTE  Line ", "sales quote line"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Normalize(test.in); got != test.want {
				t.Errorf("Normalize(%q) = %q, want %q", test.in, got, test.want)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	tokens := Tokens("  Customer   Payment Journal ")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	for i, want := range []string{"customer", "payment", "journal"} {
		if tokens[i] != want {
			t.Errorf("token %d = %q, want %q", i, tokens[i], want)
		}
	}
}
