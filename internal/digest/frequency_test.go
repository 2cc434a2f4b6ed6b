package digest

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercase and strip punctuation",
			text: "Hello, World! It's 2024.",
			want: []string{"hello", "world", "its", "2024"},
		},
		{
			name: "unicode punctuation stripped",
			text: "compile-time checks — zero cost",
			want: []string{"compiletime", "checks", "zero", "cost"},
		},
		{
			name: "whitespace runs",
			text: "  spaced\tout\n tokens  ",
			want: []string{"spaced", "out", "tokens"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTokens(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeTokens() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	d := newTestDigester()

	table := d.analyze("The borrow checker guards the borrow rules. An owner moves, the borrow ends.")

	if got := table.Count("borrow"); got != 3 {
		t.Errorf("Count(borrow) = %d, want 3", got)
	}
	if got := table.Count("checker"); got != 1 {
		t.Errorf("Count(checker) = %d, want 1", got)
	}
	// "the" is a stop word, "an" is too short
	if got := table.Count("the"); got != 0 {
		t.Errorf("Count(the) = %d, want 0", got)
	}
	if got := table.Count("an"); got != 0 {
		t.Errorf("Count(an) = %d, want 0", got)
	}
	if got := table.Count("missing"); got != 0 {
		t.Errorf("Count(missing) = %d, want 0", got)
	}
}

func TestAnalyzeInsertionOrder(t *testing.T) {
	d := newTestDigester()

	table := d.analyze("gamma alpha beta alpha gamma alpha")

	want := []string{"gamma", "alpha", "beta"}
	if got := table.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

// Total table mass equals the count of tokens that survive the
// length and stop word filters, and never exceeds the token count.
func TestAnalyzeTokenMass(t *testing.T) {
	d := newTestDigester()
	text := "Ownership and borrowing keep memory safe. The compiler enforces ownership at compile time, so no garbage collector runs."

	tokens := normalizeTokens(text)
	wantMass := 0
	for _, tok := range tokens {
		if len(tok) <= minTokenLen {
			continue
		}
		if _, stop := d.stopWords[tok]; stop {
			continue
		}
		wantMass++
	}

	table := d.analyze(text)
	mass := 0
	for _, w := range table.Words() {
		mass += table.Count(w)
	}

	if mass != wantMass {
		t.Errorf("table mass = %d, want %d", mass, wantMass)
	}
	if mass > len(strings.Fields(text)) {
		t.Errorf("table mass %d exceeds raw token count %d", mass, len(strings.Fields(text)))
	}
}
