package digest

import (
	"errors"
	"strings"
	"testing"
)

func TestDigestEndToEnd(t *testing.T) {
	d := New(Options{})

	s1 := "Rust rust rust rust rust is a memory safe language."
	s2 := "Developers enjoy writing rust code every single afternoon."
	s3 := "Nothing important repeats anything whatsoever in closing."
	text := s1 + " " + s2 + " " + s3

	res, err := d.Digest(text)
	if err != nil {
		t.Fatalf("Digest() error = %v", err)
	}

	if res.WordCount != len(strings.Fields(text)) {
		t.Errorf("WordCount = %d, want %d", res.WordCount, len(strings.Fields(text)))
	}

	// three sentences: summaryCount clamps to min but never past T,
	// so all three come back in original order
	wantSummary := []string{s1, s2, s3}
	if len(res.Summary) != 3 {
		t.Fatalf("Summary has %d sentences, want 3", len(res.Summary))
	}
	for i, s := range res.Summary {
		if s != wantSummary[i] {
			t.Errorf("Summary[%d] = %q, want %q", i, s, wantSummary[i])
		}
	}

	// takeaways in score order: s1 dominates on raw frequency and
	// carries the largest position boost
	wantTakeaways := []string{s1, s2, s3}
	if len(res.Takeaways) != 3 {
		t.Fatalf("Takeaways has %d entries, want 3", len(res.Takeaways))
	}
	for i, s := range res.Takeaways {
		if s != wantTakeaways[i] {
			t.Errorf("Takeaways[%d] = %q, want %q", i, s, wantTakeaways[i])
		}
	}

	if len(res.Keywords) == 0 || res.Keywords[0] != "rust" {
		t.Errorf("Keywords = %v, want rust first", res.Keywords)
	}
	if res.Frequencies.Count("rust") != 6 {
		t.Errorf("Count(rust) = %d, want 6", res.Frequencies.Count("rust"))
	}
}

func TestDigestEmptyInput(t *testing.T) {
	d := New(Options{})

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Digest(tt.text)
			if !errors.Is(err, ErrEmptyTranscript) {
				t.Errorf("Digest() error = %v, want ErrEmptyTranscript", err)
			}
		})
	}
}

// No sentences is not an error: keywords still come from whole-text
// analysis while summary and takeaways are empty.
func TestDigestNoSentences(t *testing.T) {
	d := New(Options{})

	res, err := d.Digest("ownership borrowing")
	if err != nil {
		t.Fatalf("Digest() error = %v", err)
	}
	if len(res.Summary) != 0 {
		t.Errorf("Summary = %v, want empty", res.Summary)
	}
	if len(res.Takeaways) != 0 {
		t.Errorf("Takeaways = %v, want empty", res.Takeaways)
	}
	if len(res.Keywords) != 2 {
		t.Errorf("Keywords = %v, want 2 entries", res.Keywords)
	}
}

// Every token filtered out: scores are all zero, selection still runs
// and degenerates to chronological order, keywords are empty.
func TestDigestAllStopWords(t *testing.T) {
	d := New(Options{})

	res, err := d.Digest("The and for but not you all can say. They were just like some of them.")
	if err != nil {
		t.Fatalf("Digest() error = %v", err)
	}
	if len(res.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty", res.Keywords)
	}
	if len(res.Summary) != 2 {
		t.Errorf("Summary has %d sentences, want 2", len(res.Summary))
	}
	if len(res.Summary) == 2 && res.Summary[0] != "The and for but not you all can say." {
		t.Errorf("zero-score summary lost chronological order: %v", res.Summary)
	}
}

func TestDigestSizeCap(t *testing.T) {
	d := New(Options{MaxInputBytes: 64})

	_, err := d.Digest(strings.Repeat("overly long transcript ", 10))
	if !errors.Is(err, ErrTranscriptTooLarge) {
		t.Errorf("Digest() error = %v, want ErrTranscriptTooLarge", err)
	}
}

func TestDigestSizeCapDisabled(t *testing.T) {
	d := New(Options{MaxInputBytes: -1})

	if _, err := d.Digest(strings.Repeat("overly long transcript ", 10)); err != nil {
		t.Errorf("Digest() error = %v, want nil with the cap disabled", err)
	}
}

func TestDigestExtraStopWords(t *testing.T) {
	d := New(Options{ExtraStopWords: []string{"Subscribe"}})

	res, err := d.Digest("Subscribe subscribe subscribe ownership matters greatly here.")
	if err != nil {
		t.Fatalf("Digest() error = %v", err)
	}
	for _, kw := range res.Keywords {
		if kw == "subscribe" {
			t.Errorf("extra stop word leaked into keywords: %v", res.Keywords)
		}
	}
}
