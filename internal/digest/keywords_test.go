package digest

import (
	"reflect"
	"testing"
)

func TestTopKeywords(t *testing.T) {
	table := newFrequencyTable()
	for i := 0; i < 3; i++ {
		table.add("borrow")
	}
	for i := 0; i < 2; i++ {
		table.add("owner")
	}
	table.add("lifetime")

	got := topKeywords(table, 8)
	want := []string{"borrow", "owner", "lifetime"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topKeywords() = %v, want %v", got, want)
	}
}

// Two words with equal counts rank by first appearance.
func TestTopKeywordsTieBreak(t *testing.T) {
	d := newTestDigester()

	table := d.analyze("zebra apple zebra apple banana")

	got := topKeywords(table, 8)
	want := []string{"zebra", "apple", "banana"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywordsLimit(t *testing.T) {
	table := newFrequencyTable()
	words := []string{"one1", "two2", "three", "four", "five", "six6", "seven", "eight", "nine", "ten1"}
	for i, w := range words {
		for j := 0; j <= len(words)-i; j++ {
			table.add(w)
		}
	}

	got := topKeywords(table, keywordCount)
	if len(got) != keywordCount {
		t.Fatalf("topKeywords() returned %d, want %d", len(got), keywordCount)
	}
	if got[0] != "one1" {
		t.Errorf("top keyword = %q, want one1", got[0])
	}

	// strictly descending counts in this fixture
	for i := 1; i < len(got); i++ {
		if table.Count(got[i]) > table.Count(got[i-1]) {
			t.Errorf("keywords out of order at %d: %q before %q", i, got[i-1], got[i])
		}
	}
}
