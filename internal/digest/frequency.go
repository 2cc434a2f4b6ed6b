package digest

import (
	"regexp"
	"strings"
)

// minTokenLen: tokens at or below this length never enter the table.
const minTokenLen = 2

var nonTokenChars = regexp.MustCompile(`[^a-z0-9\s]+`)

// normalizeTokens lowercases the text, strips every character that is
// not a lowercase letter, digit or whitespace, and splits on
// whitespace runs. The scorer and the analyzer must share this exact
// normalization or keyword and sentence rankings drift apart.
func normalizeTokens(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := nonTokenChars.ReplaceAllString(lowered, "")
	return strings.Fields(cleaned)
}

// FrequencyTable maps normalized words to occurrence counts and
// remembers first-insertion order, which breaks keyword ties.
// Read-only once built.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

func (t *FrequencyTable) add(word string) {
	if _, seen := t.counts[word]; !seen {
		t.order = append(t.order, word)
	}
	t.counts[word]++
}

// Count returns the occurrence count for word, 0 when absent.
func (t *FrequencyTable) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words in the table.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Words returns the distinct words in first-seen order.
func (t *FrequencyTable) Words() []string {
	words := make([]string, len(t.order))
	copy(words, t.order)
	return words
}

// analyze builds the shared frequency table for the whole transcript.
// A token counts iff it is longer than 2 characters and not a stop
// word. No stemming, exact string match only.
func (d *implDigester) analyze(text string) *FrequencyTable {
	table := newFrequencyTable()
	for _, tok := range normalizeTokens(text) {
		if len(tok) <= minTokenLen {
			continue
		}
		if _, stop := d.stopWords[tok]; stop {
			continue
		}
		table.add(tok)
	}
	return table
}
