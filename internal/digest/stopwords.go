package digest

import "strings"

// defaultStopWords are common English words excluded from frequency
// counting. Filtered tokens simply contribute 0 to sentence scores.
var defaultStopWords = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "any",
	"can", "had", "her", "was", "one", "our", "out", "day", "get",
	"has", "him", "his", "how", "man", "new", "now", "old", "see",
	"two", "way", "who", "boy", "did", "its", "let", "put", "say",
	"she", "too", "use", "that", "with", "have", "this", "will",
	"your", "from", "they", "know", "want", "been", "good", "much",
	"some", "time", "very", "when", "come", "here", "just", "like",
	"long", "make", "many", "more", "only", "over", "such", "take",
	"than", "them", "well", "were", "what", "about", "because",
	"going", "really", "would", "could", "should", "there", "their",
	"these", "those", "which", "think", "thing", "things", "right",
	"gonna", "yeah", "okay", "dont", "youre", "thats",
	"into", "also", "then", "youve", "weve", "cant",
	"doesnt", "didnt", "isnt", "actually", "basically", "little",
	"kind", "sort", "lot", "lots", "something", "someone", "people",
}

// buildStopWords merges the defaults with caller-supplied extras.
// Extras are lowercased; the returned set is never mutated afterwards.
func buildStopWords(extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(defaultStopWords)+len(extra))
	for _, w := range defaultStopWords {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
