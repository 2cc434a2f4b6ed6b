package digest

import "sort"

// keywordCount caps the topics list.
const keywordCount = 8

// topKeywords ranks table entries by count descending. Starting from
// first-seen order and sorting stably makes ties deterministic:
// first-encountered wins.
func topKeywords(freq *FrequencyTable, n int) []string {
	words := freq.Words()
	sort.SliceStable(words, func(i, j int) bool {
		return freq.Count(words[i]) > freq.Count(words[j])
	})

	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}
