package digest

import "sort"

const (
	summaryRatio = 0.1
	summaryMin   = 3
	summaryMax   = 10

	takeawayCount    = 5
	takeawayMaxRunes = 120
	takeawayCutRunes = 117
	ellipsisMarker   = "..."
)

// rankByScore returns a fresh copy sorted by score descending. The
// sort is stable, so equal scores keep ascending-index order. Summary
// and takeaway selection each rank their own copy; sorting the shared
// slice in place would corrupt the other selection.
func rankByScore(scored []ScoredSentence) []ScoredSentence {
	ranked := make([]ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// selectSummary picks 10% of the sentences (floored, clamped into
// [3,10], never more than exist) by score, then restores chronological
// order so the summary reads front to back.
func (d *implDigester) selectSummary(scored []ScoredSentence) []ScoredSentence {
	n := int(float64(len(scored)) * summaryRatio)
	if n < summaryMin {
		n = summaryMin
	}
	if n > summaryMax {
		n = summaryMax
	}
	if n > len(scored) {
		n = len(scored)
	}

	picked := rankByScore(scored)[:n]
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Index < picked[j].Index
	})
	return picked
}

// selectTakeaways picks the top 5 sentences and keeps them in score
// order. Long sentences are cut to 117 characters plus the ellipsis
// marker; the stored score is untouched.
func (d *implDigester) selectTakeaways(scored []ScoredSentence) []ScoredSentence {
	n := takeawayCount
	if n > len(scored) {
		n = len(scored)
	}

	picked := rankByScore(scored)[:n]
	out := make([]ScoredSentence, 0, n)
	for _, s := range picked {
		s.Text = truncateTakeaway(s.Text)
		out = append(out, s)
	}
	return out
}

func truncateTakeaway(text string) string {
	runes := []rune(text)
	if len(runes) <= takeawayMaxRunes {
		return text
	}
	return string(runes[:takeawayCutRunes]) + ellipsisMarker
}
