package digest

const (
	positionBoostWeight = 0.2
	positionBoostDecay  = 0.1
)

// score sums the table counts for every token of each sentence, then
// applies a position boost favoring earlier sentences:
//
//	score *= 1 + 0.2/(1 + index*0.1)
//
// Spoken transcripts tend to state their topic up front; the boost
// decays smoothly toward 1. The formula is empirically tuned, a
// replaceable heuristic rather than anything principled.
//
// Sentence tokens are looked up unfiltered: stop words and short
// tokens are simply absent from the table and contribute 0. The
// asymmetry with analyze is intentional; filtering here would change
// which sentences get selected.
func (d *implDigester) score(sentences []Sentence, freq *FrequencyTable) []ScoredSentence {
	scored := make([]ScoredSentence, 0, len(sentences))
	for _, s := range sentences {
		total := 0.0
		for _, tok := range normalizeTokens(s.Text) {
			total += float64(freq.Count(tok))
		}
		total *= 1 + positionBoostWeight/(1+float64(s.Index)*positionBoostDecay)

		scored = append(scored, ScoredSentence{
			Text:  s.Text,
			Score: total,
			Index: s.Index,
		})
	}
	return scored
}
