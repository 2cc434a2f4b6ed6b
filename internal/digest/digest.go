package digest

import (
	"fmt"
	"strings"
)

// Digest runs the full pipeline over one transcript: frequency
// analysis and segmentation over the raw text, then scoring,
// selection and keyword ranking. Pure function of the input; no I/O,
// no state carried between calls.
//
// Zero segmented sentences is not an error: Summary and Takeaways
// come back empty while Keywords may still be populated, since the
// analyzer works on the whole text independent of sentence
// boundaries.
func (d *implDigester) Digest(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyTranscript
	}
	if d.maxInputBytes > 0 && len(text) > d.maxInputBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrTranscriptTooLarge, len(text), d.maxInputBytes)
	}

	freq := d.analyze(text)
	sentences := d.segment(text)
	scored := d.score(sentences, freq)

	result := &Result{
		WordCount:   len(strings.Fields(text)),
		Keywords:    topKeywords(freq, keywordCount),
		Frequencies: freq,
	}
	for _, s := range d.selectSummary(scored) {
		result.Summary = append(result.Summary, s.Text)
	}
	for _, s := range d.selectTakeaways(scored) {
		result.Takeaways = append(result.Takeaways, s.Text)
	}

	return result, nil
}
