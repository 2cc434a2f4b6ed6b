package digest

import "errors"

var (
	// ErrEmptyTranscript is returned when the input is empty or
	// whitespace-only. It is the only fatal digest condition.
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrTranscriptTooLarge is returned when the input exceeds the
	// configured size cap.
	ErrTranscriptTooLarge = errors.New("transcript exceeds size limit")
)

// Sentence is one segmented sentence with its 0-based position in the
// transcript. The index restores chronological order after ranking.
type Sentence struct {
	Text  string
	Index int
}

// ScoredSentence is a sentence with its frequency score. Immutable
// once produced by the scorer.
type ScoredSentence struct {
	Text  string
	Score float64
	Index int
}

// Result is the digest of one transcript.
type Result struct {
	// WordCount counts whitespace-separated tokens of the raw input,
	// before any filtering.
	WordCount int

	// Summary holds the selected sentences in chronological order.
	Summary []string

	// Keywords holds up to 8 words, most frequent first.
	Keywords []string

	// Takeaways holds up to 5 sentences in descending score order,
	// each truncated to at most 120 characters.
	Takeaways []string

	// Frequencies exposes the word counts behind Keywords for
	// consumers that need them (a word cloud, for instance).
	Frequencies *FrequencyTable
}
