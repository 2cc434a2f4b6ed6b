package digest

// DefaultMaxInputBytes caps transcript size at 4 MiB. Scoring cost is
// O(sentences x average sentence length), so a hard cap keeps a
// pathological input from degrading silently.
const DefaultMaxInputBytes = 4 << 20

// Options configures a Digester. The zero value gives the defaults.
type Options struct {
	// MaxInputBytes rejects transcripts larger than this. 0 means
	// DefaultMaxInputBytes; negative disables the cap.
	MaxInputBytes int

	// ExtraStopWords are appended to the built-in stop word set.
	// They are normalized to lowercase; the defaults cannot be removed.
	ExtraStopWords []string
}

type implDigester struct {
	stopWords     map[string]struct{}
	maxInputBytes int
}

// New creates a Digester with the given options.
func New(opts Options) Digester {
	maxBytes := opts.MaxInputBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxInputBytes
	}

	return &implDigester{
		stopWords:     buildStopWords(opts.ExtraStopWords),
		maxInputBytes: maxBytes,
	}
}
