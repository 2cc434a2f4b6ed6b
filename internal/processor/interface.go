package processor

import "context"

// Processor handles one dropped transcript file end to end.
type Processor interface {
	Process(ctx context.Context, transcriptPath string) error
}
