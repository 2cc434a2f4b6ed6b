package captions

import (
	"net/http"
	"time"

	"github.com/ndhoang91/tubedigest/internal/logger"
	"github.com/ndhoang91/tubedigest/pkg/executor"
)

type implFetcher struct {
	httpClient *http.Client
	exec       executor.Executor
	logger     logger.Logger
	language   string
	ytdlpPath  string
}

// New creates a Fetcher. language selects the preferred caption track;
// ytdlpPath enables the yt-dlp fallback when non-empty.
func New(exec executor.Executor, log logger.Logger, language, ytdlpPath string, timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &implFetcher{
		httpClient: &http.Client{Timeout: timeout},
		exec:       exec,
		logger:     log,
		language:   language,
		ytdlpPath:  ytdlpPath,
	}
}
