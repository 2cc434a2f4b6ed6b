package stats

import (
	"net/http"
	"time"

	"github.com/ndhoang91/tubedigest/internal/logger"
)

const defaultAPIBase = "https://www.googleapis.com/youtube/v3"

// recentUploadCount is how many of the latest uploads feed the trend
// heuristic.
const recentUploadCount = 10

type implReporter struct {
	httpClient *http.Client
	logger     logger.Logger
	apiKey     string
	apiBase    string
}

// New creates a Reporter backed by the YouTube Data API v3.
func New(apiKey string, log logger.Logger, timeout time.Duration) Reporter {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &implReporter{
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
		apiKey:     apiKey,
		apiBase:    defaultAPIBase,
	}
}
