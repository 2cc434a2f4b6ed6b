package stats

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMissingAPIKey means no YouTube Data API key was configured.
	ErrMissingAPIKey = errors.New("youtube api key not configured")

	// ErrChannelNotFound means the API returned no channel for the
	// given ID or handle.
	ErrChannelNotFound = errors.New("channel not found")
)

// Trend classifies recent-upload performance against the channel's
// lifetime average.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendSteady  Trend = "steady"
	TrendCooling Trend = "cooling"
	TrendUnknown Trend = "unknown"
)

// VideoStats holds per-video statistics for recent uploads.
type VideoStats struct {
	VideoID     string
	Title       string
	Views       uint64
	PublishedAt time.Time
}

// ChannelReport aggregates channel statistics plus trend heuristics.
type ChannelReport struct {
	ChannelID   string
	Title       string
	Subscribers uint64
	TotalViews  uint64
	VideoCount  uint64

	RecentVideos []VideoStats
	Trend        Trend
	// CadenceDays is the average gap between recent uploads, 0 when
	// fewer than two uploads were seen.
	CadenceDays float64
}

// Reporter builds statistics reports for a channel ID or @handle.
type Reporter interface {
	Report(ctx context.Context, channel string) (*ChannelReport, error)
}
