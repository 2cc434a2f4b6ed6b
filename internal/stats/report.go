package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Trend bands: recent mean vs lifetime mean views per video.
const (
	trendRisingRatio  = 1.25
	trendCoolingRatio = 0.75
)

// Report fetches channel statistics and the latest uploads, then
// derives trend and cadence heuristics.
func (r *implReporter) Report(ctx context.Context, channel string) (*ChannelReport, error) {
	if r.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	info, err := r.resolveChannel(ctx, channel)
	if err != nil {
		return nil, err
	}

	r.logger.Info(ctx, "Building stats report for channel: %s (%s)", info.title, info.id)

	report := &ChannelReport{
		ChannelID:   info.id,
		Title:       info.title,
		Subscribers: info.subscribers,
		TotalViews:  info.totalViews,
		VideoCount:  info.videoCount,
		Trend:       TrendUnknown,
	}

	if info.uploadPlaylist != "" {
		videos, err := r.recentUploads(ctx, info.uploadPlaylist)
		if err != nil {
			r.logger.Warn(ctx, "Failed to list recent uploads: %v", err)
		} else if err := r.fillVideoStats(ctx, videos); err != nil {
			r.logger.Warn(ctx, "Failed to fetch video statistics: %v", err)
		} else {
			report.RecentVideos = videos
		}
	}

	report.Trend = classifyTrend(report)
	report.CadenceDays = uploadCadenceDays(report.RecentVideos)

	return report, nil
}

// classifyTrend compares the mean views of the recent uploads against
// the channel's lifetime views-per-video. Crude, but it separates a
// growing channel from a stalling one well enough for a console
// report.
func classifyTrend(report *ChannelReport) Trend {
	if len(report.RecentVideos) == 0 || report.VideoCount == 0 || report.TotalViews == 0 {
		return TrendUnknown
	}

	var recentTotal uint64
	for _, v := range report.RecentVideos {
		recentTotal += v.Views
	}
	recentMean := float64(recentTotal) / float64(len(report.RecentVideos))
	lifetimeMean := float64(report.TotalViews) / float64(report.VideoCount)

	ratio := recentMean / lifetimeMean
	switch {
	case ratio >= trendRisingRatio:
		return TrendRising
	case ratio <= trendCoolingRatio:
		return TrendCooling
	default:
		return TrendSteady
	}
}

// uploadCadenceDays averages the gap between consecutive uploads.
func uploadCadenceDays(videos []VideoStats) float64 {
	if len(videos) < 2 {
		return 0
	}

	sorted := make([]VideoStats, len(videos))
	copy(sorted, videos)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.Before(sorted[j].PublishedAt)
	})

	span := sorted[len(sorted)-1].PublishedAt.Sub(sorted[0].PublishedAt)
	return span.Hours() / 24 / float64(len(sorted)-1)
}

// FormatText renders the report for the console.
func (r *ChannelReport) FormatText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Channel: %s (%s)\n", r.Title, r.ChannelID)
	fmt.Fprintf(&b, "Subscribers: %s\n", formatCount(r.Subscribers))
	fmt.Fprintf(&b, "Total views: %s across %d videos\n", formatCount(r.TotalViews), r.VideoCount)
	fmt.Fprintf(&b, "Trend: %s", r.Trend)
	if r.CadenceDays > 0 {
		fmt.Fprintf(&b, " (one upload every %.1f days)", r.CadenceDays)
	}
	b.WriteString("\n")

	if len(r.RecentVideos) > 0 {
		b.WriteString("\nRecent uploads:\n")
		for _, v := range r.RecentVideos {
			fmt.Fprintf(&b, "  %s  %s (%s views)\n",
				v.PublishedAt.Format("2006-01-02"), v.Title, formatCount(v.Views))
		}
	}

	return b.String()
}

// formatCount renders 1532000 as "1.5M" and so on.
func formatCount(n uint64) string {
	switch {
	case n >= 1_000_000_000:
		return trimZero(fmt.Sprintf("%.1fB", float64(n)/1e9))
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1e6))
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1fK", float64(n)/1e3))
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string {
	return strings.Replace(s, ".0", "", 1)
}
