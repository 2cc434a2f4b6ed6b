package stats

import (
	"strings"
	"testing"
	"time"
)

func TestClassifyTrend(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		report ChannelReport
		want   Trend
	}{
		{
			name: "rising when recent uploads outperform",
			report: ChannelReport{
				TotalViews: 100_000, VideoCount: 100, // lifetime mean 1000
				RecentVideos: []VideoStats{
					{Views: 2000, PublishedAt: day(1)},
					{Views: 1800, PublishedAt: day(3)},
				},
			},
			want: TrendRising,
		},
		{
			name: "cooling when recent uploads underperform",
			report: ChannelReport{
				TotalViews: 100_000, VideoCount: 100,
				RecentVideos: []VideoStats{
					{Views: 300, PublishedAt: day(1)},
					{Views: 500, PublishedAt: day(3)},
				},
			},
			want: TrendCooling,
		},
		{
			name: "steady inside the bands",
			report: ChannelReport{
				TotalViews: 100_000, VideoCount: 100,
				RecentVideos: []VideoStats{
					{Views: 900, PublishedAt: day(1)},
					{Views: 1100, PublishedAt: day(3)},
				},
			},
			want: TrendSteady,
		},
		{
			name: "unknown without recent uploads",
			report: ChannelReport{
				TotalViews: 100_000, VideoCount: 100,
			},
			want: TrendUnknown,
		},
		{
			name: "unknown without lifetime stats",
			report: ChannelReport{
				RecentVideos: []VideoStats{{Views: 100, PublishedAt: day(1)}},
			},
			want: TrendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTrend(&tt.report); got != tt.want {
				t.Errorf("classifyTrend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUploadCadenceDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		videos []VideoStats
		want   float64
	}{
		{
			name: "every other day",
			videos: []VideoStats{
				{PublishedAt: day(5)},
				{PublishedAt: day(1)},
				{PublishedAt: day(3)},
			},
			want: 2,
		},
		{
			name:   "single upload",
			videos: []VideoStats{{PublishedAt: day(1)}},
			want:   0,
		},
		{
			name: "none",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uploadCadenceDays(tt.videos); got != tt.want {
				t.Errorf("uploadCadenceDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{532, "532"},
		{1_500, "1.5K"},
		{2_000, "2K"},
		{1_532_000, "1.5M"},
		{3_000_000_000, "3B"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatCount(tt.n); got != tt.want {
				t.Errorf("formatCount(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestFormatText(t *testing.T) {
	report := ChannelReport{
		ChannelID:   "UC123",
		Title:       "Some Channel",
		Subscribers: 12_000,
		TotalViews:  3_400_000,
		VideoCount:  120,
		Trend:       TrendSteady,
		CadenceDays: 3.5,
		RecentVideos: []VideoStats{
			{Title: "Latest upload", Views: 4200, PublishedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	text := report.FormatText()
	for _, fragment := range []string{
		"Some Channel (UC123)",
		"12K",
		"3.4M",
		"steady",
		"every 3.5 days",
		"Latest upload",
		"2026-08-01",
	} {
		if !strings.Contains(text, fragment) {
			t.Errorf("FormatText() missing %q in:\n%s", fragment, text)
		}
	}
}
