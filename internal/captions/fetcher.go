package captions

import (
	"context"
	"fmt"
	"strings"
)

// Fetch resolves the video ID, scrapes the watch page for a caption
// track and downloads it. When the page exposes no track and yt-dlp
// is configured, falls back to yt-dlp's subtitle dump.
func (f *implFetcher) Fetch(ctx context.Context, rawURL string) (*Transcript, error) {
	videoID, err := ParseVideoID(rawURL)
	if err != nil {
		return nil, err
	}

	f.logger.Info(ctx, "Fetching captions for video: %s", videoID)

	var title string
	pr, prErr := f.fetchPlayerResponse(ctx, videoID)
	if prErr == nil {
		title = pr.VideoDetails.Title

		if track := pickTrack(pr.captionTracks(), f.language); track != nil {
			f.logger.Debug(ctx, "Caption track: lang=%s kind=%s", track.LanguageCode, track.Kind)

			text, err := f.fetchTimedText(ctx, track.BaseURL)
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(text) != "" {
				return &Transcript{VideoID: videoID, Title: title, Text: text}, nil
			}
		}
		f.logger.Warn(ctx, "Watch page has no usable caption track for %s", videoID)
	} else {
		f.logger.Warn(ctx, "Watch page fetch failed for %s: %v", videoID, prErr)
	}

	if f.ytdlpPath != "" {
		text, err := f.fetchWithYtdlp(ctx, videoID)
		if err != nil {
			f.logger.Warn(ctx, "yt-dlp fallback failed for %s: %v", videoID, err)
		} else if strings.TrimSpace(text) != "" {
			return &Transcript{VideoID: videoID, Title: title, Text: text}, nil
		}
	}

	if prErr != nil {
		return nil, prErr
	}
	return nil, fmt.Errorf("%w: video %s", ErrNoCaptions, videoID)
}
