package captions

import (
	"context"
	"errors"
)

var (
	// ErrInvalidVideoURL means the input could not be parsed into a
	// video ID.
	ErrInvalidVideoURL = errors.New("invalid video URL")

	// ErrNoCaptions means the video exposes no usable caption track.
	ErrNoCaptions = errors.New("no captions available")
)

// Transcript is the plain-text caption content of one video.
type Transcript struct {
	VideoID string
	Title   string
	Text    string
}

// Fetcher acquires the transcript for a video URL or ID.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Transcript, error)
}
