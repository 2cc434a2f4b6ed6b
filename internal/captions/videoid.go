package captions

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID extracts the 11-character video ID from watch URLs,
// youtu.be short links, shorts/embed/live paths, or a bare ID.
func ParseVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if videoIDPattern.MatchString(raw) {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoURL, raw)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	var id string

	switch host {
	case "youtu.be":
		id = firstPathSegment(u.Path)
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		switch segments[0] {
		case "watch":
			id = u.Query().Get("v")
		case "shorts", "embed", "live":
			if len(segments) > 1 {
				id = segments[1]
			}
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoURL, raw)
	}
	return id, nil
}

func firstPathSegment(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
