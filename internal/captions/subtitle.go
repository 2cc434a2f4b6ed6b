package captions

import (
	"regexp"
	"strings"
)

var (
	reCueTime  = regexp.MustCompile(`^(\d{2}:)?\d{2}:\d{2}[.,]\d{3}\s+-->`)
	reSrtTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)
	reSeqIndex = regexp.MustCompile(`^\d+$`)
	reCueTag   = regexp.MustCompile(`<[^>]+>`)
)

// StripSubtitleMarkup converts SRT/VTT content to plain text: headers,
// sequence numbers, timestamps and inline tags go away. Rolling
// auto-captions repeat each line as the window scrolls, so duplicate
// lines are dropped on second sight.
func StripSubtitleMarkup(content string) string {
	var kept []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "WEBVTT" {
			continue
		}
		if strings.HasPrefix(trimmed, "NOTE") ||
			strings.HasPrefix(trimmed, "Kind:") ||
			strings.HasPrefix(trimmed, "Language:") ||
			strings.HasPrefix(trimmed, "STYLE") {
			continue
		}
		if reSeqIndex.MatchString(trimmed) || reCueTime.MatchString(trimmed) || reSrtTime.MatchString(trimmed) {
			continue
		}

		trimmed = strings.TrimSpace(reCueTag.ReplaceAllString(trimmed, ""))
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		kept = append(kept, trimmed)
	}

	return strings.Join(kept, "\n")
}
