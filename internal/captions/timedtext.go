package captions

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
)

// timedText mirrors the srv1 caption XML:
//
//	<transcript><text start="1.2" dur="3.4">line</text>...</transcript>
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Lines   []timedTextCue `xml:"text"`
}

type timedTextCue struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

// fetchTimedText downloads a caption track and flattens it into plain
// text, one space between cues.
func (f *implFetcher) fetchTimedText(ctx context.Context, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return "", fmt.Errorf("build timedtext request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read timedtext body: %w", err)
	}

	return decodeTimedText(body)
}

// decodeTimedText parses caption XML into plain text. Cue text is
// HTML-entity encoded (sometimes twice) and may contain newlines.
func decodeTimedText(data []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return "", fmt.Errorf("decode caption XML: %w", err)
	}

	parts := make([]string, 0, len(tt.Lines))
	for _, cue := range tt.Lines {
		text := html.UnescapeString(html.UnescapeString(cue.Text))
		text = strings.Join(strings.Fields(text), " ")
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}
