package captions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	watchURL             = "https://www.youtube.com/watch?v="
	playerResponseMarker = "ytInitialPlayerResponse"

	// A desktop UA keeps YouTube serving the standard watch page with
	// the inline player response.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

type playerResponse struct {
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	VideoDetails struct {
		Title  string `json:"title"`
		Author string `json:"author"`
	} `json:"videoDetails"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	// Kind is "asr" for auto-generated tracks, empty for manual ones.
	Kind string `json:"kind"`
}

func (pr *playerResponse) captionTracks() []captionTrack {
	return pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
}

// fetchPlayerResponse downloads the watch page and extracts the
// ytInitialPlayerResponse JSON embedded in one of its script tags.
func (f *implFetcher) fetchPlayerResponse(ctx context.Context, videoID string) (*playerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL+videoID, nil)
	if err != nil {
		return nil, fmt.Errorf("build watch page request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", f.language+",en;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}

	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if idx := strings.Index(text, playerResponseMarker); idx >= 0 {
			script = text[idx:]
			return false
		}
		return true
	})
	if script == "" {
		return nil, fmt.Errorf("player response script not found on watch page")
	}

	return parsePlayerResponse(script)
}

// parsePlayerResponse decodes the first complete JSON object after
// the marker. json.Decoder stops at the end of one value, so the
// trailing javascript on the line does not matter.
func parsePlayerResponse(script string) (*playerResponse, error) {
	brace := strings.Index(script, "{")
	if brace < 0 {
		return nil, fmt.Errorf("player response JSON not found")
	}

	var pr playerResponse
	dec := json.NewDecoder(strings.NewReader(script[brace:]))
	if err := dec.Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &pr, nil
}

// pickTrack prefers a manual track in the wanted language, then an
// auto-generated one, then any manual track, then whatever is first.
func pickTrack(tracks []captionTrack, language string) *captionTrack {
	if len(tracks) == 0 {
		return nil
	}

	var langASR, anyManual *captionTrack
	for i := range tracks {
		t := &tracks[i]
		inLang := strings.HasPrefix(t.LanguageCode, language)
		switch {
		case inLang && t.Kind != "asr":
			return t
		case inLang && langASR == nil:
			langASR = t
		case t.Kind != "asr" && anyManual == nil:
			anyManual = t
		}
	}

	if langASR != nil {
		return langASR
	}
	if anyManual != nil {
		return anyManual
	}
	return &tracks[0]
}
