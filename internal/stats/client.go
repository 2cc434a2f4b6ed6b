package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// The Data API serializes every count as a decimal string.

type channelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount       string `json:"viewCount"`
			SubscriberCount string `json:"subscriberCount"`
			VideoCount      string `json:"videoCount"`
		} `json:"statistics"`
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	Items []struct {
		ContentDetails struct {
			VideoID          string    `json:"videoId"`
			VideoPublishedAt time.Time `json:"videoPublishedAt"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type channelInfo struct {
	id             string
	title          string
	subscribers    uint64
	totalViews     uint64
	videoCount     uint64
	uploadPlaylist string
}

func (r *implReporter) getJSON(ctx context.Context, resource string, params url.Values, out interface{}) error {
	params.Set("key", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiBase+"/"+resource+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

// resolveChannel looks the channel up by ID, or by handle when the
// argument starts with '@'.
func (r *implReporter) resolveChannel(ctx context.Context, channel string) (*channelInfo, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	if strings.HasPrefix(channel, "@") {
		params.Set("forHandle", channel)
	} else {
		params.Set("id", channel)
	}

	var res channelListResponse
	if err := r.getJSON(ctx, "channels", params, &res); err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
	}

	item := res.Items[0]
	return &channelInfo{
		id:             item.ID,
		title:          item.Snippet.Title,
		subscribers:    parseCount(item.Statistics.SubscriberCount),
		totalViews:     parseCount(item.Statistics.ViewCount),
		videoCount:     parseCount(item.Statistics.VideoCount),
		uploadPlaylist: item.ContentDetails.RelatedPlaylists.Uploads,
	}, nil
}

// recentUploads lists the newest entries of the uploads playlist.
func (r *implReporter) recentUploads(ctx context.Context, playlistID string) ([]VideoStats, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(recentUploadCount))

	var res playlistItemsResponse
	if err := r.getJSON(ctx, "playlistItems", params, &res); err != nil {
		return nil, err
	}

	videos := make([]VideoStats, 0, len(res.Items))
	for _, item := range res.Items {
		videos = append(videos, VideoStats{
			VideoID:     item.ContentDetails.VideoID,
			PublishedAt: item.ContentDetails.VideoPublishedAt,
		})
	}
	return videos, nil
}

// fillVideoStats batch-fetches titles and view counts for the videos.
func (r *implReporter) fillVideoStats(ctx context.Context, videos []VideoStats) error {
	if len(videos) == 0 {
		return nil
	}

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.VideoID)
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", strings.Join(ids, ","))

	var res videoListResponse
	if err := r.getJSON(ctx, "videos", params, &res); err != nil {
		return err
	}

	byID := make(map[string]int, len(res.Items))
	for i, item := range res.Items {
		byID[item.ID] = i
	}
	for i := range videos {
		idx, ok := byID[videos[i].VideoID]
		if !ok {
			continue
		}
		videos[i].Title = res.Items[idx].Snippet.Title
		videos[i].Views = parseCount(res.Items[idx].Statistics.ViewCount)
	}
	return nil
}

func parseCount(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
