package captions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fetchWithYtdlp shells out to yt-dlp for the subtitle file only,
// then strips the VTT markup. Used when the watch page scrape comes
// up empty; auto-generated subtitles are accepted.
func (f *implFetcher) fetchWithYtdlp(ctx context.Context, videoID string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "tubedigest-subs-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", f.language,
		"--sub-format", "vtt",
		"-o", filepath.Join(tmpDir, "%(id)s"),
		watchURL + videoID,
	}

	if _, err := f.exec.Execute(ctx, f.ytdlpPath, args...); err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	subPath, err := findSubtitleFile(tmpDir)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(subPath)
	if err != nil {
		return "", fmt.Errorf("read subtitle file: %w", err)
	}

	return StripSubtitleMarkup(string(content)), nil
}

func findSubtitleFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read subtitle dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".vtt" || ext == ".srt" {
			return filepath.Join(dir, e.Name()), nil
		}
	}

	return "", fmt.Errorf("yt-dlp produced no subtitle file")
}
