package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ndhoang91/tubedigest/internal/captions"
	"github.com/ndhoang91/tubedigest/internal/config"
	"github.com/ndhoang91/tubedigest/internal/digest"
	"github.com/ndhoang91/tubedigest/internal/logger"
	"github.com/ndhoang91/tubedigest/internal/processor"
	"github.com/ndhoang91/tubedigest/internal/render"
	"github.com/ndhoang91/tubedigest/internal/stats"
	"github.com/ndhoang91/tubedigest/internal/watcher"
	"github.com/ndhoang91/tubedigest/pkg/executor"
)

var (
	configFile = flag.String("f", "config.yaml", "the config file")
	videoURL   = flag.String("url", "", "digest the captions of a YouTube video")
	filePath   = flag.String("file", "", "digest a local transcript file (use - for stdin)")
	channel    = flag.String("channel", "", "print a statistics report for a channel ID or @handle")
	watchMode  = flag.Bool("watch", false, "watch the input folder for transcript files")
)

func main() {
	flag.Parse()

	// Optional .env for YOUTUBE_API_KEY
	_ = godotenv.Load()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithFile(cfg.Logging.Level, cfg.Logging.File)
	ctx := context.Background()

	modes := 0
	for _, set := range []bool{*videoURL != "", *filePath != "", *channel != "", *watchMode} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "Exactly one of -url, -file, -channel or -watch is required")
		flag.Usage()
		os.Exit(2)
	}

	switch {
	case *videoURL != "":
		err = runURL(ctx, cfg, log, *videoURL)
	case *filePath != "":
		err = runFile(ctx, cfg, log, *filePath)
	case *channel != "":
		err = runStats(ctx, cfg, log, *channel)
	default:
		err = runWatch(ctx, cfg, log)
	}

	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file; a missing file just means
// defaults, so -url and -file work without any setup.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &config.Config{}
		if vErr := cfg.Validate(); vErr != nil {
			return nil, vErr
		}
		return cfg, nil
	}
	return nil, err
}

func newDigester(cfg *config.Config) digest.Digester {
	return digest.New(digest.Options{
		MaxInputBytes:  cfg.Digest.MaxInputMB << 20,
		ExtraStopWords: cfg.Digest.ExtraStopWords,
	})
}

func runURL(ctx context.Context, cfg *config.Config, log logger.Logger, rawURL string) error {
	fetcher := captions.New(
		executor.New(),
		log,
		cfg.YouTube.Language,
		cfg.YouTube.YtdlpPath,
		time.Duration(cfg.YouTube.TimeoutSeconds)*time.Second,
	)

	transcript, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}

	title := transcript.Title
	if title == "" {
		title = transcript.VideoID
	}

	result, err := newDigester(cfg).Digest(transcript.Text)
	if err != nil {
		return err
	}

	render.WriteConsole(os.Stdout, title, result)
	return writeDigestFiles(ctx, cfg, log, transcript.VideoID, result)
}

func runFile(ctx context.Context, cfg *config.Config, log logger.Logger, path string) error {
	var (
		data []byte
		err  error
		name = "transcript"
	)

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".vtt":
		text = captions.StripSubtitleMarkup(text)
	}

	result, err := newDigester(cfg).Digest(text)
	if err != nil {
		return err
	}

	render.WriteConsole(os.Stdout, name, result)
	return nil
}

func runStats(ctx context.Context, cfg *config.Config, log logger.Logger, channel string) error {
	reporter := stats.New(
		cfg.YouTube.APIKey,
		log,
		time.Duration(cfg.YouTube.TimeoutSeconds)*time.Second,
	)

	report, err := reporter.Report(ctx, channel)
	if err != nil {
		return err
	}

	fmt.Print(report.FormatText())
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Digest Pipeline")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	proc := processor.New(cfg, newDigester(cfg), log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s (%s)", cfg.Paths.Output, cfg.Output.Format)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
	return nil
}

// writeDigestFiles persists the digest next to the watch-mode output.
func writeDigestFiles(ctx context.Context, cfg *config.Config, log logger.Logger, name string, result *digest.Result) error {
	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	format := cfg.Output.Format
	if format == "markdown" || format == "both" {
		mdPath := filepath.Join(cfg.Paths.Output, name+".md")
		if err := os.WriteFile(mdPath, []byte(render.Markdown(name, result)), 0644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		log.Info(ctx, "Wrote %s", mdPath)
	}
	if format == "docx" || format == "both" {
		docxPath := filepath.Join(cfg.Paths.Output, name+".docx")
		if err := render.WriteDocx(name, result, docxPath); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		log.Info(ctx, "Wrote %s", docxPath)
	}
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
