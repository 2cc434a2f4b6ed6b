package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ndhoang91/tubedigest/internal/captions"
	"github.com/ndhoang91/tubedigest/internal/digest"
	"github.com/ndhoang91/tubedigest/internal/render"
)

// Process reads a transcript file, digests it and writes the digest
// to the output folder, then archives the original.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))

	p.logger.Info(ctx, "Processing transcript: %s", transcriptPath)

	text, err := p.readTranscript(transcriptPath)
	if err != nil {
		return err
	}

	result, err := p.digester.Digest(text)
	if err != nil {
		return fmt.Errorf("digest %s: %w", name, err)
	}

	if err := p.writeOutputs(ctx, name, result); err != nil {
		return err
	}

	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive original: %v", err)
	}

	p.logger.Info(ctx, "Processed %s in %s (%d words, %d summary sentences)",
		name, time.Since(startTime), result.WordCount, len(result.Summary))

	return nil
}

// readTranscript loads the file; subtitle formats are stripped to
// plain text first.
func (p *implProcessor) readTranscript(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".vtt":
		text = captions.StripSubtitleMarkup(text)
	}
	return text, nil
}

// writeOutputs writes the digest in the configured formats.
func (p *implProcessor) writeOutputs(ctx context.Context, name string, result *digest.Result) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	format := p.cfg.Output.Format

	if format == "markdown" || format == "both" {
		mdPath := filepath.Join(p.cfg.Paths.Output, name+".md")
		if err := os.WriteFile(mdPath, []byte(render.Markdown(name, result)), 0644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		p.logger.Info(ctx, "Wrote %s", mdPath)
	}

	if format == "docx" || format == "both" {
		docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
		if err := render.WriteDocx(name, result, docxPath); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		p.logger.Info(ctx, "Wrote %s", docxPath)
	}

	return nil
}

// moveToArchived moves the processed transcript out of the input
// folder so it is not picked up again.
func (p *implProcessor) moveToArchived(ctx context.Context, transcriptPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(transcriptPath))
	p.logger.Debug(ctx, "Archiving: %s -> %s", transcriptPath, destPath)

	if err := os.Rename(transcriptPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
