package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/caption"
	"github.com/nguyentantai21042004/transcript-flow/internal/document"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/output"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
	"github.com/nguyentantai21042004/transcript-flow/internal/video"
)

const (
	captionExt  = ".srt"
	infoFileExt = ".info.json"
)

// ConvertAll converts every .srt file in srcDir, in name order. A failing file
// is logged and skipped; the error is only for an unreadable srcDir.
func (c *implConverter) ConvertAll(ctx context.Context, srcDir, destDir string) error {
	if logger.RunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, logger.NewRunID())
	}

	files, err := discoverCaptionFiles(srcDir)
	if err != nil {
		return fmt.Errorf("discover caption files: %w", err)
	}

	if len(files) == 0 {
		c.logger.Info(ctx, "No caption files found in %s", srcDir)
		return nil
	}

	c.logger.Info(ctx, "Found %d caption files to convert", len(files))

	successCount := 0
	failCount := 0

	for i, path := range files {
		c.logger.Info(ctx, "[%d/%d] Converting: %s", i+1, len(files), filepath.Base(path))

		written, err := c.Convert(ctx, path, destDir)
		if err != nil {
			c.logger.Error(ctx, "Failed to convert %s: %v", path, err)
			failCount++
			continue
		}

		c.logger.Info(ctx, "[DONE] %s -> %s", filepath.Base(path), written)
		successCount++
	}

	c.logger.Info(ctx, "Conversion complete: %d success, %d failed", successCount, failCount)
	return nil
}

// Convert renders one caption file into destDir and archives the source.
// Metadata comes from a "<name>.info.json" sidecar when present; otherwise
// the file name is used as the title.
func (c *implConverter) Convert(ctx context.Context, captionPath, destDir string) (string, error) {
	content, err := os.ReadFile(captionPath)
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}

	stem := strings.TrimSuffix(captionPath, filepath.Ext(captionPath))
	meta, err := c.metadata(ctx, stem)
	if err != nil {
		return "", err
	}

	segments := caption.Parse(string(content))
	doc := c.renderer.Render(meta, transcript.Result{Segments: segments}, document.Options{
		IncludeTimestamps: c.cfg.Render.Timestamps,
		GapThreshold:      c.cfg.Render.Gap(),
	})

	target := filepath.Join(destDir, output.Filename(meta.Title, c.cfg.Output.Kebab, c.cfg.Output.MaxNameLength, c.cfg.Output.Format))
	written, err := c.writer.Write(ctx, doc, target, c.cfg.Output.Format, c.cfg.Output.OnConflict)
	if err != nil {
		return "", err
	}

	c.archive(ctx, captionPath, stem+infoFileExt)
	return written, nil
}

func (c *implConverter) metadata(ctx context.Context, stem string) (transcript.Metadata, error) {
	infoPath := stem + infoFileExt
	meta, err := video.ReadInfoFile(infoPath, "")
	if err == nil {
		c.logger.Debug(ctx, "Using metadata from %s", infoPath)
		return meta, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return transcript.Metadata{}, fmt.Errorf("load metadata: %w", err)
	}
	return transcript.Metadata{Title: filepath.Base(stem)}.WithDefaults(), nil
}

// archive moves converted inputs out of the way so they are not picked up again.
func (c *implConverter) archive(ctx context.Context, paths ...string) {
	if c.cfg.Paths.Archived == "" {
		return
	}
	if err := os.MkdirAll(c.cfg.Paths.Archived, 0755); err != nil {
		c.logger.Warn(ctx, "Failed to create archive dir %s: %v", c.cfg.Paths.Archived, err)
		return
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		dest := filepath.Join(c.cfg.Paths.Archived, filepath.Base(p))
		if err := os.Rename(p, dest); err != nil {
			c.logger.Warn(ctx, "Failed to archive %s: %v", p, err)
		}
	}
}

func discoverCaptionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsCaptionFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsCaptionFile reports whether path has a caption (.srt) extension.
func IsCaptionFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == captionExt
}
