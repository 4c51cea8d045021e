package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/caption"
	"github.com/nguyentantai21042004/transcript-flow/internal/document"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/output"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
	"github.com/nguyentantai21042004/transcript-flow/internal/video"
)

// Process orchestrates the entire transcription pipeline
func (p *implProcessor) Process(ctx context.Context, url string, opts Options) (string, error) {
	startTime := time.Now()
	if logger.RunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, logger.NewRunID())
	}
	opts = p.withDefaults(opts)

	if !video.IsYouTubeURL(url) {
		return "", fmt.Errorf("%w: %s", video.ErrNotYouTubeURL, url)
	}

	p.logger.Info(ctx, "Starting transcription: %s", url)

	// Step 1: Video metadata
	meta, err := p.video.FetchInfo(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch video info: %w", err)
	}

	// Step 2: Pick the output path before downloading anything
	target := opts.OutputPath
	if target == "" {
		target = filepath.Join(opts.OutputDir, output.Filename(meta.Title, opts.Kebab, p.cfg.Output.MaxNameLength, opts.Format))
	}
	target, err = output.Resolve(target, opts.OnConflict)
	if err != nil {
		return "", err
	}

	// Step 3: Download audio into a scratch directory
	workDir, err := p.createWorkDir()
	if err != nil {
		return "", err
	}
	defer p.cleanupWorkDir(ctx, workDir)

	audioPath, err := p.downloadAudio(ctx, url, workDir)
	if err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	// Step 4: Transcribe to captions
	captions, err := p.transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	// Step 5: Render and save
	segments := caption.Parse(captions)
	p.logger.Debug(ctx, "Parsed %d caption segments", len(segments))

	doc := p.renderer.Render(meta, transcript.Result{Segments: segments}, document.Options{
		IncludeTimestamps: opts.Timestamps,
		GapThreshold:      p.cfg.Render.Gap(),
	})

	written, err := p.writer.Write(ctx, doc, target, opts.Format, opts.OnConflict)
	if err != nil {
		return "", fmt.Errorf("save transcript: %w", err)
	}

	if opts.Copy {
		if err := output.CopyToClipboard(doc); err != nil {
			p.logger.Warn(ctx, "Failed to copy transcript to clipboard: %v", err)
		}
	}

	p.logger.Info(ctx, "Transcription completed in %s: %s", time.Since(startTime).Round(time.Millisecond), written)
	return written, nil
}

func (p *implProcessor) withDefaults(opts Options) Options {
	if opts.Format == "" {
		opts.Format = p.cfg.Output.Format
	}
	if opts.OnConflict == "" {
		opts.OnConflict = p.cfg.Output.OnConflict
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return opts
}
