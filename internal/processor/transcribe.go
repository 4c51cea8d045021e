package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoCaptions means the transcriber finished without writing a caption file.
var ErrNoCaptions = errors.New("no caption file produced")

// transcribe runs parakeet-mlx on the audio file and returns the caption text.
// The caption file is only read after the process has exited.
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (string, error) {
	outDir := filepath.Dir(audioPath)

	p.logger.Info(ctx, "Transcribing with %s: %s", p.cfg.Transcriber.BinaryPath, audioPath)

	// --output-format: caption format to write (srt)
	// --output-dir: where the caption file lands, next to the audio
	args := []string{
		audioPath,
		"--output-format", p.cfg.Transcriber.OutputFormat,
		"--output-dir", outDir,
	}
	args = append(args, p.cfg.Transcriber.ExtraArgs...)

	// Side files the tool drops land in the scratch dir
	if _, err := p.executor.ExecuteInDir(ctx, outDir, p.cfg.Transcriber.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("%s: %w", p.cfg.Transcriber.BinaryPath, err)
	}

	captionPath, err := findFile(outDir, "."+p.cfg.Transcriber.OutputFormat)
	if err != nil {
		return "", err
	}
	if captionPath == "" {
		p.logger.Error(ctx, "No caption output in %s: %v", outDir, listDir(outDir))
		return "", fmt.Errorf("%w in %s", ErrNoCaptions, outDir)
	}

	content, err := os.ReadFile(captionPath)
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}

	p.logger.Info(ctx, "Transcription completed: %s", captionPath)
	return string(content), nil
}
