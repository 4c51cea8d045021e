package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNoAudio means yt-dlp exited cleanly but left no audio file behind.
var ErrNoAudio = errors.New("no audio file produced")

// downloadAudio fetches the audio track into workDir and returns its real path;
// yt-dlp may rename the file it was asked to write.
func (p *implProcessor) downloadAudio(ctx context.Context, url, workDir string) (string, error) {
	ext := "." + p.cfg.YtDlp.AudioFormat
	requested := filepath.Join(workDir, "audio"+ext)

	if err := p.video.DownloadAudio(ctx, url, requested); err != nil {
		return "", err
	}

	audioPath, err := findFile(workDir, ext)
	if err != nil {
		return "", err
	}
	if audioPath == "" {
		return "", fmt.Errorf("%w in %s", ErrNoAudio, workDir)
	}
	return audioPath, nil
}
