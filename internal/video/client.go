package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

// Client wraps the yt-dlp binary.
type Client struct {
	cfg      config.YtDlpConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewClient creates a yt-dlp client.
func NewClient(cfg config.YtDlpConfig, exec executor.Executor, log logger.Logger) *Client {
	return &Client{cfg: cfg, executor: exec, logger: log}
}

// FetchInfo reads the video's metadata without downloading anything.
func (c *Client) FetchInfo(ctx context.Context, url string) (transcript.Metadata, error) {
	c.logger.Info(ctx, "Fetching video info: %s", url)

	args := append(c.baseArgs(), "--dump-json", "--no-download", url)
	out, err := c.executor.Execute(ctx, c.cfg.BinaryPath, args...)
	if err != nil {
		return transcript.Metadata{}, fmt.Errorf("yt-dlp dump json: %w", err)
	}

	meta, err := ParseInfo([]byte(lastJSONLine(out)), url)
	if err != nil {
		return transcript.Metadata{}, err
	}

	c.logger.Debug(ctx, "Video info: title=%q duration=%s", meta.Title, transcript.FormatDuration(meta.Duration))
	return meta, nil
}

// DownloadAudio extracts the best-quality audio track to destPath.
// yt-dlp may rewrite the extension, so callers should look for the produced file.
func (c *Client) DownloadAudio(ctx context.Context, url, destPath string) error {
	c.logger.Info(ctx, "Downloading audio: %s", url)

	args := append(c.baseArgs(),
		"-x",
		"--audio-format", c.cfg.AudioFormat,
		"--audio-quality", c.cfg.AudioQuality,
		"-o", destPath,
		"--no-warnings",
		url,
	)

	if _, err := c.executor.Execute(ctx, c.cfg.BinaryPath, args...); err != nil {
		if c.cfg.CookiesFromBrowser == "" {
			return fmt.Errorf("yt-dlp download audio (try setting ytdlp.cookies_from_browser): %w", err)
		}
		return fmt.Errorf("yt-dlp download audio: %w", err)
	}

	c.logger.Info(ctx, "Audio downloaded: %s", destPath)
	return nil
}

func (c *Client) baseArgs() []string {
	if c.cfg.CookiesFromBrowser == "" {
		return nil
	}
	return []string{"--cookies-from-browser", c.cfg.CookiesFromBrowser}
}

// lastJSONLine drops warning lines yt-dlp may print around the JSON document.
func lastJSONLine(out string) string {
	var line string
	for _, l := range strings.Split(out, "\n") {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "{") {
			line = l
		}
	}
	if line == "" {
		return strings.TrimSpace(out)
	}
	return line
}
