// Package video talks to yt-dlp: it validates YouTube URLs, reads video
// metadata and downloads the audio track to be transcribed.
package video

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// ErrNotYouTubeURL is returned for URLs that do not point at a YouTube video.
var ErrNotYouTubeURL = errors.New("not a YouTube video URL")

var youTubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=`),
	regexp.MustCompile(`youtu\.be/`),
	regexp.MustCompile(`youtube\.com/embed/`),
	regexp.MustCompile(`youtube\.com/v/`),
}

// IsYouTubeURL reports whether url looks like a YouTube video link.
func IsYouTubeURL(url string) bool {
	for _, re := range youTubePatterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// info is the subset of yt-dlp's --dump-json output we read.
type info struct {
	Title      *string  `json:"title"`
	Duration   *float64 `json:"duration"`
	WebpageURL string   `json:"webpage_url"`
}

// ParseInfo decodes yt-dlp JSON. Missing title or duration fall back to defaults.
// sourceURL wins over the URL yt-dlp reports.
func ParseInfo(raw []byte, sourceURL string) (transcript.Metadata, error) {
	var in info
	if err := json.Unmarshal(raw, &in); err != nil {
		return transcript.Metadata{}, fmt.Errorf("decode video info: %w", err)
	}

	meta := transcript.Metadata{SourceURL: sourceURL}
	if in.Title != nil {
		meta.Title = *in.Title
	}
	if in.Duration != nil {
		meta.Duration = *in.Duration
	}
	if meta.SourceURL == "" {
		meta.SourceURL = in.WebpageURL
	}
	return meta.WithDefaults(), nil
}

// ReadInfoFile parses a yt-dlp .info.json sidecar file.
func ReadInfoFile(path, sourceURL string) (transcript.Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return transcript.Metadata{}, fmt.Errorf("read info file: %w", err)
	}
	return ParseInfo(data, sourceURL)
}
