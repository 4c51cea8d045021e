package document

import (
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Renderer turns a transcript and its video metadata into a Markdown document.
type Renderer interface {
	Render(meta transcript.Metadata, result transcript.Result, opts Options) string
}

// Clock supplies the date stamped into rendered documents.
type Clock interface {
	Now() time.Time
}

// Options controls how the transcript body is laid out.
type Options struct {
	IncludeTimestamps bool
	GapThreshold      float64
}

// DefaultOptions renders paragraphs split on gaps longer than 1.5 seconds.
func DefaultOptions() Options {
	return Options{GapThreshold: transcript.DefaultGapThreshold}
}
