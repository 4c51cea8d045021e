package transcript

import "strings"

const (
	// DefaultGapThreshold is the silence (seconds) tolerated inside one paragraph.
	DefaultGapThreshold = 1.5

	// DefaultTitle is used when the video metadata carries no title.
	DefaultTitle = "Untitled Video"
)

// Segment is a single timed unit of transcribed text, offsets in seconds.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Result holds the ordered segments of one transcription run.
type Result struct {
	Segments []Segment
}

// Metadata describes the source video of a transcript.
type Metadata struct {
	Title     string
	Duration  float64
	SourceURL string
}

// WithDefaults fills in the values used when the metadata source omitted them.
func (m Metadata) WithDefaults() Metadata {
	if strings.TrimSpace(m.Title) == "" {
		m.Title = DefaultTitle
	}
	if m.Duration < 0 {
		m.Duration = 0
	}
	return m
}

// Paragraph is a run of consecutive segment texts.
type Paragraph []string

// Text joins the paragraph's segment texts with single spaces.
func (p Paragraph) Text() string {
	return strings.Join(p, " ")
}
