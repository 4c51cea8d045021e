package document

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

const dateLayout = "2006-01-02"

// Render lays out the heading, metadata block, divider and transcript body.
// The transcript heading is always present, even when there are no segments.
func (r *implRenderer) Render(meta transcript.Metadata, result transcript.Result, opts Options) string {
	meta = meta.WithDefaults()

	lines := []string{
		fmt.Sprintf("# Transcript: %s", meta.Title),
		"",
		fmt.Sprintf("**Source:** %s", meta.SourceURL),
		fmt.Sprintf("**Duration:** %s", transcript.FormatDuration(meta.Duration)),
		fmt.Sprintf("**Transcribed:** %s", r.clock.Now().Format(dateLayout)),
		"",
		"---",
		"",
		"## Transcript",
		"",
	}

	if opts.IncludeTimestamps {
		lines = append(lines, timestampLines(result.Segments)...)
	} else {
		lines = append(lines, paragraphLines(result.Segments, opts.GapThreshold)...)
	}

	return strings.Join(lines, "\n")
}

// timestampLines emits one "[M:SS] text" line per segment, each followed by a blank line.
func timestampLines(segments []transcript.Segment) []string {
	var lines []string
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines, transcript.FormatTimestamp(seg.Start)+" "+text, "")
	}
	return lines
}

func paragraphLines(segments []transcript.Segment, gap float64) []string {
	var lines []string
	for _, p := range transcript.SegmentParagraphs(segments, gap) {
		lines = append(lines, p.Text(), "")
	}
	return lines
}
