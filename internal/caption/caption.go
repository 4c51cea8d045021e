// Package caption parses SubRip (SRT) caption text into timed transcript segments.
//
// Malformed blocks are skipped rather than reported: a caption file with a few
// broken entries still yields every segment that could be read.
package caption

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

const timingSeparator = " --> "

// ErrInvalidTimestamp is returned for anything that is not HH:MM:SS,mmm.
var ErrInvalidTimestamp = errors.New("invalid caption timestamp")

// Parse splits content into blank-line separated blocks and returns one segment
// per well-formed block, in input order.
func Parse(content string) []transcript.Segment {
	content = normalizeNewlines(content)

	var segments []transcript.Segment
	for _, block := range strings.Split(strings.TrimSpace(content), "\n\n") {
		if seg, ok := parseBlock(block); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

// ParseReader reads all of r and parses it. Only read failures are errors.
func ParseReader(r io.Reader) ([]transcript.Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read captions: %w", err)
	}
	return Parse(string(data)), nil
}

// parseBlock expects an index line, a timing line and one or more text lines.
func parseBlock(block string) (transcript.Segment, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 3 {
		return transcript.Segment{}, false
	}

	sides := strings.Split(lines[1], timingSeparator)
	if len(sides) != 2 {
		return transcript.Segment{}, false
	}

	start, err := ParseTimestamp(strings.TrimSpace(sides[0]))
	if err != nil {
		return transcript.Segment{}, false
	}
	end, err := ParseTimestamp(strings.TrimSpace(sides[1]))
	if err != nil {
		return transcript.Segment{}, false
	}

	text := strings.TrimSpace(strings.Join(lines[2:], " "))
	if text == "" {
		return transcript.Segment{}, false
	}

	return transcript.Segment{Start: start, End: end, Text: text}, true
}

// ParseTimestamp converts HH:MM:SS,mmm to seconds.
func ParseTimestamp(ts string) (float64, error) {
	clock, millis, ok := strings.Cut(ts, ",")
	if !ok || strings.Contains(millis, ",") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, ts)
	}

	fields := strings.Split(clock, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, ts)
	}

	var parts [4]int
	for i, f := range append(fields, millis) {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, ts)
		}
		parts[i] = n
	}

	h, m, s, ms := parts[0], parts[1], parts[2], parts[3]
	return float64(h*3600+m*60+s) + float64(ms)/1000, nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
