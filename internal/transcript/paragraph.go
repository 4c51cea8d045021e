package transcript

import "strings"

// SegmentParagraphs groups segments into paragraphs, starting a new one whenever
// the silence since the previous segment's end exceeds gapThreshold seconds.
// A gap exactly equal to the threshold stays in the same paragraph.
//
// Segments are taken in the given order. An inverted segment (End < Start) moves
// the gap cursor backwards for the segment after it; that is accepted as-is.
func SegmentParagraphs(segments []Segment, gapThreshold float64) []Paragraph {
	var (
		paragraphs []Paragraph
		current    Paragraph
		lastEnd    float64
	)

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		if len(current) > 0 && seg.Start-lastEnd > gapThreshold {
			paragraphs = append(paragraphs, current)
			current = nil
		}

		current = append(current, text)
		lastEnd = seg.End
	}

	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}

	return paragraphs
}
