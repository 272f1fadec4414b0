package extraction

import (
	"sort"
	"strings"
)

// TextSpan is one positioned run of text on a page, top-left origin.
type TextSpan struct {
	Text string
	Rect Rect
}

// lineGroupTolerance is the vertical distance within which two spans are
// considered part of the same text line.
const lineGroupTolerance = 3.0

// wordGapFraction of the span height is the horizontal gap beyond which
// two spans on a line are separate words. The PDF reader reports runs
// per glyph, so word boundaries have to be inferred from spacing.
const wordGapFraction = 0.25

// textWithin assembles the plain text of the spans selected by clip.
// strict keeps only spans fully contained in the clip rectangle; the
// fallback mode keeps any span that overlaps it. Spans are grouped into
// lines top to bottom, left to right.
func textWithin(spans []TextSpan, clip Rect, strict bool) string {
	var hits []TextSpan
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if strict {
			if clip.Contains(s.Rect) {
				hits = append(hits, s)
			}
		} else if clip.Intersects(s.Rect) {
			hits = append(hits, s)
		}
	}
	if len(hits) == 0 {
		return ""
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if diff := hits[i].Rect.Y - hits[j].Rect.Y; diff < -lineGroupTolerance || diff > lineGroupTolerance {
			return hits[i].Rect.Y < hits[j].Rect.Y
		}
		return hits[i].Rect.X < hits[j].Rect.X
	})

	var b strings.Builder
	lineY := hits[0].Rect.Y
	prevEnd := 0.0
	for i, s := range hits {
		if i > 0 {
			if s.Rect.Y-lineY > lineGroupTolerance {
				b.WriteByte('\n')
				lineY = s.Rect.Y
			} else {
				gap := s.Rect.X - prevEnd
				minGap := wordGapFraction * s.Rect.Height
				if minGap <= 0 {
					minGap = 1
				}
				if gap > minGap {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteString(s.Text)
		prevEnd = s.Rect.X + s.Rect.Width
	}
	return b.String()
}
