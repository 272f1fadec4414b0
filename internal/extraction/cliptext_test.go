package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// span builds a glyph-sized test span the way the PDF reader reports
// them: one run per glyph, width roughly one character.
func span(text string, x, y float64) TextSpan {
	return TextSpan{Text: text, Rect: Rect{X: x, Y: y, Width: 6 * float64(len(text)), Height: 12}}
}

func TestTextWithinStrictContainment(t *testing.T) {
	spans := []TextSpan{
		span("inside", 10, 10),
		span("outside", 200, 200),
	}
	clip := Rect{X: 0, Y: 0, Width: 100, Height: 40}

	assert.Equal(t, "inside", textWithin(spans, clip, true))
}

func TestTextWithinStrictExcludesStraddlers(t *testing.T) {
	// The span overlaps the clip but pokes out of its right edge.
	spans := []TextSpan{span("straddle", 90, 10)}
	clip := Rect{X: 0, Y: 0, Width: 100, Height: 40}

	assert.Equal(t, "", textWithin(spans, clip, true))
	assert.Equal(t, "straddle", textWithin(spans, clip, false),
		"fallback mode keeps overlapping spans")
}

func TestTextWithinJoinsGlyphsWithoutSpaces(t *testing.T) {
	// Adjacent glyphs of one word: no artificial spaces between them.
	spans := []TextSpan{
		span("H", 10, 10),
		span("i", 16, 10),
	}
	clip := Rect{X: 0, Y: 0, Width: 200, Height: 40}

	assert.Equal(t, "Hi", textWithin(spans, clip, true))
}

func TestTextWithinInfersWordBoundaries(t *testing.T) {
	// A gap wider than a quarter of the glyph height separates words.
	spans := []TextSpan{
		span("Hi", 10, 10),
		span("there", 30, 10),
	}
	clip := Rect{X: 0, Y: 0, Width: 200, Height: 40}

	assert.Equal(t, "Hi there", textWithin(spans, clip, true))
}

func TestTextWithinOrdersLinesTopToBottom(t *testing.T) {
	spans := []TextSpan{
		span("second", 10, 40),
		span("first", 10, 10),
	}
	clip := Rect{X: 0, Y: 0, Width: 200, Height: 100}

	assert.Equal(t, "first\nsecond", textWithin(spans, clip, true))
}

func TestTextWithinGroupsJitteredBaselines(t *testing.T) {
	// Spans within the line tolerance stay on one line, ordered by X.
	spans := []TextSpan{
		span("world", 60, 11.5),
		span("hello", 10, 10),
	}
	clip := Rect{X: 0, Y: 0, Width: 200, Height: 40}

	assert.Equal(t, "hello world", textWithin(spans, clip, true))
}

func TestTextWithinEmpty(t *testing.T) {
	clip := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	assert.Equal(t, "", textWithin(nil, clip, true))
	assert.Equal(t, "", textWithin([]TextSpan{{Text: "", Rect: Rect{X: 1, Y: 1, Width: 1, Height: 1}}}, clip, true))
}
