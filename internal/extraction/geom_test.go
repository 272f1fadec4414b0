package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectPad(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	p := r.Pad(2)

	assert.Equal(t, Rect{X: 8, Y: 18, Width: 104, Height: 54}, p)
	// Original is untouched.
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 100, Height: 50}, r)
}

func TestRectContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	assert.True(t, outer.Contains(Rect{X: 10, Y: 10, Width: 20, Height: 20}))
	assert.True(t, outer.Contains(outer), "a rect contains itself")
	assert.False(t, outer.Contains(Rect{X: 90, Y: 90, Width: 20, Height: 20}))
	assert.False(t, outer.Contains(Rect{X: -1, Y: 0, Width: 10, Height: 10}))
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 50, Height: 50}

	assert.True(t, a.Intersects(Rect{X: 40, Y: 40, Width: 50, Height: 50}))
	assert.False(t, a.Intersects(Rect{X: 60, Y: 0, Width: 10, Height: 10}))
	// Rects that only touch at an edge do not overlap.
	assert.False(t, a.Intersects(Rect{X: 50, Y: 0, Width: 10, Height: 50}))
}

func TestScaleRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.Equal(t, r, scaleRect(r, 1, 1), "identity scale keeps the rect")

	got := scaleRect(r, 2, 0.5)
	assert.InDelta(t, 20.0, got.X, 1e-9)
	assert.InDelta(t, 10.0, got.Y, 1e-9)
	assert.InDelta(t, 60.0, got.Width, 1e-9)
	assert.InDelta(t, 20.0, got.Height, 1e-9)
}

func TestDescaleZoom(t *testing.T) {
	r := Rect{X: 300, Y: 150, Width: 90, Height: 30}

	got := DescaleZoom(r, 1.5)
	assert.InDelta(t, 200.0, got.X, 1e-9)
	assert.InDelta(t, 100.0, got.Y, 1e-9)
	assert.InDelta(t, 60.0, got.Width, 1e-9)
	assert.InDelta(t, 20.0, got.Height, 1e-9)

	assert.Equal(t, r, DescaleZoom(r, 0), "zero zoom is a no-op, not a divide")
}

func TestDescaleZoomRoundTrip(t *testing.T) {
	r := Rect{X: 12.5, Y: 33.25, Width: 81, Height: 17.75}
	zoomed := scaleRect(r, 2, 2)
	back := DescaleZoom(zoomed, 2)

	assert.InDelta(t, r.X, back.X, 1e-9)
	assert.InDelta(t, r.Y, back.Y, 1e-9)
	assert.InDelta(t, r.Width, back.Width, 1e-9)
	assert.InDelta(t, r.Height, back.Height, 1e-9)
}
