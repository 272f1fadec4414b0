package extraction

// Rect is an axis-aligned rectangle in page points with a top-left
// origin. Which coordinate space a Rect lives in (capture zoom,
// template reference, or target page) is determined by the conversion
// that produced it; DescaleZoom and scaleRect are the only crossing
// points between spaces.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Pad expands the rectangle by p units on all sides.
func (r Rect) Pad(p float64) Rect {
	return Rect{
		X:      r.X - p,
		Y:      r.Y - p,
		Width:  r.Width + 2*p,
		Height: r.Height + 2*p,
	}
}

// Contains reports whether the inner rectangle lies fully within r.
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X &&
		inner.Y >= r.Y &&
		inner.X+inner.Width <= r.X+r.Width &&
		inner.Y+inner.Height <= r.Y+r.Height
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// scaleRect maps a rectangle from the template's reference space into
// the target page space using anisotropic scale factors. The corners
// are scaled independently so width and height pick up both factors.
func scaleRect(r Rect, sx, sy float64) Rect {
	x0 := r.X * sx
	y0 := r.Y * sy
	x1 := (r.X + r.Width) * sx
	y1 := (r.Y + r.Height) * sy
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// DescaleZoom converts a rectangle drawn on a zoomed render back into
// the reference page space. Stored template rectangles must always pass
// through here before persisting so the database never holds zoom-space
// coordinates.
func DescaleZoom(r Rect, zoom float64) Rect {
	if zoom == 0 {
		return r
	}
	return Rect{
		X:      r.X / zoom,
		Y:      r.Y / zoom,
		Width:  r.Width / zoom,
		Height: r.Height / zoom,
	}
}
