package extraction

// Document is the read-only capability the extraction engine needs from
// an opened PDF. TextInRect is the primary clipped read; TextBoxInRect
// is the looser fallback mode tried when the clipped read comes back
// empty. Rectangles are top-left-origin page points.
type Document interface {
	PageCount() int
	PageSize(page int) (width, height float64, err error)
	TextInRect(page int, r Rect) (string, error)
	TextBoxInRect(page int, r Rect) (string, error)
	Close() error
}
