package extraction

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/autohub/automation-hub/internal/common"
)

// defaultTextHeight approximates glyph height when the reader reports no
// font size.
const defaultTextHeight = 12.0

// US Letter, used when the page carries no usable MediaBox.
const (
	fallbackPageWidth  = 612.0
	fallbackPageHeight = 792.0
)

// pdfDocument adapts a PDF file to the Document capability. Positioned
// text comes from ledongthuc/pdf; page dimensions from pdfcpu. The
// reader reports coordinates bottom-up, so spans are flipped into the
// top-left-origin space the engine works in.
type pdfDocument struct {
	file   *os.File
	reader *pdf.Reader
	dims   []pageDim
	spans  map[int][]TextSpan
}

type pageDim struct {
	width  float64
	height float64
}

// OpenDocument opens the PDF at path. An unreadable or corrupt file is
// reported as ErrDocumentOpen.
func OpenDocument(path string) (Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrDocumentOpen, path, err)
	}

	doc := &pdfDocument{
		file:   f,
		reader: reader,
		spans:  make(map[int][]TextSpan),
	}

	dims, err := pdfcpu.PageDimsFile(path)
	if err == nil {
		doc.dims = make([]pageDim, len(dims))
		for i, d := range dims {
			doc.dims[i] = pageDim{width: d.Width, height: d.Height}
		}
	}
	return doc, nil
}

func (d *pdfDocument) PageCount() int {
	return d.reader.NumPage()
}

func (d *pdfDocument) PageSize(page int) (float64, float64, error) {
	if page < 1 || page > d.reader.NumPage() {
		return 0, 0, fmt.Errorf("invalid page number %d (document has %d pages)", page, d.reader.NumPage())
	}
	if page <= len(d.dims) {
		dim := d.dims[page-1]
		if dim.width > 0 && dim.height > 0 {
			return dim.width, dim.height, nil
		}
	}
	return fallbackPageWidth, fallbackPageHeight, nil
}

func (d *pdfDocument) TextInRect(page int, r Rect) (string, error) {
	spans, err := d.pageSpans(page)
	if err != nil {
		return "", err
	}
	return textWithin(spans, r, true), nil
}

func (d *pdfDocument) TextBoxInRect(page int, r Rect) (string, error) {
	spans, err := d.pageSpans(page)
	if err != nil {
		return "", err
	}
	return textWithin(spans, r, false), nil
}

func (d *pdfDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// pageSpans reads the positioned text of a page once and caches the
// top-left-origin conversion.
func (d *pdfDocument) pageSpans(page int) ([]TextSpan, error) {
	if cached, ok := d.spans[page]; ok {
		return cached, nil
	}
	if page < 1 || page > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number %d (document has %d pages)", page, d.reader.NumPage())
	}

	_, pageH, err := d.PageSize(page)
	if err != nil {
		return nil, err
	}

	p := d.reader.Page(page)
	if p.V.IsNull() {
		d.spans[page] = nil
		return nil, nil
	}
	content := p.Content()

	spans := make([]TextSpan, 0, len(content.Text))
	for _, t := range content.Text {
		height := t.FontSize
		if height == 0 {
			height = defaultTextHeight
		}
		// t.Y is the baseline in bottom-up PDF coordinates.
		spans = append(spans, TextSpan{
			Text: t.S,
			Rect: Rect{
				X:      t.X,
				Y:      pageH - t.Y - height,
				Width:  t.W,
				Height: height,
			},
		})
	}
	d.spans[page] = spans
	return spans, nil
}
