package extraction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohub/automation-hub/internal/common"
)

// fakeDocument serves canned text per rect and records the rects it was
// asked about.
type fakeDocument struct {
	pageW, pageH float64
	text         map[string]string   // field name -> strict text
	boxText      map[string]string   // field name -> fallback text
	byField      func(r Rect) string // resolves a query rect to a field name
	strictRects  []Rect
}

func (d *fakeDocument) PageCount() int { return 1 }

func (d *fakeDocument) PageSize(page int) (float64, float64, error) {
	return d.pageW, d.pageH, nil
}

func (d *fakeDocument) TextInRect(page int, r Rect) (string, error) {
	d.strictRects = append(d.strictRects, r)
	return d.text[d.byField(r)], nil
}

func (d *fakeDocument) TextBoxInRect(page int, r Rect) (string, error) {
	return d.boxText[d.byField(r)], nil
}

func (d *fakeDocument) Close() error { return nil }

func newFakeDoc(w, h float64, fields []FieldRegion) *fakeDocument {
	d := &fakeDocument{
		pageW:   w,
		pageH:   h,
		text:    map[string]string{},
		boxText: map[string]string{},
	}
	d.byField = func(r Rect) string {
		// Query rects are padded; match on the center point instead.
		cx, cy := r.X+r.Width/2, r.Y+r.Height/2
		for _, f := range fields {
			sr := scaleRect(f.Rect, w/612, h/792)
			if cx >= sr.X-rectPadding && cx <= sr.X+sr.Width+rectPadding &&
				cy >= sr.Y-rectPadding && cy <= sr.Y+sr.Height+rectPadding {
				return f.Name
			}
		}
		return ""
	}
	return d
}

func letterTemplate(fields ...FieldRegion) TemplateSpec {
	return TemplateSpec{Name: "invoice", BaseWidth: 612, BaseHeight: 792, Fields: fields}
}

func TestExtractRowsInDefinitionOrder(t *testing.T) {
	fields := []FieldRegion{
		{Name: "total", Rect: Rect{X: 400, Y: 700, Width: 100, Height: 20}},
		{Name: "date", Rect: Rect{X: 50, Y: 50, Width: 100, Height: 20}},
		{Name: "vendor", Rect: Rect{X: 50, Y: 100, Width: 200, Height: 20}},
	}
	doc := newFakeDoc(612, 792, fields)
	doc.text["total"] = "19.99"
	doc.text["date"] = "2026-08-30"
	doc.text["vendor"] = "Acme Corp"

	rows, err := NewEngine(nil).Extract(letterTemplate(fields...), doc)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Definition order, not reading order.
	assert.Equal(t, []Row{
		{Field: "total", Value: "19.99"},
		{Field: "date", Value: "2026-08-30"},
		{Field: "vendor", Value: "Acme Corp"},
	}, rows)
}

func TestExtractQueriesPaddedRectAtUnitScale(t *testing.T) {
	field := FieldRegion{Name: "total", Rect: Rect{X: 400, Y: 700, Width: 100, Height: 20}}
	doc := newFakeDoc(612, 792, []FieldRegion{field})
	doc.text["total"] = "19.99"

	_, err := NewEngine(nil).Extract(letterTemplate(field), doc)
	require.NoError(t, err)
	require.Len(t, doc.strictRects, 1)

	// Same page size as the reference: the query rect is the stored
	// rect plus padding, nothing else.
	assert.Equal(t, Rect{X: 398, Y: 698, Width: 104, Height: 24}, doc.strictRects[0])
}

func TestExtractScalesToTargetPage(t *testing.T) {
	field := FieldRegion{Name: "total", Rect: Rect{X: 100, Y: 200, Width: 50, Height: 10}}
	doc := newFakeDoc(1224, 1584, []FieldRegion{field}) // exactly 2x
	doc.byField = func(Rect) string { return "total" }
	doc.text["total"] = "x"

	_, err := NewEngine(nil).Extract(letterTemplate(field), doc)
	require.NoError(t, err)
	require.Len(t, doc.strictRects, 1)

	got := doc.strictRects[0]
	assert.InDelta(t, 198.0, got.X, 1e-9)
	assert.InDelta(t, 398.0, got.Y, 1e-9)
	assert.InDelta(t, 104.0, got.Width, 1e-9)
	assert.InDelta(t, 24.0, got.Height, 1e-9)
}

func TestExtractFallsBackToTextBox(t *testing.T) {
	field := FieldRegion{Name: "notes", Rect: Rect{X: 50, Y: 400, Width: 200, Height: 40}}
	doc := newFakeDoc(612, 792, []FieldRegion{field})
	doc.boxText["notes"] = "from the looser pass"

	rows, err := NewEngine(nil).Extract(letterTemplate(field), doc)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "from the looser pass", rows[0].Value)
}

func TestExtractRejectsDegenerateTemplate(t *testing.T) {
	doc := newFakeDoc(612, 792, nil)

	for _, tpl := range []TemplateSpec{
		{Name: "bad", BaseWidth: 0, BaseHeight: 792},
		{Name: "bad", BaseWidth: 612, BaseHeight: -1},
	} {
		_, err := NewEngine(nil).Extract(tpl, doc)
		assert.ErrorIs(t, err, common.ErrInvalidTemplate)
	}
}

func TestExtractNoFields(t *testing.T) {
	doc := newFakeDoc(612, 792, nil)

	rows, err := NewEngine(nil).Extract(letterTemplate(), doc)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, doc.strictRects)
}

func TestExtractPropagatesReadErrors(t *testing.T) {
	field := FieldRegion{Name: "total", Rect: Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	doc := &failingDocument{}

	_, err := NewEngine(nil).Extract(letterTemplate(field), doc)
	assert.Error(t, err)
}

type failingDocument struct{}

func (failingDocument) PageCount() int                          { return 1 }
func (failingDocument) PageSize(int) (float64, float64, error)  { return 612, 792, nil }
func (failingDocument) TextInRect(int, Rect) (string, error)    { return "", errors.New("torn page") }
func (failingDocument) TextBoxInRect(int, Rect) (string, error) { return "", errors.New("torn page") }
func (failingDocument) Close() error                            { return nil }

func TestStripLabel(t *testing.T) {
	tests := []struct {
		name  string
		field string
		raw   string
		want  string
	}{
		{"colon separator", "Address", "Address: 123 Main St", "123 Main St"},
		{"dash separator", "Total", "Total - 19.99", "19.99"},
		{"case insensitive", "invoice no", "Invoice No 4711", "4711"},
		{"no label present", "Total", "19.99", "19.99"},
		{"label mid-text untouched", "Total", "Grand Total: 19.99", "Grand Total: 19.99"},
		{"only label keeps raw", "Address", "Address:", "Address:"},
		{"value repeats label word", "My Address", "My Address My Address Lane 5", "My Address Lane 5"},
		{"regex metacharacters in name", "Amount (USD)", "Amount (USD): 10", "10"},
		{"empty text", "Total", "", ""},
		{"empty name", "", "whatever", "whatever"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripLabel(tt.field, tt.raw))
		})
	}
}
