package extraction

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/autohub/automation-hub/internal/common"
)

// rectPadding absorbs minor rendering drift between the document the
// template was authored on and the document being extracted.
const rectPadding = 2.0

// FieldRegion is one named rectangle of a template, in reference space.
type FieldRegion struct {
	Name string
	Rect Rect
}

// TemplateSpec is the extraction engine's view of a stored template.
type TemplateSpec struct {
	Name       string
	BaseWidth  float64
	BaseHeight float64
	Fields     []FieldRegion
}

// Row is one extracted field value. Rows come back in field definition
// order.
type Row struct {
	Field string
	Value string
}

// Engine maps template field rectangles onto a target document and reads
// the text inside them. It performs no I/O of its own and never mutates
// the document.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Extract returns one row per template field, in definition order. The
// target's first page dimensions drive the anisotropic scale correction;
// a template with degenerate reference dimensions is rejected.
func (e *Engine) Extract(tpl TemplateSpec, doc Document) ([]Row, error) {
	if tpl.BaseWidth <= 0 || tpl.BaseHeight <= 0 {
		return nil, fmt.Errorf("%w: template %q has reference dimensions %.2fx%.2f",
			common.ErrInvalidTemplate, tpl.Name, tpl.BaseWidth, tpl.BaseHeight)
	}

	pageW, pageH, err := doc.PageSize(1)
	if err != nil {
		return nil, err
	}

	sx := pageW / tpl.BaseWidth
	sy := pageH / tpl.BaseHeight
	e.logger.Debug("extraction scale",
		"template", tpl.Name,
		"base_w", tpl.BaseWidth, "base_h", tpl.BaseHeight,
		"page_w", pageW, "page_h", pageH,
		"sx", sx, "sy", sy,
	)

	rows := make([]Row, 0, len(tpl.Fields))
	for _, f := range tpl.Fields {
		rect := scaleRect(f.Rect, sx, sy).Pad(rectPadding)

		text, err := doc.TextInRect(1, rect)
		if err != nil {
			return nil, common.WrapError(err, fmt.Sprintf("read field %q", f.Name))
		}
		text = strings.TrimSpace(text)
		if text == "" {
			// The looser text-box mode catches runs that straddle the
			// clip boundary.
			text, err = doc.TextBoxInRect(1, rect)
			if err != nil {
				return nil, common.WrapError(err, fmt.Sprintf("read field %q", f.Name))
			}
			text = strings.TrimSpace(text)
		}

		rows = append(rows, Row{Field: f.Name, Value: stripLabel(f.Name, text)})
	}
	return rows, nil
}

// stripLabel removes the field's own name from the front of the raw
// text, so "Address: 123 Main St" extracted for field "Address" yields
// just the value. The match is anchored at the start; a label appearing
// mid-sentence is left alone, as is text that would become empty.
func stripLabel(name, text string) string {
	if name == "" || text == "" {
		return text
	}
	re, err := regexp.Compile(`(?i)^` + regexp.QuoteMeta(name) + `[:\-\s]*`)
	if err != nil {
		return text
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	cleaned := strings.TrimSpace(text[loc[1]:])
	if cleaned == "" {
		return text
	}
	return cleaned
}
