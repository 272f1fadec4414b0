package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/autohub/automation-hub/internal/extraction"
)

// Service is a tiny façade over excelize that produces XLSX bytes for
// extraction results.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// RowsXLSX returns an XLSX workbook (as bytes) with one row per
// extracted field, in extraction order.
func (s *Service) RowsXLSX(templateName string, rows []extraction.Row) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Extraction"
	// Rename the default sheet so the workbook holds exactly one.
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	headers := []string{"Field", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Field)
		write(2, r.Value)
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // field name
	_ = f.SetColWidth(sheet, "B", "B", 60) // value

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"template", templateName,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
