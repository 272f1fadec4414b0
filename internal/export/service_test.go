package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/autohub/automation-hub/internal/extraction"
)

func TestRowsXLSX(t *testing.T) {
	rows := []extraction.Row{
		{Field: "Vendor", Value: "Acme Corp"},
		{Field: "Date", Value: "2026-08-30"},
		{Field: "Total", Value: "19.99"},
	}

	data, err := NewService(nil).RowsXLSX("invoice", rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Extraction"}, f.GetSheetList(), "no leftover default sheet")

	got, err := f.GetRows("Extraction")
	require.NoError(t, err)
	require.Len(t, got, 4, "header plus one row per field")

	assert.Equal(t, []string{"Field", "Value"}, got[0])
	assert.Equal(t, []string{"Vendor", "Acme Corp"}, got[1])
	assert.Equal(t, []string{"Date", "2026-08-30"}, got[2])
	assert.Equal(t, []string{"Total", "19.99"}, got[3])
}

func TestRowsXLSXEmpty(t *testing.T) {
	data, err := NewService(nil).RowsXLSX("invoice", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Extraction")
	require.NoError(t, err)
	require.Len(t, got, 1, "header only")
}
