package pdfops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohub/automation-hub/internal/common"
)

func TestMergeRequiresTwoInputs(t *testing.T) {
	s := NewService(nil)

	err := s.Merge([]string{"only.pdf"}, "out.pdf")
	assert.ErrorIs(t, err, common.ErrValidation)

	err = s.Merge(nil, "out.pdf")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestSplitRejectsBadSpan(t *testing.T) {
	s := NewService(nil)

	assert.ErrorIs(t, s.Split("in.pdf", "out", 0), common.ErrValidation)
	assert.ErrorIs(t, s.Split("in.pdf", "out", -3), common.ErrValidation)
}

func TestAddPageNumbersRejectsUnknownPosition(t *testing.T) {
	s := NewService(nil)

	err := s.AddPageNumbers("in.pdf", "out.pdf", "middle", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestSelectedPages(t *testing.T) {
	tests := []struct {
		name    string
		exclude string
		want    []string
		wantErr bool
	}{
		{"no exclusions", "", []string{"1-"}, false},
		{"single page", "3", []string{"1-", "!3"}, false},
		{"range", "3-5", []string{"1-", "!3-5"}, false},
		{"mixed", "1, 3-5, 9", []string{"1-", "!1", "!3-5", "!9"}, false},
		{"trailing comma", "2,", []string{"1-", "!2"}, false},
		{"zero page", "0", nil, true},
		{"inverted range", "5-3", nil, true},
		{"garbage", "abc", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectedPages(tt.exclude)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageCountMissingFile(t *testing.T) {
	s := NewService(nil)

	_, err := s.PageCount("/does/not/exist.pdf")
	assert.ErrorIs(t, err, common.ErrDocumentOpen)
}
