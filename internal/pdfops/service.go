package pdfops

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/autohub/automation-hub/internal/common"
)

// Position codes accepted by AddPageNumbers, matching pdfcpu anchors.
const (
	PosBottomCenter = "bc"
	PosBottomRight  = "br"
	PosBottomLeft   = "bl"
	PosTopCenter    = "tc"
	PosTopRight     = "tr"
)

var validPositions = map[string]bool{
	PosBottomCenter: true,
	PosBottomRight:  true,
	PosBottomLeft:   true,
	PosTopCenter:    true,
	PosTopRight:     true,
}

// Service wraps the pdfcpu write operations the hub exposes: merging,
// splitting, compression and page-number stamping. All operations write
// a new file; inputs are never modified in place.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Merge concatenates the input files into outFile in the given order.
func (s *Service) Merge(inputs []string, outFile string) error {
	if len(inputs) < 2 {
		return common.ValidationErrorf("merge needs at least two inputs, got %d", len(inputs))
	}
	if err := api.MergeCreateFile(inputs, outFile, false, nil); err != nil {
		return common.WrapError(err, "merge")
	}
	s.logger.Info("pdf merged", "inputs", len(inputs), "out", outFile)
	return nil
}

// Split writes one file per span pages of inFile into outDir.
func (s *Service) Split(inFile, outDir string, span int) error {
	if span < 1 {
		return common.ValidationErrorf("split span must be positive, got %d", span)
	}
	if err := api.SplitFile(inFile, outDir, span, nil); err != nil {
		return common.WrapError(err, "split")
	}
	s.logger.Info("pdf split", "in", inFile, "out_dir", outDir, "span", span)
	return nil
}

// Compress writes an optimized copy of inFile to outFile.
func (s *Service) Compress(inFile, outFile string) error {
	if err := api.OptimizeFile(inFile, outFile, nil); err != nil {
		return common.WrapError(err, "compress")
	}
	s.logger.Info("pdf compressed", "in", inFile, "out", outFile)
	return nil
}

// PageCount returns the number of pages in inFile.
func (s *Service) PageCount(inFile string) (int, error) {
	n, err := api.PageCountFile(inFile)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", common.ErrDocumentOpen, inFile, err)
	}
	return n, nil
}

// AddPageNumbers stamps "Page N of M" onto every page except those in
// the exclude expression ("1, 3-5"). position is one of the Pos*
// anchor codes.
func (s *Service) AddPageNumbers(inFile, outFile, position, exclude string) error {
	if !validPositions[position] {
		return common.ValidationErrorf("unknown page number position %q", position)
	}
	selected, err := selectedPages(exclude)
	if err != nil {
		return err
	}

	desc := fmt.Sprintf("font:Helvetica, points:10, pos:%s, off:0 10, scale:1 abs, rot:0", position)
	if err := api.AddTextWatermarksFile(inFile, outFile, selected, true, "Page %p of %P", desc, nil); err != nil {
		return common.WrapError(err, "add page numbers")
	}
	s.logger.Info("page numbers added", "in", inFile, "out", outFile, "pos", position)
	return nil
}

// selectedPages turns an exclusion expression like "1, 3-5" into a
// pdfcpu page selection covering everything else.
func selectedPages(exclude string) ([]string, error) {
	selected := []string{"1-"}
	exclude = strings.TrimSpace(exclude)
	if exclude == "" {
		return selected, nil
	}
	for _, part := range strings.Split(exclude, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			a, errA := strconv.Atoi(strings.TrimSpace(lo))
			b, errB := strconv.Atoi(strings.TrimSpace(hi))
			if errA != nil || errB != nil || a < 1 || b < a {
				return nil, common.ValidationErrorf("invalid page range %q", part)
			}
			selected = append(selected, fmt.Sprintf("!%d-%d", a, b))
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, common.ValidationErrorf("invalid page number %q", part)
		}
		selected = append(selected, fmt.Sprintf("!%d", n))
	}
	return selected, nil
}
