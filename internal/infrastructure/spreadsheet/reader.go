package spreadsheet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/shopsync/backend/internal/domain/catalog"
)

// Column indexes of the product worksheet, 0-based. The layout follows the
// standard product export sheet: product-level fields first, option name and
// value pairs, pricing, then the image descriptor.
const (
	colHandle         = 0
	colTitle          = 1
	colBodyHTML       = 2
	colVendor         = 3
	colProductType    = 4
	colTags           = 5
	colOption1Name    = 7
	colOption1Value   = 8
	colOption2Name    = 9
	colOption2Value   = 10
	colOption3Name    = 11
	colOption3Value   = 12
	colPrice          = 19
	colCompareAtPrice = 20
	colImageSrc       = 24
	colImagePosition  = 25
)

// Reader decodes XLSX workbooks into raw product rows.
type Reader struct{}

// NewReader creates a new workbook reader.
func NewReader() *Reader {
	return &Reader{}
}

// Rows decodes the first worksheet of the workbook into a sequence of raw
// rows, header included. A workbook without a worksheet yields an empty
// sequence; fully empty rows are skipped.
func (r *Reader) Rows(src io.Reader) ([]catalog.RawRow, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: failed to read worksheet %q: %w", sheets[0], err)
	}

	out := make([]catalog.RawRow, 0, len(rows))
	for _, cells := range rows {
		if isEmptyRow(cells) {
			continue
		}
		out = append(out, catalog.RawRow{
			Handle:         cell(cells, colHandle),
			Title:          cell(cells, colTitle),
			BodyHTML:       cell(cells, colBodyHTML),
			Vendor:         cell(cells, colVendor),
			ProductType:    cell(cells, colProductType),
			Tags:           cell(cells, colTags),
			Option1Name:    cell(cells, colOption1Name),
			Option1:        cell(cells, colOption1Value),
			Option2Name:    cell(cells, colOption2Name),
			Option2:        cell(cells, colOption2Value),
			Option3Name:    cell(cells, colOption3Name),
			Option3:        cell(cells, colOption3Value),
			Price:          cell(cells, colPrice),
			CompareAtPrice: cell(cells, colCompareAtPrice),
			ImageSrc:       cell(cells, colImageSrc),
			ImagePosition:  position(cell(cells, colImagePosition)),
		})
	}

	return out, nil
}

// cell returns the value at idx, tolerating the ragged rows GetRows produces
// when trailing cells are empty.
func cell(cells []string, idx int) string {
	if idx < len(cells) {
		return cells[idx]
	}
	return ""
}

// position parses an image position cell; non-numeric values degrade to 0.
func position(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
