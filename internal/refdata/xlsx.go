package refdata

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads one sheet of an Excel workbook. The first non-blank row is
// the header; blank rows are skipped.
type XLSXSource struct {
	Path  string
	Sheet string
}

// Read implements Source.
func (s *XLSXSource) Read(_ context.Context) (*Table, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := s.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", s.Path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, s.Path, err)
	}

	var header []string
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		data = append(data, row)
	}

	return newTable(s.Path+"#"+sheet, header, data), nil
}
