package refdata

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Source reads one reference table.
type Source interface {
	Read(ctx context.Context) (*Table, error)
}

// FileSource picks a reader by extension: .csv, or .xlsx/.xlsm with the given
// sheet (empty means the first sheet).
func FileSource(path, sheet string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &CSVSource{Path: path}, nil
	case ".xlsx", ".xlsm":
		return &XLSXSource{Path: path, Sheet: sheet}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
