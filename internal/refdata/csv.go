package refdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

// CSVSource reads a comma-separated file whose first record is the header.
type CSVSource struct {
	Path string
}

// Read implements Source.
func (s *CSVSource) Read(_ context.Context) (*Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	if len(records) == 0 {
		return newTable(s.Path, nil, nil), nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	return newTable(s.Path, header, records[1:]), nil
}
