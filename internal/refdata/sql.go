package refdata

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// SQLSource reads every row of a database table. Column names come from the
// result set, so they go through the same normalization as file headers.
type SQLSource struct {
	DB *sql.DB
	// Table may be schema qualified, e.g. "reference.crime_rates".
	Table string
	// OrderBy fixes row order so the first matching row is stable. Empty
	// leaves the order to the database.
	OrderBy string
}

// Read implements Source.
func (s *SQLSource) Read(ctx context.Context) (*Table, error) {
	query := "SELECT * FROM " + quoteQualified(s.Table)
	if s.OrderBy != "" {
		query += " ORDER BY " + pq.QuoteIdentifier(s.OrderBy)
	}

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.Table, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", s.Table, err)
	}

	var data [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}

		if scanErr := rows.Scan(dest...); scanErr != nil {
			return nil, fmt.Errorf("scan %s: %w", s.Table, scanErr)
		}

		row := make([]string, len(columns))
		for i, c := range cells {
			row[i] = c.String
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.Table, err)
	}

	return newTable(s.Table, columns, data), nil
}

func quoteQualified(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}
