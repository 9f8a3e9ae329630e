package refdata

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/risk"
)

// DefaultRateMarker is the substring that identifies the rate column when no
// explicit column is configured.
const DefaultRateMarker = "lakh"

// Normalized column names of the two tables.
const (
	ColumnCity      = "city"
	ColumnCrimeType = "crimetype"
	ColumnFactor    = "factor"
	ColumnCondition = "condition"
	ColumnWeight    = "weight"
)

// firstDataRow is the 1-based row number of the first record after the header.
const firstDataRow = 2

// Reference is the immutable result of a load.
type Reference struct {
	Crimes     []domain.CrimeRecord
	Weights    risk.Weights
	MaxRate    float64
	RateColumn string
	LoadedAt   time.Time
}

// Options controls rate column resolution.
type Options struct {
	// RateColumn names the rate column exactly. It is normalized before use.
	RateColumn string
	// RateMarker is matched as a substring against normalized column names
	// when RateColumn is empty or absent. Empty disables the scan.
	RateMarker string
}

// Loader reads and validates both reference tables.
type Loader struct {
	crimes  Source
	weights Source
	opts    Options
	log     logger.Logger
}

// NewLoader creates a loader. A nil logger discards output.
func NewLoader(crimes, weights Source, opts Options, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NewNop()
	}
	return &Loader{crimes: crimes, weights: weights, opts: opts, log: log}
}

// Load reads both sources and builds the Reference.
func (l *Loader) Load(ctx context.Context) (*Reference, error) {
	crimeTable, err := l.crimes.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read crime rates: %w", err)
	}

	weightTable, err := l.weights.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read risk weights: %w", err)
	}

	rateColumn, err := l.resolveRateColumn(crimeTable)
	if err != nil {
		return nil, err
	}

	crimes, maxRate, err := buildCrimes(crimeTable, rateColumn)
	if err != nil {
		return nil, err
	}

	rules, err := buildWeights(weightTable)
	if err != nil {
		return nil, err
	}

	ref := &Reference{
		Crimes:     crimes,
		Weights:    risk.NewWeights(rules),
		MaxRate:    maxRate,
		RateColumn: rateColumn,
		LoadedAt:   time.Now().UTC(),
	}

	l.log.Info("Reference data loaded",
		logger.String("crime_source", crimeTable.Name),
		logger.String("weight_source", weightTable.Name),
		logger.Int("crime_records", len(ref.Crimes)),
		logger.Int("weight_rules", len(rules)),
		logger.String("rate_column", ref.RateColumn),
		logger.Float64("max_rate", ref.MaxRate),
	)

	return ref, nil
}

func (l *Loader) resolveRateColumn(t *Table) (string, error) {
	if explicit := NormalizeColumn(l.opts.RateColumn); explicit != "" {
		if t.Index(explicit) >= 0 {
			return explicit, nil
		}
		l.log.Warn("Configured rate column not present",
			logger.String("rate_column", explicit),
			logger.Strings("columns", t.Columns),
		)
	}

	if marker := NormalizeColumn(l.opts.RateMarker); marker != "" {
		for _, c := range t.Columns {
			if strings.Contains(c, marker) {
				return c, nil
			}
		}
	}

	return "", fmt.Errorf("%w in %s (columns: %s)",
		ErrRateColumnNotFound, t.Name, strings.Join(t.Columns, ", "))
}

func requireColumns(t *Table, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		idx[i] = t.Index(name)
		if idx[i] < 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrMissingColumn, name, t.Name)
		}
	}
	return idx, nil
}

func buildCrimes(t *Table, rateColumn string) ([]domain.CrimeRecord, float64, error) {
	idx, err := requireColumns(t, ColumnCity, ColumnCrimeType, rateColumn)
	if err != nil {
		return nil, 0, err
	}
	if len(t.Rows) == 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoRecords, t.Name)
	}

	records := make([]domain.CrimeRecord, 0, len(t.Rows))
	maxRate := 0.0
	for i, row := range t.Rows {
		rate, parseErr := parseRate(row[idx[2]])
		if parseErr != nil {
			return nil, 0, fmt.Errorf("%s row %d column %q: %w",
				t.Name, i+firstDataRow, rateColumn, parseErr)
		}

		records = append(records, domain.CrimeRecord{
			City:        row[idx[0]],
			CrimeType:   row[idx[1]],
			RatePerLakh: rate,
		})
		if rate > maxRate {
			maxRate = rate
		}
	}

	if maxRate <= 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrNonPositiveMaxRate, t.Name)
	}

	return records, maxRate, nil
}

func parseRate(cell string) (float64, error) {
	if cell == "" {
		return 0, fmt.Errorf("%w: empty rate", ErrInvalidValue)
	}
	rate, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, cell)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("%w: rate %q is not finite", ErrInvalidValue, cell)
	}
	if rate < 0 {
		return 0, fmt.Errorf("%w: negative rate %v", ErrInvalidValue, rate)
	}
	return rate, nil
}

func buildWeights(t *Table) ([]domain.WeightRule, error) {
	idx, err := requireColumns(t, ColumnFactor, ColumnCondition, ColumnWeight)
	if err != nil {
		return nil, err
	}

	rules := make([]domain.WeightRule, 0, len(t.Rows))
	for i, row := range t.Rows {
		weight, parseErr := strconv.ParseFloat(row[idx[2]], 64)
		if parseErr != nil {
			return nil, fmt.Errorf("%s row %d column %q: %w: %q is not a number",
				t.Name, i+firstDataRow, ColumnWeight, ErrInvalidValue, row[idx[2]])
		}

		rules = append(rules, domain.WeightRule{
			Factor:    row[idx[0]],
			Condition: row[idx[1]],
			Weight:    weight,
		})
	}

	return rules, nil
}
