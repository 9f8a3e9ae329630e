package refdata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/refdata"
)

const weightsCSV = "Factor,Condition,Weight\ngender,male,1.0\nfatal,non-fatal,0.8\ncase,pending,1.2\n"

type staticSource struct {
	table *refdata.Table
	err   error
}

func (s staticSource) Read(context.Context) (*refdata.Table, error) {
	return s.table, s.err
}

func newLoader(t *testing.T, crimesCSV string, opts refdata.Options) *refdata.Loader {
	t.Helper()
	crimes := &refdata.CSVSource{Path: writeFile(t, "crimes.csv", crimesCSV)}
	weights := &refdata.CSVSource{Path: writeFile(t, "weights.csv", weightsCSV)}
	return refdata.NewLoader(crimes, weights, opts, logger.NewNop())
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	loader := newLoader(t,
		"City,Crime Type,Year,Rate Per Lakh\nDelhi,theft,2022,40\nMumbai,theft,2022,100\nPune,murder,2022,0\n",
		refdata.Options{RateMarker: refdata.DefaultRateMarker})

	ref, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "rateperlakh", ref.RateColumn)
	assert.InDelta(t, 100.0, ref.MaxRate, 1e-9)
	require.Len(t, ref.Crimes, 3)
	assert.Equal(t, "Delhi", ref.Crimes[0].City)
	assert.Equal(t, "theft", ref.Crimes[0].CrimeType)
	assert.InDelta(t, 40.0, ref.Crimes[0].RatePerLakh, 1e-9)
	assert.Equal(t, 3, ref.Weights.Len())
	assert.InDelta(t, 0.8, ref.Weights.Resolve("fatal", "non-fatal"), 1e-9)
	assert.False(t, ref.LoadedAt.IsZero())
}

func TestLoader_RateColumnResolution(t *testing.T) {
	t.Parallel()

	const twoRates = "City,Crime Type,Rate 2021 per lakh,Rate 2022 per lakh\nDelhi,theft,10,20\n"

	tests := []struct {
		name    string
		csv     string
		opts    refdata.Options
		want    string
		wantErr error
	}{
		{
			name: "marker picks first matching column",
			csv:  twoRates,
			opts: refdata.Options{RateMarker: "lakh"},
			want: "rate2021perlakh",
		},
		{
			name: "explicit column wins over marker",
			csv:  twoRates,
			opts: refdata.Options{RateColumn: "Rate 2022 per lakh", RateMarker: "lakh"},
			want: "rate2022perlakh",
		},
		{
			name: "absent explicit column falls back to marker",
			csv:  twoRates,
			opts: refdata.Options{RateColumn: "incidence", RateMarker: "lakh"},
			want: "rate2021perlakh",
		},
		{
			name:    "absent explicit column without marker",
			csv:     twoRates,
			opts:    refdata.Options{RateColumn: "incidence"},
			wantErr: refdata.ErrRateColumnNotFound,
		},
		{
			name:    "no column contains marker",
			csv:     "City,Crime Type,Incidence\nDelhi,theft,10\n",
			opts:    refdata.Options{RateMarker: "lakh"},
			wantErr: refdata.ErrRateColumnNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, err := newLoader(t, tt.csv, tt.opts).Load(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.RateColumn)
		})
	}
}

func TestLoader_Failures(t *testing.T) {
	t.Parallel()

	opts := refdata.Options{RateMarker: refdata.DefaultRateMarker}

	tests := []struct {
		name    string
		csv     string
		wantErr error
	}{
		{"missing city column", "Town,Crime Type,Rate per lakh\nDelhi,theft,1\n", refdata.ErrMissingColumn},
		{"no rows", "City,Crime Type,Rate per lakh\n", refdata.ErrNoRecords},
		{"all zero", "City,Crime Type,Rate per lakh\nDelhi,theft,0\n", refdata.ErrNonPositiveMaxRate},
		{"unparseable rate", "City,Crime Type,Rate per lakh\nDelhi,theft,n/a\n", refdata.ErrInvalidValue},
		{"empty rate", "City,Crime Type,Rate per lakh\nDelhi,theft,\n", refdata.ErrInvalidValue},
		{"negative rate", "City,Crime Type,Rate per lakh\nDelhi,theft,-3\n", refdata.ErrInvalidValue},
		{"non-finite rate", "City,Crime Type,Rate per lakh\nDelhi,theft,NaN\n", refdata.ErrInvalidValue},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newLoader(t, tt.csv, opts).Load(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_InvalidRateNamesRow(t *testing.T) {
	t.Parallel()

	_, err := newLoader(t,
		"City,Crime Type,Rate per lakh\nDelhi,theft,4\nPune,theft,abc\n",
		refdata.Options{RateMarker: "lakh"}).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoader_WeightTableErrors(t *testing.T) {
	t.Parallel()

	crimes := staticSource{table: &refdata.Table{
		Name:    "crimes",
		Columns: []string{"city", "crimetype", "rateperlakh"},
		Rows:    [][]string{{"Delhi", "theft", "40"}},
	}}

	t.Run("missing weight column", func(t *testing.T) {
		t.Parallel()
		weights := staticSource{table: &refdata.Table{
			Name:    "weights",
			Columns: []string{"factor", "condition"},
		}}
		_, err := refdata.NewLoader(crimes, weights, refdata.Options{RateMarker: "lakh"}, nil).
			Load(context.Background())
		require.ErrorIs(t, err, refdata.ErrMissingColumn)
	})

	t.Run("unparseable weight", func(t *testing.T) {
		t.Parallel()
		weights := staticSource{table: &refdata.Table{
			Name:    "weights",
			Columns: []string{"factor", "condition", "weight"},
			Rows:    [][]string{{"gender", "male", "heavy"}},
		}}
		_, err := refdata.NewLoader(crimes, weights, refdata.Options{RateMarker: "lakh"}, nil).
			Load(context.Background())
		require.ErrorIs(t, err, refdata.ErrInvalidValue)
	})

	t.Run("source error", func(t *testing.T) {
		t.Parallel()
		sourceErr := errors.New("connection refused")
		_, err := refdata.NewLoader(crimes, staticSource{err: sourceErr}, refdata.Options{}, nil).
			Load(context.Background())
		require.ErrorIs(t, err, sourceErr)
	})
}
