package refdata

import "errors"

var (
	// ErrRateColumnNotFound means no column could be identified as the
	// per-lakh crime rate.
	ErrRateColumnNotFound = errors.New("crime rate column not found")
	// ErrMissingColumn means a required column is absent from a table.
	ErrMissingColumn = errors.New("required column missing")
	// ErrInvalidValue means a numeric cell could not be used.
	ErrInvalidValue = errors.New("invalid value")
	// ErrNoRecords means the crime-rate table has no data rows.
	ErrNoRecords = errors.New("no crime rate records")
	// ErrNonPositiveMaxRate means every rate is zero, so nothing can be
	// normalized against the maximum.
	ErrNonPositiveMaxRate = errors.New("crime rate column has no positive values")
	// ErrUnsupportedFormat means a file extension has no reader.
	ErrUnsupportedFormat = errors.New("unsupported reference file format")
)
