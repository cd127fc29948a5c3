package dataset

import "fmt"

// FormatError indicates an input or output format that cannot be handled.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unsupported format for %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("unsupported format: %s", e.Reason)
}

// UnsupportedConversionError indicates output in a format whose header cannot be
// reconstructed from the loaded data (e.g., ARFF output from CSV input).
type UnsupportedConversionError struct {
	*FormatError
	From Format
	To   Format
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("cannot write %s data as %s: %s", e.From, e.To, e.FormatError.Reason)
}

func (e *UnsupportedConversionError) Unwrap() error { return e.FormatError }

// ValidationError indicates an argument or value outside its accepted domain.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// EmptyBucketError indicates that a statistic was requested over a bucket
// without any non-missing value.
type EmptyBucketError struct {
	Column string
	Bucket string
}

func (e *EmptyBucketError) Error() string {
	return fmt.Sprintf("column %s: no non-missing values in bucket %s", e.Column, e.Bucket)
}

// MissingClassColumnError indicates that a class-aware operation ran on a dataset
// without the class column.
type MissingClassColumnError struct {
	Column string
}

func (e *MissingClassColumnError) Error() string {
	return fmt.Sprintf("class column %q not found", e.Column)
}

// RowLengthError indicates a data row whose field count differs from the header.
type RowLengthError struct {
	Line int
	Got  int
	Want int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("line %d: got %d fields, header declares %d", e.Line, e.Got, e.Want)
}
