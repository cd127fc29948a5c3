package dataset

import (
	"fmt"
	"strings"
)

// DefaultClassColumn is the column holding class labels unless configured otherwise.
const DefaultClassColumn = "Class"

// Dataset is an in-memory table stored column by column. Cells keep their raw
// text so that missing-value sentinels compare exactly.
type Dataset struct {
	// Format is the format the dataset was loaded from.
	Format Format
	// Columns is the declared column order, which is also the output order.
	Columns []string
	// Values holds one value sequence per column; all have the same length.
	Values map[string][]string
	// Meta holds the ARFF header lines (up to and including @data) verbatim.
	// It is empty for CSV input.
	Meta []string
}

// New returns an empty dataset with the given columns. Column names must be unique.
func New(format Format, columns []string, meta []string) (*Dataset, error) {
	values := make(map[string][]string, len(columns))
	for _, c := range columns {
		if _, dup := values[c]; dup {
			return nil, &ValidationError{Field: "column", Value: c, Reason: "declared more than once"}
		}
		values[c] = []string{}
	}
	return &Dataset{
		Format:  format,
		Columns: append([]string(nil), columns...),
		Values:  values,
		Meta:    append([]string(nil), meta...),
	}, nil
}

// AppendRow appends one row; fields are assigned to columns by position.
func (d *Dataset) AppendRow(fields []string) error {
	if len(fields) != len(d.Columns) {
		return fmt.Errorf("append row: got %d fields, want %d", len(fields), len(d.Columns))
	}
	for i, c := range d.Columns {
		d.Values[c] = append(d.Values[c], fields[i])
	}
	return nil
}

// RowCount returns the number of rows.
func (d *Dataset) RowCount() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Values[d.Columns[0]])
}

// HasColumn reports whether the dataset declares the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.Values[name]
	return ok
}

// Column returns the values of the named column.
func (d *Dataset) Column(name string) ([]string, bool) {
	v, ok := d.Values[name]
	return v, ok
}

// SetColumn replaces the values of an existing column. The replacement must keep the row count.
func (d *Dataset) SetColumn(name string, values []string) error {
	cur, ok := d.Values[name]
	if !ok {
		return &ValidationError{Field: "column", Value: name, Reason: "not declared in dataset"}
	}
	if len(values) != len(cur) {
		return fmt.Errorf("set column %s: got %d values, want %d", name, len(values), len(cur))
	}
	d.Values[name] = values
	return nil
}

// Row returns the cells of row i in column order.
func (d *Dataset) Row(i int) []string {
	row := make([]string, len(d.Columns))
	for j, c := range d.Columns {
		row[j] = d.Values[c][i]
	}
	return row
}

// ClassLabels returns the class column, or a MissingClassColumnError.
func (d *Dataset) ClassLabels(classColumn string) ([]string, error) {
	v, ok := d.Values[classColumn]
	if !ok {
		return nil, &MissingClassColumnError{Column: classColumn}
	}
	return v, nil
}

// Validate checks that every column has the same number of values.
func (d *Dataset) Validate() error {
	n := d.RowCount()
	var bad []string
	for _, c := range d.Columns {
		if len(d.Values[c]) != n {
			bad = append(bad, fmt.Sprintf("%s=%d", c, len(d.Values[c])))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("row count mismatch (want %d): %s", n, strings.Join(bad, ", "))
	}
	return nil
}

// CountMissing returns how many values equal the sentinel.
func CountMissing(values []string, sentinel string) int {
	n := 0
	for _, v := range values {
		if v == sentinel {
			n++
		}
	}
	return n
}
