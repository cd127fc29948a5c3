package parser

import (
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
)

// Options controls how data rows are assigned to columns.
type Options struct {
	// Strict rejects data rows whose field count differs from the header.
	// When false, extra fields are dropped and short rows are padded with empty cells.
	Strict bool
}

// DefaultOptions returns strict parsing.
func DefaultOptions() Options {
	return Options{Strict: true}
}

// codec translates between text lines and a dataset for one format.
type codec interface {
	CanParse(filename string) bool
	Decode(lines []string, opt Options) (*dataset.Dataset, error)
	Encode(d *dataset.Dataset) ([]string, error)
}

func codecFor(f dataset.Format) (codec, error) {
	switch f {
	case dataset.FormatCSV:
		return csvCodec{}, nil
	case dataset.FormatARFF:
		return arffCodec{}, nil
	default:
		return nil, &dataset.FormatError{Reason: "unknown format " + f.String()}
	}
}

// DetectFormat picks the format from the file extension. A file without an
// extension is treated as ARFF.
func DetectFormat(fileName string) (dataset.Format, error) {
	if filepath.Ext(filepath.Base(fileName)) == "" {
		return dataset.FormatARFF, nil
	}
	for _, f := range []dataset.Format{dataset.FormatCSV, dataset.FormatARFF} {
		c, _ := codecFor(f)
		if c.CanParse(fileName) {
			return f, nil
		}
	}
	return 0, &dataset.FormatError{Path: fileName, Reason: "only CSV (.csv) and ARFF (.arff or no extension) are supported"}
}

// Parse builds a dataset from the lines of a file in the given format.
func Parse(lines []string, format dataset.Format, opt Options) (*dataset.Dataset, error) {
	c, err := codecFor(format)
	if err != nil {
		return nil, err
	}
	return c.Decode(lines, opt)
}

// Serialize renders a dataset as lines of the requested format.
func Serialize(d *dataset.Dataset, format dataset.Format) ([]string, error) {
	c, err := codecFor(format)
	if err != nil {
		return nil, err
	}
	return c.Encode(d)
}

// splitRow splits a data line on commas. Separators inside quotes are not handled.
func splitRow(line string) []string {
	return strings.Split(line, ",")
}

// appendRow fits fields to the column count and appends them to d.
func appendRow(d *dataset.Dataset, fields []string, lineNo int, opt Options) error {
	want := len(d.Columns)
	if len(fields) != want {
		if opt.Strict {
			return &dataset.RowLengthError{Line: lineNo, Got: len(fields), Want: want}
		}
		if len(fields) > want {
			fields = fields[:want]
		} else {
			fields = append(fields, make([]string, want-len(fields))...)
		}
	}
	return d.AppendRow(fields)
}

// joinRows renders every row of d as a comma-joined line.
func joinRows(d *dataset.Dataset, out []string) []string {
	n := d.RowCount()
	for i := 0; i < n; i++ {
		out = append(out, strings.Join(d.Row(i), ","))
	}
	return out
}
