package parser

import (
	"strings"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
)

type csvCodec struct{}

func (csvCodec) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}

// Decode reads a header line followed by comma-separated data rows.
func (csvCodec) Decode(lines []string, opt Options) (*dataset.Dataset, error) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, &dataset.FormatError{Reason: "csv input has no header line"}
	}
	header := splitRow(strings.TrimSpace(lines[0]))
	for i, h := range header {
		header[i] = unquote(h)
	}
	d, err := dataset.New(dataset.FormatCSV, header, nil)
	if err != nil {
		return nil, err
	}
	for i, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := appendRow(d, splitRow(line), i+2, opt); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Encode writes a quoted header followed by one line per row.
func (csvCodec) Encode(d *dataset.Dataset) ([]string, error) {
	quoted := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		quoted[i] = `"` + c + `"`
	}
	out := make([]string, 0, d.RowCount()+1)
	out = append(out, strings.Join(quoted, ","))
	return joinRows(d, out), nil
}

// unquote strips one leading and one trailing double quote, if present.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
