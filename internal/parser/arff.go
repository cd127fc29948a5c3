package parser

import (
	"strings"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
)

const (
	attributeMarker = "@attribute"
	dataMarker      = "@data"
)

type arffCodec struct{}

func (arffCodec) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".arff")
}

// Decode reads the ARFF header (kept verbatim as meta) and the data section.
func (arffCodec) Decode(lines []string, opt Options) (*dataset.Dataset, error) {
	doc, err := splitARFF(lines)
	if err != nil {
		return nil, err
	}
	var columns []string
	for _, line := range doc.meta {
		if !containsFold(line, attributeMarker) {
			continue
		}
		name := attributeName(line)
		if name == "" {
			return nil, &dataset.FormatError{Reason: "attribute declaration without a name: " + line}
		}
		columns = append(columns, name)
	}
	d, err := dataset.New(dataset.FormatARFF, columns, doc.meta)
	if err != nil {
		return nil, err
	}
	for i, row := range doc.rows {
		if err := appendRow(d, splitRow(row), doc.lineNos[i], opt); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Encode writes the captured header followed by one line per row.
func (arffCodec) Encode(d *dataset.Dataset) ([]string, error) {
	if d.Format != dataset.FormatARFF || len(d.Meta) == 0 {
		return nil, &dataset.UnsupportedConversionError{
			FormatError: &dataset.FormatError{Reason: "ARFF output needs an ARFF header captured at load time"},
			From:        d.Format,
			To:          dataset.FormatARFF,
		}
	}
	out := make([]string, 0, len(d.Meta)+d.RowCount())
	out = append(out, d.Meta...)
	return joinRows(d, out), nil
}

type arffDocument struct {
	meta    []string
	rows    []string
	lineNos []int
}

func splitARFF(lines []string) (arffDocument, error) {
	var doc arffDocument
	inData := false
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if !inData {
			doc.meta = append(doc.meta, line)
			if containsFold(line, dataMarker) {
				inData = true
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		doc.rows = append(doc.rows, line)
		doc.lineNos = append(doc.lineNos, i+1)
	}
	if !inData {
		return arffDocument{}, &dataset.FormatError{Reason: "arff input has no @data section"}
	}
	return doc, nil
}

// SplitARFF separates the header lines (through @data) from the raw data rows.
// Lines are whitespace-trimmed; blank and comment lines in the data section are dropped.
func SplitARFF(lines []string) (meta []string, rows []string, err error) {
	doc, err := splitARFF(lines)
	if err != nil {
		return nil, nil, err
	}
	return doc.meta, doc.rows, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// attributeName returns the name declared after the @attribute marker. A name
// opened with a single or double quote runs to the matching quote and may
// contain spaces; an unterminated quote falls back to the first token.
func attributeName(line string) string {
	rest := ""
	for i := 0; i+len(attributeMarker) <= len(line); i++ {
		if strings.EqualFold(line[i:i+len(attributeMarker)], attributeMarker) {
			rest = strings.TrimSpace(line[i+len(attributeMarker):])
			break
		}
	}
	if rest == "" {
		return ""
	}
	if q := rest[0]; q == '\'' || q == '"' {
		if end := strings.IndexByte(rest[1:], q); end >= 0 {
			return rest[1 : end+1]
		}
	}
	return strings.Fields(rest)[0]
}
