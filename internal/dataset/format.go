package dataset

import "strings"

// Format is one of the supported on-disk text formats.
type Format int

const (
	FormatCSV Format = iota + 1
	FormatARFF
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatARFF:
		return "arff"
	default:
		return "unknown"
	}
}

// ParseFormat parses an output type argument (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "arff":
		return FormatARFF, nil
	default:
		return 0, &ValidationError{Field: "output type", Value: s, Reason: "only csv and arff are supported"}
	}
}
