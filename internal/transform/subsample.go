package transform

import (
	"math"
	"strings"
)

// ClassCount reports how many rows of one class were read and kept.
type ClassCount struct {
	Label string
	Total int
	Kept  int
}

// Subsample groups raw data rows by class label (the last comma-separated
// field, compared as raw text) and keeps the first floor(fraction*size) rows of each group. Groups are
// emitted in the order their label first appears, so the result is sorted by
// class even when fraction is 1.
func Subsample(rows []string, fraction float64) ([]string, []ClassCount, error) {
	if err := checkFraction(fraction); err != nil {
		return nil, nil, err
	}
	var labels []string
	groups := map[string][]string{}
	for _, row := range rows {
		label := lastField(row)
		if _, ok := groups[label]; !ok {
			labels = append(labels, label)
		}
		groups[label] = append(groups[label], row)
	}

	kept := make([]string, 0, len(rows))
	counts := make([]ClassCount, 0, len(labels))
	for _, label := range labels {
		g := groups[label]
		n := int(math.Floor(float64(len(g)) * fraction))
		kept = append(kept, g[:n]...)
		counts = append(counts, ClassCount{Label: label, Total: len(g), Kept: n})
	}
	return kept, counts, nil
}

func lastField(row string) string {
	if i := strings.LastIndexByte(row, ','); i >= 0 {
		return row[i+1:]
	}
	return row
}
