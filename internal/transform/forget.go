package transform

import (
	"math"
	"strconv"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
)

// Source draws uniform integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Forget returns a copy of values where a fraction of the entries is replaced by
// sentinel. For fraction <= 0.5, ceil(fraction*N) positions are forgotten; above
// that, ceil((1-fraction)*N) positions are kept and the rest forgotten, so at most
// N/2 distinct indices are ever drawn.
func Forget(values []string, fraction float64, sentinel string, rng Source) ([]string, error) {
	if err := checkFraction(fraction); err != nil {
		return nil, err
	}
	n := len(values)
	out := make([]string, n)
	if fraction <= 0.5 {
		copy(out, values)
		k := int(math.Ceil(fraction * float64(n)))
		for _, idx := range pickDistinct(n, k, rng) {
			out[idx] = sentinel
		}
		return out, nil
	}
	for i := range out {
		out[i] = sentinel
	}
	k := int(math.Ceil((1 - fraction) * float64(n)))
	for _, idx := range pickDistinct(n, k, rng) {
		out[idx] = values[idx]
	}
	return out, nil
}

// pickDistinct draws k distinct indices from [0, n) by rejection sampling.
func pickDistinct(n, k int, rng Source) []int {
	if k > n {
		k = n
	}
	seen := make(map[int]struct{}, k)
	picked := make([]int, 0, k)
	for len(picked) < k {
		idx := rng.IntN(n)
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		picked = append(picked, idx)
	}
	return picked
}

// ForgetColumns forgets values in each of the named columns independently, in
// the given order, drawing from the shared rng. An empty list selects every
// column. It returns the number of sentinel entries per affected column.
func ForgetColumns(d *dataset.Dataset, columns []string, fraction float64, sentinel string, rng Source) (map[string]int, error) {
	if len(columns) == 0 {
		columns = d.Columns
	}
	for _, c := range columns {
		if !d.HasColumn(c) {
			return nil, &dataset.ValidationError{Field: "attribute", Value: c, Reason: "not declared in dataset"}
		}
	}
	counts := make(map[string]int, len(columns))
	for _, c := range columns {
		forgotten, err := Forget(d.Values[c], fraction, sentinel, rng)
		if err != nil {
			return nil, err
		}
		if err := d.SetColumn(c, forgotten); err != nil {
			return nil, err
		}
		counts[c] = dataset.CountMissing(forgotten, sentinel)
	}
	return counts, nil
}

func checkFraction(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return &dataset.ValidationError{
			Field:  "fraction",
			Value:  strconv.FormatFloat(f, 'g', -1, 64),
			Reason: "must be between 0 and 1",
		}
	}
	return nil
}
