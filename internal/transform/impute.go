package transform

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
)

// Statistic selects the replacement value computed from a bucket.
type Statistic int

const (
	Mean Statistic = iota + 1
	Median
)

func (s Statistic) String() string {
	switch s {
	case Mean:
		return "mean"
	case Median:
		return "median"
	default:
		return "unknown"
	}
}

// ParseStatistic accepts "mean" or "median".
func ParseStatistic(s string) (Statistic, error) {
	switch s {
	case "mean":
		return Mean, nil
	case "median":
		return Median, nil
	default:
		return 0, &dataset.ValidationError{Field: "value type", Value: s, Reason: "choose mean or median"}
	}
}

// Scope selects which rows contribute to a replacement value.
type Scope int

const (
	// ScopeAll uses every non-missing value of the column.
	ScopeAll Scope = iota + 1
	// ScopeClass uses only the rows sharing the missing entry's class label.
	ScopeClass
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeClass:
		return "class"
	default:
		return "unknown"
	}
}

// ParseScope accepts "all" or "class".
func ParseScope(s string) (Scope, error) {
	switch s {
	case "all":
		return ScopeAll, nil
	case "class":
		return ScopeClass, nil
	default:
		return 0, &dataset.ValidationError{Field: "value source", Value: s, Reason: "choose all or class"}
	}
}

// Bucket reports the replacement computed for one group of rows.
type Bucket struct {
	// Label is the class label, or "all" for the global bucket.
	Label string
	// Size is the number of non-missing values the statistic was computed from.
	Size int
	// Value is the replacement text.
	Value string
}

type bucket struct {
	label string
	vals  []float64
	value string
}

// Impute returns a copy of values with every sentinel entry replaced by the
// bucket statistic, formatted with three decimals. classes is only read for
// ScopeClass and must have one label per value.
func Impute(column string, values, classes []string, st Statistic, scope Scope, sentinel string) ([]string, []Bucket, error) {
	if scope == ScopeClass && len(classes) != len(values) {
		return nil, nil, &dataset.ValidationError{Field: "class labels", Reason: "length differs from column " + column}
	}
	var order []*bucket
	byLabel := map[int]*bucket{}
	rowBucket := make([]*bucket, len(values))

	global := &bucket{label: "all"}
	if scope == ScopeAll {
		order = append(order, global)
	}
	for i, v := range values {
		b := global
		if scope == ScopeClass {
			label, err := classLabel(classes[i], i)
			if err != nil {
				return nil, nil, err
			}
			if b = byLabel[label]; b == nil {
				b = &bucket{label: strconv.Itoa(label)}
				byLabel[label] = b
				order = append(order, b)
			}
		}
		rowBucket[i] = b
		if v == sentinel {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, nil, &dataset.ValidationError{Field: "value in column " + column, Value: v, Reason: "not a number"}
		}
		b.vals = append(b.vals, x)
	}

	report := make([]Bucket, 0, len(order))
	for _, b := range order {
		if len(b.vals) == 0 {
			return nil, nil, &dataset.EmptyBucketError{Column: column, Bucket: b.label}
		}
		b.value = decimal.NewFromFloatWithExponent(compute(st, b.vals), -3).StringFixed(3)
		report = append(report, Bucket{Label: b.label, Size: len(b.vals), Value: b.value})
	}

	out := make([]string, len(values))
	for i, v := range values {
		if v == sentinel {
			out[i] = rowBucket[i].value
		} else {
			out[i] = v
		}
	}
	return out, report, nil
}

// compute evaluates the statistic. The median of an even-sized bucket is the
// lower of the two middle values.
func compute(st Statistic, vals []float64) float64 {
	if st == Median {
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return stat.Mean(vals, nil)
}

func classLabel(s string, row int) (int, error) {
	label, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &dataset.ValidationError{
			Field:  "class label in row " + strconv.Itoa(row+1),
			Value:  s,
			Reason: "not an integer",
		}
	}
	return label, nil
}

// Imputation summarizes the replacements made in one column.
type Imputation struct {
	Column  string
	Filled  int
	Buckets []Bucket
}

// ImputeColumns fills the missing entries of every column that has at least one.
// ScopeClass requires the class column to be present.
func ImputeColumns(d *dataset.Dataset, st Statistic, scope Scope, sentinel, classColumn string) ([]Imputation, error) {
	var classes []string
	if scope == ScopeClass {
		var err error
		if classes, err = d.ClassLabels(classColumn); err != nil {
			return nil, err
		}
	}
	var done []Imputation
	for _, c := range d.Columns {
		vals := d.Values[c]
		missing := dataset.CountMissing(vals, sentinel)
		if missing == 0 {
			continue
		}
		filled, buckets, err := Impute(c, vals, classes, st, scope, sentinel)
		if err != nil {
			return nil, err
		}
		if err := d.SetColumn(c, filled); err != nil {
			return nil, err
		}
		done = append(done, Imputation{Column: c, Filled: missing, Buckets: buckets})
	}
	return done, nil
}
