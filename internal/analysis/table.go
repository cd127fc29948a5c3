package analysis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
)

// Options controls how a dataset is summarized.
type Options struct {
	// Sentinel marks a missing cell. Empty cells are always counted as missing.
	Sentinel string
	// ClassColumn names the column used for the class distribution.
	ClassColumn string
	// TopValues is how many frequent values to list for categorical columns.
	TopValues int
}

// DefaultOptions returns reasonable defaults for dataset summaries.
func DefaultOptions() Options {
	return Options{
		Sentinel:    "?",
		ClassColumn: dataset.DefaultClassColumn,
		TopValues:   3,
	}
}

// Report is a markdown-friendly summary of a dataset.
type Report struct {
	Name    string
	Format  dataset.Format
	Rows    int
	Cols    []ColumnSummary
	Classes []GroupResult
}

// ColumnSummary captures inferred kind and statistics per column.
type ColumnSummary struct {
	Name    string
	Kind    string // numeric|categorical
	NonNull int
	Missing int
	Unique  int
	// Numeric stats
	Min  float64
	Max  float64
	Mean float64
	Std  float64
	// Categorical top values
	TopValues []CategoryCount
}

type CategoryCount struct {
	Value string
	Count int
}

// GroupResult is the size of one class, in first-encounter order.
type GroupResult struct {
	Key  string
	Size int
}

// Summarize computes per-column statistics and the class distribution.
func Summarize(name string, d *dataset.Dataset, opt Options) *Report {
	rep := &Report{Name: name, Format: d.Format, Rows: d.RowCount()}
	for _, c := range d.Columns {
		rep.Cols = append(rep.Cols, summarizeColumn(c, d.Values[c], opt))
	}
	if labels, err := d.ClassLabels(opt.ClassColumn); err == nil {
		idx := map[string]int{}
		for _, l := range labels {
			i, ok := idx[l]
			if !ok {
				i = len(rep.Classes)
				idx[l] = i
				rep.Classes = append(rep.Classes, GroupResult{Key: l})
			}
			rep.Classes[i].Size++
		}
	}
	return rep
}

func summarizeColumn(name string, values []string, opt Options) ColumnSummary {
	cs := ColumnSummary{Name: name, Kind: "numeric"}
	cats := map[string]int{}
	var nums []float64
	for _, v := range values {
		if v == "" || v == opt.Sentinel {
			cs.Missing++
			continue
		}
		cs.NonNull++
		cats[v]++
		if x, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && !math.IsNaN(x) {
			nums = append(nums, x)
		} else {
			cs.Kind = "categorical"
		}
	}
	cs.Unique = len(cats)
	if cs.NonNull == 0 {
		cs.Kind = "empty"
		return cs
	}
	if cs.Kind == "numeric" {
		cs.Min, cs.Max = nums[0], nums[0]
		for _, x := range nums[1:] {
			cs.Min = math.Min(cs.Min, x)
			cs.Max = math.Max(cs.Max, x)
		}
		if len(nums) > 1 {
			cs.Mean, cs.Std = stat.MeanStdDev(nums, nil)
		} else {
			cs.Mean = nums[0]
		}
		return cs
	}
	for v, n := range cats {
		cs.TopValues = append(cs.TopValues, CategoryCount{Value: v, Count: n})
	}
	sort.Slice(cs.TopValues, func(i, j int) bool {
		if cs.TopValues[i].Count != cs.TopValues[j].Count {
			return cs.TopValues[i].Count > cs.TopValues[j].Count
		}
		return cs.TopValues[i].Value < cs.TopValues[j].Value
	})
	if opt.TopValues > 0 && len(cs.TopValues) > opt.TopValues {
		cs.TopValues = cs.TopValues[:opt.TopValues]
	}
	return cs
}

// Markdown renders the report as plain text sections.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s (%s)\n", r.Name, r.Format))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		total := c.NonNull + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %d = %.1f%%)", safeName(c.Name), c.Kind, c.NonNull, c.Missing, missPct))
		switch c.Kind {
		case "numeric":
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Std))
		case "categorical":
			if len(c.TopValues) > 0 {
				b.WriteString(" — top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
				if c.Unique > len(c.TopValues) {
					b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
				}
			}
		}
		b.WriteString("\n")
	}
	if len(r.Classes) > 0 {
		b.WriteString("\n[CLASS DISTRIBUTION]\n")
		for _, g := range r.Classes {
			pct := float64(g.Size) * 100.0 / float64(r.Rows)
			b.WriteString(fmt.Sprintf("- %s: %d (%.1f%%)\n", safeVal(g.Key), g.Size, pct))
		}
	}
	return b.String()
}

func safeName(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(unnamed)"
	}
	return safeVal(s)
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
