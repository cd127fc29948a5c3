package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
	"github.com/KaramelBytes/tabkit-cli/internal/parser"
	"github.com/KaramelBytes/tabkit-cli/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func errorf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, red("✗ Error:"), fmt.Sprintf(format, a...))
}

func warnf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, yellow("⚠ Warning:"), fmt.Sprintf(format, a...))
}

func okf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, green("✓"), fmt.Sprintf(format, a...))
}

func debugf(format string, a ...any) {
	if debug {
		fmt.Fprintln(os.Stderr, cyan("[debug]"), fmt.Sprintf(format, a...))
	}
}

// loadDataset reads and parses a dataset, choosing the format by extension.
func loadDataset(path string) (*dataset.Dataset, error) {
	format, err := parser.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	lines, err := utils.ReadLines(path)
	if err != nil {
		return nil, err
	}
	d, err := parser.Parse(lines, format, parser.Options{Strict: settings().StrictRows})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	debugf("loaded %s as %s: %d columns, %d rows", path, format, len(d.Columns), d.RowCount())
	return d, nil
}

// outputFormat resolves the --output-type flag, falling back to config.
func outputFormat(flagValue string) (dataset.Format, error) {
	if flagValue == "" {
		flagValue = settings().OutputType
	}
	return dataset.ParseFormat(flagValue)
}

// writeDataset serializes d and emits it.
func writeDataset(cmd *cobra.Command, d *dataset.Dataset, format dataset.Format, path string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	lines, err := parser.Serialize(d, format)
	if err != nil {
		return err
	}
	return emit(cmd, path, lines)
}

// emit writes lines to path, or to the command's stdout when path is empty.
func emit(cmd *cobra.Command, path string, lines []string) error {
	if path == "" {
		return utils.WriteLinesTo(cmd.OutOrStdout(), lines)
	}
	if err := utils.WriteLines(path, lines); err != nil {
		return err
	}
	okf("Wrote %d lines to %s", len(lines), path)
	return nil
}

// percentToFraction validates a 0-100 percentage.
func percentToFraction(flag string, p float64) (float64, error) {
	if !(p >= 0 && p <= 100) {
		return 0, &dataset.ValidationError{
			Field:  "--" + flag,
			Value:  strconv.FormatFloat(p, 'g', -1, 64),
			Reason: "must be between 0 and 100",
		}
	}
	return p / 100.0, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
