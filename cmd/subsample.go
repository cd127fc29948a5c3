package cmd

import (
	"fmt"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
	"github.com/KaramelBytes/tabkit-cli/internal/parser"
	"github.com/KaramelBytes/tabkit-cli/internal/transform"
	"github.com/KaramelBytes/tabkit-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	ssPercent    float64
	ssOutputFile string
)

var subsampleCmd = &cobra.Command{
	Use:   "subsample <dataset.arff>",
	Short: "Keep the first percent of each class of an ARFF dataset",
	Long: `Reduce an ARFF dataset to a percentage of its rows while keeping the class
distribution. The class label is the last field of each row. Rows are grouped
by class in the order the classes first appear, so the output is sorted by
class even at 100 percent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		percent := ssPercent
		if !cmd.Flags().Changed("percent") {
			percent = settings().SubsamplePercent
		}
		fraction, err := percentToFraction("percent", percent)
		if err != nil {
			return err
		}
		format, err := parser.DetectFormat(path)
		if err != nil {
			return err
		}
		if format != dataset.FormatARFF {
			return &dataset.FormatError{Path: path, Reason: "subsample only handles ARFF files"}
		}
		lines, err := utils.ReadLines(path)
		if err != nil {
			return err
		}
		meta, rows, err := parser.SplitARFF(lines)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		kept, counts, err := transform.Subsample(rows, fraction)
		if err != nil {
			return err
		}
		for _, c := range counts {
			debugf("class %s: kept %d of %d rows", c.Label, c.Kept, c.Total)
		}
		return emit(cmd, ssOutputFile, append(meta, kept...))
	},
}

func init() {
	rootCmd.AddCommand(subsampleCmd)
	subsampleCmd.Flags().Float64VarP(&ssPercent, "percent", "p", 100, "percentage of each class to keep (0-100)")
	subsampleCmd.Flags().StringVarP(&ssOutputFile, "output-file", "o", "", "file to store the result (default: stdout)")
}
