package cmd

import (
	"github.com/KaramelBytes/tabkit-cli/internal/transform"
	"github.com/spf13/cobra"
)

var (
	rpMissing    string
	rpOutputFile string
	rpOutputType string
)

var replaceCmd = &cobra.Command{
	Use:   "replace <mean|median> <all|class> <dataset>",
	Short: "Fill missing values with the mean or median of other values",
	Long: `Replace every missing entry with the mean or median of the non-missing values
of its column, computed over all rows ("all") or over the rows sharing the
entry's class label ("class"). Only columns with missing entries are changed.
The median of an even number of values is the lower of the two middle values.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := transform.ParseStatistic(args[0])
		if err != nil {
			return err
		}
		scope, err := transform.ParseScope(args[1])
		if err != nil {
			return err
		}
		path := args[2]
		format, err := outputFormat(rpOutputType)
		if err != nil {
			return err
		}
		sentinel := rpMissing
		if !cmd.Flags().Changed("missing-character") {
			sentinel = settings().ReplaceMissingCharacter
		}

		d, err := loadDataset(path)
		if err != nil {
			return err
		}
		done, err := transform.ImputeColumns(d, st, scope, sentinel, settings().ClassColumn)
		if err != nil {
			return err
		}
		for _, imp := range done {
			for _, b := range imp.Buckets {
				debugf("%s: %s of bucket %s (n=%d) = %s", imp.Column, st, b.Label, b.Size, b.Value)
			}
			debugf("%s: filled %d entries", imp.Column, imp.Filled)
		}
		return writeDataset(cmd, d, format, rpOutputFile)
	},
}

func init() {
	rootCmd.AddCommand(replaceCmd)
	replaceCmd.Flags().StringVarP(&rpMissing, "missing-character", "c", "?", "marker used for a missing entry")
	replaceCmd.Flags().StringVarP(&rpOutputFile, "output-file", "o", "", "file to store the result (default: stdout)")
	replaceCmd.Flags().StringVarP(&rpOutputType, "output-type", "t", "", "output format: csv | arff (default csv)")
}
