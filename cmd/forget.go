package cmd

import (
	"math/rand/v2"
	"time"

	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
	"github.com/KaramelBytes/tabkit-cli/internal/transform"
	"github.com/spf13/cobra"
)

var (
	fgSeed       int64
	fgAttributes string
	fgPercentage float64
	fgMissing    string
	fgOutputFile string
	fgOutputType string
	fgSkipClass  bool
)

var forgetCmd = &cobra.Command{
	Use:   "forget <dataset>",
	Short: "Replace a share of the values with a missing-value marker",
	Long: `Forget a percentage of the values of the selected attributes (all by default)
and replace them with the missing-value marker. Each attribute is forgotten
independently; --seed makes the pattern reproducible.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		fraction, err := percentToFraction("percentage", fgPercentage)
		if err != nil {
			return err
		}
		format, err := outputFormat(fgOutputType)
		if err != nil {
			return err
		}
		sentinel := fgMissing
		if !cmd.Flags().Changed("missing-character") {
			sentinel = settings().ForgetMissingCharacter
		}
		seed := fgSeed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		debugf("seed %d", seed)

		d, err := loadDataset(path)
		if err != nil {
			return err
		}
		attrs := splitList(fgAttributes)
		if fgSkipClass {
			attrs, err = withoutClass(d, attrs, settings().ClassColumn)
			if err != nil {
				return err
			}
		}
		rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		counts, err := transform.ForgetColumns(d, attrs, fraction, sentinel, rng)
		if err != nil {
			return err
		}
		for _, c := range d.Columns {
			if n, ok := counts[c]; ok {
				debugf("%s: %d of %d entries missing", c, n, d.RowCount())
			}
		}
		return writeDataset(cmd, d, format, fgOutputFile)
	},
}

// withoutClass removes the class column from the selection (all columns when empty).
func withoutClass(d *dataset.Dataset, attrs []string, class string) ([]string, error) {
	if !d.HasColumn(class) {
		return nil, &dataset.MissingClassColumnError{Column: class}
	}
	if len(attrs) == 0 {
		attrs = d.Columns
	}
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a != class {
			out = append(out, a)
		}
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(forgetCmd)
	forgetCmd.Flags().Int64VarP(&fgSeed, "seed", "s", 0, "seed for the random number generator")
	forgetCmd.Flags().StringVarP(&fgAttributes, "attributes", "a", "", "comma-separated attributes to forget (default: all)")
	forgetCmd.Flags().Float64VarP(&fgPercentage, "percentage", "p", 0, "percentage of values to forget (0-100)")
	forgetCmd.Flags().StringVarP(&fgMissing, "missing-character", "c", `"?"`, "marker written for a missing entry")
	forgetCmd.Flags().StringVarP(&fgOutputFile, "output-file", "o", "", "file to store the result (default: stdout)")
	forgetCmd.Flags().StringVarP(&fgOutputType, "output-type", "t", "", "output format: csv | arff (default csv)")
	forgetCmd.Flags().BoolVar(&fgSkipClass, "skip-class", false, "never forget values of the class column")
	_ = forgetCmd.MarkFlagRequired("percentage")
}
