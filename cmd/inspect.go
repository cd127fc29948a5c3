package cmd

import (
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/tabkit-cli/internal/analysis"
	"github.com/spf13/cobra"
)

var (
	insMissing    string
	insOutputPath string
	insTopValues  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <dataset>",
	Short: "Summarize columns, missing values and class distribution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		d, err := loadDataset(path)
		if err != nil {
			return err
		}
		opt := analysis.DefaultOptions()
		opt.Sentinel = settings().ReplaceMissingCharacter
		if cmd.Flags().Changed("missing-character") {
			opt.Sentinel = insMissing
		}
		opt.ClassColumn = settings().ClassColumn
		if insTopValues > 0 {
			opt.TopValues = insTopValues
		}
		md := analysis.Summarize(filepath.Base(path), d, opt).Markdown()
		return emit(cmd, insOutputPath, strings.Split(strings.TrimSuffix(md, "\n"), "\n"))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&insMissing, "missing-character", "c", "?", "marker used for a missing entry")
	inspectCmd.Flags().StringVarP(&insOutputPath, "output", "o", "", "optional path to write the summary")
	inspectCmd.Flags().IntVar(&insTopValues, "top-values", 3, "frequent values listed per categorical column")
}
