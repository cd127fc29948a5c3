package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	cfgpkg "github.com/KaramelBytes/tabkit-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	lenient     bool
	classColumn string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tabkit",
	Short: "tabkit: simulate and repair missing data in CSV/ARFF datasets",
	Long: `tabkit transforms tabular datasets stored as CSV or ARFF. It can forget a
share of the values (replacing them with a missing-value marker), fill missing
values with the mean or median of a column or of a class, and shrink a dataset
while keeping its class balance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Let writes to a closed stdout fail with EPIPE instead of killing the process.
	signal.Ignore(syscall.SIGPIPE)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			warnf("output stream closed before all lines were written")
			os.Exit(0)
		}
		errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tabkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "accept data rows with a wrong field count (drop extra fields, pad short rows)")
	rootCmd.PersistentFlags().StringVar(&classColumn, "class-column", "", "name of the class label column (overrides config, default Class)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		warnf("failed to load config: %v", err)
		c = cfgpkg.Default()
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("class-column") && classColumn != "" {
		cfg.ClassColumn = classColumn
	}
	if f.Changed("lenient") {
		cfg.StrictRows = !lenient
	}
}

// settings returns the loaded configuration, or defaults when none was loaded.
func settings() *cfgpkg.Global {
	if cfg == nil {
		return cfgpkg.Default()
	}
	return cfg
}
