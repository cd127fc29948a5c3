package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/tabkit-cli/internal/config"
	"github.com/KaramelBytes/tabkit-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set tabkit defaults",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := settings()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "forget_missing_character: %s\n", c.ForgetMissingCharacter)
		fmt.Fprintf(out, "replace_missing_character: %s\n", c.ReplaceMissingCharacter)
		fmt.Fprintf(out, "output_type: %s\n", c.OutputType)
		fmt.Fprintf(out, "class_column: %s\n", c.ClassColumn)
		fmt.Fprintf(out, "subsample_percent: %g\n", c.SubsamplePercent)
		fmt.Fprintf(out, "strict_rows: %t\n", c.StrictRows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "forget_missing_character":
			cfg.ForgetMissingCharacter = val
		case "replace_missing_character":
			cfg.ReplaceMissingCharacter = val
		case "output_type":
			f, err := dataset.ParseFormat(val)
			if err != nil {
				return err
			}
			cfg.OutputType = f.String()
		case "class_column":
			if val == "" {
				return fmt.Errorf("class_column cannot be empty")
			}
			cfg.ClassColumn = val
		case "subsample_percent":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for subsample_percent: %w", err)
			}
			if _, err := percentToFraction("subsample_percent", f); err != nil {
				return err
			}
			cfg.SubsamplePercent = f
		case "strict_rows":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for strict_rows: %w", err)
			}
			cfg.StrictRows = b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		okf("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
