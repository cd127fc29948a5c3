package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Sentinel written by forget; quoted by default so it survives CSV tools.
	ForgetMissingCharacter string `mapstructure:"forget_missing_character" yaml:"forget_missing_character"`
	// Sentinel recognized by replace and inspect.
	ReplaceMissingCharacter string  `mapstructure:"replace_missing_character" yaml:"replace_missing_character"`
	OutputType              string  `mapstructure:"output_type" yaml:"output_type"`
	ClassColumn             string  `mapstructure:"class_column" yaml:"class_column"`
	SubsamplePercent        float64 `mapstructure:"subsample_percent" yaml:"subsample_percent"`
	// StrictRows rejects data rows whose field count differs from the header.
	StrictRows bool `mapstructure:"strict_rows" yaml:"strict_rows"`
}

// Default returns the built-in configuration.
func Default() *Global {
	return &Global{
		ForgetMissingCharacter:  `"?"`,
		ReplaceMissingCharacter: "?",
		OutputType:              "csv",
		ClassColumn:             "Class",
		SubsamplePercent:        100,
		StrictRows:              true,
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".tabkit"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.tabkit/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TABKIT")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("forget_missing_character", def.ForgetMissingCharacter)
	v.SetDefault("replace_missing_character", def.ReplaceMissingCharacter)
	v.SetDefault("output_type", def.OutputType)
	v.SetDefault("class_column", def.ClassColumn)
	v.SetDefault("subsample_percent", def.SubsamplePercent)
	v.SetDefault("strict_rows", def.StrictRows)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
