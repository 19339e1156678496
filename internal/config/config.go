// Package config manages sheetpick configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// Sheet is the default worksheet name; empty means the first sheet.
	Sheet  string `mapstructure:"sheet"`
	Prompt struct {
		// Plain switches the default prompt to the line-based selector.
		Plain bool `mapstructure:"plain"`
	} `mapstructure:"prompt"`
	Output struct {
		// Suffix is appended to the input base name for the output file.
		Suffix string `mapstructure:"suffix"`
		Color  bool   `mapstructure:"color"`
	} `mapstructure:"output"`
}

// Load reads the configuration from ~/.sheetpick/config.yaml and
// SHEETPICK_* environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetDefault("sheet", "")
	viper.SetDefault("prompt.plain", false)
	viper.SetDefault("output.suffix", "_filtered")
	viper.SetDefault("output.color", true)

	viper.SetEnvPrefix("SHEETPICK")
	viper.AutomaticEnv()

	// Read config file (non-fatal if missing)
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Dir returns the configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sheetpick"
	}
	return filepath.Join(home, ".sheetpick")
}

// Path returns the configuration file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Set writes a single configuration value back to the config file.
func Set(key, value string) error {
	known := map[string]bool{
		"sheet":         true,
		"prompt.plain":  true,
		"output.suffix": true,
		"output.color":  true,
	}
	if !known[key] {
		keys := make([]string, 0, len(known))
		for k := range known {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown config key %q — valid keys: %v", key, keys)
	}

	viper.Set(key, value)

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", Dir(), err)
	}
	if err := viper.WriteConfigAs(Path()); err != nil {
		return fmt.Errorf("could not write %s: %w", Path(), err)
	}
	return nil
}

// Show renders the effective configuration as text.
func Show(cfg *Config) string {
	return fmt.Sprintf(
		"sheet:         %q (empty = first sheet)\nprompt.plain:  %v\noutput.suffix: %q\noutput.color:  %v\n",
		cfg.Sheet, cfg.Prompt.Plain, cfg.Output.Suffix, cfg.Output.Color)
}
