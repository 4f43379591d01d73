// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the convert command.
const (
	formatText  = "text"
	formatCSV   = "csv"
	formatGonum = "gonum"
)

// Config holds the settings a config file may provide. Command-line flags
// that were set explicitly take precedence.
type Config struct {
	RowNames        string `yaml:"rownames"`
	Format          string `yaml:"format"`
	RetainInteger64 bool   `yaml:"retain_integer64"`
	Verbose         bool   `yaml:"verbose"`
}

func defaultConfig() Config {
	return Config{Format: formatText}
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// applyFlags overrides cfg with every flag the user set on cmd.
func applyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("rownames") {
		cfg.RowNames, _ = flags.GetString("rownames")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("retain-integer64") {
		cfg.RetainInteger64, _ = flags.GetBool("retain-integer64")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
}

// validate rejects settings no command can honor.
func (c Config) validate() error {
	switch c.Format {
	case formatText, formatCSV, formatGonum:
		return nil
	default:
		return errors.Errorf("unknown format %q (want %s, %s or %s)", c.Format, formatText, formatCSV, formatGonum)
	}
}
