// Package config loads the eac2txf settings.
//
// Settings come from, in increasing order of precedence: defaults, an optional
// YAML file, and EAC2TXF_* environment variables.
package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables, e.g. EAC2TXF_PDFTOTEXT.
const EnvPrefix = "EAC2TXF"

// Config holds the eac2txf settings.
type Config struct {
	// Pdftotext is the path to the pdftotext executable, searched for if empty.
	Pdftotext string `yaml:"pdftotext" envconfig:"PDFTOTEXT"`
	// Attribution is the program name written in the TXF header.
	Attribution string `yaml:"attribution" envconfig:"ATTRIBUTION"`
	// XLSX also writes the records in an Excel workbook.
	XLSX bool `yaml:"xlsx" envconfig:"XLSX"`
	// Verbose enables debug logs.
	Verbose bool `yaml:"verbose" envconfig:"VERBOSE"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{Attribution: "eac2txf"}
}

// Load returns the settings read from the YAML file at path (if not empty) and
// from the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "cannot parse config file %q", path)
		}
	}
	// without default tags, envconfig only sets the variables that are defined.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "cannot load config from env")
	}
	return cfg, nil
}
