package main

import (
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/viper"

	"git.solver4all.com/azaryc2s/mkp/logging"
)

// Output formats of the solver.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const envPrefix = "MKP"

// Config holds the settings of one solver run. Values are layered: defaults, then the
// config file, then MKP_* environment variables, then flags given on the command line.
type Config struct {
	Input       string `mapstructure:"input"`
	Random      int    `mapstructure:"random"`
	Improve     int    `mapstructure:"improve"`
	Workers     int    `mapstructure:"workers"`
	Seed        int64  `mapstructure:"seed"`
	Output      string `mapstructure:"output"`
	Format      string `mapstructure:"format"`
	MetricsFile string `mapstructure:"metrics-file"`
	LogLevel    string `mapstructure:"log-level"`
	System      bool   `mapstructure:"system"`
}

var defaults = map[string]interface{}{
	"input":        "input.txt",
	"random":       10,
	"improve":      1,
	"workers":      0,
	"seed":         0,
	"output":       "",
	"format":       FormatText,
	"metrics-file": "",
	"log-level":    "info",
	"system":       false,
}

// loadConfig merges the layers. file may be empty, flags holds only the flags that
// were set explicitly.
func loadConfig(file string, flags map[string]interface{}) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "reading config %s", file)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, value := range flags {
		v.Set(key, value)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Annotate(err, "decoding config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Input == "" {
		return errors.NotValidf("empty input path")
	}
	if cfg.Random < 0 {
		return errors.NotValidf("random runs %d", cfg.Random)
	}
	if cfg.Improve < 0 {
		return errors.NotValidf("improvement passes %d", cfg.Improve)
	}
	if cfg.Workers < 0 {
		return errors.NotValidf("worker count %d", cfg.Workers)
	}
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.NotValidf("output format %q", cfg.Format)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Trace(err)
	}
	return nil
}
