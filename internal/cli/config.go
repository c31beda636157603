// SPDX-License-Identifier: MIT

package cli

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/planarity/edgelist"
)

// Config is the YAML configuration file. Command-line flags override it.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	MaxDepth    int    `yaml:"max_depth"`
	MaxVertices int    `yaml:"max_vertices"`
	Format      string `yaml:"format"`
	Strict      bool   `yaml:"strict"`
	Preflight   bool   `yaml:"preflight"`
	Blocks      bool   `yaml:"blocks"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Format:    "auto",
		Preflight: true,
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "unable to read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "unable to parse config %s", path)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("max_depth must be ≥ 0, got %d", c.MaxDepth)
	}
	if c.MaxVertices < 0 {
		return errors.Errorf("max_vertices must be ≥ 0, got %d", c.MaxVertices)
	}
	if _, err := edgelist.ParseFormat(c.Format); err != nil {
		return err
	}

	return nil
}
