// Package config loads stylekit settings from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/chrisuehlinger/stylekit/css"
)

// Viewport is the size of the simulated browser window.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config holds the settings shared by the CLI and embedding programs.
type Config struct {
	// DefaultTransition is applied to transition entries that name a
	// property only.
	DefaultTransition string   `yaml:"default_transition"`
	Viewport          Viewport `yaml:"viewport"`
	LogLevel          string   `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultTransition: css.DefaultTransition,
		Viewport:          Viewport{Width: 1024, Height: 768},
		LogLevel:          "info",
	}
}

// Parse decodes YAML on top of Default. Fields missing from data keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return errors.Errorf("viewport size must not be negative, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}

// Level returns the logrus level named by LogLevel.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, errors.Wrap(err, "log_level")
	}
	return lvl, nil
}
