// SPDX-License-Identifier: MIT

// Package config loads the factory solver configuration.
//
// Configuration comes from a single file given by the --config flag or the
// FACTORY_CONFIG environment variable. YAML (.yaml, .yml) and JSONC (.json,
// .jsonc: JSON with comments and trailing commas) are accepted. Fields left
// out of the file keep the values from Default; unknown fields are rejected.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/factory/freevar"
	"github.com/katalvlaran/factory/parity"
	"github.com/katalvlaran/factory/presses"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "FACTORY_CONFIG"

// ErrInvalidConfig is returned for unreadable, malformed or invalid
// configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats accepted by Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// Config is the solver configuration.
type Config struct {
	// Strategy is one of auto, reduction, bifurcation, bfs, pb.
	Strategy string `yaml:"strategy" json:"strategy"`

	// Bound is the free-variable bound policy: cap (exact) or residual
	// (heuristic).
	Bound string `yaml:"bound" json:"bound"`

	// MaxButtons caps subset enumeration for the parity engine.
	MaxButtons int `yaml:"max_buttons" json:"max_buttons"`

	// NodeLimit caps free-variable search nodes; 0 means unlimited.
	NodeLimit int `yaml:"node_limit" json:"node_limit"`

	// MaxStates caps breadth-first states; 0 means unlimited.
	MaxStates int `yaml:"max_states" json:"max_states"`

	// Format is the report format: text, json or cbor.
	Format string `yaml:"format" json:"format"`

	// Lights also answers the light-diagram problem.
	Lights bool `yaml:"lights" json:"lights"`

	// LogLevel is a slog level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Strategy:   presses.Auto.String(),
		Bound:      freevar.CapBound.String(),
		MaxButtons: parity.DefaultMaxButtons,
		Format:     FormatText,
		LogLevel:   "info",
	}
}

// Load reads the file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = cfg.decodeYAML(data)
	case ".json", ".jsonc":
		err = cfg.decodeJSONC(data)
	default:
		return nil, fmt.Errorf("%s: unsupported extension %q: %w", path, ext, ErrInvalidConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv loads the file named by FACTORY_CONFIG, or returns Default when
// the variable is unset.
func LoadEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func (c *Config) decodeYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) decodeJSONC(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()

	return dec.Decode(c)
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := presses.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("strategy: %w", err))
	}
	if _, err := freevar.ParseBound(c.Bound); err != nil {
		errs = append(errs, fmt.Errorf("bound: %w", err))
	}
	if c.MaxButtons < 1 || c.MaxButtons > parity.HardMaxButtons {
		errs = append(errs, fmt.Errorf("max_buttons must be in [1,%d], got %d", parity.HardMaxButtons, c.MaxButtons))
	}
	if c.NodeLimit < 0 {
		errs = append(errs, fmt.Errorf("node_limit must be >= 0, got %d", c.NodeLimit))
	}
	if c.MaxStates < 0 {
		errs = append(errs, fmt.Errorf("max_states must be >= 0, got %d", c.MaxStates))
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatCBOR:
	default:
		errs = append(errs, fmt.Errorf("format must be one of text, json, cbor, got %q", c.Format))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}

	return lvl, nil
}

// SolveOptions maps the configuration to presses options.
func (c *Config) SolveOptions() ([]presses.Option, error) {
	strategy, err := presses.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	bound, err := freevar.ParseBound(c.Bound)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return []presses.Option{
		presses.WithStrategy(strategy),
		presses.WithBound(bound),
		presses.WithMaxButtons(c.MaxButtons),
		presses.WithNodeLimit(c.NodeLimit),
		presses.WithMaxStates(c.MaxStates),
		presses.WithLights(c.Lights),
	}, nil
}
