// Package config loads the optional litgen configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the configuration file looked up in the working
	// directory when no path is given.
	DefaultFile = ".litgen.yaml"
	// DefaultOutput is the name of the generated file in each package.
	DefaultOutput = "lit_generated.go"
)

// Config represents the complete configuration.
type Config struct {
	// Output is the generated file name, relative to each package directory.
	Output string `yaml:"output"`
	// Strict reports missing constructors and methods as errors.
	Strict bool `yaml:"strict"`
	// IncludeTypes limits generation to the listed type names when non-empty.
	IncludeTypes []string `yaml:"includeTypes"`
	// ExcludeTypes skips the listed type names.
	ExcludeTypes []string `yaml:"excludeTypes"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Output: DefaultOutput,
	}
}

// LoadFile loads configuration from a YAML file. Keys missing from the file
// keep their current values; unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var loaded Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&loaded); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	c.merge(&loaded)

	return nil
}

// LoadDefault loads DefaultFile from dir if it exists. It reports whether a
// file was read.
func (c *Config) LoadDefault(dir string) (bool, error) {
	path := filepath.Join(dir, DefaultFile)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err := c.LoadFile(path); err != nil {
		return false, err
	}

	return true, nil
}

func (c *Config) merge(loaded *Config) {
	if loaded.Output != "" {
		c.Output = loaded.Output
	}

	if loaded.Strict {
		c.Strict = true
	}

	if loaded.IncludeTypes != nil {
		c.IncludeTypes = loaded.IncludeTypes
	}

	if loaded.ExcludeTypes != nil {
		c.ExcludeTypes = loaded.ExcludeTypes
	}
}

// ShouldIncludeType checks if a type should be included based on config.
// The exclude list wins over the include list.
func (c *Config) ShouldIncludeType(name string) bool {
	if len(c.IncludeTypes) > 0 && !slices.Contains(c.IncludeTypes, name) {
		return false
	}

	return !slices.Contains(c.ExcludeTypes, name)
}

// Validate checks that the configuration can be used for generation.
func (c *Config) Validate() error {
	var errs []error

	switch {
	case c.Output == "":
		errs = append(errs, errors.New("output: must not be empty"))
	case strings.ContainsAny(c.Output, `/\`):
		errs = append(errs, fmt.Errorf("output %q: must be a file name, not a path", c.Output))
	case !strings.HasSuffix(c.Output, ".go"):
		errs = append(errs, fmt.Errorf("output %q: must end in .go", c.Output))
	case strings.HasSuffix(c.Output, "_test.go"):
		errs = append(errs, fmt.Errorf("output %q: must not be a test file", c.Output))
	case strings.HasPrefix(c.Output, "_") || strings.HasPrefix(c.Output, "."):
		errs = append(errs, fmt.Errorf("output %q: files starting with _ or . are ignored by the go tool", c.Output))
	}

	for _, name := range c.IncludeTypes {
		if slices.Contains(c.ExcludeTypes, name) {
			errs = append(errs, fmt.Errorf("type %s: listed in both includeTypes and excludeTypes", name))
		}
	}

	return errors.Join(errs...)
}
