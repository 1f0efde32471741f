// Package config loads analyzer settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how diagnostics are rendered.
type Format string

const (
	FormatANSI  Format = "ansi"
	FormatHTML  Format = "html"
	FormatPlain Format = "plain"
)

// IsValid reports whether the format is recognised.
func (f Format) IsValid() bool {
	switch f {
	case FormatANSI, FormatHTML, FormatPlain:
		return true
	default:
		return false
	}
}

const DefaultEntryFunction = "main"

// Config holds analyzer settings. Zero-valued fields in a file keep their
// defaults.
type Config struct {
	Debug         bool   `yaml:"debug"`
	DumpScopes    bool   `yaml:"dump_scopes"`
	Format        Format `yaml:"format"`
	EntryFunction string `yaml:"entry_function"`
}

func Default() *Config {
	return &Config{
		Format:        FormatANSI,
		EntryFunction: DefaultEntryFunction,
	}
}

// ValidationError aggregates configuration problems.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (c *Config) Validate() error {
	var errs ValidationError
	if !c.Format.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("format %q must be one of ansi, html, plain", c.Format))
	}
	if !identifier.MatchString(c.EntryFunction) {
		errs.Issues = append(errs.Issues, fmt.Sprintf("entry_function %q is not an identifier", c.EntryFunction))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Load reads a config file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML settings from r over the defaults. Unknown keys are
// rejected. An empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if cfg.Format == "" {
		cfg.Format = FormatANSI
	}
	if cfg.EntryFunction == "" {
		cfg.EntryFunction = DefaultEntryFunction
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
