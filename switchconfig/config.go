// Package switchconfig declares switch tables as data.
//
// A Config is the YAML form of a string switch: a mapping of case labels
// to results plus an optional default. Parse or Load one, then Build it
// into an evaluatable switch.
//
// Config is data, so default-presence is not known to the compiler. The
// static rule of the core package degrades to a build-time check here:
// Build requires a declared default, BuildPartial requires none, and each
// reports a mismatch as an error. Duplicate case labels cannot occur in a
// Config; the YAML decoder rejects duplicate mapping keys.
package switchconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/envp/stringswitch"
)

// Config declares a switch table over results of type R.
//
// Unlike the core builder, which accepts any label, a Config requires
// labels to be non-blank.
type Config[R any] struct {
	Cases   map[string]R `json:"cases" yaml:"cases"`
	Default *R           `json:"default,omitempty" yaml:"default,omitempty"`
}

// Parse decodes a YAML switch table and validates it.
func Parse[R any](data []byte) (*Config[R], error) {
	var c Config[R]
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &c, nil
}

// Load reads a YAML switch table from a file and parses it.
func Load[R any](path string) (*Config[R], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := Parse[R](data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the table:
// - At least one case or a default must be declared
// - Case labels must be non-blank
func (c *Config[R]) Validate() error {
	if len(c.Cases) == 0 && c.Default == nil {
		return errors.New("at least one case or a default is required")
	}
	for label := range c.Cases {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("blank case label %q", label)
		}
	}
	return nil
}

// Build constructs a defaulted switch from the table. The parameter is
// supplied at evaluation, so the switch may be evaluated repeatedly
// against different inputs. Returns an error if the Config declares no
// default; use BuildPartial for that shape.
func (c *Config[R]) Build() (*stringswitch.Defaulted[R], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	if c.Default == nil {
		return nil, errors.New("build: config declares no default, use BuildPartial")
	}

	sw := stringswitch.New[R]().Default(*c.Default)
	for label, result := range c.Cases {
		sw = sw.When(label, result)
	}
	return sw, nil
}

// BuildPartial constructs a switch without a default from the table; its
// Evaluate reports misses through a second return value. Returns an error
// if the Config declares a default; use Build for that shape.
func (c *Config[R]) BuildPartial() (*stringswitch.Cases[R], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("build partial: %w", err)
	}
	if c.Default != nil {
		return nil, errors.New("build partial: config declares a default, use Build")
	}

	var sw *stringswitch.Cases[R]
	for label, result := range c.Cases {
		if sw == nil {
			sw = stringswitch.New[R]().When(label, result)
		} else {
			sw = sw.When(label, result)
		}
	}
	return sw, nil
}

// Marshal encodes the table back to YAML.
func (c *Config[R]) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
