package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/unspsc/pkg/unspsc"
)

// Config holds all runtime configuration for an unspsc CLI run.
type Config struct {
	DSN        string
	ConfigPath string
	FilePath   string
	LogFormat  string // "text" or "json"
	LogLevel   string
	Activate   bool
	Force      bool

	// From the YAML config file.
	Segments          []string `yaml:"segments"` // subset of registry segments to export/publish
	ExcludeRestricted bool     `yaml:"exclude_restricted"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Segments          []string `yaml:"segments"`
	ExcludeRestricted bool     `yaml:"exclude_restricted"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Segments = yc.Segments
	c.ExcludeRestricted = yc.ExcludeRestricted
	return c.validateSegments()
}

// LoadOptional loads ConfigPath when set and otherwise applies defaults.
func (c *Config) LoadOptional() error {
	if c.ConfigPath == "" {
		return c.validateSegments()
	}
	return c.LoadFromFile(c.ConfigPath)
}

// validateSegments checks that every entry in Segments occurs in the registry.
// If Segments is empty, it defaults to every registry segment.
func (c *Config) validateSegments() error {
	if len(c.Segments) == 0 {
		c.Segments = unspsc.Segments()
		return nil
	}
	for _, seg := range c.Segments {
		if len(unspsc.CodesInSegment(seg)) == 0 {
			return fmt.Errorf("unknown segment %q in config", seg)
		}
	}
	return nil
}

// Selected returns the registry entries chosen by Segments and
// ExcludeRestricted, in registry order.
func (c *Config) Selected() []unspsc.Entry {
	want := make(map[string]bool, len(c.Segments))
	for _, seg := range c.Segments {
		want[seg] = true
	}
	var out []unspsc.Entry
	for _, e := range unspsc.All() {
		code := string(e.Code)
		if len(want) > 0 && !want[unspsc.Segment(code)] {
			continue
		}
		if c.ExcludeRestricted && unspsc.IsRestricted(code) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Validate checks that a file path was given.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	return nil
}

// ValidateReadable checks that FilePath exists.
func (c *Config) ValidateReadable() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithDSN checks the DSN field.
func (c *Config) ValidateWithDSN() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or UNSPSC_DB_URL is required")
	}
	return nil
}
