package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the dbgmon configuration
type Config struct {
	Port    string `toml:"port"`
	Baud    int    `toml:"baud"`
	Hex     bool   `toml:"hex"`
	Verbose bool   `toml:"verbose"`
}

// DefaultConfig returns a config matching a typical Arduino serial setup
func DefaultConfig() *Config {
	return &Config{
		Port: "/dev/ttyUSB0",
		Baud: 9600,
	}
}

// Load loads configuration from a TOML file
// If path is empty, returns default config
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Override replaces fields of c with the non-zero fields of o.
// Used to let command line flags win over the file.
func (c *Config) Override(o Config) {
	if o.Port != "" {
		c.Port = o.Port
	}
	if o.Baud != 0 {
		c.Baud = o.Baud
	}
	if o.Hex {
		c.Hex = true
	}
	if o.Verbose {
		c.Verbose = true
	}
}
