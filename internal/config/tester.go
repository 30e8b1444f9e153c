package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvTesterTimeout overrides the connection probe timeout.
	EnvTesterTimeout = "TESTER_TIMEOUT"
)

// TesterConfig contains connection probe configuration. Every probe is
// bounded by Timeout; a probe that exceeds it is reported as a transport
// failure rather than left pending.
type TesterConfig struct {
	Timeout string `toml:"timeout"`
}

// TimeoutDuration parses and returns the probe timeout as a time.Duration.
func (c *TesterConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the tester configuration.
func (c *TesterConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *TesterConfig) Merge(overlay *TesterConfig) {
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *TesterConfig) loadDefaults() {
	if c.Timeout == "" {
		c.Timeout = "10s"
	}
}

func (c *TesterConfig) loadEnv() {
	if v := os.Getenv(EnvTesterTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *TesterConfig) validate() error {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
