package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/techlens/provider-lab/internal/config"
)

func TestServerConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.ServerConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q", cfg.Host, "0.0.0.0")
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}

	if cfg.ReadTimeout != "15s" {
		t.Errorf("ReadTimeout = %q, want %q", cfg.ReadTimeout, "15s")
	}

	if cfg.MaxBodySize != "1MB" {
		t.Errorf("MaxBodySize = %q, want %q", cfg.MaxBodySize, "1MB")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := &config.ServerConfig{Host: "localhost", Port: 9090}

	if got := cfg.Addr(); got != "localhost:9090" {
		t.Errorf("Addr() = %q, want %q", got, "localhost:9090")
	}
}

func TestServerConfig_Durations(t *testing.T) {
	cfg := &config.ServerConfig{
		ReadTimeout:     "10s",
		WriteTimeout:    "20s",
		IdleTimeout:     "1m",
		ShutdownTimeout: "5s",
	}

	tests := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"read", cfg.ReadTimeoutDuration(), 10 * time.Second},
		{"write", cfg.WriteTimeoutDuration(), 20 * time.Second},
		{"idle", cfg.IdleTimeoutDuration(), time.Minute},
		{"shutdown", cfg.ShutdownTimeoutDuration(), 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("duration = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestServerConfig_MaxBodyBytes(t *testing.T) {
	tests := []struct {
		size string
		want int64
	}{
		{"1MB", 1000000},
		{"512KB", 512000},
		{"100B", 100},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			cfg := &config.ServerConfig{MaxBodySize: tt.size}
			if got := cfg.MaxBodyBytes(); got != tt.want {
				t.Errorf("MaxBodyBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServerConfig_Finalize_EnvOverrides(t *testing.T) {
	os.Setenv(config.EnvServerPort, "9999")
	os.Setenv(config.EnvServerReadTimeout, "45s")
	defer func() {
		os.Unsetenv(config.EnvServerPort)
		os.Unsetenv(config.EnvServerReadTimeout)
	}()

	cfg := &config.ServerConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999 (env override)", cfg.Port)
	}

	if cfg.ReadTimeout != "45s" {
		t.Errorf("ReadTimeout = %q, want %q (env override)", cfg.ReadTimeout, "45s")
	}
}

func TestServerConfig_Finalize_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ServerConfig
	}{
		{"invalid port", config.ServerConfig{Port: 70000}},
		{"invalid read timeout", config.ServerConfig{ReadTimeout: "soon"}},
		{"invalid body size", config.ServerConfig{MaxBodySize: "huge"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() succeeded, want error")
			}
		})
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: "15s"}
	overlay := &config.ServerConfig{Port: 9090}

	base.Merge(overlay)

	if base.Port != 9090 {
		t.Errorf("Port = %d, want 9090 (should merge)", base.Port)
	}

	if base.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q (should not change)", base.Host, "0.0.0.0")
	}

	if base.ReadTimeout != "15s" {
		t.Errorf("ReadTimeout = %q, want %q (should not change)", base.ReadTimeout, "15s")
	}
}
