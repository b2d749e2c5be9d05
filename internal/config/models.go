package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/muurk/daikinbridge/internal/aircon"
	"github.com/muurk/daikinbridge/internal/climate"
)

// CurrentVersion is the config file format version
const CurrentVersion = 1

// Defaults applied when the file or a field is absent
const (
	DefaultHost    = "http://localhost"
	DefaultTimeout = 10 * time.Second
	DefaultRetries = 2
	DefaultPin     = "00102003"
)

var pinPattern = regexp.MustCompile(`^[0-9]{8}$`)

// Config represents the entire user configuration file
type Config struct {
	Version                 int           `yaml:"version"`
	Host                    string        `yaml:"host"`                      // Adapter address, scheme optional
	Name                    string        `yaml:"name"`                      // Accessory display name
	CoolingHeatingThreshold float64       `yaml:"cooling_heating_threshold"` // °C, used when power is switched
	LogLevel                string        `yaml:"log_level,omitempty"`       // Empty disables logging
	Timeout                 time.Duration `yaml:"timeout"`                   // Per-request HTTP timeout
	Retries                 int           `yaml:"retries"`                   // Retries after the first attempt
	MissingValue            string        `yaml:"missing_value"`             // Marker for unreported write keys
	Bridge                  *Bridge       `yaml:"bridge,omitempty"`
}

// Bridge holds HomeKit bridge settings
type Bridge struct {
	Pin         string `yaml:"pin"`                    // 8-digit setup code
	StoragePath string `yaml:"storage_path,omitempty"` // Pairing data directory
	Port        string `yaml:"port,omitempty"`         // Listen port, empty for any
}

// Default returns a Config with every field at its default
func Default() *Config {
	return &Config{
		Version:                 CurrentVersion,
		Host:                    DefaultHost,
		Name:                    climate.DefaultName,
		CoolingHeatingThreshold: climate.DefaultThreshold,
		Timeout:                 DefaultTimeout,
		Retries:                 DefaultRetries,
		MissingValue:            aircon.MissingEmpty,
		Bridge: &Bridge{
			Pin: DefaultPin,
		},
	}
}

// Validate checks field values
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("host must not be empty")
	}
	if c.CoolingHeatingThreshold <= 0 {
		return fmt.Errorf("cooling_heating_threshold must be positive, got %v", c.CoolingHeatingThreshold)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}
	if c.MissingValue != aircon.MissingEmpty && c.MissingValue != aircon.MissingUndefined {
		return fmt.Errorf("missing_value must be %q or %q, got %q",
			aircon.MissingEmpty, aircon.MissingUndefined, c.MissingValue)
	}
	if c.Bridge != nil && !pinPattern.MatchString(c.Bridge.Pin) {
		return fmt.Errorf("bridge pin must be 8 digits, got %q", c.Bridge.Pin)
	}
	return nil
}

// BridgeStoragePath returns the pairing data directory, defaulting to
// "hap" under the config directory
func (c *Config) BridgeStoragePath() (string, error) {
	if c.Bridge != nil && c.Bridge.StoragePath != "" {
		return c.Bridge.StoragePath, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hap"), nil
}
