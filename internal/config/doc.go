// Package config provides user configuration management for the Daikin bridge.
//
// This package manages a YAML configuration file holding the adapter address,
// the accessory name, the cooling/heating threshold and the HomeKit bridge
// settings. The configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/daikinbridge/config.yaml or $HOME/.config/daikinbridge/config.yaml
//   - macOS: $HOME/.config/daikinbridge/config.yaml
//   - Windows: %LOCALAPPDATA%\daikinbridge\config.yaml
//
// # Usage Example
//
//	cfg, err := config.LoadDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg.Host = "192.168.1.20"
//	cfg.CoolingHeatingThreshold = 24
//
//	// Save changes atomically
//	if err := cfg.Save(path); err != nil {
//	    log.Fatal(err)
//	}
//
// # Defaults
//
// A missing file, or a field missing from the file, takes the value from
// Default(): host http://localhost, name "test", threshold 25°C, a 10s
// timeout with 2 retries, and an empty missing-key marker.
package config
