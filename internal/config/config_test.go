package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/muurk/daikinbridge/internal/aircon"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "daikinbridge") {
		t.Errorf("GetConfigDir() = %v, should contain 'daikinbridge'", configDir)
	}

	switch runtime.GOOS {
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(tmpDir, "daikinbridge"); configDir != want {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("Default().Version = %v, want 1", cfg.Version)
	}
	if cfg.Host != "http://localhost" {
		t.Errorf("Default().Host = %q, want %q", cfg.Host, "http://localhost")
	}
	if cfg.Name != "test" {
		t.Errorf("Default().Name = %q, want %q", cfg.Name, "test")
	}
	if cfg.CoolingHeatingThreshold != 25 {
		t.Errorf("Default().CoolingHeatingThreshold = %v, want 25", cfg.CoolingHeatingThreshold)
	}
	if cfg.Timeout != 10*time.Second || cfg.Retries != 2 {
		t.Errorf("Default() timeout/retries = %s/%d, want 10s/2", cfg.Timeout, cfg.Retries)
	}
	if cfg.MissingValue != aircon.MissingEmpty {
		t.Errorf("Default().MissingValue = %q, want empty", cfg.MissingValue)
	}
	if cfg.Bridge == nil || cfg.Bridge.Pin != DefaultPin {
		t.Errorf("Default().Bridge = %+v, want pin %s", cfg.Bridge, DefaultPin)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Load() of missing file should return defaults, got host %q", cfg.Host)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `host: 192.168.1.20
cooling_heating_threshold: 23.5
timeout: 3s
bridge:
  port: "51826"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Host != "192.168.1.20" {
		t.Errorf("Host = %q, want 192.168.1.20", cfg.Host)
	}
	if cfg.CoolingHeatingThreshold != 23.5 {
		t.Errorf("CoolingHeatingThreshold = %v, want 23.5", cfg.CoolingHeatingThreshold)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.Timeout)
	}
	if cfg.Name != "test" || cfg.Retries != DefaultRetries {
		t.Errorf("unset fields should keep defaults, got name=%q retries=%d", cfg.Name, cfg.Retries)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, CurrentVersion)
	}
	if cfg.Bridge.Port != "51826" || cfg.Bridge.Pin != DefaultPin {
		t.Errorf("Bridge = %+v, want port 51826 with default pin", cfg.Bridge)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "host: [unterminated"},
		{"wrong version", "version: 7\n"},
		{"bad marker", "missing_value: null-ish\n"},
		{"bad pin", "bridge:\n  pin: \"1234\"\n"},
		{"negative retries", "retries: -1\n"},
		{"zero threshold", "cooling_heating_threshold: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load() should fail for %q", tt.content)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Host = "10.0.0.5"
	cfg.Name = "Bedroom"
	cfg.CoolingHeatingThreshold = 22
	cfg.MissingValue = aircon.MissingUndefined
	cfg.Bridge.StoragePath = "/var/lib/daikin"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away after Save()")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# Daikin bridge configuration") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Host != "10.0.0.5" || loaded.Name != "Bedroom" || loaded.CoolingHeatingThreshold != 22 {
		t.Errorf("Load() = %+v, want saved values", loaded)
	}
	if loaded.MissingValue != aircon.MissingUndefined {
		t.Errorf("MissingValue = %q, want %q", loaded.MissingValue, aircon.MissingUndefined)
	}
	if loaded.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", loaded.Timeout, DefaultTimeout)
	}
	if loaded.Bridge.StoragePath != "/var/lib/daikin" {
		t.Errorf("Bridge.StoragePath = %q", loaded.Bridge.StoragePath)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if _, err := CreateDefaultConfig(false); err == nil {
		t.Error("CreateDefaultConfig() should refuse to overwrite")
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("CreateDefaultConfig(force) error = %v", err)
	}
}

func TestBridgeStoragePath(t *testing.T) {
	cfg := Default()
	cfg.Bridge.StoragePath = "/tmp/hap"

	path, err := cfg.BridgeStoragePath()
	if err != nil || path != "/tmp/hap" {
		t.Errorf("BridgeStoragePath() = (%q, %v), want /tmp/hap", path, err)
	}

	cfg.Bridge.StoragePath = ""
	path, err = cfg.BridgeStoragePath()
	if err != nil {
		t.Fatalf("BridgeStoragePath() error = %v", err)
	}
	if filepath.Base(path) != "hap" {
		t.Errorf("BridgeStoragePath() = %q, want a hap directory", path)
	}
}
