// Daikin-bridge publishes a Daikin air conditioner as a HomeKit accessory.
//
// The accessory carries a HeaterCooler service and a HumiditySensor service.
// Characteristic reads and writes are forwarded to the unit's wireless
// adapter over its local HTTP interface.
//
// Usage:
//
//	daikin-bridge [flags]
//
// Pair it from the Home app with the setup code printed at startup.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brutella/hap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/daikinbridge/internal/accessory"
	"github.com/muurk/daikinbridge/internal/config"
	"github.com/muurk/daikinbridge/internal/discovery"
	"github.com/muurk/daikinbridge/internal/logging"
	"github.com/muurk/daikinbridge/internal/ui"
	"github.com/muurk/daikinbridge/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	configPath   string
	pinFlag      string
	storageFlag  string
	portFlag     string
	deviceFlag   string
	pollInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "daikin-bridge",
	Short: "HomeKit bridge for Daikin air conditioners",
	Long: `Publish a Daikin air conditioner as a HomeKit accessory.

Settings are read from the config file (see 'daikinctl config init').
Pairing data is kept in the storage directory; delete it to unpair.`,
	Example: `  # Run with the default config file
  daikin-bridge

  # Use a specific setup code and storage directory
  daikin-bridge --pin 12344321 --storage /var/lib/daikin-bridge

  # Find the adapter advertised as DaikinAP12345 instead of using the configured host
  daikin-bridge --device 12345`,
	Version:      version.Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBridge,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.Flags().StringVar(&pinFlag, "pin", "", "8-digit HomeKit setup code")
	rootCmd.Flags().StringVar(&storageFlag, "storage", "", "Pairing data directory")
	rootCmd.Flags().StringVar(&portFlag, "port", "", "Listen port (default: any free port)")
	rootCmd.Flags().StringVar(&deviceFlag, "device", "", "Discover the adapter with this ID over mDNS instead of using the configured host")
	rootCmd.Flags().DurationVar(&pollInterval, "poll", 30*time.Second, "How often to refresh characteristic values (0 disables)")
}

// loadConfig reads the config file and applies the bridge flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	if cfg.Bridge == nil {
		cfg.Bridge = config.Default().Bridge
	}
	flags := cmd.Flags()
	if flags.Changed("pin") {
		cfg.Bridge.Pin = pinFlag
	}
	if flags.Changed("storage") {
		cfg.Bridge.StoragePath = storageFlag
	}
	if flags.Changed("port") {
		cfg.Bridge.Port = portFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runBridge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := os.Getenv(logging.LogLevelEnvVar)
	if level == "" {
		level = cfg.LogLevel
	}
	if level == "" {
		level = "info"
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	log := logging.GetLogger()

	if deviceFlag != "" {
		scanner := discovery.NewScanner()
		found, err := scanner.WaitForDeviceWithContext(ctx, deviceFlag)
		if err != nil {
			return fmt.Errorf("failed to discover adapter: %w", err)
		}
		cfg.Host = found.BaseURL()
		log.Info("Discovered adapter", zap.String("id", found.ID), zap.String("host", cfg.Host))
	}

	client := cfg.NewClient(log)
	ctrl := cfg.NewController(client, log)

	// Serial and firmware are cosmetic; a failed lookup is not fatal
	info := accessory.Info{Model: "BRP069"}
	adapter := &discovery.Device{}
	if err := adapter.Identify(ctx, client); err != nil {
		log.Warn("Could not read adapter info", zap.Error(err))
	} else {
		info.SerialNumber = adapter.MAC
		info.Firmware = adapter.Firmware
	}

	ac := accessory.New(ctrl, info, log)

	storagePath, err := cfg.BridgeStoragePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(storagePath, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	server, err := hap.NewServer(hap.NewFsStore(storagePath), ac.A)
	if err != nil {
		return fmt.Errorf("failed to create HomeKit server: %w", err)
	}
	server.Pin = cfg.Bridge.Pin
	if cfg.Bridge.Port != "" {
		server.Addr = ":" + cfg.Bridge.Port
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintHeader("HomeKit Bridge", "daikin-bridge",
		ui.Param{Key: "Accessory", Value: ctrl.Name()},
		ui.Param{Key: "Adapter", Value: ctrl.Host()},
		ui.Param{Key: "Setup code", Value: formatPin(cfg.Bridge.Pin)},
		ui.Param{Key: "Storage", Value: storagePath},
	)

	if pollInterval > 0 {
		go poll(ctx, ac, pollInterval, log)
	}

	log.Info("Starting HomeKit server", zap.String("accessory", ctrl.Name()), zap.String("host", ctrl.Host()))
	if err := server.ListenAndServe(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("HomeKit server stopped: %w", err)
	}
	return nil
}

// poll refreshes the accessory until ctx is done
func poll(ctx context.Context, ac *accessory.AirConditioner, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ac.Refresh(ctx); err != nil && ctx.Err() == nil {
			log.Warn("Refresh failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// formatPin renders a setup code the way the Home app shows it (123-45-678)
func formatPin(pin string) string {
	if len(pin) != 8 {
		return pin
	}
	return pin[:3] + "-" + pin[3:5] + "-" + pin[5:]
}
