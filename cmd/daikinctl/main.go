// Daikinctl controls a Daikin air conditioner through its wireless adapter.
//
// It reads the unit's state, switches power and mode, sets the cooling or
// heating setpoint, and discovers adapters on the local network. Settings
// come from the config file and can be overridden per invocation with flags.
//
// Usage:
//
//	daikinctl [command] [flags]
//
// See 'daikinctl --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/daikinbridge/internal/logging"
	"github.com/muurk/daikinbridge/internal/version"
)

// errReported marks an error whose failure box was already printed
var errReported = errors.New("reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	logging.Sync()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "daikinctl",
	Short: "Daikin Air Conditioner Control Utility",
	Long: `A command-line utility for Daikin air conditioners with a wireless
LAN adapter (BRP069 and compatible).

Reads the unit's state, switches power and operating mode, and sets the
cooling or heating setpoint over the adapter's local HTTP interface.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "Adapter address, e.g. 192.168.1.20")
	rootCmd.PersistentFlags().Float64Var(&thresholdFlag, "threshold", 0, "Cooling/heating threshold in °C")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Per-request timeout, e.g. 5s")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatDetailed, "Output format (detailed, json)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daikinctl %s\n", version.Full())
	},
}
