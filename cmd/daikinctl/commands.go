package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/daikinbridge/internal/aircon"
	"github.com/muurk/daikinbridge/internal/climate"
	"github.com/muurk/daikinbridge/internal/discovery"
	"github.com/muurk/daikinbridge/internal/transport"
	"github.com/muurk/daikinbridge/internal/ui"
)

var scanTimeout time.Duration

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(coolCmd)
	rootCmd.AddCommand(heatCmd)
	rootCmd.AddCommand(rawCmd)

	scanCmd.Flags().DurationVar(&scanTimeout, "scan-timeout", 5*time.Second, "How long to listen for adapters")
}

// scanCmd discovers adapters on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for Daikin adapters on the network",
	Long: `Scan for Daikin wireless adapters using mDNS.

Each adapter found is asked for its basic info so the room name and
firmware version can be shown.`,
	Example: `  # Scan for 5 seconds (default)
  daikinctl scan

  # Longer scan for slow networks
  daikinctl scan --scan-timeout 15s`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := validateFormat(); err != nil {
		return err
	}
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	devices, err := discovery.ScanForDevices(ctx, scanTimeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	identifyDevices(ctx, devices, log)

	if outputFormat == formatJSON {
		return printJSON(cmd.OutOrStdout(), devices)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Println(ui.RenderDeviceList(devices, p.Width()))
	return nil
}

// identifyDevices reads basic_info from each adapter so its name and
// firmware can be listed. An adapter that does not answer keeps only its
// mDNS details.
func identifyDevices(ctx context.Context, devices []*discovery.Device, log *zap.Logger) {
	for _, device := range devices {
		client := transport.NewClient(device.BaseURL())
		client.SetTimeout(2 * time.Second)
		client.MaxRetries = 0
		client.SetLogger(log)
		if err := device.Identify(ctx, client); err != nil {
			log.Debug("Could not identify adapter",
				zap.String("id", device.ID),
				zap.String("base_url", device.BaseURL()),
				zap.Error(err),
			)
		}
	}
}

// statusCmd shows the unit's state
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the air conditioner's state",
	Example: `  daikinctl status --host 192.168.1.20
  daikinctl status --format json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := validateFormat(); err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	state, err := s.ctrl.State(cmd.Context())
	if err != nil {
		return fail(cmd, "Could not read state", err)
	}

	if outputFormat == formatJSON {
		return printJSON(cmd.OutOrStdout(), newStateOutput(state))
	}

	if ui.IsTerminal() {
		return ui.RenderOnce(ui.NewStatusCard(state).Render())
	}
	ui.NewPrinter(cmd.OutOrStdout()).PrintStatus(ui.NewStatusCard(state))
	return nil
}

// powerCmd switches the unit on or off
var powerCmd = &cobra.Command{
	Use:   "power <on|off>",
	Short: "Switch the air conditioner on or off",
	Long: `Switch the air conditioner on or off.

The operating mode sent with the change is picked from the room temperature:
within 2°C of the threshold selects auto, warmer selects cool, colder
selects heat.`,
	Example: `  daikinctl power on
  daikinctl power on --threshold 23`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runPower,
}

func runPower(cmd *cobra.Command, args []string) error {
	power, err := climate.ParsePowerState(args[0])
	if err != nil {
		return err
	}
	return apply(cmd, "Power "+strings.ToLower(args[0]), func(ctx context.Context, c *climate.Controller) error {
		return c.SetPower(ctx, power)
	})
}

// modeCmd changes the operating mode
var modeCmd = &cobra.Command{
	Use:       "mode <auto|cool|heat>",
	Short:     "Set the operating mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"auto", "cool", "heat"},
	RunE:      runMode,
}

func runMode(cmd *cobra.Command, args []string) error {
	mode, err := climate.ParseTargetMode(args[0])
	if err != nil {
		return err
	}
	return apply(cmd, "Mode set to "+ui.TargetModeLabel(mode), func(ctx context.Context, c *climate.Controller) error {
		return c.SetTargetMode(ctx, mode)
	})
}

// coolCmd powers on in cool mode at a setpoint
var coolCmd = &cobra.Command{
	Use:     "cool <temperature>",
	Short:   "Cool to a setpoint (powers the unit on)",
	Example: `  daikinctl cool 26`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		temp, err := parseTemperature(args[0])
		if err != nil {
			return err
		}
		return apply(cmd, "Cooling to "+climate.FormatTemperature(temp)+"°C", func(ctx context.Context, c *climate.Controller) error {
			return c.SetCoolingTemperature(ctx, temp)
		})
	},
}

// heatCmd powers on in heat mode at a setpoint
var heatCmd = &cobra.Command{
	Use:     "heat <temperature>",
	Short:   "Heat to a setpoint (powers the unit on)",
	Example: `  daikinctl heat 21.5`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		temp, err := parseTemperature(args[0])
		if err != nil {
			return err
		}
		return apply(cmd, "Heating to "+climate.FormatTemperature(temp)+"°C", func(ctx context.Context, c *climate.Controller) error {
			return c.SetHeatingTemperature(ctx, temp)
		})
	},
}

// parseTemperature accepts a positive decimal setpoint
func parseTemperature(arg string) (float64, error) {
	temp, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid temperature %q: %w", arg, err)
	}
	if temp <= 0 || temp > 50 {
		return 0, fmt.Errorf("temperature %v out of range (0-50°C)", temp)
	}
	return temp, nil
}

// apply runs a write and reports the outcome
func apply(cmd *cobra.Command, title string, write func(context.Context, *climate.Controller) error) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if err := write(cmd.Context(), s.ctrl); err != nil {
		return fail(cmd, title, err)
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess(title,
		ui.Param{Key: "Adapter", Value: s.ctrl.Host()},
		ui.Param{Key: "Accessory", Value: s.ctrl.Name()},
	)
	return nil
}

// rawCmd fetches an adapter path and prints the decoded parameters
var rawCmd = &cobra.Command{
	Use:   "raw <path>",
	Short: "Fetch an adapter path and print its parameters",
	Long: `Fetch an adapter path and print the decoded key=value parameters.

Useful for inspecting what a particular adapter firmware reports.`,
	Example: `  daikinctl raw /aircon/get_control_info
  daikinctl raw /common/basic_info --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runRaw,
}

func runRaw(cmd *cobra.Command, args []string) error {
	if err := validateFormat(); err != nil {
		return err
	}
	path := args[0]
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with /, got %q", path)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	body, err := s.client.Get(cmd.Context(), path)
	if err != nil {
		return fail(cmd, "Request failed", err)
	}
	params := aircon.ParseResponse(body)

	if outputFormat == formatJSON {
		return printJSON(cmd.OutOrStdout(), params.Map())
	}

	out := cmd.OutOrStdout()
	keys := params.Keys()
	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}
	for _, k := range keys {
		fmt.Fprintf(out, "%-*s  %s\n", width, k, params.Get(k))
	}
	return nil
}
