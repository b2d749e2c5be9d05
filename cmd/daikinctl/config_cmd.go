package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/daikinbridge/internal/config"
	"github.com/muurk/daikinbridge/internal/ui"
)

var forceInit bool

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file without asking")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Long: `Write a configuration file with default values.

Flags given on the command line (--host, --threshold, --timeout) are stored
in the new file.`,
	Example: `  daikinctl config init --host 192.168.1.20 --threshold 24`,
	Args:    cobra.NoArgs,
	RunE:    runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Config file exists",
			[]string{path, "Its current contents will be replaced"}, "Overwrite?") {
			return nil
		}
	}

	cfg := config.Default()
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = hostFlag
	}
	if flags.Changed("threshold") {
		cfg.CoolingHeatingThreshold = thresholdFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration written",
		ui.Param{Key: "Path", Value: path},
		ui.Param{Key: "Host", Value: cfg.Host},
	)
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if outputFormat == formatJSON {
			return printJSON(cmd.OutOrStdout(), cfg)
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
