package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/daikinbridge/internal/climate"
	"github.com/muurk/daikinbridge/internal/config"
	"github.com/muurk/daikinbridge/internal/logging"
	"github.com/muurk/daikinbridge/internal/transport"
	"github.com/muurk/daikinbridge/internal/ui"
)

// Output formats
const (
	formatDetailed = "detailed"
	formatJSON     = "json"
)

// Global flags
var (
	configPath    string
	hostFlag      string
	thresholdFlag float64
	timeoutFlag   time.Duration
	outputFormat  string
)

// session bundles what a device command needs
type session struct {
	cfg    *config.Config
	log    *zap.Logger
	client *transport.Client
	ctrl   *climate.Controller
}

// loadConfig reads the config file and applies flags the user set
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
		return nil, err
	}
	return cfg, nil
}

// newLogger honours DAIKIN_LOG_LEVEL before the config's log_level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := os.Getenv(logging.LogLevelEnvVar)
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return nil, err
	}
	return logging.GetLogger(), nil
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	client := cfg.NewClient(log)
	return &session{
		cfg:    cfg,
		log:    log,
		client: client,
		ctrl:   cfg.NewController(client, log),
	}, nil
}

// validateFormat rejects unknown --format values
func validateFormat() error {
	switch outputFormat {
	case formatDetailed, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (use detailed or json)", outputFormat)
	}
}

// fail prints a failure box with troubleshooting tips for err
func fail(cmd *cobra.Command, title string, err error) error {
	tips := transport.TroubleshootingHint(err)
	if status, ok := climate.RejectedStatus(err); ok {
		tips = []string{
			fmt.Sprintf("The adapter answered ret=%s.", status),
			"Some modes do not accept a setpoint; switch mode first",
		}
		err = fmt.Errorf("adapter rejected the change: %w", err)
	}

	ui.NewPrinter(cmd.ErrOrStderr()).PrintError(title, err, tips)
	return fmt.Errorf("%w: %v", errReported, err)
}
