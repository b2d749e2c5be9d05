// Package logging provides structured logging for the Daikin bridge tools.
//
// This package wraps zap with the small set of helpers the CLI, the bridge
// and the transport share. Long-lived components (the climate controller,
// the transport client) take a *zap.Logger explicitly; the package-level
// functions exist for command entry points.
//
// # Log Levels
//
//   - Debug: Raw device requests and response bodies
//   - Info: Normalized readings and accepted writes
//   - Warn: Degraded readings (e.g. a non-numeric setpoint)
//   - Error: Rejected writes and transport failures
//
// # Configuration
//
// Logging is silent unless a level is configured, either through the
// config file or the DAIKIN_LOG_LEVEL environment variable:
//
//	log, err := logging.New(cfg.LogLevel)
//	if err != nil {
//	    return err
//	}
//	defer func() { _ = log.Sync() }()
//
// Logs are written to stderr in console format so stdout stays usable for
// command output.
package logging
