// Package ui provides terminal output components for the daikinctl CLI.
//
// Components use Lipgloss for styling and follow a "render once and exit"
// pattern: they format a result compellingly but never wait for input,
// apart from Confirm.
//
//   - Header: command banner showing operation name and parameters
//   - Result: success, failure and warning boxes with troubleshooting tips
//   - StatusCard: climate snapshot with a humidity gauge
//   - RenderDeviceList: adapters found by discovery
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Climate Status", "daikinctl status",
//	    ui.Param{Key: "Host", Value: host},
//	)
//	p.PrintStatus(ui.NewStatusCard(state))
//
// # Logging Integration
//
// Logging is controlled by the DAIKIN_LOG_LEVEL environment variable. When
// unset or empty, zap logging is silent so only the styled output appears.
package ui
