package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/daikinbridge/internal/climate"
	"github.com/muurk/daikinbridge/internal/discovery"
)

// gaugeWidth is the width of the humidity bar
const gaugeWidth = 30

// StatusCard renders a climate snapshot
type StatusCard struct {
	State *climate.State
	Width int
	gauge progress.Model
}

// NewStatusCard creates a card for s
func NewStatusCard(s *climate.State) *StatusCard {
	return &StatusCard{
		State: s,
		Width: GetTerminalWidth(),
		gauge: progress.New(
			progress.WithSolidFill(string(CoolColor)),
			progress.WithWidth(gaugeWidth),
			progress.WithoutPercentage(),
		),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (c *StatusCard) SetWidth(width int) *StatusCard {
	c.Width = width
	return c
}

// Render returns the styled card
func (c *StatusCard) Render() string {
	width := c.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	s := c.State

	title := HeaderTitleStyle.Render(strings.ToUpper(s.Name))
	host := HeaderCommandStyle.Render(s.Host)

	rows := []string{
		row("Power", powerBadge(s.Power)),
		row("Current", currentModeBadge(s.CurrentMode)),
		row("Target", TargetModeLabel(s.TargetMode)),
		row("Room", FormatReading(s.CurrentTemperature, "°C")),
		row("Setpoint", FormatSetpoint(s.ThresholdTemperature)),
		row("Humidity", c.humidity(s.Humidity)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		host,
		"  "+RenderHorizontalDivider(width-6, "─"),
		strings.Join(rows, "\n"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// String implements fmt.Stringer
func (c *StatusCard) String() string {
	return c.Render()
}

func (c *StatusCard) humidity(h float64) string {
	if math.IsNaN(h) {
		return FormatReading(h, "%")
	}
	return c.gauge.ViewAs(HumidityPercent(h)) + " " + FormatReading(h, "%")
}

func row(key, value string) string {
	return ResultKeyStyle.Render("  "+key+":") + " " + value
}

// HumidityPercent clamps a relative humidity reading to the gauge range 0..1
func HumidityPercent(h float64) float64 {
	switch {
	case math.IsNaN(h) || h <= 0:
		return 0
	case h >= 100:
		return 1
	default:
		return h / 100
	}
}

// FormatReading renders a sensor value, or "n/a" when the adapter gave none
func FormatReading(v float64, unit string) string {
	if math.IsNaN(v) {
		return lipgloss.NewStyle().Foreground(MutedColor).Render("n/a")
	}
	return fmt.Sprintf("%s%s", climate.FormatTemperature(v), unit)
}

// FormatSetpoint renders the threshold; 0 means the current mode has none
func FormatSetpoint(v float64) string {
	if v == 0 {
		return lipgloss.NewStyle().Foreground(MutedColor).Render("none")
	}
	return FormatReading(v, "°C")
}

func powerBadge(p climate.PowerState) string {
	if p == climate.PowerActive {
		return lipgloss.NewStyle().Foreground(SuccessColor).Render(ActiveMarker + " on")
	}
	return lipgloss.NewStyle().Foreground(MutedColor).Render(IdleMarker + " off")
}

func currentModeBadge(m climate.CurrentMode) string {
	switch m {
	case climate.CurrentCooling:
		return lipgloss.NewStyle().Foreground(CoolColor).Render("cooling")
	case climate.CurrentHeating:
		return lipgloss.NewStyle().Foreground(WarningColor).Render("heating")
	case climate.CurrentIdle:
		return ResultValueStyle.Render("idle")
	default:
		return lipgloss.NewStyle().Foreground(MutedColor).Render("inactive")
	}
}

// TargetModeLabel returns the lower-case name of a target mode
func TargetModeLabel(m climate.TargetMode) string {
	return strings.ToLower(m.String())
}

// RenderDeviceList renders discovered adapters, one per line
func RenderDeviceList(devices []*discovery.Device, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if len(devices) == 0 {
		return NewWarningResult("No adapters found",
			Param{Key: "Hint", Value: "pass --host if the adapter does not answer mDNS"},
		).SetWidth(width).Render()
	}

	lines := make([]string, 0, len(devices))
	for _, d := range devices {
		name := d.Name
		if name == "" {
			name = d.Hostname
		}
		line := fmt.Sprintf("%s %-20s %s", ActiveMarker, name, d.BaseURL())
		if d.Firmware != "" {
			line += lipgloss.NewStyle().Foreground(MutedColor).Render("  fw " + d.Firmware)
		}
		lines = append(lines, "  "+line)
	}

	title := SuccessTitleStyle.Render(fmt.Sprintf("   %s  Found %d adapter(s)", SuccessMarker, len(devices)))
	return boxStyle(width, SuccessColor).Render(strings.Join(append([]string{"", title, ""}, append(lines, "")...), "\n"))
}
