package ui

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/muurk/daikinbridge/internal/climate"
	"github.com/muurk/daikinbridge/internal/discovery"
)

func TestHeader_Render(t *testing.T) {
	out := NewHeader("Climate Status", "daikinctl status",
		Param{Key: "Host", Value: "192.168.1.20"},
		Param{Key: "Threshold", Value: "25°C"},
	).SetWidth(80).Render()

	for _, want := range []string{"CLIMATE STATUS", "daikinctl status", "Host:", "192.168.1.20", "Threshold:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Header.Render() missing %q:\n%s", want, out)
		}
	}

	// Params keep their order
	if strings.Index(out, "Host:") > strings.Index(out, "Threshold:") {
		t.Error("Header.Render() reordered params")
	}
}

func TestResult_Render(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Cooling set", Param{Key: "Setpoint", Value: "26°C"}),
			want:   []string{"SUCCESS", "Cooling set", "Setpoint:", "26°C"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Write failed", errors.New("PARAM NG"), []string{"Check the mode"}),
			want:   []string{"FAILED", "Write failed", "Error: PARAM NG", "Troubleshooting:", "Check the mode"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Nothing found").AddDetail("Hint", "use --host"),
			want:   []string{"WARNING", "Nothing found", "Hint:", "use --host"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Render() missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestStatusCard_Render(t *testing.T) {
	state := &climate.State{
		Name:                 "Living Room",
		Host:                 "http://192.168.1.20",
		Power:                climate.PowerActive,
		CurrentMode:          climate.CurrentCooling,
		TargetMode:           climate.TargetCool,
		CurrentTemperature:   24.5,
		ThresholdTemperature: 26,
		Humidity:             45,
	}

	out := NewStatusCard(state).SetWidth(80).Render()
	for _, want := range []string{"LIVING ROOM", "http://192.168.1.20", "on", "cooling", "cool", "24.5°C", "26°C", "45%"} {
		if !strings.Contains(out, want) {
			t.Errorf("StatusCard.Render() missing %q:\n%s", want, out)
		}
	}
}

func TestStatusCard_MissingReadings(t *testing.T) {
	state := &climate.State{
		Name:               "Office",
		CurrentTemperature: math.NaN(),
		Humidity:           math.NaN(),
	}

	out := NewStatusCard(state).SetWidth(80).Render()
	if strings.Count(out, "n/a") != 2 {
		t.Errorf("expected two n/a readings:\n%s", out)
	}
	if !strings.Contains(out, "none") {
		t.Errorf("zero setpoint should render as none:\n%s", out)
	}
	if !strings.Contains(out, "off") || !strings.Contains(out, "inactive") {
		t.Errorf("powered-off unit should render off/inactive:\n%s", out)
	}
}

func TestHumidityPercent(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{45, 0.45},
		{0, 0},
		{-3, 0},
		{100, 1},
		{140, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := HumidityPercent(tt.in); got != tt.want {
			t.Errorf("HumidityPercent(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderDeviceList(t *testing.T) {
	devices := []*discovery.Device{
		{Hostname: "DaikinAP12345.local.", IP: "192.168.1.20", Port: 80, Name: "Living", Firmware: "1_2_51"},
		{Hostname: "DaikinAP67890.local.", IP: "192.168.1.21", Port: 80},
	}

	out := RenderDeviceList(devices, 80)
	for _, want := range []string{"Found 2 adapter(s)", "Living", "http://192.168.1.20:80", "fw 1_2_51", "DaikinAP67890.local."} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderDeviceList() missing %q:\n%s", want, out)
		}
	}

	if empty := RenderDeviceList(nil, 80); !strings.Contains(empty, "No adapters found") {
		t.Errorf("RenderDeviceList(nil) = %s", empty)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(strings.NewReader(tt.input), &out, "Overwrite config", []string{"The existing file is replaced"}, "Continue?")
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Overwrite config") {
			t.Errorf("Confirm(%q) did not print the warning box", tt.input)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuccess("Power on", Param{Key: "Mode", Value: "cool"})
	p.PrintError("Request failed", errors.New("timeout"), nil)

	out := buf.String()
	if !strings.Contains(out, "Power on") || !strings.Contains(out, "Request failed") {
		t.Errorf("Printer output missing content:\n%s", out)
	}
}
