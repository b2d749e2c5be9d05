package climate

import (
	"math"
	"testing"

	"github.com/muurk/daikinbridge/internal/aircon"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name      string
		htemp     float64
		threshold float64
		want      string
	}{
		{"inside band", 25.5, 25, aircon.ModeAuto},
		{"at threshold", 25, 25, aircon.ModeAuto},
		{"just above lower edge", 23.01, 25, aircon.ModeAuto},
		{"just below upper edge", 26.99, 25, aircon.ModeAuto},
		{"well above", 28, 25, aircon.ModeCool},
		{"upper edge", 27, 25, aircon.ModeCool},
		{"well below", 20, 25, aircon.ModeHeat},
		{"lower edge", 23, 25, aircon.ModeHeat},
		{"not a number", math.NaN(), 25, aircon.ModeAuto0},
		{"other threshold", 19, 22, aircon.ModeHeat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectMode(tt.htemp, tt.threshold); got != tt.want {
				t.Errorf("SelectMode(%v, %v) = %q, want %q", tt.htemp, tt.threshold, got, tt.want)
			}
		})
	}
}

// The cool and heat conditions overlap the band; evaluation order decides.
// Every reading inside (T-2, T+2) satisfies both later branches too.
func TestSelectMode_BandWinsOverlap(t *testing.T) {
	threshold := 25.0
	for h := 23.5; h < 27; h += 0.5 {
		if !(h > threshold-2) || !(h < threshold+2) {
			t.Fatalf("test reading %v is outside the band", h)
		}
		if got := SelectMode(h, threshold); got != aircon.ModeAuto {
			t.Errorf("SelectMode(%v, %v) = %q, want %q", h, threshold, got, aircon.ModeAuto)
		}
	}
}

func TestPowerFromDevice(t *testing.T) {
	tests := map[string]PowerState{
		"1":  PowerActive,
		"0":  PowerInactive,
		"":   PowerInactive,
		"on": PowerInactive,
	}
	for pow, want := range tests {
		if got := PowerFromDevice(pow); got != want {
			t.Errorf("PowerFromDevice(%q) = %v, want %v", pow, got, want)
		}
	}
}

func TestDeviceModeFor(t *testing.T) {
	tests := []struct {
		mode   TargetMode
		want   string
		wantOK bool
	}{
		{TargetAuto, aircon.ModeAuto, true},
		{TargetCool, aircon.ModeCool, true},
		{TargetHeat, aircon.ModeHeat, true},
		{TargetMode(7), "", false},
		{TargetMode(-1), "", false},
	}

	for _, tt := range tests {
		got, ok := DeviceModeFor(tt.mode)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("DeviceModeFor(%d) = (%q, %v), want (%q, %v)", tt.mode, got, ok, tt.want, tt.wantOK)
		}
	}
}

// Mapping a target mode to the device and back is stable while powered on
func TestTargetModeRoundTrip(t *testing.T) {
	for _, m := range []TargetMode{TargetAuto, TargetCool, TargetHeat} {
		code, ok := DeviceModeFor(m)
		if !ok {
			t.Fatalf("DeviceModeFor(%v) not ok", m)
		}
		if got := TargetModeFromDevice(aircon.PowerOn, code); got != m {
			t.Errorf("TargetModeFromDevice(1, %q) = %v, want %v", code, got, m)
		}
	}
}

func TestFormatTemperature(t *testing.T) {
	tests := map[float64]string{
		26:    "26",
		26.5:  "26.5",
		18.0:  "18",
		21.25: "21.25",
	}
	for in, want := range tests {
		if got := FormatTemperature(in); got != want {
			t.Errorf("FormatTemperature(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDeviceRejectedError(t *testing.T) {
	err := error(&DeviceRejectedError{Status: "PARAM NG", Path: "/aircon/set_control_info?pow=1"})

	if err.Error() != "PARAM NG" {
		t.Errorf("Error() = %q, want %q", err.Error(), "PARAM NG")
	}
	if !IsDeviceRejected(err) {
		t.Error("IsDeviceRejected() = false, want true")
	}
	if status, ok := RejectedStatus(err); !ok || status != "PARAM NG" {
		t.Errorf("RejectedStatus() = (%q, %v)", status, ok)
	}

	empty := &DeviceRejectedError{}
	if empty.Error() == "" {
		t.Error("Error() with no status should not be empty")
	}

	if _, ok := RejectedStatus(nil); ok {
		t.Error("RejectedStatus(nil) should not be ok")
	}
}

func TestParseTargetMode(t *testing.T) {
	for _, m := range []TargetMode{TargetAuto, TargetCool, TargetHeat} {
		got, err := ParseTargetMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseTargetMode(%q) = (%v, %v), want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseTargetMode("dry"); err == nil {
		t.Error("ParseTargetMode(dry) should fail")
	}
}
