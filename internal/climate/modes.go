package climate

import (
	"github.com/muurk/daikinbridge/internal/aircon"
)

// PowerFromDevice maps the "pow" parameter
func PowerFromDevice(pow string) PowerState {
	if pow == aircon.PowerOn {
		return PowerActive
	}
	return PowerInactive
}

// powerCode maps a power state to the "pow" parameter
func powerCode(p PowerState) string {
	if p == PowerActive {
		return aircon.PowerOn
	}
	return aircon.PowerOff
}

// CurrentModeFromDevice maps control info to the current mode.
// Every code maps to a value; unknown codes read as idle.
func CurrentModeFromDevice(pow, mode string) CurrentMode {
	if pow != aircon.PowerOn {
		return CurrentInactive
	}

	switch mode {
	case aircon.ModeAuto0, aircon.ModeAuto, aircon.ModeDry:
		return CurrentIdle
	case aircon.ModeCool:
		return CurrentCooling
	case aircon.ModeHeat:
		return CurrentHeating
	case aircon.ModeFan, aircon.ModeHumidify:
		return CurrentIdle
	default:
		return CurrentIdle
	}
}

// TargetModeFromDevice maps control info to the target mode.
// A powered-off unit, and any code without a heat/cool meaning, reads as auto.
func TargetModeFromDevice(pow, mode string) TargetMode {
	if pow != aircon.PowerOn {
		return TargetAuto
	}

	switch mode {
	case aircon.ModeAuto0, aircon.ModeAuto, aircon.ModeDry:
		return TargetAuto
	case aircon.ModeCool:
		return TargetCool
	case aircon.ModeHeat:
		return TargetHeat
	case aircon.ModeFan, aircon.ModeHumidify:
		return TargetAuto
	default:
		return TargetAuto
	}
}

// DeviceModeFor returns the mode code for a target mode.
// ok is false for values outside auto/cool/heat, in which case the
// device's current mode must be left as it is.
func DeviceModeFor(m TargetMode) (code string, ok bool) {
	switch m {
	case TargetAuto:
		return aircon.ModeAuto, true
	case TargetCool:
		return aircon.ModeCool, true
	case TargetHeat:
		return aircon.ModeHeat, true
	default:
		return "", false
	}
}

// SelectMode picks the mode used when power is switched from the room
// temperature and the cooling/heating threshold.
//
// Branches are evaluated in this order: within ±2° of the threshold selects
// auto, then above threshold-2 selects cool, then below threshold+2 selects
// heat. Because the band test runs first, the cool branch only sees
// htemp >= threshold+2 and the heat branch only sees htemp <= threshold-2.
// A reading that is not a number (NaN) fails every comparison and selects "0".
func SelectMode(htemp, threshold float64) string {
	mode := aircon.ModeAuto0

	if htemp > threshold-2 && htemp < threshold+2 {
		mode = aircon.ModeAuto
	} else if htemp > threshold-2 {
		mode = aircon.ModeCool
	} else if htemp < threshold+2 {
		mode = aircon.ModeHeat
	}

	return mode
}
