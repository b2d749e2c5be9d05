package climate

import (
	"fmt"
	"strings"
)

// PowerState is the accessory's Active characteristic
type PowerState int

const (
	PowerInactive PowerState = iota
	PowerActive
)

// String returns the state name
func (p PowerState) String() string {
	switch p {
	case PowerInactive:
		return "INACTIVE"
	case PowerActive:
		return "ACTIVE"
	default:
		return fmt.Sprintf("PowerState(%d)", int(p))
	}
}

// ParsePowerState accepts on/off, active/inactive and 1/0
func ParsePowerState(s string) (PowerState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "active", "1", "true":
		return PowerActive, nil
	case "off", "inactive", "0", "false":
		return PowerInactive, nil
	default:
		return PowerInactive, fmt.Errorf("invalid power state %q (use on or off)", s)
	}
}

// CurrentMode is what the unit is doing right now.
// CurrentInactive is reported whenever the unit is powered off.
type CurrentMode int

const (
	CurrentInactive CurrentMode = iota
	CurrentIdle
	CurrentHeating
	CurrentCooling
)

// String returns the mode name
func (m CurrentMode) String() string {
	switch m {
	case CurrentInactive:
		return "INACTIVE"
	case CurrentIdle:
		return "IDLE"
	case CurrentHeating:
		return "HEATING"
	case CurrentCooling:
		return "COOLING"
	default:
		return fmt.Sprintf("CurrentMode(%d)", int(m))
	}
}

// TargetMode is the operating mode requested by the user
type TargetMode int

const (
	TargetAuto TargetMode = iota
	TargetHeat
	TargetCool
)

// String returns the mode name
func (m TargetMode) String() string {
	switch m {
	case TargetAuto:
		return "AUTO"
	case TargetHeat:
		return "HEAT"
	case TargetCool:
		return "COOL"
	default:
		return fmt.Sprintf("TargetMode(%d)", int(m))
	}
}

// ParseTargetMode accepts auto, cool and heat
func ParseTargetMode(s string) (TargetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return TargetAuto, nil
	case "heat":
		return TargetHeat, nil
	case "cool":
		return TargetCool, nil
	default:
		return TargetAuto, fmt.Errorf("invalid mode %q (use auto, cool or heat)", s)
	}
}

// State is a snapshot of every normalized reading.
// The unit has a single setpoint register, so ThresholdTemperature serves
// both the cooling and the heating threshold.
type State struct {
	Name                 string      `json:"name"`
	Host                 string      `json:"host"`
	Power                PowerState  `json:"power"`
	CurrentMode          CurrentMode `json:"current_mode"`
	TargetMode           TargetMode  `json:"target_mode"`
	CurrentTemperature   float64     `json:"current_temperature"`
	ThresholdTemperature float64     `json:"threshold_temperature"`
	Humidity             float64     `json:"humidity"`
}
