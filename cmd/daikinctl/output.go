package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/muurk/daikinbridge/internal/climate"
	"github.com/muurk/daikinbridge/internal/ui"
)

// stateOutput is the JSON form of a climate snapshot.
// Readings the adapter did not report are null.
type stateOutput struct {
	Name                 string   `json:"name"`
	Host                 string   `json:"host"`
	Power                string   `json:"power"`
	CurrentMode          string   `json:"current_mode"`
	TargetMode           string   `json:"target_mode"`
	CurrentTemperature   *float64 `json:"current_temperature"`
	ThresholdTemperature *float64 `json:"threshold_temperature"`
	Humidity             *float64 `json:"humidity"`
}

func newStateOutput(s *climate.State) stateOutput {
	out := stateOutput{
		Name:               s.Name,
		Host:               s.Host,
		Power:              "off",
		CurrentMode:        currentModeName(s.CurrentMode),
		TargetMode:         ui.TargetModeLabel(s.TargetMode),
		CurrentTemperature: reading(s.CurrentTemperature),
		Humidity:           reading(s.Humidity),
	}
	if s.Power == climate.PowerActive {
		out.Power = "on"
	}
	if s.ThresholdTemperature != 0 {
		out.ThresholdTemperature = reading(s.ThresholdTemperature)
	}
	return out
}

func currentModeName(m climate.CurrentMode) string {
	switch m {
	case climate.CurrentIdle:
		return "idle"
	case climate.CurrentHeating:
		return "heating"
	case climate.CurrentCooling:
		return "cooling"
	default:
		return "inactive"
	}
}

func reading(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
