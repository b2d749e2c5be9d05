package accessory

import (
	"context"
	"math"
	"net/http"

	"github.com/brutella/hap/accessory"
	"github.com/brutella/hap/characteristic"
	"go.uber.org/zap"

	"github.com/muurk/daikinbridge/internal/climate"
)

// statusCommunicationFailure is the HAP status for an unreachable service
const statusCommunicationFailure = -70402

// Manufacturer shown in the Home app
const Manufacturer = "Daikin"

// Controller is the part of climate.Controller the accessory drives
type Controller interface {
	Name() string
	Power(ctx context.Context) (climate.PowerState, error)
	CurrentMode(ctx context.Context) (climate.CurrentMode, error)
	TargetMode(ctx context.Context) (climate.TargetMode, error)
	CurrentTemperature(ctx context.Context) (float64, error)
	ThresholdTemperature(ctx context.Context) (float64, error)
	CurrentHumidity(ctx context.Context) (float64, error)
	State(ctx context.Context) (*climate.State, error)
	SetPower(ctx context.Context, power climate.PowerState) error
	SetTargetMode(ctx context.Context, mode climate.TargetMode) error
	SetCoolingTemperature(ctx context.Context, temp float64) error
	SetHeatingTemperature(ctx context.Context, temp float64) error
}

// Info describes the accessory
type Info struct {
	SerialNumber string
	Model        string
	Firmware     string
}

// AirConditioner is a HomeKit accessory backed by a Controller.
// Every characteristic read goes to the adapter; nothing is cached between
// requests except the values Refresh pushes for notifications.
type AirConditioner struct {
	*accessory.A

	HeaterCooler *heaterCooler
	Humidity     *humiditySensor

	ctrl Controller
	log  *zap.Logger
}

// New creates the accessory and wires every characteristic to ctrl
func New(ctrl Controller, info Info, log *zap.Logger) *AirConditioner {
	if log == nil {
		log = zap.NewNop()
	}

	a := &AirConditioner{
		A: accessory.New(accessory.Info{
			Name:         ctrl.Name(),
			SerialNumber: info.SerialNumber,
			Manufacturer: Manufacturer,
			Model:        info.Model,
			Firmware:     info.Firmware,
		}, accessory.TypeAirConditioner),
		HeaterCooler: newHeaterCooler(),
		Humidity:     newHumiditySensor(ctrl.Name() + " Humidity"),
		ctrl:         ctrl,
		log:          log.With(zap.String("accessory", ctrl.Name())),
	}

	a.AddS(a.HeaterCooler.S)
	a.AddS(a.Humidity.S)
	a.wire()

	return a
}

func (a *AirConditioner) wire() {
	hc := a.HeaterCooler

	hc.Active.ValueRequestFunc = func(r *http.Request) (interface{}, int) {
		p, err := a.ctrl.Power(requestContext(r))
		return a.intValue(int(p), err, "Active")
	}
	hc.Active.OnSetRemoteValue(func(v int) error {
		return a.ctrl.SetPower(context.Background(), PowerFromHomeKit(v))
	})

	hc.CurrentHeaterCoolerState.ValueRequestFunc = func(r *http.Request) (interface{}, int) {
		m, err := a.ctrl.CurrentMode(requestContext(r))
		return a.intValue(int(m), err, "CurrentHeaterCoolerState")
	}

	hc.TargetHeaterCoolerState.ValueRequestFunc = func(r *http.Request) (interface{}, int) {
		m, err := a.ctrl.TargetMode(requestContext(r))
		return a.intValue(int(m), err, "TargetHeaterCoolerState")
	}
	hc.TargetHeaterCoolerState.OnSetRemoteValue(func(v int) error {
		return a.ctrl.SetTargetMode(context.Background(), climate.TargetMode(v))
	})

	hc.CurrentTemperature.ValueRequestFunc = func(r *http.Request) (interface{}, int) {
		t, err := a.ctrl.CurrentTemperature(requestContext(r))
		return a.floatValue(t, err, "CurrentTemperature")
	}

	hc.CoolingThresholdTemperature.ValueRequestFunc = func(r *http.Request) (interface{}, int) {
		t, err := a.ctrl.ThresholdTemperature(requestContext(r))
		return a.floatValue(t, err, "CoolingThresholdTemperature")
	}
	hc.CoolingThresholdTemperature.OnSetRemoteValue(func(v float64) error {
		return a.ctrl.SetCoolingTemperature(context.Background(), v)
	})

	hc.HeatingThresholdTemperature.ValueRequestFunc = func(r *http.Request) (interface{}, int) {
		t, err := a.ctrl.ThresholdTemperature(requestContext(r))
		return a.floatValue(t, err, "HeatingThresholdTemperature")
	}
	hc.HeatingThresholdTemperature.OnSetRemoteValue(func(v float64) error {
		return a.ctrl.SetHeatingTemperature(context.Background(), v)
	})

	a.Humidity.CurrentRelativeHumidity.ValueRequestFunc = func(r *http.Request) (interface{}, int) {
		h, err := a.ctrl.CurrentHumidity(requestContext(r))
		return a.floatValue(h, err, "CurrentRelativeHumidity")
	}
}

// intValue converts a read result into a HAP response
func (a *AirConditioner) intValue(v int, err error, name string) (interface{}, int) {
	if err != nil {
		a.log.Warn("Read failed", zap.String("characteristic", name), zap.Error(err))
		return nil, statusCommunicationFailure
	}
	return v, 0
}

// floatValue converts a read result into a HAP response.
// NaN cannot be encoded, so it is reported as a communication failure.
func (a *AirConditioner) floatValue(v float64, err error, name string) (interface{}, int) {
	if err != nil {
		a.log.Warn("Read failed", zap.String("characteristic", name), zap.Error(err))
		return nil, statusCommunicationFailure
	}
	if math.IsNaN(v) {
		a.log.Warn("No reading", zap.String("characteristic", name))
		return nil, statusCommunicationFailure
	}
	return v, 0
}

// Refresh reads a full snapshot and stores it in the characteristics so
// subscribed controllers receive change events
func (a *AirConditioner) Refresh(ctx context.Context) error {
	s, err := a.ctrl.State(ctx)
	if err != nil {
		return err
	}

	hc := a.HeaterCooler
	hc.Active.SetValue(int(s.Power))
	hc.CurrentHeaterCoolerState.SetValue(int(s.CurrentMode))
	hc.TargetHeaterCoolerState.SetValue(int(s.TargetMode))

	if !math.IsNaN(s.CurrentTemperature) {
		hc.CurrentTemperature.SetValue(s.CurrentTemperature)
	}
	if t, ok := ClampThreshold(s.ThresholdTemperature, CoolingMin, CoolingMax); ok {
		hc.CoolingThresholdTemperature.SetValue(t)
	}
	if t, ok := ClampThreshold(s.ThresholdTemperature, HeatingMin, HeatingMax); ok {
		hc.HeatingThresholdTemperature.SetValue(t)
	}
	if !math.IsNaN(s.Humidity) {
		a.Humidity.CurrentRelativeHumidity.SetValue(s.Humidity)
	}

	a.log.Debug("Refreshed characteristics",
		zap.Stringer("power", s.Power),
		zap.Stringer("current_mode", s.CurrentMode),
		zap.Float64("temperature", s.CurrentTemperature),
	)
	return nil
}

// PowerFromHomeKit maps an Active value
func PowerFromHomeKit(v int) climate.PowerState {
	if v == characteristic.ActiveActive {
		return climate.PowerActive
	}
	return climate.PowerInactive
}

// ClampThreshold fits a setpoint into a characteristic's range.
// A zero setpoint means the unit reports none and is skipped.
func ClampThreshold(v, lo, hi float64) (float64, bool) {
	if v == 0 || math.IsNaN(v) {
		return 0, false
	}
	return math.Max(lo, math.Min(hi, v)), true
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
