package climate

import (
	"context"
	"math"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/muurk/daikinbridge/internal/aircon"
)

const (
	// DefaultName is the accessory name used when none is configured
	DefaultName = "test"

	// DefaultThreshold is the cooling/heating threshold in °C
	DefaultThreshold = 25.0
)

// setpointPattern matches a usable "stemp". Fan and dry modes report
// placeholders such as "--" or "M" instead of a number.
var setpointPattern = regexp.MustCompile(`^[0-9.]+$`)

// Transport fetches a path from the adapter and returns the raw body
type Transport interface {
	Get(ctx context.Context, path string) (string, error)
}

// Controller translates accessory reads and writes into adapter requests.
//
// It keeps no device state: every call re-fetches what it needs. Writes
// fetch the control info, overlay the change and send the full parameter
// set back. Nothing serializes concurrent calls, so a change made on the
// unit between a write's fetch and its set is overwritten.
type Controller struct {
	transport Transport
	host      string
	name      string
	threshold float64
	missing   string
	log       *zap.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithName sets the accessory display name
func WithName(name string) Option {
	return func(c *Controller) {
		if name != "" {
			c.name = name
		}
	}
}

// WithHost records the adapter address for logs and snapshots
func WithHost(host string) Option {
	return func(c *Controller) {
		c.host = host
	}
}

// WithThreshold sets the cooling/heating threshold used by SetPower.
// Zero keeps the default.
func WithThreshold(threshold float64) Option {
	return func(c *Controller) {
		if threshold != 0 {
			c.threshold = threshold
		}
	}
}

// WithMissingValue sets the marker written for write-schema keys the
// adapter did not report (see aircon.MissingEmpty, aircon.MissingUndefined)
func WithMissingValue(missing string) Option {
	return func(c *Controller) {
		c.missing = missing
	}
}

// WithLogger sets the logger that receives readings and write results
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController creates a controller that reaches the adapter through t
func NewController(t Transport, opts ...Option) *Controller {
	c := &Controller{
		transport: t,
		name:      DefaultName,
		threshold: DefaultThreshold,
		missing:   aircon.MissingEmpty,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("accessory", c.name))
	return c
}

// Name returns the accessory display name
func (c *Controller) Name() string { return c.name }

// Host returns the adapter address
func (c *Controller) Host() string { return c.host }

// Threshold returns the cooling/heating threshold
func (c *Controller) Threshold() float64 { return c.threshold }

// fetch requests path and parses the body.
// Transport errors are returned unchanged.
func (c *Controller) fetch(ctx context.Context, path string) (*aircon.Params, error) {
	body, err := c.transport.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return aircon.ParseResponse(body), nil
}

// Power reads the Active state from basic info
func (c *Controller) Power(ctx context.Context) (PowerState, error) {
	info, err := c.fetch(ctx, aircon.PathBasicInfo)
	if err != nil {
		return PowerInactive, err
	}

	state := PowerFromDevice(info.Get(aircon.KeyPower))
	c.log.Info("Got power state", zap.Stringer("state", state))
	return state, nil
}

// CurrentMode reads what the unit is doing right now
func (c *Controller) CurrentMode(ctx context.Context) (CurrentMode, error) {
	control, err := c.fetch(ctx, aircon.PathControlInfo)
	if err != nil {
		return CurrentInactive, err
	}

	mode := CurrentModeFromDevice(control.Get(aircon.KeyPower), control.Get(aircon.KeyMode))
	c.log.Info("Got heater cooler state",
		zap.Stringer("state", mode),
		zap.String("device_mode", control.Get(aircon.KeyMode)),
	)
	return mode, nil
}

// TargetMode reads the requested operating mode
func (c *Controller) TargetMode(ctx context.Context) (TargetMode, error) {
	control, err := c.fetch(ctx, aircon.PathControlInfo)
	if err != nil {
		return TargetAuto, err
	}

	mode := TargetModeFromDevice(control.Get(aircon.KeyPower), control.Get(aircon.KeyMode))
	c.log.Info("Got target heater cooler state",
		zap.Stringer("state", mode),
		zap.String("device_mode", control.Get(aircon.KeyMode)),
	)
	return mode, nil
}

// CurrentTemperature reads the indoor temperature.
// The reported value is trusted as-is; a non-numeric reading yields NaN.
func (c *Controller) CurrentTemperature(ctx context.Context) (float64, error) {
	sensor, err := c.fetch(ctx, aircon.PathSensorInfo)
	if err != nil {
		return 0, err
	}

	temp := c.reading(sensor, aircon.KeyInsideTemp)
	c.log.Info("Got current temperature", zap.Float64("temperature", temp))
	return temp, nil
}

// CurrentHumidity reads the indoor relative humidity in percent.
// A non-numeric reading yields NaN.
func (c *Controller) CurrentHumidity(ctx context.Context) (float64, error) {
	sensor, err := c.fetch(ctx, aircon.PathSensorInfo)
	if err != nil {
		return 0, err
	}

	hum := c.reading(sensor, aircon.KeyInsideHumidity)
	c.log.Info("Got current relative humidity", zap.Float64("humidity", hum))
	return hum, nil
}

// ThresholdTemperature reads the setpoint.
// When the unit reports no numeric setpoint the result is 0 with no error.
func (c *Controller) ThresholdTemperature(ctx context.Context) (float64, error) {
	control, err := c.fetch(ctx, aircon.PathControlInfo)
	if err != nil {
		return 0, err
	}

	stemp := control.Get(aircon.KeyTargetTemp)
	if setpointPattern.MatchString(stemp) {
		if temp, err := strconv.ParseFloat(stemp, 64); err == nil {
			c.log.Info("Got threshold temperature", zap.Float64("temperature", temp))
			return temp, nil
		}
	}

	c.log.Warn("Could not get threshold temperature",
		zap.String("stemp", stemp),
		zap.String("control_info", control.String()),
	)
	return 0, nil
}

// State reads every characteristic in turn and returns a snapshot.
// It stops at the first failed read.
func (c *Controller) State(ctx context.Context) (*State, error) {
	s := &State{Name: c.name, Host: c.host}
	var err error

	if s.Power, err = c.Power(ctx); err != nil {
		return nil, err
	}
	if s.CurrentMode, err = c.CurrentMode(ctx); err != nil {
		return nil, err
	}
	if s.TargetMode, err = c.TargetMode(ctx); err != nil {
		return nil, err
	}
	if s.CurrentTemperature, err = c.CurrentTemperature(ctx); err != nil {
		return nil, err
	}
	if s.ThresholdTemperature, err = c.ThresholdTemperature(ctx); err != nil {
		return nil, err
	}
	if s.Humidity, err = c.CurrentHumidity(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// SetPower switches the unit on or off.
// The mode sent with the power change is chosen by SelectMode from the
// current room temperature, for both on and off.
func (c *Controller) SetPower(ctx context.Context, power PowerState) error {
	control, err := c.fetch(ctx, aircon.PathControlInfo)
	if err != nil {
		return err
	}

	sensor, err := c.fetch(ctx, aircon.PathSensorInfo)
	if err != nil {
		return err
	}

	htemp := c.reading(sensor, aircon.KeyInsideTemp)
	mode := SelectMode(htemp, c.threshold)

	control.Set(aircon.KeyPower, powerCode(power))
	control.Set(aircon.KeyMode, mode)

	c.log.Debug("Selected mode for power change",
		zap.Stringer("power", power),
		zap.Float64("htemp", htemp),
		zap.Float64("threshold", c.threshold),
		zap.String("mode", mode),
	)

	return c.write(ctx, control)
}

// SetTargetMode changes the operating mode.
// Values outside auto/cool/heat leave the device's mode unchanged.
func (c *Controller) SetTargetMode(ctx context.Context, mode TargetMode) error {
	control, err := c.fetch(ctx, aircon.PathControlInfo)
	if err != nil {
		return err
	}

	if code, ok := DeviceModeFor(mode); ok {
		control.Set(aircon.KeyMode, code)
	} else {
		c.log.Warn("Unknown target mode, keeping device mode",
			zap.Int("target_mode", int(mode)),
			zap.String("device_mode", control.Get(aircon.KeyMode)),
		)
	}

	return c.write(ctx, control)
}

// SetCoolingTemperature powers the unit on in cool mode at temp
func (c *Controller) SetCoolingTemperature(ctx context.Context, temp float64) error {
	return c.setModeTemperature(ctx, aircon.ModeCool, aircon.KeyCoolMemory, temp)
}

// SetHeatingTemperature powers the unit on in heat mode at temp
func (c *Controller) SetHeatingTemperature(ctx context.Context, temp float64) error {
	return c.setModeTemperature(ctx, aircon.ModeHeat, aircon.KeyHeatMemory, temp)
}

// setModeTemperature writes pow=1, the mode, the setpoint and the mode's
// remembered setpoint (dt3 for cool, dt4 for heat)
func (c *Controller) setModeTemperature(ctx context.Context, mode, memoryKey string, temp float64) error {
	control, err := c.fetch(ctx, aircon.PathControlInfo)
	if err != nil {
		return err
	}

	value := FormatTemperature(temp)
	control.Set(aircon.KeyPower, aircon.PowerOn)
	control.Set(aircon.KeyMode, mode)
	control.Set(aircon.KeyTargetTemp, value)
	control.Set(memoryKey, value)

	return c.write(ctx, control)
}

// write sends the full write schema and maps the device's "ret"
func (c *Controller) write(ctx context.Context, params *aircon.Params) error {
	settings := aircon.ControlSettingsFrom(params)
	if missing := settings.Missing(); len(missing) > 0 {
		c.log.Debug("Control info lacks write keys",
			zap.Strings("missing", missing),
			zap.String("marker", c.missing),
		)
	}

	path := aircon.SetControlPath(settings.Query(c.missing))

	result, err := c.fetch(ctx, path)
	if err != nil {
		c.log.Error("Control write failed", zap.String("path", path), zap.Error(err))
		return err
	}

	ret := result.Get(aircon.KeyReturn)
	if ret != aircon.RetOK {
		rejected := &DeviceRejectedError{Status: ret, Path: path}
		c.log.Error("Control write rejected", zap.String("path", path), zap.String("ret", ret))
		return rejected
	}

	c.log.Info("Control write accepted", zap.String("path", path))
	return nil
}

// reading parses a sensor value, returning NaN for non-numeric readings
func (c *Controller) reading(params *aircon.Params, key string) float64 {
	v, ok := params.Float(key)
	if !ok {
		c.log.Warn("Non-numeric sensor reading",
			zap.String("key", key),
			zap.String("value", params.Get(key)),
		)
		return math.NaN()
	}
	return v
}

// FormatTemperature renders a temperature the way the adapter expects:
// shortest decimal form, no trailing zeros ("26", "26.5")
func FormatTemperature(temp float64) string {
	return strconv.FormatFloat(temp, 'f', -1, 64)
}
