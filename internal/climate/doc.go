// Package climate maps a HeaterCooler accessory onto a Daikin adapter.
//
// The Controller exposes six reads and four writes that mirror the
// accessory characteristics:
//
//	Power / SetPower                       Active
//	CurrentMode                            CurrentHeaterCoolerState
//	TargetMode / SetTargetMode             TargetHeaterCoolerState
//	CurrentTemperature                     CurrentTemperature
//	ThresholdTemperature                   Cooling/HeatingThresholdTemperature
//	SetCoolingTemperature                  CoolingThresholdTemperature
//	SetHeatingTemperature                  HeatingThresholdTemperature
//	CurrentHumidity                        CurrentRelativeHumidity
//
// # Usage Example
//
//	client := transport.NewClient("192.168.1.20")
//	ctrl := climate.NewController(client,
//	    climate.WithName("Living Room"),
//	    climate.WithThreshold(25),
//	    climate.WithLogger(log),
//	)
//
//	if err := ctrl.SetCoolingTemperature(ctx, 26); err != nil {
//	    if status, ok := climate.RejectedStatus(err); ok {
//	        log.Warn("adapter refused", zap.String("ret", status))
//	    }
//	}
//
// # Error Handling
//
// Transport failures are returned unchanged. A write the adapter answers
// with anything but ret=OK returns *DeviceRejectedError carrying the
// literal status. A setpoint read that finds no numeric "stemp" is not an
// error: it returns 0 and logs a warning.
//
// # Concurrency
//
// A Controller holds no mutable state and may be shared between
// goroutines. It does not serialize calls; see Controller for the
// fetch-then-write race this implies.
package climate
