// Package accessory exposes a climate.Controller as a HomeKit accessory.
//
// The accessory carries a HeaterCooler service (Active, current and target
// heater-cooler state, current temperature, cooling and heating thresholds)
// and a HumiditySensor service named "<name> Humidity". Reads are forwarded
// to the adapter on every request. Failed reads, and sensor values the
// adapter did not report, answer with a communication-failure status.
//
// Threshold ranges are 18-32°C for cooling and 15-30°C for heating, in 1°
// steps. The unit has one setpoint, so both thresholds read the same value.
package accessory
