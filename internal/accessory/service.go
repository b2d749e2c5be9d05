package accessory

import (
	"github.com/brutella/hap/characteristic"
	"github.com/brutella/hap/service"
)

// Threshold ranges advertised to HomeKit
const (
	CoolingMin    = 18.0
	CoolingMax    = 32.0
	HeatingMin    = 15.0
	HeatingMax    = 30.0
	ThresholdStep = 1.0
)

// heaterCooler is a HeaterCooler service with both threshold characteristics
type heaterCooler struct {
	*service.S

	Active                      *characteristic.Active
	CurrentHeaterCoolerState    *characteristic.CurrentHeaterCoolerState
	TargetHeaterCoolerState     *characteristic.TargetHeaterCoolerState
	CurrentTemperature          *characteristic.CurrentTemperature
	CoolingThresholdTemperature *characteristic.CoolingThresholdTemperature
	HeatingThresholdTemperature *characteristic.HeatingThresholdTemperature
}

func newHeaterCooler() *heaterCooler {
	s := heaterCooler{}
	s.S = service.New(service.TypeHeaterCooler)

	s.Active = characteristic.NewActive()
	s.AddC(s.Active.C)

	s.CurrentHeaterCoolerState = characteristic.NewCurrentHeaterCoolerState()
	s.AddC(s.CurrentHeaterCoolerState.C)

	s.TargetHeaterCoolerState = characteristic.NewTargetHeaterCoolerState()
	s.AddC(s.TargetHeaterCoolerState.C)

	s.CurrentTemperature = characteristic.NewCurrentTemperature()
	s.AddC(s.CurrentTemperature.C)

	s.CoolingThresholdTemperature = characteristic.NewCoolingThresholdTemperature()
	s.CoolingThresholdTemperature.SetMinValue(CoolingMin)
	s.CoolingThresholdTemperature.SetMaxValue(CoolingMax)
	s.CoolingThresholdTemperature.SetStepValue(ThresholdStep)
	s.AddC(s.CoolingThresholdTemperature.C)

	s.HeatingThresholdTemperature = characteristic.NewHeatingThresholdTemperature()
	s.HeatingThresholdTemperature.SetMinValue(HeatingMin)
	s.HeatingThresholdTemperature.SetMaxValue(HeatingMax)
	s.HeatingThresholdTemperature.SetStepValue(ThresholdStep)
	s.AddC(s.HeatingThresholdTemperature.C)

	return &s
}

// humiditySensor is a HumiditySensor service carrying its own name
type humiditySensor struct {
	*service.S

	CurrentRelativeHumidity *characteristic.CurrentRelativeHumidity
	Name                    *characteristic.Name
}

func newHumiditySensor(name string) *humiditySensor {
	s := humiditySensor{}
	s.S = service.New(service.TypeHumiditySensor)

	s.CurrentRelativeHumidity = characteristic.NewCurrentRelativeHumidity()
	s.AddC(s.CurrentRelativeHumidity.C)

	s.Name = characteristic.NewName()
	s.Name.SetValue(name)
	s.AddC(s.Name.C)

	return &s
}
