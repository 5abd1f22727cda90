// Package power reads the PV panel's current/voltage sensor and derives
// instantaneous electrical power.
package power

import "fmt"

// Sensor is the boundary to the current/voltage sensor driver. The driver
// exposes calibrated raw readings; calibration to amps and watts happens
// here.
type Sensor interface {
	// ShuntVoltageMV returns the voltage drop across the shunt resistor in
	// millivolts.
	ShuntVoltageMV() (float32, error)
	// BusVoltageV returns the panel bus voltage in volts.
	BusVoltageV() (float32, error)
}

// Calibration holds the constants turning a shunt drop into panel current.
type Calibration struct {
	ShuntOhms     float32 // Shunt resistance (Ω)
	CurrentFactor float32 // Multiplicative correction for shunt tolerance
}

// Current derives the panel current in amps from the shunt drop.
// I = V_shunt / R_shunt, with the millivolt reading scaled to volts.
func (c Calibration) Current(shuntMV float32) float32 {
	return shuntMV / c.ShuntOhms / 1000 * c.CurrentFactor
}

// Read samples the sensor once and returns the bus voltage and the derived
// instantaneous power.
func Read(s Sensor, cal Calibration) (voltage, power float32, err error) {
	shuntMV, err := s.ShuntVoltageMV()
	if err != nil {
		return 0, 0, fmt.Errorf("read shunt voltage: %w", err)
	}

	busV, err := s.BusVoltageV()
	if err != nil {
		return 0, 0, fmt.Errorf("read bus voltage: %w", err)
	}

	return busV, busV * cal.Current(shuntMV), nil
}
