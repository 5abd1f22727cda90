package power

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"

	"github.com/itohio/sunmon/pkg/config"
)

// Sim simulates a PV panel sensor for development and tests. The shunt
// drop follows a compressed day curve: zero at night, a sine arc during
// daylight, plus configurable noise.
type Sim struct {
	cfg   config.SimConfig
	start time.Time
	now   func() time.Time
	rng   *rand.Rand
}

// Ensure Sim implements the driver boundary.
var _ Sensor = (*Sim)(nil)

// NewSim creates a simulated sensor from the sim configuration.
func NewSim(cfg config.SimConfig) *Sim {
	return &Sim{
		cfg:   cfg,
		start: time.Now(),
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ShuntVoltageMV returns the simulated shunt drop in millivolts.
func (s *Sim) ShuntVoltageMV() (float32, error) {
	return s.cfg.PeakShuntMV * s.sun() * s.jitter(), nil
}

// BusVoltageV returns the simulated bus voltage in volts. The bus sags a
// little at night and rises slightly under charge.
func (s *Sim) BusVoltageV() (float32, error) {
	swing := 0.02 * s.cfg.BusVoltage * (s.sun() - 0.5)
	return (s.cfg.BusVoltage + swing) * s.jitter(), nil
}

// sun returns the current solar elevation factor in [0, 1].
func (s *Sim) sun() float32 {
	period := float32(s.cfg.DayPeriodSeconds)
	elapsed := float32(s.now().Sub(s.start).Seconds())
	phase := elapsed / period * 2 * math32.Pi
	return math32.Max(0, math32.Sin(phase))
}

// jitter returns a multiplicative noise factor around 1.
func (s *Sim) jitter() float32 {
	if s.cfg.NoiseLevel <= 0 {
		return 1
	}
	return 1 + s.cfg.NoiseLevel*(2*s.rng.Float32()-1)
}
