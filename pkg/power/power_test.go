package power

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/sunmon/pkg/config"
)

// stubSensor returns fixed readings, optionally failing either channel.
type stubSensor struct {
	shuntMV  float32
	busV     float32
	shuntErr error
	busErr   error
}

func (s *stubSensor) ShuntVoltageMV() (float32, error) { return s.shuntMV, s.shuntErr }
func (s *stubSensor) BusVoltageV() (float32, error)    { return s.busV, s.busErr }

func TestCalibration_Current(t *testing.T) {
	tests := []struct {
		name    string
		cal     Calibration
		shuntMV float32
		want    float32
	}{
		{
			name:    "unity factor",
			cal:     Calibration{ShuntOhms: 0.00375, CurrentFactor: 1.0},
			shuntMV: 37.5,
			want:    10.0,
		},
		{
			name:    "default calibration",
			cal:     Calibration{ShuntOhms: 0.00375, CurrentFactor: 0.99},
			shuntMV: 37.5,
			want:    9.9,
		},
		{
			name:    "zero drop, zero current",
			cal:     Calibration{ShuntOhms: 0.00375, CurrentFactor: 0.99},
			shuntMV: 0,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.cal.Current(tt.shuntMV), 0.001)
		})
	}
}

func TestRead(t *testing.T) {
	cal := Calibration{ShuntOhms: 0.00375, CurrentFactor: 1.0}
	sensor := &stubSensor{shuntMV: 37.5, busV: 12.0}

	voltage, power, err := Read(sensor, cal)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, voltage, 0.001)
	assert.InDelta(t, 120.0, power, 0.01) // 12 V * 10 A
}

func TestRead_SensorFailures(t *testing.T) {
	cal := Calibration{ShuntOhms: 0.00375, CurrentFactor: 1.0}

	_, _, err := Read(&stubSensor{shuntErr: fmt.Errorf("i2c timeout")}, cal)
	assert.ErrorContains(t, err, "read shunt voltage")

	_, _, err = Read(&stubSensor{busErr: fmt.Errorf("i2c timeout")}, cal)
	assert.ErrorContains(t, err, "read bus voltage")
}

func TestSim_Ranges(t *testing.T) {
	cfg := config.Default().Sim
	sim := NewSim(cfg)

	for i := 0; i < 100; i++ {
		shunt, err := sim.ShuntVoltageMV()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, shunt, float32(0))
		assert.LessOrEqual(t, shunt, cfg.PeakShuntMV*(1+cfg.NoiseLevel))

		bus, err := sim.BusVoltageV()
		require.NoError(t, err)
		assert.InDelta(t, cfg.BusVoltage, bus, float64(cfg.BusVoltage)*0.1)
	}
}

func TestSim_NightProducesNoCurrent(t *testing.T) {
	cfg := config.Default().Sim
	cfg.NoiseLevel = 0
	sim := NewSim(cfg)

	// Three quarters into the simulated day the sun is below the horizon.
	night := sim.start.Add(time.Duration(cfg.DayPeriodSeconds) * time.Second * 3 / 4)
	sim.now = func() time.Time { return night }

	shunt, err := sim.ShuntVoltageMV()
	require.NoError(t, err)
	assert.Zero(t, shunt)
}
