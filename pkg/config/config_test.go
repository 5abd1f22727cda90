package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, 3600, cfg.Report.IntervalSeconds)
	assert.Equal(t, 1, cfg.Report.TickSeconds)
	assert.Equal(t, float32(0.00375), cfg.Power.ShuntOhms)
	assert.Equal(t, float32(0.99), cfg.Power.CurrentCalibration)
	assert.Equal(t, 4, cfg.OneWire.Pin)
	assert.Equal(t, 12, cfg.OneWire.ResolutionBits)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Gateway.Port)
	assert.Equal(t, 9600, cfg.Gateway.BaudRate)
	assert.Equal(t, "com.itohio.sunmon:node", cfg.Gateway.Product)
	assert.Equal(t, 60, cfg.Gateway.OutboundMins)
	assert.Equal(t, 120, cfg.Gateway.InboundMins)
	assert.Empty(t, cfg.Metrics.Listen)
	assert.Len(t, cfg.Sim.ProbeTempsC, 2)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Gateway.Port)
	assert.Equal(t, 3600, cfg.Report.IntervalSeconds)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
report:
  interval_seconds: 900
  tick_seconds: 2

power:
  shunt_ohms: 0.002
  current_calibration: 1.0

onewire:
  pin: 17
  resolution_bits: 10

gateway:
  port: "/dev/ttyAMA0"
  baud_rate: 115200
  product: "com.example.farm:south-array"
  outbound_mins: 30
  inbound_mins: 60
  card_temp_offset_c: -1.5

metrics:
  listen: ":9402"

sim:
  bus_voltage: 24.0
  peak_shunt_mv: 12.0
  probe_temps_c: [18.0, 22.5, 40.0]
`
	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, 900, cfg.Report.IntervalSeconds)
	assert.Equal(t, 2, cfg.Report.TickSeconds)
	assert.Equal(t, float32(0.002), cfg.Power.ShuntOhms)
	assert.Equal(t, float32(1.0), cfg.Power.CurrentCalibration)
	assert.Equal(t, 17, cfg.OneWire.Pin)
	assert.Equal(t, 10, cfg.OneWire.ResolutionBits)
	assert.Equal(t, "/dev/ttyAMA0", cfg.Gateway.Port)
	assert.Equal(t, 115200, cfg.Gateway.BaudRate)
	assert.Equal(t, "com.example.farm:south-array", cfg.Gateway.Product)
	assert.Equal(t, 30, cfg.Gateway.OutboundMins)
	assert.Equal(t, 60, cfg.Gateway.InboundMins)
	assert.Equal(t, float32(-1.5), cfg.Gateway.CardTempOffsetC)
	assert.Equal(t, ":9402", cfg.Metrics.Listen)
	assert.Equal(t, []float32{18.0, 22.5, 40.0}, cfg.Sim.ProbeTempsC)
}

func TestLoad_PartialYAML_UsesDefaults(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
gateway:
  port: "/dev/ttyS1"
`
	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyS1", cfg.Gateway.Port)
	// Everything else falls back to defaults
	assert.Equal(t, 9600, cfg.Gateway.BaudRate)
	assert.Equal(t, 3600, cfg.Report.IntervalSeconds)
	assert.Equal(t, float32(0.00375), cfg.Power.ShuntOhms)
	assert.Equal(t, 12, cfg.OneWire.ResolutionBits)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("report: [not a mapping")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	_, err = Load(tmpfile.Name())
	assert.Error(t, err)
}

func TestEnsureDefaults_InvalidResolution(t *testing.T) {
	cfg := Default()
	cfg.OneWire.ResolutionBits = 13
	cfg.ensureDefaults()
	assert.Equal(t, 12, cfg.OneWire.ResolutionBits)

	cfg.OneWire.ResolutionBits = 8
	cfg.ensureDefaults()
	assert.Equal(t, 12, cfg.OneWire.ResolutionBits)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Report.IntervalSeconds = 600
	cfg.Gateway.Product = "com.example:roof"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 600, loaded.Report.IntervalSeconds)
	assert.Equal(t, "com.example:roof", loaded.Gateway.Product)
}
