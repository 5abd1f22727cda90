package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the node configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Power   PowerConfig   `yaml:"power"`
	OneWire OneWireConfig `yaml:"onewire"`
	Gateway GatewayConfig `yaml:"gateway"`
	Metrics MetricsConfig `yaml:"metrics"`
	Sim     SimConfig     `yaml:"sim"`
}

// ReportConfig contains the sampling and reporting cadence.
type ReportConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"` // Seconds between flushes to the hub
	TickSeconds     int `yaml:"tick_seconds"`     // Seconds between sensor samples
}

// PowerConfig contains the current/voltage sensor calibration.
type PowerConfig struct {
	ShuntOhms          float32 `yaml:"shunt_ohms"`          // Shunt resistance (Ω)
	CurrentCalibration float32 `yaml:"current_calibration"` // Multiplicative current correction
}

// OneWireConfig contains the temperature probe bus configuration.
type OneWireConfig struct {
	Pin            int `yaml:"pin"`             // Data pin the bus driver is attached to
	ResolutionBits int `yaml:"resolution_bits"` // Conversion resolution (9-12 bits)
}

// GatewayConfig contains the cellular/satellite hub module configuration.
type GatewayConfig struct {
	Port            string  `yaml:"port"`               // Serial port of the gateway module
	BaudRate        int     `yaml:"baud_rate"`          // Serial baud rate
	Product         string  `yaml:"product"`            // Product identifier sent in the session setup
	OutboundMins    int     `yaml:"outbound_mins"`      // Outbound sync cadence (minutes)
	InboundMins     int     `yaml:"inbound_mins"`       // Inbound sync cadence (minutes)
	CardTempOffsetC float32 `yaml:"card_temp_offset_c"` // Board temperature calibration offset (°C)
}

// MetricsConfig contains the optional Prometheus endpoint configuration.
type MetricsConfig struct {
	Listen string `yaml:"listen"` // Address for the /metrics listener; empty disables it
}

// SimConfig contains simulator parameters for hardware-free runs.
type SimConfig struct {
	BusVoltage       float32   `yaml:"bus_voltage"`        // Nominal panel bus voltage (V)
	PeakShuntMV      float32   `yaml:"peak_shunt_mv"`      // Shunt drop at simulated solar noon (mV)
	NoiseLevel       float32   `yaml:"noise_level"`        // Relative noise amplitude
	DayPeriodSeconds int       `yaml:"day_period_seconds"` // Length of a simulated day
	ProbeTempsC      []float32 `yaml:"probe_temps_c"`      // One simulated probe per entry (°C)
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			IntervalSeconds: 3600,
			TickSeconds:     1,
		},
		Power: PowerConfig{
			ShuntOhms:          0.00375,
			CurrentCalibration: 0.99,
		},
		OneWire: OneWireConfig{
			Pin:            4,
			ResolutionBits: 12,
		},
		Gateway: GatewayConfig{
			Port:         "/dev/ttyUSB0",
			BaudRate:     9600,
			Product:      "com.itohio.sunmon:node",
			OutboundMins: 60,
			InboundMins:  120,
		},
		Metrics: MetricsConfig{
			Listen: "", // Disabled unless configured
		},
		Sim: SimConfig{
			BusVoltage:       12.6,
			PeakShuntMV:      18.0,
			NoiseLevel:       0.02,
			DayPeriodSeconds: 120,
			ProbeTempsC:      []float32{21.5, 34.0},
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Report.IntervalSeconds <= 0 {
		c.Report.IntervalSeconds = def.Report.IntervalSeconds
	}
	if c.Report.TickSeconds <= 0 {
		c.Report.TickSeconds = def.Report.TickSeconds
	}

	if c.Power.ShuntOhms == 0 {
		c.Power.ShuntOhms = def.Power.ShuntOhms
	}
	if c.Power.CurrentCalibration == 0 {
		c.Power.CurrentCalibration = def.Power.CurrentCalibration
	}

	if c.OneWire.Pin == 0 {
		c.OneWire.Pin = def.OneWire.Pin
	}
	if c.OneWire.ResolutionBits < 9 || c.OneWire.ResolutionBits > 12 {
		c.OneWire.ResolutionBits = def.OneWire.ResolutionBits
	}

	if c.Gateway.Port == "" {
		c.Gateway.Port = def.Gateway.Port
	}
	if c.Gateway.BaudRate == 0 {
		c.Gateway.BaudRate = def.Gateway.BaudRate
	}
	if c.Gateway.Product == "" {
		c.Gateway.Product = def.Gateway.Product
	}
	if c.Gateway.OutboundMins <= 0 {
		c.Gateway.OutboundMins = def.Gateway.OutboundMins
	}
	if c.Gateway.InboundMins <= 0 {
		c.Gateway.InboundMins = def.Gateway.InboundMins
	}

	if c.Sim.BusVoltage == 0 {
		c.Sim.BusVoltage = def.Sim.BusVoltage
	}
	if c.Sim.PeakShuntMV == 0 {
		c.Sim.PeakShuntMV = def.Sim.PeakShuntMV
	}
	if c.Sim.DayPeriodSeconds <= 0 {
		c.Sim.DayPeriodSeconds = def.Sim.DayPeriodSeconds
	}
	if len(c.Sim.ProbeTempsC) == 0 {
		c.Sim.ProbeTempsC = def.Sim.ProbeTempsC
	}
}
