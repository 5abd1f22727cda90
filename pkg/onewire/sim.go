package onewire

import "fmt"

// ds18b20Family is the family code in the first ROM byte of simulated
// probes.
const ds18b20Family = 0x28

// SimDevice is one simulated probe on a SimBus.
type SimDevice struct {
	Addr    Address
	TempC   float32
	Missing bool // Device answers discovery but not reads (dropped mid-cycle)
}

// SimBus simulates a string of temperature probes for development runs and
// tests.
type SimBus struct {
	devices     []SimDevice
	cursor      int
	resolutions map[Address]int
}

// Ensure SimBus implements the driver boundary.
var _ Bus = (*SimBus)(nil)

// NewSimBus creates a simulated bus exposing the given devices in order.
func NewSimBus(devices ...SimDevice) *SimBus {
	return &SimBus{
		devices:     devices,
		resolutions: make(map[Address]int),
	}
}

// NewSimBusFromTemps creates a simulated bus with one probe per
// temperature, using synthetic sequential ROM codes.
func NewSimBusFromTemps(tempsC []float32) *SimBus {
	devices := make([]SimDevice, 0, len(tempsC))
	for i, c := range tempsC {
		devices = append(devices, SimDevice{
			Addr:  SimAddress(i),
			TempC: c,
		})
	}
	return NewSimBus(devices...)
}

// SimAddress builds a deterministic synthetic ROM code for device index i.
func SimAddress(i int) Address {
	return Address{ds18b20Family, 0, 0, 0, 0, 0, byte(i >> 8), byte(i)}
}

// ResetSearch rewinds the discovery cursor.
func (b *SimBus) ResetSearch() {
	b.cursor = 0
}

// Next returns the next simulated device address.
func (b *SimBus) Next() (Address, bool) {
	if b.cursor >= len(b.devices) {
		return Address{}, false
	}
	addr := b.devices[b.cursor].Addr
	b.cursor++
	return addr, true
}

// SetResolution records the requested resolution for later inspection.
func (b *SimBus) SetResolution(addr Address, bits int) error {
	if _, ok := b.find(addr); !ok {
		return fmt.Errorf("no device %s on bus", addr)
	}
	b.resolutions[addr] = bits
	return nil
}

// ReadCelsius returns the configured temperature, or an error for a device
// marked missing.
func (b *SimBus) ReadCelsius(addr Address) (float32, error) {
	dev, ok := b.find(addr)
	if !ok {
		return 0, fmt.Errorf("no device %s on bus", addr)
	}
	if dev.Missing {
		return 0, fmt.Errorf("no response from %s", addr)
	}
	return dev.TempC, nil
}

// Resolution returns the last resolution set for a device (0 if never set).
func (b *SimBus) Resolution(addr Address) int {
	return b.resolutions[addr]
}

func (b *SimBus) find(addr Address) (SimDevice, bool) {
	for _, dev := range b.devices {
		if dev.Addr == addr {
			return dev, true
		}
	}
	return SimDevice{}, false
}
