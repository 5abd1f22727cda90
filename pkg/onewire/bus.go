package onewire

// Bus is the boundary to the low-level one-wire driver. Implementations
// wrap real bus hardware or a simulator; the enumerator only depends on
// this surface.
type Bus interface {
	// ResetSearch rewinds the discovery cursor so the next call to Next
	// starts a fresh walk of the bus.
	ResetSearch()
	// Next returns the address of the next device on the bus, or ok=false
	// once the walk is exhausted.
	Next() (addr Address, ok bool)
	// SetResolution configures the conversion resolution (9-12 bits) of
	// one device.
	SetResolution(addr Address, bits int) error
	// ReadCelsius triggers a conversion and reads the temperature of one
	// device.
	ReadCelsius(addr Address) (float32, error)
}
