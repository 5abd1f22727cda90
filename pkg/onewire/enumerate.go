package onewire

import (
	"log"

	"github.com/itohio/sunmon/pkg/stats"
)

// Reading is one probe's measurement for the current cycle. Readings are
// consumed immediately by record assembly and not persisted.
type Reading struct {
	Label string
	TempF float32
}

// Enumerate walks the bus once and returns one reading per responding
// probe. The search cursor is reset first, so every call discovers the
// current device population from scratch rather than trusting a previous
// cycle's count. A device that fails conversion or read is skipped: one-wire
// buses drop devices routinely, and the cycle simply goes without that
// probe.
func Enumerate(bus Bus, resolutionBits int) []Reading {
	bus.ResetSearch()

	var readings []Reading
	for {
		addr, ok := bus.Next()
		if !ok {
			break
		}

		if err := bus.SetResolution(addr, resolutionBits); err != nil {
			log.Printf("onewire: %s: set resolution: %v", addr, err)
			continue
		}

		c, err := bus.ReadCelsius(addr)
		if err != nil {
			log.Printf("onewire: %s: read: %v", addr, err)
			continue
		}

		readings = append(readings, Reading{
			Label: addr.Label(),
			TempF: stats.CToF(c),
		})
	}

	return readings
}
