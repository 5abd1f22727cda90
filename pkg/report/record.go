// Package report drives the node's sampling and reporting cycle and
// assembles the outbound records.
package report

import (
	"github.com/itohio/sunmon/pkg/onewire"
	"github.com/itohio/sunmon/pkg/stats"
)

// Body assembles the outbound record body for one reporting cycle. The
// electrical fields are present only when the window aggregated at least
// one sample, and card_temp only when the gateway answered the board
// temperature query; an empty window or a silent gateway never puts
// undefined values on the wire. A fresh map is built each cycle and handed
// off to the transport.
func Body(snap stats.Snapshot, cardTempF *float32, readings []onewire.Reading) map[string]float32 {
	body := make(map[string]float32, len(readings)+5)

	if snap.Valid() {
		body["voltage"] = snap.VoltageAvg
		body["power_avg"] = snap.PowerAvg
		body["power_min"] = snap.PowerMin
		body["power_max"] = snap.PowerMax
	}

	if cardTempF != nil {
		body["card_temp"] = *cardTempF
	}

	for _, r := range readings {
		body["temp_"+r.Label] = r.TempF
	}

	return body
}
