// Package gateway talks to the cellular/satellite hub module that carries
// the node's records to the cloud collector.
package gateway

// SessionConfig is the one-time hub session setup sent at startup.
type SessionConfig struct {
	Product      string // Cloud product identifier
	OutboundMins int    // Outbound sync cadence (minutes)
	InboundMins  int    // Inbound sync cadence (minutes)
}

// Gateway is the boundary to the hub module. Three exchanges are used: the
// startup session setup, a per-cycle board temperature query, and the
// per-cycle record submission.
type Gateway interface {
	Configure(cfg SessionConfig) error
	// CardTemperature returns the gateway module's board temperature in
	// Celsius. Failure is tolerated by callers; the field is simply
	// omitted from the cycle's record.
	CardTemperature() (float32, error)
	// Submit sends one record body synchronously. The body maps field
	// names to values; ownership transfers to the gateway.
	Submit(body map[string]float32) error
}

// request is the wire form of one exchange with the module. The module
// speaks newline-delimited JSON request/response pairs.
type request struct {
	Req      string             `json:"req"`
	Product  string             `json:"product,omitempty"`
	Mode     string             `json:"mode,omitempty"`
	Outbound int                `json:"outbound,omitempty"`
	Inbound  int                `json:"inbound,omitempty"`
	Body     map[string]float32 `json:"body,omitempty"`
	Sync     bool               `json:"sync,omitempty"`
}

// response is the wire form of the module's answer.
type response struct {
	Value float32 `json:"value"`
	Err   string  `json:"err,omitempty"`
}

// Request names understood by the hub module.
const (
	reqHubSet   = "hub.set"
	reqCardTemp = "card.temp"
	reqNoteAdd  = "note.add"
)

// hubSetRequest builds the startup session configuration request.
func hubSetRequest(cfg SessionConfig) request {
	return request{
		Req:      reqHubSet,
		Product:  cfg.Product,
		Mode:     "periodic",
		Outbound: cfg.OutboundMins,
		Inbound:  cfg.InboundMins,
	}
}

// cardTempRequest builds the board temperature query.
func cardTempRequest() request {
	return request{Req: reqCardTemp}
}

// noteAddRequest builds the record submission, flagged for synchronous
// sync so the record leaves the node before the cycle ends.
func noteAddRequest(body map[string]float32) request {
	return request{Req: reqNoteAdd, Body: body, Sync: true}
}
