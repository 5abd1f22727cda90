package gateway

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"go.bug.st/serial"
)

// DefaultBaudRate is the hub module's standard serial rate.
const DefaultBaudRate = 9600

// Port represents an available serial port.
type Port struct {
	Name        string
	Description string
}

// Serial drives the hub module over a serial port. Exchanges are
// strictly request/response; a mutex serializes callers so responses
// cannot interleave.
type Serial struct {
	port string
	baud int

	mu        sync.Mutex
	conn      serial.Port
	reader    *bufio.Reader
	connected bool
}

// Ensure Serial implements the hub boundary.
var _ Gateway = (*Serial)(nil)

// NewSerial creates a gateway handle for the given port. Connect must be
// called before any exchange.
func NewSerial(port string, baudRate int) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	return &Serial{
		port: port,
		baud: baudRate,
	}
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(names))
	for _, name := range names {
		result = append(result, Port{Name: name, Description: name})
	}
	return result, nil
}

// Connect opens the serial port.
func (g *Serial) Connect() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.connected {
		return fmt.Errorf("already connected")
	}

	conn, err := serial.Open(g.port, &serial.Mode{BaudRate: g.baud})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", g.port, err)
	}

	g.conn = conn
	g.reader = bufio.NewReader(conn)
	g.connected = true
	return nil
}

// Close closes the serial port.
func (g *Serial) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.connected {
		return nil
	}

	if err := g.conn.Close(); err != nil {
		log.Printf("Error closing serial port: %v", err)
	}
	g.conn = nil
	g.reader = nil
	g.connected = false
	return nil
}

// IsConnected returns whether the port is currently open.
func (g *Serial) IsConnected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

// Configure sends the one-time session setup to the hub module.
func (g *Serial) Configure(cfg SessionConfig) error {
	_, err := g.exchange(hubSetRequest(cfg))
	return err
}

// CardTemperature queries the module's board temperature in Celsius.
func (g *Serial) CardTemperature() (float32, error) {
	resp, err := g.exchange(cardTempRequest())
	if err != nil {
		return 0, err
	}
	return resp.Value, nil
}

// Submit sends one record body and blocks until the module acknowledges.
func (g *Serial) Submit(body map[string]float32) error {
	_, err := g.exchange(noteAddRequest(body))
	return err
}

// exchange performs one request/response round trip under the lock.
func (g *Serial) exchange(req request) (response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.connected {
		return response{}, fmt.Errorf("%s: not connected", req.Req)
	}
	return roundTrip(g.conn, g.reader, req)
}

// roundTrip writes one JSON request line and reads the JSON response line,
// skipping any blank lines the module emits between exchanges.
func roundTrip(w io.Writer, r *bufio.Reader, req request) (response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return response{}, fmt.Errorf("%s: marshal request: %w", req.Req, err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return response{}, fmt.Errorf("%s: write request: %w", req.Req, err)
	}

	var line string
	for line == "" {
		line, err = r.ReadString('\n')
		if err != nil {
			return response{}, fmt.Errorf("%s: read response: %w", req.Req, err)
		}
		line = strings.TrimSpace(line)
	}

	var resp response
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		return response{}, fmt.Errorf("%s: parse response %q: %w", req.Req, line, err)
	}
	if resp.Err != "" {
		return response{}, fmt.Errorf("%s: gateway error: %s", req.Req, resp.Err)
	}
	return resp, nil
}
