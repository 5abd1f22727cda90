package gateway

import "sync"

// Mock implements Gateway in memory for tests and simulation runs.
type Mock struct {
	mu sync.Mutex

	// Scripted behavior
	CardTempC    float32
	CardTempErr  error
	ConfigureErr error
	SubmitErr    error

	// Recorded interactions
	Session     SessionConfig
	Configured  bool
	Submissions []map[string]float32
}

// Ensure Mock implements the hub boundary.
var _ Gateway = (*Mock)(nil)

// NewMock creates a mock gateway with a fixed board temperature.
func NewMock(cardTempC float32) *Mock {
	return &Mock{CardTempC: cardTempC}
}

// Configure records the session setup.
func (m *Mock) Configure(cfg SessionConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ConfigureErr != nil {
		return m.ConfigureErr
	}
	m.Session = cfg
	m.Configured = true
	return nil
}

// CardTemperature returns the scripted board temperature.
func (m *Mock) CardTemperature() (float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CardTempErr != nil {
		return 0, m.CardTempErr
	}
	return m.CardTempC, nil
}

// Submit records a copy of the body.
func (m *Mock) Submit(body map[string]float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SubmitErr != nil {
		return m.SubmitErr
	}

	copied := make(map[string]float32, len(body))
	for k, v := range body {
		copied[k] = v
	}
	m.Submissions = append(m.Submissions, copied)
	return nil
}

// LastSubmission returns the most recent body, or nil if nothing was sent.
func (m *Mock) LastSubmission() map[string]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Submissions) == 0 {
		return nil
	}
	return m.Submissions[len(m.Submissions)-1]
}
