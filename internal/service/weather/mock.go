package weather

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MockService implements Service for unit tests. Locations without a scripted
// forecast or error fail with ErrNotFound.
type MockService struct {
	mu        sync.Mutex
	forecasts map[string][]Day
	errs      map[string]error
	gates     map[string]chan struct{}
	calls     []string

	// IgnoreCancel makes held calls wait for Release even after their context
	// is cancelled, like a transport that does not honour cancellation.
	IgnoreCancel bool
}

// NewMockService creates an empty mock.
func NewMockService() *MockService {
	return &MockService{
		forecasts: make(map[string][]Day),
		errs:      make(map[string]error),
		gates:     make(map[string]chan struct{}),
	}
}

// SetForecast scripts the days returned for location.
func (m *MockService) SetForecast(location string, days []Day) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forecasts[location] = slices.Clone(days)
}

// SetError scripts the error returned for location.
func (m *MockService) SetError(location string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[location] = err
}

// Hold makes calls for location block until the returned release func runs.
func (m *MockService) Hold(location string) (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.gates[location] = gate
	m.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Calls returns the locations requested so far, in order.
func (m *MockService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

func (m *MockService) Forecast(ctx context.Context, location string) ([]Day, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	m.mu.Lock()
	m.calls = append(m.calls, location)
	gate := m.gates[location]
	ignoreCancel := m.IgnoreCancel
	m.mu.Unlock()

	if gate != nil {
		if ignoreCancel {
			<-gate
		} else {
			select {
			case <-gate:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.errs[location]; ok {
		return nil, err
	}
	if days, ok := m.forecasts[location]; ok {
		return slices.Clone(days), nil
	}
	return nil, ErrNotFound
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
