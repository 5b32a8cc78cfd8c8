package wardrobe

import (
	"context"
	"sync"
)

// MockSink implements ItemSink for unit tests, recording every emission.
// Setting Err makes both methods fail without recording.
type MockSink struct {
	mu      sync.Mutex
	Created []Item
	Updated []Item
	Err     error
}

func (m *MockSink) Create(_ context.Context, item Item) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Created = append(m.Created, item)
	return &item, nil
}

func (m *MockSink) Update(_ context.Context, item Item) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Updated = append(m.Updated, item)
	return &item, nil
}

// Emissions returns how many items reached the sink.
func (m *MockSink) Emissions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Created) + len(m.Updated)
}
