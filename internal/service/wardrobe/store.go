package wardrobe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
)

const resourceType = "wardrobe_item"

// MemoryStore keeps items in insertion order for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	items map[string]Item
	now   func() time.Time
}

// NewMemoryStore returns a store preloaded with seed, in order. Seed items
// without an ID get one; duplicate IDs are rejected.
func NewMemoryStore(seed ...Item) (*MemoryStore, error) {
	s := &MemoryStore{
		items: make(map[string]Item, len(seed)),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, item := range seed {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if _, exists := s.items[item.ID]; exists {
			return nil, fmt.Errorf("seed item %q: %w", item.ID, ErrAlreadyExists)
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt = s.now()
		}
		if item.UpdatedAt.IsZero() {
			item.UpdatedAt = item.CreatedAt
		}
		s.order = append(s.order, item.ID)
		s.items[item.ID] = item
	}
	return s, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// Create appends item, assigning an ID when it has none.
func (s *MemoryStore) Create(ctx context.Context, item Item) (*Item, error) {
	s.mu.Lock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if _, exists := s.items[item.ID]; exists {
		s.mu.Unlock()
		audit(ctx, "create", item.ID, "failure", map[string]any{"reason": "already_exists"})
		return nil, ErrAlreadyExists
	}
	now := s.now()
	item.CreatedAt = now
	item.UpdatedAt = now
	s.order = append(s.order, item.ID)
	s.items[item.ID] = item
	s.mu.Unlock()

	audit(ctx, "create", item.ID, "success", nil)
	return &item, nil
}

// Update replaces the stored item with the same ID, keeping its position and creation time.
func (s *MemoryStore) Update(ctx context.Context, item Item) (*Item, error) {
	s.mu.Lock()
	existing, ok := s.items[item.ID]
	if !ok {
		s.mu.Unlock()
		audit(ctx, "update", item.ID, "failure", map[string]any{"reason": "not_found"})
		return nil, ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = s.now()
	s.items[item.ID] = item
	s.mu.Unlock()

	audit(ctx, "update", item.ID, "success", nil)
	return &item, nil
}

func audit(ctx context.Context, action, id, result string, details map[string]any) {
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   id,
		Result:       result,
		Details:      details,
	})
}
