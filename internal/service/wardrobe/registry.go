package wardrobe

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTimeout is how long an untouched session stays open.
const DefaultIdleTimeout = 30 * time.Minute

// Session is an editor opened over HTTP.
type Session struct {
	ID       string
	OpenedAt time.Time
	Editor   *Editor

	lastSeen time.Time
}

// Registry tracks open editor sessions. Accepted, cancelled and idle sessions
// are discarded.
type Registry struct {
	mu       sync.Mutex
	store    Store
	limit    int
	idle     time.Duration
	now      func() time.Time
	sessions map[string]*Session
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithIdleTimeout discards sessions not touched for d. Zero or less keeps the default.
func WithIdleTimeout(d time.Duration) RegistryOption {
	return func(r *Registry) {
		if d > 0 {
			r.idle = d
		}
	}
}

// NewRegistry returns a registry that opens editors over store, allowing at most limit at once.
func NewRegistry(store Store, limit int, opts ...RegistryOption) *Registry {
	r := &Registry{
		store:    store,
		limit:    limit,
		idle:     DefaultIdleTimeout,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open starts a session editing itemID, or creating a new item when itemID is empty.
func (r *Registry) Open(ctx context.Context, itemID string) (*Session, error) {
	editor := NewEditor(r.store)
	if itemID == "" {
		editor.OpenNew()
	} else {
		item, err := r.store.Get(ctx, itemID)
		if err != nil {
			return nil, err
		}
		editor.Open(*item)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.expireLocked(now)
	if r.limit > 0 && len(r.sessions) >= r.limit {
		return nil, ErrTooManyEditors
	}
	s := &Session{ID: uuid.NewString(), OpenedAt: now.UTC(), Editor: editor, lastSeen: now}
	r.sessions[s.ID] = s
	return s, nil
}

// Get returns an open session and marks it as used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrEditorNotFound
	}
	if r.expired(s, now) {
		s.Editor.Cancel()
		delete(r.sessions, id)
		return nil, ErrEditorNotFound
	}
	s.lastSeen = now
	return s, nil
}

// Submit submits the session's draft and discards the session when it is accepted.
func (r *Registry) Submit(ctx context.Context, id string) (*Item, error) {
	s, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	item, err := s.Editor.Submit(ctx)
	if err != nil {
		return nil, err
	}
	r.remove(id)
	return item, nil
}

// Cancel closes and discards a session.
func (r *Registry) Cancel(id string) error {
	s, err := r.Get(id)
	if err != nil {
		return err
	}
	s.Editor.Cancel()
	r.remove(id)
	return nil
}

// Len reports the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	return now.Sub(s.lastSeen) >= r.idle
}

func (r *Registry) expireLocked(now time.Time) {
	for id, s := range r.sessions {
		if r.expired(s, now) {
			s.Editor.Cancel()
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Commit runs a one-shot editor: open for itemID (or new), apply patch, submit.
// The dialog is never registered, so a rejected draft simply disappears.
func Commit(ctx context.Context, store Store, itemID string, patch DraftPatch) (*Item, error) {
	editor := NewEditor(store)
	if itemID == "" {
		editor.OpenNew()
	} else {
		item, err := store.Get(ctx, itemID)
		if err != nil {
			return nil, err
		}
		editor.Open(*item)
	}
	if err := editor.Apply(patch); err != nil {
		return nil, err
	}
	return editor.Submit(ctx)
}
