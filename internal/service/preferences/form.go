// Package preferences holds the user's fashion preferences and body info as
// editable drafts with read-only summaries.
package preferences

import (
	"context"
	"errors"
	"strings"
	"sync"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
)

// ErrUnknownField is returned when a change names a field the form does not have.
var ErrUnknownField = errors.New("unknown preference field")

// notSpecified is shown for empty values.
const notSpecified = "Not specified"

// Line is one row of a summary, e.g. {"Gender", "Female"}.
type Line struct {
	Label string
	Value string
}

// Summary is the read-only rendering of a form.
type Summary []Line

func (s Summary) String() string {
	rows := make([]string, len(s))
	for i, l := range s {
		rows[i] = l.Label + ": " + l.Value
	}
	return strings.Join(rows, "\n")
}

// Change sets Field to Value.
type Change struct {
	Field string
	Value string
}

// Document is a form's value type.
type Document[T any] interface {
	comparable
	// With returns a copy with field set, or an error when the value is refused.
	With(field, value string) (T, error)
	// Merge returns a copy with the non-empty fields of other laid over it.
	Merge(other T) T
	Summary() Summary
}

// Form is a draft seeded from initial values. Refused changes leave it untouched.
type Form[T Document[T]] struct {
	mu      sync.RWMutex
	name    string
	initial T
	draft   T
}

// NewForm returns a form named name (used in audit events) seeded from initial.
func NewForm[T Document[T]](name string, initial T) *Form[T] {
	return &Form[T]{name: name, initial: initial, draft: initial}
}

// Draft returns the current values.
func (f *Form[T]) Draft() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.draft
}

// Summary renders the current values.
func (f *Form[T]) Summary() Summary {
	return f.Draft().Summary()
}

// Reseed merges initial over the draft when it differs from the last initial values.
// Only non-empty fields of initial are merged, so reseeding never clears a field.
func (f *Form[T]) Reseed(ctx context.Context, initial T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if initial == f.initial {
		return
	}
	f.initial = initial
	f.draft = f.draft.Merge(initial)
	f.audit(ctx, "reseed", "success", nil)
}

// Set updates one field.
func (f *Form[T]) Set(ctx context.Context, field, value string) error {
	return f.Apply(ctx, Change{Field: field, Value: value})
}

// Apply applies changes in order and stops at the first refused one; the
// changes before it stay applied.
func (f *Form[T]) Apply(ctx context.Context, changes ...Change) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range changes {
		next, err := f.draft.With(c.Field, c.Value)
		if err != nil {
			f.audit(ctx, "update", "failure", map[string]any{"field": c.Field})
			return err
		}
		f.draft = next
	}
	if len(changes) > 0 {
		f.audit(ctx, "update", "success", map[string]any{"fields": len(changes)})
	}
	return nil
}

func (f *Form[T]) audit(ctx context.Context, action, result string, details map[string]any) {
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action:       action,
		ResourceType: "preferences",
		ResourceID:   f.name,
		Result:       result,
		Details:      details,
	})
}

func orNotSpecified(v string) string {
	if v == "" {
		return notSpecified
	}
	return v
}

func mergeString(base, over string) string {
	if over != "" {
		return over
	}
	return base
}
