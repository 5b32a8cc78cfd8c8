// Package outfit serves precomputed outfit suggestions. How suggestions are
// produced is outside this service; it only relays what a Source provides.
package outfit

import (
	"context"
	"slices"
)

// Suggestion is a read-only outfit recommendation.
type Suggestion struct {
	ID      string
	Name    string
	Weather string
}

// Source lists the current suggestions.
type Source interface {
	List(ctx context.Context) ([]Suggestion, error)
}

// StaticSource serves a fixed list, typically from the seed file.
type StaticSource struct {
	suggestions []Suggestion
}

// NewStaticSource copies suggestions into a new source.
func NewStaticSource(suggestions ...Suggestion) *StaticSource {
	return &StaticSource{suggestions: slices.Clone(suggestions)}
}

// List returns a copy of the suggestions; never nil.
func (s *StaticSource) List(_ context.Context) ([]Suggestion, error) {
	if len(s.suggestions) == 0 {
		return []Suggestion{}, nil
	}
	return slices.Clone(s.suggestions), nil
}
