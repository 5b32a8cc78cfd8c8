package wardrobe

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Filter returns the items whose category contains f, ignoring case, in their
// original order. An empty f returns items unchanged.
func Filter(items []Item, f string) []Item {
	if f == "" {
		return items
	}
	// A Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(f)
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(item.Category), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Catalog is the filterable view over the store. It owns the current filter
// text and re-filters on every read.
type Catalog struct {
	mu     sync.RWMutex
	reader Reader
	filter string
}

// NewCatalog returns a catalog over reader with an empty filter.
func NewCatalog(reader Reader) *Catalog {
	return &Catalog{reader: reader}
}

// SetFilter replaces the filter text.
func (c *Catalog) SetFilter(f string) {
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
}

// Filter returns the current filter text.
func (c *Catalog) Filter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter
}

// Items returns the store contents matching the current filter.
func (c *Catalog) Items(ctx context.Context) ([]Item, error) {
	items, err := c.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, c.Filter()), nil
}
