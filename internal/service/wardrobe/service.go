// Package wardrobe holds the item collection, the catalog filter over it and
// the item editor dialog that commits drafts back into it.
package wardrobe

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound       = errors.New("wardrobe item not found")
	ErrAlreadyExists  = errors.New("wardrobe item already exists")
	ErrEditorClosed   = errors.New("item editor is closed")
	ErrEditorNotFound = errors.New("item editor not found")
	ErrTooManyEditors = errors.New("too many open item editors")
)

// Item is one piece of clothing in the wardrobe.
type Item struct {
	ID        string
	Name      string
	Category  string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reader lists and fetches items. Returned items are copies.
type Reader interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
}

// ItemSink receives committed editor output. It is the only way items change.
type ItemSink interface {
	Create(ctx context.Context, item Item) (*Item, error)
	Update(ctx context.Context, item Item) (*Item, error)
}

// Store is the owned item collection.
type Store interface {
	Reader
	ItemSink
}
