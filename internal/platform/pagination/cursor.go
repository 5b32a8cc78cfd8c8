package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor indicates the cursor could not be decoded or belongs to another listing.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor is a position in a listing: the kind of resource and the last ID seen.
// An empty Value means "from the start".
type Cursor struct {
	Kind  string
	Value string
}

// Encode returns the opaque URL-safe form "base64(kind:value)".
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Kind + ":" + c.Value))
}

// DecodeCursor parses an encoded cursor. The empty string decodes to the zero Cursor.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	kind, value, ok := strings.Cut(string(b), ":")
	if !ok {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Kind: kind, Value: value}, nil
}
