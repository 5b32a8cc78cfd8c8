package pagination

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Params embeds into huma input structs for paginated listings.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from a previous Link header"`
	Limit  int    `query:"limit"  doc:"Maximum items per page" default:"20" minimum:"1" maximum:"100"`
}

// PageSize returns the limit clamped to [1, 100], defaulting to 20.
func (p Params) PageSize() int {
	switch {
	case p.Limit <= 0:
		return defaultLimit
	case p.Limit > maxLimit:
		return maxLimit
	default:
		return p.Limit
	}
}

// CursorFor decodes the cursor and checks it was issued for kind.
func (p Params) CursorFor(kind string) (Cursor, error) {
	c, err := DecodeCursor(p.Cursor)
	if err != nil {
		return Cursor{}, err
	}
	if p.Cursor != "" && c.Kind != kind {
		return Cursor{}, ErrInvalidCursor
	}
	return c, nil
}
