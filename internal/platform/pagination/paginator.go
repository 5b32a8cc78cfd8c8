package pagination

import (
	"net/url"
	"strconv"
)

// Page is one window of a listing plus the cursors and Link header around it.
type Page[T any] struct {
	Items      []T
	Total      int
	NextCursor string
	PrevCursor string
	LinkHeader string
}

// Request describes the window to cut and where the Link header should point.
type Request struct {
	Kind    string
	Cursor  Cursor
	Limit   int
	BaseURL string
	Query   url.Values
}

// Paginate cuts items after the cursor position. A cursor whose value is no
// longer present restarts from the beginning, so deleted items never strand a client.
func Paginate[T any](items []T, req Request, id func(T) string) Page[T] {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	start := 0
	if req.Cursor.Value != "" {
		for i, item := range items {
			if id(item) == req.Cursor.Value {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, len(items))

	page := Page[T]{Items: items[start:end], Total: len(items)}
	if page.Items == nil {
		page.Items = []T{}
	}
	if end < len(items) && end > start {
		page.NextCursor = Cursor{Kind: req.Kind, Value: id(items[end-1])}.Encode()
	}
	if start > 0 {
		prev := ""
		if start-limit > 0 {
			prev = id(items[start-limit-1])
		}
		page.PrevCursor = Cursor{Kind: req.Kind, Value: prev}.Encode()
	}

	var links []Link
	if page.NextCursor != "" {
		links = append(links, Link{Rel: "next", Cursor: page.NextCursor})
	}
	if start > 0 {
		links = append(links, Link{Rel: "prev", Cursor: page.PrevCursor}, Link{Rel: "first"})
	}
	query := cloneValues(req.Query)
	query.Set("limit", strconv.Itoa(limit))
	page.LinkHeader = LinkHeader(req.BaseURL, query, links...)
	return page
}
