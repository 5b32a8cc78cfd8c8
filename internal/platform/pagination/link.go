package pagination

import (
	"net/url"
	"strings"
)

// Link is one RFC 8288 link target. An empty Cursor points at the first page.
type Link struct {
	Rel    string
	Cursor string
}

// LinkHeader renders links against baseURL. Every target keeps query and
// replaces its cursor; links whose Rel is empty are skipped.
func LinkHeader(baseURL string, query url.Values, links ...Link) string {
	var b strings.Builder
	for _, l := range links {
		if l.Rel == "" {
			continue
		}
		q := cloneValues(query)
		q.Del("cursor")
		if l.Cursor != "" {
			q.Set("cursor", l.Cursor)
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("<" + baseURL)
		if enc := q.Encode(); enc != "" {
			b.WriteString("?" + enc)
		}
		b.WriteString(`>; rel="` + l.Rel + `"`)
	}
	return b.String()
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
