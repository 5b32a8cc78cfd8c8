package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
)

type testItem struct {
	ID string
}

func makeItems(n int) []testItem {
	items := make([]testItem, n)
	for i := range n {
		items[i] = testItem{ID: fmt.Sprintf("item-%03d", i+1)}
	}
	return items
}

func itemID(i testItem) string { return i.ID }

func TestPaginateFirstPage(t *testing.T) {
	page := Paginate(makeItems(30), Request{Kind: "item", Limit: 10, BaseURL: "/items"}, itemID)

	if len(page.Items) != 10 || page.Total != 30 {
		t.Fatalf("expected 10 of 30 items, got %d of %d", len(page.Items), page.Total)
	}
	if page.Items[0].ID != "item-001" {
		t.Fatalf("expected item-001 first, got %s", page.Items[0].ID)
	}
	if page.NextCursor == "" || page.PrevCursor != "" {
		t.Fatalf("unexpected cursors next=%q prev=%q", page.NextCursor, page.PrevCursor)
	}
}

func TestPaginateMiddleAndLastPage(t *testing.T) {
	items := makeItems(30)

	middle := Paginate(items, Request{Kind: "item", Cursor: Cursor{Kind: "item", Value: "item-010"}, Limit: 10}, itemID)
	if middle.Items[0].ID != "item-011" || middle.NextCursor == "" || middle.PrevCursor == "" {
		t.Fatalf("unexpected middle page: first=%s next=%q prev=%q", middle.Items[0].ID, middle.NextCursor, middle.PrevCursor)
	}
	prev, err := DecodeCursor(middle.PrevCursor)
	if err != nil || prev.Value != "" {
		t.Fatalf("expected prev cursor to restart from the beginning, got %+v (%v)", prev, err)
	}

	last := Paginate(items, Request{Kind: "item", Cursor: Cursor{Kind: "item", Value: "item-020"}, Limit: 10}, itemID)
	if last.Items[0].ID != "item-021" || last.NextCursor != "" {
		t.Fatalf("unexpected last page: first=%s next=%q", last.Items[0].ID, last.NextCursor)
	}
	prev, _ = DecodeCursor(last.PrevCursor)
	if prev.Value != "item-010" {
		t.Fatalf("expected prev cursor item-010, got %q", prev.Value)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]testItem(nil), Request{Kind: "item", Limit: 10}, itemID)

	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", page.Items)
	}
	if page.NextCursor != "" || page.PrevCursor != "" || page.LinkHeader != "" {
		t.Fatalf("expected no cursors or links, got %+v", page)
	}
}

func TestPaginateUnknownCursorRestarts(t *testing.T) {
	page := Paginate(makeItems(5), Request{Kind: "item", Cursor: Cursor{Kind: "item", Value: "gone"}, Limit: 10}, itemID)
	if len(page.Items) != 5 || page.Items[0].ID != "item-001" {
		t.Fatalf("expected restart from beginning, got %d items", len(page.Items))
	}
}

func TestPaginateLinkHeaderPreservesQuery(t *testing.T) {
	query := url.Values{}
	query.Set("category", "Tops")

	page := Paginate(makeItems(30), Request{Kind: "item", Limit: 10, BaseURL: "/v1/wardrobe/items", Query: query}, itemID)

	for _, want := range []string{"</v1/wardrobe/items?", "category=Tops", "limit=10", `rel="next"`} {
		if !strings.Contains(page.LinkHeader, want) {
			t.Fatalf("expected %q in link header, got %s", want, page.LinkHeader)
		}
	}
	if query.Get("cursor") != "" {
		t.Fatal("caller query must not be mutated")
	}
}

func TestCursorRoundTrip(t *testing.T) {
	for _, c := range []Cursor{
		{Kind: "item", Value: "550e8400-e29b-41d4-a716-446655440000"},
		{Kind: "item", Value: "2024-01-15T10:30:00Z"},
		{Kind: "item", Value: ""},
		{Kind: "", Value: "a/b+c=d"},
	} {
		encoded := c.Encode()
		if strings.ContainsAny(encoded, "+/=") {
			t.Errorf("cursor %q is not URL-safe", encoded)
		}
		decoded, err := DecodeCursor(encoded)
		if err != nil || decoded != c {
			t.Errorf("round trip of %+v gave %+v (%v)", c, decoded, err)
		}
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	for _, input := range []string{"!!!invalid!!!", "dGVzdA", "abc def"} {
		if _, err := DecodeCursor(input); !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("DecodeCursor(%q): expected ErrInvalidCursor, got %v", input, err)
		}
	}
}

func TestParamsPageSize(t *testing.T) {
	tests := map[int]int{0: 20, -5: 20, 1: 1, 50: 50, 100: 100, 500: 100}
	for limit, want := range tests {
		if got := (Params{Limit: limit}).PageSize(); got != want {
			t.Errorf("PageSize(%d) = %d, want %d", limit, got, want)
		}
	}
}

func TestParamsCursorForRejectsOtherKind(t *testing.T) {
	p := Params{Cursor: Cursor{Kind: "outfit", Value: "x"}.Encode()}
	if _, err := p.CursorFor("item"); !errors.Is(err, ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}

	c, err := Params{}.CursorFor("item")
	if err != nil || c != (Cursor{}) {
		t.Fatalf("expected zero cursor for empty param, got %+v (%v)", c, err)
	}
}

func TestPaginateMiddlePageLinksFirst(t *testing.T) {
	page := Paginate(makeItems(30), Request{
		Kind:    "item",
		Cursor:  Cursor{Kind: "item", Value: "item-010"},
		Limit:   10,
		BaseURL: "/v1/wardrobe/items",
	}, itemID)

	for _, rel := range []string{`rel="next"`, `rel="prev"`, `</v1/wardrobe/items?limit=10>; rel="first"`} {
		if !strings.Contains(page.LinkHeader, rel) {
			t.Errorf("expected %s in link header, got %s", rel, page.LinkHeader)
		}
	}
}

func TestLinkHeader(t *testing.T) {
	query := url.Values{"cursor": {"stale"}, "tag": {"a", "b"}}

	got := LinkHeader("/items", query, Link{Rel: "next", Cursor: "n x"}, Link{}, Link{Rel: "first"})
	want := `</items?cursor=n+x&tag=a&tag=b>; rel="next", </items?tag=a&tag=b>; rel="first"`
	if got != want {
		t.Fatalf("LinkHeader mismatch\n got: %s\nwant: %s", got, want)
	}
	if query.Get("cursor") != "stale" {
		t.Fatal("caller query must not be mutated")
	}

	if got := LinkHeader("/items", nil, Link{Rel: "first"}); got != `</items>; rel="first"` {
		t.Fatalf("unexpected bare link %s", got)
	}
	if got := LinkHeader("/items", nil); got != "" {
		t.Fatalf("expected empty header, got %q", got)
	}
}
