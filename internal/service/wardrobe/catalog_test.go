package wardrobe

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestFilterMatchesCategorySubstringIgnoringCase(t *testing.T) {
	items := []Item{
		{ID: "1", Category: "Tops"},
		{ID: "2", Category: "Bottoms"},
		{ID: "3", Category: "tank TOPS"},
		{ID: "4", Category: "Outerwear"},
	}

	got := Filter(items, "tOp")
	if diff := cmp.Diff([]string{"1", "3"}, ids(got)); diff != "" {
		t.Fatalf("filtered ids mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterEmptyReturnsEverything(t *testing.T) {
	items := []Item{{ID: "a", Category: "Shoes"}, {ID: "b", Category: "Hats"}}
	assert.Equal(t, items, Filter(items, ""))
}

func TestFilterUnicodeFolding(t *testing.T) {
	items := []Item{{ID: "1", Category: "STRASSE"}, {ID: "2", Category: "Ωmega"}}
	assert.Equal(t, []string{"2"}, ids(Filter(items, "ωMEGA")))
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter([]Item{{ID: "1", Category: "Tops"}}, "Shoes")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalogTracksFilterAndStore(t *testing.T) {
	store, err := NewMemoryStore(
		Item{ID: "1", Name: "Tee", Category: "Tops"},
		Item{ID: "2", Name: "Jeans", Category: "Bottoms"},
	)
	require.NoError(t, err)
	catalog := NewCatalog(store)
	ctx := context.Background()

	all, err := catalog.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(all))

	catalog.SetFilter("bot")
	assert.Equal(t, "bot", catalog.Filter())
	filtered, err := catalog.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(filtered))

	_, err = store.Create(ctx, Item{ID: "3", Name: "Shorts", Category: "BOTTOMS"})
	require.NoError(t, err)
	filtered, err = catalog.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, ids(filtered))
}
