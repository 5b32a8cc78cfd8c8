package wardrobe

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryStoreRejectsDuplicateSeed(t *testing.T) {
	_, err := NewMemoryStore(Item{ID: "x"}, Item{ID: "x"})
	assert.True(t, errors.Is(err, ErrAlreadyExists), "got %v", err)
}

func TestNewMemoryStoreAssignsMissingIDs(t *testing.T) {
	store, err := NewMemoryStore(Item{Name: "Scarf", Category: "Accessories"})
	require.NoError(t, err)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	_, err = uuid.Parse(items[0].ID)
	assert.NoError(t, err)
}

func TestMemoryStoreCreateKeepsOrder(t *testing.T) {
	store, err := NewMemoryStore(Item{ID: "a", Name: "A", Category: "Tops"})
	require.NoError(t, err)
	ctx := context.Background()

	created, err := store.Create(ctx, Item{Name: "B", Category: "Bottoms"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", created.ID}, ids(items))

	_, err = store.Create(ctx, Item{ID: "a"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMemoryStoreUpdateKeepsPositionAndCreatedAt(t *testing.T) {
	store, err := NewMemoryStore(
		Item{ID: "a", Name: "A", Category: "Tops"},
		Item{ID: "b", Name: "B", Category: "Tops"},
	)
	require.NoError(t, err)
	ctx := context.Background()
	before, err := store.Get(ctx, "a")
	require.NoError(t, err)

	updated, err := store.Update(ctx, Item{ID: "a", Name: "A2", Category: "Outerwear"})
	require.NoError(t, err)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "A2", updated.Name)

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(items))

	_, err = store.Update(ctx, Item{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store, err := NewMemoryStore(Item{ID: "a", Name: "Coat", Category: "Outerwear"})
	require.NoError(t, err)
	ctx := context.Background()

	items, err := store.List(ctx)
	require.NoError(t, err)
	items[0].Name = "mutated"

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	got.Category = "mutated"

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Coat", again.Name)
	assert.Equal(t, "Outerwear", again.Category)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	_, err = store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
