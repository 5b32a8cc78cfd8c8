package wardrobe

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/lazydrobe/internal/platform/pagination"
	"github.com/janisto/lazydrobe/internal/platform/timeutil"
	"github.com/janisto/lazydrobe/internal/platform/validation"
	wardrobesvc "github.com/janisto/lazydrobe/internal/service/wardrobe"
)

const cursorKind = "item"

// Register wires wardrobe item, editor and catalog routes into the API.
func Register(
	api huma.API,
	store wardrobesvc.Store,
	catalog *wardrobesvc.Catalog,
	editors *wardrobesvc.Registry,
	prefix string,
) {
	registerItems(api, store, prefix)
	registerEditors(api, editors, prefix)
	registerCatalog(api, catalog)
}

func registerItems(api huma.API, store wardrobesvc.Store, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-wardrobe-items",
		Method:      http.MethodGet,
		Path:        "/wardrobe/items",
		Summary:     "List wardrobe items",
		Description: "Returns wardrobe items in insertion order, optionally filtered by a case-insensitive category substring. " +
			"Use the cursor from the Link header to navigate between pages.",
		Tags: []string{"Wardrobe"},
	}, func(ctx context.Context, input *ItemsListInput) (*ItemsListOutput, error) {
		cursor, err := input.CursorFor(cursorKind)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor")
		}

		items, err := store.List(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}
		filtered := wardrobesvc.Filter(items, input.Category)

		query := url.Values{}
		if input.Category != "" {
			query.Set("category", input.Category)
		}
		page := pagination.Paginate(filtered, pagination.Request{
			Kind:    cursorKind,
			Cursor:  cursor,
			Limit:   input.PageSize(),
			BaseURL: prefix + "/wardrobe/items",
			Query:   query,
		}, func(item wardrobesvc.Item) string { return item.ID })

		return &ItemsListOutput{
			Link: page.LinkHeader,
			Body: ItemList{Items: toHTTPItems(page.Items), Total: page.Total},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-wardrobe-item",
		Method:      http.MethodGet,
		Path:        "/wardrobe/items/{id}",
		Summary:     "Get a wardrobe item",
		Tags:        []string{"Wardrobe"},
	}, func(ctx context.Context, input *ItemGetInput) (*ItemOutput, error) {
		item, err := store.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ItemOutput{Body: toHTTPItem(*item)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-wardrobe-item",
		Method:        http.MethodPost,
		Path:          "/wardrobe/items",
		Summary:       "Create a wardrobe item",
		Description:   "Runs the item editor in one step: opens it empty, fills the draft and submits. Name and category must not be blank.",
		Tags:          []string{"Wardrobe"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *ItemCreateInput) (*ItemCreateOutput, error) {
		item, err := wardrobesvc.Commit(ctx, store, "", fullPatch(input.Body))
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ItemCreateOutput{
			Location: prefix + "/wardrobe/items/" + url.PathEscape(item.ID),
			Body:     toHTTPItem(*item),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "replace-wardrobe-item",
		Method:      http.MethodPut,
		Path:        "/wardrobe/items/{id}",
		Summary:     "Replace a wardrobe item's fields",
		Description: "Runs the item editor in one step for an existing item. Omitted fields become empty.",
		Tags:        []string{"Wardrobe"},
	}, func(ctx context.Context, input *ItemReplaceInput) (*ItemOutput, error) {
		item, err := wardrobesvc.Commit(ctx, store, input.ID, fullPatch(input.Body))
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ItemOutput{Body: toHTTPItem(*item)}, nil
	})
}

func registerEditors(api huma.API, editors *wardrobesvc.Registry, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID:   "open-item-editor",
		Method:        http.MethodPost,
		Path:          "/wardrobe/editors",
		Summary:       "Open an item editor",
		Description:   "Opens an editor seeded from an existing item, or an empty one when no itemId is given.",
		Tags:          []string{"Item Editor"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *EditorOpenInput) (*EditorOpenOutput, error) {
		var itemID string
		if input.Body != nil {
			itemID = input.Body.ItemID
		}
		session, err := editors.Open(ctx, itemID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &EditorOpenOutput{
			Location: prefix + "/wardrobe/editors/" + session.ID,
			Body:     toHTTPEditor(session),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-item-editor",
		Method:      http.MethodGet,
		Path:        "/wardrobe/editors/{id}",
		Summary:     "Get an item editor",
		Tags:        []string{"Item Editor"},
	}, func(_ context.Context, input *EditorIDInput) (*EditorOutput, error) {
		session, err := editors.Get(input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &EditorOutput{Body: toHTTPEditor(session)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-item-editor",
		Method:      http.MethodPatch,
		Path:        "/wardrobe/editors/{id}",
		Summary:     "Update an item editor draft",
		Description: "Sets the provided draft fields. Nothing is validated until submit.",
		Tags:        []string{"Item Editor"},
	}, func(_ context.Context, input *EditorPatchInput) (*EditorOutput, error) {
		session, err := editors.Get(input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		if err := session.Editor.Apply(wardrobesvc.DraftPatch{
			Name:     input.Body.Name,
			Category: input.Body.Category,
			Image:    input.Body.Image,
		}); err != nil {
			return nil, mapServiceError(err)
		}
		return &EditorOutput{Body: toHTTPEditor(session)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "submit-item-editor",
		Method:      http.MethodPost,
		Path:        "/wardrobe/editors/{id}/submit",
		Summary:     "Submit an item editor",
		Description: "Commits the draft and closes the editor. A draft with a blank name or category is " +
			"rejected with 422 listing the violations, and the editor stays open.",
		Tags: []string{"Item Editor"},
	}, func(ctx context.Context, input *EditorIDInput) (*ItemOutput, error) {
		item, err := editors.Submit(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ItemOutput{Body: toHTTPItem(*item)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "cancel-item-editor",
		Method:        http.MethodDelete,
		Path:          "/wardrobe/editors/{id}",
		Summary:       "Cancel an item editor",
		Tags:          []string{"Item Editor"},
		DefaultStatus: http.StatusNoContent,
	}, func(_ context.Context, input *EditorIDInput) (*struct{}, error) {
		if err := editors.Cancel(input.ID); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

func registerCatalog(api huma.API, catalog *wardrobesvc.Catalog) {
	huma.Register(api, huma.Operation{
		OperationID: "get-wardrobe-catalog",
		Method:      http.MethodGet,
		Path:        "/wardrobe/catalog",
		Summary:     "Get the catalog view",
		Description: "Returns the current filter and the items matching it.",
		Tags:        []string{"Wardrobe"},
	}, func(ctx context.Context, _ *struct{}) (*CatalogOutput, error) {
		return catalogOutput(ctx, catalog)
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-wardrobe-catalog-filter",
		Method:      http.MethodPut,
		Path:        "/wardrobe/catalog/filter",
		Summary:     "Set the catalog filter",
		Description: "Replaces the filter text and returns the re-filtered catalog.",
		Tags:        []string{"Wardrobe"},
	}, func(ctx context.Context, input *CatalogFilterInput) (*CatalogOutput, error) {
		catalog.SetFilter(input.Body.Filter)
		return catalogOutput(ctx, catalog)
	})
}

func catalogOutput(ctx context.Context, catalog *wardrobesvc.Catalog) (*CatalogOutput, error) {
	items, err := catalog.Items(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &CatalogOutput{Body: Catalog{
		Filter: catalog.Filter(),
		Items:  toHTTPItems(items),
		Total:  len(items),
	}}, nil
}

func fullPatch(b ItemBody) wardrobesvc.DraftPatch {
	return wardrobesvc.DraftPatch{Name: &b.Name, Category: &b.Category, Image: &b.Image}
}

func mapServiceError(err error) error {
	if ve, ok := validation.AsError(err); ok {
		return huma.Error422UnprocessableEntity("item draft rejected", ve.Details()...)
	}
	switch {
	case errors.Is(err, wardrobesvc.ErrNotFound):
		return huma.Error404NotFound("item not found")
	case errors.Is(err, wardrobesvc.ErrEditorNotFound):
		return huma.Error404NotFound("editor not found")
	case errors.Is(err, wardrobesvc.ErrEditorClosed):
		return huma.Error409Conflict("editor is closed")
	case errors.Is(err, wardrobesvc.ErrAlreadyExists):
		return huma.Error409Conflict("item already exists")
	case errors.Is(err, wardrobesvc.ErrTooManyEditors):
		return huma.Error429TooManyRequests("too many open editors")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPItem(i wardrobesvc.Item) Item {
	return Item{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		Image:     i.Image,
		CreatedAt: timeutil.NewTime(i.CreatedAt),
		UpdatedAt: timeutil.NewTime(i.UpdatedAt),
	}
}

func toHTTPItems(items []wardrobesvc.Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = toHTTPItem(item)
	}
	return out
}

func toHTTPEditor(s *wardrobesvc.Session) Editor {
	state := s.Editor.State()
	return Editor{
		ID:     s.ID,
		Mode:   string(state.Mode),
		ItemID: state.Original.ID,
		Draft: Draft{
			Name:     state.Draft.Name,
			Category: state.Draft.Category,
			Image:    state.Draft.Image,
		},
		OpenedAt: timeutil.NewTime(s.OpenedAt),
	}
}
