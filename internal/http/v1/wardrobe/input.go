package wardrobe

import "github.com/janisto/lazydrobe/internal/platform/pagination"

// ItemsListInput defines query parameters for listing items.
type ItemsListInput struct {
	pagination.Params
	Category string `query:"category" doc:"Case-insensitive substring of the category" example:"top"`
}

// ItemGetInput identifies an item.
type ItemGetInput struct {
	ID string `path:"id" doc:"Item identifier"`
}

// ItemBody carries item fields. Emptiness is judged by the editor, not the schema.
type ItemBody struct {
	Name     string `json:"name,omitempty"     doc:"Item name"     maxLength:"200"  example:"Wool Coat"`
	Category string `json:"category,omitempty" doc:"Item category" maxLength:"100"  example:"Outerwear"`
	Image    string `json:"image,omitempty"    doc:"Image URL"     maxLength:"2048" example:"https://example.com/coat.png"`
}

// ItemCreateInput is the request for creating an item.
type ItemCreateInput struct {
	Body ItemBody
}

// ItemReplaceInput is the request for replacing an item's fields.
type ItemReplaceInput struct {
	ID   string `path:"id" doc:"Item identifier"`
	Body ItemBody
}

// EditorOpenBody optionally names the item to edit.
type EditorOpenBody struct {
	ItemID string `json:"itemId,omitempty" doc:"Item to edit; omit to create a new item"`
}

// EditorOpenInput is the request for opening an editor.
type EditorOpenInput struct {
	Body *EditorOpenBody `required:"false"`
}

// EditorIDInput identifies an editor session.
type EditorIDInput struct {
	ID string `path:"id" doc:"Editor session identifier"`
}

// EditorPatchInput updates draft fields; omitted fields are left alone.
type EditorPatchInput struct {
	ID   string `path:"id" doc:"Editor session identifier"`
	Body struct {
		Name     *string `json:"name,omitempty"     doc:"New draft name"      maxLength:"200"`
		Category *string `json:"category,omitempty" doc:"New draft category"  maxLength:"100"`
		Image    *string `json:"image,omitempty"    doc:"New draft image URL" maxLength:"2048"`
	}
}

// CatalogFilterInput replaces the catalog filter.
type CatalogFilterInput struct {
	Body struct {
		Filter string `json:"filter" doc:"Category filter text; empty shows everything" maxLength:"100"`
	}
}
