package wardrobe

// ItemList is the response body containing paginated items.
type ItemList struct {
	Items []Item `json:"items" doc:"Items on this page"`
	Total int    `json:"total" doc:"Total count of items matching the filter" example:"12"`
}

// ItemsListOutput is the response wrapper with pagination Link header.
type ItemsListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ItemList
}

// ItemOutput returns a single item.
type ItemOutput struct {
	Body Item
}

// ItemCreateOutput returns a created item and its location.
type ItemCreateOutput struct {
	Location string `header:"Location" doc:"URL of the created item"`
	Body     Item
}

// EditorOutput returns an editor session.
type EditorOutput struct {
	Body Editor
}

// EditorOpenOutput returns a new editor session and its location.
type EditorOpenOutput struct {
	Location string `header:"Location" doc:"URL of the editor session"`
	Body     Editor
}

// CatalogOutput returns the catalog view.
type CatalogOutput struct {
	Body Catalog
}
