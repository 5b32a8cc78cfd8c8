package wardrobe

import "github.com/janisto/lazydrobe/internal/platform/timeutil"

// Item is a wardrobe item.
type Item struct {
	ID        string        `json:"id"              doc:"Item identifier"  example:"0b6e4a5e-5f0a-4a8e-9d2c-3c1f1d7f8e21"`
	Name      string        `json:"name"            doc:"Item name"        example:"Wool Coat"`
	Category  string        `json:"category"        doc:"Item category"    example:"Outerwear"`
	Image     string        `json:"image,omitempty" doc:"Image URL"        example:"https://example.com/coat.png"`
	CreatedAt timeutil.Time `json:"createdAt"       doc:"Creation time"`
	UpdatedAt timeutil.Time `json:"updatedAt"       doc:"Last update time"`
}

// Draft is the editable part of an item.
type Draft struct {
	Name     string `json:"name"     doc:"Draft name"`
	Category string `json:"category" doc:"Draft category"`
	Image    string `json:"image"    doc:"Draft image URL"`
}

// Editor is an open item editor session.
type Editor struct {
	ID       string        `json:"id"               doc:"Editor session identifier"`
	Mode     string        `json:"mode"             doc:"create or edit"              enum:"create,edit"`
	ItemID   string        `json:"itemId,omitempty" doc:"Item being edited, empty when creating"`
	Draft    Draft         `json:"draft"            doc:"Current draft"`
	OpenedAt timeutil.Time `json:"openedAt"         doc:"When the editor was opened"`
}

// Catalog is the catalog view: its filter and the items matching it.
type Catalog struct {
	Filter string `json:"filter" doc:"Current category filter"`
	Items  []Item `json:"items"  doc:"Items whose category contains the filter, ignoring case"`
	Total  int    `json:"total"  doc:"Number of matching items"`
}
