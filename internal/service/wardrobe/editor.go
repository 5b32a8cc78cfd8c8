package wardrobe

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/janisto/lazydrobe/internal/platform/validation"
)

// Mode tells whether an open editor creates a new item or edits an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Draft is the editable part of an item. Name and category must be non-empty;
// whitespace counts as content.
type Draft struct {
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category" validate:"required"`
	Image    string `json:"image"`
}

// DraftPatch sets the non-nil fields of a draft.
type DraftPatch struct {
	Name     *string
	Category *string
	Image    *string
}

// EditorState is a point-in-time copy of an editor.
type EditorState struct {
	Open     bool
	Mode     Mode
	Original Item
	Draft    Draft
}

// Editor is the item editor dialog: closed until opened for an item or a new
// one, open until cancelled or a submitted draft is accepted by the sink.
type Editor struct {
	mu       sync.Mutex
	sink     ItemSink
	open     bool
	mode     Mode
	original Item
	draft    Draft
}

// NewEditor returns a closed editor that commits to sink.
func NewEditor(sink ItemSink) *Editor {
	return &Editor{sink: sink}
}

// Open starts editing item with a draft copied from it.
func (e *Editor) Open(item Item) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = true
	e.mode = ModeEdit
	e.original = item
	e.draft = Draft{Name: item.Name, Category: item.Category, Image: item.Image}
}

// OpenNew starts creating an item from an empty draft.
func (e *Editor) OpenNew() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = true
	e.mode = ModeCreate
	e.original = Item{}
	e.draft = Draft{}
}

// State returns a copy of the editor state.
func (e *Editor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return EditorState{Open: e.open, Mode: e.mode, Original: e.original, Draft: e.draft}
}

// SetName replaces the draft name.
func (e *Editor) SetName(v string) error {
	return e.Apply(DraftPatch{Name: &v})
}

// SetCategory replaces the draft category.
func (e *Editor) SetCategory(v string) error {
	return e.Apply(DraftPatch{Category: &v})
}

// SetImage replaces the draft image URL.
func (e *Editor) SetImage(v string) error {
	return e.Apply(DraftPatch{Image: &v})
}

// Apply sets every non-nil field of p on the draft.
func (e *Editor) Apply(p DraftPatch) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrEditorClosed
	}
	if p.Name != nil {
		e.draft.Name = *p.Name
	}
	if p.Category != nil {
		e.draft.Category = *p.Category
	}
	if p.Image != nil {
		e.draft.Image = *p.Image
	}
	return nil
}

// Submit validates the draft and commits it. A rejected draft returns
// *validation.Error and the editor stays open with the draft untouched; so
// does a sink failure. On success the editor closes.
func (e *Editor) Submit(ctx context.Context) (*Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return nil, ErrEditorClosed
	}
	if err := validation.Struct(e.draft); err != nil {
		return nil, err
	}

	record := e.original
	record.Name = e.draft.Name
	record.Category = e.draft.Category
	record.Image = e.draft.Image

	var (
		saved *Item
		err   error
	)
	if e.mode == ModeEdit {
		saved, err = e.sink.Update(ctx, record)
	} else {
		record.ID = uuid.NewString()
		saved, err = e.sink.Create(ctx, record)
	}
	if err != nil {
		return nil, err
	}

	e.close()
	return saved, nil
}

// Cancel closes the editor and drops the draft.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.close()
}

func (e *Editor) close() {
	e.open = false
	e.mode = ""
	e.original = Item{}
	e.draft = Draft{}
}
