// Package seed loads the read-only startup data: wardrobe items, outfit
// suggestions and initial preferences.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/janisto/lazydrobe/internal/platform/validation"
	"github.com/janisto/lazydrobe/internal/service/outfit"
	"github.com/janisto/lazydrobe/internal/service/preferences"
	"github.com/janisto/lazydrobe/internal/service/wardrobe"
)

// Data is the decoded seed file.
type Data struct {
	Items       []Item      `yaml:"items"`
	Outfits     []Outfit    `yaml:"outfits"`
	Preferences Preferences `yaml:"preferences"`
}

// Item is a seeded wardrobe item. An empty ID is assigned at load.
type Item struct {
	ID       string `yaml:"id"       json:"id"`
	Name     string `yaml:"name"     json:"name"     validate:"notblank"`
	Category string `yaml:"category" json:"category" validate:"notblank"`
	Image    string `yaml:"image"    json:"image"`
}

// Outfit is a seeded suggestion.
type Outfit struct {
	ID      string `yaml:"id"      json:"id"      validate:"required"`
	Name    string `yaml:"name"    json:"name"    validate:"notblank"`
	Weather string `yaml:"weather" json:"weather"`
}

// Preferences are the initial form values.
type Preferences struct {
	Fashion preferences.FashionPreferences `yaml:"fashion"`
	Body    preferences.BodyInfo           `yaml:"body"`
}

// LoadFile reads the seed at path. An empty path yields empty data.
func LoadFile(path string) (*Data, error) {
	if path == "" {
		return &Data{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Decode(bytes.NewReader(raw))
}

// Decode parses and validates a seed document. Unknown keys are rejected.
func Decode(r io.Reader) (*Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Data
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Data) validate() error {
	for i, item := range d.Items {
		if err := validation.Struct(item); err != nil {
			return fmt.Errorf("seed items[%d]: %w", i, err)
		}
	}
	for i, o := range d.Outfits {
		if err := validation.Struct(o); err != nil {
			return fmt.Errorf("seed outfits[%d]: %w", i, err)
		}
	}
	if err := validation.Var("inches", d.Preferences.Body.Inches, "omitempty,inches"); err != nil {
		return fmt.Errorf("seed preferences.body: %w", err)
	}
	return nil
}

// WardrobeItems converts the seeded items.
func (d *Data) WardrobeItems() []wardrobe.Item {
	out := make([]wardrobe.Item, len(d.Items))
	for i, item := range d.Items {
		out[i] = wardrobe.Item{ID: item.ID, Name: item.Name, Category: item.Category, Image: item.Image}
	}
	return out
}

// Suggestions converts the seeded outfits.
func (d *Data) Suggestions() []outfit.Suggestion {
	out := make([]outfit.Suggestion, len(d.Outfits))
	for i, o := range d.Outfits {
		out[i] = outfit.Suggestion{ID: o.ID, Name: o.Name, Weather: o.Weather}
	}
	return out
}
