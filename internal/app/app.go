// Package app builds the application shell: the object that owns every store,
// the weather widget and the preference forms for the life of the process.
package app

import (
	"fmt"
	"net/http"

	"github.com/janisto/lazydrobe/internal/platform/config"
	"github.com/janisto/lazydrobe/internal/seed"
	"github.com/janisto/lazydrobe/internal/service/outfit"
	"github.com/janisto/lazydrobe/internal/service/preferences"
	"github.com/janisto/lazydrobe/internal/service/wardrobe"
	"github.com/janisto/lazydrobe/internal/service/weather"
)

// App is the shell handed by reference to the HTTP handlers.
type App struct {
	Store     *wardrobe.MemoryStore
	Catalog   *wardrobe.Catalog
	Editors   *wardrobe.Registry
	Outfits   outfit.Source
	Forecasts weather.Service
	Widget    *weather.Widget
	Fashion   *preferences.Form[preferences.FashionPreferences]
	Body      *preferences.Form[preferences.BodyInfo]
}

// Option customises New.
type Option func(*options)

type options struct {
	forecasts weather.Service
	outfits   outfit.Source
}

// WithForecastService replaces the Visual Crossing client, e.g. with weather.MockService.
func WithForecastService(svc weather.Service) Option {
	return func(o *options) { o.forecasts = svc }
}

// WithOutfitSource replaces the seeded outfit list.
func WithOutfitSource(src outfit.Source) Option {
	return func(o *options) { o.outfits = src }
}

// New builds the shell from configuration and seed data. data may be nil.
func New(cfg config.Config, data *seed.Data, opts ...Option) (*App, error) {
	if data == nil {
		data = &seed.Data{}
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store, err := wardrobe.NewMemoryStore(data.WardrobeItems()...)
	if err != nil {
		return nil, fmt.Errorf("build item store: %w", err)
	}

	if o.forecasts == nil {
		o.forecasts = weather.NewClient(
			&http.Client{Timeout: cfg.Weather.Timeout},
			weather.WithBaseURL(cfg.Weather.BaseURL),
			weather.WithAPIKey(cfg.Weather.APIKey),
		)
	}
	if o.outfits == nil {
		o.outfits = outfit.NewStaticSource(data.Suggestions()...)
	}

	return &App{
		Store:     store,
		Catalog:   wardrobe.NewCatalog(store),
		Editors:   wardrobe.NewRegistry(store, cfg.MaxOpenEditors, wardrobe.WithIdleTimeout(cfg.EditorIdleTimeout)),
		Outfits:   o.outfits,
		Forecasts: o.forecasts,
		Widget:    weather.NewWidget(o.forecasts),
		Fashion:   preferences.NewForm("fashion", data.Preferences.Fashion),
		Body:      preferences.NewForm("body", data.Preferences.Body),
	}, nil
}

// Close stops background forecast fetches.
func (a *App) Close() {
	a.Widget.Close()
}
