package routes

import (
	"net/url"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/lazydrobe/internal/app"
	"github.com/janisto/lazydrobe/internal/http/v1/hello"
	"github.com/janisto/lazydrobe/internal/http/v1/outfits"
	"github.com/janisto/lazydrobe/internal/http/v1/preferences"
	"github.com/janisto/lazydrobe/internal/http/v1/wardrobe"
	"github.com/janisto/lazydrobe/internal/http/v1/weather"
)

// Version is the path segment every route is mounted under.
const Version = "/v1"

// Register wires all v1 routes into the provided API router.
func Register(api huma.API, a *app.App) {
	prefix := apiPrefix(api) + Version
	v1 := huma.NewGroup(api, Version)

	hello.Register(v1)
	wardrobe.Register(v1, a.Store, a.Catalog, a.Editors, prefix)
	outfits.Register(v1, a.Outfits)
	weather.Register(v1, a.Forecasts, a.Widget)
	preferences.Register(v1, a.Fashion, a.Body)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return strings.TrimSuffix(u.Path, "/")
		}
	}
	return ""
}
