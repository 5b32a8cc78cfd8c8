package outfits

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
	"github.com/janisto/lazydrobe/internal/service/outfit"
)

// Register wires outfit suggestion routes into the provided API router.
func Register(api huma.API, src outfit.Source) {
	huma.Register(api, huma.Operation{
		OperationID: "list-outfits",
		Method:      http.MethodGet,
		Path:        "/outfits",
		Summary:     "List outfit suggestions",
		Description: "Returns the current outfit suggestions. The list is empty when none are available.",
		Tags:        []string{"Outfits"},
	}, func(ctx context.Context, _ *struct{}) (*ListOutput, error) {
		suggestions, err := src.List(ctx)
		if err != nil {
			applog.LogError(ctx, "list outfits", err)
			return nil, huma.Error500InternalServerError("internal error")
		}
		out := make([]Suggestion, len(suggestions))
		for i, s := range suggestions {
			out[i] = Suggestion{ID: s.ID, Name: s.Name, Weather: s.Weather}
		}
		return &ListOutput{Body: OutfitList{Suggestions: out, Count: len(out)}}, nil
	})
}
