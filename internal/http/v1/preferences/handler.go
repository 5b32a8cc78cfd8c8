package preferences

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/lazydrobe/internal/platform/validation"
	prefsvc "github.com/janisto/lazydrobe/internal/service/preferences"
)

// Register wires preference form routes into the provided API router.
func Register(
	api huma.API,
	fashion *prefsvc.Form[prefsvc.FashionPreferences],
	body *prefsvc.Form[prefsvc.BodyInfo],
) {
	registerFashion(api, fashion)
	registerBody(api, body)
}

func registerFashion(api huma.API, form *prefsvc.Form[prefsvc.FashionPreferences]) {
	huma.Register(api, huma.Operation{
		OperationID: "get-fashion-preferences",
		Method:      http.MethodGet,
		Path:        "/preferences/fashion",
		Summary:     "Get fashion preferences",
		Tags:        []string{"Preferences"},
	}, func(_ context.Context, _ *struct{}) (*FashionOutput, error) {
		return fashionOutput(form), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-fashion-preferences",
		Method:      http.MethodPatch,
		Path:        "/preferences/fashion",
		Summary:     "Update fashion preferences",
		Tags:        []string{"Preferences"},
	}, func(ctx context.Context, input *FashionPatchInput) (*FashionOutput, error) {
		changes := collect(
			field{"favoriteStyles", input.Body.FavoriteStyles},
			field{"favoriteColors", input.Body.FavoriteColors},
			field{"favoriteBrands", input.Body.FavoriteBrands},
		)
		if err := form.Apply(ctx, changes...); err != nil {
			return nil, mapServiceError(err)
		}
		return fashionOutput(form), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reseed-fashion-preferences",
		Method:      http.MethodPut,
		Path:        "/preferences/fashion",
		Summary:     "Reseed fashion preferences",
		Description: "Supplies new initial values. When they differ from the previous ones, " +
			"their non-empty fields are merged over the draft.",
		Tags: []string{"Preferences"},
	}, func(ctx context.Context, input *FashionReseedInput) (*FashionOutput, error) {
		form.Reseed(ctx, prefsvc.FashionPreferences{
			FavoriteStyles: input.Body.FavoriteStyles,
			FavoriteColors: input.Body.FavoriteColors,
			FavoriteBrands: input.Body.FavoriteBrands,
		})
		return fashionOutput(form), nil
	})
}

func registerBody(api huma.API, form *prefsvc.Form[prefsvc.BodyInfo]) {
	huma.Register(api, huma.Operation{
		OperationID: "get-body-info",
		Method:      http.MethodGet,
		Path:        "/preferences/body",
		Summary:     "Get body info",
		Tags:        []string{"Preferences"},
	}, func(_ context.Context, _ *struct{}) (*BodyOutput, error) {
		return bodyOutput(form), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-body-info",
		Method:      http.MethodPatch,
		Path:        "/preferences/body",
		Summary:     "Update body info",
		Description: "Applies feet, inches and gender in that order and stops at the first refused value. " +
			"Inches must be a number in [0, 12); a refused value is reported with 422 and fields before it stay applied.",
		Tags: []string{"Preferences"},
	}, func(ctx context.Context, input *BodyPatchInput) (*BodyOutput, error) {
		changes := collect(
			field{"feet", input.Body.Feet},
			field{"inches", input.Body.Inches},
			field{"gender", input.Body.Gender},
		)
		if err := form.Apply(ctx, changes...); err != nil {
			return nil, mapServiceError(err)
		}
		return bodyOutput(form), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reseed-body-info",
		Method:      http.MethodPut,
		Path:        "/preferences/body",
		Summary:     "Reseed body info",
		Description: "Supplies new initial values. When they differ from the previous ones, " +
			"their non-empty fields are merged over the draft.",
		Tags: []string{"Preferences"},
	}, func(ctx context.Context, input *BodyReseedInput) (*BodyOutput, error) {
		if err := validation.Var("inches", input.Body.Inches, "omitempty,inches"); err != nil {
			return nil, mapServiceError(err)
		}
		form.Reseed(ctx, prefsvc.BodyInfo{
			Feet:   input.Body.Feet,
			Inches: strings.TrimSpace(input.Body.Inches),
			Gender: input.Body.Gender,
		})
		return bodyOutput(form), nil
	})
}

type field struct {
	name  string
	value *string
}

func collect(fields ...field) []prefsvc.Change {
	var changes []prefsvc.Change
	for _, f := range fields {
		if f.value != nil {
			changes = append(changes, prefsvc.Change{Field: f.name, Value: *f.value})
		}
	}
	return changes
}

func mapServiceError(err error) error {
	if ve, ok := validation.AsError(err); ok {
		return huma.Error422UnprocessableEntity("preference rejected", ve.Details()...)
	}
	if errors.Is(err, prefsvc.ErrUnknownField) {
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return huma.Error500InternalServerError("internal error")
}

func fashionOutput(form *prefsvc.Form[prefsvc.FashionPreferences]) *FashionOutput {
	d := form.Draft()
	return &FashionOutput{Body: FashionData{
		Values: Fashion{
			FavoriteStyles: d.FavoriteStyles,
			FavoriteColors: d.FavoriteColors,
			FavoriteBrands: d.FavoriteBrands,
		},
		Summary: toHTTPSummary(d.Summary()),
	}}
}

func bodyOutput(form *prefsvc.Form[prefsvc.BodyInfo]) *BodyOutput {
	d := form.Draft()
	return &BodyOutput{Body: BodyData{
		Values:  Body{Feet: d.Feet, Inches: d.Inches, Gender: d.Gender},
		Summary: toHTTPSummary(d.Summary()),
	}}
}

func toHTTPSummary(s prefsvc.Summary) []SummaryLine {
	out := make([]SummaryLine, len(s))
	for i, l := range s {
		out[i] = SummaryLine{Label: l.Label, Value: l.Value}
	}
	return out
}
