package preferences

import "fmt"

// FashionPreferences are free-text style, colour and brand preferences.
type FashionPreferences struct {
	FavoriteStyles string `yaml:"favoriteStyles"`
	FavoriteColors string `yaml:"favoriteColors"`
	FavoriteBrands string `yaml:"favoriteBrands"`
}

func (p FashionPreferences) With(field, value string) (FashionPreferences, error) {
	switch field {
	case "favoriteStyles":
		p.FavoriteStyles = value
	case "favoriteColors":
		p.FavoriteColors = value
	case "favoriteBrands":
		p.FavoriteBrands = value
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return p, nil
}

func (p FashionPreferences) Merge(o FashionPreferences) FashionPreferences {
	return FashionPreferences{
		FavoriteStyles: mergeString(p.FavoriteStyles, o.FavoriteStyles),
		FavoriteColors: mergeString(p.FavoriteColors, o.FavoriteColors),
		FavoriteBrands: mergeString(p.FavoriteBrands, o.FavoriteBrands),
	}
}

func (p FashionPreferences) Summary() Summary {
	return Summary{
		{Label: "Favorite Styles", Value: orNotSpecified(p.FavoriteStyles)},
		{Label: "Favorite Colors", Value: orNotSpecified(p.FavoriteColors)},
		{Label: "Favorite Brands", Value: orNotSpecified(p.FavoriteBrands)},
	}
}
