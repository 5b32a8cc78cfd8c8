package preferences

// Fashion holds fashion preferences as free text.
type Fashion struct {
	FavoriteStyles string `json:"favoriteStyles,omitempty" doc:"Favorite styles" maxLength:"500" example:"Casual, minimalist"`
	FavoriteColors string `json:"favoriteColors,omitempty" doc:"Favorite colors" maxLength:"500" example:"Navy, olive"`
	FavoriteBrands string `json:"favoriteBrands,omitempty" doc:"Favorite brands" maxLength:"500" example:"Uniqlo"`
}

// Body holds height and gender as typed.
type Body struct {
	Feet   string `json:"feet,omitempty"   doc:"Height in feet"                           maxLength:"10" example:"5"`
	Inches string `json:"inches,omitempty" doc:"Remaining inches, a number in [0, 12)" maxLength:"10" example:"7"`
	Gender string `json:"gender,omitempty" doc:"Gender"                                   maxLength:"50" example:"Female"`
}

// SummaryLine is one row of a read-only summary.
type SummaryLine struct {
	Label string `json:"label" doc:"Row label" example:"Height"`
	Value string `json:"value" doc:"Row value" example:"5' 7\""`
}

// FashionData is the fashion form's values and summary.
type FashionData struct {
	Values  Fashion       `json:"values"  doc:"Current draft values"`
	Summary []SummaryLine `json:"summary" doc:"Read-only summary; empty values show as Not specified"`
}

// BodyData is the body info form's values and summary.
type BodyData struct {
	Values  Body          `json:"values"  doc:"Current draft values"`
	Summary []SummaryLine `json:"summary" doc:"Read-only summary; empty values show as Not specified"`
}
