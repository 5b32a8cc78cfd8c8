package preferences

// FashionPatchInput sets the provided fields; omitted fields are left alone.
type FashionPatchInput struct {
	Body struct {
		FavoriteStyles *string `json:"favoriteStyles,omitempty" doc:"Favorite styles" maxLength:"500"`
		FavoriteColors *string `json:"favoriteColors,omitempty" doc:"Favorite colors" maxLength:"500"`
		FavoriteBrands *string `json:"favoriteBrands,omitempty" doc:"Favorite brands" maxLength:"500"`
	}
}

// FashionReseedInput supplies new initial values for the fashion form.
type FashionReseedInput struct {
	Body Fashion
}

// BodyPatchInput sets the provided fields in the order feet, inches, gender.
type BodyPatchInput struct {
	Body struct {
		Feet   *string `json:"feet,omitempty"   doc:"Height in feet"                           maxLength:"10"`
		Inches *string `json:"inches,omitempty" doc:"Remaining inches, a number in [0, 12)" maxLength:"10"`
		Gender *string `json:"gender,omitempty" doc:"Gender"                                   maxLength:"50"`
	}
}

// BodyReseedInput supplies new initial values for the body info form.
type BodyReseedInput struct {
	Body Body
}
