package outfits

// Suggestion is an outfit recommendation.
type Suggestion struct {
	ID      string `json:"id"      doc:"Suggestion identifier"       example:"o1"`
	Name    string `json:"name"    doc:"Outfit name"                 example:"Rainy commute"`
	Weather string `json:"weather" doc:"Weather the outfit suits"    example:"Rain"`
}

// OutfitList is the response body for listing suggestions.
type OutfitList struct {
	Suggestions []Suggestion `json:"suggestions" doc:"Current outfit suggestions"`
	Count       int          `json:"count"       doc:"Number of suggestions returned" example:"2"`
}

// ListOutput is the response wrapper for GET /outfits.
type ListOutput struct {
	Body OutfitList
}
