package preferences

// FashionOutput is the response wrapper for the fashion form.
type FashionOutput struct {
	Body FashionData
}

// BodyOutput is the response wrapper for the body info form.
type BodyOutput struct {
	Body BodyData
}
