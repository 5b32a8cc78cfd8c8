package weather

// ForecastGetInput defines query parameters for a synchronous forecast.
type ForecastGetInput struct {
	Location string `query:"location" required:"true" minLength:"1" maxLength:"200" doc:"City, address or coordinates" example:"Seattle,WA"`
}

// WidgetSetInput is the request for changing the widget's location.
type WidgetSetInput struct {
	Body struct {
		Location string `json:"location" maxLength:"200" doc:"Location to show; blank leaves the widget as it is" example:"Seattle,WA"`
	}
}
