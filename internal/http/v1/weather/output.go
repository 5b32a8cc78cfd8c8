package weather

// ForecastGetOutput is the response wrapper for GET /weather/forecast.
type ForecastGetOutput struct {
	Body Forecast
}

// WidgetOutput is the response wrapper for the widget endpoints.
type WidgetOutput struct {
	Body Widget
}
