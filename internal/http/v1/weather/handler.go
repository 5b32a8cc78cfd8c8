package weather

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
	"github.com/janisto/lazydrobe/internal/platform/timeutil"
	weathersvc "github.com/janisto/lazydrobe/internal/service/weather"
)

// Register wires forecast and widget routes into the provided API router.
func Register(api huma.API, svc weathersvc.Service, widget *weathersvc.Widget) {
	huma.Register(api, huma.Operation{
		OperationID: "get-weather-forecast",
		Method:      http.MethodGet,
		Path:        "/weather/forecast",
		Summary:     "Get a 5-day forecast",
		Description: "Fetches the forecast for a location from Visual Crossing and renders up to five days " +
			"with rounded temperatures in °F.",
		Tags: []string{"Weather"},
	}, func(ctx context.Context, input *ForecastGetInput) (*ForecastGetOutput, error) {
		days, err := svc.Forecast(ctx, input.Location)
		if err != nil {
			applog.LogWarn(ctx, "forecast failed", zap.String("location", input.Location), zap.Error(err))
			return nil, mapServiceError(err)
		}
		return &ForecastGetOutput{Body: toHTTPForecast(input.Location, weathersvc.Visible(days))}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-weather-widget",
		Method:      http.MethodGet,
		Path:        "/weather/widget",
		Summary:     "Get the weather widget",
		Description: "Returns the forecast of the most recently requested location that has settled.",
		Tags:        []string{"Weather"},
	}, func(_ context.Context, _ *struct{}) (*WidgetOutput, error) {
		return &WidgetOutput{Body: toHTTPWidget(widget.Display())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-weather-widget-location",
		Method:      http.MethodPut,
		Path:        "/weather/widget",
		Summary:     "Set the weather widget location",
		Description: "Starts fetching the forecast in the background. A newer request supersedes an older one, " +
			"so the widget always ends up showing the latest location. Failures keep the previous forecast.",
		Tags:          []string{"Weather"},
		DefaultStatus: http.StatusAccepted,
	}, func(ctx context.Context, input *WidgetSetInput) (*WidgetOutput, error) {
		widget.SetLocation(ctx, input.Body.Location)
		return &WidgetOutput{Body: toHTTPWidget(widget.Display())}, nil
	})
}

func mapServiceError(err error) error {
	var upstreamErr *weathersvc.UpstreamError

	if errors.As(err, &upstreamErr) {
		switch upstreamErr.Kind {
		case weathersvc.UpstreamErrorKindNotFound:
			return huma.Error404NotFound("location not found")
		case weathersvc.UpstreamErrorKindRateLimited:
			rateLimitErr := huma.Error429TooManyRequests("rate limit exceeded")
			if upstreamErr.RetryAfter != "" {
				headers := make(http.Header)
				headers.Set("Retry-After", upstreamErr.RetryAfter)
				return huma.ErrorWithHeaders(rateLimitErr, headers)
			}
			return rateLimitErr
		default:
			return huma.Error502BadGateway("upstream error")
		}
	}

	switch {
	case errors.Is(err, weathersvc.ErrEmptyLocation):
		return huma.Error422UnprocessableEntity("location is required")
	case errors.Is(err, weathersvc.ErrMissingAPIKey):
		return huma.Error503ServiceUnavailable("forecast provider is not configured")
	case errors.Is(err, weathersvc.ErrNotFound):
		return huma.Error404NotFound("location not found")
	case errors.Is(err, weathersvc.ErrRateLimited):
		return huma.Error429TooManyRequests("rate limit exceeded")
	default:
		return huma.Error502BadGateway("upstream error")
	}
}

func toHTTPForecast(location string, days []weathersvc.Day) Forecast {
	view := weathersvc.Render(days)
	out := make([]Day, len(view.Days))
	for i, d := range view.Days {
		out[i] = Day{
			Date:    timeutil.Date{Time: d.Date},
			Weekday: d.Weekday,
			IconURL: d.IconURL,
			Min:     d.Min,
			Max:     d.Max,
			Unit:    d.Unit,
		}
	}
	return Forecast{Location: location, Days: out, Message: view.Message}
}

func toHTTPWidget(d weathersvc.Display) Widget {
	return Widget{
		Forecast: toHTTPForecast(d.Location, d.Days),
		Pending:  d.Pending,
		Seq:      d.Seq,
	}
}
