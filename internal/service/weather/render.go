package weather

import (
	"math"
	"time"
)

const (
	iconBaseURL = "https://raw.githubusercontent.com/visualcrossing/WeatherIcons/refs/heads/main/PNG/1st%20Set%20-%20Color/"
	// UnitFahrenheit is the unit of every rendered temperature.
	UnitFahrenheit = "°F"
	// EmptyMessage prompts for a location when there is nothing to show.
	EmptyMessage = "Please enter a valid location to view the weather forecast."
)

// RenderedDay is one forecast day ready for display.
type RenderedDay struct {
	Date    time.Time
	Weekday string
	IconURL string
	Min     int
	Max     int
	Unit    string
}

// View is the rendered widget body. Message is set only when Days is empty.
type View struct {
	Days    []RenderedDay
	Message string
}

// Render maps forecast days to their displayed form.
func Render(days []Day) View {
	if len(days) == 0 {
		return View{Days: []RenderedDay{}, Message: EmptyMessage}
	}
	out := make([]RenderedDay, len(days))
	for i, d := range days {
		out[i] = RenderedDay{
			Date:    d.Date,
			Weekday: d.Date.Format("Mon"),
			IconURL: IconURL(d.Icon),
			Min:     RoundTemp(d.MinTemp),
			Max:     RoundTemp(d.MaxTemp),
			Unit:    UnitFahrenheit,
		}
	}
	return View{Days: out}
}

// RoundTemp rounds half up, so 45.5 becomes 46 and -3.5 becomes -3.
func RoundTemp(f float64) int {
	return int(math.Floor(f + 0.5))
}

// IconURL returns the image URL for an icons2 key, or "" when there is no icon.
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return iconBaseURL + icon + ".png"
}

// Visible returns the days the widget would show for a fetched forecast.
func Visible(days []Day) []Day {
	return days[:min(DisplayDays, len(days))]
}
