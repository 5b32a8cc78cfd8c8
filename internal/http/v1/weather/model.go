package weather

import "github.com/janisto/lazydrobe/internal/platform/timeutil"

// Day is one rendered forecast day.
type Day struct {
	Date    timeutil.Date `json:"date"              doc:"Forecast date"                    example:"2024-01-15"`
	Weekday string        `json:"weekday"           doc:"Abbreviated weekday"              example:"Mon"`
	IconURL string        `json:"iconUrl,omitempty" doc:"Weather icon image URL"`
	Min     int           `json:"min"               doc:"Minimum temperature, rounded"     example:"40"`
	Max     int           `json:"max"               doc:"Maximum temperature, rounded"     example:"51"`
	Unit    string        `json:"unit"              doc:"Temperature unit"                 example:"°F"`
}

// Forecast is a rendered forecast for a location.
type Forecast struct {
	Location string `json:"location"          doc:"Requested location"   example:"Seattle,WA"`
	Days     []Day  `json:"days"              doc:"Up to five forecast days"`
	Message  string `json:"message,omitempty" doc:"Prompt shown when there are no days"`
}

// Widget is the widget's current display.
type Widget struct {
	Forecast
	Pending bool   `json:"pending" doc:"Whether the latest request is still in flight"`
	Seq     uint64 `json:"seq"     doc:"Sequence number of the latest request"        example:"3"`
}
