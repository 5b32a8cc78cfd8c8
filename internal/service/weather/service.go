// Package weather fetches 5-day forecasts from Visual Crossing and keeps the
// widget's displayed forecast in step with the most recently requested location.
package weather

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service errors
var (
	ErrEmptyLocation = errors.New("location is empty")
	ErrMissingAPIKey = errors.New("forecast api key is not configured")
	ErrNoForecast    = errors.New("forecast response has no days")
	ErrNotFound      = errors.New("forecast location not found")
	ErrUnauthorized  = errors.New("forecast api key rejected")
	ErrRateLimited   = errors.New("forecast rate limit exceeded")
	ErrUpstream      = errors.New("forecast upstream error")
)

// UpstreamErrorKind classifies forecast API failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindNotFound     UpstreamErrorKind = "not_found"
	UpstreamErrorKindUnauthorized UpstreamErrorKind = "unauthorized"
	UpstreamErrorKindRateLimited  UpstreamErrorKind = "rate_limited"
	UpstreamErrorKindUpstream     UpstreamErrorKind = "upstream"
)

// UpstreamError carries the forecast API response metadata for error mapping.
type UpstreamError struct {
	Kind       UpstreamErrorKind
	Status     int
	RetryAfter string
	// Message is the start of the API's plain-text error body, if any.
	Message string
	cause   error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "forecast upstream error"
	}
	msg := fmt.Sprintf("forecast upstream error (kind=%s status=%d)", e.Kind, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap enables errors.Is against the sentinel errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Day is one forecast day as returned by the API.
type Day struct {
	Date    time.Time
	MinTemp float64
	MaxTemp float64
	// Icon is the icons2 icon set key, e.g. "partly-cloudy-day". May be empty.
	Icon string
}

// Service fetches forecasts.
type Service interface {
	Forecast(ctx context.Context, location string) ([]Day, error)
}
