package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.Client(), WithBaseURL(srv.URL+"/timeline"), WithAPIKey("test-key"))
}

func TestForecastRequestShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/timeline/Seattle%2CWA/next5days" {
			t.Errorf("unexpected path: %s", r.URL.EscapedPath())
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" || q.Get("unitGroup") != "us" || q.Get("iconSet") != "icons2" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"resolvedAddress": "Seattle, WA, United States",
			"days": []map[string]any{
				{"datetime": "2024-01-15", "icon": "rain", "tempmin": 39.5, "tempmax": 50.2},
				{"datetime": "2024-01-16", "tempmin": 40, "tempmax": 51},
			},
		})
	})

	days, err := client.Forecast(context.Background(), " Seattle,WA ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Icon != "rain" || days[0].MinTemp != 39.5 || days[0].MaxTemp != 50.2 {
		t.Errorf("unexpected first day: %+v", days[0])
	}
	if days[0].Date.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("unexpected date: %v", days[0].Date)
	}
	if days[1].Icon != "" {
		t.Errorf("expected empty icon, got %q", days[1].Icon)
	}
}

func TestForecastMissingDays(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"resolvedAddress":"nowhere"}`))
	})

	_, err := client.Forecast(context.Background(), "nowhere")
	if !errors.Is(err, ErrNoForecast) {
		t.Fatalf("expected ErrNoForecast, got %v", err)
	}
}

func TestForecastEmptyDays(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"days":[]}`))
	})

	days, err := client.Forecast(context.Background(), "Somewhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("expected no days, got %d", len(days))
	}
}

func TestForecastUpstreamErrors(t *testing.T) {
	tests := []struct {
		status   int
		kind     UpstreamErrorKind
		sentinel error
	}{
		{http.StatusBadRequest, UpstreamErrorKindNotFound, ErrNotFound},
		{http.StatusNotFound, UpstreamErrorKindNotFound, ErrNotFound},
		{http.StatusUnauthorized, UpstreamErrorKindUnauthorized, ErrUnauthorized},
		{http.StatusTooManyRequests, UpstreamErrorKindRateLimited, ErrRateLimited},
		{http.StatusInternalServerError, UpstreamErrorKindUpstream, ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Retry-After", "30")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("Bad API Request:Invalid location parameter value."))
			})

			_, err := client.Forecast(context.Background(), "Atlantis")
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
			var ue *UpstreamError
			if !errors.As(err, &ue) {
				t.Fatalf("expected *UpstreamError, got %T", err)
			}
			if ue.Kind != tt.kind || ue.Status != tt.status {
				t.Errorf("unexpected upstream error: %+v", ue)
			}
			if ue.RetryAfter != "30" {
				t.Errorf("expected Retry-After 30, got %q", ue.RetryAfter)
			}
			if ue.Message != "Bad API Request:Invalid location parameter value." {
				t.Errorf("unexpected message %q", ue.Message)
			}
		})
	}
}

func TestForecastBadDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"days":[{"datetime":"15/01/2024"}]}`))
	})

	if _, err := client.Forecast(context.Background(), "Paris"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestForecastPreconditions(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	noKey := NewClient(srv.Client(), WithBaseURL(srv.URL))
	if _, err := noKey.Forecast(context.Background(), "Paris"); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	withKey := NewClient(srv.Client(), WithBaseURL(srv.URL), WithAPIKey("k"))
	if _, err := withKey.Forecast(context.Background(), "  "); !errors.Is(err, ErrEmptyLocation) {
		t.Fatalf("expected ErrEmptyLocation, got %v", err)
	}
	if called {
		t.Fatal("no request should reach the API")
	}
}
