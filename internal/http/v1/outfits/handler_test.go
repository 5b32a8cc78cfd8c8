package outfits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
	appmiddleware "github.com/janisto/lazydrobe/internal/platform/middleware"
	"github.com/janisto/lazydrobe/internal/platform/respond"
	"github.com/janisto/lazydrobe/internal/service/outfit"
)

type failingSource struct{}

func (failingSource) List(context.Context) ([]outfit.Suggestion, error) {
	return nil, errors.New("boom")
}

func newTestRouter(src outfit.Source) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("OutfitsTest", "test"))
	Register(api, src)
	return router
}

func TestListOutfits(t *testing.T) {
	router := newTestRouter(outfit.NewStaticSource(
		outfit.Suggestion{ID: "o1", Name: "Rainy commute", Weather: "Rain"},
		outfit.Suggestion{ID: "o2", Name: "Beach day", Weather: "Sunny"},
	))

	req := httptest.NewRequest(http.MethodGet, "/outfits", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "outfits-list")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var data OutfitList
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Count != 2 || data.Suggestions[1].Name != "Beach day" {
		t.Errorf("unexpected suggestions %+v", data)
	}
}

func TestListOutfitsEmpty(t *testing.T) {
	router := newTestRouter(outfit.NewStaticSource())

	req := httptest.NewRequest(http.MethodGet, "/outfits", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var data OutfitList
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Count != 0 || data.Suggestions == nil {
		t.Errorf("expected empty non-nil list, got %+v", data)
	}
}

func TestListOutfitsSourceError(t *testing.T) {
	router := newTestRouter(failingSource{})

	req := httptest.NewRequest(http.MethodGet, "/outfits", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
