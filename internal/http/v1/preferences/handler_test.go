package preferences

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
	appmiddleware "github.com/janisto/lazydrobe/internal/platform/middleware"
	"github.com/janisto/lazydrobe/internal/platform/respond"
	prefsvc "github.com/janisto/lazydrobe/internal/service/preferences"
)

type forms struct {
	fashion *prefsvc.Form[prefsvc.FashionPreferences]
	body    *prefsvc.Form[prefsvc.BodyInfo]
}

func newTestRouter() (chi.Router, forms) {
	f := forms{
		fashion: prefsvc.NewForm("fashion", prefsvc.FashionPreferences{FavoriteColors: "Navy"}),
		body:    prefsvc.NewForm("body", prefsvc.BodyInfo{Feet: "5", Inches: "7"}),
	}

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("PreferencesTest", "test"))
	Register(api, f.fashion, f.body)
	return router, f
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func summaryValue(lines []SummaryLine, label string) string {
	for _, l := range lines {
		if l.Label == label {
			return l.Value
		}
	}
	return ""
}

func TestGetFashion(t *testing.T) {
	router, _ := newTestRouter()

	resp := do(router, http.MethodGet, "/preferences/fashion", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var data FashionData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Values.FavoriteColors != "Navy" {
		t.Errorf("expected seeded colors, got %+v", data.Values)
	}
	if got := summaryValue(data.Summary, "Favorite Styles"); got != "Not specified" {
		t.Errorf("expected Not specified, got %q", got)
	}
	if got := summaryValue(data.Summary, "Favorite Colors"); got != "Navy" {
		t.Errorf("expected Navy, got %q", got)
	}
}

func TestPatchFashion(t *testing.T) {
	router, f := newTestRouter()

	resp := do(router, http.MethodPatch, "/preferences/fashion", `{"favoriteStyles":"Casual"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data FashionData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if got := summaryValue(data.Summary, "Favorite Styles"); got != "Casual" {
		t.Errorf("expected Casual echoed in summary, got %q", got)
	}
	if f.fashion.Draft().FavoriteColors != "Navy" {
		t.Errorf("untouched field changed: %+v", f.fashion.Draft())
	}
}

func TestPatchFashionRejectsUnknownField(t *testing.T) {
	router, _ := newTestRouter()

	resp := do(router, http.MethodPatch, "/preferences/fashion", `{"shoeSize":"42"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestPatchBodyHeightSummary(t *testing.T) {
	router, _ := newTestRouter()

	resp := do(router, http.MethodPatch, "/preferences/body", `{"feet":"6","inches":" 2 ","gender":"Female"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data BodyData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if got := summaryValue(data.Summary, "Height"); got != `6' 2"` {
		t.Errorf("expected trimmed inches in height, got %q", got)
	}
	if got := summaryValue(data.Summary, "Gender"); got != "Female" {
		t.Errorf("expected Female, got %q", got)
	}
}

func TestPatchBodyRejectsInchesOutOfRange(t *testing.T) {
	for _, inches := range []string{"12", "-1", "abc", "", "0x1p2"} {
		t.Run(inches, func(t *testing.T) {
			router, f := newTestRouter()

			resp := do(router, http.MethodPatch, "/preferences/body",
				`{"feet":"6","inches":"`+inches+`","gender":"Male"}`)
			if resp.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", resp.Code)
			}
			if !strings.Contains(resp.Body.String(), "body.inches") {
				t.Errorf("expected inches violation, got %s", resp.Body.String())
			}

			draft := f.body.Draft()
			if draft.Inches != "7" {
				t.Errorf("inches must stay unchanged, got %q", draft.Inches)
			}
			if draft.Feet != "6" {
				t.Errorf("feet precedes inches and should stay applied, got %q", draft.Feet)
			}
			if draft.Gender != "" {
				t.Errorf("gender follows inches and must not be applied, got %q", draft.Gender)
			}
		})
	}
}

func TestReseedBody(t *testing.T) {
	router, f := newTestRouter()

	if resp := do(router, http.MethodPatch, "/preferences/body", `{"gender":"Female"}`); resp.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d", resp.Code)
	}

	resp := do(router, http.MethodPut, "/preferences/body", `{"feet":"6","inches":"1"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("reseed: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	draft := f.body.Draft()
	if draft.Feet != "6" || draft.Inches != "1" || draft.Gender != "Female" {
		t.Errorf("expected new initial values merged over draft, got %+v", draft)
	}

	resp = do(router, http.MethodPut, "/preferences/body", `{"inches":"13"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("reseed with bad inches: expected 422, got %d", resp.Code)
	}
}

func TestReseedFashion(t *testing.T) {
	router, f := newTestRouter()

	resp := do(router, http.MethodPut, "/preferences/fashion", `{"favoriteBrands":"Uniqlo"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	draft := f.fashion.Draft()
	if draft.FavoriteBrands != "Uniqlo" || draft.FavoriteColors != "Navy" {
		t.Errorf("unexpected draft %+v", draft)
	}
}
