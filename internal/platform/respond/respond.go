// Package respond renders RFC 9457 problem details for responses produced
// outside huma operations: router fallbacks and recovered panics.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/janisto/lazydrobe/internal/platform/logging"
)

const (
	schemaPath = "/schemas/ErrorModel.json"

	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	msgNotFound         = "resource not found"
	msgMethodNotAllowed = "method not allowed"
	msgInternal         = "internal server error"
)

// problem mirrors huma.ErrorModel plus the $schema link huma adds to its own responses.
type problem struct {
	Schema string              `json:"$schema,omitempty" cbor:"$schema,omitempty"`
	Title  string              `json:"title,omitempty"   cbor:"title,omitempty"`
	Status int                 `json:"status,omitempty"  cbor:"status,omitempty"`
	Detail string              `json:"detail,omitempty"  cbor:"detail,omitempty"`
	Errors []*huma.ErrorDetail `json:"errors,omitempty"  cbor:"errors,omitempty"`
}

// WriteProblem renders a problem document, as CBOR when the client prefers it.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string, details ...*huma.ErrorDetail) {
	body := problem{
		Schema: schemaURL(r),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Errors: details,
	}

	var (
		payload []byte
		err     error
		ct      = contentTypeProblemJSON
	)
	if acceptsCBOR(r.Header.Get("Accept")) {
		ct = contentTypeProblemCBOR
		payload, err = cbor.Marshal(body)
	} else {
		payload, err = json.Marshal(body)
	}
	if err != nil {
		logging.LogError(r.Context(), "failed to encode problem", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ct)
	w.Header().Set("Link", fmt.Sprintf("<%s>; rel=\"describedBy\"", schemaURL(r)))
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// NotFoundHandler answers unknown routes with a 404 problem.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler answers with a 405 problem and an Allow header listing
// the methods the matched path does support.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		WriteProblem(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

// Recoverer turns panics into 500 problems. http.ErrAbortHandler is re-raised so
// net/http can abort the connection, and nothing is written once headers went out.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logging.LogError(r.Context(), "panic recovered", fmt.Errorf("%v", rec),
					zap.ByteString("stack", debug.Stack()))
				if rw.wroteHeader {
					return
				}
				WriteProblem(rw, r, http.StatusInternalServerError, msgInternal)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func schemaURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + schemaPath
}

// allowedMethods asks chi which methods match the request path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	path := rctx.RoutePath
	if path == "" {
		path = r.URL.Path
	}
	var allowed []string
	for _, method := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	} {
		if rctx.Routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// acceptsCBOR reports whether the Accept header ranks a CBOR media type above
// every JSON one. q-value decides first, then specificity; ties go to JSON.
func acceptsCBOR(accept string) bool {
	if accept == "" {
		return false
	}
	bestCBOR, bestJSON := rank{}, rank{}
	for part := range strings.SplitSeq(accept, ",") {
		media, q := parseMediaRange(part)
		if q <= 0 {
			continue
		}
		var spec int
		var isCBOR bool
		switch media {
		case "application/problem+cbor":
			spec, isCBOR = 2, true
		case "application/cbor":
			spec, isCBOR = 1, true
		case "application/problem+json":
			spec = 2
		case "application/json":
			spec = 1
		default:
			continue
		}
		candidate := rank{q: q, specificity: spec}
		if isCBOR {
			bestCBOR = bestCBOR.max(candidate)
		} else {
			bestJSON = bestJSON.max(candidate)
		}
	}
	return bestCBOR.beats(bestJSON)
}

type rank struct {
	q           float64
	specificity int
}

func (r rank) beats(o rank) bool {
	if r.q != o.q {
		return r.q > o.q
	}
	return r.specificity > o.specificity
}

func (r rank) max(o rank) rank {
	if o.beats(r) {
		return o
	}
	return r
}

func parseMediaRange(part string) (string, float64) {
	segments := strings.Split(part, ";")
	media := strings.ToLower(strings.TrimSpace(segments[0]))
	q := 1.0
	for _, param := range segments[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || strings.TrimSpace(key) != "q" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return media, 0
		}
		q = parsed
	}
	return media, q
}
