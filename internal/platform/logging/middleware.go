package logging

import (
	"fmt"
	"net/http"
	"os"
	"regexp"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

var (
	projectIDOnce   sync.Once
	cachedProjectID string
)

// RequestLogger enriches the request context with a zap logger carrying the
// request id and, when a project is configured, Cloud Trace correlation fields.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimiddleware.GetReqID(r.Context())
			trace := parseTraceparent(r.Header.Get(traceparentHeader), resolveProjectID())

			fields := trace.fields()
			if reqID != "" {
				fields = append(fields, zap.String("requestId", reqID))
			}
			logger := Logger()
			if len(fields) > 0 {
				logger = logger.With(fields...)
			}

			traceID := trace.resource
			if traceID == "" {
				traceID = reqID
			}
			ctx := contextWithTraceID(r.Context(), traceID)
			ctx = WithLogger(ctx, logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccessLogger writes one structured summary per request using the request-scoped logger.
func AccessLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			LoggerFromContext(r.Context()).Info(
				"request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

type traceContext struct {
	resource string
	spanID   string
	sampled  bool
}

func parseTraceparent(header, projectID string) traceContext {
	if projectID == "" {
		return traceContext{}
	}
	m := traceparentRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return traceContext{}
	}
	return traceContext{
		resource: fmt.Sprintf("projects/%s/traces/%s", projectID, m[2]),
		spanID:   m[3],
		sampled:  m[4] == "01",
	}
}

func (t traceContext) fields() []zap.Field {
	if t.resource == "" {
		return nil
	}
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", t.resource),
		zap.String("logging.googleapis.com/spanId", t.spanID),
		zap.Bool("logging.googleapis.com/trace_sampled", t.sampled),
	}
}

func resolveProjectID() string {
	projectIDOnce.Do(func() {
		for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "GCLOUD_PROJECT", "PROJECT_ID"} {
			if v := os.Getenv(key); v != "" {
				cachedProjectID = v
				return
			}
		}
	})
	return cachedProjectID
}
