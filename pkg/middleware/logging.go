package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"
)

// statusRecorder captures the status, the response size and, for error
// responses, the body so it can be logged alongside the request line.
type statusRecorder struct {
	http.ResponseWriter
	errBody *bytes.Buffer
	status  int
	size    int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.status >= http.StatusBadRequest {
		rec.errBody.Write(b)
	}

	size, err := rec.ResponseWriter.Write(b)
	rec.size += size
	return size, err
}

// LoggingMiddleware logs one line per request. Error responses carry the
// response body so failed calls can be diagnosed from the log alone.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{
			ResponseWriter: w,
			status:         http.StatusOK,
			errBody:        &bytes.Buffer{},
		}

		next.ServeHTTP(rec, r)

		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Int("size", rec.size),
			slog.String("remote", r.RemoteAddr),
			slog.Duration("duration", time.Since(start)),
		}

		if rec.status >= http.StatusBadRequest {
			attrs = append(attrs, slog.String("response_body", rec.errBody.String()))
			slog.Error("request failed", attrs...)
			return
		}
		slog.Info("request completed", attrs...)
	})
}
