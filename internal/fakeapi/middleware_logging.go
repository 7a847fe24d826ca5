package fakeapi

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-trackspense/internal/logger"
)

// withLogging writes one access line per request. 5xx answers are logged
// as errors and 4xx as warnings.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		level := zerolog.InfoLevel
		switch {
		case rw.status >= http.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case rw.status >= http.StatusBadRequest:
			level = zerolog.WarnLevel
		}

		logger.FromContext(r.Context()).WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.status).
			Int("bytes", rw.size).
			Dur("took", time.Since(started)).
			Msg("handled request")
	})
}
