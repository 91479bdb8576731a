package server

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

// authorize rejects requests without the shared secret before any work
// touches the store.
func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		header := req.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			writeJSON(wrt, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.secret)) != 1 {
			writeJSON(wrt, http.StatusUnauthorized, errorResponse{Error: "invalid bearer token"})
			return
		}

		next.ServeHTTP(wrt, req)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: wrt, status: http.StatusOK}

		next.ServeHTTP(recorder, req)

		s.logger.Info().
			Str("request_id", uuid.NewString()).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
