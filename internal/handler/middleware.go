package handler

import (
	"net/http"
	"time"

	"github.com/EpicMandM/calendar-booking/internal/logger"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLogging tags each request with an ID and logs its outcome.
func (h *APIHandler) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := incomingRequestID(r)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		h.logger.Info("Request handled",
			logger.RequestID(id),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.StatusCode(rec.status),
			logger.Duration(time.Since(start)))
	})
}

// incomingRequestID returns the caller's X-Request-ID in canonical form, or
// "" when it is not a UUID. Anything else would be written into the log line.
func incomingRequestID(r *http.Request) string {
	parsed, err := uuid.Parse(r.Header.Get(requestIDHeader))
	if err != nil {
		return ""
	}
	return parsed.String()
}
