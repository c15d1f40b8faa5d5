package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"sampleapp/frontend/pkg/security/tls"
	"sampleapp/frontend/pkg/telemetry/logging"
)

const (
	// RequestIDHeader is the HTTP header for request ID.
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 128
)

// RequestID assigns each request an ID, stores it in the request context and
// echoes it in the X-Request-ID response header. A client-supplied ID is
// reused when it is a reasonable length. The TLS client identity, when a
// certificate was presented, is stored alongside it for logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		ctx := logging.WithRequestID(r.Context(), requestID)
		if client := tls.GetClientIdentity(r); client != "" {
			ctx = logging.WithClient(ctx, client)
		}

		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
