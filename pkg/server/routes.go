package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sampleapp/frontend/pkg/backend"
)

// ServiceCaller performs one backend GET for a path suffix.
type ServiceCaller interface {
	Call(ctx context.Context, suffix string) (string, error)
}

// Route names used as metric labels.
const (
	RouteRoot      = "root"
	RouteHealth    = "health"
	RouteGreeting  = "greeting"
	RouteService   = "service"
	RouteServiceDB = "service_db"
	RouteNotFound  = "not_found"
)

// Routes dispatches requests by exact path under a base path. The request
// method is not inspected.
type Routes struct {
	basePath string
	greeting string
	page     []byte
	caller   ServiceCaller
	logger   *slog.Logger
}

// NewRoutes creates the route handler. page is served at basePath and
// greeting at basePath/greeting.
func NewRoutes(basePath, greeting string, page []byte, caller ServiceCaller, logger *slog.Logger) *Routes {
	if logger == nil {
		logger = slog.Default()
	}
	return &Routes{
		basePath: basePath,
		greeting: greeting,
		page:     page,
		caller:   caller,
		logger:   logger,
	}
}

// RouteName returns the route label for r. Paths are compared in their
// escaped form, so "%2F" never matches a route separator.
func (rt *Routes) RouteName(r *http.Request) string {
	switch r.URL.EscapedPath() {
	case rt.basePath:
		return RouteRoot
	case rt.basePath + "/health":
		return RouteHealth
	case rt.basePath + "/greeting":
		return RouteGreeting
	case rt.basePath + "/service":
		return RouteService
	case rt.basePath + "/service/db":
		return RouteServiceDB
	default:
		return RouteNotFound
	}
}

// ServeHTTP implements http.Handler.
func (rt *Routes) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.logger.InfoContext(r.Context(), "got request", "path", r.URL.EscapedPath())

	switch rt.RouteName(r) {
	case RouteRoot:
		writeResponse(w, http.StatusOK, rt.page)
	case RouteHealth:
		writeResponse(w, http.StatusOK, []byte("OK"))
	case RouteGreeting:
		writeResponse(w, http.StatusOK, []byte(rt.greeting))
	case RouteService:
		rt.callService(w, r, "")
	case RouteServiceDB:
		rt.callService(w, r, "/db")
	default:
		writeResponse(w, http.StatusNotFound, []byte("Not found"))
	}
}

func (rt *Routes) callService(w http.ResponseWriter, r *http.Request, suffix string) {
	body, err := rt.caller.Call(r.Context(), suffix)
	if err != nil {
		rt.logger.ErrorContext(r.Context(), "backend call failed", "suffix", suffix, "error", err)
		writeResponse(w, http.StatusInternalServerError, errorBody(err))
		return
	}

	writeResponse(w, http.StatusOK, []byte("Response from service: "+body))
}

// errorBody renders err as the JSON document returned with a 500.
func errorBody(err error) []byte {
	var ce *backend.CallError
	if !errors.As(err, &ce) {
		ce = &backend.CallError{Message: err.Error(), Code: backend.CodeUnknown}
	}

	data, mErr := json.Marshal(ce)
	if mErr != nil {
		return []byte(`{"message":"internal server error"}`)
	}
	return data
}

// writeResponse writes every response, success or failure, as text/html.
func writeResponse(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
