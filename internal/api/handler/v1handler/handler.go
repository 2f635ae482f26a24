// Package v1handler implements the version 1 HTTP handlers of the newsletter
// service: subscriber signup, subscription confirmation and issue publishing.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsletter/internal/newsletter"
	"newsletter/internal/subscription"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"
)

// Authenticator verifies operator credentials for protected endpoints.
type Authenticator interface {
	Authenticate(ctx context.Context, username string, password string) (domain.UserID, error)
}

// Deps carries the services the handlers delegate to.
type Deps struct {
	Subscription subscription.Service
	Newsletter   newsletter.Service
	Auth         Authenticator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers all v1 endpoints on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Post("/subscriptions", h.Subscribe)
	r.Get("/subscriptions/confirm", h.Confirm)
	r.Post("/newsletters", h.Publish)
}

// Health reports liveness. It performs no dependency checks.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusFromError maps semantic error kinds to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error response. Client errors carry the
// error message; server errors only expose a generic line so internals do not
// leak to callers.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := "internal server error"
	if status < http.StatusInternalServerError {
		message = err.Error()
	} else {
		logger.Error(ctx, err.Error())
	}

	writeJSON(ctx, w, status, errorResponse{Error: message})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response: "+err.Error())
	}
}
