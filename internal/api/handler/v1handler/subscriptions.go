package v1handler

import (
	"net/http"

	"github.com/google/uuid"

	"newsletter/pkg/serrors"
)

type subscribeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Subscribe handles new subscriber signups submitted as an HTML form.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse form"))

		return
	}

	if !r.PostForm.Has("name") || !r.PostForm.Has("email") {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "name and email are required"))

		return
	}

	subscriber, err := h.deps.Subscription.Subscribe(ctx, r.PostForm.Get("name"), r.PostForm.Get("email"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, subscribeResponse{
		ID:     uuid.UUID(subscriber.ID).String(),
		Status: string(subscriber.Status),
	})
}

// Confirm handles confirmation-link clicks. The token travels in the
// subscription_token query parameter.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.URL.Query().Get("subscription_token")
	if token == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "subscription_token is required"))

		return
	}

	subscriber, err := h.deps.Subscription.Confirm(ctx, token)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, subscribeResponse{
		ID:     uuid.UUID(subscriber.ID).String(),
		Status: string(subscriber.Status),
	})
}
