package v1handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"newsletter/internal/newsletter"
	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"
)

// publishRequest mirrors the wire shape of a newsletter issue submission.
type publishRequest struct {
	Title   string `json:"title"`
	Content struct {
		HTML string `json:"html"`
		Text string `json:"text"`
	} `json:"content"`
}

// Publish delivers a newsletter issue to every confirmed subscriber. The
// endpoint requires HTTP Basic credentials of a registered operator.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="publish"`)
		writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing credentials"))

		return
	}

	userID, err := h.deps.Auth.Authenticate(ctx, username, password)
	if err != nil {
		w.Header().Set("WWW-Authenticate", `Basic realm="publish"`)
		writeError(ctx, w, err)

		return
	}
	ctx = logger.WithFields(ctx, zap.String("userID", uuid.UUID(userID).String()))

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode request body"))

		return
	}

	if req.Title == "" || (req.Content.HTML == "" && req.Content.Text == "") {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "title and content are required"))

		return
	}

	report, err := h.deps.Newsletter.Publish(ctx, newsletter.Issue{
		Title: req.Title,
		HTML:  req.Content.HTML,
		Text:  req.Content.Text,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}
