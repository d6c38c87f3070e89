package api

import (
	"net/http"

	"github.com/resumate/resumate/pkg/roles"
)

type rescoreRequest struct {
	Role string `json:"role"` // optional filter
}

// handleRescore re-runs the scoring engine on every stored analysis, or on
// those of one role, and rewrites reports and index rows in place.
func (h *Handler) handleRescore(w http.ResponseWriter, r *http.Request) {
	var req rescoreRequest
	if r.ContentLength != 0 {
		if err := h.decodeBody(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Role != "" {
		role, err := roles.Parse(req.Role)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Role = string(role)
	}

	summary, err := h.svc.Rescore(r.Context(), req.Role, h.opts.RescoreWorkers)
	// Cached reports are stale once any row has been rewritten.
	h.cache.Purge()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
