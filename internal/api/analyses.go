package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/resumate/resumate/internal/history"
	"github.com/resumate/resumate/pkg/roles"
)

const maxListLimit = 500

func parseLimit(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	return min(n, maxListLimit), nil
}

// handleListAnalyses handles GET /api/v1/analyses?role=&limit=.
func (h *Handler) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	f := history.Filter{Limit: 50}
	if v := r.URL.Query().Get("role"); v != "" {
		role, err := roles.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Role = string(role)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := parseLimit(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Limit = n
	}

	records, err := h.svc.List(r.Context(), f)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// handleGetAnalysis handles GET /api/v1/analyses/{analysisID}, serving the
// stored report from the cache when possible.
func (h *Handler) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("analysisID")

	if result := h.cache.Get(id); result != nil {
		writeJSON(w, http.StatusOK, analyzeResponse{ID: id, AnalysisResult: result})
		return
	}

	gen := h.cache.Generation()
	result, err := h.svc.Report(r.Context(), id)
	if errors.Is(err, history.ErrNotFound) {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.cache.PutAt(gen, id, result)
	writeJSON(w, http.StatusOK, analyzeResponse{ID: id, AnalysisResult: result})
}
