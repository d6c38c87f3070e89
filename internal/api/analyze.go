package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/resumate/resumate/internal/ingestion"
	"github.com/resumate/resumate/pkg/roles"
	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/validation"
)

type validateRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

type analyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	Role       string `json:"role" validate:"required"`
	RoleMode   string `json:"role_mode" validate:"omitempty,oneof=core extended"`
	Store      bool   `json:"store"`
}

type analyzeResponse struct {
	ID string `json:"id,omitempty"`
	*scoring.AnalysisResult
}

type rejectedResponse struct {
	Error      string            `json:"error"`
	Validation validation.Result `json:"validation"`
}

type roleResponse struct {
	roles.Info
	Mode         roles.Mode          `json:"mode"`
	Requirements *roles.Requirements `json:"requirements,omitempty"`
}

// checkLength enforces the minimum amount of extracted text.
func (h *Handler) checkLength(w http.ResponseWriter, text string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < h.opts.MinTextLength {
		writeError(w, http.StatusBadRequest, "could not extract enough text from the resume")
		return false
	}
	return true
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.checkLength(w, req.ResumeText) {
		return
	}
	writeJSON(w, http.StatusOK, validation.Validate(req.ResumeText))
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	role, err := roles.Parse(req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := roles.ParseMode(req.RoleMode, role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.checkLength(w, req.ResumeText) {
		return
	}

	out, err := h.svc.Analyze(r.Context(), ingestion.AnalyzeRequest{
		ResumeText: req.ResumeText,
		Role:       role,
		Mode:       mode,
		Store:      req.Store,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if out.Result == nil {
		writeJSON(w, http.StatusUnprocessableEntity, rejectedResponse{
			Error:      out.Validation.RejectionReason,
			Validation: out.Validation,
		})
		return
	}

	resp := analyzeResponse{AnalysisResult: out.Result}
	if out.Record != nil {
		resp.ID = out.Record.ID
		h.cache.Put(out.Record.ID, out.Result)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	var infos []roles.Info
	switch strings.ToLower(r.URL.Query().Get("mode")) {
	case "":
		infos = roles.All()
	case string(roles.ModeCore):
		infos = roles.Core()
	case string(roles.ModeExtended):
		infos = roles.Extended()
	default:
		writeError(w, http.StatusBadRequest, "mode must be core or extended")
		return
	}

	withRequirements := r.URL.Query().Get("requirements") == "true"
	out := make([]roleResponse, 0, len(infos))
	for _, info := range infos {
		resp := roleResponse{Info: info, Mode: info.Mode()}
		if withRequirements {
			req := roles.MustFor(info.ID)
			resp.Requirements = &req
		}
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, out)
}
