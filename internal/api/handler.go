// Package api implements the resumated REST API.
// It exposes validation and analysis, and read and re-score endpoints over
// the analysis archive.
package api

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/resumate/resumate/internal/ingestion"
	"github.com/resumate/resumate/internal/logger"
)

// Options tunes request handling. Zero values select the defaults.
type Options struct {
	MinTextLength  int
	MaxBodyBytes   int64
	RescoreWorkers int
}

const (
	defaultMinTextLength = 50
	defaultMaxBodyBytes  = 2 << 20
)

// Handler is the top-level API handler for the resumated service.
type Handler struct {
	svc      *ingestion.Service
	cache    *ReportCache
	validate *validator.Validate
	log      *zap.Logger
	opts     Options
}

// NewHandler creates a new API handler.
func NewHandler(svc *ingestion.Service, cache *ReportCache, log *zap.Logger, opts Options) *Handler {
	if cache == nil {
		cache = NewReportCache(0)
	}
	if opts.MinTextLength <= 0 {
		opts.MinTextLength = defaultMinTextLength
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.RescoreWorkers <= 0 {
		opts.RescoreWorkers = 1
	}
	return &Handler{
		svc:      svc,
		cache:    cache,
		validate: newValidator(),
		log:      logger.OrNop(log),
		opts:     opts,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/validate", h.handleValidate)
	mux.HandleFunc("POST /api/v1/analyze", h.handleAnalyze)
	mux.HandleFunc("POST /api/v1/rescore", h.handleRescore)

	mux.HandleFunc("GET /api/v1/roles", h.handleRoles)
	mux.HandleFunc("GET /api/v1/analyses", h.handleListAnalyses)
	mux.HandleFunc("GET /api/v1/analyses/{analysisID}", h.handleGetAnalysis)
}

// decodeBody reads a JSON request body, transparently inflating gzip
// bodies, and validates the decoded struct.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	var body io.Reader = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	if r.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(body)
		if err != nil {
			return fmt.Errorf("invalid gzip body: %w", err)
		}
		defer gz.Close()
		body = io.LimitReader(gz, h.opts.MaxBodyBytes)
	}

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := h.validate.Struct(v); err != nil {
		return errors.New(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
		}
		return "validation error: " + strings.Join(msgs, "; ")
	}
	return "validation error: invalid request"
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps pipeline errors onto HTTP statuses.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ingestion.ErrArchiveDisabled):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
