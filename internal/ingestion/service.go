// Package ingestion orchestrates the resumated pipeline: validation,
// scoring, blob archival and indexing of analyses.
package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/resumate/resumate/internal/history"
	"github.com/resumate/resumate/internal/logger"
	"github.com/resumate/resumate/internal/schemas"
	"github.com/resumate/resumate/pkg/roles"
	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/validation"
)

// ErrArchiveDisabled is returned when an operation needs the analysis
// archive but the service was built without one.
var ErrArchiveDisabled = errors.New("analysis archive is not configured")

// Index abstracts the analysis index so the pipeline does not depend on a
// concrete database.
type Index interface {
	Insert(ctx context.Context, rec history.Record) (*history.Record, error)
	Get(ctx context.Context, id string) (*history.Record, error)
	List(ctx context.Context, f history.Filter) ([]history.Record, error)
	UpdateScore(ctx context.Context, id string, u history.ScoreUpdate) error
}

var (
	_ Index = (*history.Service)(nil)
	_ Index = (*history.Memory)(nil)
)

// AnalyzeRequest describes one submission.
type AnalyzeRequest struct {
	ResumeText string
	Role       roles.ID
	Mode       roles.Mode
	Store      bool
}

// Outcome is the result of a submission. Result is nil when the text was
// rejected by the validator; Record is nil unless the analysis was stored.
type Outcome struct {
	Validation validation.Result
	Result     *scoring.AnalysisResult
	Record     *history.Record
}

// RescoreSummary counts the outcome of a bulk re-score.
type RescoreSummary struct {
	Rescored int `json:"rescored"`
	Errors   int `json:"errors"`
}

// Service coordinates the analysis pipeline.
type Service struct {
	engine  *scoring.Engine
	storage StorageClient
	index   Index
	log     *zap.Logger
	newID   func() string
}

// NewService creates an ingestion service. storage and index may both be
// nil, in which case analyses are computed but never archived.
func NewService(engine *scoring.Engine, storage StorageClient, index Index, log *zap.Logger) *Service {
	if engine == nil {
		engine = scoring.NewEngine(scoring.Defaults())
	}
	return &Service{
		engine:  engine,
		storage: storage,
		index:   index,
		log:     logger.OrNop(log),
		newID:   uuid.NewString,
	}
}

// Engine returns the scoring engine used by the service.
func (s *Service) Engine() *scoring.Engine {
	return s.engine
}

// ArchiveEnabled reports whether analyses can be stored and read back.
func (s *Service) ArchiveEnabled() bool {
	return s.storage != nil && s.index != nil
}

// Analyze validates the text, scores it when it qualifies as a resume and
// archives the analysis when requested.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*Outcome, error) {
	out := &Outcome{Validation: validation.Validate(req.ResumeText)}
	if !out.Validation.IsValid {
		s.log.Debug("submission rejected",
			zap.String("reason", out.Validation.RejectionReason),
			zap.String("preview", logger.TruncateForLog(req.ResumeText, 60)))
		return out, nil
	}

	if req.Store && !s.ArchiveEnabled() {
		return nil, ErrArchiveDisabled
	}

	result, err := s.engine.Analyze(scoring.Request{
		ResumeText: req.ResumeText,
		Role:       req.Role,
		RoleMode:   req.Mode,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	out.Result = result

	if req.Store {
		rec, err := s.store(ctx, req.ResumeText, result)
		if err != nil {
			return nil, err
		}
		out.Record = rec
	}
	return out, nil
}

func (s *Service) store(ctx context.Context, text string, result *scoring.AnalysisResult) (*history.Record, error) {
	id := s.newID()

	if err := s.storage.Put(ctx, KindResume, id, []byte(text)); err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}
	if err := s.putReport(ctx, id, result); err != nil {
		return nil, err
	}

	rec, err := s.index.Insert(ctx, history.Record{
		ID:           id,
		Role:         string(result.Metadata.Role),
		RoleMode:     string(result.Metadata.RoleMode),
		OverallScore: result.OverallScore,
		Rating:       result.Rating,
		Confidence:   string(result.Metadata.Confidence),
		WordCount:    result.Metadata.WordCount,
		ReportRef:    ObjectKey("", KindReport, id),
		ResumeRef:    ObjectKey("", KindResume, id),
	})
	if err != nil {
		return nil, fmt.Errorf("index analysis: %w", err)
	}

	s.log.Info("analysis stored",
		append(logger.AnalysisFields(id, rec.Role, rec.RoleMode),
			zap.Int("score", rec.OverallScore))...)
	return rec, nil
}

func (s *Service) putReport(ctx context.Context, id string, result *scoring.AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := s.storage.Put(ctx, KindReport, id, data); err != nil {
		return fmt.Errorf("store report: %w", err)
	}
	return nil
}

// Record returns the index row of a stored analysis.
func (s *Service) Record(ctx context.Context, id string) (*history.Record, error) {
	if !s.ArchiveEnabled() {
		return nil, ErrArchiveDisabled
	}
	return s.index.Get(ctx, id)
}

// List returns stored analyses, newest first.
func (s *Service) List(ctx context.Context, f history.Filter) ([]history.Record, error) {
	if !s.ArchiveEnabled() {
		return nil, ErrArchiveDisabled
	}
	return s.index.List(ctx, f)
}

// Report loads the stored report of an analysis. The blob is checked
// against the report schema before it is decoded.
func (s *Service) Report(ctx context.Context, id string) (*scoring.AnalysisResult, error) {
	rec, err := s.Record(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := s.storage.Get(ctx, KindReport, IDFromRef(rec.ReportRef))
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}
	if err := schemas.ValidateAnalysisReport(data); err != nil {
		return nil, fmt.Errorf("report %s: %w", id, err)
	}
	var result scoring.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &result, nil
}

// Rescore re-runs the engine over stored resume texts, rewriting report
// blobs and index rows. Failures on individual analyses are logged and
// counted rather than aborting the run. workers bounds concurrency.
func (s *Service) Rescore(ctx context.Context, role string, workers int) (RescoreSummary, error) {
	if !s.ArchiveEnabled() {
		return RescoreSummary{}, ErrArchiveDisabled
	}
	records, err := s.index.List(ctx, history.Filter{Role: role})
	if err != nil {
		return RescoreSummary{}, err
	}
	if workers <= 0 {
		workers = 1
	}

	var rescored, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := s.rescoreOne(gctx, rec); err != nil {
				s.log.Warn("rescore failed",
					append(logger.AnalysisFields(rec.ID, rec.Role, rec.RoleMode), zap.Error(err))...)
				failed.Add(1)
				return nil
			}
			rescored.Add(1)
			return nil
		})
	}
	err = g.Wait()

	summary := RescoreSummary{Rescored: int(rescored.Load()), Errors: int(failed.Load())}
	s.log.Info("rescore finished",
		zap.String(logger.FieldRole, role),
		zap.Int("rescored", summary.Rescored),
		zap.Int("errors", summary.Errors))
	return summary, err
}

func (s *Service) rescoreOne(ctx context.Context, rec history.Record) error {
	role, err := roles.Parse(rec.Role)
	if err != nil {
		return err
	}
	mode, err := roles.ParseMode(rec.RoleMode, role)
	if err != nil {
		return err
	}

	text, err := s.storage.Get(ctx, KindResume, IDFromRef(rec.ResumeRef))
	if err != nil {
		return fmt.Errorf("load resume: %w", err)
	}
	result, err := s.engine.Analyze(scoring.Request{ResumeText: string(text), Role: role, RoleMode: mode})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if err := s.putReport(ctx, IDFromRef(rec.ReportRef), result); err != nil {
		return err
	}
	return s.index.UpdateScore(ctx, rec.ID, history.ScoreUpdate{
		OverallScore: result.OverallScore,
		Rating:       result.Rating,
		Confidence:   string(result.Metadata.Confidence),
	})
}
