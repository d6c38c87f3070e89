package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/resumate/resumate/internal/history"
	"github.com/resumate/resumate/pkg/roles"
	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/validation"
)

func loadResume(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "resume.txt"))
	if err != nil {
		t.Fatalf("read resume: %v", err)
	}
	return string(data)
}

func newTestService(t *testing.T, engine *scoring.Engine, storage StorageClient, index Index) *Service {
	t.Helper()
	svc := NewService(engine, storage, index, nil)
	n := 0
	svc.newID = func() string {
		n++
		return "analysis-" + string(rune('a'+n-1))
	}
	return svc
}

func TestAnalyzeStoresAnalysis(t *testing.T) {
	ctx := context.Background()
	storage := NewLocalStorage(t.TempDir())
	index := history.NewMemory()
	svc := newTestService(t, nil, storage, index)

	out, err := svc.Analyze(ctx, AnalyzeRequest{
		ResumeText: loadResume(t),
		Role:       roles.FrontendDeveloper,
		Store:      true,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !out.Validation.IsValid || out.Result == nil {
		t.Fatalf("expected a scored analysis, got %+v", out)
	}
	if out.Result.OverallScore != 72 {
		t.Errorf("OverallScore = %d, want 72", out.Result.OverallScore)
	}
	if out.Record == nil || out.Record.ID != "analysis-a" {
		t.Fatalf("expected stored record analysis-a, got %+v", out.Record)
	}
	if out.Record.ReportRef != "reports/analysis-a.json" || out.Record.ResumeRef != "resumes/analysis-a.txt" {
		t.Errorf("unexpected refs %q %q", out.Record.ReportRef, out.Record.ResumeRef)
	}

	report, err := svc.Report(ctx, "analysis-a")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if report.OverallScore != 72 || report.Metadata.Role != roles.FrontendDeveloper {
		t.Errorf("Report = %d %s", report.OverallScore, report.Metadata.Role)
	}

	list, err := svc.List(ctx, history.Filter{Role: string(roles.FrontendDeveloper)})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List returned %d records, want 1", len(list))
	}
}

func TestAnalyzeRejectsNonResume(t *testing.T) {
	svc := newTestService(t, nil, NewLocalStorage(t.TempDir()), history.NewMemory())

	out, err := svc.Analyze(context.Background(), AnalyzeRequest{
		ResumeText: "Dear team, thanks for the lovely dinner last night.",
		Role:       roles.DataAnalyst,
		Store:      true,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if out.Validation.IsValid || out.Result != nil || out.Record != nil {
		t.Errorf("expected rejection without a result, got %+v", out)
	}
	if out.Validation.RejectionReason != validation.ReasonMissingBoth {
		t.Errorf("RejectionReason = %q", out.Validation.RejectionReason)
	}
}

func TestAnalyzeWithoutArchive(t *testing.T) {
	svc := NewService(nil, nil, nil, nil)
	ctx := context.Background()

	out, err := svc.Analyze(ctx, AnalyzeRequest{ResumeText: loadResume(t), Role: roles.FrontendDeveloper})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if out.Result == nil || out.Record != nil {
		t.Errorf("expected an unstored result, got %+v", out)
	}

	_, err = svc.Analyze(ctx, AnalyzeRequest{ResumeText: loadResume(t), Role: roles.FrontendDeveloper, Store: true})
	if !errors.Is(err, ErrArchiveDisabled) {
		t.Errorf("Store without archive: got %v, want ErrArchiveDisabled", err)
	}
	if _, err := svc.List(ctx, history.Filter{}); !errors.Is(err, ErrArchiveDisabled) {
		t.Errorf("List without archive: got %v", err)
	}
	if _, err := svc.Rescore(ctx, "", 2); !errors.Is(err, ErrArchiveDisabled) {
		t.Errorf("Rescore without archive: got %v", err)
	}
}

func TestReportRejectsCorruptBlob(t *testing.T) {
	ctx := context.Background()
	storage := NewLocalStorage(t.TempDir())
	svc := newTestService(t, nil, storage, history.NewMemory())

	if _, err := svc.Analyze(ctx, AnalyzeRequest{ResumeText: loadResume(t), Role: roles.FrontendDeveloper, Store: true}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if err := storage.Put(ctx, KindReport, "analysis-a", []byte(`{"overall_score": 500}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := svc.Report(ctx, "analysis-a"); err == nil {
		t.Error("expected schema error for corrupt report")
	}
	if _, err := svc.Report(ctx, "missing"); !errors.Is(err, history.ErrNotFound) {
		t.Errorf("missing report: got %v, want ErrNotFound", err)
	}
}

func TestRescore(t *testing.T) {
	ctx := context.Background()
	storage := NewLocalStorage(t.TempDir())
	index := history.NewMemory()
	svc := newTestService(t, nil, storage, index)

	for _, role := range []roles.ID{roles.FrontendDeveloper, roles.FrontendDeveloper, roles.DataAnalyst} {
		if _, err := svc.Analyze(ctx, AnalyzeRequest{ResumeText: loadResume(t), Role: role, Store: true}); err != nil {
			t.Fatalf("Analyze(%s): %v", role, err)
		}
	}
	// A row whose resume blob is gone counts as an error, not a failure of the run.
	if _, err := index.Insert(ctx, history.Record{
		ID: "orphan", Role: string(roles.FrontendDeveloper), RoleMode: "core",
		ReportRef: "reports/orphan.json", ResumeRef: "resumes/orphan.txt",
	}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	w, err := scoring.Defaults().WithOverrides(map[string]float64{"resume_structure.summary": 0})
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}
	rescorer := NewService(scoring.NewEngine(w), storage, index, nil)

	summary, err := rescorer.Rescore(ctx, string(roles.FrontendDeveloper), 2)
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if summary.Rescored != 2 || summary.Errors != 1 {
		t.Errorf("summary = %+v, want 2 rescored and 1 error", summary)
	}

	rec, err := index.Get(ctx, "analysis-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.OverallScore != 70 || rec.RescoredAt == nil {
		t.Errorf("record after rescore = %+v, want score 70", rec)
	}
	report, err := rescorer.Report(ctx, "analysis-a")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if report.OverallScore != 70 {
		t.Errorf("report blob not rewritten: score %d", report.OverallScore)
	}

	untouched, _ := index.Get(ctx, "analysis-c")
	if untouched.RescoredAt != nil {
		t.Error("role filter should leave other roles untouched")
	}
}
