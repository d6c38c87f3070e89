package surface_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/resumate/resumate/pkg/roles"
	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/surface"
	"github.com/resumate/resumate/pkg/validation"
)

func sampleResult() *scoring.AnalysisResult {
	return &scoring.AnalysisResult{
		OverallScore:            58,
		Rating:                  "Fair",
		SkillMatchPercent:       69,
		ProjectRelevancePercent: 40,
		ResumeDepthPercent:      57,
		Strengths:               []string{"Strong foundation in the role's required skills"},
		Improvements: []string{
			"Add one or two role-relevant projects describing what you built and the outcome",
			"Link to your GitHub profile or a live demo of your work",
		},
		Breakdown: []scoring.ComponentScore{
			{
				Key:      scoring.KeyCoreSkills,
				Name:     "Core skills",
				Details:  "4/5 mandatory skills, 1 with evidence of use, 2 optional",
				Score:    24,
				MaxScore: scoring.MaxCoreSkills,
				Evidence: []scoring.EvidenceItem{
					{Type: scoring.EvidenceSkill, Summary: "react mentioned with evidence of use", Term: "react", Value: 6},
					{Type: scoring.EvidenceSkill, Summary: "css mentioned", Term: "css", Value: 4},
				},
			},
			{Key: scoring.KeyProjectQuality, Name: "Project quality", Score: 12, MaxScore: scoring.MaxProjectQuality},
			{Key: scoring.KeyExperienceDepth, Name: "Experience depth", Score: 12, MaxScore: scoring.MaxExperienceDepth},
			{Key: scoring.KeyResumeStructure, Name: "Resume structure", Score: 8, MaxScore: scoring.MaxResumeStructure},
		},
		Penalties: []scoring.PenaltyInfo{
			{Key: "length", Reason: scoring.ReasonLength, Deduction: 5, Applied: true},
			{Key: "keyword_stuffing", Reason: scoring.ReasonStuffing},
		},
		SoftCaps: []scoring.SoftCap{},
		Metadata: scoring.Metadata{
			Role:       roles.FrontendDeveloper,
			RoleMode:   roles.ModeCore,
			AnalyzedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
			Confidence: scoring.ConfidenceMedium,
			WordCount:  96,
		},
	}
}

func TestTerminalRenderer_BasicOutput(t *testing.T) {
	// Set NO_COLOR to avoid ANSI codes in test comparison
	t.Setenv("NO_COLOR", "1")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	output := buf.String()

	wants := []string{
		"Resume score for Frontend Developer: 58/100 (Fair)",
		"core mode, 96 words, medium confidence",
		"Skill match 69%",
		"Core skills - react mentioned with evidence of use",
		"css mentioned",
		"Penalties:",
		"-5 Resume too short to show depth",
		"Strengths:",
		"Improvements:",
		"Link to your GitHub profile",
	}
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "keyword stuffing") {
		t.Error("penalties that did not apply should not be listed")
	}
}

func TestTerminalRenderer_NoPenalties(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := sampleResult()
	result.Penalties = []scoring.PenaltyInfo{{Key: "length", Reason: "fine"}}

	var buf bytes.Buffer
	if err := (&surface.TerminalRenderer{}).Render(&buf, result); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), "Penalties:") {
		t.Error("expected no Penalties section")
	}
}

func TestTerminalRenderer_ColorRespected(t *testing.T) {
	// Without NO_COLOR, output should have ANSI codes
	if v, ok := os.LookupEnv("NO_COLOR"); ok {
		t.Setenv("NO_COLOR", v)
		os.Unsetenv("NO_COLOR")
	}

	var buf bytes.Buffer
	if err := (&surface.TerminalRenderer{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[") {
		t.Error("expected ANSI escape codes when NO_COLOR is not set")
	}
}

func TestTerminalRenderer_Validation(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	res := validation.Result{
		RejectionReason:     validation.ReasonMissingSections,
		DetectedSections:    []string{"Skills"},
		DetectedIdentifiers: []string{},
	}
	if err := (&surface.TerminalRenderer{}).RenderValidation(&buf, res); err != nil {
		t.Fatalf("RenderValidation() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Not a resume: Missing standard resume sections") {
		t.Errorf("expected rejection reason in output:\n%s", out)
	}
	if !strings.Contains(out, "Identifiers: none") {
		t.Errorf("expected empty identifiers marker:\n%s", out)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	report := surface.BuildMarkdownReport(sampleResult())

	wants := []string{
		"## :orange_circle: Resume score: 58/100 (Fair)",
		"| Skill match | 69% |",
		"- **Core skills**: 24.0 / 35 (4/5 mandatory skills, 1 with evidence of use, 2 optional)",
		"  - react mentioned with evidence of use",
		"### Penalties",
		"- **-5** Resume too short to show depth",
		"### Improvements",
	}
	for _, want := range wants {
		if !strings.Contains(report, want) {
			t.Errorf("expected %q in report:\n%s", want, report)
		}
	}
}

func TestRenderersListOnlyBindingCaps(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := sampleResult()
	result.SoftCaps = []scoring.SoftCap{
		{Key: "weak_projects", Reason: "Project evidence is minimal", Limit: 65},
		{Key: "no_skill_or_project_evidence", Reason: "Neither core skills nor projects are evidenced", Limit: 50, Binding: true},
	}

	var buf bytes.Buffer
	if err := (&surface.TerminalRenderer{}).Render(&buf, result); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	report := surface.BuildMarkdownReport(result)

	for name, out := range map[string]string{"terminal": buf.String(), "markdown": report} {
		if !strings.Contains(out, "Neither core skills nor projects") {
			t.Errorf("%s: expected the binding cap:\n%s", name, out)
		}
		if strings.Contains(out, "Project evidence is minimal") {
			t.Errorf("%s: cap that did not lower the score should not be listed:\n%s", name, out)
		}
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&surface.JSONRenderer{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["overall_score"] != float64(58) {
		t.Errorf("overall_score = %v, want 58", decoded["overall_score"])
	}
	meta, ok := decoded["metadata"].(map[string]any)
	if !ok || meta["role"] != "frontend-developer" {
		t.Errorf("unexpected metadata %v", decoded["metadata"])
	}
}

func TestForFormat(t *testing.T) {
	for _, f := range []string{"", "text", "json", "markdown", "md"} {
		if _, err := surface.ForFormat(f); err != nil {
			t.Errorf("ForFormat(%q) error: %v", f, err)
		}
	}
	if _, err := surface.ForFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
