package scoring_test

import (
	"strings"
	"testing"

	"github.com/resumate/resumate/pkg/roles"
	"github.com/resumate/resumate/pkg/scoring"
)

func doc(text string, role roles.ID) *scoring.Document {
	return scoring.NewDocument(text, role, roles.ModeCore, roles.MustFor(role))
}

func defaultComponent(t *testing.T, key string) scoring.Component {
	t.Helper()
	for _, c := range scoring.DefaultComponents(scoring.Defaults()) {
		if c.Key() == key {
			return c
		}
	}
	t.Fatalf("no default component %s", key)
	return nil
}

func TestCoreSkills_MentionWithoutContext(t *testing.T) {
	c := defaultComponent(t, scoring.KeyCoreSkills)
	result := c.Evaluate(doc("html css", roles.FrontendDeveloper))

	if result.Score != 8 {
		t.Errorf("expected 8 (two skills, no context), got %v", result.Score)
	}
	if result.Counts["mandatory_found"] != 2 || result.Counts["mandatory_with_context"] != 0 {
		t.Errorf("unexpected counts %v", result.Counts)
	}
	if want := "2/5 mandatory skills, 0 with evidence of use, 0 optional"; result.Details != want {
		t.Errorf("details = %q, want %q", result.Details, want)
	}
	if len(result.Evidence) != 2 {
		t.Errorf("expected 2 evidence items, got %d", len(result.Evidence))
	}
}

func TestCoreSkills_ContextWindow(t *testing.T) {
	c := &scoring.CoreSkillsComponent{
		MandatoryCredit: 4,
		ContextBonus:    2,
		ContextWindow:   20,
		MandatoryCap:    25,
		OptionalCredit:  1.5,
		OptionalCap:     10,
	}

	near := c.Evaluate(doc("docker images deployed nightly", roles.CloudDevOps))
	if near.Score != 6 {
		t.Errorf("expected context bonus within the window, got %v", near.Score)
	}

	far := c.Evaluate(doc("docker"+strings.Repeat(" x", 30)+" deployed", roles.CloudDevOps))
	if far.Score != 4 {
		t.Errorf("expected no bonus outside the window, got %v", far.Score)
	}
}

func TestCoreSkills_OptionalCap(t *testing.T) {
	c := defaultComponent(t, scoring.KeyCoreSkills)
	// Eight optional skills at 1.5 each would be 12; the cap is 10.
	text := "tensorflow pytorch sklearn deep learning nlp neural network pandas numpy"
	result := c.Evaluate(doc(text, roles.AIMLIntern))

	if result.Counts["optional_found"] != 8 {
		t.Errorf("expected 8 optional skills, got %d", result.Counts["optional_found"])
	}
	if result.Score != 10 {
		t.Errorf("expected optional credit capped at 10, got %v", result.Score)
	}
}

func TestProjectQuality_NoSignal(t *testing.T) {
	c := defaultComponent(t, scoring.KeyProjectQuality)
	result := c.Evaluate(doc("hello there", roles.FrontendDeveloper))
	if result.Score != 3 {
		t.Errorf("expected no-signal score 3, got %v", result.Score)
	}
	if result.Details != "no project work described" {
		t.Errorf("details = %q", result.Details)
	}
}

func TestProjectQuality_Quantification(t *testing.T) {
	c := defaultComponent(t, scoring.KeyProjectQuality)
	result := c.Evaluate(doc("Project: reduced load time by 40% and served 500 users.", roles.FrontendDeveloper))

	if result.Counts["quantifications"] != 3 {
		t.Errorf("expected 3 quantifications, got %d", result.Counts["quantifications"])
	}
	// 5 lexicon + 7 quantification
	if result.Score != 12 {
		t.Errorf("expected 12, got %v", result.Score)
	}
	if want := "0 project indicator mentions, 3 quantified results"; result.Details != want {
		t.Errorf("details = %q, want %q", result.Details, want)
	}
}

func TestProjectQuality_Cap(t *testing.T) {
	c := defaultComponent(t, scoring.KeyProjectQuality)
	text := strings.Repeat("Built a dashboard website using React, 2x faster, 30% smaller, 100 users. ", 3) +
		"Code at github.com/someone/site"
	result := c.Evaluate(doc(text, roles.FrontendDeveloper))
	if result.Score != 30 {
		t.Errorf("expected the 30 point cap, got %v", result.Score)
	}
}

func TestExperienceDepth(t *testing.T) {
	c := defaultComponent(t, scoring.KeyExperienceDepth)

	result := c.Evaluate(doc("Intern at Acme, 2023. Built and deployed apps; optimized queries.", roles.FrontendDeveloper))
	// 4 base + 4 verbs(3) + 4 dates + 4 organization
	if result.Score != 16 {
		t.Errorf("expected 16, got %v (counts %v)", result.Score, result.Counts)
	}
	if result.Counts["action_verbs"] != 3 {
		t.Errorf("expected 3 action verbs, got %d", result.Counts["action_verbs"])
	}
	if want := "3 action verbs, dated entries, named organizations"; result.Details != want {
		t.Errorf("details = %q, want %q", result.Details, want)
	}

	none := c.Evaluate(doc("Built and deployed apps in 2023.", roles.FrontendDeveloper))
	if none.Score != 4 {
		t.Errorf("expected no-signal score 4 without experience lexicon, got %v", none.Score)
	}
}

func TestExperienceDepth_OrganizationNeedsCase(t *testing.T) {
	c := defaultComponent(t, scoring.KeyExperienceDepth)
	upper := c.Evaluate(doc("work at Globex", roles.FrontendDeveloper))
	lower := c.Evaluate(doc("work at globex", roles.FrontendDeveloper))
	if upper.Counts["organization"] != 1 || lower.Counts["organization"] != 0 {
		t.Errorf("expected only the capitalized name to count, got %v and %v", upper.Counts, lower.Counts)
	}
}

func TestActionVerbCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"developed developing develops", 3},
		{"created creating creates", 3},
		{"built and led the team", 2},
		{"developer designer", 0},
	}
	for _, tt := range tests {
		if got := scoring.ActionVerbCount(doc(tt.text, roles.FrontendDeveloper)); got != tt.want {
			t.Errorf("ActionVerbCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestResumeStructure(t *testing.T) {
	c := defaultComponent(t, scoring.KeyResumeStructure)

	full := c.Evaluate(doc("Education\nSkills\nExperience\nemail: a@b.co\nSummary\nAwards", roles.FrontendDeveloper))
	if full.Score != 15 {
		t.Errorf("expected 15, got %v", full.Score)
	}
	if full.Counts["sections_found"] != 4 {
		t.Errorf("expected 4 sections, got %d", full.Counts["sections_found"])
	}
	if want := "4/4 standard sections, summary, certifications or achievements"; full.Details != want {
		t.Errorf("details = %q, want %q", full.Details, want)
	}

	partial := c.Evaluate(doc("Skills: go, sql", roles.FrontendDeveloper))
	if partial.Score != 3 {
		t.Errorf("expected 3, got %v", partial.Score)
	}
}

func TestResumeStructure_ContactNeedsContactDetails(t *testing.T) {
	c := defaultComponent(t, scoring.KeyResumeStructure)

	tests := []struct {
		name        string
		text        string
		wantContact bool
	}{
		{"year range is not a phone", "Education\nB.Tech in computer science, 2019 - 2023\nSkills\nHTML CSS\nExperience\nIntern", false},
		{"compact year range", "Education 2019-2023, Experience 2021-2022", false},
		{"international phone", "Education\n+91 98450 12345", true},
		{"us phone", "Experience\n(555) 123-4567", true},
		{"email address", "Skills\nana@example.com", true},
		{"contact keyword", "Contact: see profile", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Evaluate(doc(tt.text, roles.FrontendDeveloper))
			got := false
			for _, e := range result.Evidence {
				if e.Term == "contact" {
					got = true
				}
			}
			if got != tt.wantContact {
				t.Errorf("contact section = %v, want %v (evidence %v)", got, tt.wantContact, result.Evidence)
			}
		})
	}

	// Three sections and no contact details.
	dated := c.Evaluate(doc(tests[0].text, roles.FrontendDeveloper))
	if dated.Score != 9 {
		t.Errorf("expected 9 without contact credit, got %v", dated.Score)
	}
}
