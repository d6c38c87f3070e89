// Package scoring implements the resumate fit scoring engine.
// It evaluates a resume's text against a role's requirements and produces an
// explainable, evidence-backed score.
package scoring

import (
	"time"

	"github.com/resumate/resumate/pkg/roles"
)

// Component keys and maxima. The four maxima sum to 100.
const (
	KeyCoreSkills      = "core_skills"
	KeyProjectQuality  = "project_quality"
	KeyExperienceDepth = "experience_depth"
	KeyResumeStructure = "resume_structure"

	MaxCoreSkills      = 35.0
	MaxProjectQuality  = 30.0
	MaxExperienceDepth = 20.0
	MaxResumeStructure = 15.0
)

// AnalysisResult is the complete output of scoring one resume for one role.
// Immutable once computed.
type AnalysisResult struct {
	OverallScore            int              `json:"overall_score"`
	Rating                  string           `json:"rating"` // Excellent, Good, Fair, Needs Work
	SkillMatchPercent       int              `json:"skill_match_percent"`
	ProjectRelevancePercent int              `json:"project_relevance_percent"`
	ResumeDepthPercent      int              `json:"resume_depth_percent"`
	Strengths               []string         `json:"strengths"`
	Improvements            []string         `json:"improvements"`
	Breakdown               []ComponentScore `json:"breakdown"`
	Penalties               []PenaltyInfo    `json:"penalties"`
	SoftCaps                []SoftCap        `json:"soft_caps"`
	RawScore                float64          `json:"raw_score"`
	TotalPenalty            float64          `json:"total_penalty"`
	Metadata                Metadata         `json:"metadata"`
}

// Component returns the breakdown entry with the given key.
func (r *AnalysisResult) Component(key string) (ComponentScore, bool) {
	for _, c := range r.Breakdown {
		if c.Key == key {
			return c, true
		}
	}
	return ComponentScore{}, false
}

// Metadata describes the circumstances of an analysis.
type Metadata struct {
	Role       roles.ID   `json:"role"`
	RoleMode   roles.Mode `json:"role_mode"`
	AnalyzedAt time.Time  `json:"analyzed_at"`
	Confidence Confidence `json:"confidence"`
	WordCount  int        `json:"word_count"`
}

// Confidence expresses how much the score can be trusted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ComponentScore is the output of a single scoring component.
type ComponentScore struct {
	Key      string         `json:"key"`  // machine key: "core_skills"
	Name     string         `json:"name"` // human name: "Core skills"
	Score    float64        `json:"score"`
	MaxScore float64        `json:"max_score"`
	Details  string         `json:"details"` // human-readable summary of what was found
	Counts   map[string]int `json:"counts"`  // raw counts behind the score
	Evidence []EvidenceItem `json:"evidence"`
}

// EvidenceItem is a single piece of concrete evidence backing a component score.
type EvidenceItem struct {
	Type    EvidenceType `json:"type"`
	Summary string       `json:"summary"`
	Term    string       `json:"term,omitempty"`
	Value   float64      `json:"value,omitempty"` // points or occurrence count
}

// EvidenceType classifies what kind of evidence this is.
type EvidenceType string

const (
	EvidenceSkill          EvidenceType = "SKILL"
	EvidenceIndicator      EvidenceType = "PROJECT_INDICATOR"
	EvidenceQuantification EvidenceType = "QUANTIFICATION"
	EvidenceTechStack      EvidenceType = "TECH_STACK"
	EvidenceLink           EvidenceType = "LINK"
	EvidenceActionVerb     EvidenceType = "ACTION_VERB"
	EvidenceDate           EvidenceType = "DATE"
	EvidenceOrganization   EvidenceType = "ORGANIZATION"
	EvidenceSection        EvidenceType = "SECTION"
)

// PenaltyInfo reports one penalty rule. Every rule is reported whether or
// not it triggered; Deduction is zero when Applied is false.
type PenaltyInfo struct {
	Key       string  `json:"key"`
	Reason    string  `json:"reason"`
	Deduction float64 `json:"deduction"`
	Applied   bool    `json:"applied"`
}

// SoftCap is an upper bound on the overall score whose condition held.
// Binding is false when the score was already at or below Limit.
type SoftCap struct {
	Key     string  `json:"key"`
	Reason  string  `json:"reason"`
	Limit   float64 `json:"limit"`
	Binding bool    `json:"binding"`
}

// RatingFromScore maps an overall score to a display rating.
func RatingFromScore(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Work"
	}
}
