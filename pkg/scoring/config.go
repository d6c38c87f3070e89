package scoring

import (
	"fmt"
	"sort"
)

// Weights holds the point values, thresholds and caps used by every
// component, penalty and soft cap. Component maxima are fixed and not part
// of Weights.
type Weights struct {
	// Core skills
	CoreMandatoryCredit float64
	CoreContextBonus    float64
	CoreContextWindow   int // characters either side of a skill's first occurrence
	CoreMandatoryCap    float64
	CoreOptionalCredit  float64
	CoreOptionalCap     float64

	// Project quality
	ProjectNoSignal    float64
	ProjectLexiconBase float64
	ProjectTechStack   float64
	ProjectLink        float64

	// Experience depth
	ExperienceNoSignal float64
	ExperienceBase     float64
	ExperienceDates    float64
	ExperienceOrg      float64

	// Resume structure
	StructureSection       float64
	StructureSummary       float64
	StructureCertification float64

	// Penalties
	PenaltyNoEvidence   float64
	NoEvidenceMinSkills int
	PenaltyStuffingHigh float64
	PenaltyStuffingLow  float64
	StuffingHighRatio   float64
	StuffingLowRatio    float64
	PenaltyVeryShort    float64
	PenaltyShort        float64
	VeryShortWords      int
	ShortWords          int

	// Soft caps
	CapWeakProjects        float64
	WeakProjectsMax        float64 // project score at or below this triggers CapWeakProjects
	CapNoEvidence          float64
	NoEvidenceCoreBelow    float64
	NoEvidenceProjectBelow float64
}

// Defaults returns the default scoring weights.
func Defaults() Weights {
	return Weights{
		CoreMandatoryCredit: 4,
		CoreContextBonus:    2,
		CoreContextWindow:   150,
		CoreMandatoryCap:    25,
		CoreOptionalCredit:  1.5,
		CoreOptionalCap:     10,

		ProjectNoSignal:    3,
		ProjectLexiconBase: 5,
		ProjectTechStack:   3,
		ProjectLink:        2,

		ExperienceNoSignal: 4,
		ExperienceBase:     4,
		ExperienceDates:    4,
		ExperienceOrg:      4,

		StructureSection:       3,
		StructureSummary:       2,
		StructureCertification: 1,

		PenaltyNoEvidence:   8,
		NoEvidenceMinSkills: 3,
		PenaltyStuffingHigh: 12,
		PenaltyStuffingLow:  6,
		StuffingHighRatio:   0.08,
		StuffingLowRatio:    0.05,
		PenaltyVeryShort:    10,
		PenaltyShort:        5,
		VeryShortWords:      80,
		ShortWords:          120,

		CapWeakProjects:        65,
		WeakProjectsMax:        5,
		CapNoEvidence:          50,
		NoEvidenceCoreBelow:    10,
		NoEvidenceProjectBelow: 10,
	}
}

// WithOverrides returns a copy of w with the named weights replaced.
// Keys are the ones listed by WeightKeys; an unknown key is an error.
func (w Weights) WithOverrides(overrides map[string]float64) (Weights, error) {
	out := w
	fields := out.fields()
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set, ok := fields[k]
		if !ok {
			return w, fmt.Errorf("unknown scoring weight %q", k)
		}
		v := overrides[k]
		if v < 0 {
			return w, fmt.Errorf("scoring weight %q must not be negative, got %v", k, v)
		}
		set(v)
	}
	return out, nil
}

// WeightKeys lists the keys accepted by WithOverrides, sorted.
func WeightKeys() []string {
	w := Defaults()
	fields := w.fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (w *Weights) fields() map[string]func(float64) {
	f := func(p *float64) func(float64) { return func(v float64) { *p = v } }
	i := func(p *int) func(float64) { return func(v float64) { *p = int(v) } }
	return map[string]func(float64){
		"core_skills.mandatory_credit":   f(&w.CoreMandatoryCredit),
		"core_skills.context_bonus":      f(&w.CoreContextBonus),
		"core_skills.context_window":     i(&w.CoreContextWindow),
		"core_skills.mandatory_cap":      f(&w.CoreMandatoryCap),
		"core_skills.optional_credit":    f(&w.CoreOptionalCredit),
		"core_skills.optional_cap":       f(&w.CoreOptionalCap),
		"project_quality.no_signal":      f(&w.ProjectNoSignal),
		"project_quality.lexicon_base":   f(&w.ProjectLexiconBase),
		"project_quality.tech_stack":     f(&w.ProjectTechStack),
		"project_quality.link":           f(&w.ProjectLink),
		"experience_depth.no_signal":     f(&w.ExperienceNoSignal),
		"experience_depth.base":          f(&w.ExperienceBase),
		"experience_depth.dates":         f(&w.ExperienceDates),
		"experience_depth.organization":  f(&w.ExperienceOrg),
		"resume_structure.section":       f(&w.StructureSection),
		"resume_structure.summary":       f(&w.StructureSummary),
		"resume_structure.certification": f(&w.StructureCertification),
		"penalty.no_evidence":            f(&w.PenaltyNoEvidence),
		"penalty.no_evidence_min_skills": i(&w.NoEvidenceMinSkills),
		"penalty.stuffing_high":          f(&w.PenaltyStuffingHigh),
		"penalty.stuffing_low":           f(&w.PenaltyStuffingLow),
		"penalty.stuffing_high_ratio":    f(&w.StuffingHighRatio),
		"penalty.stuffing_low_ratio":     f(&w.StuffingLowRatio),
		"penalty.very_short":             f(&w.PenaltyVeryShort),
		"penalty.short":                  f(&w.PenaltyShort),
		"penalty.very_short_words":       i(&w.VeryShortWords),
		"penalty.short_words":            i(&w.ShortWords),
		"cap.weak_projects":              f(&w.CapWeakProjects),
		"cap.weak_projects_max":          f(&w.WeakProjectsMax),
		"cap.no_evidence":                f(&w.CapNoEvidence),
		"cap.no_evidence_core_below":     f(&w.NoEvidenceCoreBelow),
		"cap.no_evidence_project_below":  f(&w.NoEvidenceProjectBelow),
	}
}
