package scoring

// DefaultComponents returns the four standard scoring components built from w.
func DefaultComponents(w Weights) []Component {
	return []Component{
		&CoreSkillsComponent{
			MandatoryCredit: w.CoreMandatoryCredit,
			ContextBonus:    w.CoreContextBonus,
			ContextWindow:   w.CoreContextWindow,
			MandatoryCap:    w.CoreMandatoryCap,
			OptionalCredit:  w.CoreOptionalCredit,
			OptionalCap:     w.CoreOptionalCap,
		},
		&ProjectQualityComponent{
			NoSignal:            w.ProjectNoSignal,
			LexiconBase:         w.ProjectLexiconBase,
			IndicatorTiers:      []Tier{{5, 10}, {3, 7}, {1, 4}},
			QuantificationTiers: []Tier{{4, 10}, {2, 7}, {1, 4}},
			TechStack:           w.ProjectTechStack,
			Link:                w.ProjectLink,
		},
		&ExperienceDepthComponent{
			NoSignal:  w.ExperienceNoSignal,
			Base:      w.ExperienceBase,
			VerbTiers: []Tier{{8, 8}, {5, 6}, {3, 4}, {1, 2}},
			Dates:     w.ExperienceDates,
			Org:       w.ExperienceOrg,
		},
		&ResumeStructureComponent{
			Section:       w.StructureSection,
			Summary:       w.StructureSummary,
			Certification: w.StructureCertification,
		},
	}
}

// DefaultPenalties returns the standard penalty rules built from w.
func DefaultPenalties(w Weights) []Penalty {
	return []Penalty{
		&NoEvidencePenalty{
			MinSkills: w.NoEvidenceMinSkills,
			Deduction: w.PenaltyNoEvidence,
		},
		&StuffingPenalty{
			HighRatio:     w.StuffingHighRatio,
			HighDeduction: w.PenaltyStuffingHigh,
			LowRatio:      w.StuffingLowRatio,
			LowDeduction:  w.PenaltyStuffingLow,
		},
		&LengthPenalty{
			VeryShortWords:     w.VeryShortWords,
			VeryShortDeduction: w.PenaltyVeryShort,
			ShortWords:         w.ShortWords,
			ShortDeduction:     w.PenaltyShort,
		},
	}
}
