package scoring

import "fmt"

// ExperienceDepthComponent rewards action-oriented, dated, attributed work
// history.
type ExperienceDepthComponent struct {
	NoSignal  float64
	Base      float64
	VerbTiers []Tier
	Dates     float64
	Org       float64
}

func (c *ExperienceDepthComponent) Key() string       { return KeyExperienceDepth }
func (c *ExperienceDepthComponent) Name() string      { return "Experience depth" }
func (c *ExperienceDepthComponent) MaxScore() float64 { return MaxExperienceDepth }

func (c *ExperienceDepthComponent) Evaluate(doc *Document) ComponentScore {
	result := ComponentScore{
		Key:      c.Key(),
		Name:     c.Name(),
		MaxScore: c.MaxScore(),
		Counts:   map[string]int{},
	}

	verbs := ActionVerbCount(doc)
	dates := anyMatch(dateRes, doc.Text)
	org := orgAtRe.MatchString(doc.Raw) || containsAny(doc.Text, orgLexicon)

	result.Counts["action_verbs"] = verbs
	result.Counts["dates"] = boolCount(dates)
	result.Counts["organization"] = boolCount(org)

	if !experienceLexiconRe.MatchString(doc.Text) {
		result.Score = c.NoSignal
		result.Details = "no experience described"
		return result
	}
	result.Details = describe(fmt.Sprintf("%d action verbs", verbs),
		finding{dates, "dated entries"},
		finding{org, "named organizations"},
	)

	score := c.Base
	if pts := award(c.VerbTiers, verbs); pts > 0 {
		score += pts
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceActionVerb,
			Summary: fmt.Sprintf("%d action verbs", verbs),
			Value:   float64(verbs),
		})
	}
	if dates {
		score += c.Dates
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceDate,
			Summary: "dated entries",
			Value:   c.Dates,
		})
	}
	if org {
		score += c.Org
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceOrganization,
			Summary: "named organizations",
			Value:   c.Org,
		})
	}

	result.Score = clamp(score, 0, c.MaxScore())
	return result
}

// ActionVerbCount counts action verb occurrences in doc for its role.
func ActionVerbCount(doc *Document) int {
	re, ok := actionVerbRes[doc.Role]
	if !ok {
		re = compileVerbs(doc.Requirements.ExperienceKeywords)
	}
	return len(re.FindAllStringIndex(doc.Text, -1))
}
