package scoring

import (
	"fmt"
	"strings"
)

// Tier awards Points once a count reaches AtLeast. Tiers are checked in
// order, so list them from the highest threshold down.
type Tier struct {
	AtLeast int
	Points  float64
}

func award(tiers []Tier, n int) float64 {
	for _, t := range tiers {
		if n >= t.AtLeast {
			return t.Points
		}
	}
	return 0
}

// ProjectQualityComponent looks for described, measurable project work.
type ProjectQualityComponent struct {
	NoSignal            float64 // score when there is no project evidence at all
	LexiconBase         float64
	IndicatorTiers      []Tier
	QuantificationTiers []Tier
	TechStack           float64
	Link                float64
}

func (c *ProjectQualityComponent) Key() string       { return KeyProjectQuality }
func (c *ProjectQualityComponent) Name() string      { return "Project quality" }
func (c *ProjectQualityComponent) MaxScore() float64 { return MaxProjectQuality }

func (c *ProjectQualityComponent) Evaluate(doc *Document) ComponentScore {
	result := ComponentScore{
		Key:      c.Key(),
		Name:     c.Name(),
		MaxScore: c.MaxScore(),
		Counts:   map[string]int{},
	}

	lexicon := projectLexiconRe.MatchString(doc.Text)
	indicators := doc.IndicatorOccurrences()
	quant := countMatches(quantificationRes, doc.Text)
	techStack := techStackRe.MatchString(doc.Text)
	link := linkRe.MatchString(doc.Text)

	result.Counts["lexicon"] = boolCount(lexicon)
	result.Counts["indicator_occurrences"] = indicators
	result.Counts["quantifications"] = quant
	result.Counts["tech_stack"] = boolCount(techStack)
	result.Counts["link"] = boolCount(link)

	if !lexicon && indicators == 0 {
		result.Score = c.NoSignal
		result.Details = "no project work described"
		return result
	}
	result.Details = describe(
		fmt.Sprintf("%d project indicator mentions, %d quantified results", indicators, quant),
		finding{techStack, "tech stack named"},
		finding{link, "links to code or a demo"},
	)

	var score float64
	if lexicon {
		score += c.LexiconBase
	}
	if pts := award(c.IndicatorTiers, indicators); pts > 0 {
		score += pts
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceIndicator,
			Summary: fmt.Sprintf("%d project indicator mentions", indicators),
			Value:   float64(indicators),
		})
	}
	if pts := award(c.QuantificationTiers, quant); pts > 0 {
		score += pts
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceQuantification,
			Summary: fmt.Sprintf("%d quantified results", quant),
			Value:   float64(quant),
		})
	}
	if techStack {
		score += c.TechStack
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceTechStack,
			Summary: "technologies attributed to the work",
			Value:   c.TechStack,
		})
	}
	if link {
		score += c.Link
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceLink,
			Summary: "links to code or a live demo",
			Value:   c.Link,
		})
	}

	result.Score = clamp(score, 0, c.MaxScore())
	return result
}

// finding is an optional clause of a component's details line.
type finding struct {
	found bool
	label string
}

// describe joins head with the labels of the findings that were found.
func describe(head string, findings ...finding) string {
	parts := []string{head}
	for _, f := range findings {
		if f.found {
			parts = append(parts, f.label)
		}
	}
	return strings.Join(parts, ", ")
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}
