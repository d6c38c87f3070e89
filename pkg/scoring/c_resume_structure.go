package scoring

import "fmt"

// ResumeStructureComponent checks for the standard resume sections.
type ResumeStructureComponent struct {
	Section       float64 // per standard section found
	Summary       float64
	Certification float64
}

func (c *ResumeStructureComponent) Key() string       { return KeyResumeStructure }
func (c *ResumeStructureComponent) Name() string      { return "Resume structure" }
func (c *ResumeStructureComponent) MaxScore() float64 { return MaxResumeStructure }

var structureSections = []struct {
	name  string
	match func(string) bool
}{
	{"education", educationRe.MatchString},
	{"skills", skillsRe.MatchString},
	{"experience", experienceRe.MatchString},
	{"contact", hasContact},
}

func (c *ResumeStructureComponent) Evaluate(doc *Document) ComponentScore {
	result := ComponentScore{
		Key:      c.Key(),
		Name:     c.Name(),
		MaxScore: c.MaxScore(),
		Counts:   map[string]int{},
	}

	var score float64
	found := 0
	for _, s := range structureSections {
		if !s.match(doc.Text) {
			continue
		}
		found++
		score += c.Section
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceSection,
			Summary: s.name + " section",
			Term:    s.name,
			Value:   c.Section,
		})
	}
	result.Counts["sections_found"] = found

	summary := summaryRe.MatchString(doc.Text)
	if summary {
		score += c.Summary
	}
	result.Counts["summary"] = boolCount(summary)

	cert := certificationRe.MatchString(doc.Text)
	if cert {
		score += c.Certification
	}
	result.Counts["certifications"] = boolCount(cert)
	result.Details = describe(fmt.Sprintf("%d/%d standard sections", found, len(structureSections)),
		finding{summary, "summary"},
		finding{cert, "certifications or achievements"},
	)

	result.Score = clamp(score, 0, c.MaxScore())
	return result
}
