package scoring

import (
	"fmt"
	"math"
	"strings"
)

// CoreSkillsComponent credits the role's mandatory and optional skills.
// A mandatory skill earns a context bonus when an experience keyword or
// project indicator appears near its first mention.
type CoreSkillsComponent struct {
	MandatoryCredit float64 // per mandatory skill present
	ContextBonus    float64 // extra per mandatory skill used in context
	ContextWindow   int     // characters either side of the first mention
	MandatoryCap    float64
	OptionalCredit  float64 // per optional skill present
	OptionalCap     float64
}

func (c *CoreSkillsComponent) Key() string       { return KeyCoreSkills }
func (c *CoreSkillsComponent) Name() string      { return "Core skills" }
func (c *CoreSkillsComponent) MaxScore() float64 { return MaxCoreSkills }

func (c *CoreSkillsComponent) Evaluate(doc *Document) ComponentScore {
	result := ComponentScore{
		Key:      c.Key(),
		Name:     c.Name(),
		MaxScore: c.MaxScore(),
		Counts:   map[string]int{},
	}

	req := doc.Requirements
	context := make([]string, 0, len(req.ExperienceKeywords)+len(req.ProjectIndicators))
	context = append(context, req.ExperienceKeywords...)
	context = append(context, req.ProjectIndicators...)

	var mandatory float64
	found, withContext := 0, 0
	for _, skill := range req.MandatorySkills {
		idx := strings.Index(doc.Text, skill)
		if idx < 0 {
			continue
		}
		found++
		pts := c.MandatoryCredit
		lo := max(0, idx-c.ContextWindow)
		hi := min(len(doc.Text), idx+len(skill)+c.ContextWindow)
		summary := fmt.Sprintf("%s mentioned", skill)
		if containsAny(doc.Text[lo:hi], context) {
			pts += c.ContextBonus
			withContext++
			summary = fmt.Sprintf("%s mentioned with evidence of use", skill)
		}
		mandatory += pts
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceSkill,
			Summary: summary,
			Term:    skill,
			Value:   pts,
		})
	}
	mandatory = math.Min(mandatory, c.MandatoryCap)

	optionalFound := doc.OptionalPresent()
	for _, skill := range optionalFound {
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceSkill,
			Summary: fmt.Sprintf("optional skill %s mentioned", skill),
			Term:    skill,
			Value:   c.OptionalCredit,
		})
	}
	optional := math.Min(float64(len(optionalFound))*c.OptionalCredit, c.OptionalCap)

	result.Counts["mandatory_total"] = len(req.MandatorySkills)
	result.Counts["mandatory_found"] = found
	result.Counts["mandatory_with_context"] = withContext
	result.Counts["optional_found"] = len(optionalFound)
	result.Details = fmt.Sprintf("%d/%d mandatory skills, %d with evidence of use, %d optional",
		found, len(req.MandatorySkills), withContext, len(optionalFound))
	result.Score = clamp(mandatory+optional, 0, c.MaxScore())
	return result
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
