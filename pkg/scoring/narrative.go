package scoring

import (
	"fmt"
	"strings"

	"github.com/resumate/resumate/pkg/roles"
)

const maxImprovements = 4

// generateStrengths picks one message per component from its score band.
// The result is never empty.
func generateStrengths(doc *Document, scores map[string]ComponentScore) []string {
	label := roleLabel(doc.Role)
	var out []string

	switch core := scores[KeyCoreSkills].Score; {
	case core >= 25:
		out = append(out, fmt.Sprintf("Excellent alignment with the core skills for %s", label))
	case core >= 18:
		out = append(out, "Strong foundation in the role's required skills")
	case core >= 12:
		out = append(out, "Good coverage of several required skills")
	}

	switch project := scores[KeyProjectQuality].Score; {
	case project >= 22:
		out = append(out, "Projects are well described with measurable impact")
	case project >= 15:
		out = append(out, "Solid project work relevant to the role")
	case project >= 10:
		out = append(out, "Some relevant project experience is shown")
	}

	switch exp := scores[KeyExperienceDepth].Score; {
	case exp >= 16:
		out = append(out, "Experience uses strong action verbs with clear timelines")
	case exp >= 12:
		out = append(out, "Experience is described in reasonable detail")
	}

	if scores[KeyResumeStructure].Score >= 12 {
		out = append(out, "Well organized with clear standard sections")
	}

	if len(out) == 0 {
		out = append(out, fmt.Sprintf("A starting point for a %s resume is in place", label))
	}
	return out
}

// generateImprovements lists fixes in priority order, at most maxImprovements.
// The result is never empty.
func generateImprovements(doc *Document, scores map[string]ComponentScore) []string {
	var out []string

	if scores[KeyCoreSkills].Score < 18 {
		missing := doc.MandatoryMissing()
		if len(missing) > 3 {
			missing = missing[:3]
		}
		if len(missing) > 0 {
			out = append(out, fmt.Sprintf("Add evidence of these core skills: %s", strings.Join(missing, ", ")))
		} else {
			out = append(out, "Show where you applied your core skills in projects or work")
		}
	}
	if scores[KeyProjectQuality].Score < 15 {
		out = append(out, "Add one or two role-relevant projects describing what you built and the outcome")
	}
	if scores[KeyProjectQuality].Counts["quantifications"] == 0 {
		out = append(out, "Quantify your impact, for example \"cut load time by 40%\" or \"served 500+ users\"")
	}
	if scores[KeyExperienceDepth].Counts["action_verbs"] < 3 {
		out = append(out, "Start bullet points with action verbs such as built, implemented or optimized")
	}
	if scores[KeyResumeStructure].Score < 10 {
		out = append(out, "Include standard sections: education, skills, experience and contact details")
	}
	if scores[KeyProjectQuality].Counts["link"] == 0 {
		out = append(out, "Link to your GitHub profile or a live demo of your work")
	}

	if len(out) > maxImprovements {
		out = out[:maxImprovements]
	}
	if len(out) == 0 {
		out = append(out, "Tailor bullet points to the wording of each job description you apply to")
	}
	return out
}

func roleLabel(id roles.ID) string {
	if info, ok := roles.Lookup(id); ok {
		return info.Label
	}
	return string(id)
}
