package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/validation"
)

// MarkdownRenderer produces a Markdown report suitable for sharing or
// pasting into an issue or chat.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, result *scoring.AnalysisResult) error {
	_, err := io.WriteString(w, BuildMarkdownReport(result))
	return err
}

func (r *MarkdownRenderer) RenderValidation(w io.Writer, result validation.Result) error {
	var sb strings.Builder
	if result.IsValid {
		sb.WriteString("## :white_check_mark: Looks like a resume\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("## :x: Not a resume\n\n%s\n\n", result.RejectionReason))
	}
	sb.WriteString(fmt.Sprintf("- **Sections:** %s\n", strings.Join(result.DetectedSections, ", ")))
	sb.WriteString(fmt.Sprintf("- **Identifiers:** %s\n", strings.Join(result.DetectedIdentifiers, ", ")))
	_, err := io.WriteString(w, sb.String())
	return err
}

// BuildMarkdownReport renders result as a Markdown document.
func BuildMarkdownReport(result *scoring.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s Resume score: %d/100 (%s)\n\n",
		ratingIcon(result.Rating), result.OverallScore, result.Rating))
	sb.WriteString(fmt.Sprintf("_Role: %s (%s mode), %d words, %s confidence_\n\n",
		roleLabel(result.Metadata.Role), result.Metadata.RoleMode,
		result.Metadata.WordCount, result.Metadata.Confidence))

	// Summary
	sb.WriteString("| Measure | Value |\n|---------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Skill match | %d%% |\n", result.SkillMatchPercent))
	sb.WriteString(fmt.Sprintf("| Project relevance | %d%% |\n", result.ProjectRelevancePercent))
	sb.WriteString(fmt.Sprintf("| Resume depth | %d%% |\n", result.ResumeDepthPercent))
	sb.WriteString("\n")

	// Breakdown with top 3 evidence items each
	sb.WriteString("### Breakdown\n\n")
	for _, c := range result.Breakdown {
		sb.WriteString(fmt.Sprintf("- **%s**: %.1f / %.0f", c.Name, c.Score, c.MaxScore))
		if c.Details != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", c.Details))
		}
		sb.WriteString("\n")
		for i := 0; i < min(len(c.Evidence), 3); i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", c.Evidence[i].Summary))
		}
	}
	sb.WriteString("\n")

	var applied []scoring.PenaltyInfo
	for _, p := range result.Penalties {
		if p.Applied {
			applied = append(applied, p)
		}
	}
	caps := bindingCaps(result.SoftCaps)
	if len(applied) > 0 || len(caps) > 0 {
		sb.WriteString("### Penalties\n\n")
		for _, p := range applied {
			sb.WriteString(fmt.Sprintf("- **-%.0f** %s\n", p.Deduction, p.Reason))
		}
		for _, c := range caps {
			sb.WriteString(fmt.Sprintf("- **capped at %.0f** %s\n", c.Limit, c.Reason))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("### Strengths\n\n")
	for _, s := range result.Strengths {
		sb.WriteString(fmt.Sprintf("- %s\n", s))
	}
	sb.WriteString("\n### Improvements\n\n")
	for _, s := range result.Improvements {
		sb.WriteString(fmt.Sprintf("- %s\n", s))
	}

	return sb.String()
}

func ratingIcon(rating string) string {
	switch rating {
	case "Excellent":
		return ":green_circle:"
	case "Good":
		return ":yellow_circle:"
	case "Fair":
		return ":orange_circle:"
	default:
		return ":red_circle:"
	}
}
