package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/resumate/resumate/pkg/roles"
	"github.com/resumate/resumate/pkg/scoring"
	"github.com/resumate/resumate/pkg/validation"
)

// TerminalRenderer renders results as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func ratingColor(rating string) string {
	if noColor() {
		return ""
	}
	switch rating {
	case "Excellent", "Good":
		return colorGreen
	case "Fair":
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.AnalysisResult) error {
	rc := ratingColor(result.Rating)

	// Header
	fmt.Fprintf(w, "%s\n",
		bold(fmt.Sprintf("Resume score for %s: %s (%s)",
			roleLabel(result.Metadata.Role),
			colored(fmt.Sprintf("%d/100", result.OverallScore), rc),
			colored(result.Rating, rc))))
	fmt.Fprintf(w, "%s\n\n", dim(fmt.Sprintf("%s mode, %d words, %s confidence",
		result.Metadata.RoleMode, result.Metadata.WordCount, result.Metadata.Confidence)))

	fmt.Fprintf(w, "Skill match %d%% / Project relevance %d%% / Resume depth %d%%\n\n",
		result.SkillMatchPercent, result.ProjectRelevancePercent, result.ResumeDepthPercent)

	// Breakdown
	fmt.Fprintln(w, "Breakdown:")
	for _, c := range result.Breakdown {
		fmt.Fprintf(w, "  %5.1f / %-4.0f %s", c.Score, c.MaxScore, bold(c.Name))
		if len(c.Evidence) > 0 {
			fmt.Fprintf(w, " - %s", c.Evidence[0].Summary)
		}
		fmt.Fprintln(w)

		// Show additional evidence (up to 5 total)
		maxEvidence := min(len(c.Evidence), 5)
		for i := 1; i < maxEvidence; i++ {
			fmt.Fprintf(w, "                %s\n", dim(c.Evidence[i].Summary))
		}
		if len(c.Evidence) > 5 {
			fmt.Fprintf(w, "                %s\n", dim(fmt.Sprintf("... and %d more", len(c.Evidence)-5)))
		}
	}
	fmt.Fprintln(w)

	// Penalties
	applied := 0
	for _, p := range result.Penalties {
		if !p.Applied {
			continue
		}
		if applied == 0 {
			fmt.Fprintln(w, "Penalties:")
		}
		applied++
		fmt.Fprintf(w, "  %s %s\n", colored(fmt.Sprintf("-%.0f", p.Deduction), colorRed), p.Reason)
	}
	for _, c := range bindingCaps(result.SoftCaps) {
		if applied == 0 {
			fmt.Fprintln(w, "Penalties:")
		}
		applied++
		fmt.Fprintf(w, "  %s %s\n", colored(fmt.Sprintf("cap %.0f", c.Limit), colorYellow), c.Reason)
	}
	if applied > 0 {
		fmt.Fprintln(w)
	}

	// Narrative
	fmt.Fprintln(w, "Strengths:")
	for _, s := range result.Strengths {
		fmt.Fprintf(w, "  %s %s\n", colored("+", colorGreen), s)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Improvements:")
	for _, s := range result.Improvements {
		lines := wrapText(s, 70)
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintf(w, "  • %s\n", line)
				continue
			}
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	fmt.Fprintln(w)

	return nil
}

func (r *TerminalRenderer) RenderValidation(w io.Writer, result validation.Result) error {
	if result.IsValid {
		fmt.Fprintf(w, "%s\n", bold(colored("Looks like a resume", colorGreen)))
	} else {
		fmt.Fprintf(w, "%s\n", bold(colored("Not a resume: "+result.RejectionReason, colorRed)))
	}
	fmt.Fprintf(w, "  Sections:    %s\n", listOrNone(result.DetectedSections))
	fmt.Fprintf(w, "  Identifiers: %s\n", listOrNone(result.DetectedIdentifiers))
	return nil
}

// bindingCaps returns the caps that actually lowered the score.
func bindingCaps(caps []scoring.SoftCap) []scoring.SoftCap {
	var out []scoring.SoftCap
	for _, c := range caps {
		if c.Binding {
			out = append(out, c)
		}
	}
	return out
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return dim("none")
	}
	return strings.Join(items, ", ")
}

func roleLabel(id roles.ID) string {
	if info, ok := roles.Lookup(id); ok {
		return info.Label
	}
	return string(id)
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
