package scoring

import (
	"strings"

	"github.com/resumate/resumate/pkg/roles"
)

// Document is a resume prepared for scoring. Text is the lower-cased copy
// every component matches against.
type Document struct {
	Raw          string
	Text         string
	Words        int
	Role         roles.ID
	Mode         roles.Mode
	Requirements roles.Requirements
}

// NewDocument normalizes raw once for a given role.
func NewDocument(raw string, role roles.ID, mode roles.Mode, req roles.Requirements) *Document {
	return &Document{
		Raw:          raw,
		Text:         strings.ToLower(raw),
		Words:        len(strings.Fields(raw)),
		Role:         role,
		Mode:         mode,
		Requirements: req,
	}
}

// MandatoryPresent returns the mandatory skills that occur in the text,
// in table order.
func (d *Document) MandatoryPresent() []string {
	return d.present(d.Requirements.MandatorySkills)
}

// MandatoryMissing returns the mandatory skills that do not occur in the text.
func (d *Document) MandatoryMissing() []string {
	var out []string
	for _, s := range d.Requirements.MandatorySkills {
		if !strings.Contains(d.Text, s) {
			out = append(out, s)
		}
	}
	return out
}

// OptionalPresent returns the optional skills that occur in the text.
func (d *Document) OptionalPresent() []string {
	return d.present(d.Requirements.OptionalSkills)
}

// MandatoryMentions counts every occurrence of every mandatory skill.
func (d *Document) MandatoryMentions() int {
	return countAll(d.Text, d.Requirements.MandatorySkills)
}

// IndicatorOccurrences counts every occurrence of every project indicator.
func (d *Document) IndicatorOccurrences() int {
	return countAll(d.Text, d.Requirements.ProjectIndicators)
}

func (d *Document) present(terms []string) []string {
	var out []string
	for _, s := range terms {
		if strings.Contains(d.Text, s) {
			out = append(out, s)
		}
	}
	return out
}

func countAll(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		if t == "" {
			continue
		}
		n += strings.Count(text, t)
	}
	return n
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(text, t) {
			return true
		}
	}
	return false
}
