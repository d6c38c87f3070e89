// Package validation decides whether a piece of extracted text is a resume
// at all, before any role scoring happens.
//
// A document is accepted when it shows at least two standard resume
// sections and at least one contact identifier.
package validation

import (
	"regexp"
	"strings"
)

const (
	// MinSections is the number of distinct sections a resume must show.
	MinSections = 2
	// MinIdentifiers is the number of contact identifiers a resume must show.
	MinIdentifiers = 1

	// nameLines bounds the proper-name heuristic to the top of the document.
	nameLines = 5
)

// Rejection reasons. Exactly one is reported for an invalid document.
const (
	ReasonMissingBoth        = "Missing resume sections and contact information"
	ReasonMissingSections    = "Missing standard resume sections (need at least 2: Experience, Education, Skills, Projects, or Certifications)"
	ReasonMissingIdentifiers = "Missing contact information (email, phone, LinkedIn, GitHub, or name)"
)

// Result is the outcome of validating one document.
type Result struct {
	IsValid             bool     `json:"is_valid"`
	RejectionReason     string   `json:"rejection_reason,omitempty"`
	DetectedSections    []string `json:"detected_sections"`
	DetectedIdentifiers []string `json:"detected_identifiers"`
}

type pattern struct {
	label string
	re    *regexp.Regexp
}

var sectionPatterns = []pattern{
	{"Experience", regexp.MustCompile(`(?i)\b(experience|work\s*experience|employment|work\s*history|professional\s*experience|internship|career\s*history)\b`)},
	{"Education", regexp.MustCompile(`(?i)\b(education|academic|qualification|university|college|degree|bachelor|master|b\.?tech|b\.?e\.?|m\.?tech|m\.?e\.?|b\.?sc|m\.?sc|b\.?a\.?|m\.?a\.?|ph\.?d|diploma|schooling|12th|10th|hsc|ssc)\b`)},
	{"Skills", regexp.MustCompile(`(?i)\b(skills|technical\s*skills|core\s*competencies|technologies|proficiencies|expertise|competencies|tools|programming\s*languages)\b`)},
	{"Projects", regexp.MustCompile(`(?i)\b(projects|personal\s*projects|academic\s*projects|key\s*projects|portfolio)\b`)},
	{"Certifications", regexp.MustCompile(`(?i)\b(certifications?|certificates?|licensed?|accreditations?|credentials?|professional\s*development)\b`)},
}

var identifierPatterns = []pattern{
	{"Email", regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)},
	{"Phone", regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)},
	{"LinkedIn", regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9_-]+`)},
	{"GitHub", regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9_-]+`)},
}

var nameRe = regexp.MustCompile(`(?m)^[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)+[ \t]*$`)

// Validate classifies text. It never fails: empty or garbage input yields
// an invalid Result with a reason.
func Validate(text string) Result {
	res := Result{
		DetectedSections:    DetectSections(text),
		DetectedIdentifiers: DetectIdentifiers(text),
	}

	okSections := len(res.DetectedSections) >= MinSections
	okIdentifiers := len(res.DetectedIdentifiers) >= MinIdentifiers

	switch {
	case !okSections && !okIdentifiers:
		res.RejectionReason = ReasonMissingBoth
	case !okSections:
		res.RejectionReason = ReasonMissingSections
	case !okIdentifiers:
		res.RejectionReason = ReasonMissingIdentifiers
	default:
		res.IsValid = true
	}
	return res
}

// DetectSections returns the labels of the resume sections present in text,
// in a fixed order.
func DetectSections(text string) []string {
	found := []string{}
	for _, p := range sectionPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.label)
		}
	}
	return found
}

// DetectIdentifiers returns the labels of the contact identifiers present
// in text, in a fixed order.
func DetectIdentifiers(text string) []string {
	found := []string{}
	for _, p := range identifierPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.label)
		}
	}
	if nameRe.MatchString(headLines(text, nameLines)) {
		found = append(found, "Name")
	}
	return found
}

func headLines(text string, n int) string {
	lines := strings.SplitN(text, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	return strings.Join(lines, "\n")
}
