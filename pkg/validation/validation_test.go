package validation_test

import (
	"testing"

	"github.com/resumate/resumate/pkg/validation"
	"github.com/stretchr/testify/assert"
)

const sampleResume = `Priya Sharma
priya.sharma@example.com | +91 98765 43210 | linkedin.com/in/priyasharma

EXPERIENCE
Frontend Intern at Acme Labs, June 2023 - Present

EDUCATION
Bachelor of Technology, Computer Science

SKILLS
React, JavaScript, CSS
`

func TestValidate_AcceptsResume(t *testing.T) {
	res := validation.Validate(sampleResume)

	assert.True(t, res.IsValid)
	assert.Empty(t, res.RejectionReason)
	assert.Contains(t, res.DetectedSections, "Experience")
	assert.Contains(t, res.DetectedSections, "Education")
	assert.Contains(t, res.DetectedSections, "Skills")
	assert.Contains(t, res.DetectedIdentifiers, "Email")
	assert.Contains(t, res.DetectedIdentifiers, "LinkedIn")
	assert.Contains(t, res.DetectedIdentifiers, "Name")
}

func TestValidate_RejectionReasons(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason string
	}{
		{
			name:   "neither",
			text:   "The quick brown fox jumps over the lazy dog on a sunny afternoon.",
			reason: validation.ReasonMissingBoth,
		},
		{
			name:   "sections only",
			text:   "Reach out at someone@example.com about the skills I have.",
			reason: validation.ReasonMissingSections,
		},
		{
			name:   "identifiers only",
			text:   "work experience\nskills\nnothing else here at all",
			reason: validation.ReasonMissingIdentifiers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validation.Validate(tt.text)
			assert.False(t, res.IsValid)
			assert.Equal(t, tt.reason, res.RejectionReason)
		})
	}
}

func TestValidate_ShortNonResume(t *testing.T) {
	// A short paragraph of prose with no headings and no contact details.
	text := "Yesterday our family drove north along the coast to visit an old lighthouse. " +
		"The weather stayed calm and bright while gulls circled above the rocky shore. " +
		"After lunch we walked the long pier, counted fishing boats, and watched the tide " +
		"slowly return before driving home at dusk."

	res := validation.Validate(text)
	assert.False(t, res.IsValid)
	assert.Equal(t, validation.ReasonMissingBoth, res.RejectionReason)
	assert.Empty(t, res.DetectedSections)
	assert.Empty(t, res.DetectedIdentifiers)
}

func TestValidate_Totality(t *testing.T) {
	inputs := []string{
		"",
		"\x00\x01\x02\xff\xfe",
		"   \n\n\t",
		sampleResume,
	}
	for _, in := range inputs {
		res := validation.Validate(in)
		assert.Equal(t, !res.IsValid, res.RejectionReason != "", "input %q", in)
		assert.NotNil(t, res.DetectedSections)
		assert.NotNil(t, res.DetectedIdentifiers)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	assert.Equal(t, validation.Validate(sampleResume), validation.Validate(sampleResume))
}

func TestDetectIdentifiers_NameOnlyNearTop(t *testing.T) {
	text := "line one\nline two\nline three\nline four\nline five\nJohn Smith\n"
	assert.NotContains(t, validation.DetectIdentifiers(text), "Name")

	text = "John Smith\nline two\n"
	assert.Contains(t, validation.DetectIdentifiers(text), "Name")
}

func TestDetectIdentifiers_Profiles(t *testing.T) {
	ids := validation.DetectIdentifiers("see github.com/octocat and LinkedIn.com/in/octo-cat")
	assert.Contains(t, ids, "GitHub")
	assert.Contains(t, ids, "LinkedIn")
}
