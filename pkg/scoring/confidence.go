package scoring

import "github.com/resumate/resumate/pkg/roles"

const (
	lowConfidenceWords  = 50
	highConfidenceWords = 250
)

// ConfidenceFor grades how far a score can be trusted. Extended roles never
// reach high confidence.
func ConfidenceFor(words int, mode roles.Mode) Confidence {
	switch {
	case words < lowConfidenceWords:
		return ConfidenceLow
	case mode == roles.ModeExtended:
		return ConfidenceMedium
	case words > highConfidenceWords:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}
