package scoring

// Every rule reports the same Reason whether or not it fired, so the list
// of checks reads the same for every resume. Applied carries the outcome.
const (
	ReasonNoEvidence = "Required skills listed without project evidence"
	ReasonStuffing   = "Required skills repeated unnaturally often (keyword stuffing)"
	ReasonLength     = "Resume too short to show depth"
)

// NoEvidencePenalty fires when several mandatory skills are listed but no
// project indicator appears anywhere in the document.
type NoEvidencePenalty struct {
	MinSkills int
	Deduction float64
}

func (p *NoEvidencePenalty) Key() string { return "skills_without_evidence" }

func (p *NoEvidencePenalty) Evaluate(doc *Document) PenaltyInfo {
	info := PenaltyInfo{Key: p.Key(), Reason: ReasonNoEvidence}
	if len(doc.MandatoryPresent()) >= p.MinSkills && doc.IndicatorOccurrences() == 0 {
		info.Applied = true
		info.Deduction = p.Deduction
	}
	return info
}

// StuffingPenalty fires when mandatory skill mentions make up an unnatural
// share of the document's words.
type StuffingPenalty struct {
	HighRatio     float64
	HighDeduction float64
	LowRatio      float64
	LowDeduction  float64
}

func (p *StuffingPenalty) Key() string { return "keyword_stuffing" }

func (p *StuffingPenalty) Evaluate(doc *Document) PenaltyInfo {
	info := PenaltyInfo{Key: p.Key(), Reason: ReasonStuffing}
	switch ratio := StuffingRatio(doc); {
	case ratio > p.HighRatio:
		info.Applied = true
		info.Deduction = p.HighDeduction
	case ratio > p.LowRatio:
		info.Applied = true
		info.Deduction = p.LowDeduction
	}
	return info
}

// StuffingRatio is mandatory skill mentions divided by word count, or zero
// for an empty document.
func StuffingRatio(doc *Document) float64 {
	if doc.Words == 0 {
		return 0
	}
	return float64(doc.MandatoryMentions()) / float64(doc.Words)
}

// LengthPenalty fires on documents too short to show real depth.
type LengthPenalty struct {
	VeryShortWords     int
	VeryShortDeduction float64
	ShortWords         int
	ShortDeduction     float64
}

func (p *LengthPenalty) Key() string { return "length" }

func (p *LengthPenalty) Evaluate(doc *Document) PenaltyInfo {
	info := PenaltyInfo{Key: p.Key(), Reason: ReasonLength}
	switch {
	case doc.Words < p.VeryShortWords:
		info.Applied = true
		info.Deduction = p.VeryShortDeduction
	case doc.Words < p.ShortWords:
		info.Applied = true
		info.Deduction = p.ShortDeduction
	}
	return info
}
