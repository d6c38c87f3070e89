package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/resumate/resumate/pkg/roles"
)

// Component is the interface that all scoring components implement.
type Component interface {
	// Key returns the machine-readable component identifier.
	Key() string
	// Name returns the human-readable component name.
	Name() string
	// MaxScore is the most the component can contribute.
	MaxScore() float64
	// Evaluate scores one document. It must not retain doc.
	Evaluate(doc *Document) ComponentScore
}

// Penalty is a deduction rule evaluated after the components.
type Penalty interface {
	Key() string
	Evaluate(doc *Document) PenaltyInfo
}

// Request is one resume to score for one role.
type Request struct {
	ResumeText string     `json:"resume_text"`
	Role       roles.ID   `json:"role"`
	RoleMode   roles.Mode `json:"role_mode"` // empty means the role's natural mode
}

// Engine runs all configured components and penalties against a resume and
// produces an AnalysisResult. An Engine is safe for concurrent use.
type Engine struct {
	weights    Weights
	components []Component
	penalties  []Penalty
	now        func() time.Time
}

// NewEngine creates a scoring engine with the default components and
// penalties built from w.
func NewEngine(w Weights) *Engine {
	return NewEngineWith(w, DefaultComponents(w), DefaultPenalties(w))
}

// NewEngineWith creates an engine from explicit components and penalties.
// w still supplies the soft cap thresholds.
func NewEngineWith(w Weights, components []Component, penalties []Penalty) *Engine {
	return &Engine{
		weights:    w,
		components: components,
		penalties:  penalties,
		now:        time.Now,
	}
}

// WithClock returns a copy of e that stamps results using now.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	cp := *e
	cp.now = now
	return &cp
}

// Weights returns the weights the engine was built with.
func (e *Engine) Weights() Weights { return e.weights }

var defaultEngine = NewEngine(Defaults())

// Analyze scores req with the default engine.
func Analyze(req Request) (*AnalysisResult, error) {
	return defaultEngine.Analyze(req)
}

// Analyze evaluates all components and penalties and produces a complete
// AnalysisResult. The only error is an unknown role or mode; any text,
// including the empty string, yields a result.
func (e *Engine) Analyze(req Request) (*AnalysisResult, error) {
	reqs, ok := roles.For(req.Role)
	if !ok {
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}
	mode, err := roles.ParseMode(string(req.RoleMode), req.Role)
	if err != nil {
		return nil, err
	}

	doc := NewDocument(req.ResumeText, req.Role, mode, reqs)

	result := &AnalysisResult{
		Penalties: []PenaltyInfo{},
		Metadata: Metadata{
			Role:       req.Role,
			RoleMode:   mode,
			AnalyzedAt: e.now().UTC(),
			Confidence: ConfidenceFor(doc.Words, mode),
			WordCount:  doc.Words,
		},
	}

	// Components
	scores := make(map[string]ComponentScore, len(e.components))
	for _, c := range e.components {
		cs := c.Evaluate(doc)
		if cs.Evidence == nil {
			cs.Evidence = []EvidenceItem{}
		}
		result.Breakdown = append(result.Breakdown, cs)
		scores[cs.Key] = cs
		result.RawScore += cs.Score
	}

	// Penalties are additive
	for _, p := range e.penalties {
		pi := p.Evaluate(doc)
		result.Penalties = append(result.Penalties, pi)
		if pi.Applied {
			result.TotalPenalty += pi.Deduction
		}
	}

	core := scores[KeyCoreSkills].Score
	project := scores[KeyProjectQuality].Score
	final, caps := applySoftCaps(result.RawScore-result.TotalPenalty, core, project, e.weights)
	result.SoftCaps = caps

	result.OverallScore = int(clamp(math.Round(final), 0, 100))
	result.Rating = RatingFromScore(result.OverallScore)

	result.SkillMatchPercent = percent(core, MaxCoreSkills)
	result.ProjectRelevancePercent = percent(project, MaxProjectQuality)
	result.ResumeDepthPercent = percent(
		scores[KeyExperienceDepth].Score+scores[KeyResumeStructure].Score,
		MaxExperienceDepth+MaxResumeStructure,
	)

	result.Strengths = generateStrengths(doc, scores)
	result.Improvements = generateImprovements(doc, scores)

	return result, nil
}

func percent(score, maxScore float64) int {
	return int(math.Round(score / maxScore * 100))
}
