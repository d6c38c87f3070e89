package scoring

import "math"

// applySoftCaps bounds score when an evidence category is critically weak.
// It returns the bounded score and every cap whose condition held. A cap is
// Binding when its limit is below the uncapped score.
func applySoftCaps(score, core, project float64, w Weights) (float64, []SoftCap) {
	caps := []SoftCap{}
	if project <= w.WeakProjectsMax {
		caps = append(caps, SoftCap{
			Key:    "weak_projects",
			Reason: "Project evidence is minimal",
			Limit:  w.CapWeakProjects,
		})
	}
	if core < w.NoEvidenceCoreBelow && project < w.NoEvidenceProjectBelow {
		caps = append(caps, SoftCap{
			Key:    "no_skill_or_project_evidence",
			Reason: "Neither core skills nor projects are evidenced",
			Limit:  w.CapNoEvidence,
		})
	}
	capped := score
	for i := range caps {
		caps[i].Binding = caps[i].Limit < score
		capped = math.Min(capped, caps[i].Limit)
	}
	return capped, caps
}
