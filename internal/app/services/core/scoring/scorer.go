package scoring

import (
	"screening-service/internal/pkg/constvars"
)

// ScoreGroups runs every group through the strategy its owning question is
// configured with and returns the per-group scores plus their sum. Groups
// whose key has no spec are scored with the decision-tree fallback and an
// empty config.
func ScoreGroups(groups []Group, specs map[string]GroupSpec) ([]GroupScore, int) {
	scores := make([]GroupScore, 0, len(groups))
	var total int
	for _, g := range groups {
		spec := specs[g.Key]
		if spec.Method == "" {
			spec.Method = constvars.ScoringMethodDecisionTree
		}
		score := ForMethod(spec.Method).Score(g.Answers, spec.Config)
		scores = append(scores, GroupScore{
			GroupKey:   g.Key,
			QuestionID: spec.QuestionID,
			Method:     spec.Method,
			Score:      score,
		})
		total += score
	}
	return scores, total
}

// RiskLevel maps a primary screening total onto the fixed three-tier risk
// scale. The tier boundaries coincide with the follow-up gate on purpose:
// the medium tier is exactly the population the dependent questionnaire is
// meant for.
func RiskLevel(total int) string {
	switch {
	case total < constvars.FollowUpGateMinScore:
		return constvars.RiskLevelLow
	case total > constvars.FollowUpGateMaxScore:
		return constvars.RiskLevelHigh
	default:
		return constvars.RiskLevelMedium
	}
}

// FollowUpEligible reports whether a primary screening total unlocks the
// dependent questionnaire.
func FollowUpEligible(total int) bool {
	return total >= constvars.FollowUpGateMinScore && total <= constvars.FollowUpGateMaxScore
}
