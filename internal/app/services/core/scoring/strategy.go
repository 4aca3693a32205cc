package scoring

import (
	"screening-service/internal/pkg/constvars"
)

// Strategy scores one resolved answer group into a single integer.
type Strategy interface {
	Method() string
	Score(answers []Answer, cfg Config) int
}

var strategies = map[string]Strategy{
	constvars.ScoringMethodDecisionTree:      decisionTreeStrategy{},
	constvars.ScoringMethodOrLogic:           orLogicStrategy{},
	constvars.ScoringMethodNestedConditional: nestedConditionalStrategy{},
	constvars.ScoringMethodSimpleSum:         simpleSumStrategy{},
	constvars.ScoringMethodAverageScore:      averageScoreStrategy{},
	constvars.ScoringMethodWeightedSum:       weightedSumStrategy{},
}

// ForMethod returns the strategy registered for the given method. Unknown or
// empty methods fall back to decision tree so a mistyped bank entry still
// scores deterministically.
func ForMethod(method string) Strategy {
	if s, ok := strategies[method]; ok {
		return s
	}
	return strategies[constvars.ScoringMethodDecisionTree]
}

// scorable reports whether an answer participates in scoring for strategies
// that honor the include-main-question flag and the non-scoring exclusion
// list.
func scorable(a Answer, cfg Config) bool {
	if a.IsGroupMain && !cfg.IncludeMainQuestion {
		return false
	}
	return !cfg.isNonScoring(a.QuestionID)
}
