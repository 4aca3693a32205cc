package constvars

// Scoring methods a question can be configured with. Unknown or empty values
// fall back to decision tree.
const (
	ScoringMethodDecisionTree      = "decision_tree"
	ScoringMethodOrLogic           = "or_logic"
	ScoringMethodNestedConditional = "nested_conditional"
	ScoringMethodSimpleSum         = "simple_sum"
	ScoringMethodAverageScore      = "average_score"
	ScoringMethodWeightedSum       = "weighted_sum"
)

// Follow-up gate: the dependent questionnaire unlocks only when the latest
// primary screening total lands inside this inclusive range. A business rule,
// deliberately independent of the configurable score bands.
const (
	FollowUpGateMinScore = 3
	FollowUpGateMaxScore = 7
)

// Nested conditional levels. Answers without an explicit level are level 1.
const (
	NestedLevelDirect    = 1
	NestedLevelOnce      = 2
	NestedLevelFrequency = 3
)
