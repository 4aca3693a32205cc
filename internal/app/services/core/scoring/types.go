package scoring

import (
	"screening-service/internal/pkg/constvars"
)

// Answer is a flattened, resolver-approved answer ready for scoring. The
// usecase builds one per retained answer from the question snapshot taken at
// submission time.
type Answer struct {
	AnswerID    string
	QuestionID  string
	GroupKey    string
	OptionValue int
	NestedLevel int
	IsGroupMain bool
}

// Group collects the answers that share one group key, in submission order.
type Group struct {
	Key     string
	Answers []Answer
}

// Config carries the per-question scoring knobs used by the strategies.
// Zero values fall back to each strategy's documented defaults.
type Config struct {
	Threshold           *float64
	AboveThresholdScore *int
	BelowThresholdScore *int
	Weights             map[string]float64
	IncludeMainQuestion bool
	TieBreakHigh        bool
	NonScoringQuestions map[string]bool
}

func (c Config) threshold(def float64) float64 {
	if c.Threshold != nil {
		return *c.Threshold
	}
	return def
}

func (c Config) aboveScore() int {
	if c.AboveThresholdScore != nil {
		return *c.AboveThresholdScore
	}
	return 1
}

func (c Config) belowScore() int {
	if c.BelowThresholdScore != nil {
		return *c.BelowThresholdScore
	}
	return 0
}

func (c Config) weight(questionID string) float64 {
	if c.Weights == nil {
		return 1
	}
	if w, ok := c.Weights[questionID]; ok {
		return w
	}
	return 1
}

func (c Config) isNonScoring(questionID string) bool {
	return c.NonScoringQuestions != nil && c.NonScoringQuestions[questionID]
}

// GroupSpec describes how one group should be scored: the main question that
// owns the group, its scoring method and its config.
type GroupSpec struct {
	QuestionID string
	Method     string
	Config     Config
}

// GroupScore is the outcome of scoring one group.
type GroupScore struct {
	GroupKey   string
	QuestionID string
	Method     string
	Score      int
}

// normalizeLevel maps unset or out-of-range nesting levels onto level one so
// malformed bank data degrades to the main-question level instead of being
// silently invisible to the nested strategy.
func normalizeLevel(level int) int {
	if level < constvars.NestedLevelDirect {
		return constvars.NestedLevelDirect
	}
	return level
}
