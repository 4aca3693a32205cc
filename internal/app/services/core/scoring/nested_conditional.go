package scoring

import (
	"screening-service/internal/pkg/constvars"
)

// nestedConditionalStrategy scores one only when the group shows a positive
// direct answer and a positive frequency answer. The intermediate level is
// how the frequency question became visible; its value never contributes.
type nestedConditionalStrategy struct{}

func (nestedConditionalStrategy) Method() string {
	return constvars.ScoringMethodNestedConditional
}

func (nestedConditionalStrategy) Score(answers []Answer, cfg Config) int {
	var direct, frequency bool
	for _, a := range answers {
		if cfg.isNonScoring(a.QuestionID) {
			continue
		}
		if a.OptionValue != 1 {
			continue
		}
		switch normalizeLevel(a.NestedLevel) {
		case constvars.NestedLevelDirect:
			direct = true
		case constvars.NestedLevelFrequency:
			frequency = true
		}
	}
	if direct && frequency {
		return 1
	}
	return 0
}
