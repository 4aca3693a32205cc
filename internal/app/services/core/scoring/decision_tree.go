package scoring

import (
	"screening-service/internal/pkg/constvars"
)

// decisionTreeStrategy scores a group by majority vote over its answers'
// option values. Only values zero and one are counted; anything else is
// ignored. A tie resolves to zero unless the question opts into the high
// tie-break.
type decisionTreeStrategy struct{}

func (decisionTreeStrategy) Method() string {
	return constvars.ScoringMethodDecisionTree
}

func (decisionTreeStrategy) Score(answers []Answer, cfg Config) int {
	var zeros, ones int
	for _, a := range answers {
		if !scorable(a, cfg) {
			continue
		}
		switch a.OptionValue {
		case 0:
			zeros++
		case 1:
			ones++
		}
	}

	if ones > zeros {
		return 1
	}
	if zeros > ones {
		return 0
	}
	if ones == 0 {
		return 0
	}
	if cfg.TieBreakHigh {
		return 1
	}
	return 0
}
