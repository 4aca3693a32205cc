package scoring

import (
	"screening-service/internal/pkg/constvars"
)

// orLogicStrategy scores one when any counted answer in the group carries
// option value one, otherwise zero.
type orLogicStrategy struct{}

func (orLogicStrategy) Method() string {
	return constvars.ScoringMethodOrLogic
}

func (orLogicStrategy) Score(answers []Answer, cfg Config) int {
	for _, a := range answers {
		if !scorable(a, cfg) {
			continue
		}
		if a.OptionValue == 1 {
			return 1
		}
	}
	return 0
}
