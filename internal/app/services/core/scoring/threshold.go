package scoring

import (
	"screening-service/internal/pkg/constvars"
)

// The three threshold strategies share one shape: fold the counted answers
// into a single float, compare it against the configured threshold and emit
// the configured above or below score.

const (
	defaultSumThreshold     = 1.0
	defaultAverageThreshold = 0.5
)

type simpleSumStrategy struct{}

func (simpleSumStrategy) Method() string {
	return constvars.ScoringMethodSimpleSum
}

func (simpleSumStrategy) Score(answers []Answer, cfg Config) int {
	var total float64
	for _, a := range answers {
		if !scorable(a, cfg) {
			continue
		}
		total += float64(a.OptionValue)
	}
	return thresholdScore(total, cfg.threshold(defaultSumThreshold), cfg)
}

type averageScoreStrategy struct{}

func (averageScoreStrategy) Method() string {
	return constvars.ScoringMethodAverageScore
}

func (averageScoreStrategy) Score(answers []Answer, cfg Config) int {
	var total float64
	var counted int
	for _, a := range answers {
		if !scorable(a, cfg) {
			continue
		}
		total += float64(a.OptionValue)
		counted++
	}
	var mean float64
	if counted > 0 {
		mean = total / float64(counted)
	}
	return thresholdScore(mean, cfg.threshold(defaultAverageThreshold), cfg)
}

type weightedSumStrategy struct{}

func (weightedSumStrategy) Method() string {
	return constvars.ScoringMethodWeightedSum
}

func (weightedSumStrategy) Score(answers []Answer, cfg Config) int {
	var total float64
	for _, a := range answers {
		if !scorable(a, cfg) {
			continue
		}
		total += float64(a.OptionValue) * cfg.weight(a.QuestionID)
	}
	return thresholdScore(total, cfg.threshold(defaultSumThreshold), cfg)
}

func thresholdScore(value, threshold float64, cfg Config) int {
	if value >= threshold {
		return cfg.aboveScore()
	}
	return cfg.belowScore()
}
