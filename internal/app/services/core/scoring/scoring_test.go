package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"screening-service/internal/pkg/constvars"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestDecisionTreeStrategy(t *testing.T) {
	s := ForMethod(constvars.ScoringMethodDecisionTree)

	t.Run("majority of ones scores one", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 1},
			{QuestionID: "q3", OptionValue: 0},
		}
		assert.Equal(t, 1, s.Score(answers, Config{}))
	})

	t.Run("majority of zeros scores zero", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 0},
			{QuestionID: "q2", OptionValue: 0},
			{QuestionID: "q3", OptionValue: 1},
		}
		assert.Equal(t, 0, s.Score(answers, Config{}))
	})

	t.Run("tie scores zero by default", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 0},
		}
		assert.Equal(t, 0, s.Score(answers, Config{}))
	})

	t.Run("tie scores one with high tie break", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 0},
		}
		assert.Equal(t, 1, s.Score(answers, Config{TieBreakHigh: true}))
	})

	t.Run("empty group scores zero even with high tie break", func(t *testing.T) {
		assert.Equal(t, 0, s.Score(nil, Config{TieBreakHigh: true}))
	})

	t.Run("values outside zero and one are ignored", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 3},
			{QuestionID: "q2", OptionValue: 1},
		}
		assert.Equal(t, 1, s.Score(answers, Config{}))
	})

	t.Run("score is invariant under answer reordering", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 0},
			{QuestionID: "q3", OptionValue: 1},
			{QuestionID: "q4", OptionValue: 1},
			{QuestionID: "q5", OptionValue: 0},
		}
		want := s.Score(answers, Config{})
		assert.Equal(t, 1, want)

		reversed := make([]Answer, len(answers))
		for i, a := range answers {
			reversed[len(answers)-1-i] = a
		}
		assert.Equal(t, want, s.Score(reversed, Config{}))

		for shift := 1; shift < len(answers); shift++ {
			rotated := append(append([]Answer{}, answers[shift:]...), answers[:shift]...)
			assert.Equal(t, want, s.Score(rotated, Config{}), "shift %d", shift)
		}
	})

	t.Run("main question excluded unless opted in", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "main", OptionValue: 0, IsGroupMain: true},
			{QuestionID: "q1", OptionValue: 1},
		}
		assert.Equal(t, 1, s.Score(answers, Config{}))
		assert.Equal(t, 0, s.Score(answers, Config{IncludeMainQuestion: true}))
	})
}

func TestOrLogicStrategy(t *testing.T) {
	s := ForMethod(constvars.ScoringMethodOrLogic)

	t.Run("any positive answer scores one", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 0},
			{QuestionID: "q2", OptionValue: 0},
			{QuestionID: "q3", OptionValue: 1},
		}
		assert.Equal(t, 1, s.Score(answers, Config{}))
	})

	t.Run("all zero scores zero", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 0},
			{QuestionID: "q2", OptionValue: 0},
		}
		assert.Equal(t, 0, s.Score(answers, Config{}))
	})

	t.Run("non scoring questions are excluded", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "legacy", OptionValue: 1},
			{QuestionID: "q1", OptionValue: 0},
		}
		cfg := Config{NonScoringQuestions: map[string]bool{"legacy": true}}
		assert.Equal(t, 0, s.Score(answers, cfg))
	})
}

func TestNestedConditionalStrategy(t *testing.T) {
	s := ForMethod(constvars.ScoringMethodNestedConditional)

	t.Run("positive direct and frequency scores one", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1, NestedLevel: constvars.NestedLevelDirect},
			{QuestionID: "q2", OptionValue: 1, NestedLevel: constvars.NestedLevelOnce},
			{QuestionID: "q3", OptionValue: 1, NestedLevel: constvars.NestedLevelFrequency},
		}
		assert.Equal(t, 1, s.Score(answers, Config{}))
	})

	t.Run("positive direct without frequency scores zero", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1, NestedLevel: constvars.NestedLevelDirect},
			{QuestionID: "q2", OptionValue: 1, NestedLevel: constvars.NestedLevelOnce},
		}
		assert.Equal(t, 0, s.Score(answers, Config{}))
	})

	t.Run("frequency without positive direct scores zero", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 0, NestedLevel: constvars.NestedLevelDirect},
			{QuestionID: "q3", OptionValue: 1, NestedLevel: constvars.NestedLevelFrequency},
		}
		assert.Equal(t, 0, s.Score(answers, Config{}))
	})

	t.Run("unset level counts as direct", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "main", OptionValue: 1, IsGroupMain: true},
			{QuestionID: "q3", OptionValue: 1, NestedLevel: constvars.NestedLevelFrequency},
		}
		assert.Equal(t, 1, s.Score(answers, Config{}))
	})

	t.Run("intermediate level never contributes", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q2", OptionValue: 1, NestedLevel: constvars.NestedLevelOnce},
		}
		assert.Equal(t, 0, s.Score(answers, Config{}))
	})
}

func TestSimpleSumStrategy(t *testing.T) {
	s := ForMethod(constvars.ScoringMethodSimpleSum)

	t.Run("sum at default threshold scores one", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 0},
		}
		assert.Equal(t, 1, s.Score(answers, Config{}))
	})

	t.Run("sum below threshold scores configured below score", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
		}
		cfg := Config{Threshold: floatPtr(3), BelowThresholdScore: intPtr(-1)}
		assert.Equal(t, -1, s.Score(answers, cfg))
	})

	t.Run("custom above score", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 2},
			{QuestionID: "q2", OptionValue: 2},
		}
		cfg := Config{Threshold: floatPtr(4), AboveThresholdScore: intPtr(2)}
		assert.Equal(t, 2, s.Score(answers, cfg))
	})
}

func TestAverageScoreStrategy(t *testing.T) {
	s := ForMethod(constvars.ScoringMethodAverageScore)

	t.Run("mean at default threshold scores one", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 0},
		}
		assert.Equal(t, 1, s.Score(answers, Config{}))
	})

	t.Run("mean below threshold scores zero", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 0},
			{QuestionID: "q3", OptionValue: 0},
		}
		assert.Equal(t, 0, s.Score(answers, Config{}))
	})

	t.Run("empty group uses mean of zero", func(t *testing.T) {
		assert.Equal(t, 0, s.Score(nil, Config{}))
	})
}

func TestWeightedSumStrategy(t *testing.T) {
	s := ForMethod(constvars.ScoringMethodWeightedSum)

	t.Run("weights multiply option values", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 1},
		}
		cfg := Config{
			Threshold: floatPtr(2.5),
			Weights:   map[string]float64{"q1": 2, "q2": 0.6},
		}
		assert.Equal(t, 1, s.Score(answers, cfg))
	})

	t.Run("missing weight defaults to one", func(t *testing.T) {
		answers := []Answer{
			{QuestionID: "q1", OptionValue: 1},
			{QuestionID: "q2", OptionValue: 1},
		}
		cfg := Config{Threshold: floatPtr(2), Weights: map[string]float64{"q1": 1}}
		assert.Equal(t, 1, s.Score(answers, cfg))
	})
}

func TestForMethodFallback(t *testing.T) {
	t.Run("unknown method falls back to decision tree", func(t *testing.T) {
		assert.Equal(t, constvars.ScoringMethodDecisionTree, ForMethod("made_up").Method())
	})

	t.Run("empty method falls back to decision tree", func(t *testing.T) {
		assert.Equal(t, constvars.ScoringMethodDecisionTree, ForMethod("").Method())
	})
}

func TestGroupAnswers(t *testing.T) {
	t.Run("preserves submission order across and within groups", func(t *testing.T) {
		answers := []Answer{
			{AnswerID: "a1", GroupKey: "2"},
			{AnswerID: "a2", GroupKey: "1"},
			{AnswerID: "a3", GroupKey: "2"},
			{AnswerID: "a4", GroupKey: "1"},
		}
		groups := GroupAnswers(answers)
		assert.Len(t, groups, 2)
		assert.Equal(t, "2", groups[0].Key)
		assert.Equal(t, "a1", groups[0].Answers[0].AnswerID)
		assert.Equal(t, "a3", groups[0].Answers[1].AnswerID)
		assert.Equal(t, "1", groups[1].Key)
		assert.Equal(t, "a2", groups[1].Answers[0].AnswerID)
		assert.Equal(t, "a4", groups[1].Answers[1].AnswerID)
	})

	t.Run("answers without a group key are dropped", func(t *testing.T) {
		answers := []Answer{
			{AnswerID: "a1", GroupKey: ""},
			{AnswerID: "a2", GroupKey: "1"},
		}
		groups := GroupAnswers(answers)
		assert.Len(t, groups, 1)
		assert.Len(t, groups[0].Answers, 1)
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, GroupAnswers(nil))
	})
}

func TestScoreGroups(t *testing.T) {
	t.Run("sums per group scores", func(t *testing.T) {
		groups := []Group{
			{Key: "1", Answers: []Answer{{QuestionID: "q1", OptionValue: 1}}},
			{Key: "2", Answers: []Answer{{QuestionID: "q2", OptionValue: 1}}},
		}
		specs := map[string]GroupSpec{
			"1": {QuestionID: "m1", Method: constvars.ScoringMethodOrLogic},
			"2": {QuestionID: "m2", Method: constvars.ScoringMethodSimpleSum},
		}
		scores, total := ScoreGroups(groups, specs)
		assert.Len(t, scores, 2)
		assert.Equal(t, 2, total)
		assert.Equal(t, "m1", scores[0].QuestionID)
		assert.Equal(t, constvars.ScoringMethodOrLogic, scores[0].Method)
	})

	t.Run("group without spec falls back to decision tree", func(t *testing.T) {
		groups := []Group{
			{Key: "9", Answers: []Answer{{QuestionID: "q1", OptionValue: 1}}},
		}
		scores, total := ScoreGroups(groups, nil)
		assert.Equal(t, constvars.ScoringMethodDecisionTree, scores[0].Method)
		assert.Equal(t, 1, total)
	})
}

func TestRiskLevelAndFollowUpGate(t *testing.T) {
	cases := []struct {
		total    int
		level    string
		eligible bool
	}{
		{0, constvars.RiskLevelLow, false},
		{2, constvars.RiskLevelLow, false},
		{3, constvars.RiskLevelMedium, true},
		{5, constvars.RiskLevelMedium, true},
		{7, constvars.RiskLevelMedium, true},
		{8, constvars.RiskLevelHigh, false},
		{20, constvars.RiskLevelHigh, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.level, RiskLevel(c.total), "total %d", c.total)
		assert.Equal(t, c.eligible, FollowUpEligible(c.total), "total %d", c.total)
	}
}
