package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Score Accumulation
// ==========================

func TestScoreUncertainty(t *testing.T) {
	tests := []struct {
		name               string
		answers            Answers
		expectedScore      int
		expectedConfidence Confidence
	}{
		{
			name:               "empty answers score every key field and the budget",
			answers:            Answers{},
			expectedScore:      16,
			expectedConfidence: ConfidenceLow,
		},
		{
			name:               "complete answers with known budget",
			answers:            completeVitrineAnswers(),
			expectedScore:      0,
			expectedConfidence: ConfidenceHigh,
		},
		{
			name: "unknown budget adds two",
			answers: func() Answers {
				a := completeVitrineAnswers()
				a["budget"] = "je-ne-sais-pas"
				return a
			}(),
			expectedScore:      2,
			expectedConfidence: ConfidenceMedium,
		},
		{
			name: "budget sentinel unknown adds two",
			answers: func() Answers {
				a := completeVitrineAnswers()
				a["budget"] = "unknown"
				return a
			}(),
			expectedScore:      2,
			expectedConfidence: ConfidenceMedium,
		},
		{
			name: "autre in any answer adds two per occurrence",
			answers: func() Answers {
				a := completeVitrineAnswers()
				a["tool-connections"] = "crm,autre"
				return a
			}(),
			expectedScore:      2,
			expectedConfidence: ConfidenceMedium,
		},
		{
			name: "erp connection adds one",
			answers: func() Answers {
				a := completeVitrineAnswers()
				a["tool-connections"] = "notion-erp"
				return a
			}(),
			expectedScore:      1,
			expectedConfidence: ConfidenceHigh,
		},
		{
			name: "erp backed mobile content adds one",
			answers: func() Answers {
				a := completeVitrineAnswers()
				a["mobile-content"] = "si-erp"
				return a
			}(),
			expectedScore:      1,
			expectedConfidence: ConfidenceHigh,
		},
		{
			name: "refonte without constraints answered adds one",
			answers: func() Answers {
				a := completeVitrineAnswers()
				a["type-projet"] = "refonte"
				return a
			}(),
			expectedScore:      1,
			expectedConfidence: ConfidenceHigh,
		},
		{
			name: "refonte with constraints ruled out adds nothing",
			answers: func() Answers {
				a := completeVitrineAnswers()
				a["type-projet"] = "refonte"
				a["refonte-constraints"] = "non"
				return a
			}(),
			expectedScore:      0,
			expectedConfidence: ConfidenceHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreUncertainty(tt.answers)
			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, tt.expectedConfidence, result.Confidence)
		})
	}
}

// ==========================
// Coefficient Buckets
// ==========================

func TestScoreUncertainty_Coefficients(t *testing.T) {
	tests := []struct {
		name       string
		answers    Answers
		minCoef    float64
		maxCoef    float64
		confidence Confidence
	}{
		{
			name:       "high confidence",
			answers:    completeVitrineAnswers(),
			minCoef:    0.97,
			maxCoef:    1.05,
			confidence: ConfidenceHigh,
		},
		{
			name: "medium confidence",
			answers: func() Answers {
				a := completeVitrineAnswers()
				a["budget"] = "je-ne-sais-pas"
				return a
			}(),
			minCoef:    0.94,
			maxCoef:    1.10,
			confidence: ConfidenceMedium,
		},
		{
			name:       "low confidence",
			answers:    Answers{},
			minCoef:    0.90,
			maxCoef:    1.18,
			confidence: ConfidenceLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreUncertainty(tt.answers)
			assert.Equal(t, tt.confidence, result.Confidence)
			assert.InDelta(t, tt.minCoef, result.MinCoef, 0.0001)
			assert.InDelta(t, tt.maxCoef, result.MaxCoef, 0.0001)
		})
	}
}

func TestScoreUncertainty_BucketBoundaries(t *testing.T) {
	// Score 1 stays high, 2 and 3 are medium, 4 drops to low.
	one := completeVitrineAnswers()
	one["tool-connections"] = "notion-erp"
	assert.Equal(t, ConfidenceHigh, ScoreUncertainty(one).Confidence)

	three := completeVitrineAnswers()
	three["budget"] = "je-ne-sais-pas"
	three["mobile-content"] = "si-erp"
	assert.Equal(t, 3, ScoreUncertainty(three).Score)
	assert.Equal(t, ConfidenceMedium, ScoreUncertainty(three).Confidence)

	four := completeVitrineAnswers()
	four["budget"] = "je-ne-sais-pas"
	four["tool-connections"] = "autre"
	assert.Equal(t, 4, ScoreUncertainty(four).Score)
	assert.Equal(t, ConfidenceLow, ScoreUncertainty(four).Confidence)
}
