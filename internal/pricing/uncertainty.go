package pricing

import "strings"

// Confidence buckets the uncertainty score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// UncertaintyResult carries the score, its bucket and the widened coefficients.
type UncertaintyResult struct {
	Score      int        `json:"score"`
	Confidence Confidence `json:"confidence"`
	MinCoef    float64    `json:"minCoef"`
	MaxCoef    float64    `json:"maxCoef"`
}

// keyFields are the answers whose absence widens the estimate the most.
var keyFields = []string{
	"type-projet",
	"content-level",
	"content-complexity",
	"design",
	"multi-lang",
	"delai",
	"maintenance",
}

// ScoreUncertainty computes the additive uncertainty score for an answer set.
// Higher scores mean less is known about the project and a wider range.
func ScoreUncertainty(a Answers) UncertaintyResult {
	score := 0

	budget := a.Get("budget")
	if budget == "" || budget == "je-ne-sais-pas" || budget == "unknown" {
		score += 2
	}

	for _, field := range keyFields {
		if !a.Has(field) {
			score += 2
		}
	}

	// "autre" anywhere means a requirement we cannot price from the tables.
	for _, value := range a {
		if strings.Contains(value, "autre") {
			score += 2
		}
	}

	// Redesigns with unstated technical constraints hide migration work.
	if a.Get(fieldTypeProjet) == "refonte" && a.Get("refonte-constraints") != "non" {
		score++
	}

	// ERP couplings are a known source of scope drift.
	if a.Contains("tool-connections", "notion-erp") || a.Get("mobile-content") == "si-erp" {
		score++
	}

	result := UncertaintyResult{Score: score}
	switch {
	case score <= 1:
		result.Confidence = ConfidenceHigh
		result.MinCoef, result.MaxCoef = 0.97, 1.05
	case score <= 3:
		result.Confidence = ConfidenceMedium
		result.MinCoef, result.MaxCoef = 0.94, 1.10
	default:
		result.Confidence = ConfidenceLow
		result.MinCoef, result.MaxCoef = 0.90, 1.18
	}
	return result
}
