package services

import (
	"jadebank/internal/models"

	"github.com/shopspring/decimal"
)

// noopFraudScorer is the default scorer: nothing is flagged. Real scoring
// plugs in behind FraudScorerInterface without touching the engine.
type noopFraudScorer struct{}

// NewNoopFraudScorer creates a scorer that marks every transaction clean
func NewNoopFraudScorer() FraudScorerInterface {
	return &noopFraudScorer{}
}

func (s *noopFraudScorer) Score(transaction *models.Transaction) (decimal.Decimal, bool, string) {
	return decimal.Zero, false, ""
}

// thresholdFraudScorer flags transactions at or above a fixed amount.
// Useful as a demo policy and in tests.
type thresholdFraudScorer struct {
	threshold decimal.Decimal
}

// NewThresholdFraudScorer creates a scorer that flags amounts >= threshold
func NewThresholdFraudScorer(threshold decimal.Decimal) FraudScorerInterface {
	return &thresholdFraudScorer{threshold: threshold}
}

func (s *thresholdFraudScorer) Score(transaction *models.Transaction) (decimal.Decimal, bool, string) {
	if transaction.Amount.GreaterThanOrEqual(s.threshold) {
		return decimal.NewFromInt(100), true, "amount at or above review threshold"
	}
	return decimal.Zero, false, ""
}
