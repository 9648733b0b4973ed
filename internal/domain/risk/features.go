package risk

import "github.com/hoopsight/courtload/internal/domain/player"

// Feature names as they appear in the trained weight artifact.
const (
	FeatureMinRolling10 = "MIN_ROLLING_10"
	FeatureContactRate  = "CONTACT_RATE"
	FeatureAge          = "AGE"
	FeatureInjuryCount  = "INJURY_COUNT"
)

// FeatureVector maps feature names to raw (unstandardized) values.
type FeatureVector map[string]float64

// ExtractFeatures derives the model inputs from a player history. It always
// produces a value for every feature: MIN_ROLLING_10 is the current trailing
// 10-game minutes average, falling back to the latest season average when no
// rolling data exists, matching what the model saw at training time.
func ExtractFeatures(h player.History) FeatureVector {
	return FeatureVector{
		FeatureMinRolling10: h.CurrentMinutes(),
		FeatureContactRate:  h.ContactRate,
		FeatureAge:          float64(h.Age),
		FeatureInjuryCount:  float64(len(h.Injuries)),
	}
}
