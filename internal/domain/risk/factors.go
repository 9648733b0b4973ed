package risk

import "github.com/hoopsight/courtload/internal/domain/player"

const topFactorCount = 3

// TopFactors returns human-readable labels for the strongest model
// contributions, largest first. Unmapped feature names pass through as their
// raw label so a weight file with extra features still renders something.
func TopFactors(w ModelWeights, features FeatureVector, h player.History, th Thresholds) []string {
	contributions := Contributions(w, features)
	if len(contributions) > topFactorCount {
		contributions = contributions[:topFactorCount]
	}

	labels := make([]string, 0, len(contributions))
	for _, c := range contributions {
		labels = append(labels, factorLabel(c.Feature, features, h, th))
	}

	return labels
}

func factorLabel(feature string, features FeatureVector, h player.History, th Thresholds) string {
	switch feature {
	case FeatureMinRolling10:
		return "Heavy recent minutes load"
	case FeatureAge:
		return "Age-related durability"
	case FeatureInjuryCount:
		return "Prior injury history"
	case FeatureContactRate:
		return contactLabel(features[feature], h, th)
	default:
		return feature
	}
}

// contactLabel bands the raw contact rate. Frontcourt players always report
// high contact: post play draws contact the per-game foul proxy undercounts.
func contactLabel(rate float64, h player.History, th Thresholds) string {
	if h.Position.IsFrontcourt() {
		return "High contact player"
	}
	switch {
	case rate >= th.HighContactAtLeast:
		return "High contact player"
	case rate >= th.ModerateContactAtLeast:
		return "Moderate contact player"
	default:
		return "Low contact player"
	}
}
