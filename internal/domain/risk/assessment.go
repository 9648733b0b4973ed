package risk

// Classification buckets a risk score for display and recommendation.
type Classification string

const (
	ClassificationLow      Classification = "Low"
	ClassificationModerate Classification = "Moderate"
	ClassificationHigh     Classification = "High"
)

func Classify(score float64, th Thresholds) Classification {
	switch {
	case score >= th.HighAtLeast:
		return ClassificationHigh
	case score >= th.ModerateAtLeast:
		return ClassificationModerate
	default:
		return ClassificationLow
	}
}

// RecommendedAction returns the coaching-staff action label for a bucket.
func RecommendedAction(c Classification) string {
	switch c {
	case ClassificationHigh:
		return "Reduce minutes and schedule rest days"
	case ClassificationModerate:
		return "Monitor workload and limit back-to-backs"
	case ClassificationLow:
		return "Maintain current rotation"
	default:
		return "Maintain current rotation"
	}
}

// AgeAdjust applies the veteran surcharge on top of a model score. The
// surcharge is additive rather than folded into the regression so it can be
// audited and tuned independently of the trained weights.
func AgeAdjust(score float64, age int, th Thresholds) float64 {
	if age > th.AgeSurchargeAfter {
		score += float64(age-th.AgeSurchargeAfter) * th.AgeSurchargePerYear
	}
	return round2(clamp(score, 0, th.RiskCeiling))
}

// RecommendMinutes applies the discrete restriction ladder: minutes drop in
// fixed increments at each rung instead of a continuous taper, mirroring how
// staffs actually impose minute restrictions.
func RecommendMinutes(score, currentMinutes float64, th Thresholds) float64 {
	for _, step := range th.MinuteSteps {
		if score >= step.RiskAtLeast {
			return round2(currentMinutes * step.Multiplier)
		}
	}
	return round2(currentMinutes)
}
