package risk

import "github.com/hoopsight/courtload/internal/domain/player"

// Profile is one player's computed risk state. It is derived fresh from the
// history and weights on every read and never mutated in place.
type Profile struct {
	PlayerName          string
	Age                 int
	Position            player.Position
	BaselineRisk        float64
	PredictedRisk       float64
	Classification      Classification
	RecommendedAction   string
	CurrentMinutes      float64
	RecommendedMinutes  float64
	TopFactors          []string
	InjuryCount         int
	InjurySeverityScore int
}

// BuildProfile runs the full per-player pipeline: feature extraction,
// baseline prediction, age adjustment, classification, minutes
// recommendation and factor labeling.
func BuildProfile(h player.History, w ModelWeights, th Thresholds) Profile {
	features := ExtractFeatures(h)
	baseline := Predict(w, features, th)
	adjusted := AgeAdjust(baseline, h.Age, th)
	classification := Classify(adjusted, th)
	currentMinutes := h.CurrentMinutes()

	return Profile{
		PlayerName:          h.Name,
		Age:                 h.Age,
		Position:            h.Position,
		BaselineRisk:        baseline,
		PredictedRisk:       adjusted,
		Classification:      classification,
		RecommendedAction:   RecommendedAction(classification),
		CurrentMinutes:      round2(currentMinutes),
		RecommendedMinutes:  RecommendMinutes(adjusted, currentMinutes, th),
		TopFactors:          TopFactors(w, features, h, th),
		InjuryCount:         len(h.Injuries),
		InjurySeverityScore: player.SeverityScore(h.Injuries),
	}
}
