package risk

import (
	"testing"

	"github.com/hoopsight/courtload/internal/domain/player"
)

func fourFeatureWeights() ModelWeights {
	return ModelWeights{
		Features: []string{FeatureMinRolling10, FeatureContactRate, FeatureAge, FeatureInjuryCount},
		Params: map[string]FeatureParams{
			FeatureMinRolling10: {Coefficient: 1, Mean: 30, Scale: 5},
			FeatureContactRate:  {Coefficient: 1, Mean: 5, Scale: 2},
			FeatureAge:          {Coefficient: 1, Mean: 27, Scale: 4},
			FeatureInjuryCount:  {Coefficient: 1, Mean: 1, Scale: 1},
		},
	}
}

func TestTopFactorsReturnsStrongestThree(t *testing.T) {
	t.Parallel()

	h := player.History{Name: "Wing", Age: 39, Position: player.PositionSmallForward, ContactRate: 9}
	features := FeatureVector{
		FeatureMinRolling10: 30, // standardized 0
		FeatureContactRate:  9,  // standardized 2
		FeatureAge:          39, // standardized 3
		FeatureInjuryCount:  5,  // standardized 4
	}

	labels := TopFactors(fourFeatureWeights(), features, h, DefaultThresholds())
	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d: %v", len(labels), labels)
	}
	if labels[0] != "Prior injury history" {
		t.Fatalf("expected injury history first, got %q", labels[0])
	}
	if labels[1] != "Age-related durability" {
		t.Fatalf("expected age second, got %q", labels[1])
	}
	if labels[2] != "High contact player" {
		t.Fatalf("expected high contact third, got %q", labels[2])
	}
}

func TestContactLabelBanding(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	guard := player.History{Position: player.PositionPointGuard}

	cases := []struct {
		rate float64
		want string
	}{
		{8.0, "High contact player"},
		{7.99, "Moderate contact player"},
		{4.0, "Moderate contact player"},
		{3.99, "Low contact player"},
	}
	for _, tc := range cases {
		if got := contactLabel(tc.rate, guard, th); got != tc.want {
			t.Fatalf("contactLabel(%.2f) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestFrontcourtAlwaysHighContact(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	for _, pos := range []player.Position{player.PositionCenter, player.PositionPowerForward} {
		h := player.History{Position: pos}
		if got := contactLabel(1.0, h, th); got != "High contact player" {
			t.Fatalf("%s with rate 1.0 = %q, want High contact player", pos, got)
		}
	}
}

func TestUnmappedFeaturePassesThroughAsLabel(t *testing.T) {
	t.Parallel()

	weights := ModelWeights{
		Features: []string{"FT_RATE"},
		Params:   map[string]FeatureParams{"FT_RATE": {Coefficient: 1, Mean: 0, Scale: 1}},
	}
	labels := TopFactors(weights, FeatureVector{"FT_RATE": 3}, player.History{Position: player.PositionPointGuard}, DefaultThresholds())
	if len(labels) != 1 || labels[0] != "FT_RATE" {
		t.Fatalf("unexpected labels: %v", labels)
	}
}
