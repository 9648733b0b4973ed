package risk

import "testing"

func TestClassifyExactBoundaries(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	cases := []struct {
		score float64
		want  Classification
	}{
		{44.99, ClassificationLow},
		{45.00, ClassificationModerate},
		{64.99, ClassificationModerate},
		{65.00, ClassificationHigh},
		{0, ClassificationLow},
		{100, ClassificationHigh},
	}
	for _, tc := range cases {
		if got := Classify(tc.score, th); got != tc.want {
			t.Fatalf("Classify(%.2f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestAgeAdjustSurcharge(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	if got := AgeAdjust(43.86, 35, th); got != 49.86 {
		t.Fatalf("AgeAdjust(43.86, 35) = %.2f, want 49.86", got)
	}
	if got := AgeAdjust(50, 32, th); got != 50 {
		t.Fatalf("age 32 must not be surcharged, got %.2f", got)
	}
	if got := AgeAdjust(50, 25, th); got != 50 {
		t.Fatalf("young player must not be surcharged, got %.2f", got)
	}
	// 65 + (45−32)×2 = 91 stays under the ceiling; push it over.
	if got := AgeAdjust(90, 45, th); got != 100 {
		t.Fatalf("surcharged score must clamp to 100, got %.2f", got)
	}
}

func TestRecommendMinutesStepLadder(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	cases := []struct {
		score   float64
		current float64
		want    float64
	}{
		{54.99, 30, 30.00},
		{55.00, 30, 28.50},
		{65.00, 30, 27.00},
		{75.00, 30, 25.50},
		{85.00, 30, 24.00},
		{100.00, 30, 24.00},
		{10.00, 36.4, 36.40},
	}
	for _, tc := range cases {
		if got := RecommendMinutes(tc.score, tc.current, th); got != tc.want {
			t.Fatalf("RecommendMinutes(%.2f, %.2f) = %.2f, want %.2f", tc.score, tc.current, got, tc.want)
		}
	}
}

func TestRecommendedActionCoversAllBuckets(t *testing.T) {
	t.Parallel()

	seen := map[string]struct{}{}
	for _, c := range []Classification{ClassificationLow, ClassificationModerate, ClassificationHigh} {
		action := RecommendedAction(c)
		if action == "" {
			t.Fatalf("empty action for %s", c)
		}
		seen[action] = struct{}{}
	}
	if len(seen) != 3 {
		t.Fatalf("expected distinct actions per bucket, got %d", len(seen))
	}
	if RecommendedAction(Classification("weird")) == "" {
		t.Fatal("unknown classification needs a fallback action")
	}
}
