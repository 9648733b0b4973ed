package player

import "testing"

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	severity, err := ParseSeverity("  Chronic ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if severity != SeverityChronic {
		t.Fatalf("unexpected severity: %s", severity)
	}

	if _, err := ParseSeverity("catastrophic"); err == nil {
		t.Fatal("expected error for unknown severity")
	}
}

func TestSeverityWeightsAreOrdinal(t *testing.T) {
	t.Parallel()

	if SeverityMinor.Weight() >= SeverityModerate.Weight() {
		t.Fatal("minor should weigh less than moderate")
	}
	if SeverityModerate.Weight() >= SeverityMajor.Weight() {
		t.Fatal("moderate should weigh less than major")
	}
	if SeverityMajor.Weight() >= SeverityChronic.Weight() {
		t.Fatal("major should weigh less than chronic")
	}
	if Severity("unknown").Weight() != 0 {
		t.Fatal("unknown severity should weigh zero")
	}
}

func TestRegionFromDescription(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want BodyRegion
	}{
		{"Left ankle sprain", RegionFootAnkle},
		{"hamstring strain", RegionUpperLeg},
		{"knee soreness", RegionLowerLeg},
		{"lower back tightness", RegionBack},
		{"shoulder contusion", RegionUpperBody},
		{"illness", RegionUnknown},
		{"", RegionUnknown},
	}
	for _, tc := range cases {
		if got := RegionFromDescription(tc.text); got != tc.want {
			t.Fatalf("RegionFromDescription(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestSeverityScore(t *testing.T) {
	t.Parallel()

	injuries := []InjuryRecord{
		{Year: 2023, Severity: SeverityMinor},
		{Year: 2024, Severity: SeverityChronic},
	}
	if got := SeverityScore(injuries); got != 6 {
		t.Fatalf("unexpected severity score: %d", got)
	}
	if got := SeverityScore(nil); got != 0 {
		t.Fatalf("empty list should score zero, got %d", got)
	}
}
