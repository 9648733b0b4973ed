package risk

import (
	"testing"
	"time"

	"github.com/hoopsight/courtload/internal/domain/schedule"
)

func TestProjectDynamicRiskEmptyScheduleFallback(t *testing.T) {
	t.Parallel()

	points := ProjectDynamicRisk(nil, 60, 30, DefaultThresholds())
	if len(points) != 1 {
		t.Fatalf("expected single fallback point, got %d", len(points))
	}
	p := points[0]
	if p.DynamicRisk != 60.00 || p.BaselineRisk != 60.00 {
		t.Fatalf("fallback point must carry baseline unchanged: %+v", p)
	}
	if p.GameIndex != 1 || p.Minutes != 30 || p.ScheduleStress != 1.0 {
		t.Fatalf("unexpected fallback point: %+v", p)
	}
}

func TestProjectDynamicRiskPerGameBonuses(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	date := time.Date(2026, 2, 1, 19, 0, 0, 0, time.UTC)
	games := []schedule.Game{
		{ID: "g1", Date: date, Opponent: "BOS", Location: schedule.LocationHome, RestDays: 2, StressLevel: 1.0},
		{ID: "g2", Date: date.AddDate(0, 0, 1), Opponent: "NYK", Location: schedule.LocationAway, IsBackToBack: true, StressLevel: 1.45},
	}

	points := ProjectDynamicRisk(games, 40, 32, th)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].DynamicRisk != 40.00 {
		t.Fatalf("quiet game risk = %.2f, want 40.00", points[0].DynamicRisk)
	}
	// (40 + 8 + 2) × 1.45 = 72.5, no fatigue yet.
	if points[1].DynamicRisk != 72.50 {
		t.Fatalf("back-to-back away risk = %.2f, want 72.50", points[1].DynamicRisk)
	}
	// 72.5 × 1.45 / 10 = 10.5125 → 10.51.
	if points[1].GameLoadScore != 10.51 {
		t.Fatalf("game load score = %.2f, want 10.51", points[1].GameLoadScore)
	}
	if points[1].GameIndex != 2 || points[1].Opponent != "NYK" {
		t.Fatalf("passthrough fields missing: %+v", points[1])
	}
}

func TestProjectDynamicRiskIsPathDependent(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	date := time.Date(2026, 2, 1, 19, 0, 0, 0, time.UTC)
	final := schedule.Game{ID: "g2", Date: date.AddDate(0, 0, 3), Opponent: "DEN", Location: schedule.LocationHome, RestDays: 2, StressLevel: 1.0}

	calm := []schedule.Game{
		{ID: "g1", Date: date, Opponent: "MIA", Location: schedule.LocationHome, RestDays: 2, StressLevel: 1.0},
		final,
	}
	stressful := []schedule.Game{
		{ID: "g1", Date: date, Opponent: "MIA", Location: schedule.LocationAway, IsBackToBack: true, StressLevel: 1.45},
		final,
	}

	calmRun := ProjectDynamicRisk(calm, 50, 30, th)
	stressedRun := ProjectDynamicRisk(stressful, 50, 30, th)

	if calmRun[1].DynamicRisk == stressedRun[1].DynamicRisk {
		t.Fatal("identical final games must project differently after a high-stress game")
	}
	// The fatigue term adds exactly 1.5 for the one preceding high-stress game.
	if stressedRun[1].DynamicRisk-calmRun[1].DynamicRisk != th.FatiguePerGame {
		t.Fatalf("fatigue delta = %.2f, want %.2f", stressedRun[1].DynamicRisk-calmRun[1].DynamicRisk, th.FatiguePerGame)
	}
}

func TestProjectDynamicRiskClampsToCeiling(t *testing.T) {
	t.Parallel()

	games := []schedule.Game{{
		ID: "g1", Date: time.Now(), Opponent: "LAC",
		Location: schedule.LocationAway, IsBackToBack: true, IsThreeInFour: true, StressLevel: 1.7,
	}}
	points := ProjectDynamicRisk(games, 95, 30, DefaultThresholds())
	if points[0].DynamicRisk != 100.00 {
		t.Fatalf("risk must clamp to 100, got %.2f", points[0].DynamicRisk)
	}
}
