package schedule

import (
	"testing"
	"time"
)

func TestSummarizeCountsAndAverages(t *testing.T) {
	t.Parallel()

	now := day(0).Add(-time.Hour)
	games := Annotate([]Game{
		fixture("g1", day(0), LocationHome),
		fixture("g2", day(1), LocationAway),
		fixture("g3", day(2), LocationAway),
		fixture("g4", day(6), LocationHome),
	})

	summary := Summarize(games, now)
	if summary.TotalGames != 4 {
		t.Fatalf("total games = %d", summary.TotalGames)
	}
	if !summary.HasBackToBack || summary.BackToBackCount != 2 {
		t.Fatalf("back-to-back count = %d, want 2", summary.BackToBackCount)
	}
	if !summary.HasThreeInFour || summary.ThreeInFourCount != 1 {
		t.Fatalf("three-in-four count = %d, want 1", summary.ThreeInFourCount)
	}
	if summary.AwayGameCount != 2 {
		t.Fatalf("away games = %d, want 2", summary.AwayGameCount)
	}
	if summary.LongestAwayStreak != 2 {
		t.Fatalf("away streak = %d, want 2", summary.LongestAwayStreak)
	}
	// Rest days 2,0,0,3 average to 1.25, rounded to 1.
	if summary.AverageRestDays != 1 {
		t.Fatalf("average rest = %d, want 1", summary.AverageRestDays)
	}
	// Stress 1.0, 1.45, 1.7, 1.0 averages to 1.2875, rounded to 1.29.
	if summary.AverageStress != 1.29 {
		t.Fatalf("average stress = %.4f, want 1.29", summary.AverageStress)
	}
}

func TestSummarizeAwayStreakFallsBackToFirstSpan(t *testing.T) {
	t.Parallel()

	// Fixture dates a season in the past: nothing falls in the live
	// seven-day window, so the first seven-day span is used instead.
	now := day(300)
	games := Annotate([]Game{
		fixture("g1", day(0), LocationAway),
		fixture("g2", day(2), LocationAway),
		fixture("g3", day(4), LocationHome),
		fixture("g4", day(30), LocationAway),
	})

	summary := Summarize(games, now)
	if summary.LongestAwayStreak != 2 {
		t.Fatalf("fallback away streak = %d, want 2", summary.LongestAwayStreak)
	}
}

func TestSummarizeEmptySchedule(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil, day(0))
	if summary.TotalGames != 0 || summary.HasBackToBack || summary.AverageStress != 0 {
		t.Fatalf("unexpected empty summary: %+v", summary)
	}
}
