package schedule

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	return time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func fixture(id string, date time.Time, loc Location) Game {
	return Game{ID: id, Date: date, Opponent: "OPP", Location: loc}
}

func TestAnnotateDerivesRestAndBackToBack(t *testing.T) {
	t.Parallel()

	games := Annotate([]Game{
		fixture("g1", day(0), LocationHome),
		fixture("g2", day(1), LocationHome),
		fixture("g3", day(4), LocationAway),
	})

	if games[0].RestDays != defaultOpeningRest || games[0].IsBackToBack {
		t.Fatalf("unexpected opening game: %+v", games[0])
	}
	if !games[1].IsBackToBack || games[1].RestDays != 0 {
		t.Fatalf("expected back-to-back with zero rest: %+v", games[1])
	}
	if games[2].IsBackToBack || games[2].RestDays != 2 {
		t.Fatalf("expected two rest days: %+v", games[2])
	}
}

func TestAnnotateSortsByDate(t *testing.T) {
	t.Parallel()

	games := Annotate([]Game{
		fixture("late", day(5), LocationHome),
		fixture("early", day(0), LocationHome),
	})
	if games[0].ID != "early" || games[1].ID != "late" {
		t.Fatalf("games not sorted chronologically: %s, %s", games[0].ID, games[1].ID)
	}
}

func TestThreeInFourRequiresTightSpan(t *testing.T) {
	t.Parallel()

	// Three games each three days apart span six days: not a 3-in-4.
	spread := Annotate([]Game{
		fixture("g1", day(0), LocationHome),
		fixture("g2", day(3), LocationHome),
		fixture("g3", day(6), LocationHome),
	})
	if spread[2].IsThreeInFour {
		t.Fatal("six-day span must not flag three-in-four")
	}

	// Three games inside three days do.
	dense := Annotate([]Game{
		fixture("g1", day(0), LocationHome),
		fixture("g2", day(2), LocationHome),
		fixture("g3", day(3), LocationHome),
	})
	if !dense[2].IsThreeInFour {
		t.Fatal("three-day span must flag three-in-four")
	}
}

func TestStressMultiplierComposition(t *testing.T) {
	t.Parallel()

	games := Annotate([]Game{
		fixture("g1", day(0), LocationHome),
		fixture("g2", day(1), LocationAway),
		fixture("g3", day(2), LocationAway),
	})

	if games[0].StressLevel != 1.0 {
		t.Fatalf("rested home game stress = %.2f, want 1.00", games[0].StressLevel)
	}
	// Back-to-back away: 1.0 + 0.35 + 0.1.
	if games[1].StressLevel != 1.45 {
		t.Fatalf("back-to-back away stress = %.2f, want 1.45", games[1].StressLevel)
	}
	// Back-to-back away and third game in three nights.
	if games[2].StressLevel != 1.70 {
		t.Fatalf("dense away stress = %.2f, want 1.70", games[2].StressLevel)
	}
}

func TestSameDayGameGetsNoRestBonusWithoutBackToBack(t *testing.T) {
	t.Parallel()

	games := Annotate([]Game{
		fixture("g1", day(0), LocationHome),
		fixture("g2", day(0).Add(3*time.Hour), LocationHome),
	})
	if games[1].IsBackToBack {
		t.Fatal("same-day game is not a back-to-back")
	}
	if games[1].RestDays != 0 {
		t.Fatalf("same-day rest days = %d, want 0", games[1].RestDays)
	}
	if games[1].StressLevel != 1.10 {
		t.Fatalf("same-day stress = %.2f, want 1.10", games[1].StressLevel)
	}
}

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []Game{
		fixture("g2", day(1), LocationHome),
		fixture("g1", day(0), LocationHome),
	}
	_ = Annotate(input)
	if input[0].ID != "g2" || input[0].StressLevel != 0 {
		t.Fatal("input slice was mutated")
	}
}
