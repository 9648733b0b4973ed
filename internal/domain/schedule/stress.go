package schedule

import (
	"math"
	"sort"
	"time"
)

// Stress model constants. A raw fixture list is annotated once and the
// derived multipliers are read-only afterwards.
const (
	baseStress            = 1.0
	backToBackStressBonus = 0.35
	threeInFourStressBonus = 0.25
	awayStressBonus       = 0.1
	noRestStressBonus     = 0.1

	// defaultOpeningRest stands in for the unknowable gap before the
	// first game of a supplied window.
	defaultOpeningRest = 2

	threeInFourSpanDays = 3
)

// Annotate sorts games chronologically and derives rest days, back-to-back
// and three-in-four flags and the per-game stress multiplier. The input
// slice is not modified.
func Annotate(games []Game) []Game {
	annotated := make([]Game, len(games))
	copy(annotated, games)
	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].Date.Before(annotated[j].Date)
	})

	for i := range annotated {
		if i == 0 {
			annotated[i].RestDays = defaultOpeningRest
			annotated[i].IsBackToBack = false
		} else {
			nights := nightsBetween(annotated[i-1].Date, annotated[i].Date)
			annotated[i].IsBackToBack = nights == 1
			annotated[i].RestDays = maxInt(0, nights-1)
		}

		// Flagged when this game and its two predecessors all land
		// inside a three-day span.
		annotated[i].IsThreeInFour = i >= 2 &&
			nightsBetween(annotated[i-2].Date, annotated[i].Date) <= threeInFourSpanDays

		annotated[i].StressLevel = stressFor(annotated[i])
	}

	return annotated
}

func stressFor(g Game) float64 {
	stress := baseStress
	if g.IsBackToBack {
		stress += backToBackStressBonus
	}
	if g.IsThreeInFour {
		stress += threeInFourStressBonus
	}
	if g.Location == LocationAway {
		stress += awayStressBonus
	}
	if g.RestDays == 0 && !g.IsBackToBack {
		stress += noRestStressBonus
	}

	return round2(stress)
}

func nightsBetween(earlier, later time.Time) int {
	return int(later.Truncate(24*time.Hour).Sub(earlier.Truncate(24*time.Hour)).Hours() / 24)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
