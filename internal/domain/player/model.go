package player

import "fmt"

// Position represents basketball position categories.
type Position string

const (
	PositionPointGuard    Position = "PG"
	PositionShootingGuard Position = "SG"
	PositionSmallForward  Position = "SF"
	PositionPowerForward  Position = "PF"
	PositionCenter        Position = "C"
)

var AllPositions = map[Position]struct{}{
	PositionPointGuard:    {},
	PositionShootingGuard: {},
	PositionSmallForward:  {},
	PositionPowerForward:  {},
	PositionCenter:        {},
}

// IsFrontcourt reports whether the position plays through the post, where
// drawn contact is systematically undercounted by per-game foul rates.
func (p Position) IsFrontcourt() bool {
	switch p {
	case PositionPowerForward, PositionCenter:
		return true
	case PositionPointGuard, PositionShootingGuard, PositionSmallForward:
		return false
	default:
		return false
	}
}

// SeasonLine holds one per-season stat pair, most recent season last in a
// History's slice.
type SeasonLine struct {
	MinutesPerGame float64
	UsageRate      float64
}

// History is a player's multi-season workload record. Loaded once at process
// start and treated as read-only afterwards.
type History struct {
	Name           string
	Age            int
	Position       Position
	Seasons        []SeasonLine
	FoulsDrawn     float64
	FoulsCommitted float64
	ContactRate    float64
	// RollingMinutes is the trailing 10-game minutes average sequence,
	// most recent entry last. May be empty for players without recent
	// game logs.
	RollingMinutes []float64
	Injuries       []InjuryRecord
}

const maxMinutesPerGame = 48

func (h History) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if h.Age <= 0 {
		return fmt.Errorf("player age must be greater than zero")
	}
	if _, ok := AllPositions[h.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", h.Position)
	}
	for i, season := range h.Seasons {
		if season.MinutesPerGame < 0 || season.MinutesPerGame > maxMinutesPerGame {
			return fmt.Errorf("season %d minutes per game %.2f outside [0,%d]", i+1, season.MinutesPerGame, maxMinutesPerGame)
		}
	}
	for i, injury := range h.Injuries {
		if err := injury.Validate(); err != nil {
			return fmt.Errorf("injury %d: %w", i+1, err)
		}
	}

	return nil
}

// LatestSeasonMinutes returns the most recent season's minutes-per-game, or
// zero when no seasons are recorded. Used as the rolling-minutes fallback.
func (h History) LatestSeasonMinutes() float64 {
	if len(h.Seasons) == 0 {
		return 0
	}
	return h.Seasons[len(h.Seasons)-1].MinutesPerGame
}

// CurrentMinutes is the live workload figure shown alongside recommendations:
// the last rolling average when present, otherwise the latest season average.
func (h History) CurrentMinutes() float64 {
	if len(h.RollingMinutes) > 0 {
		return h.RollingMinutes[len(h.RollingMinutes)-1]
	}
	return h.LatestSeasonMinutes()
}
