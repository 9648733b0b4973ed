package schedule

import (
	"context"
	"fmt"
	"time"
)

// Location tells whether a game is played at home or on the road.
type Location string

const (
	LocationHome Location = "Home"
	LocationAway Location = "Away"
)

var AllLocations = map[Location]struct{}{
	LocationHome: {},
	LocationAway: {},
}

// Game is one scheduled or played matchup. Rest, back-to-back, three-in-four
// and stress fields are derived by Annotate and are zero-valued on raw
// fixtures.
type Game struct {
	ID       string
	Date     time.Time
	Opponent string
	Location Location
	Result   string

	RestDays      int
	IsBackToBack  bool
	IsThreeInFour bool
	StressLevel   float64
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if g.Opponent == "" {
		return fmt.Errorf("game opponent is required")
	}
	if _, ok := AllLocations[g.Location]; !ok {
		return fmt.Errorf("invalid game location: %s", g.Location)
	}

	return nil
}

// Repository describes schedule persistence needs from use cases.
type Repository interface {
	ListGames(ctx context.Context) ([]Game, error)
}
