package memory

import (
	"context"
	"sync"

	"github.com/hoopsight/courtload/internal/domain/schedule"
)

type GameRepository struct {
	mu    sync.RWMutex
	games []schedule.Game
}

func NewGameRepository(games []schedule.Game) *GameRepository {
	return &GameRepository{
		games: append([]schedule.Game(nil), games...),
	}
}

func (r *GameRepository) ListGames(_ context.Context) ([]schedule.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Game, len(r.games))
	copy(out, r.games)

	return out, nil
}
