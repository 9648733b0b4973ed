package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/hoopsight/courtload/internal/domain/player"
)

func TestSeedPlayerHistoriesValidate(t *testing.T) {
	t.Parallel()

	histories := SeedPlayerHistories()
	if len(histories) != 5 {
		t.Fatalf("expected 5 seeded players, got=%d", len(histories))
	}
	for _, h := range histories {
		if err := h.Validate(); err != nil {
			t.Fatalf("seed history %s invalid: %v", h.Name, err)
		}
		for _, injury := range h.Injuries {
			if injury.Region == "" {
				t.Fatalf("seed injury for %s missing derived region", h.Name)
			}
		}
	}
}

func TestSeedGamesValidate(t *testing.T) {
	t.Parallel()

	for _, g := range SeedGames() {
		if err := g.Validate(); err != nil {
			t.Fatalf("seed game %s invalid: %v", g.ID, err)
		}
	}
}

func TestPlayerHistoryRepository(t *testing.T) {
	t.Parallel()

	repo := NewPlayerHistoryRepository(SeedPlayerHistories())

	histories, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(histories) != 5 {
		t.Fatalf("expected 5 histories, got=%d", len(histories))
	}
	if histories[0].Name != "Austin Reaves" {
		t.Fatalf("expected seed order preserved, first=%s", histories[0].Name)
	}

	h, err := repo.GetByName(context.Background(), "LeBron James")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if h.Age != 41 {
		t.Fatalf("unexpected age: %d", h.Age)
	}

	if _, err := repo.GetByName(context.Background(), "Nobody"); !errors.Is(err, player.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}
