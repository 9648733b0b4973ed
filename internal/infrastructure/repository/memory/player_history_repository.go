package memory

import (
	"context"
	"sync"

	"github.com/hoopsight/courtload/internal/domain/player"
)

type PlayerHistoryRepository struct {
	mu     sync.RWMutex
	items  map[string]player.History
	orders []string
}

func NewPlayerHistoryRepository(histories []player.History) *PlayerHistoryRepository {
	items := make(map[string]player.History, len(histories))
	orders := make([]string, 0, len(histories))

	for _, h := range histories {
		items[h.Name] = h
		orders = append(orders, h.Name)
	}

	return &PlayerHistoryRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PlayerHistoryRepository) List(_ context.Context) ([]player.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.History, 0, len(r.orders))
	for _, name := range r.orders {
		out = append(out, r.items[name])
	}

	return out, nil
}

func (r *PlayerHistoryRepository) GetByName(_ context.Context, name string) (player.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.items[name]
	if !ok {
		return player.History{}, player.ErrNotFound
	}

	return h, nil
}
