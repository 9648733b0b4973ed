package memory

import (
	"context"
	"sync"

	"github.com/hoopsight/courtload/internal/domain/vision"
)

type VisionRepository struct {
	mu    sync.RWMutex
	items map[string]vision.CombinedRisk
}

func NewVisionRepository() *VisionRepository {
	return &VisionRepository{
		items: make(map[string]vision.CombinedRisk),
	}
}

func (r *VisionRepository) Upsert(_ context.Context, record vision.CombinedRisk) error {
	if err := record.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.items[record.PlayerName] = record
	r.mu.Unlock()

	return nil
}

func (r *VisionRepository) GetByPlayer(_ context.Context, playerName string) (vision.CombinedRisk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[playerName]
	if !ok {
		return vision.CombinedRisk{}, vision.ErrNotFound
	}

	return record, nil
}
