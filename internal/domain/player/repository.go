package player

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no history exists for the
// requested player.
var ErrNotFound = errors.New("player history not found")

// Repository describes player-history persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]History, error)
	GetByName(ctx context.Context, name string) (History, error)
}
