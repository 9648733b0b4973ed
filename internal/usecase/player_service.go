package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hoopsight/courtload/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.History, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	histories, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player histories: %w", err)
	}

	return histories, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerName string) (player.History, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return player.History{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	history, err := s.playerRepo.GetByName(ctx, playerName)
	if err != nil {
		if errors.Is(err, player.ErrNotFound) {
			return player.History{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerName)
		}
		return player.History{}, fmt.Errorf("get player history: %w", err)
	}

	return history, nil
}
