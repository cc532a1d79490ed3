package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/player"
	"github.com/peladahub/pelada-league/internal/platform/id"
)

type PlayerService struct {
	playerRepo player.Repository
	idGen      id.Generator
	now        func() time.Time
}

type PlayerInput struct {
	Name     string
	Category string
	IsActive bool
}

func NewPlayerService(playerRepo player.Repository, idGen id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:        newID,
		Name:      strings.TrimSpace(input.Name),
		Category:  player.Category(strings.TrimSpace(strings.ToLower(input.Category))),
		IsActive:  input.IsActive,
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	current, err := s.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	current.Name = strings.TrimSpace(input.Name)
	current.Category = player.Category(strings.TrimSpace(strings.ToLower(input.Category)))
	current.IsActive = input.IsActive
	if err := current.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, current); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return current, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, playerID); err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, strings.TrimSpace(playerID)); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}
