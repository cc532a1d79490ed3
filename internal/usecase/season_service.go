package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/season"
	"github.com/peladahub/pelada-league/internal/platform/id"
)

type SeasonService struct {
	seasonRepo season.Repository
	idGen      id.Generator
	now        func() time.Time
}

// SeasonInput carries the editable rule configuration of a season.
type SeasonInput struct {
	Name             string
	PointsWin        float64
	PointsDraw       float64
	PointsLoss       float64
	LatenessPenalty1 float64
	LatenessPenalty2 float64
	YellowCardPoints float64
	BlueCardPoints   float64
	RedCardPoints    float64
	Discards         int
	IsActive         bool
}

func NewSeasonService(seasonRepo season.Repository, idGen id.Generator) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return items, nil
}

func (s *SeasonService) GetByID(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetByID")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	return item, nil
}

func (s *SeasonService) Create(ctx context.Context, input SeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	item := season.Season{
		ID:               newID,
		Name:             strings.TrimSpace(input.Name),
		PointsWin:        input.PointsWin,
		PointsDraw:       input.PointsDraw,
		PointsLoss:       input.PointsLoss,
		LatenessPenalty1: input.LatenessPenalty1,
		LatenessPenalty2: input.LatenessPenalty2,
		YellowCardPoints: input.YellowCardPoints,
		BlueCardPoints:   input.BlueCardPoints,
		RedCardPoints:    input.RedCardPoints,
		Discards:         input.Discards,
		IsActive:         input.IsActive,
		CreatedAt:        s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Create(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	return item, nil
}

func (s *SeasonService) Update(ctx context.Context, seasonID string, input SeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Update")
	defer span.End()

	current, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}

	current.Name = strings.TrimSpace(input.Name)
	current.PointsWin = input.PointsWin
	current.PointsDraw = input.PointsDraw
	current.PointsLoss = input.PointsLoss
	current.LatenessPenalty1 = input.LatenessPenalty1
	current.LatenessPenalty2 = input.LatenessPenalty2
	current.YellowCardPoints = input.YellowCardPoints
	current.BlueCardPoints = input.BlueCardPoints
	current.RedCardPoints = input.RedCardPoints
	current.Discards = input.Discards
	current.IsActive = input.IsActive
	if err := current.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Update(ctx, current); err != nil {
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}

	return current, nil
}

func (s *SeasonService) Delete(ctx context.Context, seasonID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Delete")
	defer span.End()

	if _, err := s.GetByID(ctx, seasonID); err != nil {
		return err
	}

	if err := s.seasonRepo.Delete(ctx, strings.TrimSpace(seasonID)); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}

	return nil
}
