package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/season"
)

func validSeasonInput() SeasonInput {
	return SeasonInput{
		Name:             "Temporada 2026",
		PointsWin:        3,
		PointsDraw:       1,
		PointsLoss:       0,
		LatenessPenalty1: -1,
		LatenessPenalty2: -2,
		YellowCardPoints: -0.5,
		BlueCardPoints:   -1,
		RedCardPoints:    -2,
		IsActive:         true,
	}
}

func TestSeasonService_CreateAndGet(t *testing.T) {
	repo := &stubSeasonRepository{}
	service := NewSeasonService(repo, &stubIDGenerator{})
	service.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	created, err := service.Create(context.Background(), validSeasonInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create did not assign an id")
	}
	if !created.CreatedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected CreatedAt %v", created.CreatedAt)
	}

	got, err := service.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Name != "Temporada 2026" || got.PointsWin != 3 {
		t.Fatalf("unexpected stored season: %+v", got)
	}
}

func TestSeasonService_CreateRejectsInvalidInput(t *testing.T) {
	service := NewSeasonService(&stubSeasonRepository{}, &stubIDGenerator{})

	input := validSeasonInput()
	input.Name = "   "
	if _, err := service.Create(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Create error = %v, want ErrInvalidInput", err)
	}
}

func TestSeasonService_GetByIDNotFound(t *testing.T) {
	service := NewSeasonService(&stubSeasonRepository{}, &stubIDGenerator{})

	if _, err := service.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID error = %v, want ErrNotFound", err)
	}
	if _, err := service.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("GetByID error = %v, want ErrInvalidInput", err)
	}
}

func TestSeasonService_Update(t *testing.T) {
	repo := &stubSeasonRepository{items: []season.Season{{
		ID:        "t1",
		Name:      "Old",
		PointsWin: 3,
		IsActive:  true,
	}}}
	service := NewSeasonService(repo, &stubIDGenerator{})

	input := validSeasonInput()
	input.Name = "Renamed"
	input.PointsWin = 4

	updated, err := service.Update(context.Background(), "t1", input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Renamed" || updated.PointsWin != 4 {
		t.Fatalf("unexpected updated season: %+v", updated)
	}
	if repo.items[0].Name != "Renamed" {
		t.Fatalf("update did not persist, stored %+v", repo.items[0])
	}
}

func TestSeasonService_Delete(t *testing.T) {
	repo := &stubSeasonRepository{items: []season.Season{{ID: "t1", Name: "Temporada", PointsWin: 3}}}
	service := NewSeasonService(repo, &stubIDGenerator{})

	if err := service.Delete(context.Background(), "t1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("season not removed, %d items remain", len(repo.items))
	}

	if err := service.Delete(context.Background(), "t1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestSeasonService_ListPropagatesRepositoryError(t *testing.T) {
	service := NewSeasonService(&stubSeasonRepository{listErr: errStubFailure}, &stubIDGenerator{})

	if _, err := service.List(context.Background()); !errors.Is(err, errStubFailure) {
		t.Fatalf("List error = %v, want stub failure", err)
	}
}
