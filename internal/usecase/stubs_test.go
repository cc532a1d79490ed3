package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/domain/player"
	"github.com/peladahub/pelada-league/internal/domain/season"
)

var errStubFailure = errors.New("stub failure")

type stubIDGenerator struct {
	next int
	err  error
}

func (g *stubIDGenerator) NewID() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

type stubSeasonRepository struct {
	items   []season.Season
	listErr error
}

func (r *stubSeasonRepository) List(context.Context) ([]season.Season, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]season.Season(nil), r.items...), nil
}

func (r *stubSeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	for _, item := range r.items {
		if item.ID == seasonID {
			return item, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *stubSeasonRepository) Create(_ context.Context, item season.Season) error {
	r.items = append(r.items, item)
	return nil
}

func (r *stubSeasonRepository) Update(_ context.Context, item season.Season) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("season %s not found", item.ID)
}

func (r *stubSeasonRepository) Delete(_ context.Context, seasonID string) error {
	for i := range r.items {
		if r.items[i].ID == seasonID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("season %s not found", seasonID)
}

type stubPlayerRepository struct {
	items   []player.Player
	listErr error
}

func (r *stubPlayerRepository) List(context.Context) ([]player.Player, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]player.Player(nil), r.items...), nil
}

func (r *stubPlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	for _, item := range r.items {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *stubPlayerRepository) Create(_ context.Context, item player.Player) error {
	r.items = append(r.items, item)
	return nil
}

func (r *stubPlayerRepository) Update(_ context.Context, item player.Player) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("player %s not found", item.ID)
}

func (r *stubPlayerRepository) Delete(_ context.Context, playerID string) error {
	for i := range r.items {
		if r.items[i].ID == playerID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("player %s not found", playerID)
}

type stubPeladaRepository struct {
	items   []pelada.Pelada
	listErr error
}

func (r *stubPeladaRepository) List(context.Context) ([]pelada.Pelada, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]pelada.Pelada(nil), r.items...), nil
}

func (r *stubPeladaRepository) ListBySeason(_ context.Context, seasonID string) ([]pelada.Pelada, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]pelada.Pelada, 0, len(r.items))
	for _, item := range r.items {
		if item.SeasonID == seasonID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubPeladaRepository) GetByID(_ context.Context, peladaID string) (pelada.Pelada, bool, error) {
	for _, item := range r.items {
		if item.ID == peladaID {
			return item, true, nil
		}
	}
	return pelada.Pelada{}, false, nil
}

func (r *stubPeladaRepository) Create(_ context.Context, item pelada.Pelada) error {
	r.items = append(r.items, item)
	return nil
}

func (r *stubPeladaRepository) Update(_ context.Context, item pelada.Pelada) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("pelada %s not found", item.ID)
}

func (r *stubPeladaRepository) Delete(_ context.Context, peladaID string) error {
	for i := range r.items {
		if r.items[i].ID == peladaID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("pelada %s not found", peladaID)
}
