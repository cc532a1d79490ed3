package cache

import (
	"context"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/domain/player"
	"github.com/peladahub/pelada-league/internal/domain/season"
	basecache "github.com/peladahub/pelada-league/internal/platform/cache"
)

const (
	seasonListKey    = "season:list"
	seasonByIDPrefix = "season:id:"

	playerListKey    = "player:list"
	playerByIDPrefix = "player:id:"

	peladaListKey        = "pelada:list"
	peladaByIDPrefix     = "pelada:id:"
	peladaBySeasonPrefix = "pelada:season:"
)

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	v, err := r.cache.GetOrLoad(ctx, seasonListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]season.Season)
	return append([]season.Season(nil), items...), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, seasonByIDPrefix+seasonID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cachedSeasonByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeasonByID)
	return cached.value, cached.exists, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *SeasonRepository) Delete(ctx context.Context, seasonID string) error {
	if err := r.next.Delete(ctx, seasonID); err != nil {
		return err
	}
	r.invalidate(ctx, seasonID)
	return nil
}

func (r *SeasonRepository) invalidate(ctx context.Context, seasonID string) {
	r.cache.Delete(ctx, seasonListKey)
	r.cache.Delete(ctx, seasonByIDPrefix+seasonID)
}

type cachedSeasonByID struct {
	value  season.Season
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerByIDPrefix+playerID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	if err := r.next.Delete(ctx, playerID); err != nil {
		return err
	}
	r.invalidate(ctx, playerID)
	return nil
}

func (r *PlayerRepository) invalidate(ctx context.Context, playerID string) {
	r.cache.Delete(ctx, playerListKey)
	r.cache.Delete(ctx, playerByIDPrefix+playerID)
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

type PeladaRepository struct {
	next  pelada.Repository
	cache *basecache.Store
}

func NewPeladaRepository(next pelada.Repository, cache *basecache.Store) *PeladaRepository {
	return &PeladaRepository{next: next, cache: cache}
}

func (r *PeladaRepository) List(ctx context.Context) ([]pelada.Pelada, error) {
	v, err := r.cache.GetOrLoad(ctx, peladaListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return clonePeladas(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]pelada.Pelada)
	return clonePeladas(items), nil
}

func (r *PeladaRepository) ListBySeason(ctx context.Context, seasonID string) ([]pelada.Pelada, error) {
	v, err := r.cache.GetOrLoad(ctx, peladaBySeasonPrefix+seasonID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return clonePeladas(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]pelada.Pelada)
	return clonePeladas(items), nil
}

func (r *PeladaRepository) GetByID(ctx context.Context, peladaID string) (pelada.Pelada, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, peladaByIDPrefix+peladaID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, peladaID)
		if err != nil {
			return nil, err
		}
		return cachedPeladaByID{value: clonePelada(item), exists: exists}, nil
	})
	if err != nil {
		return pelada.Pelada{}, false, err
	}

	cached, _ := v.(cachedPeladaByID)
	return clonePelada(cached.value), cached.exists, nil
}

func (r *PeladaRepository) Create(ctx context.Context, item pelada.Pelada) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item)
	return nil
}

func (r *PeladaRepository) Update(ctx context.Context, item pelada.Pelada) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item)
	return nil
}

func (r *PeladaRepository) Delete(ctx context.Context, peladaID string) error {
	if err := r.next.Delete(ctx, peladaID); err != nil {
		return err
	}
	r.cache.Delete(ctx, peladaListKey)
	r.cache.Delete(ctx, peladaByIDPrefix+peladaID)
	// The season is unknown after a delete; drop every per-season listing.
	r.cache.DeletePrefix(ctx, peladaBySeasonPrefix)
	return nil
}

func (r *PeladaRepository) invalidate(ctx context.Context, item pelada.Pelada) {
	r.cache.Delete(ctx, peladaListKey)
	r.cache.Delete(ctx, peladaByIDPrefix+item.ID)
	r.cache.Delete(ctx, peladaBySeasonPrefix+item.SeasonID)
}

type cachedPeladaByID struct {
	value  pelada.Pelada
	exists bool
}

func clonePeladas(items []pelada.Pelada) []pelada.Pelada {
	out := make([]pelada.Pelada, 0, len(items))
	for _, item := range items {
		out = append(out, clonePelada(item))
	}
	return out
}

func clonePelada(item pelada.Pelada) pelada.Pelada {
	out := item
	out.Presences = append([]pelada.Presence(nil), item.Presences...)
	out.PresentPlayers = append([]pelada.PresentPlayer(nil), item.PresentPlayers...)
	out.Teams = make([]pelada.Team, 0, len(item.Teams))
	for _, team := range item.Teams {
		team.PlayerIDs = append([]string(nil), team.PlayerIDs...)
		out.Teams = append(out.Teams, team)
	}
	out.Matches = make([]pelada.Match, 0, len(item.Matches))
	for _, match := range item.Matches {
		match.TeamA = append([]string(nil), match.TeamA...)
		match.TeamB = append([]string(nil), match.TeamB...)
		match.Events = append([]pelada.Event(nil), match.Events...)
		out.Matches = append(out.Matches, match)
	}
	return out
}
