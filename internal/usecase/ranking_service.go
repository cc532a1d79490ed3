package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/domain/player"
	"github.com/peladahub/pelada-league/internal/domain/ranking"
	"github.com/peladahub/pelada-league/internal/domain/season"
)

// RankingScope selects which sessions feed the computation. The zero value
// means "active season, or the first season when none is active".
type RankingScope struct {
	SeasonID   string
	AllSeasons bool
}

// RankingService derives the leaderboard from the current snapshot of
// seasons, players, and sessions. Every call recomputes from scratch; any
// staleness policy belongs to the caller.
type RankingService struct {
	seasonRepo season.Repository
	playerRepo player.Repository
	peladaRepo pelada.Repository
}

func NewRankingService(
	seasonRepo season.Repository,
	playerRepo player.Repository,
	peladaRepo pelada.Repository,
) *RankingService {
	return &RankingService{
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
		peladaRepo: peladaRepo,
	}
}

// Compute builds one ranked row per player with at least one presence in the
// scoped session set, sorted by points descending. A missing season yields an
// empty slice, not an error.
func (s *RankingService) Compute(ctx context.Context, scope RankingScope) ([]ranking.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Compute")
	defer span.End()

	var (
		seasons  []season.Season
		players  []player.Player
		sessions []pelada.Pelada
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.seasonRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list seasons for ranking: %w", err)
		}
		seasons = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players for ranking: %w", err)
		}
		players = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.peladaRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list peladas for ranking: %w", err)
		}
		sessions = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	target, ok := season.Resolve(seasons, scope.SeasonID)
	if !ok {
		return []ranking.Row{}, nil
	}

	scoped := sessions
	if !scope.AllSeasons {
		scoped = make([]pelada.Pelada, 0, len(sessions))
		for _, session := range sessions {
			if session.SeasonID == target.ID {
				scoped = append(scoped, session)
			}
		}
	}

	rows := make([]ranking.Row, 0, len(players))
	for _, pl := range players {
		row := tallyPlayer(pl, scoped, target)
		if row.Presences == 0 {
			continue
		}
		rows = append(rows, row)
	}

	// Points is the sole sort key; the stable sort keeps roster order for
	// ties, which also makes repeated calls deterministic.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows, nil
}

// WarmAll recomputes the ranking of every season on a bounded worker pool so
// cached read paths are hot after bulk edits. It returns the number of
// seasons refreshed.
func (s *RankingService) WarmAll(ctx context.Context, maxWorkers int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.WarmAll")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list seasons for warmup: %w", err)
	}
	if len(seasons) == 0 {
		return 0, nil
	}

	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > len(seasons) {
		maxWorkers = len(seasons)
	}

	workers, err := ants.NewPool(maxWorkers)
	if err != nil {
		return 0, fmt.Errorf("create warmup worker pool: %w", err)
	}
	defer workers.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		warmed   int
	)

	for _, item := range seasons {
		seasonID := item.ID
		wg.Add(1)
		submitErr := workers.Submit(func() {
			defer wg.Done()
			if _, computeErr := s.Compute(ctx, RankingScope{SeasonID: seasonID}); computeErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("warm ranking season=%s: %w", seasonID, computeErr)
				}
				mu.Unlock()
				return
			}
			mu.Lock()
			warmed++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit warmup task season=%s: %w", seasonID, submitErr)
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return warmed, firstErr
	}
	return warmed, nil
}

// tallyPlayer folds one player's attendance, lateness, match outcomes, and
// match events across the scoped sessions into a single row.
func tallyPlayer(pl player.Player, sessions []pelada.Pelada, rules season.Season) ranking.Row {
	row := ranking.Row{
		PlayerID:   pl.ID,
		PlayerName: pl.Name,
	}

	total := 0.0
	for _, session := range sessions {
		if !pelada.IsPresent(session, pl.ID) {
			continue
		}

		row.Presences++
		total++ // flat attendance point
		total += latenessPenalty(session, pl.ID, rules)

		if entry, found := session.PresenceEntry(pl.ID); found {
			switch entry.Lateness {
			case pelada.LatenessTier1:
				row.LateTier1++
			case pelada.LatenessTier2:
				row.LateTier2++
			}
		}

		for _, match := range session.Matches {
			points, isWin := matchOutcome(match, pl.ID, rules)
			total += points
			if isWin {
				row.Wins++
			}

			stats := tallyEvents(match.Events, pl.ID, rules)
			row.Goals += stats.Goals
			row.Assists += stats.Assists
			row.YellowCards += stats.Yellow
			row.BlueCards += stats.Blue
			row.RedCards += stats.Red
			total += stats.Penalty
		}
	}

	row.Points = roundPoints(total)
	if row.Presences > 0 {
		row.AveragePerPresence = row.Points / float64(row.Presences)
	}

	return row
}

// latenessPenalty reads the representation-#1 entry only; the other
// attendance shapes never carried lateness.
func latenessPenalty(session pelada.Pelada, playerID string, rules season.Season) float64 {
	entry, found := session.PresenceEntry(playerID)
	if !found {
		return 0
	}

	switch entry.Lateness {
	case pelada.LatenessTier1:
		return rules.LatenessPenalty1
	case pelada.LatenessTier2:
		return rules.LatenessPenalty2
	default:
		return 0
	}
}

// matchOutcome scores one match for one player. Players on neither roster
// score nothing; a strictly greater score wins, equal scores draw.
func matchOutcome(match pelada.Match, playerID string, rules season.Season) (float64, bool) {
	side := match.Side(playerID)
	if side == pelada.SideNone {
		return 0, false
	}

	opponent := pelada.SideA
	if side == pelada.SideA {
		opponent = pelada.SideB
	}

	own := match.SideScore(side)
	other := match.SideScore(opponent)
	switch {
	case own > other:
		return rules.PointsWin, true
	case own < other:
		return rules.PointsLoss, false
	default:
		return rules.PointsDraw, false
	}
}

type eventStats struct {
	Goals   int
	Assists int
	Yellow  int
	Blue    int
	Red     int
	Penalty float64
}

// tallyEvents scans one match's event list for a player. The acting-player
// and assist checks are independent per event: an event whose AssistedBy
// equals its acting player counts on both sides, matching how the sheets
// have always been tallied. Unknown event types are ignored.
func tallyEvents(events []pelada.Event, playerID string, rules season.Season) eventStats {
	var stats eventStats
	for _, event := range events {
		if event.PlayerID == playerID {
			switch event.Type {
			case pelada.EventGoal:
				stats.Goals++
			case pelada.EventYellowCard:
				stats.Yellow++
				stats.Penalty += rules.YellowCardPoints
			case pelada.EventBlueCard:
				stats.Blue++
				stats.Penalty += rules.BlueCardPoints
			case pelada.EventRedCard:
				stats.Red++
				stats.Penalty += rules.RedCardPoints
			}
		}

		if event.AssistedBy != "" && event.AssistedBy == playerID {
			stats.Assists++
		}
	}

	return stats
}

func roundPoints(value float64) float64 {
	return math.Round(value*10) / 10
}
