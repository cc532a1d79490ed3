package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/domain/player"
	"github.com/peladahub/pelada-league/internal/domain/season"
)

func houseRules() season.Season {
	return season.Season{
		ID:               "t1",
		Name:             "Temporada 2025",
		PointsWin:        3,
		PointsDraw:       1,
		PointsLoss:       0,
		LatenessPenalty1: -1,
		LatenessPenalty2: -2,
		YellowCardPoints: -0.5,
		BlueCardPoints:   -1,
		RedCardPoints:    -2,
		IsActive:         true,
		CreatedAt:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func newRankingService(seasons []season.Season, players []player.Player, sessions []pelada.Pelada) *RankingService {
	return NewRankingService(
		&stubSeasonRepository{items: seasons},
		&stubPlayerRepository{items: players},
		&stubPeladaRepository{items: sessions},
	)
}

func intp(v int) *int { return &v }

func TestRankingCompute_WinAndLatenessScenario(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "p1", Name: "Ana", Category: player.CategoryMensalista, IsActive: true},
		{ID: "p2", Name: "Bia", Category: player.CategoryMensalista, IsActive: true},
	}
	sessions := []pelada.Pelada{
		{
			ID:       "s1",
			SeasonID: "t1",
			Date:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{
				{PlayerID: "p1", Present: true},
				{PlayerID: "p2", Present: true, Lateness: pelada.LatenessTier1},
			},
			Matches: []pelada.Match{
				{
					TeamA:  []string{"p1"},
					TeamB:  []string{"p2"},
					ScoreA: intp(2),
					ScoreB: intp(1),
				},
			},
		},
	}

	svc := newRankingService([]season.Season{houseRules()}, players, sessions)
	rows, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	winner := rows[0]
	if winner.PlayerID != "p1" || winner.Points != 4 || winner.Wins != 1 || winner.Presences != 1 {
		t.Fatalf("unexpected winner row: %+v", winner)
	}
	if winner.Position != 1 {
		t.Fatalf("winner position = %d, want 1", winner.Position)
	}

	loser := rows[1]
	if loser.PlayerID != "p2" || loser.Points != 0 || loser.Wins != 0 {
		t.Fatalf("unexpected loser row: %+v", loser)
	}
	if loser.LateTier1 != 1 || loser.LateTier2 != 0 {
		t.Fatalf("unexpected lateness tallies: %+v", loser)
	}
	if loser.Position != 2 {
		t.Fatalf("loser position = %d, want 2", loser.Position)
	}
}

func TestRankingCompute_GoalAndAssistAreIndependent(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "p1", Name: "Ana", Category: player.CategoryMensalista},
		{ID: "p2", Name: "Bia", Category: player.CategoryConvidado},
	}
	sessions := []pelada.Pelada{
		{
			ID:       "s1",
			SeasonID: "t1",
			Date:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{
				{PlayerID: "p1", Present: true},
				{PlayerID: "p2", Present: true},
			},
			Matches: []pelada.Match{
				{
					TeamA:  []string{"p1"},
					TeamB:  []string{"p2"},
					ScoreA: intp(2),
					ScoreB: intp(1),
					Events: []pelada.Event{
						{Type: pelada.EventGoal, PlayerID: "p1", AssistedBy: "p2"},
					},
				},
			},
		},
	}

	svc := newRankingService([]season.Season{houseRules()}, players, sessions)
	rows, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	byID := make(map[string]int, len(rows))
	for i, row := range rows {
		byID[row.PlayerID] = i
	}

	scorer := rows[byID["p1"]]
	if scorer.Goals != 1 || scorer.Assists != 0 {
		t.Fatalf("unexpected scorer tallies: %+v", scorer)
	}

	assistant := rows[byID["p2"]]
	if assistant.Assists != 1 || assistant.Goals != 0 {
		t.Fatalf("unexpected assistant tallies: %+v", assistant)
	}
	if assistant.YellowCards != 0 || assistant.BlueCards != 0 || assistant.RedCards != 0 {
		t.Fatalf("assist must not touch card tallies: %+v", assistant)
	}
}

func TestRankingCompute_YellowCardRounding(t *testing.T) {
	t.Parallel()

	players := []player.Player{{ID: "p1", Name: "Ana", Category: player.CategoryMensalista}}
	sessions := []pelada.Pelada{
		{
			ID:        "s1",
			SeasonID:  "t1",
			Date:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{{PlayerID: "p1", Present: true}},
			Matches: []pelada.Match{
				{
					Events: []pelada.Event{
						{Type: pelada.EventYellowCard, PlayerID: "p1"},
					},
				},
			},
		},
	}

	svc := newRankingService([]season.Season{houseRules()}, players, sessions)
	rows, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.Points != 0.5 {
		t.Fatalf("points = %v, want 0.5", row.Points)
	}
	if row.YellowCards != 1 {
		t.Fatalf("yellow cards = %d, want 1", row.YellowCards)
	}
	if row.AveragePerPresence != row.Points/float64(row.Presences) {
		t.Fatalf("average = %v, want %v", row.AveragePerPresence, row.Points/float64(row.Presences))
	}
}

func TestRankingCompute_ZeroPresencePlayersExcluded(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "p1", Name: "Ana", Category: player.CategoryMensalista},
		{ID: "p2", Name: "Bia", Category: player.CategoryMensalista},
	}
	sessions := []pelada.Pelada{
		{
			ID:        "s1",
			SeasonID:  "t1",
			Date:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{{PlayerID: "p1", Present: true}},
		},
	}

	svc := newRankingService([]season.Season{houseRules()}, players, sessions)
	rows, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].PlayerID != "p1" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestRankingCompute_TeamMembershipCountsAsPresence(t *testing.T) {
	t.Parallel()

	players := []player.Player{{ID: "p1", Name: "Ana", Category: player.CategoryMensalista}}
	sessions := []pelada.Pelada{
		{
			ID:       "s1",
			SeasonID: "t1",
			Date:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			// Representation #1 says absent, but the formed teams include the
			// player; the fallback chain counts them in.
			Presences: []pelada.Presence{{PlayerID: "p1", Present: false}},
			Teams:     []pelada.Team{{Name: "Azul", PlayerIDs: []string{"p1"}}},
		},
	}

	svc := newRankingService([]season.Season{houseRules()}, players, sessions)
	rows, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(rows) != 1 || rows[0].Presences != 1 {
		t.Fatalf("expected one presence via team roster, got %+v", rows)
	}
}

func TestRankingCompute_NoSeasonsYieldsEmpty(t *testing.T) {
	t.Parallel()

	svc := newRankingService(nil, []player.Player{{ID: "p1", Name: "Ana"}}, nil)
	rows, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty ranking, got %+v", rows)
	}
}

func TestRankingCompute_UnknownSeasonYieldsEmpty(t *testing.T) {
	t.Parallel()

	svc := newRankingService([]season.Season{houseRules()}, nil, nil)
	rows, err := svc.Compute(context.Background(), RankingScope{SeasonID: "missing"})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty ranking, got %+v", rows)
	}
}

func TestRankingCompute_SeasonWithoutSessionsYieldsEmpty(t *testing.T) {
	t.Parallel()

	other := houseRules()
	other.ID = "t2"
	other.IsActive = false

	sessions := []pelada.Pelada{
		{
			ID:        "s1",
			SeasonID:  "t1",
			Date:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{{PlayerID: "p1", Present: true}},
		},
	}

	svc := newRankingService(
		[]season.Season{houseRules(), other},
		[]player.Player{{ID: "p1", Name: "Ana"}},
		sessions,
	)
	rows, err := svc.Compute(context.Background(), RankingScope{SeasonID: "t2"})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty ranking for sessionless season, got %+v", rows)
	}
}

func TestRankingCompute_AllSeasonsIgnoresSeasonFilter(t *testing.T) {
	t.Parallel()

	other := houseRules()
	other.ID = "t2"
	other.IsActive = false

	players := []player.Player{{ID: "p1", Name: "Ana", Category: player.CategoryMensalista}}
	sessions := []pelada.Pelada{
		{
			ID:        "s1",
			SeasonID:  "t1",
			Date:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{{PlayerID: "p1", Present: true}},
		},
		{
			ID:        "s2",
			SeasonID:  "t2",
			Date:      time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{{PlayerID: "p1", Present: true}},
		},
	}

	svc := newRankingService([]season.Season{houseRules(), other}, players, sessions)

	scoped, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if scoped[0].Presences != 1 {
		t.Fatalf("season scope presences = %d, want 1", scoped[0].Presences)
	}

	all, err := svc.Compute(context.Background(), RankingScope{AllSeasons: true})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if all[0].Presences != 2 {
		t.Fatalf("all-seasons presences = %d, want 2", all[0].Presences)
	}
}

func TestRankingCompute_SortedAndContiguousPositions(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "p1", Name: "Ana"},
		{ID: "p2", Name: "Bia"},
		{ID: "p3", Name: "Caio"},
	}
	sessions := []pelada.Pelada{
		{
			ID:       "s1",
			SeasonID: "t1",
			Date:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{
				{PlayerID: "p1", Present: true},
				{PlayerID: "p2", Present: true},
				{PlayerID: "p3", Present: true},
			},
			Matches: []pelada.Match{
				{
					TeamA:  []string{"p2", "p3"},
					TeamB:  []string{"p1"},
					ScoreA: intp(3),
					ScoreB: intp(0),
				},
			},
		},
	}

	svc := newRankingService([]season.Season{houseRules()}, players, sessions)
	rows, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	for i := 1; i < len(rows); i++ {
		if rows[i-1].Points < rows[i].Points {
			t.Fatalf("rows not sorted by points: %+v", rows)
		}
	}
	for i, row := range rows {
		if row.Position != i+1 {
			t.Fatalf("position at index %d = %d, want %d", i, row.Position, i+1)
		}
	}
	// Tied winners keep roster order under the stable sort.
	if rows[0].PlayerID != "p2" || rows[1].PlayerID != "p3" {
		t.Fatalf("unexpected tie order: %+v", rows)
	}
}

func TestRankingCompute_Idempotent(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "p1", Name: "Ana"},
		{ID: "p2", Name: "Bia"},
	}
	sessions := []pelada.Pelada{
		{
			ID:       "s1",
			SeasonID: "t1",
			Date:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{
				{PlayerID: "p1", Present: true},
				{PlayerID: "p2", Present: true, Lateness: pelada.LatenessTier2},
			},
			Matches: []pelada.Match{
				{
					TeamA:        []string{"p1"},
					TeamB:        []string{"p2"},
					LegacyScoreA: intp(1),
					LegacyScoreB: intp(1),
					Events: []pelada.Event{
						{Type: pelada.EventGoal, PlayerID: "p1", AssistedBy: "p2"},
						{Type: pelada.EventBlueCard, PlayerID: "p2"},
					},
				},
			},
		},
	}

	svc := newRankingService([]season.Season{houseRules()}, players, sessions)

	first, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("first Compute error: %v", err)
	}
	second, err := svc.Compute(context.Background(), RankingScope{})
	if err != nil {
		t.Fatalf("second Compute error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ranking not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestRankingCompute_RepositoryErrorPropagates(t *testing.T) {
	t.Parallel()

	svc := NewRankingService(
		&stubSeasonRepository{listErr: errStubFailure},
		&stubPlayerRepository{},
		&stubPeladaRepository{},
	)

	_, err := svc.Compute(context.Background(), RankingScope{})
	if !errors.Is(err, errStubFailure) {
		t.Fatalf("expected stub failure, got %v", err)
	}
}

func TestRankingWarmAll(t *testing.T) {
	t.Parallel()

	other := houseRules()
	other.ID = "t2"
	other.IsActive = false

	svc := newRankingService([]season.Season{houseRules(), other}, nil, nil)

	warmed, err := svc.WarmAll(context.Background(), 4)
	if err != nil {
		t.Fatalf("WarmAll error: %v", err)
	}
	if warmed != 2 {
		t.Fatalf("warmed = %d, want 2", warmed)
	}
}
