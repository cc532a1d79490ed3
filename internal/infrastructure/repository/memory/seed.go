package memory

import (
	"time"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/domain/player"
	"github.com/peladahub/pelada-league/internal/domain/season"
)

const SeasonID2026 = "temporada-2026"

func intp(v int) *int { return &v }

// SeedSeasons returns a single active season with the usual house rules.
func SeedSeasons() []season.Season {
	return []season.Season{
		{
			ID:               SeasonID2026,
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
			CreatedAt:        time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "jg-carlos", Name: "Carlos", Category: player.CategoryMensalista, IsActive: true},
		{ID: "jg-rafa", Name: "Rafael", Category: player.CategoryMensalista, IsActive: true},
		{ID: "jg-tiago", Name: "Tiago", Category: player.CategoryMensalista, IsActive: true},
		{ID: "jg-bruno", Name: "Bruno", Category: player.CategoryMensalista, IsActive: true},
		{ID: "jg-edu", Name: "Eduardo", Category: player.CategoryConvidado, IsActive: true},
		{ID: "jg-leo", Name: "Leonardo", Category: player.CategoryConvidado, IsActive: true},
	}
}

func SeedPeladas() []pelada.Pelada {
	return []pelada.Pelada{
		{
			ID:       "pl-2026-01-10",
			SeasonID: SeasonID2026,
			Date:     time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC),
			Presences: []pelada.Presence{
				{PlayerID: "jg-carlos", Present: true},
				{PlayerID: "jg-rafa", Present: true, Lateness: pelada.LatenessTier1},
				{PlayerID: "jg-tiago", Present: true},
				{PlayerID: "jg-bruno", Present: true},
			},
			Matches: []pelada.Match{
				{
					TeamA:  []string{"jg-carlos", "jg-rafa"},
					TeamB:  []string{"jg-tiago", "jg-bruno"},
					ScoreA: intp(3),
					ScoreB: intp(1),
					Events: []pelada.Event{
						{Type: pelada.EventGoal, PlayerID: "jg-carlos", AssistedBy: "jg-rafa"},
						{Type: pelada.EventGoal, PlayerID: "jg-carlos"},
						{Type: pelada.EventGoal, PlayerID: "jg-rafa"},
						{Type: pelada.EventGoal, PlayerID: "jg-tiago"},
						{Type: pelada.EventYellowCard, PlayerID: "jg-bruno"},
					},
				},
			},
			CreatedAt: time.Date(2026, 1, 10, 22, 0, 0, 0, time.UTC),
		},
		{
			ID:       "pl-2026-01-17",
			SeasonID: SeasonID2026,
			Date:     time.Date(2026, 1, 17, 20, 0, 0, 0, time.UTC),
			// Older sheet kept in its original shape: roster list plus team
			// membership, no per-entry attendance records.
			PresentPlayers: []pelada.PresentPlayer{
				{PlayerID: "jg-carlos", Name: "Carlos", Category: player.CategoryMensalista, Present: true},
				{PlayerID: "jg-edu", Name: "Eduardo", Category: player.CategoryConvidado, Present: true},
			},
			Teams: []pelada.Team{
				{Name: "Colete", PlayerIDs: []string{"jg-carlos", "jg-leo"}},
				{Name: "Sem Colete", PlayerIDs: []string{"jg-edu", "jg-tiago"}},
			},
			Matches: []pelada.Match{
				{
					TeamA:        []string{"jg-carlos", "jg-leo"},
					TeamB:        []string{"jg-edu", "jg-tiago"},
					LegacyScoreA: intp(2),
					LegacyScoreB: intp(2),
					Events: []pelada.Event{
						{Type: pelada.EventGoal, PlayerID: "jg-leo"},
						{Type: pelada.EventGoal, PlayerID: "jg-edu"},
					},
				},
			},
			CreatedAt: time.Date(2026, 1, 17, 22, 0, 0, 0, time.UTC),
		},
	}
}
