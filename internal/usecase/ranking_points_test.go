package usecase

import (
	"testing"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
)

func TestMatchOutcome(t *testing.T) {
	rules := houseRules()

	tests := []struct {
		name       string
		match      pelada.Match
		player     string
		wantPoints float64
		wantWin    bool
	}{
		{
			name: "win on primary score",
			match: pelada.Match{
				TeamA: []string{"p1"}, TeamB: []string{"p2"},
				ScoreA: intp(2), ScoreB: intp(1),
			},
			player:     "p1",
			wantPoints: 3,
			wantWin:    true,
		},
		{
			name: "loss on primary score",
			match: pelada.Match{
				TeamA: []string{"p1"}, TeamB: []string{"p2"},
				ScoreA: intp(2), ScoreB: intp(1),
			},
			player:     "p2",
			wantPoints: 0,
			wantWin:    false,
		},
		{
			name: "draw",
			match: pelada.Match{
				TeamA: []string{"p1"}, TeamB: []string{"p2"},
				ScoreA: intp(1), ScoreB: intp(1),
			},
			player:     "p1",
			wantPoints: 1,
			wantWin:    false,
		},
		{
			name: "legacy score fields decide",
			match: pelada.Match{
				TeamA: []string{"p1"}, TeamB: []string{"p2"},
				LegacyScoreA: intp(0), LegacyScoreB: intp(4),
			},
			player:     "p2",
			wantPoints: 3,
			wantWin:    true,
		},
		{
			name: "absent scores draw at zero",
			match: pelada.Match{
				TeamA: []string{"p1"}, TeamB: []string{"p2"},
			},
			player:     "p1",
			wantPoints: 1,
			wantWin:    false,
		},
		{
			name: "player on neither roster",
			match: pelada.Match{
				TeamA: []string{"p1"}, TeamB: []string{"p2"},
				ScoreA: intp(5), ScoreB: intp(0),
			},
			player:     "p9",
			wantPoints: 0,
			wantWin:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			points, isWin := matchOutcome(tc.match, tc.player, rules)
			if points != tc.wantPoints || isWin != tc.wantWin {
				t.Fatalf("matchOutcome = (%v, %v), want (%v, %v)", points, isWin, tc.wantPoints, tc.wantWin)
			}
		})
	}
}

func TestTallyEvents(t *testing.T) {
	rules := houseRules()

	events := []pelada.Event{
		{Type: pelada.EventGoal, PlayerID: "p1", AssistedBy: "p2"},
		{Type: pelada.EventGoal, PlayerID: "p1"},
		{Type: pelada.EventYellowCard, PlayerID: "p1"},
		{Type: pelada.EventBlueCard, PlayerID: "p2"},
		{Type: pelada.EventRedCard, PlayerID: "p2"},
		{Type: "lesao", PlayerID: "p1"}, // unknown type is ignored
	}

	scorer := tallyEvents(events, "p1", rules)
	if scorer.Goals != 2 || scorer.Assists != 0 || scorer.Yellow != 1 {
		t.Fatalf("unexpected scorer stats: %+v", scorer)
	}
	if scorer.Penalty != -0.5 {
		t.Fatalf("scorer penalty = %v, want -0.5", scorer.Penalty)
	}

	assistant := tallyEvents(events, "p2", rules)
	if assistant.Assists != 1 || assistant.Blue != 1 || assistant.Red != 1 {
		t.Fatalf("unexpected assistant stats: %+v", assistant)
	}
	if assistant.Penalty != -3 {
		t.Fatalf("assistant penalty = %v, want -3", assistant.Penalty)
	}
}

func TestTallyEvents_SelfAssistCountsBothWays(t *testing.T) {
	rules := houseRules()

	// A sheet anomaly where scorer and assistant are the same player is
	// tallied on both counters rather than silently corrected.
	events := []pelada.Event{
		{Type: pelada.EventGoal, PlayerID: "p1", AssistedBy: "p1"},
	}

	stats := tallyEvents(events, "p1", rules)
	if stats.Goals != 1 || stats.Assists != 1 {
		t.Fatalf("unexpected stats for self-assist: %+v", stats)
	}
}

func TestLatenessPenalty(t *testing.T) {
	rules := houseRules()

	session := pelada.Pelada{
		Presences: []pelada.Presence{
			{PlayerID: "p1", Present: true, Lateness: pelada.LatenessTier1},
			{PlayerID: "p2", Present: true, Lateness: pelada.LatenessTier2},
			{PlayerID: "p3", Present: true},
		},
		// Lateness never comes from the legacy roster or team shapes.
		PresentPlayers: []pelada.PresentPlayer{{PlayerID: "p4", Present: true}},
	}

	if got := latenessPenalty(session, "p1", rules); got != -1 {
		t.Fatalf("tier1 penalty = %v, want -1", got)
	}
	if got := latenessPenalty(session, "p2", rules); got != -2 {
		t.Fatalf("tier2 penalty = %v, want -2", got)
	}
	if got := latenessPenalty(session, "p3", rules); got != 0 {
		t.Fatalf("on-time penalty = %v, want 0", got)
	}
	if got := latenessPenalty(session, "p4", rules); got != 0 {
		t.Fatalf("legacy-only entry penalty = %v, want 0", got)
	}
}

func TestRoundPoints(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{0.449, 0.4},
		{0.45, 0.5},
		{-1.25, -1.3},
		{4, 4},
	}

	for _, tc := range tests {
		if got := roundPoints(tc.in); got != tc.want {
			t.Fatalf("roundPoints(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
