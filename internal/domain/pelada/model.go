package pelada

import (
	"fmt"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/player"
)

// Event types recorded on a match sheet. Blue is a house-rule card.
const (
	EventGoal       = "gol"
	EventYellowCard = "cartao_amarelo"
	EventBlueCard   = "cartao_azul"
	EventRedCard    = "cartao_vermelho"
)

var AllEventTypes = map[string]struct{}{
	EventGoal:       {},
	EventYellowCard: {},
	EventBlueCard:   {},
	EventRedCard:    {},
}

// Lateness tiers recorded on a presence entry.
const (
	LatenessTier1 = "tipo1"
	LatenessTier2 = "tipo2"
)

// Presence is the current per-session attendance entry (representation #1).
type Presence struct {
	PlayerID string
	Present  bool
	Lateness string
}

// PresentPlayer is a legacy attendance entry carrying denormalized copies of
// the player's name and category (representation #2). Old sessions recorded
// attendance this way and were never migrated.
type PresentPlayer struct {
	PlayerID string
	Name     string
	Category player.Category
	Present  bool
}

// Team is one side formed on the day (representation #3 of presence).
type Team struct {
	Name      string
	PlayerIDs []string
}

// Event is one recorded occurrence inside a match. AssistedBy is only
// meaningful for goals and should name a player other than PlayerID; the
// recorder does not enforce that.
type Event struct {
	Type       string
	PlayerID   string
	AssistedBy string
}

// Match is one game played within a session. ScoreA/ScoreB are the primary
// score fields; LegacyScoreA/LegacyScoreB duplicate them under the old field
// names and are still read as a fallback. When both exist they should agree.
type Match struct {
	TeamA        []string
	TeamB        []string
	ScoreA       *int
	ScoreB       *int
	LegacyScoreA *int
	LegacyScoreB *int
	Events       []Event
}

// Sides a player can be resolved to within a match.
const (
	SideNone = iota
	SideA
	SideB
)

// Side reports which roster the player appears on.
func (m Match) Side(playerID string) int {
	for _, id := range m.TeamA {
		if id == playerID {
			return SideA
		}
	}
	for _, id := range m.TeamB {
		if id == playerID {
			return SideB
		}
	}

	return SideNone
}

// SideScore returns the recorded score for one side, preferring the primary
// field and falling back to the legacy one. Absent scores coerce to zero.
func (m Match) SideScore(side int) int {
	var primary, legacy *int
	switch side {
	case SideA:
		primary, legacy = m.ScoreA, m.LegacyScoreA
	case SideB:
		primary, legacy = m.ScoreB, m.LegacyScoreB
	default:
		return 0
	}

	if primary != nil {
		return *primary
	}
	if legacy != nil {
		return *legacy
	}

	return 0
}

// Pelada is one day's pickup session. Attendance may be expressed through any
// of the three representations at once; see IsPresent for precedence.
type Pelada struct {
	ID             string
	SeasonID       string
	Date           time.Time
	Presences      []Presence
	PresentPlayers []PresentPlayer
	Teams          []Team
	Matches        []Match
	CreatedAt      time.Time
}

func (p Pelada) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("pelada id is required")
	}
	if p.SeasonID == "" {
		return fmt.Errorf("pelada season id is required")
	}
	if p.Date.IsZero() {
		return fmt.Errorf("pelada date is required")
	}

	return nil
}

// PresenceEntry looks up the representation-#1 entry for a player.
func (p Pelada) PresenceEntry(playerID string) (Presence, bool) {
	for _, entry := range p.Presences {
		if entry.PlayerID == playerID {
			return entry, true
		}
	}

	return Presence{}, false
}
