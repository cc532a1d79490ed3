package postgres

import (
	"time"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/domain/player"
)

type peladaTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	SeasonID       string     `db:"temporada_public_id"`
	Date           time.Time  `db:"data"`
	Presences      []byte     `db:"presencas"`
	PresentPlayers []byte     `db:"jogadores_presentes"`
	Teams          []byte     `db:"times"`
	Matches        []byte     `db:"partidas"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

// Document shapes stored inside the JSONB columns. Field names keep the
// original sheet vocabulary so old exports remain readable as-is.

type presenceDoc struct {
	PlayerID string `json:"jogadorId"`
	Present  bool   `json:"presente"`
	Lateness string `json:"atraso,omitempty"`
}

type presentPlayerDoc struct {
	PlayerID string `json:"jogadorId"`
	Name     string `json:"nome"`
	Category string `json:"categoria"`
	Present  bool   `json:"presente"`
}

type teamDoc struct {
	Name      string   `json:"nome"`
	PlayerIDs []string `json:"jogadores"`
}

type eventDoc struct {
	Type       string `json:"tipo"`
	PlayerID   string `json:"jogadorId"`
	AssistedBy string `json:"assistidoPor,omitempty"`
}

type matchDoc struct {
	TeamA        []string   `json:"timeA"`
	TeamB        []string   `json:"timeB"`
	ScoreA       *int       `json:"placarA,omitempty"`
	ScoreB       *int       `json:"placarB,omitempty"`
	LegacyScoreA *int       `json:"golsTimeA,omitempty"`
	LegacyScoreB *int       `json:"golsTimeB,omitempty"`
	Events       []eventDoc `json:"eventos,omitempty"`
}

func presenceDocsFromDomain(items []pelada.Presence) []presenceDoc {
	out := make([]presenceDoc, 0, len(items))
	for _, item := range items {
		out = append(out, presenceDoc{
			PlayerID: item.PlayerID,
			Present:  item.Present,
			Lateness: item.Lateness,
		})
	}
	return out
}

func presencesFromDocs(docs []presenceDoc) []pelada.Presence {
	out := make([]pelada.Presence, 0, len(docs))
	for _, doc := range docs {
		out = append(out, pelada.Presence{
			PlayerID: doc.PlayerID,
			Present:  doc.Present,
			Lateness: doc.Lateness,
		})
	}
	return out
}

func presentPlayerDocsFromDomain(items []pelada.PresentPlayer) []presentPlayerDoc {
	out := make([]presentPlayerDoc, 0, len(items))
	for _, item := range items {
		out = append(out, presentPlayerDoc{
			PlayerID: item.PlayerID,
			Name:     item.Name,
			Category: string(item.Category),
			Present:  item.Present,
		})
	}
	return out
}

func presentPlayersFromDocs(docs []presentPlayerDoc) []pelada.PresentPlayer {
	out := make([]pelada.PresentPlayer, 0, len(docs))
	for _, doc := range docs {
		out = append(out, pelada.PresentPlayer{
			PlayerID: doc.PlayerID,
			Name:     doc.Name,
			Category: player.Category(doc.Category),
			Present:  doc.Present,
		})
	}
	return out
}

func teamDocsFromDomain(items []pelada.Team) []teamDoc {
	out := make([]teamDoc, 0, len(items))
	for _, item := range items {
		out = append(out, teamDoc{
			Name:      item.Name,
			PlayerIDs: append([]string(nil), item.PlayerIDs...),
		})
	}
	return out
}

func teamsFromDocs(docs []teamDoc) []pelada.Team {
	out := make([]pelada.Team, 0, len(docs))
	for _, doc := range docs {
		out = append(out, pelada.Team{
			Name:      doc.Name,
			PlayerIDs: append([]string(nil), doc.PlayerIDs...),
		})
	}
	return out
}

func matchDocsFromDomain(items []pelada.Match) []matchDoc {
	out := make([]matchDoc, 0, len(items))
	for _, item := range items {
		events := make([]eventDoc, 0, len(item.Events))
		for _, ev := range item.Events {
			events = append(events, eventDoc{
				Type:       ev.Type,
				PlayerID:   ev.PlayerID,
				AssistedBy: ev.AssistedBy,
			})
		}
		out = append(out, matchDoc{
			TeamA:        append([]string(nil), item.TeamA...),
			TeamB:        append([]string(nil), item.TeamB...),
			ScoreA:       item.ScoreA,
			ScoreB:       item.ScoreB,
			LegacyScoreA: item.LegacyScoreA,
			LegacyScoreB: item.LegacyScoreB,
			Events:       events,
		})
	}
	return out
}

func matchesFromDocs(docs []matchDoc) []pelada.Match {
	out := make([]pelada.Match, 0, len(docs))
	for _, doc := range docs {
		events := make([]pelada.Event, 0, len(doc.Events))
		for _, ev := range doc.Events {
			events = append(events, pelada.Event{
				Type:       ev.Type,
				PlayerID:   ev.PlayerID,
				AssistedBy: ev.AssistedBy,
			})
		}
		out = append(out, pelada.Match{
			TeamA:        append([]string(nil), doc.TeamA...),
			TeamB:        append([]string(nil), doc.TeamB...),
			ScoreA:       doc.ScoreA,
			ScoreB:       doc.ScoreB,
			LegacyScoreA: doc.LegacyScoreA,
			LegacyScoreB: doc.LegacyScoreB,
			Events:       events,
		})
	}
	return out
}
