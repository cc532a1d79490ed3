package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	qb "github.com/peladahub/pelada-league/internal/platform/querybuilder"
)

type PeladaRepository struct {
	db *sqlx.DB
}

func NewPeladaRepository(db *sqlx.DB) *PeladaRepository {
	return &PeladaRepository{db: db}
}

func (r *PeladaRepository) List(ctx context.Context) ([]pelada.Pelada, error) {
	query, args, err := qb.Select("*").From("peladas").
		Where(qb.IsNull("deleted_at")).
		OrderBy("data", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select peladas query: %w", err)
	}

	return r.selectPeladas(ctx, query, args)
}

func (r *PeladaRepository) ListBySeason(ctx context.Context, seasonID string) ([]pelada.Pelada, error) {
	query, args, err := qb.Select("*").From("peladas").
		Where(
			qb.Eq("temporada_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("data", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select peladas by season query: %w", err)
	}

	return r.selectPeladas(ctx, query, args)
}

func (r *PeladaRepository) selectPeladas(ctx context.Context, query string, args []any) ([]pelada.Pelada, error) {
	var rows []peladaTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select peladas: %w", err)
	}

	out := make([]pelada.Pelada, 0, len(rows))
	for _, row := range rows {
		item, err := peladaFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PeladaRepository) GetByID(ctx context.Context, peladaID string) (pelada.Pelada, bool, error) {
	query, args, err := qb.Select("*").From("peladas").
		Where(
			qb.Eq("public_id", peladaID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return pelada.Pelada{}, false, fmt.Errorf("build get pelada by id query: %w", err)
	}

	var row peladaTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pelada.Pelada{}, false, nil
		}
		return pelada.Pelada{}, false, fmt.Errorf("get pelada by id: %w", err)
	}

	item, err := peladaFromRow(row)
	if err != nil {
		return pelada.Pelada{}, false, err
	}

	return item, true, nil
}

func (r *PeladaRepository) Create(ctx context.Context, item pelada.Pelada) error {
	docs, err := marshalPeladaDocs(item)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("peladas").
		Columns(
			"public_id", "temporada_public_id", "data",
			"presencas", "jogadores_presentes", "times", "partidas",
			"created_at",
		).
		Values(
			item.ID, item.SeasonID, item.Date,
			docs.presences, docs.presentPlayers, docs.teams, docs.matches,
			item.CreatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert pelada query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert pelada: %w", err)
	}

	return nil
}

func (r *PeladaRepository) Update(ctx context.Context, item pelada.Pelada) error {
	docs, err := marshalPeladaDocs(item)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("peladas").
		Set("temporada_public_id", item.SeasonID).
		Set("data", item.Date).
		Set("presencas", docs.presences).
		Set("jogadores_presentes", docs.presentPlayers).
		Set("times", docs.teams).
		Set("partidas", docs.matches).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update pelada query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update pelada: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update pelada: %s not found", item.ID)
	}

	return nil
}

func (r *PeladaRepository) Delete(ctx context.Context, peladaID string) error {
	query, args, err := qb.Update("peladas").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", peladaID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete pelada query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete pelada: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("delete pelada: %s not found", peladaID)
	}

	return nil
}

type peladaDocs struct {
	presences      []byte
	presentPlayers []byte
	teams          []byte
	matches        []byte
}

func marshalPeladaDocs(item pelada.Pelada) (peladaDocs, error) {
	presences, err := sonic.Marshal(presenceDocsFromDomain(item.Presences))
	if err != nil {
		return peladaDocs{}, fmt.Errorf("marshal presencas: %w", err)
	}
	presentPlayers, err := sonic.Marshal(presentPlayerDocsFromDomain(item.PresentPlayers))
	if err != nil {
		return peladaDocs{}, fmt.Errorf("marshal jogadores_presentes: %w", err)
	}
	teams, err := sonic.Marshal(teamDocsFromDomain(item.Teams))
	if err != nil {
		return peladaDocs{}, fmt.Errorf("marshal times: %w", err)
	}
	matches, err := sonic.Marshal(matchDocsFromDomain(item.Matches))
	if err != nil {
		return peladaDocs{}, fmt.Errorf("marshal partidas: %w", err)
	}

	return peladaDocs{
		presences:      presences,
		presentPlayers: presentPlayers,
		teams:          teams,
		matches:        matches,
	}, nil
}

func peladaFromRow(row peladaTableModel) (pelada.Pelada, error) {
	var presences []presenceDoc
	if len(row.Presences) > 0 {
		if err := sonic.Unmarshal(row.Presences, &presences); err != nil {
			return pelada.Pelada{}, fmt.Errorf("unmarshal presencas for %s: %w", row.PublicID, err)
		}
	}
	var presentPlayers []presentPlayerDoc
	if len(row.PresentPlayers) > 0 {
		if err := sonic.Unmarshal(row.PresentPlayers, &presentPlayers); err != nil {
			return pelada.Pelada{}, fmt.Errorf("unmarshal jogadores_presentes for %s: %w", row.PublicID, err)
		}
	}
	var teams []teamDoc
	if len(row.Teams) > 0 {
		if err := sonic.Unmarshal(row.Teams, &teams); err != nil {
			return pelada.Pelada{}, fmt.Errorf("unmarshal times for %s: %w", row.PublicID, err)
		}
	}
	var matches []matchDoc
	if len(row.Matches) > 0 {
		if err := sonic.Unmarshal(row.Matches, &matches); err != nil {
			return pelada.Pelada{}, fmt.Errorf("unmarshal partidas for %s: %w", row.PublicID, err)
		}
	}

	return pelada.Pelada{
		ID:             row.PublicID,
		SeasonID:       row.SeasonID,
		Date:           row.Date,
		Presences:      presencesFromDocs(presences),
		PresentPlayers: presentPlayersFromDocs(presentPlayers),
		Teams:          teamsFromDocs(teams),
		Matches:        matchesFromDocs(matches),
		CreatedAt:      row.CreatedAt,
	}, nil
}
