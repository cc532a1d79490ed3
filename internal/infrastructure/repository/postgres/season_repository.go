package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/peladahub/pelada-league/internal/domain/season"
	qb "github.com/peladahub/pelada-league/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("temporadas").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select temporadas query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select temporadas: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}

	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("temporadas").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get temporada by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get temporada by id: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	query, args, err := qb.InsertInto("temporadas").
		Columns(
			"public_id", "nome",
			"pontos_vitoria", "pontos_empate", "pontos_derrota",
			"penalidade_atraso_tipo1", "penalidade_atraso_tipo2",
			"pontos_cartao_amarelo", "pontos_cartao_azul", "pontos_cartao_vermelho",
			"descartes", "ativa", "created_at",
		).
		Values(
			item.ID, item.Name,
			item.PointsWin, item.PointsDraw, item.PointsLoss,
			item.LatenessPenalty1, item.LatenessPenalty2,
			item.YellowCardPoints, item.BlueCardPoints, item.RedCardPoints,
			item.Discards, item.IsActive, item.CreatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert temporada query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert temporada: %w", err)
	}

	return nil
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) error {
	query, args, err := qb.Update("temporadas").
		Set("nome", item.Name).
		Set("pontos_vitoria", item.PointsWin).
		Set("pontos_empate", item.PointsDraw).
		Set("pontos_derrota", item.PointsLoss).
		Set("penalidade_atraso_tipo1", item.LatenessPenalty1).
		Set("penalidade_atraso_tipo2", item.LatenessPenalty2).
		Set("pontos_cartao_amarelo", item.YellowCardPoints).
		Set("pontos_cartao_azul", item.BlueCardPoints).
		Set("pontos_cartao_vermelho", item.RedCardPoints).
		Set("descartes", item.Discards).
		Set("ativa", item.IsActive).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update temporada query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update temporada: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update temporada: %s not found", item.ID)
	}

	return nil
}

func (r *SeasonRepository) Delete(ctx context.Context, seasonID string) error {
	query, args, err := qb.Update("temporadas").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete temporada query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete temporada: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("delete temporada: %s not found", seasonID)
	}

	return nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:               row.PublicID,
		Name:             row.Name,
		PointsWin:        row.PointsWin,
		PointsDraw:       row.PointsDraw,
		PointsLoss:       row.PointsLoss,
		LatenessPenalty1: row.LatenessPenalty1,
		LatenessPenalty2: row.LatenessPenalty2,
		YellowCardPoints: row.YellowCardPoints,
		BlueCardPoints:   row.BlueCardPoints,
		RedCardPoints:    row.RedCardPoints,
		Discards:         row.Discards,
		IsActive:         row.IsActive,
		CreatedAt:        row.CreatedAt,
	}
}
