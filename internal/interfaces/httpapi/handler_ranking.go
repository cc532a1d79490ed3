package httpapi

import (
	"net/http"
	"strings"

	"github.com/peladahub/pelada-league/internal/domain/ranking"
	"github.com/peladahub/pelada-league/internal/usecase"
)

type rankingRowDTO struct {
	Position           int     `json:"posicao"`
	PlayerID           string  `json:"jogadorId"`
	PlayerName         string  `json:"nome"`
	Points             float64 `json:"pontos"`
	Wins               int     `json:"vitorias"`
	Presences          int     `json:"presencas"`
	Goals              int     `json:"gols"`
	Assists            int     `json:"assistencias"`
	YellowCards        int     `json:"cartoesAmarelos"`
	BlueCards          int     `json:"cartoesAzuis"`
	RedCards           int     `json:"cartoesVermelhos"`
	LateTier1          int     `json:"atrasosTipo1"`
	LateTier2          int     `json:"atrasosTipo2"`
	AveragePerPresence float64 `json:"mediaPresenca"`
}

func rankingRowToDTO(row ranking.Row) rankingRowDTO {
	return rankingRowDTO{
		Position:           row.Position,
		PlayerID:           row.PlayerID,
		PlayerName:         row.PlayerName,
		Points:             row.Points,
		Wins:               row.Wins,
		Presences:          row.Presences,
		Goals:              row.Goals,
		Assists:            row.Assists,
		YellowCards:        row.YellowCards,
		BlueCards:          row.BlueCards,
		RedCards:           row.RedCards,
		LateTier1:          row.LateTier1,
		LateTier2:          row.LateTier2,
		AveragePerPresence: row.AveragePerPresence,
	}
}

// GetRanking computes the standings for one season, or across all seasons
// when all=true. With no filter the active season is used.
func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRanking")
	defer span.End()

	scope := usecase.RankingScope{
		SeasonID:   strings.TrimSpace(r.URL.Query().Get("temporada")),
		AllSeasons: strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("all")), "true"),
	}

	rows, err := h.rankingService.Compute(ctx, scope)
	if err != nil {
		h.logger.ErrorContext(ctx, "compute ranking failed", "season_id", scope.SeasonID, "all", scope.AllSeasons, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankingRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, rankingRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunRankingRefreshJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRankingRefreshJob")
	defer span.End()

	warmed, err := h.rankingService.WarmAll(ctx, h.warmWorkers)
	if err != nil {
		h.logger.ErrorContext(ctx, "ranking refresh job failed", "warmed", warmed, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"warmed": warmed})
}
