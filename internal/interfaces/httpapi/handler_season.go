package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/season"
	"github.com/peladahub/pelada-league/internal/usecase"
)

type seasonDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"nome"`
	PointsWin        float64 `json:"pontosVitoria"`
	PointsDraw       float64 `json:"pontosEmpate"`
	PointsLoss       float64 `json:"pontosDerrota"`
	LatenessPenalty1 float64 `json:"penalidadeAtrasoTipo1"`
	LatenessPenalty2 float64 `json:"penalidadeAtrasoTipo2"`
	YellowCardPoints float64 `json:"pontosCartaoAmarelo"`
	BlueCardPoints   float64 `json:"pontosCartaoAzul"`
	RedCardPoints    float64 `json:"pontosCartaoVermelho"`
	Discards         int     `json:"descartes"`
	IsActive         bool    `json:"ativa"`
	CreatedAt        string  `json:"createdAt"`
}

type seasonRequest struct {
	Name             string  `json:"nome" validate:"required,max=120"`
	PointsWin        float64 `json:"pontosVitoria"`
	PointsDraw       float64 `json:"pontosEmpate"`
	PointsLoss       float64 `json:"pontosDerrota"`
	LatenessPenalty1 float64 `json:"penalidadeAtrasoTipo1"`
	LatenessPenalty2 float64 `json:"penalidadeAtrasoTipo2"`
	YellowCardPoints float64 `json:"pontosCartaoAmarelo"`
	BlueCardPoints   float64 `json:"pontosCartaoAzul"`
	RedCardPoints    float64 `json:"pontosCartaoVermelho"`
	Discards         int     `json:"descartes" validate:"gte=0"`
	IsActive         bool    `json:"ativa"`
}

func seasonToDTO(item season.Season) seasonDTO {
	return seasonDTO{
		ID:               item.ID,
		Name:             item.Name,
		PointsWin:        item.PointsWin,
		PointsDraw:       item.PointsDraw,
		PointsLoss:       item.PointsLoss,
		LatenessPenalty1: item.LatenessPenalty1,
		LatenessPenalty2: item.LatenessPenalty2,
		YellowCardPoints: item.YellowCardPoints,
		BlueCardPoints:   item.BlueCardPoints,
		RedCardPoints:    item.RedCardPoints,
		Discards:         item.Discards,
		IsActive:         item.IsActive,
		CreatedAt:        item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func seasonInputFromRequest(req seasonRequest) usecase.SeasonInput {
	return usecase.SeasonInput{
		Name:             req.Name,
		PointsWin:        req.PointsWin,
		PointsDraw:       req.PointsDraw,
		PointsLoss:       req.PointsLoss,
		LatenessPenalty1: req.LatenessPenalty1,
		LatenessPenalty2: req.LatenessPenalty2,
		YellowCardPoints: req.YellowCardPoints,
		BlueCardPoints:   req.BlueCardPoints,
		RedCardPoints:    req.RedCardPoints,
		Discards:         req.Discards,
		IsActive:         req.IsActive,
	}
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, item := range seasons {
		items = append(items, seasonToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	item, err := h.seasonService.GetByID(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req seasonRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.Create(ctx, seasonInputFromRequest(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(item))
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeason")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))

	var req seasonRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.Update(ctx, seasonID, seasonInputFromRequest(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeason")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	if err := h.seasonService.Delete(ctx, seasonID); err != nil {
		h.logger.WarnContext(ctx, "delete season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": seasonID, "status": "deleted"})
}
