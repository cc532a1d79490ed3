package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/player"
	"github.com/peladahub/pelada-league/internal/usecase"
)

type playerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Category  string `json:"categoria"`
	IsActive  bool   `json:"ativo"`
	CreatedAt string `json:"createdAt"`
}

type playerRequest struct {
	Name     string `json:"nome" validate:"required,max=120"`
	Category string `json:"categoria" validate:"required"`
	IsActive bool   `json:"ativo"`
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:        item.ID,
		Name:      item.Name,
		Category:  string(item.Category),
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.GetByID(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Create(ctx, usecase.PlayerInput{
		Name:     req.Name,
		Category: req.Category,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req playerRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Update(ctx, playerID, usecase.PlayerInput{
		Name:     req.Name,
		Category: req.Category,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": playerID, "status": "deleted"})
}
