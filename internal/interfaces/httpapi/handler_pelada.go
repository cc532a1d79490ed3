package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/usecase"
)

type presenceDTO struct {
	PlayerID string `json:"jogadorId"`
	Present  bool   `json:"presente"`
	Lateness string `json:"atraso,omitempty"`
}

type presentPlayerDTO struct {
	PlayerID string `json:"jogadorId"`
	Name     string `json:"nome"`
	Category string `json:"categoria"`
	Present  bool   `json:"presente"`
}

type teamDTO struct {
	Name      string   `json:"nome"`
	PlayerIDs []string `json:"jogadores"`
}

type eventDTO struct {
	Type       string `json:"tipo"`
	PlayerID   string `json:"jogadorId"`
	AssistedBy string `json:"assistidoPor,omitempty"`
}

type matchDTO struct {
	TeamA        []string   `json:"timeA"`
	TeamB        []string   `json:"timeB"`
	ScoreA       *int       `json:"placarA,omitempty"`
	ScoreB       *int       `json:"placarB,omitempty"`
	LegacyScoreA *int       `json:"golsTimeA,omitempty"`
	LegacyScoreB *int       `json:"golsTimeB,omitempty"`
	Events       []eventDTO `json:"eventos"`
}

type peladaDTO struct {
	ID             string             `json:"id"`
	SeasonID       string             `json:"temporadaId"`
	Date           string             `json:"data"`
	Presences      []presenceDTO      `json:"presencas"`
	PresentPlayers []presentPlayerDTO `json:"jogadoresPresentes,omitempty"`
	Teams          []teamDTO          `json:"times"`
	Matches        []matchDTO         `json:"partidas"`
	CreatedAt      string             `json:"createdAt"`
}

type createPeladaRequest struct {
	SeasonID string `json:"temporadaId" validate:"required"`
	Date     string `json:"data" validate:"required"`
}

type setPresenceRequest struct {
	PlayerID string `json:"jogadorId" validate:"required"`
	Present  bool   `json:"presente"`
	Lateness string `json:"atraso" validate:"omitempty,oneof=tipo1 tipo2"`
}

type setTeamsRequest struct {
	Teams []teamDTO `json:"times" validate:"required,dive"`
}

type addMatchRequest struct {
	TeamA  []string `json:"timeA" validate:"required,min=1,dive,required"`
	TeamB  []string `json:"timeB" validate:"required,min=1,dive,required"`
	ScoreA *int     `json:"placarA"`
	ScoreB *int     `json:"placarB"`
}

type addEventRequest struct {
	Type       string `json:"tipo" validate:"required"`
	PlayerID   string `json:"jogadorId" validate:"required"`
	AssistedBy string `json:"assistidoPor"`
}

func peladaToDTO(item pelada.Pelada) peladaDTO {
	presences := make([]presenceDTO, 0, len(item.Presences))
	for _, entry := range item.Presences {
		presences = append(presences, presenceDTO{
			PlayerID: entry.PlayerID,
			Present:  entry.Present,
			Lateness: entry.Lateness,
		})
	}

	presentPlayers := make([]presentPlayerDTO, 0, len(item.PresentPlayers))
	for _, entry := range item.PresentPlayers {
		presentPlayers = append(presentPlayers, presentPlayerDTO{
			PlayerID: entry.PlayerID,
			Name:     entry.Name,
			Category: string(entry.Category),
			Present:  entry.Present,
		})
	}

	teams := make([]teamDTO, 0, len(item.Teams))
	for _, team := range item.Teams {
		teams = append(teams, teamDTO{
			Name:      team.Name,
			PlayerIDs: team.PlayerIDs,
		})
	}

	matches := make([]matchDTO, 0, len(item.Matches))
	for _, match := range item.Matches {
		events := make([]eventDTO, 0, len(match.Events))
		for _, ev := range match.Events {
			events = append(events, eventDTO{
				Type:       ev.Type,
				PlayerID:   ev.PlayerID,
				AssistedBy: ev.AssistedBy,
			})
		}
		matches = append(matches, matchDTO{
			TeamA:        match.TeamA,
			TeamB:        match.TeamB,
			ScoreA:       match.ScoreA,
			ScoreB:       match.ScoreB,
			LegacyScoreA: match.LegacyScoreA,
			LegacyScoreB: match.LegacyScoreB,
			Events:       events,
		})
	}

	return peladaDTO{
		ID:             item.ID,
		SeasonID:       item.SeasonID,
		Date:           item.Date.UTC().Format(time.RFC3339),
		Presences:      presences,
		PresentPlayers: presentPlayers,
		Teams:          teams,
		Matches:        matches,
		CreatedAt:      item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) ListPeladas(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPeladas")
	defer span.End()

	var (
		peladas []pelada.Pelada
		err     error
	)
	if seasonID := strings.TrimSpace(r.URL.Query().Get("temporada")); seasonID != "" {
		peladas, err = h.peladaService.ListBySeason(ctx, seasonID)
	} else {
		peladas, err = h.peladaService.List(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list peladas failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]peladaDTO, 0, len(peladas))
	for _, item := range peladas {
		items = append(items, peladaToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPelada(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPelada")
	defer span.End()

	peladaID := strings.TrimSpace(r.PathValue("peladaID"))
	item, err := h.peladaService.GetByID(ctx, peladaID)
	if err != nil {
		h.logger.WarnContext(ctx, "get pelada failed", "pelada_id", peladaID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, peladaToDTO(item))
}

func (h *Handler) CreatePelada(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePelada")
	defer span.End()

	var req createPeladaRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Date))
	if err != nil {
		date, err = time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	}
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: data must be RFC3339 or YYYY-MM-DD", usecase.ErrInvalidInput))
		return
	}

	item, err := h.peladaService.Create(ctx, req.SeasonID, date)
	if err != nil {
		h.logger.WarnContext(ctx, "create pelada failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, peladaToDTO(item))
}

func (h *Handler) DeletePelada(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePelada")
	defer span.End()

	peladaID := strings.TrimSpace(r.PathValue("peladaID"))
	if err := h.peladaService.Delete(ctx, peladaID); err != nil {
		h.logger.WarnContext(ctx, "delete pelada failed", "pelada_id", peladaID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": peladaID, "status": "deleted"})
}

func (h *Handler) SetPresence(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPresence")
	defer span.End()

	peladaID := strings.TrimSpace(r.PathValue("peladaID"))

	var req setPresenceRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.peladaService.SetPresence(ctx, peladaID, pelada.Presence{
		PlayerID: req.PlayerID,
		Present:  req.Present,
		Lateness: req.Lateness,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "set presence failed", "pelada_id", peladaID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, peladaToDTO(item))
}

func (h *Handler) SetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetTeams")
	defer span.End()

	peladaID := strings.TrimSpace(r.PathValue("peladaID"))

	var req setTeamsRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams := make([]pelada.Team, 0, len(req.Teams))
	for _, team := range req.Teams {
		teams = append(teams, pelada.Team{
			Name:      team.Name,
			PlayerIDs: team.PlayerIDs,
		})
	}

	item, err := h.peladaService.SetTeams(ctx, peladaID, teams)
	if err != nil {
		h.logger.WarnContext(ctx, "set teams failed", "pelada_id", peladaID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, peladaToDTO(item))
}

func (h *Handler) AddMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatch")
	defer span.End()

	peladaID := strings.TrimSpace(r.PathValue("peladaID"))

	var req addMatchRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.peladaService.AddMatch(ctx, peladaID, pelada.Match{
		TeamA:  req.TeamA,
		TeamB:  req.TeamB,
		ScoreA: req.ScoreA,
		ScoreB: req.ScoreB,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add match failed", "pelada_id", peladaID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, peladaToDTO(item))
}

func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddEvent")
	defer span.End()

	peladaID := strings.TrimSpace(r.PathValue("peladaID"))
	matchIndex, err := strconv.Atoi(strings.TrimSpace(r.PathValue("matchIndex")))
	if err != nil || matchIndex < 0 {
		writeError(ctx, w, fmt.Errorf("%w: match index must be a non-negative integer", usecase.ErrInvalidInput))
		return
	}

	var req addEventRequest
	if err := decodeRequest(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.peladaService.AddEvent(ctx, peladaID, matchIndex, pelada.Event{
		Type:       req.Type,
		PlayerID:   req.PlayerID,
		AssistedBy: req.AssistedBy,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add event failed", "pelada_id", peladaID, "match_index", matchIndex, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, peladaToDTO(item))
}
