package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/domain/season"
	"github.com/peladahub/pelada-league/internal/platform/id"
	"github.com/peladahub/pelada-league/internal/platform/logging"
)

// SessionNotifier pushes session-change notifications to an external hook.
// Delivery is best effort; failures never abort the recording flow.
type SessionNotifier interface {
	SessionUpdated(ctx context.Context, peladaID, seasonID, change string) error
}

// PeladaService covers the match-sheet recording flow: creating a session,
// editing presence, and appending matches and events after the fact.
type PeladaService struct {
	peladaRepo pelada.Repository
	seasonRepo season.Repository
	idGen      id.Generator
	notifier   SessionNotifier
	logger     *logging.Logger
	now        func() time.Time
}

func NewPeladaService(
	peladaRepo pelada.Repository,
	seasonRepo season.Repository,
	idGen id.Generator,
	notifier SessionNotifier,
	logger *logging.Logger,
) *PeladaService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PeladaService{
		peladaRepo: peladaRepo,
		seasonRepo: seasonRepo,
		idGen:      idGen,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PeladaService) List(ctx context.Context) ([]pelada.Pelada, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.List")
	defer span.End()

	items, err := s.peladaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list peladas: %w", err)
	}

	return items, nil
}

func (s *PeladaService) ListBySeason(ctx context.Context, seasonID string) ([]pelada.Pelada, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.ListBySeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	items, err := s.peladaRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list peladas by season: %w", err)
	}

	return items, nil
}

func (s *PeladaService) GetByID(ctx context.Context, peladaID string) (pelada.Pelada, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.GetByID")
	defer span.End()

	peladaID = strings.TrimSpace(peladaID)
	if peladaID == "" {
		return pelada.Pelada{}, fmt.Errorf("%w: pelada id is required", ErrInvalidInput)
	}

	item, exists, err := s.peladaRepo.GetByID(ctx, peladaID)
	if err != nil {
		return pelada.Pelada{}, fmt.Errorf("get pelada: %w", err)
	}
	if !exists {
		return pelada.Pelada{}, fmt.Errorf("%w: pelada=%s", ErrNotFound, peladaID)
	}

	return item, nil
}

func (s *PeladaService) Create(ctx context.Context, seasonID string, date time.Time) (pelada.Pelada, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.Create")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return pelada.Pelada{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return pelada.Pelada{}, fmt.Errorf("get season for pelada: %w", err)
	}
	if !exists {
		return pelada.Pelada{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return pelada.Pelada{}, fmt.Errorf("generate pelada id: %w", err)
	}

	item := pelada.Pelada{
		ID:        newID,
		SeasonID:  seasonID,
		Date:      date,
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return pelada.Pelada{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.peladaRepo.Create(ctx, item); err != nil {
		return pelada.Pelada{}, fmt.Errorf("create pelada: %w", err)
	}
	s.notify(ctx, item, "created")

	return item, nil
}

func (s *PeladaService) Delete(ctx context.Context, peladaID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.Delete")
	defer span.End()

	item, err := s.GetByID(ctx, peladaID)
	if err != nil {
		return err
	}

	if err := s.peladaRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete pelada: %w", err)
	}
	s.notify(ctx, item, "deleted")

	return nil
}

// SetPresence upserts the representation-#1 attendance entry for a player.
// Older representations on the session are left untouched.
func (s *PeladaService) SetPresence(ctx context.Context, peladaID string, entry pelada.Presence) (pelada.Pelada, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.SetPresence")
	defer span.End()

	entry.PlayerID = strings.TrimSpace(entry.PlayerID)
	if entry.PlayerID == "" {
		return pelada.Pelada{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	switch entry.Lateness {
	case "", pelada.LatenessTier1, pelada.LatenessTier2:
	default:
		return pelada.Pelada{}, fmt.Errorf("%w: unknown lateness tier %q", ErrInvalidInput, entry.Lateness)
	}

	item, err := s.GetByID(ctx, peladaID)
	if err != nil {
		return pelada.Pelada{}, err
	}

	replaced := false
	for i := range item.Presences {
		if item.Presences[i].PlayerID == entry.PlayerID {
			item.Presences[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		item.Presences = append(item.Presences, entry)
	}

	if err := s.peladaRepo.Update(ctx, item); err != nil {
		return pelada.Pelada{}, fmt.Errorf("update pelada presence: %w", err)
	}
	s.notify(ctx, item, "presence")

	return item, nil
}

func (s *PeladaService) SetTeams(ctx context.Context, peladaID string, teams []pelada.Team) (pelada.Pelada, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.SetTeams")
	defer span.End()

	for _, team := range teams {
		if strings.TrimSpace(team.Name) == "" {
			return pelada.Pelada{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
		}
	}

	item, err := s.GetByID(ctx, peladaID)
	if err != nil {
		return pelada.Pelada{}, err
	}

	item.Teams = teams
	if err := s.peladaRepo.Update(ctx, item); err != nil {
		return pelada.Pelada{}, fmt.Errorf("update pelada teams: %w", err)
	}
	s.notify(ctx, item, "teams")

	return item, nil
}

func (s *PeladaService) AddMatch(ctx context.Context, peladaID string, match pelada.Match) (pelada.Pelada, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.AddMatch")
	defer span.End()

	item, err := s.GetByID(ctx, peladaID)
	if err != nil {
		return pelada.Pelada{}, err
	}

	item.Matches = append(item.Matches, match)
	if err := s.peladaRepo.Update(ctx, item); err != nil {
		return pelada.Pelada{}, fmt.Errorf("update pelada matches: %w", err)
	}
	s.notify(ctx, item, "match")

	return item, nil
}

// AddEvent appends one event to a match sheet. The acting and assisting
// player may coincide on hand-typed sheets; that is recorded as-is and
// surfaces in the ranking as both a goal and an assist.
func (s *PeladaService) AddEvent(ctx context.Context, peladaID string, matchIndex int, event pelada.Event) (pelada.Pelada, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PeladaService.AddEvent")
	defer span.End()

	event.PlayerID = strings.TrimSpace(event.PlayerID)
	event.AssistedBy = strings.TrimSpace(event.AssistedBy)
	if event.PlayerID == "" {
		return pelada.Pelada{}, fmt.Errorf("%w: event player id is required", ErrInvalidInput)
	}
	if _, ok := pelada.AllEventTypes[event.Type]; !ok {
		return pelada.Pelada{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, event.Type)
	}
	if event.Type != pelada.EventGoal && event.AssistedBy != "" {
		return pelada.Pelada{}, fmt.Errorf("%w: only goals carry an assist", ErrInvalidInput)
	}

	item, err := s.GetByID(ctx, peladaID)
	if err != nil {
		return pelada.Pelada{}, err
	}
	if matchIndex < 0 || matchIndex >= len(item.Matches) {
		return pelada.Pelada{}, fmt.Errorf("%w: match index %d out of range", ErrInvalidInput, matchIndex)
	}

	item.Matches[matchIndex].Events = append(item.Matches[matchIndex].Events, event)
	if err := s.peladaRepo.Update(ctx, item); err != nil {
		return pelada.Pelada{}, fmt.Errorf("update pelada events: %w", err)
	}
	s.notify(ctx, item, "event")

	return item, nil
}

func (s *PeladaService) notify(ctx context.Context, item pelada.Pelada, change string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SessionUpdated(ctx, item.ID, item.SeasonID, change); err != nil {
		s.logger.WarnContext(ctx, "session notification failed",
			"pelada_id", item.ID,
			"change", change,
			"error", err,
		)
	}
}
