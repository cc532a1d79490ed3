package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/peladahub/pelada-league/internal/platform/logging"
	"github.com/peladahub/pelada-league/internal/usecase"
)

type Handler struct {
	seasonService  *usecase.SeasonService
	playerService  *usecase.PlayerService
	peladaService  *usecase.PeladaService
	rankingService *usecase.RankingService
	warmWorkers    int
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	playerService *usecase.PlayerService,
	peladaService *usecase.PeladaService,
	rankingService *usecase.RankingService,
	warmWorkers int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if warmWorkers < 1 {
		warmWorkers = 4
	}

	return &Handler{
		seasonService:  seasonService,
		playerService:  playerService,
		peladaService:  peladaService,
		rankingService: rankingService,
		warmWorkers:    warmWorkers,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeRequest(body io.Reader, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
