package app

import (
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/peladahub/pelada-league/internal/config"
	"github.com/peladahub/pelada-league/internal/domain/pelada"
	"github.com/peladahub/pelada-league/internal/domain/player"
	"github.com/peladahub/pelada-league/internal/domain/season"
	"github.com/peladahub/pelada-league/internal/infrastructure/notify"
	cacherepo "github.com/peladahub/pelada-league/internal/infrastructure/repository/cache"
	"github.com/peladahub/pelada-league/internal/infrastructure/repository/memory"
	"github.com/peladahub/pelada-league/internal/infrastructure/repository/postgres"
	"github.com/peladahub/pelada-league/internal/interfaces/httpapi"
	basecache "github.com/peladahub/pelada-league/internal/platform/cache"
	idgen "github.com/peladahub/pelada-league/internal/platform/id"
	"github.com/peladahub/pelada-league/internal/platform/logging"
	"github.com/peladahub/pelada-league/internal/platform/resilience"
	"github.com/peladahub/pelada-league/internal/usecase"
)

type repositories struct {
	seasons season.Repository
	players player.Repository
	peladas pelada.Repository
	close   func() error
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.seasons = cacherepo.NewSeasonRepository(repos.seasons, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.peladas = cacherepo.NewPeladaRepository(repos.peladas, store)
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	var notifier usecase.SessionNotifier
	if cfg.WebhookEnabled {
		notifier = notify.NewWebhookPublisher(notify.WebhookConfig{
			URL:     cfg.WebhookURL,
			Token:   cfg.WebhookToken,
			Timeout: cfg.WebhookTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.WebhookCircuitEnabled,
				FailureThreshold: cfg.WebhookCircuitFailures,
				OpenTimeout:      cfg.WebhookCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.WebhookCircuitHalfOpenMax,
			},
		}, logger)
		logger.Info("session webhook enabled", "url", cfg.WebhookURL)
	}

	generator := idgen.NewRandomGenerator()

	seasonSvc := usecase.NewSeasonService(repos.seasons, generator)
	playerSvc := usecase.NewPlayerService(repos.players, generator)
	peladaSvc := usecase.NewPeladaService(repos.peladas, repos.seasons, generator, notifier, logger)
	rankingSvc := usecase.NewRankingService(repos.seasons, repos.players, repos.peladas)

	handler := httpapi.NewHandler(seasonSvc, playerSvc, peladaSvc, rankingSvc, cfg.RankingWarmWorkers, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	if repos.close != nil {
		closeDB := repos.close
		server.RegisterOnShutdown(func() {
			if err := closeDB(); err != nil {
				logger.Error("close database", "error", err)
			}
		})
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("storage mode", "backend", "memory")
		return repositories{
			seasons: memory.NewSeasonRepository(memory.SeedSeasons()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			peladas: memory.NewPeladaRepository(memory.SeedPeladas()),
		}, nil
	}

	db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)

	logger.Info("storage mode", "backend", "postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		seasons: postgres.NewSeasonRepository(db),
		players: postgres.NewPlayerRepository(db),
		peladas: postgres.NewPeladaRepository(db),
		close:   db.Close,
	}, nil
}
