package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/kazfoot/kpl-fantasy/internal/config"
	"github.com/kazfoot/kpl-fantasy/internal/domain/competition"
	"github.com/kazfoot/kpl-fantasy/internal/domain/fantasy"
	"github.com/kazfoot/kpl-fantasy/internal/domain/match"
	"github.com/kazfoot/kpl-fantasy/internal/domain/player"
	"github.com/kazfoot/kpl-fantasy/internal/domain/scoring"
	"github.com/kazfoot/kpl-fantasy/internal/domain/team"
	"github.com/kazfoot/kpl-fantasy/internal/infrastructure/account"
	"github.com/kazfoot/kpl-fantasy/internal/infrastructure/factstore"
	"github.com/kazfoot/kpl-fantasy/internal/infrastructure/repository/memory"
	"github.com/kazfoot/kpl-fantasy/internal/infrastructure/repository/postgres"
	"github.com/kazfoot/kpl-fantasy/internal/interfaces/httpapi"
	"github.com/kazfoot/kpl-fantasy/internal/platform/cache"
	idgen "github.com/kazfoot/kpl-fantasy/internal/platform/id"
	"github.com/kazfoot/kpl-fantasy/internal/platform/logging"
	"github.com/kazfoot/kpl-fantasy/internal/platform/resilience"
	"github.com/kazfoot/kpl-fantasy/internal/usecase"
)

type repositories struct {
	competitions competition.Repository
	teams        team.Repository
	players      player.Repository
	matches      match.Repository
	fantasyTeams fantasy.Repository
	gameweeks    scoring.Repository
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	teamSvc := usecase.NewTeamService(repos.competitions, repos.teams)
	matchSvc := usecase.NewMatchService(repos.competitions, repos.matches)
	fantasySvc := usecase.NewFantasyService(
		repos.competitions,
		repos.teams,
		repos.players,
		repos.matches,
		repos.fantasyTeams,
		repos.gameweeks,
		fantasy.DefaultRules(),
		idgen.NewRandomGenerator(),
		logger,
	)
	standingSvc := usecase.NewStandingService(repos.competitions, repos.matches, repos.teams, store)
	scoringSvc := usecase.NewScoringService(repos.matches, repos.players, repos.fantasyTeams, repos.gameweeks, logger)

	var provider usecase.FactProvider
	if cfg.FactsEnabled {
		provider = factstore.NewClient(factstore.ClientConfig{
			BaseURL:    cfg.FactsBaseURL,
			Token:      cfg.FactsToken,
			Timeout:    cfg.FactsTimeout,
			MaxRetries: cfg.FactsMaxRetries,
			Logger:     logging.NewJSON(cfg.LogLevel),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FactsCircuitEnabled,
				FailureThreshold: cfg.FactsCircuitFailureCount,
				OpenTimeout:      cfg.FactsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FactsCircuitHalfOpenMaxReq,
			},
		})
	}
	syncSvc := usecase.NewFactSyncService(
		repos.competitions,
		repos.teams,
		repos.players,
		repos.matches,
		provider,
		logger,
	)

	accountClient := account.NewClient(
		&http.Client{Timeout: cfg.AccountTimeout},
		cfg.AccountBaseURL,
		cfg.AccountIntrospectPath,
		logger,
	)

	handler := httpapi.NewHandler(teamSvc, matchSvc, fantasySvc, standingSvc, scoringSvc, syncSvc, logger)
	router := httpapi.NewRouter(handler, accountClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}

		return repositories{
			competitions: postgres.NewCompetitionRepository(db),
			teams:        postgres.NewTeamRepository(db),
			players:      postgres.NewPlayerRepository(db),
			matches:      postgres.NewMatchRepository(db),
			fantasyTeams: postgres.NewFantasyRepository(db),
			gameweeks:    postgres.NewScoringRepository(db),
		}, nil
	default:
		return repositories{
			competitions: memory.NewCompetitionRepository(memory.SeedCompetitions()),
			teams:        memory.NewTeamRepository(memory.SeedTeams()),
			players:      memory.NewPlayerRepository(memory.SeedPlayers()),
			matches:      memory.NewMatchRepository(memory.SeedMatches()),
			fantasyTeams: memory.NewFantasyRepository(),
			gameweeks:    memory.NewScoringRepository(),
		}, nil
	}
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
