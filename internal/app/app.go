package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/matchm8/matchm8/internal/config"
	"github.com/matchm8/matchm8/internal/domain/fixture"
	"github.com/matchm8/matchm8/internal/domain/gameconfig"
	"github.com/matchm8/matchm8/internal/domain/player"
	"github.com/matchm8/matchm8/internal/domain/prediction"
	"github.com/matchm8/matchm8/internal/domain/result"
	"github.com/matchm8/matchm8/internal/domain/scoring"
	"github.com/matchm8/matchm8/internal/infrastructure/jobqueue"
	"github.com/matchm8/matchm8/internal/infrastructure/repository/memory"
	"github.com/matchm8/matchm8/internal/infrastructure/repository/postgres"
	"github.com/matchm8/matchm8/internal/interfaces/httpapi"
	"github.com/matchm8/matchm8/internal/platform/cache"
	idgen "github.com/matchm8/matchm8/internal/platform/id"
	"github.com/matchm8/matchm8/internal/platform/logging"
	"github.com/matchm8/matchm8/internal/platform/resilience"
	"github.com/matchm8/matchm8/internal/usecase"
)

type repositories struct {
	config   gameconfig.Repository
	fixtures fixture.Repository
	players  player.Repository
	preds    prediction.Repository
	results  result.Repository
	scores   scoring.Repository
}

// App holds the wired service graph plus the resources that need closing
// on shutdown.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger, slogger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if slogger == nil {
		slogger = slog.Default()
	}

	repos, db, err := buildRepositories(cfg, slogger)
	if err != nil {
		return nil, err
	}

	lockService := usecase.NewLockService(repos.config, repos.fixtures)
	configService := usecase.NewConfigService(repos.config)
	scoringService := usecase.NewScoringService(repos.preds, repos.results, repos.players, repos.scores)
	standingsService := usecase.NewStandingsService(scoringService, repos.scores, newCacheStore(cfg))
	fixtureService := usecase.NewFixtureService(repos.fixtures, lockService, scoringService)
	predictionService := usecase.NewPredictionService(lockService, repos.preds)
	playerService := usecase.NewPlayerService(repos.players, idgen.NewRandomGenerator())
	recomputeService := usecase.NewRecomputeService(repos.results, scoringService, cfg.RecomputeWorkers, logger)

	var publisher usecase.RecomputePublisher
	if cfg.QStashEnabled {
		publisher = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			Timeout:          cfg.QStashTimeout,
			MaxConcurrency:   cfg.QStashMaxConcurrency,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, slogger)
	}

	resultService := usecase.NewResultService(repos.fixtures, repos.results, scoringService, standingsService, publisher, logger)

	handler := httpapi.NewHandler(
		configService,
		fixtureService,
		lockService,
		playerService,
		predictionService,
		resultService,
		scoringService,
		standingsService,
		recomputeService,
		logger,
	)
	router := httpapi.NewRouter(handler, slogger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

// Close releases the app's long-lived resources.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func buildRepositories(cfg config.Config, slogger *slog.Logger) (repositories, *sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		slogger.Info("db url empty, using in-memory repositories with seed data")
		return repositories{
			config:   memory.NewGameConfigRepository(),
			fixtures: memory.NewFixtureRepository(memory.SeedFixtures()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			preds:    memory.NewPredictionRepository(),
			results:  memory.NewResultRepository(),
			scores:   memory.NewScoringRepository(),
		}, nil, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.BootstrapSeed(seedCtx, db); err != nil {
		slogger.Warn("bootstrap seed failed", "error", err)
	}

	return repositories{
		config:   postgres.NewGameConfigRepository(db),
		fixtures: postgres.NewFixtureRepository(db),
		players:  postgres.NewPlayerRepository(db),
		preds:    postgres.NewPredictionRepository(db),
		results:  postgres.NewResultRepository(db),
		scores:   postgres.NewScoringRepository(db),
	}, db, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func newCacheStore(cfg config.Config) *cache.Store {
	if !cfg.CacheEnabled {
		return cache.NewStore(-1)
	}
	return cache.NewStore(cfg.CacheTTL)
}
