package app

import (
	"context"
	"time"

	"staff-match/internal/config"
	"staff-match/internal/database"
	"staff-match/internal/database/migration"
	dbpostgres "staff-match/internal/database/postgres"
	"staff-match/internal/infrastructure/cache"
	"staff-match/internal/integration/workable"
	"staff-match/internal/repository"
	"staff-match/internal/usecase"
	"staff-match/internal/ws"

	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// Container owns the process-wide dependencies shared by every command.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Workable   *workable.Client
	Candidates *repository.PostgresCandidateRepository
	Jobs       *repository.PostgresJobRepository
	Matches    *repository.PostgresMatchRepository

	Matching *usecase.Matching
	Sync     *usecase.Sync
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(connCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
	}
	c.Workable = workable.NewClient(cfg.Workable, logger)
	c.Candidates = repository.NewPostgresCandidateRepository(db)
	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Matches = repository.NewPostgresMatchRepository(db)

	c.Matching = usecase.NewMatchingUsecase(c.Candidates, c.Jobs, c.Matches, c.Hub, logger)
	c.Sync = usecase.NewSyncUsecase(c.Workable, c.Candidates, c.Jobs, c.Cache, c.Hub, cfg.Sync.LockTTL, logger)

	return c, nil
}

// Migrate applies the embedded schema migrations.
func (c *Container) Migrate(ctx context.Context) error {
	return c.migrations().Run(ctx, c.DB.SQLDB())
}

func (c *Container) MigrationStatus(ctx context.Context) ([]migration.State, error) {
	return c.migrations().Status(ctx, c.DB.SQLDB())
}

func (c *Container) migrations() migration.Runner {
	return migration.Runner{Logger: c.Logger.Named("migration")}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Warn("close redis", zap.Error(err))
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
