package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "pancakelab/internal/adapters/in/http"
	"pancakelab/internal/adapters/out/breaker"
	"pancakelab/internal/adapters/out/kafka"
	memoryorderrepo "pancakelab/internal/adapters/out/memory/orderrepo"
	"pancakelab/internal/adapters/out/postgres"
	postgresorderrepo "pancakelab/internal/adapters/out/postgres/orderrepo"
	"pancakelab/internal/adapters/out/redis/cachedrepo"
	sqliteorderrepo "pancakelab/internal/adapters/out/sqlite/orderrepo"
	"pancakelab/internal/core/application/coordinator"
	"pancakelab/internal/core/ports"
	"pancakelab/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// CompositionRoot owns every adapter built from a Config and releases them on Close.
type CompositionRoot struct {
	cfg         Config
	logger      *slog.Logger
	repo        ports.OrderRepository
	coordinator *coordinator.Coordinator
	checks      map[string]httpadapter.HealthCheck
	closers     []func() error
}

// NewCompositionRoot connects the configured store, cache, breaker and broker
// and builds the coordinator on top of them.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		checks: make(map[string]httpadapter.HealthCheck),
	}

	repo, err := c.createStore(ctx)
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	if cfg.Redis.Addr != "" {
		repo = c.createCache(repo)
	}

	if cfg.Breaker.Enabled {
		guarded := breaker.NewOrderRepository(repo, breaker.Settings{
			Name:        cfg.Store.Driver,
			MaxFailures: cfg.Breaker.MaxFailures,
			Timeout:     cfg.Breaker.Timeout,
		}, logger)
		c.checks["breaker"] = guarded.HealthCheck
		repo = guarded
	}
	c.repo = repo

	opts := []coordinator.Option{
		coordinator.WithLock(coordinator.NewTimeoutLock(coordinator.NewGlobalLock(), cfg.Store.LockTimeout)),
		coordinator.WithLogger(logger),
	}

	if len(cfg.Kafka.BrokerList()) > 0 {
		publisher, pubErr := c.createPublisher()
		if pubErr != nil {
			return nil, errors.Join(pubErr, c.Close())
		}
		opts = append(opts,
			coordinator.WithEventPublisher(publisher),
			coordinator.WithPublishTimeout(cfg.Kafka.PublishTimeout),
		)
	}

	c.coordinator = coordinator.New(repo, opts...)

	return c, nil
}

func (c *CompositionRoot) createStore(ctx context.Context) (ports.OrderRepository, error) {
	switch c.cfg.Store.Driver {
	case StorePostgres:
		db, err := postgres.Open(ctx, postgres.DSN(
			c.cfg.DB.Host, c.cfg.DB.Port, c.cfg.DB.User, c.cfg.DB.Password, c.cfg.DB.Name, c.cfg.DB.SslMode,
		))
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() error { return postgres.Close(db) })

		if err = postgres.Migrate(ctx, db); err != nil {
			return nil, err
		}
		c.logger.Info("order store ready", "driver", StorePostgres, "host", c.cfg.DB.Host, "db", c.cfg.DB.Name)
		return postgresorderrepo.NewGormOrderRepository(db), nil

	case StoreSQLite:
		repo, err := sqliteorderrepo.Open(c.cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, repo.Close)
		c.logger.Info("order store ready", "driver", StoreSQLite, "path", c.cfg.Store.SQLitePath)
		return repo, nil

	case StoreMemory:
		c.logger.Info("order store ready", "driver", StoreMemory)
		return memoryorderrepo.NewInMemoryOrderRepository(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", c.cfg.Store.Driver)
	}
}

func (c *CompositionRoot) createCache(next ports.OrderRepository) ports.OrderRepository {
	client := redis.NewClient(&redis.Options{Addr: c.cfg.Redis.Addr})
	c.closers = append(c.closers, client.Close)
	c.checks["redis"] = func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}

	c.logger.Info("order cache enabled", "addr", c.cfg.Redis.Addr, "ttl", c.cfg.Redis.TTL)
	return cachedrepo.NewCachedOrderRepository(next, client, c.cfg.Redis.TTL, c.logger)
}

func (c *CompositionRoot) createPublisher() (ports.OrderEventPublisher, error) {
	client, err := kafka.NewClient(c.cfg.Kafka.BrokerList(), c.cfg.Kafka.Topic, c.cfg.Kafka.PublishTimeout)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, func() error {
		client.Close()
		return nil
	})
	c.checks["kafka"] = client.Ping

	publisher, err := kafka.NewOrderEventPublisher(client, c.cfg.Kafka.Topic, c.logger)
	if err != nil {
		return nil, err
	}

	c.logger.Info("order events enabled", "brokers", c.cfg.Kafka.Brokers, "topic", c.cfg.Kafka.Topic)
	return publisher, nil
}

// Coordinator returns the order coordinator.
func (c *CompositionRoot) Coordinator() *coordinator.Coordinator {
	return c.coordinator
}

// CreateRouter builds the HTTP API over the coordinator.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpadapter.NewRouter(httpadapter.NewServer(c.coordinator), c.logger, c.checks)
}

// CreateJobManager builds the scheduled jobs over the coordinator.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.coordinator, c.coordinator, jobs.Schedules{
		Purge:          c.cfg.Jobs.PurgeSchedule,
		PurgeRetention: c.cfg.Jobs.PurgeRetention,
		Report:         c.cfg.Jobs.ReportSchedule,
	}, c.logger)
}

// Close releases the adapters in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errList = append(errList, err)
		}
	}
	c.closers = nil
	return errors.Join(errList...)
}
