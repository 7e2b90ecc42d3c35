package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "github.com/flavio-cbz/logistix-pro/internal/api/http"
	pricingctrl "github.com/flavio-cbz/logistix-pro/internal/api/http/controllers/pricing"
	"github.com/flavio-cbz/logistix-pro/internal/api/http/controllers/system"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/click"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/kafka"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/memcache"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/mongo"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/pg"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/redis"
	"github.com/flavio-cbz/logistix-pro/internal/pkg/logger"
	"github.com/flavio-cbz/logistix-pro/internal/ports"
	pricingUsecase "github.com/flavio-cbz/logistix-pro/internal/usecase/pricing"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилище, кэш, брокер и аналитику, инициализирует зависимости
// и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := a.buildRepo(ctx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	cache, closeCache, err := a.buildCache(log)
	if err != nil {
		return err
	}
	defer closeCache()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()
	analytics := click.NewSaleWriter(ch)
	if err := analytics.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse migrate: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	uc := pricingUsecase.New(repo, cache, producer, analytics, a.cfg.Cache.TTL, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		pricingctrl.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "storage", a.cfg.Storage, "cache", a.cfg.Cache.Backend)

	return srv.Start(ctx)
}

// buildRepo подключает выбранное конфигом хранилище истории (postgres | mongo).
func (a *App) buildRepo(ctx context.Context, log *slog.Logger) (ports.IPriceHistoryRepository, func(), error) {
	switch a.cfg.Storage {
	case StorageMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		closeFn := func() { _ = cli.Disconnect(context.Background()) }
		return mongo.NewPriceHistoryRepo(cli, log), closeFn, nil
	case StoragePostgres:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewPriceHistoryRepo(db, log), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %q", a.cfg.Storage)
	}
}

// buildCache подключает выбранный конфигом кэш рекомендаций (redis | memory).
func (a *App) buildCache(log *slog.Logger) (ports.ICache, func(), error) {
	switch a.cfg.Cache.Backend {
	case CacheMemory:
		c := memcache.New(a.cfg.Cache.TTL)
		return c, c.Close, nil
	case CacheRedis:
		rdb, err := redis.New(&a.cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return redis.NewCache(rdb, log), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend: %q", a.cfg.Cache.Backend)
	}
}
