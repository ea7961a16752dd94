package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/nataliadudina/bike-rental/internal/infra/idempotency"
	"github.com/nataliadudina/bike-rental/internal/pkg/clock"
	"github.com/nataliadudina/bike-rental/internal/pkg/config"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore falls back to process memory when REDIS_ADDR is unset,
// which is only safe for a single instance.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.IdempotencyStore, error) {
	if cfg.Redis.Addr == "" {
		slog.Warn("REDIS_ADDR is not set; idempotency keys are kept in memory")
		return idempotency.NewMemoryStore(clk, cfg.Redis.IdempotencyTTL), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return idempotency.NewRedisStore(rdb, cfg.Redis.IdempotencyTTL), nil
}
