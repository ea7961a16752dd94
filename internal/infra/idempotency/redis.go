package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idem:reserve:"

// Client is the subset of *redis.Client the store needs.
type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisStore struct {
	rdb Client
	ttl time.Duration
}

func NewRedisStore(rdb Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

var _ shared.IdempotencyStore = (*RedisStore)(nil)

func (s *RedisStore) Begin(ctx context.Context, key, fingerprint string) (*uuid.UUID, error) {
	claim, err := json.Marshal(record{Fingerprint: fingerprint, State: stateProcessing})
	if err != nil {
		return nil, errs.Wrap(err, "encode idempotency record")
	}

	// A record can expire between SetNX and Get; one more round settles it.
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.rdb.SetNX(ctx, keyPrefix+key, claim, s.ttl).Result()
		if err != nil {
			return nil, errs.Wrap(err, "claim idempotency key")
		}
		if ok {
			return nil, nil
		}

		raw, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, errs.Wrap(err, "load idempotency key")
		}

		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errs.Wrap(err, "decode idempotency record")
		}
		return rec.resolve(fingerprint)
	}
	return nil, shared.ErrIdempotencyInProgress
}

func (s *RedisStore) Complete(ctx context.Context, key, fingerprint string, rentalID uuid.UUID) error {
	done, err := json.Marshal(record{Fingerprint: fingerprint, State: stateDone, RentalID: &rentalID})
	if err != nil {
		return errs.Wrap(err, "encode idempotency record")
	}
	if err := s.rdb.Set(ctx, keyPrefix+key, done, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "store idempotency result")
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "release idempotency key")
	}
	return nil
}
