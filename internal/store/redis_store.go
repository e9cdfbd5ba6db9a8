package store

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/clubtrainer/internal/telemetry/tracing"
)

const scanBatchSize = 200

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.redisClient.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.redisClient.Del(ctx, keys...).Err()
}

func (s *RedisStore) ListPush(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	return s.redisClient.RPush(ctx, key, toArgs(values)...).Err()
}

func toArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// ReplaceList runs DEL and RPUSH in one MULTI/EXEC, so readers never see
// the list half written.
func (s *RedisStore) ReplaceList(ctx context.Context, key string, values ...string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.replace-list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.RPush(ctx, key, toArgs(values)...)
		}
		return nil
	})
	return err
}

func (s *RedisStore) ListRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return s.redisClient.LRange(ctx, key, start, stop).Result()
}

// KeysMatching walks the keyspace with SCAN, never KEYS, so a large
// database is not blocked while the pattern is matched.
func (s *RedisStore) KeysMatching(ctx context.Context, pattern string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.keys-matching")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := s.redisClient.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}
	return keys, nil
}
