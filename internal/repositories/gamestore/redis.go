package gamestore

import (
	"context"
	"errors"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	apperrors "github.com/KirkDiggler/rpg-dm/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-dm/internal/redis"
)

type redisRepository struct {
	client    redisclient.Client
	namespace string
}

// RedisConfig contains configuration for the Redis game store
type RedisConfig struct {
	Client redisclient.Client
	// Namespace prefixes every key as "<namespace>:<key>" when set
	Namespace string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return apperrors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return apperrors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed game store
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client:    cfg.Client,
		namespace: cfg.Namespace,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, apperrors.InvalidArgument(errKeyEmpty)
	}

	key := namespaced(r.namespace, input.Key)
	result, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("no value stored under %s", input.Key)
		}
		return nil, apperrors.Wrapf(err, "failed to get %s", input.Key)
	}

	slog.DebugContext(ctx, "gamestore read", "key", key, "bytes", len(result))

	return &GetOutput{Value: result}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Key == "" {
		return nil, apperrors.InvalidArgument(errKeyEmpty)
	}

	key := namespaced(r.namespace, input.Key)
	// No TTL, saves live until overwritten or cleared
	if err := r.client.Set(ctx, key, input.Value, 0).Err(); err != nil {
		return nil, apperrors.Wrapf(err, "failed to put %s", input.Key)
	}

	slog.DebugContext(ctx, "gamestore write", "key", key, "bytes", len(input.Value))

	return &PutOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Key == "" {
		return nil, apperrors.InvalidArgument(errKeyEmpty)
	}

	key := namespaced(r.namespace, input.Key)
	removed, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to delete %s", input.Key)
	}

	slog.DebugContext(ctx, "gamestore delete", "key", key, "removed", removed)

	return &DeleteOutput{Deleted: removed > 0}, nil
}
