package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/config"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dm/internal/redis"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamestore"
	"github.com/KirkDiggler/rpg-dm/internal/services/savegame"
)

// buildStore uses Redis when REDIS_URL is set and falls back to memory
func buildStore(ctx context.Context, c *config.Config) (gamestore.Repository, func(), error) {
	if c.RedisURL == "" {
		slog.InfoContext(ctx, "using in-memory game store, progress is lost on exit")
		return gamestore.NewInMemory(c.StoreNamespace), func() {}, nil
	}

	client, err := redis.NewClientFromURL(c.RedisURL, &redis.Options{PoolSize: 4})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid REDIS_URL")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis is not reachable yet, saves will fail until it is", "error", err)
	}

	store, err := gamestore.NewRedis(&gamestore.RedisConfig{
		Client:    client,
		Namespace: c.StoreNamespace,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return store, closeFn, nil
}

// buildSession wires the store, storyteller and session. The returned
// cleanup releases backend resources.
func buildSession(ctx context.Context, c *config.Config) (game.Service, func(), error) {
	if err := c.ValidateNarrator(); err != nil {
		return nil, nil, err
	}

	store, closeStore, err := buildStore(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	gateway, err := savegame.New(&savegame.Config{Store: store})
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	generator, closeGenerator, err := narrator.NewGenerator(ctx, c.Narrator())
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	cleanup := func() {
		if err := closeGenerator(); err != nil {
			slog.Warn("failed to close narrator backend", "error", err)
		}
		closeStore()
	}

	client, err := narrator.NewClient(&narrator.Config{
		Generator: generator,
		Timeout:   c.NarratorTimeout,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	session, err := game.NewSession(ctx, &game.Config{
		Gateway:     gateway,
		Narrator:    client,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID(""),
		EventBus:    events.NewBus(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return session, cleanup, nil
}
