package gamestore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamestore"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := gamestore.NewInMemory("")

	_, err := repo.Get(ctx, gamestore.GetInput{Key: gamestore.KeyCharacters})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	value := []byte(`[]`)
	_, err = repo.Put(ctx, gamestore.PutInput{Key: gamestore.KeyCharacters, Value: value})
	require.NoError(t, err)

	// caller mutations do not leak into the store
	value[0] = 'x'

	out, err := repo.Get(ctx, gamestore.GetInput{Key: gamestore.KeyCharacters})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out.Value))

	del, err := repo.Delete(ctx, gamestore.DeleteInput{Key: gamestore.KeyCharacters})
	require.NoError(t, err)
	assert.True(t, del.Deleted)

	_, err = repo.Get(ctx, gamestore.GetInput{Key: gamestore.KeyCharacters})
	assert.True(t, errors.IsNotFound(err))
}

func TestInMemoryRepository_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := gamestore.NewInMemory("a")

	_, err := a.Put(ctx, gamestore.PutInput{Key: gamestore.KeySavedGame, Value: []byte(`{}`)})
	require.NoError(t, err)

	_, err = a.Get(ctx, gamestore.GetInput{Key: gamestore.KeySavedGame})
	require.NoError(t, err)

	_, err = a.Put(ctx, gamestore.PutInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
