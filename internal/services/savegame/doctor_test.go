package savegame_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamestore"
	"github.com/KirkDiggler/rpg-dm/internal/services/savegame"
	"github.com/KirkDiggler/rpg-dm/internal/testutils"
)

func put(t *testing.T, store gamestore.Repository, key, value string) {
	t.Helper()
	_, err := store.Put(context.Background(), gamestore.PutInput{Key: key, Value: []byte(value)})
	require.NoError(t, err)
}

func TestDoctor_HealthyAndAbsent(t *testing.T) {
	ctx := context.Background()
	store := gamestore.NewInMemory("")
	gw, err := savegame.New(&savegame.Config{Store: store})
	require.NoError(t, err)
	gw.SaveRoster(ctx, []entities.Character{testutils.CreateTestCharacter("c1", "Arin", entities.ClassRogue)})

	doctor, err := savegame.NewDoctor(&savegame.Config{Store: store})
	require.NoError(t, err)

	reports, err := doctor.Examine(ctx)
	require.NoError(t, err)
	assert.Equal(t, []savegame.RecordReport{
		{Key: gamestore.KeyCharacters, Status: savegame.StatusOK},
		{Key: gamestore.KeySavedGame, Status: savegame.StatusAbsent},
	}, reports)

	removed, err := doctor.Repair(ctx, reports)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestDoctor_FindsAndRepairsCorruption(t *testing.T) {
	ctx := context.Background()
	store := gamestore.NewInMemory("")
	put(t, store, gamestore.KeyCharacters, `[{"id":"c1","name":"Arin"},{"id":"c1","name":"Bex"}]`)
	put(t, store, gamestore.KeySavedGame, `{"gameState":"HALL_OF_HEROES","party":[]}`)

	doctor, err := savegame.NewDoctor(&savegame.Config{Store: store})
	require.NoError(t, err)

	reports, err := doctor.Examine(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, savegame.StatusCorrupted, r.Status, r.Key)
		assert.NotEmpty(t, r.Problem)
	}

	removed, err := doctor.Repair(ctx, reports)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	reports, err = doctor.Examine(ctx)
	require.NoError(t, err)
	for _, r := range reports {
		assert.Equal(t, savegame.StatusAbsent, r.Status)
	}
}

func TestDoctor_UnreadableJSON(t *testing.T) {
	store := gamestore.NewInMemory("")
	put(t, store, gamestore.KeySavedGame, `{not json`)

	doctor, err := savegame.NewDoctor(&savegame.Config{Store: store})
	require.NoError(t, err)

	reports, err := doctor.Examine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, savegame.StatusCorrupted, reports[1].Status)
	assert.Contains(t, reports[1].Problem, "unreadable JSON")
}

func TestDoctor_StoreDown(t *testing.T) {
	client, mr := testutils.CreateTestRedisServer(t)
	store, err := gamestore.NewRedis(&gamestore.RedisConfig{Client: client})
	require.NoError(t, err)
	mr.Close()

	doctor, err := savegame.NewDoctor(&savegame.Config{Store: store})
	require.NoError(t, err)

	_, err = doctor.Examine(context.Background())
	require.Error(t, err)
}
