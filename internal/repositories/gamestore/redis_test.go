package gamestore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamestore"
	"github.com/KirkDiggler/rpg-dm/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo gamestore.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisServer(s.T())
	s.mr = mr

	repo, err := gamestore.NewRedis(&gamestore.RedisConfig{
		Client:    client,
		Namespace: "rpgdm",
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestPutAndGet() {
	_, err := s.repo.Put(s.ctx, gamestore.PutInput{
		Key:   gamestore.KeyCharacters,
		Value: []byte(`[{"id":"c1"}]`),
	})
	s.Require().NoError(err)

	stored, err := s.mr.Get("rpgdm:characters")
	s.Require().NoError(err)
	s.Equal(`[{"id":"c1"}]`, stored)

	out, err := s.repo.Get(s.ctx, gamestore.GetInput{Key: gamestore.KeyCharacters})
	s.Require().NoError(err)
	s.Equal(`[{"id":"c1"}]`, string(out.Value))
}

func (s *RedisRepositoryTestSuite) TestPutOverwrites() {
	for _, v := range []string{`{"v":1}`, `{"v":2}`} {
		_, err := s.repo.Put(s.ctx, gamestore.PutInput{Key: gamestore.KeySavedGame, Value: []byte(v)})
		s.Require().NoError(err)
	}

	out, err := s.repo.Get(s.ctx, gamestore.GetInput{Key: gamestore.KeySavedGame})
	s.Require().NoError(err)
	s.Equal(`{"v":2}`, string(out.Value))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, gamestore.GetInput{Key: gamestore.KeySavedGame})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.mr.Set("rpgdm:saved_game", `{}`))

	out, err := s.repo.Delete(s.ctx, gamestore.DeleteInput{Key: gamestore.KeySavedGame})
	s.Require().NoError(err)
	s.True(out.Deleted)
	s.False(s.mr.Exists("rpgdm:saved_game"))

	out, err = s.repo.Delete(s.ctx, gamestore.DeleteInput{Key: gamestore.KeySavedGame})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestEmptyKey() {
	_, err := s.repo.Get(s.ctx, gamestore.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, gamestore.PutInput{Value: []byte("x")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, gamestore.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestServerDown() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, gamestore.GetInput{Key: gamestore.KeyCharacters})
	s.Require().Error(err)
	s.False(errors.IsNotFound(err))
	s.True(errors.IsInternal(err))
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := gamestore.NewRedis(&gamestore.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = gamestore.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
