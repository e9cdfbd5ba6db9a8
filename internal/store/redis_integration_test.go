//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"
)

type RedisStoreSuite struct {
	suite.Suite

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
	rdb        *redis.Client
	store      *RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	var err error
	s.dockerPool, err = dockertest.NewPool("")
	s.Require().NoError(err)
	s.Require().NoError(s.dockerPool.Client.Ping())

	s.resource, err = s.dockerPool.Run("redis", "7-alpine", nil)
	s.Require().NoError(err)
	_ = s.resource.Expire(120)

	s.dockerPool.MaxWait = 30 * time.Second
	s.Require().NoError(s.dockerPool.Retry(func() error {
		s.rdb = redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("localhost:%s", s.resource.GetPort("6379/tcp")),
		})
		return s.rdb.Ping(context.Background()).Err()
	}))
	s.store = NewRedisStore(s.rdb)
}

func (s *RedisStoreSuite) TearDownSuite() {
	if s.rdb != nil {
		_ = s.rdb.Close()
	}
	if s.resource != nil {
		s.Require().NoError(s.dockerPool.Purge(s.resource))
	}
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()

	_, err := s.store.Get(ctx, "nope")
	s.ErrorIs(err, ErrNotFound)

	s.Require().NoError(s.store.Set(ctx, "player:1", `{"id":"1"}`))
	val, err := s.store.Get(ctx, "player:1")
	s.Require().NoError(err)
	s.Equal(`{"id":"1"}`, val)

	s.Require().NoError(s.store.ListPush(ctx, "loads:1", "a", "b"))
	items, err := s.store.ListRange(ctx, "loads:1", 0, -1)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, items)

	s.Require().NoError(s.store.ReplaceList(ctx, "loads:1", "c"))
	items, err = s.store.ListRange(ctx, "loads:1", 0, -1)
	s.Require().NoError(err)
	s.Equal([]string{"c"}, items)

	for i := 0; i < 500; i++ {
		s.Require().NoError(s.store.Set(ctx, fmt.Sprintf("wellness:1:%04d", i), "{}"))
	}
	keys, err := s.store.KeysMatching(ctx, "wellness:1:*")
	s.Require().NoError(err)
	s.Len(keys, 500)

	s.Require().NoError(s.store.Delete(ctx, "player:1", "loads:1"))
	_, err = s.store.Get(ctx, "player:1")
	s.ErrorIs(err, ErrNotFound)
}
