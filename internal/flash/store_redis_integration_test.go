//go:build integration

package flash_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"loandesk/internal/flash"
	"loandesk/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *flash.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = flash.NewRedis(s.redis.Client, time.Minute)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTripDeliversOnce() {
	ctx := context.Background()
	s.Require().NoError(s.store.Push(ctx, "sess", flash.Success("Prestamo aprobado", "")))
	s.Require().NoError(s.store.Push(ctx, "sess", flash.Error("No se pudo procesar la solicitud", "")))

	toasts, err := s.store.Pop(ctx, "sess")
	s.Require().NoError(err)
	s.Require().Len(toasts, 2)
	s.Equal("Prestamo aprobado", toasts[0].Title)

	again, err := s.store.Pop(ctx, "sess")
	s.Require().NoError(err)
	s.Empty(again)
}

func (s *RedisStoreSuite) TestKeyCarriesTTL() {
	ctx := context.Background()
	s.Require().NoError(s.store.Push(ctx, "sess", flash.Success("a", "")))

	ttl, err := s.redis.Client.TTL(ctx, "loandesk:flash:sess").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}
