// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/showcase/internal/interactive/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type InteractiveCacheTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	cache  InteractiveCache
}

func TestInteractiveCache(t *testing.T) {
	suite.Run(t, new(InteractiveCacheTestSuite))
}

func (s *InteractiveCacheTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	require.NoError(s.T(), err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.cache = NewInteractiveECache(&ecache.NamespaceCache{
		C:         eredis.NewCache(s.client),
		Namespace: "showcase:",
	})
}

func (s *InteractiveCacheTestSuite) TearDownTest() {
	_ = s.client.Close()
	s.mr.Close()
}

func (s *InteractiveCacheTestSuite) TestSetGet() {
	t := s.T()
	ctx := context.Background()
	err := s.cache.Set(ctx, domain.Interactive{Pid: "abc", ViewCnt: 3, LikeCnt: 2, Liked: true})
	require.NoError(t, err)

	assert.True(t, s.mr.Exists("showcase:interactive:project:abc"))
	ttl := s.mr.TTL("showcase:interactive:project:abc")
	assert.True(t, ttl > 0 && ttl <= 10*time.Minute)

	got, err := s.cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, domain.Interactive{Pid: "abc", ViewCnt: 3, LikeCnt: 2}, got)
}

func (s *InteractiveCacheTestSuite) TestGetMissing() {
	_, err := s.cache.Get(context.Background(), "missing")
	assert.Error(s.T(), err)
}

func (s *InteractiveCacheTestSuite) TestDelete() {
	t := s.T()
	ctx := context.Background()
	require.NoError(t, s.cache.Set(ctx, domain.Interactive{Pid: "abc", ViewCnt: 1}))
	require.NoError(t, s.cache.Delete(ctx, "abc"))
	assert.False(t, s.mr.Exists("showcase:interactive:project:abc"))
	_, err := s.cache.Get(ctx, "abc")
	assert.Error(t, err)
	// 删除不存在的 key 不是错误
	assert.NoError(t, s.cache.Delete(ctx, "abc"))
}

func (s *InteractiveCacheTestSuite) TestExpire() {
	t := s.T()
	ctx := context.Background()
	require.NoError(t, s.cache.Set(ctx, domain.Interactive{Pid: "abc", ViewCnt: 1}))
	s.mr.FastForward(11 * time.Minute)
	_, err := s.cache.Get(ctx, "abc")
	assert.Error(t, err)
}
