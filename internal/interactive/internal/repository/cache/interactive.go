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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/showcase/internal/interactive/internal/domain"
)

//go:generate mockgen -source=./interactive.go -package=cachemocks -destination=mocks/interactive.mock.go InteractiveCache
type InteractiveCache interface {
	// Get 只缓存计数，Liked 总是 false
	Get(ctx context.Context, pid string) (domain.Interactive, error)
	Set(ctx context.Context, intr domain.Interactive) error
	Delete(ctx context.Context, pid string) error
}

type counts struct {
	ViewCnt int `json:"viewCnt"`
	LikeCnt int `json:"likeCnt"`
}

type InteractiveECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

// NewInteractiveECache 注意缓存前缀
func NewInteractiveECache(c ecache.Cache) InteractiveCache {
	return &InteractiveECache{
		cache: &ecache.NamespaceCache{
			Namespace: "interactive:",
			C:         c,
		},
		expiration: time.Minute * 10,
	}
}

func (cache *InteractiveECache) Get(ctx context.Context, pid string) (domain.Interactive, error) {
	var c counts
	err := cache.cache.Get(ctx, cache.key(pid)).JSONScan(&c)
	if err != nil {
		return domain.Interactive{}, err
	}
	return domain.Interactive{
		Pid:     pid,
		ViewCnt: c.ViewCnt,
		LikeCnt: c.LikeCnt,
	}, nil
}

func (cache *InteractiveECache) Set(ctx context.Context, intr domain.Interactive) error {
	data, err := json.Marshal(counts{ViewCnt: intr.ViewCnt, LikeCnt: intr.LikeCnt})
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(intr.Pid), data, cache.expiration)
}

func (cache *InteractiveECache) Delete(ctx context.Context, pid string) error {
	_, err := cache.cache.Delete(ctx, cache.key(pid))
	return err
}

func (cache *InteractiveECache) key(pid string) string {
	return fmt.Sprintf("project:%s", pid)
}
