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

package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/showcase/ioc"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

// InitCache 和线上一样读取 redis 配置，key 都带 showcase: 前缀
func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		cache = ioc.InitCache(ioc.InitRedis())
	})
	return cache
}
