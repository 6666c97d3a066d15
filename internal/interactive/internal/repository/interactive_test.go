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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/showcase/internal/interactive/internal/domain"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository/cache"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository/dao"
	daomocks "github.com/ecodeclub/showcase/internal/interactive/internal/repository/dao/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCache(t *testing.T) (cache.InteractiveCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return cache.NewInteractiveECache(&ecache.NamespaceCache{
		C:         eredis.NewCache(client),
		Namespace: "showcase:",
	}), mr
}

func TestCachedInteractiveRepository_Get(t *testing.T) {
	testcases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) dao.InteractiveDAO
		before  func(t *testing.T, c cache.InteractiveCache)
		visitor string
		want    domain.Interactive
		wantErr error
	}{
		{
			name: "缓存未命中，回查数据库并回写",
			mock: func(ctrl *gomock.Controller) dao.InteractiveDAO {
				d := daomocks.NewMockInteractiveDAO(ctrl)
				d.EXPECT().Get(gomock.Any(), "p1").Return(dao.ProjectInteractive{Pid: "p1", ViewCnt: 5, LikeCnt: 2}, nil)
				d.EXPECT().GetLikeInfo(gomock.Any(), "p1", "v1").Return(dao.ProjectLike{Pid: "p1", Visitor: "v1"}, nil)
				return d
			},
			before:  func(t *testing.T, c cache.InteractiveCache) {},
			visitor: "v1",
			want:    domain.Interactive{Pid: "p1", ViewCnt: 5, LikeCnt: 2, Liked: true},
		},
		{
			name: "缓存命中",
			mock: func(ctrl *gomock.Controller) dao.InteractiveDAO {
				d := daomocks.NewMockInteractiveDAO(ctrl)
				d.EXPECT().GetLikeInfo(gomock.Any(), "p1", "v1").Return(dao.ProjectLike{}, dao.ErrRecordNotFound)
				return d
			},
			before: func(t *testing.T, c cache.InteractiveCache) {
				require.NoError(t, c.Set(context.Background(), domain.Interactive{Pid: "p1", ViewCnt: 7, LikeCnt: 3}))
			},
			visitor: "v1",
			want:    domain.Interactive{Pid: "p1", ViewCnt: 7, LikeCnt: 3},
		},
		{
			name: "还没有计数记录",
			mock: func(ctrl *gomock.Controller) dao.InteractiveDAO {
				d := daomocks.NewMockInteractiveDAO(ctrl)
				d.EXPECT().Get(gomock.Any(), "p1").Return(dao.ProjectInteractive{}, dao.ErrRecordNotFound)
				return d
			},
			before: func(t *testing.T, c cache.InteractiveCache) {},
			want:   domain.Interactive{Pid: "p1"},
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) dao.InteractiveDAO {
				d := daomocks.NewMockInteractiveDAO(ctrl)
				d.EXPECT().Get(gomock.Any(), "p1").Return(dao.ProjectInteractive{}, errors.New("mock db error"))
				return d
			},
			before:  func(t *testing.T, c cache.InteractiveCache) {},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c, _ := newTestCache(t)
			tc.before(t, c)
			repo := NewCachedInteractiveRepository(tc.mock(ctrl), c)
			got, err := repo.Get(context.Background(), "p1", tc.visitor)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
			if err == nil {
				cached, err := c.Get(context.Background(), "p1")
				require.NoError(t, err)
				assert.Equal(t, tc.want.ViewCnt, cached.ViewCnt)
				assert.Equal(t, tc.want.LikeCnt, cached.LikeCnt)
			}
		})
	}
}

func TestCachedInteractiveRepository_Invalidate(t *testing.T) {
	testcases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) dao.InteractiveDAO
		action    func(repo InteractiveRepository) error
		wantCache bool
	}{
		{
			name: "新的浏览删除缓存",
			mock: func(ctrl *gomock.Controller) dao.InteractiveDAO {
				d := daomocks.NewMockInteractiveDAO(ctrl)
				d.EXPECT().RecordView(gomock.Any(), "p1", "v1").Return(true, nil)
				return d
			},
			action: func(repo InteractiveRepository) error {
				return repo.RecordView(context.Background(), "p1", "v1")
			},
		},
		{
			name: "重复浏览保留缓存",
			mock: func(ctrl *gomock.Controller) dao.InteractiveDAO {
				d := daomocks.NewMockInteractiveDAO(ctrl)
				d.EXPECT().RecordView(gomock.Any(), "p1", "v1").Return(false, nil)
				return d
			},
			action: func(repo InteractiveRepository) error {
				return repo.RecordView(context.Background(), "p1", "v1")
			},
			wantCache: true,
		},
		{
			name: "点赞删除缓存",
			mock: func(ctrl *gomock.Controller) dao.InteractiveDAO {
				d := daomocks.NewMockInteractiveDAO(ctrl)
				d.EXPECT().LikeToggle(gomock.Any(), "p1", "v1").Return(true, nil)
				return d
			},
			action: func(repo InteractiveRepository) error {
				_, err := repo.LikeToggle(context.Background(), "p1", "v1")
				return err
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c, mr := newTestCache(t)
			require.NoError(t, c.Set(context.Background(), domain.Interactive{Pid: "p1", ViewCnt: 1}))
			repo := NewCachedInteractiveRepository(tc.mock(ctrl), c)
			require.NoError(t, tc.action(repo))
			assert.Equal(t, tc.wantCache, mr.Exists("showcase:interactive:project:p1"))
		})
	}
}
