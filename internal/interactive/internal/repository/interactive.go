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

	"github.com/ecodeclub/showcase/internal/interactive/internal/domain"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository/cache"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrLikeConflict   = dao.ErrLikeConflict
)

//go:generate mockgen -source=./interactive.go -package=repomocks -destination=mocks/interactive.mock.go InteractiveRepository
type InteractiveRepository interface {
	RecordView(ctx context.Context, pid, visitor string) error
	LikeToggle(ctx context.Context, pid, visitor string) (bool, error)
	// Get 计数读缓存，是否点赞直接查数据库
	Get(ctx context.Context, pid, visitor string) (domain.Interactive, error)
	Liked(ctx context.Context, pid, visitor string) (bool, error)
	Init(ctx context.Context, pid string) error
}

type CachedInteractiveRepository struct {
	interactiveDao dao.InteractiveDAO
	cache          cache.InteractiveCache
	logger         *elog.Component
}

func NewCachedInteractiveRepository(interactiveDao dao.InteractiveDAO, c cache.InteractiveCache) InteractiveRepository {
	return &CachedInteractiveRepository{
		interactiveDao: interactiveDao,
		cache:          c,
		logger:         elog.DefaultLogger,
	}
}

func (i *CachedInteractiveRepository) RecordView(ctx context.Context, pid, visitor string) error {
	inserted, err := i.interactiveDao.RecordView(ctx, pid, visitor)
	if err != nil {
		return err
	}
	if inserted {
		i.invalidate(ctx, pid)
	}
	return nil
}

func (i *CachedInteractiveRepository) LikeToggle(ctx context.Context, pid, visitor string) (bool, error) {
	liked, err := i.interactiveDao.LikeToggle(ctx, pid, visitor)
	if err != nil {
		return false, err
	}
	i.invalidate(ctx, pid)
	return liked, nil
}

func (i *CachedInteractiveRepository) Liked(ctx context.Context, pid, visitor string) (bool, error) {
	_, err := i.interactiveDao.GetLikeInfo(ctx, pid, visitor)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (i *CachedInteractiveRepository) Get(ctx context.Context, pid, visitor string) (domain.Interactive, error) {
	var (
		eg    errgroup.Group
		intr  domain.Interactive
		liked bool
	)
	eg.Go(func() error {
		var err error
		intr, err = i.counts(ctx, pid)
		return err
	})
	eg.Go(func() error {
		if visitor == "" {
			return nil
		}
		var err error
		liked, err = i.Liked(ctx, pid, visitor)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Interactive{}, err
	}
	intr.Liked = liked
	return intr, nil
}

func (i *CachedInteractiveRepository) Init(ctx context.Context, pid string) error {
	return i.interactiveDao.InitInteractive(ctx, pid)
}

func (i *CachedInteractiveRepository) counts(ctx context.Context, pid string) (domain.Interactive, error) {
	intr, err := i.cache.Get(ctx, pid)
	if err == nil {
		return intr, nil
	}
	entity, err := i.interactiveDao.Get(ctx, pid)
	switch {
	case err == nil:
		intr = i.toDomain(entity)
	case errors.Is(err, dao.ErrRecordNotFound):
		// 还没有任何浏览和点赞
		intr = domain.Interactive{Pid: pid}
	default:
		return domain.Interactive{}, err
	}
	if err = i.cache.Set(ctx, intr); err != nil {
		i.logger.Error("回写计数缓存失败", elog.String("pid", pid), elog.FieldErr(err))
	}
	return intr, nil
}

func (i *CachedInteractiveRepository) invalidate(ctx context.Context, pid string) {
	if err := i.cache.Delete(ctx, pid); err != nil {
		i.logger.Error("删除计数缓存失败", elog.String("pid", pid), elog.FieldErr(err))
	}
}

func (i *CachedInteractiveRepository) toDomain(intr dao.ProjectInteractive) domain.Interactive {
	return domain.Interactive{
		Pid:     intr.Pid,
		ViewCnt: intr.ViewCnt,
		LikeCnt: intr.LikeCnt,
	}
}
