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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/showcase/internal/interactive/internal/domain"
	"github.com/ecodeclub/showcase/internal/interactive/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInvalidVisitor = errors.New("缺少访客信息")

//go:generate mockgen -source=./interactive.go -package=intrmocks -destination=../../mocks/interactive.mock.go Service
type Service interface {
	// RecordView 同一个访客重复浏览不会重复计数
	RecordView(ctx context.Context, pid, visitor string) error
	// ToggleLike 返回切换之后是否处于点赞状态
	ToggleLike(ctx context.Context, pid, visitor string) (bool, error)
	Get(ctx context.Context, pid, visitor string) (domain.Interactive, error)
	// Init 项目创建之后初始化计数，可以重复调用
	Init(ctx context.Context, pid string) error
}

type interactiveService struct {
	repo   repository.InteractiveRepository
	logger *elog.Component
}

func NewService(repo repository.InteractiveRepository) Service {
	return &interactiveService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (i *interactiveService) RecordView(ctx context.Context, pid, visitor string) error {
	if visitor == "" {
		return ErrInvalidVisitor
	}
	return i.repo.RecordView(ctx, pid, visitor)
}

func (i *interactiveService) ToggleLike(ctx context.Context, pid, visitor string) (bool, error) {
	if visitor == "" {
		return false, ErrInvalidVisitor
	}
	liked, err := i.repo.LikeToggle(ctx, pid, visitor)
	if errors.Is(err, repository.ErrLikeConflict) {
		// 同一个访客的并发请求，另一个事务已经提交，重试一次就能看到最新状态
		i.logger.Warn("点赞冲突，重试", elog.String("pid", pid))
		liked, err = i.repo.LikeToggle(ctx, pid, visitor)
	}
	return liked, err
}

func (i *interactiveService) Get(ctx context.Context, pid, visitor string) (domain.Interactive, error) {
	return i.repo.Get(ctx, pid, visitor)
}

func (i *interactiveService) Init(ctx context.Context, pid string) error {
	return i.repo.Init(ctx, pid)
}
