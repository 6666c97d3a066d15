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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/showcase/internal/project/internal/repository"
	"github.com/ecodeclub/showcase/internal/project/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*IntegritySweepJob)(nil)

// SweepResult 一次巡检的结果
type SweepResult struct {
	// 有记录但是目录已经不可用的项目
	Broken []string
	// 目录可用但是没有记录的项目，一般是入库过程中进程退出留下的
	Orphans []string
}

// IntegritySweepJob 定期对比数据库中的项目和磁盘上的项目目录，只记录日志，不做修复
type IntegritySweepJob struct {
	repo     repository.Repository
	verifier service.IntegrityVerifier
	logger   *elog.Component
}

func NewIntegritySweepJob(repo repository.Repository, verifier service.IntegrityVerifier) *IntegritySweepJob {
	return &IntegritySweepJob{
		repo:     repo,
		verifier: verifier,
		logger:   elog.DefaultLogger,
	}
}

func (j *IntegritySweepJob) Name() string {
	return "IntegritySweepJob"
}

func (j *IntegritySweepJob) Run(ctx context.Context) error {
	start := time.Now()
	res, err := j.Sweep(ctx)
	if err != nil {
		return err
	}
	for _, id := range res.Broken {
		j.logger.Warn("项目目录不可用", elog.String("pid", id))
	}
	for _, id := range res.Orphans {
		j.logger.Warn("项目目录没有对应的记录", elog.String("pid", id))
	}
	j.logger.Info("项目巡检完成",
		elog.Int("broken", len(res.Broken)),
		elog.Int("orphans", len(res.Orphans)),
		elog.FieldCost(time.Since(start)))
	return nil
}

func (j *IntegritySweepJob) Sweep(ctx context.Context) (SweepResult, error) {
	valid, err := j.verifier.ListValidProjectIDs(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("扫描项目目录失败: %w", err)
	}
	ids, err := j.repo.AllIDs(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("查询项目失败: %w", err)
	}
	return SweepResult{
		Broken:  slice.DiffSet(ids, valid),
		Orphans: slice.DiffSet(valid, ids),
	}, nil
}
