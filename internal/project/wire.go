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

//go:build wireinject

package project

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/showcase/internal/interactive"
	"github.com/ecodeclub/showcase/internal/project/internal/event"
	"github.com/ecodeclub/showcase/internal/project/internal/job"
	"github.com/ecodeclub/showcase/internal/project/internal/repository"
	"github.com/ecodeclub/showcase/internal/project/internal/repository/dao"
	"github.com/ecodeclub/showcase/internal/project/internal/service"
	"github.com/ecodeclub/showcase/internal/project/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lithammer/shortuuid/v4"
)

func InitModule(db *egorm.Component,
	intrModule *interactive.Module,
	q mq.MQ,
	cfg StorageConfig,
) (*Module, error) {
	wire.Build(
		initProjectDAO,
		event.NewProjectEventProducer,
		projectIDGenerator,
		repository.NewProjectRepository,
		service.NewService,
		service.NewIntegrityVerifier,
		web.NewHandler,
		job.NewIntegritySweepJob,
		wire.FieldsOf(new(*interactive.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return &Module{}, nil
}

var (
	projectDAO     dao.ProjectDAO
	projectDAOOnce sync.Once
)

func initProjectDAO(db *egorm.Component) dao.ProjectDAO {
	projectDAOOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		projectDAO = dao.NewGORMProjectDAO(db)
	})
	return projectDAO
}


// projectIDGenerator 项目 ID 同时也是目录名
func projectIDGenerator() func() string {
	return shortuuid.New
}
