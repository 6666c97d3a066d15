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

package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/showcase/internal/pkg/mqx"
	"github.com/ecodeclub/showcase/internal/project/internal/domain"
)

const (
	ProjectEventTopic = "project_events"

	ActionCreated = "created"
)

// ProjectEvent 项目入库之后发出，interactive 模块据此初始化计数
type ProjectEvent struct {
	Action string `json:"action"`
	Pid    string `json:"pid"`
	Uid    int64  `json:"uid"`
	Title  string `json:"title"`
	Ctime  int64  `json:"ctime"`
}

func NewCreatedEvent(p domain.Project) ProjectEvent {
	return ProjectEvent{
		Action: ActionCreated,
		Pid:    p.ID,
		Uid:    p.Metadata.Uid,
		Title:  p.Metadata.Title,
		Ctime:  p.Ctime,
	}
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=mocks/producer.mock.go ProjectEventProducer
type ProjectEventProducer interface {
	Produce(ctx context.Context, evt ProjectEvent) error
}

func NewProjectEventProducer(q mq.MQ) (ProjectEventProducer, error) {
	return mqx.NewGeneralProducer[ProjectEvent](q, ProjectEventTopic)
}
