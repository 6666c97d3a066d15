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

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/showcase/internal/interactive/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

const (
	projectTopic = "project_events"
	groupID      = "interactive_group"
)

// ProjectEvent 由 project 模块在项目入库之后发出
type ProjectEvent struct {
	// 目前只有 created
	Action string `json:"action"`
	Pid    string `json:"pid"`
	Uid    int64  `json:"uid"`
	Title  string `json:"title"`
	Ctime  int64  `json:"ctime"`
}

type handleFunc func(ctx context.Context, svc service.Service, evt ProjectEvent) error

func createdHandle(ctx context.Context, svc service.Service, evt ProjectEvent) error {
	return svc.Init(ctx, evt.Pid)
}

type Consumer struct {
	handlerMap map[string]handleFunc
	consumer   mq.Consumer
	svc        service.Service
	logger     *elog.Component
}

func NewProjectEventConsumer(svc service.Service, q mq.MQ) (*Consumer, error) {
	consumer, err := q.Consumer(projectTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		handlerMap: map[string]handleFunc{
			"created": createdHandle,
		},
		consumer: consumer,
		svc:      svc,
		logger:   elog.DefaultLogger,
	}, nil
}

func (s *Consumer) Consume(ctx context.Context) error {
	msg, err := s.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt ProjectEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	handler, ok := s.handlerMap[evt.Action]
	if !ok {
		// 其它动作和计数无关
		return nil
	}
	if evt.Pid == "" {
		return fmt.Errorf("项目事件缺少 pid: %s", evt.Action)
	}
	err = handler(ctx, s.svc, evt)
	if err != nil {
		s.logger.Error("处理项目事件失败", elog.Any("project_event", evt), elog.FieldErr(err))
	}
	return err
}

func (s *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			err := s.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				s.logger.Error("消费项目事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (s *Consumer) Stop(_ context.Context) error {
	return s.consumer.Close()
}
