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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	intrmocks "github.com/ecodeclub/showcase/internal/interactive/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMQ(t *testing.T) mq.MQ {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), projectTopic, 1))
	return q
}

func produce(t *testing.T, q mq.MQ, evt any) {
	producer, err := q.Producer(projectTopic)
	require.NoError(t, err)
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)
}

func TestConsumer_Consume(t *testing.T) {
	testcases := []struct {
		name    string
		mock    func(svc *intrmocks.MockService)
		evt     any
		wantErr bool
	}{
		{
			name: "项目创建之后初始化计数",
			mock: func(svc *intrmocks.MockService) {
				svc.EXPECT().Init(gomock.Any(), "p1").Return(nil)
			},
			evt: ProjectEvent{Action: "created", Pid: "p1", Uid: 1},
		},
		{
			name: "初始化失败",
			mock: func(svc *intrmocks.MockService) {
				svc.EXPECT().Init(gomock.Any(), "p1").Return(errors.New("mock db error"))
			},
			evt:     ProjectEvent{Action: "created", Pid: "p1"},
			wantErr: true,
		},
		{
			name: "忽略其它动作",
			mock: func(svc *intrmocks.MockService) {},
			evt:  ProjectEvent{Action: "deleted", Pid: "p1"},
		},
		{
			name:    "缺少 pid",
			mock:    func(svc *intrmocks.MockService) {},
			evt:     ProjectEvent{Action: "created"},
			wantErr: true,
		},
		{
			name:    "消息格式错误",
			mock:    func(svc *intrmocks.MockService) {},
			evt:     "not an event",
			wantErr: true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := intrmocks.NewMockService(ctrl)
			tc.mock(svc)
			q := newTestMQ(t)
			consumer, err := NewProjectEventConsumer(svc, q)
			require.NoError(t, err)
			defer consumer.Stop(context.Background())

			produce(t, q, tc.evt)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			err = consumer.Consume(ctx)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
