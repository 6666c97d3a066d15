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

package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type testEvent struct {
	Pid string `json:"pid"`
}

func TestGeneralProducer_Produce(t *testing.T) {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), "test_events", 1))
	consumer, err := q.Consumer("test_events", "test")
	require.NoError(t, err)
	defer consumer.Close()

	p, err := NewGeneralProducer[testEvent](q, "test_events")
	require.NoError(t, err)
	require.NoError(t, p.Produce(context.Background(), testEvent{Pid: "p1"}))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var evt testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, testEvent{Pid: "p1"}, evt)
}

func TestTraceMQ_Producer(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), "test_events", 1))
	traced := &TraceMQ{MQ: q, tracer: provider.Tracer(instrumentationName)}

	p, err := NewGeneralProducer[testEvent](traced, "test_events")
	require.NoError(t, err)
	require.NoError(t, p.Produce(context.Background(), testEvent{Pid: "p1"}))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mq.produce", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("messaging.topic", "test_events"))
}
