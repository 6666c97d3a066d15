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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetricsBuilder_Build(t *testing.T) {
	builder := NewMetricsBuilder("metrics_test")
	server := gin.New()
	server.Use(builder.Build())
	server.GET("/projects/:id/*filepath", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, p := range []string{"/projects/a/index.html", "/projects/b/js/app.js"} {
		server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, float64(2), counterValue(t,
		builder.counterVec.WithLabelValues(http.MethodGet, "/projects/:id/*filepath", "200")))
	assert.Equal(t, float64(1), counterValue(t,
		builder.counterVec.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
