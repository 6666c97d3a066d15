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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/showcase/config"
	"github.com/ecodeclub/showcase/internal/interactive"
	"github.com/ecodeclub/showcase/internal/pkg/middleware"
	"github.com/ecodeclub/showcase/internal/project"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func initGinxServer(prjHdl *project.Handler, intrHdl *interactive.Handler) *egin.Component {
	var cfg config.WebConfig
	err := econf.UnmarshalKey("web", &cfg)
	if err != nil {
		panic(err)
	}
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range cfg.AllowOrigins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder("showcase").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 浏览和点赞按照访客去重
	res.Use(middleware.NewVisitorBuilder().Salt(cfg.VisitorSalt).Build())
	prjHdl.PublicRoutes(res.Engine)
	intrHdl.PublicRoutes(res.Engine)
	return res
}
