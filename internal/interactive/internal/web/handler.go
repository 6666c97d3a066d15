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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/showcase/internal/interactive/internal/service"
	"github.com/ecodeclub/showcase/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

// PublicRoutes 访客不需要登录，身份由访客指纹决定
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	// 统一用 POST 请求，懒得去处理不同的
	g.POST("/cnt", ginx.B[GetCntReq](h.GetCnt))
}

func (h *Handler) GetCnt(ctx *ginx.Context, req GetCntReq) (ginx.Result, error) {
	visitor, ok := ectx.VisitorFromCtx(ctx.Request.Context())
	if !ok {
		return missingVisitorResult, nil
	}
	intr, err := h.svc.Get(ctx, req.ID, visitor)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newGetCntResp(intr),
	}, nil
}
