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
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/showcase/internal/interactive/internal/domain"
	"github.com/ecodeclub/showcase/internal/interactive/internal/errs"
	intrmocks "github.com/ecodeclub/showcase/internal/interactive/mocks"
	"github.com/ecodeclub/showcase/internal/pkg/ectx"
	"github.com/ecodeclub/showcase/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetCnt(t *testing.T) {
	testcases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *intrmocks.MockService
		visitor  string
		req      GetCntReq
		wantCode int
		wantResp test.Result[GetCntResp]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) *intrmocks.MockService {
				svc := intrmocks.NewMockService(ctrl)
				svc.EXPECT().Get(gomock.Any(), "p1", "v1").Return(domain.Interactive{
					Pid:     "p1",
					ViewCnt: 3,
					LikeCnt: 2,
					Liked:   true,
				}, nil)
				return svc
			},
			visitor:  "v1",
			req:      GetCntReq{ID: "p1"},
			wantCode: http.StatusOK,
			wantResp: test.Result[GetCntResp]{
				Data: GetCntResp{ID: "p1", ViewCnt: 3, LikeCnt: 2, Liked: true},
			},
		},
		{
			name: "没有访客指纹",
			mock: func(ctrl *gomock.Controller) *intrmocks.MockService {
				return intrmocks.NewMockService(ctrl)
			},
			req:      GetCntReq{ID: "p1"},
			wantCode: http.StatusOK,
			wantResp: test.Result[GetCntResp]{
				Code: errs.MissingVisitor.Code,
				Msg:  errs.MissingVisitor.Msg,
			},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) *intrmocks.MockService {
				svc := intrmocks.NewMockService(ctrl)
				svc.EXPECT().Get(gomock.Any(), "p1", "v1").
					Return(domain.Interactive{}, errors.New("mock db error"))
				return svc
			},
			visitor:  "v1",
			req:      GetCntReq{ID: "p1"},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[GetCntResp]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			hdl := NewHandler(tc.mock(ctrl))
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				if tc.visitor != "" {
					ctx.Request = ctx.Request.WithContext(
						ectx.CtxWithVisitor(context.Background(), tc.visitor))
				}
			})
			hdl.PublicRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/intr/cnt", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[GetCntResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
