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

import "github.com/ecodeclub/showcase/internal/interactive/internal/domain"

type GetCntReq struct {
	// 项目 ID
	ID string `json:"id"`
}

type GetCntResp struct {
	ID      string `json:"id"`
	LikeCnt int    `json:"likeCnt"`
	ViewCnt int    `json:"viewCnt"`
	// 当前访客是否点赞过
	Liked bool `json:"liked"`
}

func newGetCntResp(intr domain.Interactive) GetCntResp {
	return GetCntResp{
		ID:      intr.Pid,
		LikeCnt: intr.LikeCnt,
		ViewCnt: intr.ViewCnt,
		Liked:   intr.Liked,
	}
}
