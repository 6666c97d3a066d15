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
	"crypto/sha256"
	"encoding/hex"

	"github.com/ecodeclub/showcase/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
)

// VisitorBuilder 根据来源 IP 和 User-Agent 计算访客指纹，放到请求的 context 里面。
// 指纹只用来做浏览和点赞去重，不代表用户身份。
type VisitorBuilder struct {
	salt string
}

func NewVisitorBuilder() *VisitorBuilder {
	return &VisitorBuilder{}
}

// Salt 避免指纹和原始 IP 一一对应
func (b *VisitorBuilder) Salt(salt string) *VisitorBuilder {
	b.salt = salt
	return b
}

func (b *VisitorBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		visitor := Fingerprint(b.salt, ctx.ClientIP(), ctx.GetHeader("User-Agent"))
		newCtx := ectx.CtxWithVisitor(ctx.Request.Context(), visitor)
		ctx.Request = ctx.Request.WithContext(newCtx)
		ctx.Next()
	}
}

func Fingerprint(salt, ip, userAgent string) string {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte(ip))
	h.Write([]byte("|"))
	h.Write([]byte(userAgent))
	return hex.EncodeToString(h.Sum(nil))
}
