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

package ectx

import "context"

type visitorContextType string

var visitorCtxKey visitorContextType = "visitor"

// VisitorFromCtx 取出访客指纹，不存在的时候返回空字符串和 false
func VisitorFromCtx(ctx context.Context) (string, bool) {
	v := ctx.Value(visitorCtxKey)
	if v == nil {
		return "", false
	}
	val, ok := v.(string)
	return val, ok && val != ""
}

func CtxWithVisitor(ctx context.Context, visitor string) context.Context {
	return context.WithValue(ctx, visitorCtxKey, visitor)
}
