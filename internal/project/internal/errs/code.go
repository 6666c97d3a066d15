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

package errs

var (
	SystemError         = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidInputError   = ErrorCode{Code: 412001, Msg: "上传信息不完整"}
	InvalidArchiveError = ErrorCode{Code: 412002, Msg: "压缩包不合法"}
	NoHTMLError         = ErrorCode{Code: 412003, Msg: "项目中没有找到 HTML 文档，请在压缩包中包含 index.html"}
	MissingVisitor      = ErrorCode{Code: 412004, Msg: "无法识别访客"}
	ProjectNotFound     = ErrorCode{Code: 404001, Msg: "项目不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
