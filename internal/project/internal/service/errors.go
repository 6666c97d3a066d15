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

package service

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	// KindInput 上传内容本身不合法，还没有分配目录
	KindInput Kind = iota + 1
	// KindExtraction 解压失败
	KindExtraction
	// KindStructural 项目结构不可用，比如没有 HTML 文档
	KindStructural
	// KindPersistence 入库失败，目录已经回滚
	KindPersistence
	// KindInternal 其它内部错误
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindExtraction:
		return "extraction"
	case KindStructural:
		return "structural"
	case KindPersistence:
		return "persistence"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Stage 入库流程的阶段，allocated → extracted → analyzed → normalized → persisted
type Stage string

const (
	StageValidate  Stage = "validate"
	StageAllocate  Stage = "allocated"
	StageExtract   Stage = "extracted"
	StageAnalyze   Stage = "analyzed"
	StageNormalize Stage = "normalized"
	StagePersist   Stage = "persisted"
)

// IngestError 描述入库在哪个阶段失败。Msg 可以直接展示给用户。
type IngestError struct {
	Kind  Kind
	Stage Stage
	Msg   string
	Cause error
}

func (e *IngestError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("项目入库失败 [%s]: %s", e.Stage, e.Msg)
	}
	return fmt.Sprintf("项目入库失败 [%s]: %s: %s", e.Stage, e.Msg, e.Cause)
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}

func newIngestError(kind Kind, stage Stage, msg string, cause error) *IngestError {
	return &IngestError{Kind: kind, Stage: stage, Msg: msg, Cause: cause}
}

// AsIngestError 不是 IngestError 的时候返回 KindInternal
func AsIngestError(err error) *IngestError {
	var ie *IngestError
	if errors.As(err, &ie) {
		return ie
	}
	return newIngestError(KindInternal, "", "系统错误", err)
}
