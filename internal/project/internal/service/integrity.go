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
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/ecodeclub/showcase/internal/project/internal/layout"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInvalidProjectID = errors.New("非法的项目 ID")

const maxProjectIDLen = 64

//go:generate mockgen -source=./integrity.go -package=svcmocks -destination=mocks/integrity.mock.go IntegrityVerifier
type IntegrityVerifier interface {
	// Verify 项目目录存在并且至少包含一个 HTML 文档
	Verify(ctx context.Context, id string) bool
	// ListValidProjectIDs 每次调用都会完整扫描一遍存储目录
	ListValidProjectIDs(ctx context.Context) ([]string, error)
	// ProjectDir 返回项目目录的路径，不检查目录是否存在
	ProjectDir(id string) (string, error)
}

var _ IntegrityVerifier = &integrityVerifier{}

type integrityVerifier struct {
	root     string
	maxDepth int
	logger   *elog.Component
}

func NewIntegrityVerifier(cfg StorageConfig) IntegrityVerifier {
	cfg = cfg.WithDefaults()
	return &integrityVerifier{
		root:     cfg.Root,
		maxDepth: cfg.MaxDepth,
		logger:   elog.DefaultLogger,
	}
}

func (v *integrityVerifier) ProjectDir(id string) (string, error) {
	if !IsValidProjectID(id) {
		return "", ErrInvalidProjectID
	}
	return filepath.Join(v.root, id), nil
}

func (v *integrityVerifier) Verify(ctx context.Context, id string) bool {
	if ctx.Err() != nil {
		return false
	}
	dir, err := v.ProjectDir(id)
	if err != nil {
		return false
	}
	ok, err := layout.ContainsHTML(dir, v.maxDepth)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		v.logger.Warn("检查项目目录失败", elog.String("pid", id), elog.FieldErr(err))
	}
	return ok
}

func (v *integrityVerifier) ListValidProjectIDs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(v.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	res := make([]string, 0, len(entries))
	for _, e := range entries {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() || !IsValidProjectID(e.Name()) {
			continue
		}
		if v.Verify(ctx, e.Name()) {
			res = append(res, e.Name())
		}
	}
	return res, nil
}

// IsValidProjectID 项目 ID 只能由字母和数字组成，不能包含分隔符和点
func IsValidProjectID(id string) bool {
	if id == "" || len(id) > maxProjectIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
