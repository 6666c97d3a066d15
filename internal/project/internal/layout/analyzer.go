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

package layout

import (
	"fmt"
	"os"
	"path"

	"github.com/ecodeclub/showcase/internal/project/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

type Analyzer struct {
	maxDepth int
	logger   *elog.Component
}

func NewAnalyzer(maxDepth int) *Analyzer {
	return &Analyzer{
		maxDepth: maxDepth,
		logger:   elog.DefaultLogger,
	}
}

// Analyze 不会返回错误，读取失败的目录记录在 Diagnostics 中
func (a *Analyzer) Analyze(projectDir string) domain.ProjectFiles {
	var res domain.ProjectFiles
	entries, err := os.ReadDir(projectDir)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, fmt.Sprintf("无法读取项目根目录: %s", err))
		a.logger.Warn("无法读取项目根目录", elog.String("dir", projectDir), elog.FieldErr(err))
		return res
	}
	for _, e := range entries {
		if e.Name() == metadataDir {
			continue
		}
		res.RootEntries = append(res.RootEntries, e.Name())
	}

	_ = walk(projectDir, a.maxDepth, func(rel string, entry os.DirEntry) error {
		if !entry.Type().IsRegular() || !IsHTML(rel) {
			return nil
		}
		res.HTMLFiles = append(res.HTMLFiles, rel)
		if path.Base(rel) == domain.EntryFilename {
			res.HasIndexHTML = true
		}
		return nil
	}, func(rel string, err error) {
		res.Diagnostics = append(res.Diagnostics, fmt.Sprintf("%s: %s", rel, err))
		a.logger.Warn("跳过无法遍历的目录",
			elog.String("dir", projectDir),
			elog.String("rel", rel),
			elog.FieldErr(err))
	})
	if res.HasRootIndex() {
		res.HasIndexHTML = true
	}
	return res
}
