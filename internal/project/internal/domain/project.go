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

package domain

import "strings"

// EntryFilename 静态服务器默认加载的入口文件
const EntryFilename = "index.html"

// Metadata 上传时用户填写的信息
type Metadata struct {
	Title       string
	Description string
	Category    string
	// 0 代表匿名上传
	Uid int64
}

func (m Metadata) Trim() Metadata {
	m.Title = strings.TrimSpace(m.Title)
	m.Description = strings.TrimSpace(m.Description)
	m.Category = strings.TrimSpace(m.Category)
	return m
}

// ProjectFiles 项目目录的结构快照，每次分析都会重新计算
type ProjectFiles struct {
	// 根目录下的文件和目录名
	RootEntries []string
	// 所有 HTML 文档相对项目目录的路径，按发现顺序排列，使用 / 分隔
	HTMLFiles    []string
	HasIndexHTML bool
	// 分析过程中遇到的、不影响结果的问题，比如某个目录无法读取
	Diagnostics []string
}

func (f ProjectFiles) HasRootIndex() bool {
	for _, e := range f.RootEntries {
		if e == EntryFilename {
			return true
		}
	}
	return false
}

type Project struct {
	// 同时也是项目目录名
	ID       string
	Metadata Metadata
	// 项目目录对应的地址
	ProjectURL string
	// 入口文件对应的地址
	PreviewURL string
	Files      ProjectFiles
	// 入口文件里面的 <title>，可能为空
	EntryTitle string
	// 被提升到根目录的 HTML 文档，为空说明压缩包根目录本来就有入口文件
	PromotedFrom string
	Ctime        int64
}
