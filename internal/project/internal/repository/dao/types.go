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

package dao

import "github.com/ecodeclub/ekit/sqlx"

type Project struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 项目目录名，同时是对外暴露的项目 ID
	Pid          string `gorm:"type:varchar(64);uniqueIndex:uniq_pid"`
	Uid          int64  `gorm:"index"`
	Title        string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:varchar(2048)"`
	Category     string `gorm:"type:varchar(64);index"`
	ProjectURL   string `gorm:"column:project_url;type:varchar(512)"`
	PreviewURL   string `gorm:"column:preview_url;type:varchar(512)"`
	EntryTitle   string `gorm:"type:varchar(256)"`
	PromotedFrom string `gorm:"type:varchar(512)"`
	Files        sqlx.JsonColumn[Files] `gorm:"type:json"`
	Utime        int64
	Ctime        int64
}

// Files 入库时的目录结构快照
type Files struct {
	RootEntries  []string `json:"rootEntries"`
	HTMLFiles    []string `json:"htmlFiles"`
	HasIndexHTML bool     `json:"hasIndexHtml"`
}
