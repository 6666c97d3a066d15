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

import "github.com/ecodeclub/showcase/internal/project/internal/domain"

type UploadResp struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ProjectURL string `json:"projectUrl"`
	PreviewURL string `json:"previewUrl"`
}

type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Uid         int64  `json:"uid,omitempty"`
	ProjectURL  string `json:"projectUrl"`
	PreviewURL  string `json:"previewUrl"`
	// 入口文件的 <title>
	EntryTitle   string   `json:"entryTitle,omitempty"`
	PromotedFrom string   `json:"promotedFrom,omitempty"`
	HTMLFiles    []string `json:"htmlFiles"`
	Ctime        int64    `json:"ctime"`
}

func newProject(p domain.Project) Project {
	return Project{
		ID:           p.ID,
		Title:        p.Metadata.Title,
		Description:  p.Metadata.Description,
		Category:     p.Metadata.Category,
		Uid:          p.Metadata.Uid,
		ProjectURL:   p.ProjectURL,
		PreviewURL:   p.PreviewURL,
		EntryTitle:   p.EntryTitle,
		PromotedFrom: p.PromotedFrom,
		HTMLFiles:    p.Files.HTMLFiles,
		Ctime:        p.Ctime,
	}
}

type LikeResp struct {
	Liked bool `json:"liked"`
}
