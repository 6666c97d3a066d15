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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/showcase/internal/project/internal/domain"
	"github.com/ecodeclub/showcase/internal/project/internal/repository/dao"
)

var ErrProjectNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/repository.mock.go Repository
type Repository interface {
	Create(ctx context.Context, p domain.Project) error
	FindByID(ctx context.Context, id string) (domain.Project, error)
	// AllIDs 分批读取所有已经入库的项目 ID
	AllIDs(ctx context.Context) ([]string, error)
}

var _ Repository = &projectRepository{}

const batchSize = 200

type projectRepository struct {
	dao dao.ProjectDAO
}

func NewProjectRepository(d dao.ProjectDAO) Repository {
	return &projectRepository{dao: d}
}

func (repo *projectRepository) Create(ctx context.Context, p domain.Project) error {
	_, err := repo.dao.Create(ctx, repo.toEntity(p))
	return err
}

func (repo *projectRepository) FindByID(ctx context.Context, id string) (domain.Project, error) {
	p, err := repo.dao.FindByPid(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return repo.toDomain(p), nil
}

func (repo *projectRepository) AllIDs(ctx context.Context) ([]string, error) {
	var (
		res   []string
		minId int64
	)
	for {
		ps, err := repo.dao.ListAfter(ctx, minId, batchSize)
		if err != nil {
			return nil, err
		}
		res = append(res, slice.Map(ps, func(idx int, src dao.Project) string {
			return src.Pid
		})...)
		if len(ps) < batchSize {
			return res, nil
		}
		minId = ps[len(ps)-1].Id
	}
}

func (repo *projectRepository) toEntity(p domain.Project) dao.Project {
	return dao.Project{
		Pid:          p.ID,
		Uid:          p.Metadata.Uid,
		Title:        p.Metadata.Title,
		Description:  p.Metadata.Description,
		Category:     p.Metadata.Category,
		ProjectURL:   p.ProjectURL,
		PreviewURL:   p.PreviewURL,
		EntryTitle:   p.EntryTitle,
		PromotedFrom: p.PromotedFrom,
		Files: sqlx.JsonColumn[dao.Files]{
			Val: dao.Files{
				RootEntries:  p.Files.RootEntries,
				HTMLFiles:    p.Files.HTMLFiles,
				HasIndexHTML: p.Files.HasIndexHTML,
			},
			Valid: true,
		},
	}
}

func (repo *projectRepository) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		ID: p.Pid,
		Metadata: domain.Metadata{
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			Uid:         p.Uid,
		},
		ProjectURL: p.ProjectURL,
		PreviewURL: p.PreviewURL,
		Files: domain.ProjectFiles{
			RootEntries:  p.Files.Val.RootEntries,
			HTMLFiles:    p.Files.Val.HTMLFiles,
			HasIndexHTML: p.Files.Val.HasIndexHTML,
		},
		EntryTitle:   p.EntryTitle,
		PromotedFrom: p.PromotedFrom,
		Ctime:        p.Ctime,
	}
}
