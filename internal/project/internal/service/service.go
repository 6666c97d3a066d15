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

	"github.com/ecodeclub/showcase/internal/project/internal/archive"
	"github.com/ecodeclub/showcase/internal/project/internal/domain"
	"github.com/ecodeclub/showcase/internal/project/internal/event"
	"github.com/ecodeclub/showcase/internal/project/internal/layout"
	"github.com/ecodeclub/showcase/internal/project/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// StorageConfig 对应配置文件中的 storage
type StorageConfig struct {
	// 所有项目目录的父目录
	Root string `yaml:"root"`
	// 对外访问的地址前缀，例如 https://showcase.example.com
	BaseURL             string `yaml:"baseURL"`
	MaxUploadSize       int64  `yaml:"maxUploadSize"`
	MaxUncompressedSize int64  `yaml:"maxUncompressedSize"`
	MaxEntries          int    `yaml:"maxEntries"`
	MaxDepth            int    `yaml:"maxDepth"`
}

const (
	defaultMaxUploadSize       = 50 << 20
	defaultMaxUncompressedSize = 200 << 20
	defaultMaxEntries          = 10000
)

func (c StorageConfig) WithDefaults() StorageConfig {
	if c.MaxUploadSize <= 0 {
		c.MaxUploadSize = defaultMaxUploadSize
	}
	if c.MaxUncompressedSize <= 0 {
		c.MaxUncompressedSize = defaultMaxUncompressedSize
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = defaultMaxEntries
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = layout.DefaultMaxDepth
	}
	return c
}

var ErrProjectNotFound = repository.ErrProjectNotFound

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go Service
type Service interface {
	// Ingest 把上传的压缩包变成可以访问的静态项目。
	// 失败的时候返回 *IngestError，并且已经删除了分配的目录。
	Ingest(ctx context.Context, archivePath string, meta domain.Metadata) (domain.Project, error)
	Detail(ctx context.Context, id string) (domain.Project, error)
}

var _ Service = &service{}

type service struct {
	cfg        StorageConfig
	extractor  *archive.Extractor
	analyzer   *layout.Analyzer
	normalizer *layout.Normalizer
	repo       repository.Repository
	producer   event.ProjectEventProducer
	idGen      func() string
	logger     *elog.Component
}

func NewService(cfg StorageConfig,
	repo repository.Repository,
	producer event.ProjectEventProducer,
	idGen func() string) Service {
	cfg = cfg.WithDefaults()
	return &service{
		cfg: cfg,
		extractor: archive.NewExtractor(archive.Limits{
			MaxUncompressedSize: cfg.MaxUncompressedSize,
			MaxEntries:          cfg.MaxEntries,
		}),
		analyzer:   layout.NewAnalyzer(cfg.MaxDepth),
		normalizer: layout.NewNormalizer(cfg.MaxDepth),
		repo:       repo,
		producer:   producer,
		idGen:      idGen,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Detail(ctx context.Context, id string) (domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}
