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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"github.com/ecodeclub/showcase/internal/project/internal/archive"
	"github.com/ecodeclub/showcase/internal/project/internal/domain"
	"github.com/ecodeclub/showcase/internal/project/internal/event"
	"github.com/ecodeclub/showcase/internal/project/internal/layout"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const maxTitleLen = 256

var ingestionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "showcase",
	Name:      "ingestions_total",
	Help:      "项目入库结果统计",
}, []string{"result", "stage"})

func (s *service) Ingest(ctx context.Context, archivePath string, meta domain.Metadata) (domain.Project, error) {
	start := time.Now()
	p, err := s.ingest(ctx, archivePath, meta.Trim())
	if err != nil {
		ie := AsIngestError(err)
		ingestionCounter.WithLabelValues("failed", string(ie.Stage)).Inc()
		s.logger.Error("项目入库失败",
			elog.String("stage", string(ie.Stage)),
			elog.String("kind", ie.Kind.String()),
			elog.FieldErr(err),
			elog.FieldCost(time.Since(start)))
		return domain.Project{}, ie
	}
	ingestionCounter.WithLabelValues("succeeded", string(StagePersist)).Inc()
	return p, nil
}

func (s *service) ingest(ctx context.Context, archivePath string, meta domain.Metadata) (domain.Project, error) {
	if err := s.validate(archivePath, meta); err != nil {
		return domain.Project{}, err
	}
	if err := os.MkdirAll(s.cfg.Root, 0o755); err != nil {
		return domain.Project{}, newIngestError(KindInternal, StageAllocate, "初始化存储目录失败", err)
	}
	id := s.idGen()
	dir := filepath.Join(s.cfg.Root, id)
	// 不使用 MkdirAll，目录已经存在说明 ID 冲突，不能覆盖别人的项目
	if err := os.Mkdir(dir, 0o755); err != nil {
		return domain.Project{}, newIngestError(KindInternal, StageAllocate, "分配项目目录失败", err)
	}
	p, err := s.process(ctx, id, dir, archivePath, meta)
	if err != nil {
		s.cleanup(id, dir)
		return domain.Project{}, err
	}
	if err = s.producer.Produce(ctx, event.NewCreatedEvent(p)); err != nil {
		s.logger.Error("发送项目创建事件失败",
			elog.String("pid", id),
			elog.FieldErr(err))
	}
	return p, nil
}

// validate 在分配目录之前完成所有能做的检查
func (s *service) validate(archivePath string, meta domain.Metadata) error {
	switch {
	case meta.Title == "":
		return newIngestError(KindInput, StageValidate, "标题不能为空", nil)
	case utf8.RuneCountInString(meta.Title) > maxTitleLen:
		return newIngestError(KindInput, StageValidate, fmt.Sprintf("标题不能超过 %d 个字符", maxTitleLen), nil)
	case meta.Category == "":
		return newIngestError(KindInput, StageValidate, "分类不能为空", nil)
	}
	st, err := os.Stat(archivePath)
	if err != nil {
		return newIngestError(KindInput, StageValidate, "没有找到上传的文件", err)
	}
	if st.Size() == 0 {
		return newIngestError(KindInput, StageValidate, "上传的文件为空", nil)
	}
	if st.Size() > s.cfg.MaxUploadSize {
		return newIngestError(KindInput, StageValidate,
			fmt.Sprintf("上传的文件不能超过 %s", humanize.IBytes(uint64(s.cfg.MaxUploadSize))), nil)
	}
	mtype, err := mimetype.DetectFile(archivePath)
	if err != nil {
		return newIngestError(KindInput, StageValidate, "无法识别上传的文件", err)
	}
	if !isZip(mtype) {
		return newIngestError(KindInput, StageValidate,
			fmt.Sprintf("只支持 ZIP 压缩包，收到的是 %s", mtype.String()), nil)
	}
	if _, err = s.extractor.Inspect(archivePath); err != nil {
		return newIngestError(KindInput, StageValidate, archiveMessage(err), err)
	}
	return nil
}

func (s *service) process(ctx context.Context, id, dir, archivePath string, meta domain.Metadata) (domain.Project, error) {
	cnt, err := s.extractor.Extract(ctx, archivePath, dir)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Project{}, newIngestError(KindInternal, StageExtract, "上传已取消", err)
		}
		return domain.Project{}, newIngestError(KindExtraction, StageExtract, archiveMessage(err), err)
	}
	if cnt == 0 {
		return domain.Project{}, newIngestError(KindExtraction, StageExtract, "压缩包中没有任何文件", nil)
	}

	files := s.analyzer.Analyze(dir)
	if len(files.HTMLFiles) == 0 {
		return domain.Project{}, newIngestError(KindStructural, StageAnalyze,
			"项目中没有找到 HTML 文档，请在压缩包中包含 index.html", nil)
	}

	promoted, err := s.normalizer.EnsureEntryPoint(dir, files.HTMLFiles)
	switch {
	case errors.Is(err, layout.ErrNoHTMLDocument):
		return domain.Project{}, newIngestError(KindStructural, StageNormalize,
			"项目中没有找到 HTML 文档，请在压缩包中包含 index.html", err)
	case errors.Is(err, layout.ErrEntryPointBlocked):
		return domain.Project{}, newIngestError(KindStructural, StageNormalize,
			"根目录下的 index.html 必须是 HTML 文件，不能是目录", err)
	case err != nil:
		return domain.Project{}, newIngestError(KindInternal, StageNormalize, "生成入口文件失败", err)
	}
	if promoted != "" || hasNestedDocument(files.HTMLFiles) {
		if err = s.normalizer.EnsureReachableAssets(dir, files.HTMLFiles); err != nil {
			s.logger.Warn("部分资源文件没有复制到根目录",
				elog.String("pid", id),
				elog.FieldErr(err))
		}
		files = s.analyzer.Analyze(dir)
	}

	p := domain.Project{
		ID:           id,
		Metadata:     meta,
		ProjectURL:   s.projectURL(id),
		PreviewURL:   s.projectURL(id) + domain.EntryFilename,
		Files:        files,
		EntryTitle:   s.entryTitle(dir),
		PromotedFrom: promoted,
		Ctime:        time.Now().UnixMilli(),
	}
	if err = s.repo.Create(ctx, p); err != nil {
		return domain.Project{}, newIngestError(KindPersistence, StagePersist, "保存项目失败，请稍后再试", err)
	}
	return p, nil
}

// cleanup 删除失败的错误只记录日志，不能覆盖原本的错误
func (s *service) cleanup(id, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		s.logger.Error("清理项目目录失败",
			elog.String("pid", id),
			elog.String("dir", dir),
			elog.FieldErr(err))
	}
}

func (s *service) projectURL(id string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/projects/" + id + "/"
}

func (s *service) entryTitle(dir string) string {
	f, err := os.Open(filepath.Join(dir, domain.EntryFilename))
	if err != nil {
		return ""
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		s.logger.Warn("解析入口文件失败", elog.String("dir", dir), elog.FieldErr(err))
		return ""
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if utf8.RuneCountInString(title) > maxTitleLen {
		title = string([]rune(title)[:maxTitleLen])
	}
	return title
}

func hasNestedDocument(htmlPaths []string) bool {
	for _, p := range htmlPaths {
		if strings.Contains(p, "/") {
			return true
		}
	}
	return false
}

func isZip(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

func archiveMessage(err error) string {
	switch {
	case errors.Is(err, archive.ErrUnsafeEntry):
		return "压缩包中包含不安全的路径"
	case errors.Is(err, archive.ErrArchiveTooLarge):
		return "压缩包解压后体积超过限制"
	case errors.Is(err, archive.ErrTooManyEntries):
		return "压缩包中的文件数量超过限制"
	case errors.Is(err, archive.ErrMalformedArchive):
		return "压缩包格式错误"
	default:
		return "解压失败"
	}
}
