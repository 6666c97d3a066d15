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
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecodeclub/showcase/internal/project/internal/domain"
	"github.com/ecodeclub/showcase/internal/project/internal/event"
	evtmocks "github.com/ecodeclub/showcase/internal/project/internal/event/mocks"
	"github.com/ecodeclub/showcase/internal/project/internal/repository"
	repomocks "github.com/ecodeclub/showcase/internal/project/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPid = "p1"

type zipEntry struct {
	name string
	body string
}

func buildZip(t *testing.T, dir string, entries ...zipEntry) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	p := filepath.Join(dir, "upload.zip")
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))
	return p
}

func validMeta() domain.Metadata {
	return domain.Metadata{Title: " 小游戏 ", Description: "一个小游戏", Category: "game", Uid: 12}
}

func assertNoProjectDir(t *testing.T, root string) {
	t.Helper()
	entries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_Ingest(t *testing.T) {
	testcases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.Repository, event.ProjectEventProducer)
		entries []zipEntry
		meta    domain.Metadata

		wantKind  Kind
		wantStage Stage
		after     func(t *testing.T, root, base string, p domain.Project)
	}{
		{
			name: "根目录有入口文件",
			mock: func(ctrl *gomock.Controller) (repository.Repository, event.ProjectEventProducer) {
				repo := repomocks.NewMockRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p domain.Project) error {
					assert.Equal(t, testPid, p.ID)
					assert.Equal(t, "小游戏", p.Metadata.Title)
					return nil
				})
				producer := evtmocks.NewMockProjectEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.ProjectEvent) error {
					assert.Equal(t, event.ActionCreated, evt.Action)
					assert.Equal(t, testPid, evt.Pid)
					assert.Equal(t, int64(12), evt.Uid)
					return nil
				})
				return repo, producer
			},
			entries: []zipEntry{
				{name: "index.html", body: "<html><head><title> 打砖块 </title></head></html>"},
				{name: "js/game.js", body: "let a = 1"},
			},
			meta: validMeta(),
			after: func(t *testing.T, root, base string, p domain.Project) {
				assert.Equal(t, "https://showcase.test/projects/p1/", p.ProjectURL)
				assert.Equal(t, "https://showcase.test/projects/p1/index.html", p.PreviewURL)
				assert.Equal(t, "打砖块", p.EntryTitle)
				assert.Equal(t, "", p.PromotedFrom)
				assert.True(t, p.Files.HasIndexHTML)
				assert.Equal(t, []string{"index.html", "js"}, p.Files.RootEntries)
				data, err := os.ReadFile(filepath.Join(root, testPid, "index.html"))
				require.NoError(t, err)
				assert.Equal(t, "<html><head><title> 打砖块 </title></head></html>", string(data))
			},
		},
		{
			name: "入口文件在子目录",
			mock: func(ctrl *gomock.Controller) (repository.Repository, event.ProjectEventProducer) {
				repo := repomocks.NewMockRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				producer := evtmocks.NewMockProjectEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, producer
			},
			entries: []zipEntry{
				{name: "game/index.html", body: "<html>nested</html>"},
				{name: "game/css/style.css", body: "body{}"},
				{name: "__MACOSX/game/._index.html", body: "junk"},
			},
			meta: validMeta(),
			after: func(t *testing.T, root, base string, p domain.Project) {
				dir := filepath.Join(root, testPid)
				assert.Equal(t, "game/index.html", p.PromotedFrom)
				data, err := os.ReadFile(filepath.Join(dir, "index.html"))
				require.NoError(t, err)
				assert.Equal(t, "<html>nested</html>", string(data))
				data, err = os.ReadFile(filepath.Join(dir, "css", "style.css"))
				require.NoError(t, err)
				assert.Equal(t, "body{}", string(data))
				_, err = os.Stat(filepath.Join(dir, "__MACOSX"))
				assert.True(t, os.IsNotExist(err))
				assert.Equal(t, []string{"css", "game", "index.html"}, p.Files.RootEntries)
			},
		},
		{
			name: "根目录有入口文件时也镜像子目录文档的资源",
			mock: func(ctrl *gomock.Controller) (repository.Repository, event.ProjectEventProducer) {
				repo := repomocks.NewMockRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				producer := evtmocks.NewMockProjectEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, producer
			},
			entries: []zipEntry{
				{name: "index.html", body: "<html>root</html>"},
				{name: "docs/about.html", body: "<html>about</html>"},
				{name: "docs/img/logo.png", body: "png"},
			},
			meta: validMeta(),
			after: func(t *testing.T, root, base string, p domain.Project) {
				dir := filepath.Join(root, testPid)
				assert.Equal(t, "", p.PromotedFrom)
				data, err := os.ReadFile(filepath.Join(dir, "index.html"))
				require.NoError(t, err)
				assert.Equal(t, "<html>root</html>", string(data))
				data, err = os.ReadFile(filepath.Join(dir, "img", "logo.png"))
				require.NoError(t, err)
				assert.Equal(t, "png", string(data))
				assert.Equal(t, []string{"about.html", "docs", "img", "index.html"}, p.Files.RootEntries)
			},
		},
		{
			name: "根目录的 index.html 是目录",
			entries: []zipEntry{
				{name: "index.html/readme.txt", body: "dir"},
				{name: "site/index.html", body: "<html>nested</html>"},
			},
			meta:      validMeta(),
			wantKind:  KindStructural,
			wantStage: StageNormalize,
			after: func(t *testing.T, root, base string, p domain.Project) {
				assertNoProjectDir(t, root)
			},
		},
		{
			name: "发送事件失败不影响入库",
			mock: func(ctrl *gomock.Controller) (repository.Repository, event.ProjectEventProducer) {
				repo := repomocks.NewMockRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				producer := evtmocks.NewMockProjectEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return repo, producer
			},
			entries: []zipEntry{{name: "index.html", body: "<html></html>"}},
			meta:    validMeta(),
			after: func(t *testing.T, root, base string, p domain.Project) {
				_, err := os.Stat(filepath.Join(root, testPid, "index.html"))
				assert.NoError(t, err)
			},
		},
		{
			name:      "路径穿越",
			entries:   []zipEntry{{name: "index.html", body: "<html></html>"}, {name: "../../evil.txt", body: "evil"}},
			meta:      validMeta(),
			wantKind:  KindExtraction,
			wantStage: StageExtract,
			after: func(t *testing.T, root, base string, p domain.Project) {
				assertNoProjectDir(t, root)
				_, err := os.Stat(filepath.Join(base, "evil.txt"))
				assert.True(t, os.IsNotExist(err))
				_, err = os.Stat(filepath.Join(filepath.Dir(base), "evil.txt"))
				assert.True(t, os.IsNotExist(err))
			},
		},
		{
			name:      "没有 HTML 文档",
			entries:   []zipEntry{{name: "readme.txt", body: "hello"}, {name: "img/logo.png", body: "png"}},
			meta:      validMeta(),
			wantKind:  KindStructural,
			wantStage: StageAnalyze,
			after: func(t *testing.T, root, base string, p domain.Project) {
				assertNoProjectDir(t, root)
			},
		},
		{
			name:      "压缩包中只有目录",
			entries:   []zipEntry{{name: "empty/"}, {name: "__MACOSX/x.html", body: "junk"}},
			meta:      validMeta(),
			wantKind:  KindExtraction,
			wantStage: StageExtract,
			after: func(t *testing.T, root, base string, p domain.Project) {
				assertNoProjectDir(t, root)
			},
		},
		{
			name: "保存失败回滚目录",
			mock: func(ctrl *gomock.Controller) (repository.Repository, event.ProjectEventProducer) {
				repo := repomocks.NewMockRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				return repo, evtmocks.NewMockProjectEventProducer(ctrl)
			},
			entries:   []zipEntry{{name: "index.html", body: "<html></html>"}},
			meta:      validMeta(),
			wantKind:  KindPersistence,
			wantStage: StagePersist,
			after: func(t *testing.T, root, base string, p domain.Project) {
				assertNoProjectDir(t, root)
			},
		},
		{
			name:      "缺少标题",
			entries:   []zipEntry{{name: "index.html", body: "<html></html>"}},
			meta:      domain.Metadata{Title: "   ", Category: "game"},
			wantKind:  KindInput,
			wantStage: StageValidate,
			after: func(t *testing.T, root, base string, p domain.Project) {
				assertNoProjectDir(t, root)
			},
		},
		{
			name:      "缺少分类",
			entries:   []zipEntry{{name: "index.html", body: "<html></html>"}},
			meta:      domain.Metadata{Title: "小游戏"},
			wantKind:  KindInput,
			wantStage: StageValidate,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			var (
				repo     repository.Repository      = repomocks.NewMockRepository(ctrl)
				producer event.ProjectEventProducer = evtmocks.NewMockProjectEventProducer(ctrl)
			)
			if tc.mock != nil {
				repo, producer = tc.mock(ctrl)
			}
			base := t.TempDir()
			root := filepath.Join(base, "projects")
			svc := NewService(StorageConfig{Root: root, BaseURL: "https://showcase.test/"},
				repo, producer, func() string { return testPid })
			archivePath := buildZip(t, base, tc.entries...)

			p, err := svc.Ingest(context.Background(), archivePath, tc.meta)
			if tc.wantKind == 0 {
				require.NoError(t, err)
			} else {
				var ie *IngestError
				require.ErrorAs(t, err, &ie)
				assert.Equal(t, tc.wantKind, ie.Kind)
				assert.Equal(t, tc.wantStage, ie.Stage)
				assert.NotEmpty(t, ie.Msg)
				assert.Equal(t, domain.Project{}, p)
			}
			if tc.after != nil {
				tc.after(t, root, base, p)
			}
		})
	}
}

func TestService_IngestRejectsNonZip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	base := t.TempDir()
	root := filepath.Join(base, "projects")
	svc := NewService(StorageConfig{Root: root}, repomocks.NewMockRepository(ctrl),
		evtmocks.NewMockProjectEventProducer(ctrl), func() string { return testPid })

	archivePath := filepath.Join(base, "upload.zip")
	require.NoError(t, os.WriteFile(archivePath, []byte("<html>not a zip</html>"), 0o644))
	_, err := svc.Ingest(context.Background(), archivePath, validMeta())
	var ie *IngestError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, KindInput, ie.Kind)
	assertNoProjectDir(t, root)
}

func TestService_IngestTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	base := t.TempDir()
	root := filepath.Join(base, "projects")
	svc := NewService(StorageConfig{Root: root, MaxUploadSize: 16}, repomocks.NewMockRepository(ctrl),
		evtmocks.NewMockProjectEventProducer(ctrl), func() string { return testPid })

	archivePath := buildZip(t, base, zipEntry{name: "index.html", body: "<html></html>"})
	_, err := svc.Ingest(context.Background(), archivePath, validMeta())
	var ie *IngestError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, KindInput, ie.Kind)
	assertNoProjectDir(t, root)
}

func TestService_IngestIDCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	base := t.TempDir()
	root := filepath.Join(base, "projects")
	existing := filepath.Join(root, testPid, "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	svc := NewService(StorageConfig{Root: root}, repomocks.NewMockRepository(ctrl),
		evtmocks.NewMockProjectEventProducer(ctrl), func() string { return testPid })
	archivePath := buildZip(t, base, zipEntry{name: "index.html", body: "new"})
	_, err := svc.Ingest(context.Background(), archivePath, validMeta())
	var ie *IngestError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, KindInternal, ie.Kind)
	assert.Equal(t, StageAllocate, ie.Stage)

	// 已有的项目不能被覆盖或者删除
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}
