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
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/ecodeclub/showcase/internal/project/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrNoHTMLDocument = errors.New("项目中没有任何 HTML 文档")
	// ErrEntryPointBlocked 根目录下的 index.html 不是普通文件，比如同名目录
	ErrEntryPointBlocked = errors.New("根目录下的 index.html 不是文件")
)

type Normalizer struct {
	maxDepth int
	logger   *elog.Component
}

func NewNormalizer(maxDepth int) *Normalizer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Normalizer{
		maxDepth: maxDepth,
		logger:   elog.DefaultLogger,
	}
}

// EnsureEntryPoint 保证项目根目录下有 index.html。
// 根目录已经有入口文件的时候返回空字符串，否则返回被复制到根目录的文档路径。
// 优先选择第一个名为 index.html 的文档，没有的话选择第一个文档。
func (n *Normalizer) EnsureEntryPoint(projectDir string, htmlPaths []string) (string, error) {
	dst := filepath.Join(projectDir, domain.EntryFilename)
	if st, err := os.Lstat(dst); err == nil {
		if st.Mode().IsRegular() {
			return "", nil
		}
		return "", ErrEntryPointBlocked
	}
	if len(htmlPaths) == 0 {
		return "", ErrNoHTMLDocument
	}
	chosen := htmlPaths[0]
	for _, p := range htmlPaths {
		if path.Base(p) == domain.EntryFilename {
			chosen = p
			break
		}
	}
	// 复制而不是移动，原位置的相对路径引用仍然有效
	if err := copyFile(filepath.Join(projectDir, filepath.FromSlash(chosen)), dst); err != nil {
		return "", fmt.Errorf("复制入口文件 %s 失败: %w", chosen, err)
	}
	return chosen, nil
}

// EnsureReachableAssets 把不在根目录的 HTML 文档所在的目录镜像到根目录，
// 已经存在的文件不会被覆盖。只处理文件拓扑，不会解析 HTML 改写链接。
// 单个文件失败不会中断整个过程，所有错误合并后返回。
func (n *Normalizer) EnsureReachableAssets(projectDir string, htmlPaths []string) error {
	mirrored := make(map[string]struct{}, len(htmlPaths))
	var errs []error
	for _, p := range htmlPaths {
		dir := path.Dir(p)
		if dir == "." {
			continue
		}
		if _, ok := mirrored[dir]; ok {
			continue
		}
		mirrored[dir] = struct{}{}
		if err := n.mirror(filepath.Join(projectDir, filepath.FromSlash(dir)), projectDir); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type mirrorItem struct {
	rel   string
	depth int
}

func (n *Normalizer) mirror(src, dst string) error {
	var errs []error
	stack := []mirrorItem{{rel: ".", depth: 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		entries, err := os.ReadDir(filepath.Join(src, cur.rel))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, entry := range entries {
			rel := filepath.Join(cur.rel, entry.Name())
			target := filepath.Join(dst, rel)
			switch {
			case entry.Type()&os.ModeSymlink != 0:
				continue
			case entry.IsDir():
				if entry.Name() == metadataDir || cur.depth+1 > n.maxDepth {
					continue
				}
				if err = os.MkdirAll(target, 0o755); err != nil {
					errs = append(errs, err)
					continue
				}
				stack = append(stack, mirrorItem{rel: rel, depth: cur.depth + 1})
			case entry.Type().IsRegular():
				if _, err = os.Lstat(target); err == nil {
					continue
				}
				if err = copyFile(filepath.Join(src, rel), target); err != nil && !errors.Is(err, os.ErrExist) {
					errs = append(errs, err)
				}
			}
		}
	}
	if len(errs) > 0 {
		n.logger.Warn("镜像资源目录时出现错误",
			elog.String("src", src),
			elog.Int("errors", len(errs)))
	}
	return errors.Join(errs...)
}

// copyFile 目标文件存在的时候返回 os.ErrExist
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
