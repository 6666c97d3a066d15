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

package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrMalformedArchive = errors.New("压缩包格式错误")
	ErrUnsafeEntry      = errors.New("压缩包中包含不安全的路径")
	ErrArchiveTooLarge  = errors.New("压缩包解压后体积超过限制")
	ErrTooManyEntries   = errors.New("压缩包中的文件数量超过限制")
)

// MetadataDir macOS 打包时附带的资源分叉目录，直接跳过
const MetadataDir = "__MACOSX"

type Limits struct {
	// 解压后的总字节数上限
	MaxUncompressedSize int64
	MaxEntries          int
}

type Summary struct {
	Entries      int
	DeclaredSize uint64
}

type Extractor struct {
	limits Limits
	logger *elog.Component
}

func NewExtractor(limits Limits) *Extractor {
	return &Extractor{
		limits: limits,
		logger: elog.DefaultLogger,
	}
}

// Inspect 只读中央目录，根据声明的大小和条目数做预检，不会写任何文件
func (e *Extractor) Inspect(archivePath string) (Summary, error) {
	r, err := e.open(archivePath)
	if err != nil {
		return Summary{}, err
	}
	defer r.Close()
	var s Summary
	for _, f := range r.File {
		if IsMetadataPath(f.Name) {
			continue
		}
		s.Entries++
		s.DeclaredSize += f.UncompressedSize64
	}
	if err = e.checkEntries(s.Entries); err != nil {
		return s, err
	}
	if e.limits.MaxUncompressedSize > 0 && s.DeclaredSize > uint64(e.limits.MaxUncompressedSize) {
		return s, fmt.Errorf("%w: %s > %s", ErrArchiveTooLarge,
			humanize.IBytes(s.DeclaredSize), humanize.IBytes(uint64(e.limits.MaxUncompressedSize)))
	}
	return s, nil
}

// Extract 把压缩包解压到 targetDir，返回写出的文件数量。
// 返回 0 和 nil 说明压缩包里面没有任何可用的文件。
// 失败的时候不会清理已经写出的文件，由调用者负责。
func (e *Extractor) Extract(ctx context.Context, archivePath, targetDir string) (int, error) {
	root, err := filepath.Abs(targetDir)
	if err != nil {
		return 0, err
	}
	if err = os.MkdirAll(root, 0o755); err != nil {
		return 0, fmt.Errorf("创建解压目录失败: %w", err)
	}
	r, err := e.open(archivePath)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	if err = e.checkEntries(countEntries(r.File)); err != nil {
		return 0, err
	}

	unlimited := e.limits.MaxUncompressedSize <= 0
	remaining := e.limits.MaxUncompressedSize
	cnt := 0
	for _, f := range r.File {
		if err = ctx.Err(); err != nil {
			return cnt, err
		}
		if IsMetadataPath(f.Name) {
			continue
		}
		target, err := SafeJoin(root, f.Name)
		if err != nil {
			return cnt, err
		}
		mode := f.Mode()
		if mode&os.ModeSymlink != 0 {
			return cnt, fmt.Errorf("%w: 不允许符号链接 %s", ErrUnsafeEntry, f.Name)
		}
		if f.FileInfo().IsDir() {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return cnt, err
			}
			continue
		}
		if !mode.IsRegular() {
			return cnt, fmt.Errorf("%w: 不支持的文件类型 %s", ErrUnsafeEntry, f.Name)
		}
		if !unlimited && remaining <= 0 && f.UncompressedSize64 > 0 {
			return cnt, fmt.Errorf("%w: 超过 %s", ErrArchiveTooLarge, humanize.IBytes(uint64(e.limits.MaxUncompressedSize)))
		}
		n, err := e.writeFile(f, target, unlimited, remaining)
		if err != nil {
			return cnt, err
		}
		remaining -= n
		cnt++
	}
	e.logger.Debug("解压完成",
		elog.String("archive", archivePath),
		elog.String("target", root),
		elog.Int("files", cnt))
	return cnt, nil
}

func (e *Extractor) open(archivePath string) (*zip.ReadCloser, error) {
	r, err := zip.OpenReader(archivePath)
	switch {
	case err == nil:
		return r, nil
	case errors.Is(err, zip.ErrInsecurePath):
		// 开启 zipinsecurepath=0 的时候标准库会直接拒绝
		if r != nil {
			_ = r.Close()
		}
		return nil, fmt.Errorf("%w: %w", ErrUnsafeEntry, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
	}
}

func (e *Extractor) checkEntries(cnt int) error {
	if e.limits.MaxEntries > 0 && cnt > e.limits.MaxEntries {
		return fmt.Errorf("%w: %d > %d", ErrTooManyEntries, cnt, e.limits.MaxEntries)
	}
	return nil
}

// countEntries 和 Inspect 一样不计算 __MACOSX 下的条目
func countEntries(files []*zip.File) int {
	cnt := 0
	for _, f := range files {
		if !IsMetadataPath(f.Name) {
			cnt++
		}
	}
	return cnt
}

// writeFile 最多写出 limit 个字节，unlimited 为 true 的时候忽略 limit
func (e *Extractor) writeFile(f *zip.File, target string, unlimited bool, limit int64) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, err
	}
	rc, err := f.Open()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
	}
	defer rc.Close()
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	var src io.Reader = rc
	if !unlimited {
		// 多读一个字节用来判断是否超限
		src = io.LimitReader(rc, limit+1)
	}
	n, err := io.Copy(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if errors.Is(err, zip.ErrChecksum) || errors.Is(err, zip.ErrFormat) {
			return n, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
		}
		return n, err
	}
	if !unlimited && n > limit {
		return n, fmt.Errorf("%w: 超过 %s", ErrArchiveTooLarge, humanize.IBytes(uint64(e.limits.MaxUncompressedSize)))
	}
	return n, nil
}

// SafeJoin 把压缩包内的路径拼接到 root 下，结果必须仍然位于 root 之内
func SafeJoin(root, name string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	if normalized == "" {
		return "", fmt.Errorf("%w: 空路径", ErrUnsafeEntry)
	}
	if strings.HasPrefix(normalized, "/") {
		return "", fmt.Errorf("%w: %s", ErrUnsafeEntry, name)
	}
	clean := filepath.Clean(filepath.FromSlash(normalized))
	if clean == "." {
		return root, nil
	}
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf("%w: %s", ErrUnsafeEntry, name)
	}
	target := filepath.Join(root, clean)
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsafeEntry, name)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeEntry, name)
	}
	return target, nil
}

// IsMetadataPath 路径中任意一段是 __MACOSX 都算
func IsMetadataPath(name string) bool {
	for _, seg := range strings.Split(strings.ReplaceAll(name, "\\", "/"), "/") {
		if seg == MetadataDir {
			return true
		}
	}
	return false
}
