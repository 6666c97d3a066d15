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
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultMaxDepth 目录遍历的最大深度，用来抵御恶意构造的深层嵌套压缩包
const DefaultMaxDepth = 32

const metadataDir = "__MACOSX"

var errStopWalk = errors.New("stop walk")

// IsHTML 按扩展名判断，忽略大小写
func IsHTML(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}

// visitFunc 的 rel 是相对根目录、使用 / 分隔的路径。
// 返回 errStopWalk 会提前结束遍历。
type visitFunc func(rel string, entry os.DirEntry) error

type dirItem struct {
	rel   string
	depth int
}

// walk 使用队列做广度优先遍历，同一个目录内按名字排序。
// 无法读取的目录当成空目录处理，交给 onErr 记录。
// 符号链接一律不跟随。
func walk(root string, maxDepth int, visit visitFunc, onErr func(rel string, err error)) error {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	queue := []dirItem{{rel: ".", depth: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(cur.rel)))
		if err != nil {
			onErr(cur.rel, err)
			continue
		}
		for _, entry := range entries {
			rel := path.Join(cur.rel, entry.Name())
			switch {
			case entry.Type()&os.ModeSymlink != 0:
				continue
			case entry.IsDir():
				if entry.Name() == metadataDir {
					continue
				}
				if cur.depth+1 > maxDepth {
					onErr(rel, fmt.Errorf("目录层级超过 %d", maxDepth))
					continue
				}
				queue = append(queue, dirItem{rel: rel, depth: cur.depth + 1})
			default:
				if err = visit(rel, entry); err != nil {
					if errors.Is(err, errStopWalk) {
						return nil
					}
					return err
				}
			}
		}
	}
	return nil
}

// ContainsHTML 只要找到一个 HTML 文档就返回
func ContainsHTML(root string, maxDepth int) (bool, error) {
	st, err := os.Stat(root)
	if err != nil {
		return false, err
	}
	if !st.IsDir() {
		return false, fmt.Errorf("%s 不是目录", root)
	}
	found := false
	err = walk(root, maxDepth, func(rel string, entry os.DirEntry) error {
		if entry.Type().IsRegular() && IsHTML(rel) {
			found = true
			return errStopWalk
		}
		return nil
	}, func(string, error) {})
	return found, err
}
