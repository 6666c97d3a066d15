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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrityVerifier(t *testing.T) {
	root := t.TempDir()
	mk := func(name, body string) {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	mk("good1/index.html", "<html></html>")
	mk("good2/site/page.htm", "<html></html>")
	mk("broken/readme.txt", "nothing")
	mk("loose.html", "<html></html>")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bad.id"), 0o755))
	mk("bad.id/index.html", "")

	v := NewIntegrityVerifier(StorageConfig{Root: root})
	ctx := context.Background()

	testcases := []struct {
		name string
		id   string
		want bool
	}{
		{name: "根目录有入口", id: "good1", want: true},
		{name: "子目录有文档", id: "good2", want: true},
		{name: "没有 HTML", id: "broken", want: false},
		{name: "空目录", id: "empty", want: false},
		{name: "目录不存在", id: "missing", want: false},
		{name: "非法 ID", id: "bad.id", want: false},
		{name: "路径穿越", id: "../good1", want: false},
		{name: "空 ID", id: "", want: false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Verify(ctx, tc.id))
		})
	}

	ids, err := v.ListValidProjectIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"good1", "good2"}, ids)

	// 目录被外部删除之后不再可用
	require.NoError(t, os.RemoveAll(filepath.Join(root, "good1")))
	assert.False(t, v.Verify(ctx, "good1"))
	ids, err = v.ListValidProjectIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"good2"}, ids)
}

func TestIntegrityVerifier_MissingRoot(t *testing.T) {
	v := NewIntegrityVerifier(StorageConfig{Root: filepath.Join(t.TempDir(), "missing")})
	ids, err := v.ListValidProjectIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIsValidProjectID(t *testing.T) {
	assert.True(t, IsValidProjectID("KX9q2bWc7pLz3fR8vN4mYt"))
	assert.False(t, IsValidProjectID("a/b"))
	assert.False(t, IsValidProjectID(".."))
	assert.False(t, IsValidProjectID("a b"))
	assert.False(t, IsValidProjectID(""))
}
