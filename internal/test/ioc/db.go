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

package testioc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/showcase/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
	loadOnce   sync.Once
	loadErr    error
)

func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		ioc.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	})
	return db
}

// loadConfig 测试统一使用仓库根目录下的 config/local.yaml
func loadConfig() error {
	loadOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			loadErr = err
			return
		}
		content, err := os.ReadFile(filepath.Join(root, "config", "local.yaml"))
		if err != nil {
			loadErr = err
			return
		}
		loadErr = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
	})
	return loadErr
}

// moduleRoot 从当前目录往上找 go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("没有找到 go.mod")
		}
		dir = parent
	}
}
