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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicatePid   = errors.New("项目 ID 重复")
)

const uniqueIndexErrNo uint16 = 1062

type ProjectDAO interface {
	Create(ctx context.Context, p Project) (int64, error)
	FindByPid(ctx context.Context, pid string) (Project, error)
	// ListAfter 按照 id 升序分批返回 id 大于 minId 的项目，只查询 id 和 pid
	ListAfter(ctx context.Context, minId int64, limit int) ([]Project, error)
}

var _ ProjectDAO = &GORMProjectDAO{}

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (dao *GORMProjectDAO) Create(ctx context.Context, p Project) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := dao.db.WithContext(ctx).Create(&p).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return 0, ErrDuplicatePid
	}
	return p.Id, err
}

func (dao *GORMProjectDAO) FindByPid(ctx context.Context, pid string) (Project, error) {
	var res Project
	err := dao.db.WithContext(ctx).Where("pid = ?", pid).First(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) ListAfter(ctx context.Context, minId int64, limit int) ([]Project, error) {
	var res []Project
	err := dao.db.WithContext(ctx).
		Select("id", "pid").
		Where("id > ?", minId).
		Order("id ASC").
		Limit(limit).Find(&res).Error
	return res, err
}
