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
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrLikeConflict 同一个访客并发点赞，唯一索引冲突或者死锁，可以重试
	ErrLikeConflict = errors.New("点赞冲突")
)

const (
	uniqueIndexErrNo uint16 = 1062
	deadlockErrNo    uint16 = 1213
)

//go:generate mockgen -source=./interactive.go -package=daomocks -destination=mocks/interactive.mock.go InteractiveDAO
type InteractiveDAO interface {
	// RecordView 返回值表示是否新增了一条浏览记录
	RecordView(ctx context.Context, pid, visitor string) (bool, error)
	// LikeToggle 返回切换之后是否处于点赞状态
	LikeToggle(ctx context.Context, pid, visitor string) (bool, error)
	GetLikeInfo(ctx context.Context, pid, visitor string) (ProjectLike, error)
	Get(ctx context.Context, pid string) (ProjectInteractive, error)
	// InitInteractive 创建计数为 0 的汇总记录，已经存在的时候什么也不做
	InitInteractive(ctx context.Context, pid string) error
}

var _ InteractiveDAO = &GORMInteractiveDAO{}

type GORMInteractiveDAO struct {
	db *egorm.Component
}

func NewInteractiveDAO(db *egorm.Component) *GORMInteractiveDAO {
	return &GORMInteractiveDAO{
		db: db,
	}
}

func (g *GORMInteractiveDAO) RecordView(ctx context.Context, pid, visitor string) (bool, error) {
	var inserted bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ProjectView{
			Pid:     pid,
			Visitor: visitor,
			Ctime:   now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			// 已经浏览过
			return nil
		}
		inserted = true
		return tx.Clauses(clause.OnConflict{
			DoUpdates: clause.Assignments(map[string]any{
				"view_cnt": gorm.Expr("`view_cnt` + 1"),
				"utime":    now,
			}),
		}).Create(&ProjectInteractive{
			Pid:     pid,
			ViewCnt: 1,
			Ctime:   now,
			Utime:   now,
		}).Error
	})
	return inserted, err
}

func (g *GORMInteractiveDAO) LikeToggle(ctx context.Context, pid, visitor string) (bool, error) {
	var liked bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("pid = ? AND visitor = ?", pid, visitor).
			First(&ProjectLike{}).Error
		switch {
		case err == nil:
			liked = false
			return g.deleteLikeInfo(tx, pid, visitor)
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return g.insertLikeInfo(tx, pid, visitor)
		default:
			return err
		}
	})
	var me *mysql.MySQLError
	if errors.As(err, &me) && (me.Number == uniqueIndexErrNo || me.Number == deadlockErrNo) {
		return false, ErrLikeConflict
	}
	return liked, err
}

func (g *GORMInteractiveDAO) insertLikeInfo(tx *gorm.DB, pid, visitor string) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&ProjectLike{
		Pid:     pid,
		Visitor: visitor,
		Utime:   now,
		Ctime:   now,
	}).Error
	if err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&ProjectInteractive{
		Pid:     pid,
		LikeCnt: 1,
		Ctime:   now,
		Utime:   now,
	}).Error
}

func (g *GORMInteractiveDAO) deleteLikeInfo(tx *gorm.DB, pid, visitor string) error {
	now := time.Now().UnixMilli()
	res := tx.Model(&ProjectLike{}).
		Where("pid = ? AND visitor = ?", pid, visitor).
		Delete(&ProjectLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	return tx.Model(&ProjectInteractive{}).
		Where("pid = ? AND like_cnt > 0", pid).
		Updates(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` - 1"),
			"utime":    now,
		}).Error
}

func (g *GORMInteractiveDAO) GetLikeInfo(ctx context.Context, pid, visitor string) (ProjectLike, error) {
	var res ProjectLike
	err := g.db.WithContext(ctx).
		Where("pid = ? AND visitor = ?", pid, visitor).
		First(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) Get(ctx context.Context, pid string) (ProjectInteractive, error) {
	var res ProjectInteractive
	err := g.db.WithContext(ctx).
		Where("pid = ?", pid).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProjectInteractive{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMInteractiveDAO) InitInteractive(ctx context.Context, pid string) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ProjectInteractive{
			Pid:   pid,
			Ctime: now,
			Utime: now,
		}).Error
}
