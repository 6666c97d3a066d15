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

// ProjectInteractive 计数汇总表，只在写明细的同一个事务里面更新
type ProjectInteractive struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Pid     string `gorm:"type:varchar(64);uniqueIndex:uniq_pid"`
	ViewCnt int
	LikeCnt int
	Utime   int64
	Ctime   int64
}

// ProjectView 浏览明细，同一个访客对同一个项目只有一条
type ProjectView struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Pid     string `gorm:"type:varchar(64);uniqueIndex:pid_visitor"`
	Visitor string `gorm:"type:varchar(64);uniqueIndex:pid_visitor"`
	Ctime   int64
}

// ProjectLike 点赞明细，取消点赞的时候直接删除
type ProjectLike struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Pid     string `gorm:"type:varchar(64);uniqueIndex:pid_visitor"`
	Visitor string `gorm:"type:varchar(64);uniqueIndex:pid_visitor"`
	Utime   int64
	Ctime   int64
}
