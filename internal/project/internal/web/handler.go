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

package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/showcase/internal/interactive"
	"github.com/ecodeclub/showcase/internal/pkg/ectx"
	"github.com/ecodeclub/showcase/internal/project/internal/domain"
	"github.com/ecodeclub/showcase/internal/project/internal/errs"
	"github.com/ecodeclub/showcase/internal/project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// multipart 表单里面除了文件之外还有标题等字段，留一点余量
const formOverhead = 1 << 20

type Handler struct {
	svc           service.Service
	verifier      service.IntegrityVerifier
	intrSvc       interactive.Service
	maxUploadSize int64
	baseURL       string
	logger        *elog.Component
}

func NewHandler(svc service.Service,
	verifier service.IntegrityVerifier,
	intrSvc interactive.Service,
	cfg service.StorageConfig) *Handler {
	cfg = cfg.WithDefaults()
	return &Handler{
		svc:           svc,
		verifier:      verifier,
		intrSvc:       intrSvc,
		maxUploadSize: cfg.MaxUploadSize,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		logger:        elog.DefaultLogger,
	}
}

// PublicRoutes 上传和浏览都不需要登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/project")
	g.POST("/upload", ginx.W(h.Upload))
	g.GET("/view/:id", h.Preview)
	g.GET("/detail/:id", ginx.W(h.Detail))
	g.POST("/:id/view", ginx.W(h.RecordView))
	g.POST("/:id/like", ginx.W(h.ToggleLike))
	server.GET("/projects/:id/*filepath", h.Static)
}

func (h *Handler) Upload(ctx *ginx.Context) (ginx.Result, error) {
	gctx := ctx.Context
	gctx.Request.Body = http.MaxBytesReader(gctx.Writer, gctx.Request.Body, h.maxUploadSize+formOverhead)
	file, err := gctx.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return h.abort(gctx, http.StatusBadRequest, errs.InvalidArchiveError.Code,
				fmt.Sprintf("压缩包不能超过 %s", humanize.IBytes(uint64(h.maxUploadSize))), err)
		}
		return h.abort(gctx, http.StatusBadRequest, errs.InvalidInputError.Code, "请上传 ZIP 压缩包", err)
	}

	tmpDir, err := os.MkdirTemp("", "showcase-upload-")
	if err != nil {
		return systemErrorResult, err
	}
	defer func() {
		if err1 := os.RemoveAll(tmpDir); err1 != nil {
			h.logger.Warn("删除上传临时文件失败", elog.String("dir", tmpDir), elog.FieldErr(err1))
		}
	}()
	archivePath := filepath.Join(tmpDir, "upload.zip")
	if err = gctx.SaveUploadedFile(file, archivePath); err != nil {
		return systemErrorResult, err
	}

	p, err := h.svc.Ingest(ctx, archivePath, domain.Metadata{
		Title:       gctx.PostForm("title"),
		Description: gctx.PostForm("description"),
		Category:    gctx.PostForm("category"),
	})
	if err != nil {
		return h.ingestFailed(gctx, err)
	}
	return ginx.Result{
		Msg: "OK",
		Data: UploadResp{
			ID:         p.ID,
			Title:      p.Metadata.Title,
			ProjectURL: p.ProjectURL,
			PreviewURL: p.PreviewURL,
		},
	}, nil
}

func (h *Handler) ingestFailed(gctx *gin.Context, err error) (ginx.Result, error) {
	ie := service.AsIngestError(err)
	switch ie.Kind {
	case service.KindInput:
		return h.abort(gctx, http.StatusBadRequest, errs.InvalidInputError.Code, ie.Msg, err)
	case service.KindExtraction:
		return h.abort(gctx, http.StatusBadRequest, errs.InvalidArchiveError.Code, ie.Msg, err)
	case service.KindStructural:
		return h.abort(gctx, http.StatusUnprocessableEntity, errs.NoHTMLError.Code, ie.Msg, err)
	default:
		// 入库失败之类的错误不把细节暴露给用户
		return h.abort(gctx, http.StatusInternalServerError, errs.SystemError.Code, ie.Msg, err)
	}
}

// abort 自己写响应，ginx.W 只会返回 200 或者 500
func (h *Handler) abort(gctx *gin.Context, status, code int, msg string, err error) (ginx.Result, error) {
	res := ginx.Result{Code: code, Msg: msg}
	if status >= http.StatusInternalServerError {
		h.logger.Error("上传项目失败", elog.FieldErr(err))
	} else {
		h.logger.Info("拒绝上传的项目", elog.String("reason", msg), elog.FieldErr(err))
	}
	gctx.AbortWithStatusJSON(status, res)
	return res, ginx.ErrNoResponse
}

// Preview 跳转到入口文件，目录损坏的项目直接返回 404
func (h *Handler) Preview(ctx *gin.Context) {
	id := ctx.Param("id")
	if !h.verifier.Verify(ctx, id) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, notFoundResult)
		return
	}
	ctx.Redirect(http.StatusFound, h.baseURL+"/projects/"+id+"/"+domain.EntryFilename)
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id := ctx.Context.Param("id")
	if !service.IsValidProjectID(id) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, notFoundResult)
		return notFoundResult, ginx.ErrNoResponse
	}
	p, err := h.svc.Detail(ctx, id)
	switch {
	case err == nil:
		return ginx.Result{Data: newProject(p)}, nil
	case errors.Is(err, service.ErrProjectNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, notFoundResult)
		return notFoundResult, ginx.ErrNoResponse
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) RecordView(ctx *ginx.Context) (ginx.Result, error) {
	id := ctx.Context.Param("id")
	if !h.verifier.Verify(ctx, id) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, notFoundResult)
		return notFoundResult, ginx.ErrNoResponse
	}
	visitor, ok := ectx.VisitorFromCtx(ctx.Request.Context())
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, missingVisitorResult)
		return missingVisitorResult, ginx.ErrNoResponse
	}
	err := h.intrSvc.RecordView(ctx, id, visitor)
	if err != nil {
		// 浏览计数失败不影响访问
		h.logger.Error("记录浏览失败", elog.String("pid", id), elog.FieldErr(err))
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ToggleLike(ctx *ginx.Context) (ginx.Result, error) {
	id := ctx.Context.Param("id")
	if !h.verifier.Verify(ctx, id) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, notFoundResult)
		return notFoundResult, ginx.ErrNoResponse
	}
	visitor, ok := ectx.VisitorFromCtx(ctx.Request.Context())
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, missingVisitorResult)
		return missingVisitorResult, ginx.ErrNoResponse
	}
	liked, err := h.intrSvc.ToggleLike(ctx, id, visitor)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: LikeResp{Liked: liked},
	}, nil
}

// Static 只读地提供项目目录下的文件，访问目录的时候返回目录下的 index.html
func (h *Handler) Static(ctx *gin.Context) {
	id := ctx.Param("id")
	if !h.verifier.Verify(ctx, id) {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	dir, err := h.verifier.ProjectDir(id)
	if err != nil {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	f, info, err := openServable(http.Dir(dir), path.Clean("/"+ctx.Param("filepath")))
	if err != nil {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	defer f.Close()
	http.ServeContent(ctx.Writer, ctx.Request, info.Name(), info.ModTime(), f)
}

// openServable 打开普通文件，目录则尝试目录下的 index.html，不提供目录列表
func openServable(root http.FileSystem, name string) (http.File, os.FileInfo, error) {
	for _, candidate := range []string{name, path.Join(name, domain.EntryFilename)} {
		f, err := root.Open(candidate)
		if err != nil {
			return nil, nil, err
		}
		info, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, nil, err
		}
		if !info.IsDir() {
			return f, info, nil
		}
		_ = f.Close()
	}
	return nil, nil, os.ErrNotExist
}
