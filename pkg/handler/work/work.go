/*
 * @Description: 音乐作品控制器
 * @Author: 沐音
 * @Date: 2025-09-21 10:40:15
 * @LastEditTime: 2026-01-08 17:33:25
 * @LastEditors: 沐音
 */
package work_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muselink-c/muselink-app/internal/app/middleware"
	"github.com/muselink-c/muselink-app/internal/infra/storage"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/response"
	"github.com/muselink-c/muselink-app/pkg/service/star"
	"github.com/muselink-c/muselink-app/pkg/service/work"
)

// WorkHandler 封装了作品相关的控制器方法
type WorkHandler struct {
	workSvc  work.Service
	starSvc  star.Service
	provider storage.IStorageProvider
}

// NewWorkHandler 是 WorkHandler 的构造函数
func NewWorkHandler(workSvc work.Service, starSvc star.Service, provider storage.IStorageProvider) *WorkHandler {
	return &WorkHandler{
		workSvc:  workSvc,
		starSvc:  starSvc,
		provider: provider,
	}
}

// parsePagination 解析分页查询参数
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return page, pageSize
}

// Create 处理作品上传
// @Summary      上传新作品
// @Description  multipart 上传 MIDI 文件并创建作品
// @Tags         作品
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file                 formData  file    true   "MIDI 文件 (≤10MB)"
// @Param        title                formData  string  true   "作品标题"
// @Param        description          formData  string  false  "作品描述"
// @Param        genre                formData  string  false  "曲风"
// @Param        allow_collaboration  formData  bool    false  "是否开启协作"
// @Param        status               formData  int     false  "1 公开 / 2 私有"  default(1)
// @Success      201  {object}  response.Response  "创建成功"
// @Router       /works [post]
func (h *WorkHandler) Create(c *gin.Context) {
	ownerDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "缺少上传文件")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无法读取上传文件")
		return
	}
	defer file.Close()

	status, _ := strconv.Atoi(c.DefaultPostForm("status", "1"))
	allowCollaboration := c.DefaultPostForm("allow_collaboration", "false") == "true"

	created, err := h.workSvc.Create(c.Request.Context(), ownerDBID, &work.CreateWorkInput{
		Title:              c.PostForm("title"),
		Description:        c.PostForm("description"),
		Genre:              c.PostForm("genre"),
		AllowCollaboration: allowCollaboration,
		Status:             status,
		File:               file,
		FileName:           fileHeader.Filename,
		FileSize:           fileHeader.Size,
	})
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, created, "作品创建成功")
}

// ListLatest 获取最新公开作品
func (h *WorkHandler) ListLatest(c *gin.Context) {
	page, pageSize := parsePagination(c)
	result, err := h.workSvc.ListLatest(c.Request.Context(), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// ListByUser 获取某用户的作品列表
func (h *WorkHandler) ListByUser(c *gin.Context) {
	page, pageSize := parsePagination(c)
	result, err := h.workSvc.ListByUser(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// Get 获取作品详情
func (h *WorkHandler) Get(c *gin.Context) {
	viewerDBID := middleware.OptionalUserDBID(c)
	result, err := h.workSvc.Get(c.Request.Context(), c.Param("id"), viewerDBID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// Update 更新作品元信息
func (h *WorkHandler) Update(c *gin.Context) {
	operatorDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	var params model.UpdateWorkParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	result, err := h.workSvc.Update(c.Request.Context(), c.Param("id"), operatorDBID, &params)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "更新成功")
}

// Delete 删除作品
func (h *WorkHandler) Delete(c *gin.Context) {
	operatorDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	if err := h.workSvc.Delete(c.Request.Context(), c.Param("id"), operatorDBID); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "删除成功")
}

// Play 记录一次播放
// 登录用户按用户去重，游客按客户端IP去重。
func (h *WorkHandler) Play(c *gin.Context) {
	visitorKey := c.ClientIP()
	if userDBID := middleware.OptionalUserDBID(c); userDBID != 0 {
		visitorKey = "u:" + strconv.FormatUint(uint64(userDBID), 10)
	}

	if err := h.workSvc.RecordPlay(c.Request.Context(), c.Param("id"), visitorKey); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "已记录")
}

// Star 收藏作品
func (h *WorkHandler) Star(c *gin.Context) {
	userDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	if err := h.starSvc.Star(c.Request.Context(), userDBID, c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "收藏成功")
}

// Unstar 取消收藏
func (h *WorkHandler) Unstar(c *gin.Context) {
	userDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	if err := h.starSvc.Unstar(c.Request.Context(), userDBID, c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "已取消收藏")
}

// GetDownloadURL 获取作品文件的临时下载链接
func (h *WorkHandler) GetDownloadURL(c *gin.Context) {
	viewerDBID := middleware.OptionalUserDBID(c)
	url, err := h.workSvc.GetDownloadURL(c.Request.Context(), c.Param("id"), viewerDBID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, gin.H{"url": url}, "获取成功")
}

// DownloadLocal 处理本地存储的签名下载链接
// 链接形如 /api/download/local/:id?expires=...&sign=...
func (h *WorkHandler) DownloadLocal(c *gin.Context) {
	local, ok := h.provider.(*storage.LocalProvider)
	if !ok {
		response.Fail(c, http.StatusNotFound, "当前存储不支持本地下载")
		return
	}

	publicID := c.Param("id")
	expires, err := strconv.ParseInt(c.Query("expires"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的过期时间")
		return
	}
	if !local.VerifySignature(publicID, expires, c.Query("sign")) {
		response.Fail(c, http.StatusForbidden, "下载链接无效或已过期")
		return
	}

	c.Header("Content-Type", "audio/midi")
	c.Header("Content-Disposition", "attachment")
	if err := h.workSvc.StreamCanonical(c.Request.Context(), publicID, c.Writer); err != nil {
		response.FailWithError(c, err)
		return
	}
}
